package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestCSVJournal(t *testing.T) {
	dir := t.TempDir()
	tradesPath := filepath.Join(dir, "tax.csv")
	corpusPath := filepath.Join(dir, "corpus.csv")

	j, err := NewCSV(tradesPath, corpusPath)
	if err != nil {
		t.Fatalf("NewCSV() error = %v", err)
	}

	rec := TradeRecord{
		Stock:       "RELIANCE",
		EntryDate:   "01-Jan-01",
		EntryPrice:  "100.00",
		EntryAmount: "50000.00",
		Quantity:    500,
		ExitDate:    "15-Mar-01",
		ExitPrice:   "120.00",
		ExitAmount:  "60000.00",
		PNL:         "10000.00",
		Class:       "ST",
		Tax:         "2000.00",
		Corpus:      "52000.00",
	}
	if err := j.RecordTrade(rec); err != nil {
		t.Fatalf("RecordTrade() error = %v", err)
	}
	if err := j.RecordCorpus(CorpusRecord{Date: "15-Mar-01", Available: "58000.00"}); err != nil {
		t.Fatalf("RecordCorpus() error = %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	trades := readAll(t, tradesPath)
	if len(trades) != 2 {
		t.Fatalf("got %d trade rows, want header + 1 record", len(trades))
	}
	if trades[0][0] != "Stock Name" || trades[0][11] != "Corpus available" {
		t.Errorf("unexpected trade header: %v", trades[0])
	}
	row := trades[1]
	if row[0] != "RELIANCE" || row[4] != "500" || row[9] != "ST" || row[10] != "2000.00" {
		t.Errorf("unexpected trade row: %v", row)
	}

	corpus := readAll(t, corpusPath)
	if len(corpus) != 2 {
		t.Fatalf("got %d corpus rows, want header + 1 record", len(corpus))
	}
	if corpus[0][0] != "Date" || corpus[1][1] != "58000.00" {
		t.Errorf("unexpected corpus rows: %v", corpus)
	}
}

func TestNewCSV_badPath(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewCSV(filepath.Join(dir, "missing", "tax.csv"), filepath.Join(dir, "corpus.csv")); err == nil {
		t.Fatal("NewCSV() with unwritable trades path: expected error")
	}
	if _, err := NewCSV(filepath.Join(dir, "tax.csv"), filepath.Join(dir, "missing", "corpus.csv")); err == nil {
		t.Fatal("NewCSV() with unwritable corpus path: expected error")
	}
}
