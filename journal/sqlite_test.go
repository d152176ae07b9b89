package journal

import "testing"

func TestSQLiteJournal(t *testing.T) {
	j, err := NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	defer j.Close()

	records := []TradeRecord{
		{Stock: "INFY", EntryDate: "01-Jan-01", ExitDate: "01-Feb-02", Quantity: 100,
			PNL: "1000.00", Class: "LT", Tax: "100.00", Corpus: "101000.00"},
		{Stock: "RELIANCE", EntryDate: "01-Jan-01", ExitDate: "15-Mar-01", Quantity: 500,
			PNL: "10000.00", Class: "ST", Tax: "2000.00", Corpus: "52000.00"},
	}
	for _, r := range records {
		if err := j.RecordTrade(r); err != nil {
			t.Fatalf("RecordTrade(%s) error = %v", r.Stock, err)
		}
	}
	if err := j.RecordCorpus(CorpusRecord{Date: "15-Mar-01", Available: "58000.00"}); err != nil {
		t.Fatalf("RecordCorpus() error = %v", err)
	}

	got, err := j.ListTrades()
	if err != nil {
		t.Fatalf("ListTrades() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d trades, want 2", len(got))
	}
	// The ordering column holds textual dates, so rows come back in the
	// lexical order of exit_date.
	if got[0].Stock != "INFY" || got[1].Stock != "RELIANCE" {
		t.Errorf("order = %s, %s; want INFY, RELIANCE", got[0].Stock, got[1].Stock)
	}
	if got[1].Quantity != 500 || got[1].Tax != "2000.00" {
		t.Errorf("round trip lost fields: %+v", got[1])
	}
}
