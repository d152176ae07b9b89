package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// CSVJournal writes the trade report and the corpus timeline to two CSV
// files, headers first, flushed after every record.
type CSVJournal struct {
	trades *csv.Writer
	corpus *csv.Writer
	tf, cf *os.File
}

var tradeHeaders = []string{
	"Stock Name", "Entry date", "Entry price", "Entry Amount", "Quantity",
	"Exit date", "Exit price", "Exit amount", "PNL", "ST/LT", "Tax",
	"Corpus available",
}

var corpusHeaders = []string{"Date", "Corpus available"}

func NewCSV(tradesPath, corpusPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", tradesPath, err)
	}
	cf, err := os.Create(corpusPath)
	if err != nil {
		tf.Close()
		return nil, fmt.Errorf("create %s: %w", corpusPath, err)
	}

	j := &CSVJournal{trades: csv.NewWriter(tf), corpus: csv.NewWriter(cf), tf: tf, cf: cf}
	if err := j.trades.Write(tradeHeaders); err != nil {
		j.Close()
		return nil, err
	}
	if err := j.corpus.Write(corpusHeaders); err != nil {
		j.Close()
		return nil, err
	}
	j.trades.Flush()
	j.corpus.Flush()
	if err := j.trades.Error(); err != nil {
		j.Close()
		return nil, err
	}
	return j, j.corpus.Error()
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	j.trades.Write([]string{
		t.Stock,
		t.EntryDate,
		t.EntryPrice,
		t.EntryAmount,
		strconv.FormatInt(t.Quantity, 10),
		t.ExitDate,
		t.ExitPrice,
		t.ExitAmount,
		t.PNL,
		t.Class,
		t.Tax,
		t.Corpus,
	})
	j.trades.Flush()
	return j.trades.Error()
}

func (j *CSVJournal) RecordCorpus(c CorpusRecord) error {
	j.corpus.Write([]string{c.Date, c.Available})
	j.corpus.Flush()
	return j.corpus.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	j.corpus.Flush()
	err := j.tf.Close()
	if cerr := j.cf.Close(); err == nil {
		err = cerr
	}
	return err
}
