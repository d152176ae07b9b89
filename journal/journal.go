// Package journal persists finished simulation runs. Two backends: CSV
// files next to the input ledger, and a sqlite database for querying runs.
package journal

// TradeRecord is one settled trade as persisted. Amounts are fixed-point
// decimal strings (two fractional digits) so that no backend loses the
// currency scale.
type TradeRecord struct {
	Stock       string
	EntryDate   string
	EntryPrice  string
	EntryAmount string
	Quantity    int64
	ExitDate    string
	ExitPrice   string
	ExitAmount  string
	PNL         string
	Class       string // "ST" or "LT"
	Tax         string
	Corpus      string // corpus available on the exit date
}

// CorpusRecord is one point of the corpus timeline.
type CorpusRecord struct {
	Date      string
	Available string
}

// Journal records the output of a simulation run.
type Journal interface {
	RecordTrade(TradeRecord) error
	RecordCorpus(CorpusRecord) error
	Close() error
}
