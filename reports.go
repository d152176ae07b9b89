package taxsim

import (
	"sort"

	"github.com/tradepoint/taxsim/date"
)

// Report is the reporting view over a finished replay: the completed trades
// in eviction order, the corpus timeline, and pivot summaries bucketed by
// calendar period. It is what the renderer and the journal consume.
type Report struct {
	Trades      []*Trade
	Corpus      []CorpusPoint
	FinalCorpus Money
	Holdings    int

	corpusAt map[date.Date]Money
}

// CorpusPoint is the corpus available after one replay date settled.
type CorpusPoint struct {
	Date      date.Date
	Available Money
}

// SummaryRow is one bucket of the pivot summary: realized results of every
// trade exiting inside the period.
type SummaryRow struct {
	Start    date.Date
	Label    string
	Trades   int
	LongTerm int
	Realized Money
	Tax      Money
}

// NewReport builds the reporting view from a replay result.
func NewReport(res *Result) *Report {
	points := make([]CorpusPoint, 0, len(res.CorpusHistory))
	for d, m := range res.CorpusHistory {
		points = append(points, CorpusPoint{Date: d, Available: m})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })

	return &Report{
		Trades:      res.Processed,
		Corpus:      points,
		FinalCorpus: res.FinalCorpus,
		Holdings:    res.Holdings,
		corpusAt:    res.CorpusHistory,
	}
}

// CorpusAtExit returns the corpus recorded on the trade's exit date, and
// whether that date was recorded at all.
func (r *Report) CorpusAtExit(t *Trade) (Money, bool) {
	m, ok := r.corpusAt[t.ExitDate]
	return m, ok
}

// TotalTax sums the per-trade tax attributions. Because attribution rounds
// per trade, this is informational; the batch totals credited during the
// replay are authoritative.
func (r *Report) TotalTax() Money {
	var total Money
	for _, t := range r.Trades {
		total = total.Add(t.Tax)
	}
	return total.Round()
}

// RealizedPNL sums realized profit and loss across all completed trades.
func (r *Report) RealizedPNL() Money {
	var total Money
	for _, t := range r.Trades {
		total = total.Add(t.PNL)
	}
	return total.Round()
}

// Summary pivots the completed trades by exit date into calendar buckets
// (one row per month or per year with at least one exit), chronologically.
func (r *Report) Summary(p date.Period) []SummaryRow {
	byStart := make(map[date.Date]*SummaryRow)
	for _, t := range r.Trades {
		start := t.ExitDate.StartOf(p)
		row, ok := byStart[start]
		if !ok {
			row = &SummaryRow{Start: start, Label: start.Label(p)}
			byStart[start] = row
		}
		row.Trades++
		if t.LongTerm {
			row.LongTerm++
		}
		row.Realized = row.Realized.Add(t.PNL).Round()
		row.Tax = row.Tax.Add(t.Tax).Round()
	}

	rows := make([]SummaryRow, 0, len(byStart))
	for _, row := range byStart {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Start.Before(rows[j].Start) })
	return rows
}
