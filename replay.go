package taxsim

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"
	"github.com/tradepoint/taxsim/date"
)

// exitRef is a lightweight reference to an exit scheduled on a date. It
// carries just enough to find the live open record; the settled fields stay
// on the record itself.
type exitRef struct {
	stock string
	price Money
	date  date.Date
}

// dayTrades buckets one calendar date's activity.
type dayTrades struct {
	entries []*Trade
	exits   []exitRef
}

// Processor replays a trade ledger in date order against a portfolio,
// reconciling taxes per exit batch and reinvesting the net proceeds.
//
// The processor exclusively owns its portfolio for the duration of a run; it
// is not safe for concurrent use. Replaying several portfolios concurrently
// means one Processor per goroutine.
type Processor struct {
	portfolio *Portfolio
	log       zerolog.Logger
	strict    bool

	history   map[date.Date]Money
	processed []*Trade
}

// Result is the outcome of a full replay.
type Result struct {
	// Processed holds the completed trades in eviction order, i.e. sorted by
	// exit date, not entry date.
	Processed []*Trade
	// CorpusHistory maps every date on which an entry or exit occurred to
	// the corpus available after that date settled.
	CorpusHistory map[date.Date]Money
	FinalCorpus   Money
	Holdings      int
}

// NewProcessor creates a replay processor over the given portfolio.
func NewProcessor(p *Portfolio, log zerolog.Logger) *Processor {
	return &Processor{
		portfolio: p,
		log:       log,
		history:   make(map[date.Date]Money),
	}
}

// SetStrict switches recoverable data-quality conditions (dangling exits,
// entries beyond the slot limit) from warn-and-skip to hard failures.
func (p *Processor) SetStrict(strict bool) { p.strict = strict }

// index partitions the trades into a per-date entries/exits index. A trade
// contributes to the entries bucket of its entry date and, when it has an
// exit, to the exits bucket of its exit date.
func index(trades []*Trade) map[date.Date]*dayTrades {
	byDate := make(map[date.Date]*dayTrades)
	day := func(d date.Date) *dayTrades {
		dt, ok := byDate[d]
		if !ok {
			dt = &dayTrades{}
			byDate[d] = dt
		}
		return dt
	}
	for _, t := range trades {
		if !t.EntryDate.IsZero() {
			day(t.EntryDate).entries = append(day(t.EntryDate).entries, t)
		}
	}
	for _, t := range trades {
		if t.HasExit() {
			day(t.ExitDate).exits = append(day(t.ExitDate).exits, exitRef{
				stock: t.Stock,
				price: t.ExitPrice,
				date:  t.ExitDate,
			})
		}
	}
	return byDate
}

// Run replays all trades in strictly ascending date order. On each date all
// exits settle before any entry: capital freed and taxed that morning funds
// that same day's admissions.
func (p *Processor) Run(trades []*Trade) (*Result, error) {
	byDate := index(trades)

	days := make([]date.Date, 0, len(byDate))
	for d := range byDate {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, d := range days {
		dt := byDate[d]
		p.log.Debug().Stringer("date", d).
			Str("corpus", p.portfolio.Available().StringFixed()).
			Int("exits", len(dt.exits)).Int("entries", len(dt.entries)).
			Msg("processing date")

		if len(dt.exits) > 0 {
			if err := p.processExits(d, dt.exits); err != nil {
				return nil, err
			}
		}
		if len(dt.entries) > 0 {
			if err := p.processEntries(d, dt.entries); err != nil {
				return nil, err
			}
		}
	}

	return &Result{
		Processed:     p.processed,
		CorpusHistory: p.history,
		FinalCorpus:   p.portfolio.Available(),
		Holdings:      p.portfolio.OpenCount(),
	}, nil
}

// processExits evicts every exit scheduled on d, then taxes the batch once
// and credits the net post-tax figure. The corpus snapshot for d is taken
// after the batch settles.
func (p *Processor) processExits(d date.Date, exits []exitRef) error {
	var batch []*Trade
	for _, ref := range exits {
		t, released, err := p.portfolio.Evict(ref.stock, ref.price, ref.date)
		if err != nil {
			// A dangling exit references a stock that is not open: duplicate
			// or out-of-order rows in the source ledger.
			if p.strict {
				return fmt.Errorf("on %s: %w", d, err)
			}
			p.log.Warn().Stringer("date", d).Str("stock", ref.stock).Err(err).
				Msg("dangling exit, skipping")
			continue
		}
		batch = append(batch, t)
		p.log.Debug().Stringer("date", d).Str("stock", t.Stock).
			Str("exit_price", ref.price.StringFixed()).
			Str("released", released.StringFixed()).
			Msg("exited position")
	}

	if len(batch) > 0 {
		res := ComputeTax(batch)
		p.portfolio.CreditPostTax(res.NetPostTax)
		p.processed = append(p.processed, batch...)
		p.log.Info().Stringer("date", d).
			Int("exits", len(batch)).
			Str("loss", res.Loss.StringFixed()).
			Str("st_profit", res.STProfit.StringFixed()).
			Str("lt_profit", res.LTProfit.StringFixed()).
			Str("total_tax", res.TotalTax.StringFixed()).
			Str("net_post_tax", res.NetPostTax.StringFixed()).
			Msg("exit batch reconciled")
	}

	p.history[d] = p.portfolio.Available()
	return nil
}

// processEntries admits entries scheduled on d, in input order, up to the
// number of free slots. Excess entries are dropped, not deferred.
func (p *Processor) processEntries(d date.Date, entries []*Trade) error {
	free := p.portfolio.FreeSlots()
	if free <= 0 {
		if p.strict {
			return fmt.Errorf("on %s: %d entries: %w", d, len(entries), ErrPortfolioFull)
		}
		p.log.Warn().Stringer("date", d).Int("entries", len(entries)).
			Msg("portfolio full, skipping entries")
		return nil
	}
	if len(entries) > free {
		p.log.Warn().Stringer("date", d).
			Int("entries", len(entries)).Int("slots", free).
			Msg("more entries than free slots, dropping overflow")
		if p.strict {
			return fmt.Errorf("on %s: %d entries for %d free slots: %w", d, len(entries), free, ErrPortfolioFull)
		}
		entries = entries[:free]
	}

	for _, t := range entries {
		invested, err := p.portfolio.Admit(t)
		if err != nil {
			// ErrInvalidAllocation rejects this one record; the run goes on.
			if p.strict {
				return fmt.Errorf("on %s: %w", d, err)
			}
			p.log.Warn().Stringer("date", d).Str("stock", t.Stock).Err(err).
				Msg("rejected entry")
			continue
		}
		p.log.Debug().Stringer("date", d).Str("stock", t.Stock).
			Str("entry_price", t.EntryPrice.StringFixed()).
			Str("invested", invested.StringFixed()).
			Int64("quantity", t.Quantity).
			Msg("entered position")
	}

	p.history[d] = p.portfolio.Available()
	return nil
}
