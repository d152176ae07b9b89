package taxsim

import (
	"errors"
	"fmt"

	"github.com/tradepoint/taxsim/date"
)

var (
	// ErrPortfolioFull reports an admission attempt with no free slot. The
	// replay engine treats it as recoverable and skips the entry.
	ErrPortfolioFull = errors.New("portfolio at maximum capacity")
	// ErrNotHeld reports an eviction of a stock that is not currently open.
	// Expected under malformed input (duplicate or out-of-order exits).
	ErrNotHeld = errors.New("stock not currently held")
)

// Portfolio owns the investable corpus and the set of currently open
// positions, keyed by stock identifier. At most one position per identifier
// can be open at a time, and the open count never exceeds the slot limit.
//
// The holdings map is never handed out: all mutation goes through Admit,
// Evict and CreditPostTax, so a single replay goroutine exclusively owns
// the capital state.
type Portfolio struct {
	initial   Money
	available Money
	maxStocks int

	holdings  map[string]*Trade
	completed []*Trade
}

// NewPortfolio creates a ledger with a fixed investable corpus and a slot
// limit. maxStocks = 0 is a valid, permanently full configuration.
func NewPortfolio(initial Money, maxStocks int) (*Portfolio, error) {
	if !initial.IsPositive() {
		return nil, fmt.Errorf("initial capital must be positive, got %s", initial.StringFixed())
	}
	if maxStocks < 0 {
		return nil, fmt.Errorf("max stocks must be >= 0, got %d", maxStocks)
	}
	return &Portfolio{
		initial:   initial,
		available: initial,
		maxStocks: maxStocks,
		holdings:  make(map[string]*Trade),
	}, nil
}

// AllocationPerSlot returns the capital to allocate to the next admission:
// the available corpus split evenly across the remaining free slots, rounded
// to the currency scale. It is recomputed before every admission, so capital
// freed earlier in the day redistributes across the stocks still waiting.
func (p *Portfolio) AllocationPerSlot() Money {
	free := p.maxStocks - len(p.holdings)
	if free <= 0 {
		return M(0, p.available.Currency())
	}
	return p.available.DivInt(int64(free)).Round()
}

// Admit opens a position for the trade: computes its allocation, settles the
// entry, and deducts the entry amount from the available corpus. The entry
// amount actually invested is returned.
//
// If the identifier reopens after a prior close, the new record simply takes
// the slot; a given identifier can never be open twice at once.
func (p *Portfolio) Admit(t *Trade) (Money, error) {
	if len(p.holdings) >= p.maxStocks {
		return Money{}, fmt.Errorf("admit %s: %w", t.Stock, ErrPortfolioFull)
	}
	entryAmount, err := t.SettleEntry(p.AllocationPerSlot())
	if err != nil {
		return Money{}, err
	}
	p.holdings[t.Stock] = t
	p.available = p.available.Sub(entryAmount).Round()
	return entryAmount, nil
}

// Evict closes the position held for stock at the given price and date, and
// returns the settled record along with the amount credited back.
//
// Only the entry amount returns to the corpus here. The realized profit or
// loss is withheld until the whole day's exit batch has been taxed, when
// CreditPostTax settles the net figure. This two-step release is what lets
// losses reduce the corpus before tax is computed batch-wide.
func (p *Portfolio) Evict(stock string, exitPrice Money, exitDate date.Date) (*Trade, Money, error) {
	t, ok := p.holdings[stock]
	if !ok {
		return nil, Money{}, fmt.Errorf("evict %s: %w", stock, ErrNotHeld)
	}
	t.ExitPrice = exitPrice
	t.ExitDate = exitDate
	if err := t.SettleExit(); err != nil {
		return nil, Money{}, err
	}
	delete(p.holdings, stock)
	p.completed = append(p.completed, t)
	p.available = p.available.Add(t.EntryAmount).Round()
	return t, t.EntryAmount, nil
}

// CreditPostTax applies a day's net post-tax profit or loss to the corpus.
// Unconditional: losses reduce the corpus, profits increase it.
func (p *Portfolio) CreditPostTax(amount Money) {
	p.available = p.available.Add(amount).Round()
}

// IsFull reports whether every slot is taken.
func (p *Portfolio) IsFull() bool { return len(p.holdings) >= p.maxStocks }

// OpenCount returns the number of currently open positions.
func (p *Portfolio) OpenCount() int { return len(p.holdings) }

// FreeSlots returns how many positions can still be admitted.
func (p *Portfolio) FreeSlots() int { return p.maxStocks - len(p.holdings) }

// MaxStocks returns the slot limit.
func (p *Portfolio) MaxStocks() int { return p.maxStocks }

// Available returns the current investable corpus.
func (p *Portfolio) Available() Money { return p.available }

// Initial returns the corpus the ledger started with.
func (p *Portfolio) Initial() Money { return p.initial }

// Completed returns the settled trades in eviction order.
func (p *Portfolio) Completed() []*Trade { return p.completed }

func (p *Portfolio) String() string {
	return fmt.Sprintf("Portfolio(corpus: %s, holdings: %d/%d)",
		p.available.StringFixed(), len(p.holdings), p.maxStocks)
}
