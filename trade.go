package taxsim

import (
	"errors"
	"fmt"

	"github.com/tradepoint/taxsim/date"
)

var (
	// ErrInvalidAllocation reports an entry settlement against a non-positive price.
	ErrInvalidAllocation = errors.New("entry price must be positive")
	// ErrPrematureExit reports an exit settlement before the exit price or the
	// quantity are known. It is a call-ordering bug, not a data problem.
	ErrPrematureExit = errors.New("exit settled before exit price and quantity are known")
)

// Trade represents one position's lifecycle: an entry, an optional exit, and
// the financial fields derived from them.
//
// The ingestion boundary creates a Trade with prices and dates already
// parsed. Quantity and EntryAmount are set once, by the portfolio on
// admission, and are frozen afterward. ExitAmount, PNL and LongTerm are set
// by the portfolio on eviction; Tax is set by the tax engine right after.
type Trade struct {
	Stock      string
	EntryPrice Money
	ExitPrice  Money // zero value until the exit is known
	EntryDate  date.Date
	ExitDate   date.Date // zero value for a still-open position

	Quantity    int64
	EntryAmount Money
	ExitAmount  Money
	PNL         Money
	LongTerm    bool
	Tax         Money
}

// NewTrade creates an unsettled trade. exitPrice and exitDate may be zero
// values for a position that never closes inside the ledger.
func NewTrade(stock string, entryPrice, exitPrice Money, entryDate, exitDate date.Date) *Trade {
	return &Trade{
		Stock:      stock,
		EntryPrice: entryPrice,
		ExitPrice:  exitPrice,
		EntryDate:  entryDate,
		ExitDate:   exitDate,
	}
}

// HasExit reports whether the trade carries a scheduled exit.
func (t *Trade) HasExit() bool { return !t.ExitDate.IsZero() }

// Completed reports whether both legs of the trade are settled.
func (t *Trade) Completed() bool {
	return t.Quantity > 0 && !t.EntryDate.IsZero() && !t.ExitDate.IsZero()
}

// LongTermAt reports whether a position entered on 'entry' and exited on
// 'exit' qualifies as long-term: the exit falls on or after the same
// month/day one calendar year later. The boundary is calendar addition, so
// it is exact across leap years.
func LongTermAt(entry, exit date.Date) bool {
	return !exit.Before(entry.AddYears(1))
}

// SettleEntry fixes the quantity and entry amount from the capital allocated
// to this position: quantity is the allocation divided by the entry price,
// truncated to a whole number of shares; the entry amount is what that
// quantity actually costs, rounded to the currency scale.
func (t *Trade) SettleEntry(allocated Money) (Money, error) {
	if !t.EntryPrice.IsPositive() {
		return Money{}, fmt.Errorf("settle entry for %s: %w", t.Stock, ErrInvalidAllocation)
	}
	t.Quantity = allocated.Units(t.EntryPrice)
	t.EntryAmount = t.EntryPrice.MulInt(t.Quantity).Round()
	return t.EntryAmount, nil
}

// SettleExit fixes the exit amount, the realized profit or loss, and the
// holding-period classification. It requires the exit price to be set and a
// positive quantity, i.e. SettleEntry must have run first.
func (t *Trade) SettleExit() error {
	if t.ExitPrice.IsZero() || t.Quantity <= 0 {
		return fmt.Errorf("settle exit for %s: %w", t.Stock, ErrPrematureExit)
	}
	t.ExitAmount = t.ExitPrice.MulInt(t.Quantity).Round()
	t.PNL = t.ExitAmount.Sub(t.EntryAmount).Round()
	if !t.EntryDate.IsZero() && !t.ExitDate.IsZero() {
		t.LongTerm = LongTermAt(t.EntryDate, t.ExitDate)
	}
	return nil
}

// Class returns the holding-period classification label used in reports.
func (t *Trade) Class() string {
	if t.LongTerm {
		return "LT"
	}
	return "ST"
}

func (t *Trade) String() string {
	return fmt.Sprintf("Trade(%s, entry: %s, exit: %s, pnl: %s, %s)",
		t.Stock, t.EntryPrice.StringFixed(), t.ExitPrice.StringFixed(), t.PNL.StringFixed(), t.Class())
}
