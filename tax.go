package taxsim

import "github.com/shopspring/decimal"

// Capital-gains rates. Fixed by the regime, not configurable.
var (
	shortTermRate = decimal.NewFromFloat(0.20)
	longTermRate  = decimal.NewFromFloat(0.10)
)

// TaxResult is the reconciliation of one exit batch: all trades closed on
// the same calendar date, taxed together after losses offset gains.
// It is ephemeral; only NetPostTax reaches the corpus and only the per-trade
// attribution written onto the records survives the batch.
type TaxResult struct {
	Loss     Money // sum of |pnl| over losing trades
	STProfit Money // sum of pnl over profitable short-term trades
	LTProfit Money // sum of pnl over profitable long-term trades
	NetST    Money // STProfit - Loss, signed

	STTax    Money
	LTTax    Money
	TotalTax Money

	// NetPostTax is the signed amount to credit back to the corpus.
	NetPostTax Money
}

// categorize splits a batch into total loss, short-term profit and long-term
// profit, each rounded to the currency scale. Zero-profit trades count as
// (zero) profit, not loss.
func categorize(batch []*Trade) (loss, stProfit, ltProfit Money) {
	for _, t := range batch {
		switch {
		case t.PNL.IsNegative():
			loss = loss.Add(t.PNL.Abs())
		case t.LongTerm:
			ltProfit = ltProfit.Add(t.PNL)
		default:
			stProfit = stProfit.Add(t.PNL)
		}
	}
	return loss.Round(), stProfit.Round(), ltProfit.Round()
}

// ComputeTax reconciles one exit batch under the two-bracket regime and
// writes each trade's tax attribution onto the record.
//
// Losses offset short-term gains first, fully, before touching long-term
// gains. Whatever loss remains then offsets long-term gains; only the
// long-term remainder is taxed. The per-trade attribution is proportional
// and rounded per trade, so it may not sum exactly to the batch total; the
// batch total is the authoritative figure credited to the corpus.
func ComputeTax(batch []*Trade) TaxResult {
	loss, stProfit, ltProfit := categorize(batch)

	r := TaxResult{
		Loss:     loss,
		STProfit: stProfit,
		LTProfit: ltProfit,
		NetST:    stProfit.Sub(loss),
	}
	zero := M(0, loss.Currency())
	r.STTax, r.LTTax = zero, zero

	switch {
	case r.NetST.IsPositive():
		// Loss fully absorbed by short-term gains: tax the net short-term
		// gain at 20% and the whole long-term gain at 10%.
		r.STTax = r.NetST.Mul(shortTermRate)
		r.LTTax = ltProfit.Mul(longTermRate)
		r.NetPostTax = r.NetST.Sub(r.STTax).Add(ltProfit.Sub(r.LTTax))

	case r.NetST.IsZero():
		// Loss exactly cancels short-term gains: only long-term gains remain.
		r.LTTax = ltProfit.Mul(longTermRate)
		r.NetPostTax = ltProfit.Sub(r.LTTax)

	default:
		// Loss exceeds short-term gains: the remainder offsets long-term gains.
		remaining := r.NetST.Abs()
		if remaining.GreaterThan(ltProfit) {
			// The whole batch is a net loss. No tax anywhere.
			r.NetPostTax = remaining.Sub(ltProfit).Neg()
		} else {
			netLT := ltProfit.Sub(remaining)
			r.LTTax = netLT.Mul(longTermRate)
			r.NetPostTax = netLT.Sub(r.LTTax)
		}
	}

	r.STTax = r.STTax.Round()
	r.LTTax = r.LTTax.Round()
	r.TotalTax = r.STTax.Add(r.LTTax).Round()
	r.NetPostTax = r.NetPostTax.Round()

	attribute(batch, r)
	return r
}

// attribute distributes the batch taxes back onto the individual records,
// proportionally to each trade's share of its bracket's gross profit.
// Losing and zero-profit trades carry no tax.
func attribute(batch []*Trade, r TaxResult) {
	for _, t := range batch {
		t.Tax = M(0, t.PNL.Currency())
		if !t.PNL.IsPositive() {
			continue
		}
		if t.LongTerm {
			if r.LTProfit.IsPositive() {
				t.Tax = r.LTTax.Mul(t.PNL.Ratio(r.LTProfit)).Round()
			}
		} else if r.STProfit.IsPositive() && r.NetST.IsPositive() {
			t.Tax = r.STTax.Mul(t.PNL.Ratio(r.STProfit)).Round()
		}
	}
}
