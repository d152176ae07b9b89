package taxsim

import "testing"

// pnlTrade builds a settled trade carrying just what the tax engine reads.
func pnlTrade(stock string, pnl float64, longTerm bool) *Trade {
	return &Trade{Stock: stock, PNL: inr(pnl), LongTerm: longTerm}
}

func TestComputeTax_profitOnly(t *testing.T) {
	batch := []*Trade{
		pnlTrade("A", 1000, false),
		pnlTrade("B", 500, true),
	}
	r := ComputeTax(batch)

	if got := r.STTax.StringFixed(); got != "200.00" {
		t.Errorf("STTax = %s, want 200.00", got)
	}
	if got := r.LTTax.StringFixed(); got != "50.00" {
		t.Errorf("LTTax = %s, want 50.00", got)
	}
	if got := r.TotalTax.StringFixed(); got != "250.00" {
		t.Errorf("TotalTax = %s, want 250.00", got)
	}
	if got := r.NetPostTax.StringFixed(); got != "1250.00" {
		t.Errorf("NetPostTax = %s, want 1250.00", got)
	}
}

func TestComputeTax_lossExactlyOffsetsEverything(t *testing.T) {
	// loss 1500 wipes the 1000 short-term gain and the remaining 500 wipes
	// the 500 long-term gain: nothing left to tax, nothing to credit.
	batch := []*Trade{
		pnlTrade("L", -1500, false),
		pnlTrade("S", 1000, false),
		pnlTrade("T", 500, true),
	}
	r := ComputeTax(batch)

	if got := r.NetST.StringFixed(); got != "-500.00" {
		t.Errorf("NetST = %s, want -500.00", got)
	}
	if !r.STTax.IsZero() || !r.LTTax.IsZero() || !r.TotalTax.IsZero() {
		t.Errorf("taxes = %s/%s/%s, want all zero", r.STTax.StringFixed(), r.LTTax.StringFixed(), r.TotalTax.StringFixed())
	}
	if got := r.NetPostTax.StringFixed(); got != "0.00" {
		t.Errorf("NetPostTax = %s, want 0.00", got)
	}
}

func TestComputeTax_netLoss(t *testing.T) {
	batch := []*Trade{
		pnlTrade("L", -2000, false),
		pnlTrade("S", 1000, false),
		pnlTrade("T", 500, true),
	}
	r := ComputeTax(batch)

	if !r.TotalTax.IsZero() {
		t.Errorf("TotalTax = %s, want 0", r.TotalTax.StringFixed())
	}
	if got := r.NetPostTax.StringFixed(); got != "-500.00" {
		t.Errorf("NetPostTax = %s, want -500.00", got)
	}
}

func TestComputeTax_lossPartiallyOffsetsLongTerm(t *testing.T) {
	// net_st = -300; remaining loss 300 against 500 long-term leaves 200
	// taxable at 10%.
	batch := []*Trade{
		pnlTrade("L", -300, false),
		pnlTrade("T", 500, true),
	}
	r := ComputeTax(batch)

	if got := r.LTTax.StringFixed(); got != "20.00" {
		t.Errorf("LTTax = %s, want 20.00", got)
	}
	if got := r.NetPostTax.StringFixed(); got != "180.00" {
		t.Errorf("NetPostTax = %s, want 180.00", got)
	}
}

func TestComputeTax_attribution(t *testing.T) {
	a := pnlTrade("A", 750, false)
	b := pnlTrade("B", 250, false)
	c := pnlTrade("C", 500, true)
	l := pnlTrade("L", -100, false)
	ComputeTax([]*Trade{a, b, c, l})

	// st_profit=1000, loss=100, net_st=900, st_tax=180 split 3:1.
	if got := a.Tax.StringFixed(); got != "135.00" {
		t.Errorf("A tax = %s, want 135.00", got)
	}
	if got := b.Tax.StringFixed(); got != "45.00" {
		t.Errorf("B tax = %s, want 45.00", got)
	}
	if got := c.Tax.StringFixed(); got != "50.00" {
		t.Errorf("C tax = %s, want 50.00", got)
	}
	if !l.Tax.IsZero() {
		t.Errorf("loss trade tax = %s, want 0", l.Tax.StringFixed())
	}
}

func TestComputeTax_noAttributionWhenNetSTNegative(t *testing.T) {
	s := pnlTrade("S", 100, false)
	l := pnlTrade("L", -500, false)
	lt := pnlTrade("T", 1000, true)
	r := ComputeTax([]*Trade{s, l, lt})

	// Short-term gains fully absorbed by the loss: no short-term tax to
	// attribute even though S is profitable.
	if !s.Tax.IsZero() {
		t.Errorf("S tax = %s, want 0", s.Tax.StringFixed())
	}
	// remaining loss 400 offsets long-term: taxable 600 at 10%.
	if got := r.LTTax.StringFixed(); got != "60.00" {
		t.Errorf("LTTax = %s, want 60.00", got)
	}
	if got := lt.Tax.StringFixed(); got != "60.00" {
		t.Errorf("T tax = %s, want 60.00", got)
	}
}
