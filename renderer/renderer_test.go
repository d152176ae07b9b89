package renderer

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/tradepoint/taxsim"
	"github.com/tradepoint/taxsim/date"
)

func report(t *testing.T) *taxsim.Report {
	t.Helper()
	trades := []*taxsim.Trade{
		taxsim.NewTrade("RELIANCE", taxsim.M(100, "INR"), taxsim.M(120, "INR"),
			date.MustParse("2001-01-01"), date.MustParse("2001-03-15")),
		taxsim.NewTrade("INFY", taxsim.M(50, "INR"), taxsim.M(60, "INR"),
			date.MustParse("2001-01-01"), date.MustParse("2002-02-01")),
	}
	p, err := taxsim.NewPortfolio(taxsim.M(100000, "INR"), 2)
	if err != nil {
		t.Fatalf("NewPortfolio() error = %v", err)
	}
	res, err := taxsim.NewProcessor(p, zerolog.Nop()).Run(trades)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return taxsim.NewReport(res)
}

func TestTradesMarkdown(t *testing.T) {
	md := TradesMarkdown(report(t))

	for _, want := range []string{
		"# Completed Trades",
		"| Stock | Entry date |",
		"| RELIANCE | 01-Jan-01 |",
		"| INFY | 01-Jan-01 |",
		"| ST |",
		"| LT |",
		"Total realized P&L:",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestCorpusMarkdown(t *testing.T) {
	md := CorpusMarkdown(report(t))

	for _, want := range []string{
		"# Corpus History",
		"| Date | Corpus available |",
		"| 2001-01-01 |",
		"Final corpus:",
		"0 open position(s)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	md := SummaryMarkdown(report(t), date.Yearly)

	for _, want := range []string{
		"# Realized Summary by Year",
		"| Year | Trades | LT |",
		"| 2001 | 1 | 0 |",
		"| 2002 | 1 | 1 |",
		"| **Total** | **2** | **1** |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q\n%s", want, md)
		}
	}
}
