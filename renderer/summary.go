package renderer

import (
	"fmt"
	"strings"

	"github.com/tradepoint/taxsim"
	"github.com/tradepoint/taxsim/date"
)

// SummaryMarkdown renders the pivot summary: realized results bucketed by
// calendar period of exit.
func SummaryMarkdown(report *taxsim.Report, p date.Period) string {
	var b strings.Builder

	name := title(p.Name())
	fmt.Fprintf(&b, "# Realized Summary by %s\n\n", name)
	fmt.Fprintf(&b, "| %s | Trades | LT | Realized P&L | Tax |\n", name)
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|")

	var totalPNL, totalTax taxsim.Money
	trades, longTerm := 0, 0
	for _, row := range report.Summary(p) {
		fmt.Fprintf(&b, "| %s | %d | %d | %s | %s |\n",
			row.Label, row.Trades, row.LongTerm, row.Realized.SignedString(), row.Tax.String())
		totalPNL = totalPNL.Add(row.Realized)
		totalTax = totalTax.Add(row.Tax)
		trades += row.Trades
		longTerm += row.LongTerm
	}
	fmt.Fprintf(&b, "| **Total** | **%d** | **%d** | **%s** | **%s** |\n",
		trades, longTerm, totalPNL.Round().SignedString(), totalTax.Round().String())

	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
