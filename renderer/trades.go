// Package renderer turns reports into markdown, one builder per report.
// The CLI decides how the markdown reaches the terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/tradepoint/taxsim"
)

const tradeDateFormat = "02-Jan-06"

// TradesMarkdown renders the completed-trades report: one row per settled
// trade in eviction order, with the corpus available on its exit date.
func TradesMarkdown(report *taxsim.Report) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Completed Trades\n\n")
	fmt.Fprintln(&b, "| Stock | Entry date | Entry price | Entry amount | Qty | Exit date | Exit price | Exit amount | PNL | ST/LT | Tax | Corpus |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|:---|---:|---:|---:|:---:|---:|---:|")

	for _, t := range report.Trades {
		corpus := ""
		if m, ok := report.CorpusAtExit(t); ok {
			corpus = m.StringFixed()
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %s | %s | %s | %s | %s | %s | %s |\n",
			t.Stock,
			t.EntryDate.Format(tradeDateFormat),
			t.EntryPrice.StringFixed(),
			t.EntryAmount.StringFixed(),
			t.Quantity,
			t.ExitDate.Format(tradeDateFormat),
			t.ExitPrice.StringFixed(),
			t.ExitAmount.StringFixed(),
			t.PNL.StringFixed(),
			t.Class(),
			t.Tax.StringFixed(),
			corpus,
		)
	}

	fmt.Fprintf(&b, "\nTotal realized P&L: %s, total attributed tax: %s\n",
		report.RealizedPNL().SignedString(), report.TotalTax().String())
	return b.String()
}
