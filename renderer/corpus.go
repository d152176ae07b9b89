package renderer

import (
	"fmt"
	"strings"

	"github.com/tradepoint/taxsim"
)

// CorpusMarkdown renders the corpus timeline: the capital available after
// each replay date settled.
func CorpusMarkdown(report *taxsim.Report) string {
	var b strings.Builder

	fmt.Fprint(&b, "# Corpus History\n\n")
	fmt.Fprintln(&b, "| Date | Corpus available |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, pt := range report.Corpus {
		fmt.Fprintf(&b, "| %s | %s |\n", pt.Date, pt.Available.String())
	}

	fmt.Fprintf(&b, "\nFinal corpus: **%s** with %d open position(s)\n",
		report.FinalCorpus.String(), report.Holdings)
	return b.String()
}
