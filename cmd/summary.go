package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tradepoint/taxsim/date"
	"github.com/tradepoint/taxsim/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	appFlags
	period string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "realized P&L and tax pivoted by month or year" }
func (*summaryCmd) Usage() string {
	return `tpt summary [-period month|year] [-config <file>] [<ledger.csv>]

  Replays the ledger and displays realized results bucketed by calendar
  period of exit.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.period, "period", date.Monthly.String(), "Pivot period (month, year)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	input, err := inputFile(f, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	report, err := simulate(cfg, input, c.logger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report, period))
	return subcommands.ExitSuccess
}
