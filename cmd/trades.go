package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tradepoint/taxsim/renderer"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	appFlags
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "completed trades with per-trade tax attribution" }
func (*tradesCmd) Usage() string {
	return `tpt trades [-config <file>] [-capital <amount>] [-stocks <n>] [<ledger.csv>]

  Replays the ledger and displays every completed trade in exit order.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.TradesMarkdown(report))
	return subcommands.ExitSuccess
}
