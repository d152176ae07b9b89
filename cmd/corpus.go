package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/tradepoint/taxsim/renderer"
)

// corpusCmd holds the flags for the 'corpus' subcommand.
type corpusCmd struct {
	appFlags
}

func (*corpusCmd) Name() string     { return "corpus" }
func (*corpusCmd) Synopsis() string { return "corpus evolution over the replay" }
func (*corpusCmd) Usage() string {
	return `tpt corpus [-config <file>] [-capital <amount>] [-stocks <n>] [<ledger.csv>]

  Replays the ledger and displays the capital available after each date
  settled.
`
}

func (c *corpusCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *corpusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.CorpusMarkdown(report))
	return subcommands.ExitSuccess
}
