package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/subcommands"
	"github.com/tradepoint/taxsim"
	"github.com/tradepoint/taxsim/journal"
)

// runCmd holds the flags for the 'run' subcommand.
type runCmd struct {
	appFlags
	journalType string
	journalPath string
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a trade ledger and persist the post-tax results" }
func (*runCmd) Usage() string {
	return `tpt run [-config <file>] [-capital <amount>] [-stocks <n>] [-journal csv|sqlite] [<ledger.csv>]

  Replays the ledger in date order, reconciles capital-gains tax per exit
  batch, and writes the completed trades and corpus history to the journal.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.journalType, "journal", "", "Journal backend (csv or sqlite); overrides the configuration")
	f.StringVar(&c.journalPath, "journal-path", "", "SQLite journal file; overrides the configuration")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.config()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.journalType != "" {
		cfg.Journal.Type = c.journalType
	}
	if c.journalPath != "" {
		cfg.Journal.Path = c.journalPath
	}
	if err := cfg.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing directories: %v\n", err)
		return subcommands.ExitFailure
	}

	input, err := inputFile(f, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	log := c.logger()
	report, err := simulate(cfg, input, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	written, err := persist(report, cfg, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing journal: %v\n", err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	fmt.Fprint(&b, "# Run Complete\n\n")
	fmt.Fprintf(&b, "- Processed trades: %d\n", len(report.Trades))
	fmt.Fprintf(&b, "- Final corpus: %s\n", report.FinalCorpus.String())
	fmt.Fprintf(&b, "- Open positions: %d\n", report.Holdings)
	fmt.Fprintf(&b, "- Journal: %s\n", written)
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// persist writes the report to the configured journal backend and returns a
// human description of where it went.
func persist(report *taxsim.Report, cfg taxsim.Config, input string) (string, error) {
	j, desc, err := openJournal(cfg, input)
	if err != nil {
		return "", err
	}
	defer j.Close()

	for _, t := range report.Trades {
		corpus := ""
		if m, ok := report.CorpusAtExit(t); ok {
			corpus = m.StringFixed()
		}
		rec := journal.TradeRecord{
			Stock:       t.Stock,
			EntryDate:   t.EntryDate.Format("02-Jan-06"),
			EntryPrice:  t.EntryPrice.StringFixed(),
			EntryAmount: t.EntryAmount.StringFixed(),
			Quantity:    t.Quantity,
			ExitDate:    t.ExitDate.Format("02-Jan-06"),
			ExitPrice:   t.ExitPrice.StringFixed(),
			ExitAmount:  t.ExitAmount.StringFixed(),
			PNL:         t.PNL.StringFixed(),
			Class:       t.Class(),
			Tax:         t.Tax.StringFixed(),
			Corpus:      corpus,
		}
		if err := j.RecordTrade(rec); err != nil {
			return "", err
		}
	}
	for _, pt := range report.Corpus {
		rec := journal.CorpusRecord{Date: pt.Date.String(), Available: pt.Available.StringFixed()}
		if err := j.RecordCorpus(rec); err != nil {
			return "", err
		}
	}
	return desc, nil
}

func openJournal(cfg taxsim.Config, input string) (journal.Journal, string, error) {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	switch cfg.Journal.Type {
	case "sqlite":
		path := cfg.Journal.Path
		if path == "" {
			path = filepath.Join(cfg.OutputDir, "runs.db")
		}
		j, err := journal.NewSQLite(path)
		return j, path, err
	default:
		tradesPath := filepath.Join(cfg.OutputDir, "tax-"+base+".csv")
		corpusPath := filepath.Join(cfg.OutputDir, "corpus-"+base+".csv")
		j, err := journal.NewCSV(tradesPath, corpusPath)
		return j, tradesPath + ", " + corpusPath, err
	}
}
