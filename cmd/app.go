// Package cmd implements the CLI application to replay a trade ledger and
// report post-tax cash flow.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/tradepoint/taxsim"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&runCmd{}, "simulation")

	c.Register(&tradesCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&corpusCmd{}, "reports")
}

// appFlags are the flags shared by every command that replays a ledger.
type appFlags struct {
	configFile string
	capital    float64
	stocks     int
	currency   string
	strict     bool
	verbose    bool
}

func (a *appFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&a.configFile, "config", "", "Configuration file (JSON or YAML); flags override it")
	f.Float64Var(&a.capital, "capital", 0, "Initial capital; overrides the configuration")
	f.IntVar(&a.stocks, "stocks", -1, "Maximum concurrent positions; overrides the configuration")
	f.StringVar(&a.currency, "currency", "", "Ledger currency; overrides the configuration")
	f.BoolVar(&a.strict, "strict", false, "Fail on dangling exits and overflowing entries instead of skipping them")
	f.BoolVar(&a.verbose, "v", false, "Verbose (debug) logging")
}

// config resolves the effective configuration: defaults, then the optional
// file, then flag overrides.
func (a *appFlags) config() (taxsim.Config, error) {
	cfg := taxsim.DefaultConfig()
	if a.configFile != "" {
		var err error
		cfg, err = taxsim.LoadConfig(a.configFile)
		if err != nil {
			return cfg, err
		}
	}
	if a.capital != 0 {
		cfg.InitialCapital = a.capital
	}
	if a.stocks >= 0 {
		cfg.MaxStocks = a.stocks
	}
	if a.currency != "" {
		cfg.Currency = a.currency
	}
	if a.strict {
		cfg.Strict = true
	}
	return cfg, cfg.Validate()
}

func (a *appFlags) logger() zerolog.Logger {
	level := zerolog.InfoLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()
}

// inputFile resolves the ledger to replay: the positional argument when
// given, otherwise the first CSV (then TXT) file in the input directory.
func inputFile(f *flag.FlagSet, cfg taxsim.Config) (string, error) {
	if f.NArg() > 0 {
		return f.Arg(0), nil
	}
	for _, pattern := range []string{"*.csv", "*.txt"} {
		matches, err := filepath.Glob(filepath.Join(cfg.InputDir, pattern))
		if err != nil {
			return "", err
		}
		if len(matches) > 0 {
			return matches[0], nil
		}
	}
	return "", fmt.Errorf("no input file given and no ledger found in %q", cfg.InputDir)
}

// simulate runs the whole pipeline: load the ledger, replay it, and build
// the reporting view.
func simulate(cfg taxsim.Config, input string, log zerolog.Logger) (*taxsim.Report, error) {
	trades, err := taxsim.LoadTrades(input, cfg.Currency, log)
	if err != nil {
		return nil, err
	}
	portfolio, err := taxsim.NewPortfolio(taxsim.M(cfg.InitialCapital, cfg.Currency), cfg.MaxStocks)
	if err != nil {
		return nil, err
	}
	processor := taxsim.NewProcessor(portfolio, log)
	processor.SetStrict(cfg.Strict)
	result, err := processor.Run(trades)
	if err != nil {
		return nil, err
	}
	return taxsim.NewReport(result), nil
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
