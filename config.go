package taxsim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config carries the simulation parameters. There is no process-wide
// configuration state: a Config is loaded (or defaulted) once at startup and
// threaded explicitly into the constructors that need it.
type Config struct {
	// InitialCapital is the investable corpus at the start of the replay.
	InitialCapital float64 `json:"initial_capital" yaml:"initial_capital"`
	// MaxStocks is the maximum number of concurrently open positions.
	MaxStocks int    `json:"max_stocks" yaml:"max_stocks"`
	Currency  string `json:"currency" yaml:"currency"`
	// Strict turns recoverable ledger-quality conditions into hard failures.
	Strict bool `json:"strict" yaml:"strict"`

	InputDir  string        `json:"input_dir" yaml:"input_dir"`
	OutputDir string        `json:"output_dir" yaml:"output_dir"`
	Journal   JournalConfig `json:"journal" yaml:"journal"`
}

// JournalConfig selects where completed runs are persisted.
type JournalConfig struct {
	// Type is "csv" or "sqlite".
	Type string `json:"type" yaml:"type"`
	// Path is the database file for the sqlite journal. CSV output paths are
	// derived from OutputDir and the input file name.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		InitialCapital: 1_000_000,
		MaxStocks:      20,
		Currency:       "INR",
		InputDir:       "input",
		OutputDir:      "output",
		Journal:        JournalConfig{Type: "csv"},
	}
}

// LoadConfig reads a configuration file, JSON or YAML by extension, applied
// on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &cfg)
	default:
		err = json.Unmarshal(raw, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks construction-time parameters. These are the only errors
// that abort a run before it starts.
func (c Config) Validate() error {
	if c.InitialCapital <= 0 {
		return fmt.Errorf("initial_capital must be positive, got %v", c.InitialCapital)
	}
	if c.MaxStocks < 0 {
		return fmt.Errorf("max_stocks must be >= 0, got %d", c.MaxStocks)
	}
	switch c.Journal.Type {
	case "", "csv", "sqlite":
	default:
		return fmt.Errorf("journal type must be csv or sqlite, got %q", c.Journal.Type)
	}
	return nil
}

// EnsureDirs creates the input and output directories if missing.
func (c Config) EnsureDirs() error {
	for _, dir := range []string{c.InputDir, c.OutputDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}
