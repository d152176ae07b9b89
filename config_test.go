package taxsim

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.InitialCapital != 1_000_000 {
		t.Errorf("InitialCapital = %v, want 1000000", cfg.InitialCapital)
	}
	if cfg.MaxStocks != 20 {
		t.Errorf("MaxStocks = %d, want 20", cfg.MaxStocks)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadConfig_json(t *testing.T) {
	path := writeFile(t, "config.json", `{"initial_capital": 500000, "max_stocks": 5, "strict": true}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.InitialCapital != 500000 || cfg.MaxStocks != 5 || !cfg.Strict {
		t.Errorf("cfg = %+v, want overrides applied", cfg)
	}
	// untouched keys keep their defaults
	if cfg.Currency != "INR" {
		t.Errorf("Currency = %q, want default INR", cfg.Currency)
	}
}

func TestLoadConfig_yaml(t *testing.T) {
	path := writeFile(t, "config.yaml", "initial_capital: 250000\njournal:\n  type: sqlite\n  path: runs.db\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.InitialCapital != 250000 {
		t.Errorf("InitialCapital = %v, want 250000", cfg.InitialCapital)
	}
	if cfg.Journal.Type != "sqlite" || cfg.Journal.Path != "runs.db" {
		t.Errorf("Journal = %+v, want sqlite/runs.db", cfg.Journal)
	}
}

func TestLoadConfig_invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad.json", `{"initial_capital": -1}`},
		{"neg.json", `{"max_stocks": -3}`},
		{"journal.json", `{"journal": {"type": "parquet"}}`},
		{"syntax.json", `{`},
	}
	for _, tt := range tests {
		path := writeFile(t, tt.name, tt.content)
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("missing file: expected error")
	}
}
