package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty universe", func(c *Config) { c.Universe = nil }, "universe cannot be empty"},
		{"duplicate symbol", func(c *Config) { c.Universe = append(c.Universe, c.Universe[0]) }, "duplicate symbol"},
		{"price below floor", func(c *Config) { c.Universe[0].BasePrice = 2 }, "base_price"},
		{"zero volatility", func(c *Config) { c.Universe[0].Volatility = 0 }, "volatility"},
		{"bad lookback", func(c *Config) { c.Query.LookbackDays = 0 }, "lookback_days"},
		{"bad capital", func(c *Config) { c.Query.Capital = -1 }, "capital"},
		{"missing benchmark", func(c *Config) { c.Benchmark.Symbol = "" }, "benchmark"},
	}
	for _, tc := range cases {
		c := Default()
		tc.mutate(c)
		err := c.Validate()
		if err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestLoadConfigEmptyPathUsesDefaults(t *testing.T) {
	c, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") error: %v", err)
	}
	if c.Server.Addr != ":8080" {
		t.Errorf("addr = %q, want :8080", c.Server.Addr)
	}
	if len(c.Universe) == 0 {
		t.Error("default universe is empty")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := `
server:
  addr: ":9191"
query:
  lookback_days: 90
  capital: 25000
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if c.Server.Addr != ":9191" {
		t.Errorf("addr = %q, want :9191", c.Server.Addr)
	}
	if c.Query.LookbackDays != 90 || c.Query.Capital != 25000 {
		t.Errorf("query = %+v, want lookback 90 capital 25000", c.Query)
	}
	// untouched sections keep defaults
	if len(c.Universe) != 8 {
		t.Errorf("universe length = %d, want default 8", len(c.Universe))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("universe: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error for empty universe")
	}
}
