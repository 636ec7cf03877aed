package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type SymbolConfig struct {
	Symbol     string  `yaml:"symbol"`
	Name       string  `yaml:"name"`
	Sector     string  `yaml:"sector"`
	BasePrice  float64 `yaml:"base_price"`
	Volatility float64 `yaml:"volatility"`
	BaseVolume int64   `yaml:"base_volume"`
}

type Config struct {
	Server struct {
		Addr        string   `yaml:"addr"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"server"`
	Generator struct {
		Days int `yaml:"days"`
	} `yaml:"generator"`
	Query struct {
		LookbackDays int     `yaml:"lookback_days"`
		Capital      float64 `yaml:"capital"`
	} `yaml:"query"`
	Benchmark SymbolConfig   `yaml:"benchmark"`
	Universe  []SymbolConfig `yaml:"universe"`
}

// Default returns the built-in universe the dashboard ships with. A config
// file overrides it wholesale per section.
func Default() *Config {
	c := &Config{}
	c.Server.Addr = ":8080"
	c.Server.CORSOrigins = nil // nil means allow-all in the server layer
	c.Generator.Days = 365
	c.Query.LookbackDays = 180
	c.Query.Capital = 10000
	c.Benchmark = SymbolConfig{Symbol: "SPX", Name: "S&P 500 Index", Sector: "Index", BasePrice: 5600, Volatility: 1.0, BaseVolume: 3900000000}
	c.Universe = []SymbolConfig{
		{Symbol: "AAPL", Name: "Apple Inc.", Sector: "Technology", BasePrice: 228, Volatility: 1.8, BaseVolume: 58000000},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", BasePrice: 425, Volatility: 1.6, BaseVolume: 22000000},
		{Symbol: "NVDA", Name: "NVIDIA Corporation", Sector: "Semiconductors", BasePrice: 950, Volatility: 3.2, BaseVolume: 41000000},
		{Symbol: "AMZN", Name: "Amazon.com Inc.", Sector: "Consumer Discretionary", BasePrice: 186, Volatility: 2.2, BaseVolume: 39000000},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Sector: "Communication Services", BasePrice: 172, Volatility: 1.9, BaseVolume: 27000000},
		{Symbol: "TSLA", Name: "Tesla Inc.", Sector: "Automotive", BasePrice: 248, Volatility: 3.8, BaseVolume: 95000000},
		{Symbol: "JPM", Name: "JPMorgan Chase & Co.", Sector: "Financials", BasePrice: 212, Volatility: 1.4, BaseVolume: 9500000},
		{Symbol: "XOM", Name: "Exxon Mobil Corporation", Sector: "Energy", BasePrice: 118, Volatility: 1.5, BaseVolume: 16000000},
	}
	return c
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr cannot be empty")
	}
	if c.Generator.Days < 0 {
		return fmt.Errorf("generator.days must be >= 0, got %d", c.Generator.Days)
	}
	if c.Query.LookbackDays <= 0 {
		return fmt.Errorf("query.lookback_days must be positive, got %d", c.Query.LookbackDays)
	}
	if c.Query.Capital <= 0 {
		return fmt.Errorf("query.capital must be positive, got %.2f", c.Query.Capital)
	}
	if len(c.Universe) == 0 {
		return errors.New("universe cannot be empty")
	}
	seen := map[string]bool{}
	for i, s := range c.Universe {
		if s.Symbol == "" {
			return fmt.Errorf("universe[%d]: symbol cannot be empty", i)
		}
		if seen[s.Symbol] {
			return fmt.Errorf("universe[%d]: duplicate symbol '%s'", i, s.Symbol)
		}
		seen[s.Symbol] = true
		if s.BasePrice < 5 {
			return fmt.Errorf("universe[%d]: base_price must be >= 5 (price floor), got %.2f", i, s.BasePrice)
		}
		if s.Volatility <= 0 {
			return fmt.Errorf("universe[%d]: volatility must be positive, got %.2f", i, s.Volatility)
		}
	}
	if c.Benchmark.Symbol == "" {
		return errors.New("benchmark.symbol cannot be empty")
	}
	return nil
}

// LoadConfig returns the defaults when path is empty; otherwise the file at
// path is unmarshalled over the defaults and the result validated.
func LoadConfig(path string) (*Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return c, nil
}
