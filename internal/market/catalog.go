package market

import (
	"time"

	"marketdeck/internal/store"
	"marketdeck/internal/types"
)

// Catalog holds every generated series plus symbol metadata. It is built once
// at startup and never mutated afterwards, so concurrent readers need no
// locking. Returned slices are shared; callers treat them as read-only.
type Catalog struct {
	ref       time.Time
	order     []string
	meta      map[string]types.SymbolMeta
	series    map[string][]types.Candle
	benchSym  string
	benchmark []types.Candle
}

func NewCatalog(cfg *store.Config) *Catalog {
	return NewCatalogAt(cfg, midnightUTC(time.Now()))
}

// NewCatalogAt pins the reference date explicitly; tests use it to freeze
// the clock.
func NewCatalogAt(cfg *store.Config, ref time.Time) *Catalog {
	c := &Catalog{
		ref:    ref,
		meta:   make(map[string]types.SymbolMeta, len(cfg.Universe)),
		series: make(map[string][]types.Candle, len(cfg.Universe)),
	}
	for _, spec := range cfg.Universe {
		c.order = append(c.order, spec.Symbol)
		c.meta[spec.Symbol] = types.SymbolMeta{Symbol: spec.Symbol, Name: spec.Name, Sector: spec.Sector}
		c.series[spec.Symbol] = Generate(spec, cfg.Generator.Days, ref, nil)
	}
	c.benchSym = cfg.Benchmark.Symbol
	c.benchmark = Generate(cfg.Benchmark, cfg.Generator.Days, ref, nil)
	return c
}

func (c *Catalog) RefDate() time.Time { return c.ref }

// Resolve maps an unknown symbol to the first configured one; queries never
// fail on symbol lookup.
func (c *Catalog) Resolve(symbol string) string {
	if _, ok := c.meta[symbol]; ok {
		return symbol
	}
	return c.order[0]
}

func (c *Catalog) Series(symbol string) []types.Candle { return c.series[symbol] }

func (c *Catalog) Meta(symbol string) types.SymbolMeta { return c.meta[symbol] }

// Benchmark returns the index series used for beta. It is not part of the
// listed universe.
func (c *Catalog) Benchmark() []types.Candle { return c.benchmark }

func (c *Catalog) BenchmarkSymbol() string { return c.benchSym }

// Symbols returns universe metadata in configured order.
func (c *Catalog) Symbols() []types.SymbolMeta {
	out := make([]types.SymbolMeta, 0, len(c.order))
	for _, s := range c.order {
		out = append(out, c.meta[s])
	}
	return out
}

func midnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
