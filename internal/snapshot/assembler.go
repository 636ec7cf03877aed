package snapshot

import (
	"context"
	"fmt"
	"math"

	"marketdeck/internal/logger"
	"marketdeck/internal/market"
	"marketdeck/internal/metrics"
	"marketdeck/internal/sentiment"
	"marketdeck/internal/store"
	"marketdeck/internal/strategy"
	"marketdeck/internal/ta"
	"marketdeck/internal/types"
)

// Assembler composes catalog data, sentiment, metrics and strategy results
// into snapshots. It holds only immutable state and is safe for concurrent
// use.
type Assembler struct {
	catalog         *market.Catalog
	feed            *sentiment.Feed
	defaultLookback int
	defaultCapital  float64
}

func New(cfg *store.Config, catalog *market.Catalog, feed *sentiment.Feed) *Assembler {
	return &Assembler{
		catalog:         catalog,
		feed:            feed,
		defaultLookback: cfg.Query.LookbackDays,
		defaultCapital:  cfg.Query.Capital,
	}
}

// Symbols lists the configured universe in order.
func (a *Assembler) Symbols() []types.SymbolMeta {
	return a.catalog.Symbols()
}

// Snapshot builds the full dashboard response for one symbol. Unknown
// symbols fall back silently to the first configured one; non-positive
// options take the configured defaults. Derived statistics are recomputed
// fresh on every call.
func (a *Assembler) Snapshot(ctx context.Context, symbol string, opts Options) Snapshot {
	timer := logger.StartOperation(ctx, "snapshot.assemble", "symbol", symbol)
	ctx = timer.GetContext()

	resolved := a.catalog.Resolve(symbol)
	if resolved != symbol {
		logger.Warn(ctx, "Unknown symbol requested, using fallback", "requested", symbol, "resolved", resolved)
	}
	lookback := opts.LookbackDays
	if lookback <= 0 {
		lookback = a.defaultLookback
	}
	capital := opts.Capital
	if capital <= 0 {
		capital = a.defaultCapital
	}

	series := a.catalog.Series(resolved)
	window := tail(series, lookback)
	bench := tail(a.catalog.Benchmark(), lookback)

	risk := metrics.Compute(window, bench)
	evals := strategy.EvaluateAll(window, capital)
	for _, ev := range evals {
		logger.Simulation(ctx, resolved, ev.StrategyID, len(ev.Trades), ev.TotalReturnPct)
	}
	sent := a.feed.Summarize(resolved)

	snap := Snapshot{
		Symbol:       a.catalog.Meta(resolved),
		AsOf:         a.catalog.RefDate(),
		LookbackDays: lookback,
		Capital:      capital,
		Candles:      window,
		Quote:        buildQuote(series),
		Indicators:   buildIndicators(window),
		Risk:         risk,
		Strategies:   evals,
		Sentiment:    sent,
	}
	if len(window) > 0 {
		snap.WindowStart = window[0].Date
		snap.WindowEnd = window[len(window)-1].Date
	}
	if len(window) >= strategy.MinCandles {
		snap.BestStrategy = bestOf(evals).StrategyID
	}
	snap.Recommendations = recommendations(snap.Symbol, sent, risk, evals, len(window))

	logger.Query(ctx, resolved, lookback, capital)
	timer.End("resolved", resolved, "candles", len(window))
	return snap
}

// tail clamps the window to the trailing n candles.
func tail(candles []types.Candle, n int) []types.Candle {
	if n <= 0 || n >= len(candles) {
		return candles
	}
	return candles[len(candles)-n:]
}

func bestOf(evals []strategy.Evaluation) strategy.Evaluation {
	best := evals[0]
	for _, ev := range evals[1:] {
		if ev.TotalReturnPct > best.TotalReturnPct {
			best = ev
		}
	}
	return best
}

func buildQuote(series []types.Candle) Quote {
	if len(series) == 0 {
		return Quote{}
	}
	last := series[len(series)-1]
	prev := last
	if len(series) > 1 {
		prev = series[len(series)-2]
	}
	hi, lo := last.High, last.Low
	var volSum int64
	for _, c := range series {
		if c.High > hi {
			hi = c.High
		}
		if c.Low < lo {
			lo = c.Low
		}
		volSum += c.Volume
	}
	changePct := 0.0
	if prev.Close != 0 {
		changePct = (last.Close/prev.Close - 1) * 100
	}
	return Quote{
		Last:      last.Close,
		PrevClose: prev.Close,
		ChangePct: changePct,
		RangeHigh: hi,
		RangeLow:  lo,
		AvgVolume: volSum / int64(len(series)),
	}
}

// buildIndicators computes the fixed indicator readout for the window.
// Values whose warm-up exceeds the window come back NaN from the ta helpers
// and are zeroed here: the JSON encoder rejects NaN, and the dashboard
// renders 0 as "n/a".
func buildIndicators(window []types.Candle) types.Indicators {
	closes := types.Closes(window)
	highs := types.Highs(window)
	lows := types.Lows(window)

	ind := types.Indicators{SMA: map[int]float64{}}
	for _, n := range []int{20, 50, 200} {
		ind.SMA[n] = nanSafe(ta.SMA(closes, n))
	}
	ind.RSI = nanSafe(ta.RSI(closes, 14))
	mid, up, low := ta.Bollinger(closes, 20, 2.0)
	ind.BB = types.Band{Middle: nanSafe(mid), Upper: nanSafe(up), Lower: nanSafe(low)}
	ind.ATR = nanSafe(ta.ATR(highs, lows, closes, 14))
	return ind
}

func nanSafe(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// Annualized volatility above this fraction triggers the sizing warning.
const volWarnThreshold = 0.35

func recommendations(meta types.SymbolMeta, sent sentiment.Summary, risk metrics.RiskMetrics, evals []strategy.Evaluation, windowLen int) []string {
	recs := make([]string, 0, 3)

	switch sent.Label {
	case sentiment.LabelBullish:
		recs = append(recs, fmt.Sprintf("Recent coverage of %s skews bullish; catalyst: %s", meta.Symbol, sent.Catalyst))
	case sentiment.LabelBearish:
		recs = append(recs, fmt.Sprintf("Recent coverage of %s skews bearish; catalyst: %s", meta.Symbol, sent.Catalyst))
	default:
		recs = append(recs, fmt.Sprintf("Coverage of %s is balanced; no strong sentiment signal.", meta.Symbol))
	}

	if risk.AnnualVolatility > volWarnThreshold {
		recs = append(recs, fmt.Sprintf("Annualized volatility is elevated at %.0f%%; size positions conservatively.", risk.AnnualVolatility*100))
	}

	if windowLen < strategy.MinCandles {
		recs = append(recs, "Lookback window is too short for strategy evaluation; extend it for backtest-driven guidance.")
	} else {
		best := bestOf(evals)
		recs = append(recs, fmt.Sprintf("%s led the backtests with a %+.1f%% window return.", best.StrategyName, best.TotalReturnPct))
	}

	return recs
}
