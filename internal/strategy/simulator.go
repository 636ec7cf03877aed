package strategy

import (
	"math"
	"time"

	"marketdeck/internal/metrics"
	"marketdeck/internal/ta"
	"marketdeck/internal/types"
)

const insufficientData = "Insufficient data to evaluate this strategy; extend the lookback window."

// Evaluate runs one strategy over a candle window with all-in capital and a
// FLAT/LONG position machine. Entries and exits both fill at the signal
// bar's close; a position still open at the final candle is force-closed
// there, so the output never carries an unresolved position.
func Evaluate(cfg Config, candles []types.Candle, capital float64) Evaluation {
	ev := Evaluation{
		StrategyID:   cfg.ID,
		StrategyName: cfg.Name,
		Description:  cfg.Description,
		Trades:       []Trade{},
		EquityCurve:  []EquityPoint{},
	}
	if capital <= 0 {
		capital = 1
	}
	ev.FinalEquity = capital
	if len(candles) < MinCandles {
		ev.Confidence = 0.2
		ev.Recommendation = insufficientData
		return ev
	}

	enter, exit := rules(cfg.ID, candles)
	equity := capital
	curve := make([]EquityPoint, 0, len(candles))
	curve = append(curve, EquityPoint{Date: candles[0].Date, Value: equity})

	long := false
	entryIdx := 0
	entryPrice := 0.0
	last := len(candles) - 1
	for i := 1; i <= last; i++ {
		c := candles[i]
		if long && (exit(i) || i == last) {
			ev.Trades = append(ev.Trades, newTrade(candles[entryIdx].Date, c.Date, entryPrice, c.Close))
			equity *= c.Close / entryPrice
			long = false
		} else if !long && i < last && enter(i) {
			// no fresh entries on the final bar
			long = true
			entryIdx = i
			entryPrice = c.Close
		}
		if long {
			curve = append(curve, EquityPoint{Date: c.Date, Value: equity * c.Close / entryPrice})
		} else {
			curve = append(curve, EquityPoint{Date: c.Date, Value: equity})
		}
	}

	ev.EquityCurve = curve
	ev.FinalEquity = equity
	summarize(&ev, capital, len(candles))
	return ev
}

// EvaluateAll runs every configured strategy over the same window.
func EvaluateAll(candles []types.Candle, capital float64) []Evaluation {
	configs := Configs()
	out := make([]Evaluation, 0, len(configs))
	for _, cfg := range configs {
		out = append(out, Evaluate(cfg, candles, capital))
	}
	return out
}

// rules maps a strategy id to entry/exit predicates over bar indexes. The
// indicator series are NaN during their warm-up, and NaN comparisons are
// false, so signals cannot fire before the windows fill.
func rules(id string, candles []types.Candle) (enter, exit func(i int) bool) {
	closes := types.Closes(candles)
	switch id {
	case MomentumCross:
		fast := ta.SMASeries(closes, 10)
		slow := ta.SMASeries(closes, 40)
		enter = func(i int) bool { return fast[i] > slow[i] && fast[i-1] <= slow[i-1] }
		exit = func(i int) bool { return fast[i] < slow[i] && fast[i-1] >= slow[i-1] }
	case RSIReversion:
		rsi := ta.RSISeries(closes, 14)
		enter = func(i int) bool { return rsi[i] < 40 }
		exit = func(i int) bool { return rsi[i] > 55 }
	case VolBreakout:
		highs := types.Highs(candles)
		sma := ta.SMASeries(closes, 10)
		enter = func(i int) bool { return candles[i].Close > ta.Highest(highs[:i], 20) }
		exit = func(i int) bool { return candles[i].Close < sma[i] }
	default:
		never := func(int) bool { return false }
		enter, exit = never, never
	}
	return enter, exit
}

func newTrade(entryDate, exitDate time.Time, entryPrice, exitPrice float64) Trade {
	days := int(exitDate.Sub(entryDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return Trade{
		EntryDate:   entryDate,
		ExitDate:    exitDate,
		EntryPrice:  entryPrice,
		ExitPrice:   exitPrice,
		ReturnPct:   (exitPrice/entryPrice - 1) * 100,
		HoldingDays: days,
	}
}

func summarize(ev *Evaluation, capital float64, bars int) {
	winners := 0
	for _, tr := range ev.Trades {
		if tr.ReturnPct > 0 {
			winners++
		}
	}
	if n := len(ev.Trades); n > 0 {
		ev.WinRate = float64(winners) / float64(n)
	}

	total := ev.FinalEquity/capital - 1
	ev.TotalReturnPct = total * 100

	years := float64(bars) / float64(metrics.TradingDays)
	if min := 1.0 / float64(metrics.TradingDays); years < min {
		years = min
	}
	ev.CAGR = math.Pow(1+total, 1/years) - 1

	values := make([]float64, len(ev.EquityCurve))
	for i, p := range ev.EquityCurve {
		values[i] = p.Value
	}
	ev.MaxDrawdown = metrics.MaxDrawdown(values)

	switch n := len(ev.Trades); {
	case n >= 6:
		ev.Confidence = 0.82
	case n >= 3:
		ev.Confidence = 0.64
	default:
		ev.Confidence = 0.42
	}

	switch {
	case ev.TotalReturnPct > 12:
		ev.Recommendation = "Strong backtest performance; consider allocating with position sizing discipline."
	case ev.TotalReturnPct > 0:
		ev.Recommendation = "Modest positive edge in the window; monitor before committing capital."
	default:
		ev.Recommendation = "Underperformed in the window; avoid until conditions improve."
	}
}
