package metrics

import (
	"math"
	"sort"

	"marketdeck/internal/types"
)

const (
	TradingDays   = 252
	RiskFreeRate  = 0.02
	VaRConfidence = 0.95
)

type RiskMetrics struct {
	AnnualReturn     float64 `json:"annualReturn"`
	AnnualVolatility float64 `json:"annualVolatility"`
	SharpeRatio      float64 `json:"sharpeRatio"`
	MaxDrawdown      float64 `json:"maxDrawdown"`
	ValueAtRisk      float64 `json:"valueAtRisk"`
	Beta             float64 `json:"beta"`
	BestDay          float64 `json:"bestDay"`
	WorstDay         float64 `json:"worstDay"`
}

// DailyReturns is close[i]/close[i-1] - 1 over consecutive pairs; empty for
// fewer than two candles.
func DailyReturns(candles []types.Candle) []float64 {
	if len(candles) < 2 {
		return nil
	}
	out := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		out = append(out, candles[i].Close/candles[i-1].Close-1)
	}
	return out
}

func Mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	s := 0.0
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}

// SampleStdDev uses the N-1 divisor; 0 with fewer than two observations.
func SampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	m := Mean(vals)
	s := 0.0
	for _, v := range vals {
		d := v - m
		s += d * d
	}
	return math.Sqrt(s / float64(len(vals)-1))
}

// MaxDrawdown is the deepest peak-to-trough fractional decline along the
// path; 0 for an empty or monotonically rising path.
func MaxDrawdown(path []float64) float64 {
	if len(path) == 0 {
		return 0
	}
	peak := path[0]
	worst := 0.0
	for _, v := range path {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (peak - v) / peak
			if dd > worst {
				worst = dd
			}
		}
	}
	return worst
}

// ValueAtRisk picks |returns| at the floor((1-confidence)*n) position of the
// ascending sort; 0 for an empty return set.
func ValueAtRisk(returns []float64, confidence float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	sorted := make([]float64, len(returns))
	copy(sorted, returns)
	sort.Float64s(sorted)
	idx := int(math.Floor((1 - confidence) * float64(len(sorted))))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return math.Abs(sorted[idx])
}

// Beta regresses the return series against the benchmark returns over their
// aligned tails; 0 when fewer than two pairs or the benchmark never moves.
func Beta(returns, benchmark []float64) float64 {
	n := len(returns)
	if len(benchmark) < n {
		n = len(benchmark)
	}
	if n < 2 {
		return 0
	}
	r := returns[len(returns)-n:]
	b := benchmark[len(benchmark)-n:]
	mr, mb := Mean(r), Mean(b)
	var cov, varB float64
	for i := 0; i < n; i++ {
		cov += (r[i] - mr) * (b[i] - mb)
		varB += (b[i] - mb) * (b[i] - mb)
	}
	if varB == 0 {
		return 0
	}
	return cov / varB
}

// Compute derives the full risk block for a candle window, with the
// benchmark window covering the same dates. Pure function; short or empty
// windows degrade to zeroed statistics.
func Compute(candles, benchmark []types.Candle) RiskMetrics {
	returns := DailyReturns(candles)
	meanDaily := Mean(returns)
	std := SampleStdDev(returns)
	annRet := math.Pow(1+meanDaily, TradingDays) - 1
	annVol := std * math.Sqrt(TradingDays)
	sharpe := 0.0
	if annVol != 0 {
		sharpe = (annRet - RiskFreeRate) / annVol
	}
	best, worst := 0.0, 0.0
	for i, r := range returns {
		if i == 0 || r > best {
			best = r
		}
		if i == 0 || r < worst {
			worst = r
		}
	}
	return RiskMetrics{
		AnnualReturn:     annRet,
		AnnualVolatility: annVol,
		SharpeRatio:      sharpe,
		MaxDrawdown:      MaxDrawdown(types.Closes(candles)),
		ValueAtRisk:      ValueAtRisk(returns, VaRConfidence),
		Beta:             Beta(returns, DailyReturns(benchmark)),
		BestDay:          best,
		WorstDay:         worst,
	}
}
