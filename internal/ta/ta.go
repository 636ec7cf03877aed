package ta

import "math"

func SMA(closes []float64, n int) float64 {
	if len(closes) < n || n <= 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := len(closes) - n; i < len(closes); i++ {
		sum += closes[i]
	}
	return sum / float64(n)
}

func RSI(closes []float64, period int) float64 {
	if len(closes) < period+1 || period <= 0 {
		return math.NaN()
	}
	gain, loss := 0.0, 0.0
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	if loss == 0 {
		return 100.0
	}
	rs := (gain / float64(period)) / (loss / float64(period))
	return 100.0 - (100.0 / (1.0 + rs))
}

func StdDev(vals []float64, n int) float64 {
	if len(vals) < n || n <= 0 {
		return math.NaN()
	}
	m := SMA(vals, n)
	s := 0.0
	for i := len(vals) - n; i < len(vals); i++ {
		d := vals[i] - m
		s += d * d
	}
	return math.Sqrt(s / float64(n))
}

func Bollinger(closes []float64, n int, k float64) (mid, up, low float64) {
	mid = SMA(closes, n)
	sd := StdDev(closes, n)
	up = mid + k*sd
	low = mid - k*sd
	return
}

func ATR(highs, lows, closes []float64, period int) float64 {
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return math.NaN()
	}
	n := period
	if len(closes) < n+1 {
		return math.NaN()
	}
	trs := make([]float64, 0, n)
	for i := len(closes) - n; i < len(closes); i++ {
		tr1 := highs[i] - lows[i]
		tr2 := math.Abs(highs[i] - closes[i-1])
		tr3 := math.Abs(lows[i] - closes[i-1])
		tr := math.Max(tr1, math.Max(tr2, tr3))
		trs = append(trs, tr)
	}
	sum := 0.0
	for _, v := range trs {
		sum += v
	}
	return sum / float64(n)
}

// SMASeries returns the rolling n-period SMA aligned to the input; positions
// before the window fills are NaN.
func SMASeries(closes []float64, n int) []float64 {
	out := make([]float64, len(closes))
	for i := range out {
		out[i] = math.NaN()
	}
	if n <= 0 || len(closes) < n {
		return out
	}
	sum := 0.0
	for i, v := range closes {
		sum += v
		if i >= n {
			sum -= closes[i-n]
		}
		if i >= n-1 {
			out[i] = sum / float64(n)
		}
	}
	return out
}

// RSISeries returns a per-bar RSI using running-average gain/loss smoothing
// seeded from zero. The first `period` bars emit a flat 50 placeholder before
// the smoothing output takes over. This is a deliberate approximation, not
// the classical Wilder initialization.
func RSISeries(closes []float64, period int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	out[0] = 50.0
	if period <= 0 {
		for i := range out {
			out[i] = 50.0
		}
		return out
	}
	avgGain, avgLoss := 0.0, 0.0
	for i := 1; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if d > 0 {
			gain = d
		} else {
			loss = -d
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		if i < period {
			out[i] = 50.0
			continue
		}
		if avgLoss == 0 {
			out[i] = 100.0
			continue
		}
		rs := avgGain / avgLoss
		out[i] = 100.0 - (100.0 / (1.0 + rs))
	}
	return out
}

// Highest returns the max of the last n values, NaN when fewer than n exist.
func Highest(vals []float64, n int) float64 {
	if n <= 0 || len(vals) < n {
		return math.NaN()
	}
	max := vals[len(vals)-n]
	for _, v := range vals[len(vals)-n+1:] {
		if v > max {
			max = v
		}
	}
	return max
}
