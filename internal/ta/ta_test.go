package ta

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	if got := SMA(closes, 5); !almostEqual(got, 3) {
		t.Errorf("SMA(5) = %v, want 3", got)
	}
	if got := SMA(closes, 2); !almostEqual(got, 4.5) {
		t.Errorf("SMA(2) = %v, want 4.5", got)
	}
	if got := SMA(closes, 6); !math.IsNaN(got) {
		t.Errorf("SMA with short input = %v, want NaN", got)
	}
	if got := SMA(closes, 0); !math.IsNaN(got) {
		t.Errorf("SMA with n=0 = %v, want NaN", got)
	}
}

func TestRSIAllGains(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
	if got := RSI(closes, 14); !almostEqual(got, 100) {
		t.Errorf("RSI on monotonic gains = %v, want 100", got)
	}
}

func TestSMASeriesAlignment(t *testing.T) {
	closes := []float64{2, 4, 6, 8}
	s := SMASeries(closes, 2)
	if len(s) != len(closes) {
		t.Fatalf("series length = %d, want %d", len(s), len(closes))
	}
	if !math.IsNaN(s[0]) {
		t.Errorf("s[0] = %v, want NaN before window fills", s[0])
	}
	want := []float64{math.NaN(), 3, 5, 7}
	for i := 1; i < len(want); i++ {
		if !almostEqual(s[i], want[i]) {
			t.Errorf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestRSISeriesWarmup(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	s := RSISeries(closes, 14)
	for i := 0; i < 14; i++ {
		if !almostEqual(s[i], 50) {
			t.Errorf("s[%d] = %v, want 50 during warm-up", i, s[i])
		}
	}
	for i := 14; i < len(s); i++ {
		if !almostEqual(s[i], 100) {
			t.Errorf("s[%d] = %v, want 100 on all-gain path", i, s[i])
		}
	}
}

func TestRSISeriesBounded(t *testing.T) {
	closes := []float64{100, 98, 103, 99, 104, 101, 107, 102, 108, 105, 110, 104, 111, 106, 112, 107, 113}
	s := RSISeries(closes, 14)
	for i, v := range s {
		if v < 0 || v > 100 {
			t.Errorf("s[%d] = %v out of [0,100]", i, v)
		}
	}
}

func TestHighest(t *testing.T) {
	vals := []float64{3, 9, 4, 7}
	if got := Highest(vals, 3); !almostEqual(got, 9) {
		t.Errorf("Highest(3) = %v, want 9", got)
	}
	if got := Highest(vals, 2); !almostEqual(got, 7) {
		t.Errorf("Highest(2) = %v, want 7", got)
	}
	if got := Highest(vals, 5); !math.IsNaN(got) {
		t.Errorf("Highest with short input = %v, want NaN", got)
	}
}

func TestBollingerBandsOrdering(t *testing.T) {
	closes := []float64{10, 11, 9, 12, 10, 11, 10, 9, 12, 11, 10, 12, 9, 11, 10, 12, 11, 10, 9, 12}
	mid, up, low := Bollinger(closes, 20, 2.0)
	if !(low < mid && mid < up) {
		t.Errorf("band ordering violated: low=%v mid=%v up=%v", low, mid, up)
	}
}
