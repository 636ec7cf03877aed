package snapshot

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketdeck/internal/market"
	"marketdeck/internal/sentiment"
	"marketdeck/internal/store"
	"marketdeck/internal/strategy"
)

var testRef = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func testAssembler(t *testing.T) *Assembler {
	t.Helper()
	cfg := store.Default()
	catalog := market.NewCatalogAt(cfg, testRef)
	feed := sentiment.NewFeed(testRef)
	return New(cfg, catalog, feed)
}

func TestSnapshotDefaultsApplied(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "AAPL", Options{})
	if snap.LookbackDays != 180 {
		t.Errorf("lookback = %d, want configured default 180", snap.LookbackDays)
	}
	if snap.Capital != 10000 {
		t.Errorf("capital = %v, want configured default 10000", snap.Capital)
	}
	if len(snap.Candles) == 0 || len(snap.Candles) > 180 {
		t.Errorf("window has %d candles, want (0,180]", len(snap.Candles))
	}
	if !snap.AsOf.Equal(testRef) {
		t.Errorf("asOf = %v, want reference date %v", snap.AsOf, testRef)
	}
}

func TestSnapshotUnknownSymbolFallsBack(t *testing.T) {
	a := testAssembler(t)
	first := a.Symbols()[0].Symbol
	snap := a.Snapshot(context.Background(), "NO-SUCH", Options{})
	if snap.Symbol.Symbol != first {
		t.Errorf("resolved symbol = %s, want first configured %s", snap.Symbol.Symbol, first)
	}
}

func TestSnapshotEvaluatesAllStrategies(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "MSFT", Options{LookbackDays: 120, Capital: 5000})
	if len(snap.Strategies) != 3 {
		t.Fatalf("strategies = %d, want 3", len(snap.Strategies))
	}
	best := snap.Strategies[0]
	for _, ev := range snap.Strategies[1:] {
		if ev.TotalReturnPct > best.TotalReturnPct {
			best = ev
		}
	}
	if snap.BestStrategy != best.StrategyID {
		t.Errorf("best strategy = %s, want %s", snap.BestStrategy, best.StrategyID)
	}
}

func TestSnapshotShortWindow(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "AAPL", Options{LookbackDays: strategy.MinCandles - 5})
	for _, ev := range snap.Strategies {
		if len(ev.Trades) != 0 || ev.Confidence != 0.2 {
			t.Errorf("%s: trades=%d confidence=%v, want 0 and 0.2 on short window", ev.StrategyID, len(ev.Trades), ev.Confidence)
		}
	}
	if snap.BestStrategy != "" {
		t.Errorf("best strategy = %q, want empty on short window", snap.BestStrategy)
	}
	found := false
	for _, r := range snap.Recommendations {
		if strings.Contains(r, "too short") {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations %v lack the short-window notice", snap.Recommendations)
	}
}

func TestSnapshotSentimentWired(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "TSLA", Options{})
	if snap.Sentiment.Label != sentiment.LabelBearish {
		t.Fatalf("TSLA sentiment label = %s, want Bearish", snap.Sentiment.Label)
	}
	found := false
	for _, r := range snap.Recommendations {
		if strings.Contains(r, "bearish") {
			found = true
		}
	}
	if !found {
		t.Errorf("recommendations %v lack the bearish sentiment line", snap.Recommendations)
	}
}

func TestSnapshotQuoteBounds(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "XOM", Options{})
	q := snap.Quote
	if q.Last <= 0 || q.PrevClose <= 0 {
		t.Fatalf("quote prices not positive: %+v", q)
	}
	if q.RangeHigh < q.Last || q.RangeLow > q.Last {
		t.Errorf("last %v outside range [%v, %v]", q.Last, q.RangeLow, q.RangeHigh)
	}
	if q.AvgVolume <= 0 {
		t.Errorf("avg volume = %d, want positive", q.AvgVolume)
	}
}

func TestSnapshotWindowBounds(t *testing.T) {
	a := testAssembler(t)
	snap := a.Snapshot(context.Background(), "JPM", Options{LookbackDays: 60})
	if len(snap.Candles) == 0 {
		t.Fatal("empty window")
	}
	if !snap.WindowStart.Equal(snap.Candles[0].Date) {
		t.Errorf("window start %v != first candle %v", snap.WindowStart, snap.Candles[0].Date)
	}
	if !snap.WindowEnd.Equal(snap.Candles[len(snap.Candles)-1].Date) {
		t.Errorf("window end %v != last candle %v", snap.WindowEnd, snap.Candles[len(snap.Candles)-1].Date)
	}
	if snap.WindowEnd.Weekday() == time.Saturday || snap.WindowEnd.Weekday() == time.Sunday {
		t.Errorf("window end %v falls on a weekend", snap.WindowEnd)
	}
}

func TestSymbolsMatchesCatalog(t *testing.T) {
	a := testAssembler(t)
	symbols := a.Symbols()
	if len(symbols) != 8 {
		t.Fatalf("symbols = %d, want default universe of 8", len(symbols))
	}
	if symbols[0].Symbol != "AAPL" {
		t.Errorf("first symbol = %s, want AAPL", symbols[0].Symbol)
	}
}
