package snapshot

import (
	"time"

	"marketdeck/internal/metrics"
	"marketdeck/internal/sentiment"
	"marketdeck/internal/strategy"
	"marketdeck/internal/types"
)

// Options are per-query knobs; non-positive values fall back to the
// configured defaults.
type Options struct {
	LookbackDays int
	Capital      float64
}

// Quote is the header block the dashboard renders above the chart. The
// high/low range spans the full generated series, not just the query window.
type Quote struct {
	Last      float64 `json:"last"`
	PrevClose float64 `json:"prevClose"`
	ChangePct float64 `json:"changePct"`
	RangeHigh float64 `json:"rangeHigh"`
	RangeLow  float64 `json:"rangeLow"`
	AvgVolume int64   `json:"avgVolume"`
}

// Snapshot is the single response object for one symbol query.
type Snapshot struct {
	Symbol          types.SymbolMeta      `json:"symbol"`
	AsOf            time.Time             `json:"asOf"`
	LookbackDays    int                   `json:"lookbackDays"`
	Capital         float64               `json:"capital"`
	WindowStart     time.Time             `json:"windowStart"`
	WindowEnd       time.Time             `json:"windowEnd"`
	Candles         []types.Candle        `json:"candles"`
	Quote           Quote                 `json:"quote"`
	Indicators      types.Indicators      `json:"indicators"`
	Risk            metrics.RiskMetrics   `json:"risk"`
	Strategies      []strategy.Evaluation `json:"strategies"`
	BestStrategy    string                `json:"bestStrategy"`
	Sentiment       sentiment.Summary     `json:"sentiment"`
	Recommendations []string              `json:"recommendations"`
}
