package strategy

import "time"

// Strategy identifiers. The set is fixed; every snapshot evaluates all three.
const (
	MomentumCross = "momentum-cross"
	RSIReversion  = "rsi-reversion"
	VolBreakout   = "vol-breakout"
)

// MinCandles is the simulation floor: shorter windows return the
// insufficient-data evaluation instead of running.
const MinCandles = 30

type Config struct {
	ID          string
	Name        string
	Description string
}

func Configs() []Config {
	return []Config{
		{
			ID:          MomentumCross,
			Name:        "Momentum Crossover",
			Description: "Long when the 10-day SMA crosses above the 40-day SMA, flat on the reverse cross.",
		},
		{
			ID:          RSIReversion,
			Name:        "RSI Mean Reversion",
			Description: "Long when the 14-day RSI drops below 40, flat once it recovers above 55.",
		},
		{
			ID:          VolBreakout,
			Name:        "Volatility Breakout",
			Description: "Long when price clears the trailing 20-day high, flat when it slips under the 10-day SMA.",
		},
	}
}

type Trade struct {
	EntryDate   time.Time `json:"entryDate"`
	ExitDate    time.Time `json:"exitDate"`
	EntryPrice  float64   `json:"entryPrice"`
	ExitPrice   float64   `json:"exitPrice"`
	ReturnPct   float64   `json:"returnPct"`
	HoldingDays int       `json:"holdingDays"`
}

type EquityPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type Evaluation struct {
	StrategyID     string        `json:"strategyId"`
	StrategyName   string        `json:"strategyName"`
	Description    string        `json:"description"`
	Trades         []Trade       `json:"trades"`
	EquityCurve    []EquityPoint `json:"equityCurve"`
	FinalEquity    float64       `json:"finalEquity"`
	TotalReturnPct float64       `json:"totalReturnPct"`
	CAGR           float64       `json:"cagr"`
	WinRate        float64       `json:"winRate"`
	MaxDrawdown    float64       `json:"maxDrawdown"`
	Confidence     float64       `json:"confidence"`
	Recommendation string        `json:"recommendation"`
}
