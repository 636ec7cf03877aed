package market

import (
	"math"
	"time"

	"marketdeck/internal/store"
	"marketdeck/internal/types"
)

// Prices never drop below this floor; open, close and low are clamped to it.
const priceFloor = 5.0

// Generate synthesizes a daily candle series for one symbol. It walks from
// `days` calendar days before ref up to the day before ref, skips Saturdays
// and Sundays, and perturbs the previous close with bounded drift and gap
// draws scaled by the symbol's volatility factor. Passing a nil src uses the
// default stream seeded from (symbol, days), making the output a pure
// function of spec, days and ref.
func Generate(spec store.SymbolConfig, days int, ref time.Time, src Source) []types.Candle {
	if days <= 0 {
		return nil
	}
	if src == nil {
		src = NewSource(spec.Symbol, days)
	}
	vol := spec.Volatility / 100.0
	candles := make([]types.Candle, 0, days)
	prevClose := spec.BasePrice
	for i := days; i >= 1; i-- {
		day := ref.AddDate(0, 0, -i)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		drift := (src.Float64() - 0.48) * 2.2 * vol
		gap := (src.Float64() - 0.5) * 0.8 * vol
		open := clampFloor(prevClose * (1 + gap))
		cls := clampFloor(prevClose * (1 + drift))
		high := math.Max(open, cls) * (1 + src.Float64()*0.9*vol)
		low := clampFloor(math.Min(open, cls) * (1 - src.Float64()*0.9*vol))
		volume := int64(float64(spec.BaseVolume) * (0.55 + src.Float64()*0.9) * (1 + spec.Volatility/12.0))
		candles = append(candles, types.Candle{
			Date:   day,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  cls,
			Volume: volume,
		})
		prevClose = cls
	}
	return candles
}

func clampFloor(price float64) float64 {
	if price < priceFloor {
		return priceFloor
	}
	return price
}
