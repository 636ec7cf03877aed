package sentiment

import "time"

const (
	LabelBullish = "Bullish"
	LabelNeutral = "Neutral"
	LabelBearish = "Bearish"
)

const fallbackCatalyst = "No single catalyst; sentiment driven by broad coverage."

// Item is one authored news entry with a precomputed score in [-1, 1] and a
// relevance weight in [0, 1].
type Item struct {
	ID        string    `json:"id"`
	Symbol    string    `json:"symbol"`
	Headline  string    `json:"headline"`
	Summary   string    `json:"summary"`
	Source    string    `json:"source"`
	Score     float64   `json:"score"`
	Relevance float64   `json:"relevance"`
	Date      time.Time `json:"date"`
}

type Summary struct {
	Label     string  `json:"label"`
	MeanScore float64 `json:"meanScore"`
	Catalyst  string  `json:"catalyst"`
	Items     []Item  `json:"items"`
}

// Aggregate reduces a symbol's items to a label, mean score, and catalyst
// headline. The label thresholds are strict: a mean of exactly +/-0.25 stays
// Neutral. The catalyst is the first strongly positive item (score > 0.5),
// else the first strongly negative one (score < -0.5), else a fixed fallback.
func Aggregate(items []Item) Summary {
	if len(items) == 0 {
		return Summary{Label: LabelNeutral, Catalyst: fallbackCatalyst, Items: []Item{}}
	}
	sum := 0.0
	for _, it := range items {
		sum += it.Score
	}
	mean := sum / float64(len(items))

	label := LabelNeutral
	switch {
	case mean > 0.25:
		label = LabelBullish
	case mean < -0.25:
		label = LabelBearish
	}

	catalyst := ""
	for _, it := range items {
		if it.Score > 0.5 {
			catalyst = it.Headline
			break
		}
	}
	if catalyst == "" {
		for _, it := range items {
			if it.Score < -0.5 {
				catalyst = it.Headline
				break
			}
		}
	}
	if catalyst == "" {
		catalyst = fallbackCatalyst
	}

	return Summary{Label: label, MeanScore: mean, Catalyst: catalyst, Items: items}
}
