package sentiment

import "time"

// Feed holds the authored items with their dates materialized against a
// reference date captured once at construction. Immutable afterwards.
type Feed struct {
	items map[string][]Item
}

// NewFeed materializes the authored entries: each entry's day offset is
// resolved to ref minus that many days, newest first per symbol.
func NewFeed(ref time.Time) *Feed {
	f := &Feed{items: make(map[string][]Item, len(authored))}
	for _, e := range authored {
		f.items[e.symbol] = append(f.items[e.symbol], Item{
			ID:        e.id,
			Symbol:    e.symbol,
			Headline:  e.headline,
			Summary:   e.summary,
			Source:    e.source,
			Score:     e.score,
			Relevance: e.relevance,
			Date:      ref.AddDate(0, 0, -e.daysAgo),
		})
	}
	return f
}

// Items returns the symbol's entries; nil for symbols with no coverage.
func (f *Feed) Items(symbol string) []Item {
	return f.items[symbol]
}

// Summarize aggregates the symbol's items into a label and catalyst.
func (f *Feed) Summarize(symbol string) Summary {
	return Aggregate(f.items[symbol])
}
