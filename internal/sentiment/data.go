package sentiment

// Authored feed entries. Scores are hand-assigned in [-1, 1]; daysAgo is
// resolved against the feed's reference date at construction.
type authoredItem struct {
	id        string
	symbol    string
	headline  string
	summary   string
	source    string
	score     float64
	relevance float64
	daysAgo   int
}

var authored = []authoredItem{
	{"aapl-1", "AAPL", "Apple services revenue hits another quarterly record", "Subscription mix keeps widening margins despite flat hardware units.", "Earnings Wire", 0.7, 0.9, 1},
	{"aapl-2", "AAPL", "Supply chain checks point to steady handset builds", "Channel survey sees orders tracking in line with seasonal norms.", "The Sector Brief", 0.4, 0.6, 4},
	{"aapl-3", "AAPL", "Regulators reopen app store commission review", "A fresh inquiry into store economics could pressure services growth.", "Market Pulse Daily", 0.1, 0.5, 9},

	{"msft-1", "MSFT", "Cloud backlog growth accelerates on enterprise renewals", "Commercial bookings came in ahead of consensus for a third straight quarter.", "Earnings Wire", 0.6, 0.9, 2},
	{"msft-2", "MSFT", "Copilot seat expansion cited across large deployments", "Adoption commentary from partners suggests upsell momentum is intact.", "Tech Ledger", 0.3, 0.7, 6},
	{"msft-3", "MSFT", "Capex guidance climbs again to fund data center buildout", "Heavier spending draws mixed reactions on near-term margin impact.", "Street Notes", 0.2, 0.6, 11},

	{"nvda-1", "NVDA", "Next-gen accelerator demand described as far ahead of supply", "Hyperscaler order commentary keeps the multi-quarter visibility narrative alive.", "Tech Ledger", 0.8, 1.0, 1},
	{"nvda-2", "NVDA", "Networking attach rates surprise to the upside", "Systems sales are pulling through switching revenue faster than modeled.", "The Sector Brief", 0.55, 0.7, 5},
	{"nvda-3", "NVDA", "Export control tightening clouds a slice of data center revenue", "New license requirements could defer some international shipments.", "Macro Desk Review", -0.2, 0.8, 8},

	{"amzn-1", "AMZN", "Retail unit economics keep improving on regional fulfillment", "Cost to serve fell again even as delivery speeds improved.", "Street Notes", 0.3, 0.7, 3},
	{"amzn-2", "AMZN", "Union vote scheduled at two additional warehouses", "Labor developments add modest cost uncertainty into the quarter.", "Market Pulse Daily", -0.25, 0.5, 7},
	{"amzn-3", "AMZN", "Advertising growth steady but decelerating", "Sponsored product pricing held up while impression growth cooled.", "The Sector Brief", 0.1, 0.6, 12},

	{"googl-1", "GOOGL", "Search monetization resilient through query mix shift", "AI overview rollout has not dented paid click growth so far.", "Tech Ledger", 0.45, 0.8, 2},
	{"googl-2", "GOOGL", "Antitrust remedies hearing set for next month", "Structural remedy scenarios remain a wide distribution of outcomes.", "Macro Desk Review", -0.35, 0.9, 6},
	{"googl-3", "GOOGL", "YouTube engagement flat quarter over quarter", "Shorts monetization gap continues to narrow slowly.", "Market Pulse Daily", 0.0, 0.4, 10},

	{"tsla-1", "TSLA", "Quarterly deliveries miss lowered expectations", "Volume shortfall deepens concern about demand elasticity after price cuts.", "Earnings Wire", -0.7, 1.0, 2},
	{"tsla-2", "TSLA", "Margin guidance trimmed on incentive spending", "Management flagged continued pricing pressure in key regions.", "Street Notes", -0.4, 0.8, 5},
	{"tsla-3", "TSLA", "Energy storage deployments set another record", "The storage segment remains the clearest bright spot in the mix.", "The Sector Brief", 0.2, 0.6, 9},

	{"jpm-1", "JPM", "Net interest income outlook nudged higher", "Deposit repricing is proving slower than the street feared.", "Earnings Wire", 0.35, 0.8, 3},
	{"jpm-2", "JPM", "Trading revenue normalizing after a strong run", "Markets division guided back toward historical seasonal ranges.", "Street Notes", 0.15, 0.6, 7},
	{"jpm-3", "JPM", "Card delinquencies tick up within expected band", "Consumer credit normalization continues without breaking trend.", "Macro Desk Review", -0.1, 0.7, 11},

	{"xom-1", "XOM", "Crude slide drags integrated majors lower", "Benchmark prices fell on soft demand revisions, pressuring upstream earnings.", "Energy Outlook Weekly", -0.6, 0.9, 1},
	{"xom-2", "XOM", "Refining cracks compress from elevated levels", "Downstream capture rates are reverting toward mid-cycle.", "The Sector Brief", -0.3, 0.7, 6},
	{"xom-3", "XOM", "Guyana expansion remains ahead of schedule", "Project milestones keep long-cycle production growth on track.", "Energy Outlook Weekly", -0.05, 0.5, 10},
}
