package market

// Source yields uniform draws in [0,1). The generator consumes a fixed number
// of draws per emitted candle, so any deterministic implementation slots in
// behind it.
type Source interface {
	Float64() float64
}

// mulberry32 is a 32-bit multiply-xorshift stream: tiny state, fast, and
// reproducible across platforms, which is all the synthetic feed needs.
type mulberry32 struct {
	state uint32
}

func (m *mulberry32) Float64() float64 {
	m.state += 0x6d2b79f5
	t := m.state
	t = (t ^ (t >> 15)) * (t | 1)
	t = (t + (t^(t>>7))*(t|61)) ^ t
	t ^= t >> 14
	return float64(t) / 4294967296.0
}

// NewSource seeds the default stream for a symbol and requested day count.
// Identical inputs always reproduce the identical stream.
func NewSource(symbol string, days int) Source {
	return &mulberry32{state: seed(symbol, days)}
}

func seed(symbol string, days int) uint32 {
	var h uint32
	for _, ch := range symbol {
		h = h*31 + uint32(ch)
	}
	return h + uint32(days)
}
