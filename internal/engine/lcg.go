package engine

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
)

// LCG is the Numerical Recipes linear congruential generator modulo 2^32.
type LCG struct {
	state uint32
}

// NewLCG seeds the generator with the low 32 bits of seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: uint32(seed)}
}

// Uint32 advances the state and returns it.
func (l *LCG) Uint32() uint32 {
	l.state = l.state*lcgMultiplier + lcgIncrement
	return l.state
}

func (l *LCG) Next() float64 {
	return unitFloat(l.Uint32())
}
