package engine

const pcgMultiplier = 6364136223846793005

// PCG32 is a fast, small, statistically good RNG
// Based on PCG-XSH-RR with 64-bit state and 32-bit output
type PCG32 struct {
	state     uint64
	increment uint64
}

// NewPCG32 creates a generator with the given state. The increment selects
// the stream and is forced odd.
func NewPCG32(state, increment uint64) *PCG32 {
	return &PCG32{state: state, increment: increment | 1}
}

// Uint32 generates a random uint32 from the pre-advance state
func (p *PCG32) Uint32() uint32 {
	oldstate := p.state
	p.state = oldstate*pcgMultiplier + p.increment
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

func (p *PCG32) Next() float64 {
	return unitFloat(p.Uint32())
}
