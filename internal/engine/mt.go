package engine

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
	mtInitMult  = 1812433253
)

// MT19937 is the 32-bit Mersenne Twister.
type MT19937 struct {
	mt    [mtN]uint32
	index int
}

// NewMT19937 seeds the lattice from the low 32 bits of seed. The first draw
// twists the freshly initialised array.
func NewMT19937(seed uint64) *MT19937 {
	m := &MT19937{}
	m.mt[0] = uint32(seed)
	for i := 1; i < mtN; i++ {
		prev := m.mt[i-1]
		m.mt[i] = mtInitMult*(prev^(prev>>30)) + uint32(i)
	}
	return m
}

func (m *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (m.mt[i] & mtUpperMask) | (m.mt[(i+1)%mtN] & mtLowerMask)
		m.mt[i] = m.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			m.mt[i] ^= mtMatrixA
		}
	}
}

// Uint32 returns the next tempered word, regenerating the lattice every
// 624 draws.
func (m *MT19937) Uint32() uint32 {
	if m.index == 0 {
		m.twist()
	}
	y := temper(m.mt[m.index])
	m.index = (m.index + 1) % mtN
	return y
}

func (m *MT19937) Next() float64 {
	return unitFloat(m.Uint32())
}
