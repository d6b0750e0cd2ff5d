package engine

const (
	isaacSizeL  = 8
	isaacSize   = 1 << isaacSizeL
	isaacGolden = 0x9e3779b9
)

// ISAAC is Bob Jenkins' 32-bit ISAAC generator. Results are consumed from the
// end of each 256-word block and tempered like MT19937 output.
type ISAAC struct {
	mem        [isaacSize]uint32
	rsl        [isaacSize]uint32
	aa, bb, cc uint32
	count      int
}

// NewISAAC folds the 64-bit seed into the first two result words and runs
// the keyed initialisation.
func NewISAAC(seed uint64) *ISAAC {
	s := &ISAAC{}
	s.rsl[0] = uint32(seed)
	s.rsl[1] = uint32(seed >> 32)
	s.init()
	return s
}

type isaacRegs [8]uint32

func (r *isaacRegs) mix() {
	a, b, c, d, e, f, g, h := r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7]
	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b
	r[0], r[1], r[2], r[3], r[4], r[5], r[6], r[7] = a, b, c, d, e, f, g, h
}

func (s *ISAAC) init() {
	var r isaacRegs
	for i := range r {
		r[i] = isaacGolden
	}
	for i := 0; i < 4; i++ {
		r.mix()
	}

	// Fold the seed words, then the memory itself.
	for _, src := range []*[isaacSize]uint32{&s.rsl, &s.mem} {
		for i := 0; i < isaacSize; i += 8 {
			for j := range r {
				r[j] += src[i+j]
			}
			r.mix()
			copy(s.mem[i:i+8], r[:])
		}
	}

	s.generate()
}

// generate runs one mixing pass, refilling all result words.
func (s *ISAAC) generate() {
	s.cc++
	s.bb += s.cc
	for i := 0; i < isaacSize; i++ {
		x := s.mem[i]
		switch i & 3 {
		case 0:
			s.aa ^= s.aa << 13
		case 1:
			s.aa ^= s.aa >> 6
		case 2:
			s.aa ^= s.aa << 2
		case 3:
			s.aa ^= s.aa >> 16
		}
		s.aa += s.mem[(i+isaacSize/2)&(isaacSize-1)]
		y := s.mem[(x>>2)&(isaacSize-1)] + s.aa + s.bb
		s.mem[i] = y
		s.bb = s.mem[(y>>isaacSizeL>>2)&(isaacSize-1)] + x
		s.rsl[i] = s.bb
	}
	s.count = isaacSize
}

// Uint32 pops the next tempered result word.
func (s *ISAAC) Uint32() uint32 {
	if s.count == 0 {
		s.generate()
	}
	s.count--
	return temper(s.rsl[s.count])
}

func (s *ISAAC) Next() float64 {
	return unitFloat(s.Uint32())
}
