package engine

// Xorshift128 is the two-word xor-shift recurrence used by xorshift128+,
// without the final addition: the output is the new x word.
type Xorshift128 struct {
	x, y uint64
}

func NewXorshift128(x, y uint64) *Xorshift128 {
	return &Xorshift128{x: x, y: y}
}

// Uint64 advances both words and returns the new x.
func (s *Xorshift128) Uint64() uint64 {
	x, y := s.x, s.y
	x ^= x << 23
	y ^= y >> 17
	x ^= y
	y ^= y << 26
	s.x, s.y = x, y
	return x
}

// Next scales the top 53 bits of the output, so 2^64-1 maps below 1.
func (s *Xorshift128) Next() float64 {
	return float64(s.Uint64()>>11) / twoPow53
}
