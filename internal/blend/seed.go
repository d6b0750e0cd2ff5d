package blend

import "strconv"

// Seed is an optional user-supplied seed. The zero value means no seed was
// given, which is distinct from an explicit seed of 0.
type Seed struct {
	value int64
	set   bool
}

// NoSeed is the absent seed.
var NoSeed = Seed{}

// SeedOf returns a present seed holding v.
func SeedOf(v int64) Seed {
	return Seed{value: v, set: true}
}

// Value returns the seed and whether one was supplied.
func (s Seed) Value() (int64, bool) {
	return s.value, s.set
}

func (s Seed) String() string {
	if !s.set {
		return "none"
	}
	return strconv.FormatInt(s.value, 10)
}

// DeriveMaster computes the master seed: the clock reading alone when no seed
// is supplied, otherwise seed × clock. The product wraps at 64 bits; engines
// only consume its low 32 or 64 bits, which wrapping preserves exactly.
func DeriveMaster(seed Seed, clockMillis int64) int64 {
	if v, ok := seed.Value(); ok {
		return v * clockMillis
	}
	return clockMillis
}
