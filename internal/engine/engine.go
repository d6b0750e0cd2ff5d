// Package engine implements the five classical pseudo-random generators that
// feed the blended output. Each engine owns its state exclusively and is not
// safe for concurrent use.
package engine

import "fmt"

const (
	twoPow32 = 1 << 32
	twoPow53 = 1 << 53
)

// Engine produces uniformly distributed floats in [0, 1).
type Engine interface {
	Next() float64
}

// Kind identifies one of the supported generator algorithms.
type Kind int

const (
	KindLCG Kind = iota
	KindXorshift128
	KindMT19937
	KindPCG32
	KindISAAC
)

// Kinds returns every supported kind in the order the blend draws from them.
func Kinds() []Kind {
	return []Kind{KindLCG, KindXorshift128, KindMT19937, KindPCG32, KindISAAC}
}

func (k Kind) String() string {
	switch k {
	case KindLCG:
		return "lcg"
	case KindXorshift128:
		return "xorshift128"
	case KindMT19937:
		return "mt19937"
	case KindPCG32:
		return "pcg32"
	case KindISAAC:
		return "isaac"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// New constructs the engine of the given kind from a master seed. Engines that
// take two parameters receive master and master+1.
func New(kind Kind, master int64) Engine {
	seed := uint64(master)
	switch kind {
	case KindLCG:
		return NewLCG(seed)
	case KindXorshift128:
		return NewXorshift128(seed, seed+1)
	case KindMT19937:
		return NewMT19937(seed)
	case KindPCG32:
		return NewPCG32(seed, seed+1)
	case KindISAAC:
		return NewISAAC(seed)
	default:
		panic(fmt.Sprintf("engine: unknown kind %d", int(kind)))
	}
}

// temper is the MT19937 output transform, shared with ISAAC.
func temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func unitFloat(v uint32) float64 {
	return float64(v) / twoPow32
}
