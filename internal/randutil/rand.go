// Package randutil builds math/rand/v2 generators on top of the blend engines.
package randutil

import (
	rand "math/rand/v2"

	"github.com/lox/blendrand/internal/engine"
)

const (
	goldenRatio64 = 0x9e3779b9_7f4a7c15
)

// Source32 is implemented by engines with a native 32-bit output.
type Source32 interface {
	Uint32() uint32
}

type source struct {
	src Source32
}

func (s source) Uint64() uint64 {
	hi := uint64(s.src.Uint32())
	lo := uint64(s.src.Uint32())
	return hi<<32 | lo
}

// NewSource adapts a 32-bit engine to the rand/v2 Source interface.
func NewSource(src Source32) rand.Source {
	return source{src: src}
}

// New returns a *rand.Rand seeded deterministically from the provided int64,
// backed by the PCG32 engine. The seed is spread with splitmix64 so nearby
// seeds select unrelated states and streams.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(NewSource(engine.NewPCG32(mix(u), mix(u+goldenRatio64))))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
