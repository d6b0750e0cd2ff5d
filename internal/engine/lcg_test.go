package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLCGKnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed uint64
		want float64
	}{
		{name: "seed 0", seed: 0, want: 1013904223.0 / (1 << 32)},
		{name: "seed 1", seed: 1, want: float64((1664525+1013904223)%(1<<32)) / (1 << 32)},
		{name: "high bits ignored", seed: 1<<32 | 1, want: float64(1664525+1013904223) / (1 << 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLCG(tt.seed).Next())
		})
	}
}

func TestLCGWraps(t *testing.T) {
	t.Parallel()

	l := NewLCG(0xffffffff)
	// 1664525*(2^32-1) + 1013904223 mod 2^32
	want := uint32(1013904223 - 1664525)
	assert.Equal(t, want, l.Uint32())
}

func TestLCGNegativeSeedMatchesMaskedSeed(t *testing.T) {
	t.Parallel()

	a := New(KindLCG, -5)
	b := NewLCG(uint64(uint32(1<<32 - 5)))
	assert.Equal(t, b.Next(), a.Next())
}
