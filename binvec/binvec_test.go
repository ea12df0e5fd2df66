package binvec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpack(t *testing.T) {
	tests := []struct {
		name string
		bits []byte
	}{
		{"Empty", []byte{}},
		{"AllZero", []byte{0, 0, 0, 0}},
		{"AllOne", []byte{1, 1, 1, 1}},
		{"Mixed", []byte{0, 1, 0, 1, 1, 0}},
		{"Single", []byte{1}},
		{"WordBoundary", append(make([]byte, 63), 1)}, // bit 63 set
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unpack(Pack(tt.bits))
			assert.Equal(t, tt.bits, got)
		})
	}
}

func TestHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []byte
		expected int
	}{
		{"Identical", []byte{0, 1, 0, 1}, []byte{0, 1, 0, 1}, 0},
		{"Complement", []byte{0, 1, 0, 1}, []byte{1, 0, 1, 0}, 4},
		{"OneBit", []byte{0, 0, 0, 0}, []byte{0, 0, 1, 0}, 1},
		{"Empty", []byte{}, []byte{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hamming(Pack(tt.a), Pack(tt.b))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHammingLarge(t *testing.T) {
	// Exercise multiple words plus a partial tail.
	n := 200
	a := make([]byte, n)
	b := make([]byte, n)
	for i := range b {
		b[i] = 1
	}
	assert.Equal(t, n, Hamming(Pack(a), Pack(b)))
}

func TestRandom(t *testing.T) {
	t.Run("Reproducible", func(t *testing.T) {
		a := Random(rand.New(rand.NewSource(42)), 128)
		b := Random(rand.New(rand.NewSource(42)), 128)
		assert.True(t, a.Equal(b))
	})

	t.Run("SeedDivergence", func(t *testing.T) {
		a := Random(rand.New(rand.NewSource(1)), 128)
		b := Random(rand.New(rand.NewSource(2)), 128)
		assert.False(t, a.Equal(b))
	})

	t.Run("Length", func(t *testing.T) {
		v := Random(rand.New(rand.NewSource(7)), 100)
		require.Len(t, Unpack(v), 100)
	})

	t.Run("SourceAdvances", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		a := Random(rng, 128)
		b := Random(rng, 128)
		assert.False(t, a.Equal(b))
	})
}
