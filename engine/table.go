package engine

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/sdmgo/binvec"
)

// table is the hard location table: M packed addresses assigned once at
// construction and never mutated, plus M mutable counter rows of length U.
// Locations are never created or destroyed after construction; the whole
// table lives and dies with the engine.
type table struct {
	addresses []*bitset.BitSet
	counters  [][]int32
}

// newTable generates m addresses of n bits each from a single seeded source
// and allocates all-zero counter rows of length u.
func newTable(n, u, m int, rng *rand.Rand) *table {
	t := &table{
		addresses: make([]*bitset.BitSet, m),
		counters:  make([][]int32, m),
	}
	for i := 0; i < m; i++ {
		t.addresses[i] = binvec.Random(rng, n)
		t.counters[i] = make([]int32, u)
	}
	return t
}

// reset zeroes every counter row. Addresses are preserved.
func (t *table) reset() {
	for _, row := range t.counters {
		clear(row)
	}
}

// satAdd adds delta to c, saturating at the int32 bounds. Counters must never
// wrap: a saturated counter keeps its sign, a wrapped one would flip it and
// corrupt every subsequent read.
func satAdd(c, delta int32) int32 {
	s := int64(c) + int64(delta)
	switch {
	case s > math.MaxInt32:
		return math.MaxInt32
	case s < math.MinInt32:
		return math.MinInt32
	default:
		return int32(s)
	}
}
