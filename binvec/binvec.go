package binvec

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"
)

// Pack converts an unpacked binary vector (one byte per position, values 0 or
// 1) into a packed bitset of the same length. Elements must already be
// validated; any non-zero byte is treated as a set bit.
func Pack(bits []byte) *bitset.BitSet {
	b := bitset.New(uint(len(bits)))
	for i, v := range bits {
		if v != 0 {
			b.Set(uint(i))
		}
	}
	return b
}

// Unpack converts a packed bitset back into an unpacked binary vector.
func Unpack(b *bitset.BitSet) []byte {
	bits := make([]byte, b.Len())
	for i := uint(0); i < b.Len(); i++ {
		if b.Test(i) {
			bits[i] = 1
		}
	}
	return bits
}

// Hamming returns the number of differing bit positions between two packed
// vectors. Assumes both vectors have the same length (caller's
// responsibility).
func Hamming(a, b *bitset.BitSet) int {
	return int(a.SymmetricDifferenceCardinality(b))
}

// Random returns a packed vector of length n with each bit drawn
// independently and uniformly from {0,1} using the given source.
//
// The bit-by-bit draw order is part of the reproducibility contract: the same
// source state always yields the same vector.
func Random(rng *rand.Rand, n int) *bitset.BitSet {
	b := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			b.Set(uint(i))
		}
	}
	return b
}
