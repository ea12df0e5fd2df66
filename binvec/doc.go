// Package binvec provides packed binary vector primitives for the SDM engine.
//
// Vectors cross the public API as unpacked byte slices (one element per
// position, values 0 or 1). Internally the engine keeps them packed in
// bitset.BitSet words so that Hamming distance reduces to a handful of
// XOR+popcount operations per location.
//
// # Usage
//
//	q := binvec.Pack([]byte{0, 1, 0, 1})
//	d := binvec.Hamming(q, other)
//	bits := binvec.Unpack(q)
package binvec
