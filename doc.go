// Package sdmgo provides an embedded Sparse Distributed Memory for Go.
//
// Sparse Distributed Memory (SDM) is Kanerva's model of associative memory:
// a fixed set of randomly placed "hard locations" in a high-dimensional
// binary address space, each holding a counter vector that accumulates
// evidence about memories written near it. Memories written under similar
// addresses reinforce each other, and a read reconstructs the stored memory
// from the counters of every location within a Hamming-distance threshold of
// the query.
//
// # Quick Start
//
// Create an engine with the fluent builder:
//
//	ctx := context.Background()
//	mem, err := sdmgo.New(1000, 1000, 10000, 451). // N, U, M, H
//	    Seed(42).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//
//	_ = mem.Write(ctx, address, memory)
//	recalled, _ := mem.Read(ctx, address)
//	_ = mem.Erase(ctx, address, memory)
//
// Addresses and memories are unpacked binary vectors: byte slices of length N
// (addresses) or U (memories) whose elements are 0 or 1.
//
// # Determinism
//
// Hard-location addresses are generated from a single source seeded with the
// builder's Seed; identical (N, M, seed) triples always yield bitwise
// identical layouts. Read-time ties at a zero counter sum resolve to 0 by
// default, or to a deterministic seeded coin flip with TieBreakSeeded().
// Every operation is repeatable given the same engine state.
//
// # Errors
//
// All malformed input — non-positive dimensions, a threshold outside [0, N],
// vectors of the wrong length or with elements outside {0,1} — surfaces as an
// error matching ErrInvalidArgument:
//
//	if errors.Is(err, sdmgo.ErrInvalidArgument) { ... }
//
// Failed calls never mutate engine state.
//
// Reference: Pentti Kanerva (1992). Sparse Distributed Memory and Related
// Models.
package sdmgo
