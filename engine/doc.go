// Package engine implements the core Sparse Distributed Memory model:
// a fixed table of randomly placed hard locations, Hamming-distance
// activation, and the write/read/erase update and reconstruction algorithms.
//
// # Model
//
// An engine owns M hard locations. Each location carries an immutable random
// address of N bits, generated once at construction from a seeded source, and
// a mutable counter vector of U signed integers, all zero at construction.
//
//   - Write: every location within Hamming distance H of the target address
//     shifts each counter by +1 (memory bit 1) or -1 (memory bit 0).
//   - Read: counters of the activated locations are summed per position and
//     thresholded back into a binary vector.
//   - Erase: the exact algebraic inverse of write for the same pair.
//
// # Concurrency
//
// One RWMutex per engine: Write, Erase, BatchWrite and Reset take the
// exclusive lock, Read and Activate the shared lock. Addresses are immutable
// after construction, so activation for a fixed query never changes over the
// engine's lifetime.
//
// Reference: Pentti Kanerva (1992). Sparse Distributed Memory and Related
// Models.
package engine
