package engine

import "fmt"

// TieBreakPolicy selects how read-time thresholding resolves a position whose
// counter sum is exactly zero. Whatever the policy, repeated reads of the
// same address against an unchanged table return identical output.
type TieBreakPolicy int

const (
	// TieBreakZero resolves a zero sum to bit 0 (default).
	TieBreakZero TieBreakPolicy = iota

	// TieBreakSeeded resolves zero sums with coin flips drawn from a source
	// seeded with the engine's RandomSeed. The source is re-seeded for every
	// read, so the flip sequence depends only on the seed and the tie
	// pattern, keeping reads deterministic and repeatable.
	TieBreakSeeded
)

// String returns a string representation of the TieBreakPolicy.
func (p TieBreakPolicy) String() string {
	switch p {
	case TieBreakZero:
		return "Zero"
	case TieBreakSeeded:
		return "Seeded"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// Options contains configuration options for the engine. All fields are
// fixed for the engine's lifetime.
type Options struct {
	// AddressDimension is the length of address vectors (N). Must be > 0.
	AddressDimension int

	// MemoryDimension is the length of memory vectors (U). Must be > 0.
	MemoryDimension int

	// NumLocations is the number of hard locations (M). Must be > 0.
	NumLocations int

	// ActivationThreshold is the maximum Hamming distance at which a hard
	// location participates in an operation (H). Must be in [0, N].
	ActivationThreshold int

	// RandomSeed seeds the source used to generate hard-location addresses.
	// Identical (N, M, seed) triples always yield bitwise-identical address
	// sets.
	RandomSeed int64

	// TieBreak selects the read-time zero-sum policy.
	TieBreak TieBreakPolicy
}

// DefaultOptions contains the default configuration options for the engine.
var DefaultOptions = Options{
	RandomSeed: 42,
	TieBreak:   TieBreakZero,
}
