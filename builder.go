// Package sdmgo provides an embedded Sparse Distributed Memory for Go.
//
// This file implements the fluent builder API for creating and configuring
// SDM instances. The builder is immutable - each method returns a new builder
// with the updated configuration.
package sdmgo

import (
	"github.com/hupe1980/sdmgo/engine"
)

// New creates a builder for an SDM engine with the given geometry:
// addressDimension (N) and memoryDimension (U) are the vector lengths,
// numLocations (M) the number of hard locations and activationThreshold (H)
// the maximum Hamming distance at which a location participates in an
// operation.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration.
//
// Example:
//
//	mem, err := sdmgo.New(1000, 1000, 10000, 451).
//	    Seed(42).
//	    TieBreakSeeded().
//	    Build()
func New(addressDimension, memoryDimension, numLocations, activationThreshold int) Builder {
	return Builder{
		addressDimension:    addressDimension,
		memoryDimension:     memoryDimension,
		numLocations:        numLocations,
		activationThreshold: activationThreshold,
		seed:                engine.DefaultOptions.RandomSeed,
		tieBreak:            engine.DefaultOptions.TieBreak,
	}
}

// Builder is an immutable fluent builder for creating SDM instances.
// Each method returns a new builder with the updated configuration.
type Builder struct {
	addressDimension    int
	memoryDimension     int
	numLocations        int
	activationThreshold int
	seed                int64
	tieBreak            engine.TieBreakPolicy
	logger              *Logger
	metrics             MetricsCollector
}

// Seed sets the seed for deterministic hard-location generation.
// Default: 42. Identical geometry and seed always reproduce the same layout.
func (b Builder) Seed(seed int64) Builder {
	b.seed = seed
	return b
}

// TieBreakZero resolves read-time zero counter sums to bit 0 (default).
func (b Builder) TieBreakZero() Builder {
	b.tieBreak = engine.TieBreakZero
	return b
}

// TieBreakSeeded resolves read-time zero counter sums with deterministic
// coin flips derived from the engine seed.
func (b Builder) TieBreakSeeded() Builder {
	b.tieBreak = engine.TieBreakSeeded
	return b
}

// Logger sets the structured logger for operation tracing.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector for monitoring.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build constructs the SDM instance. It fails with an error matching
// ErrInvalidArgument if a dimension is non-positive or the activation
// threshold lies outside [0, N]; no engine comes into existence on failure.
func (b Builder) Build() (*SDM, error) {
	eng, err := engine.New(func(o *engine.Options) {
		o.AddressDimension = b.addressDimension
		o.MemoryDimension = b.memoryDimension
		o.NumLocations = b.numLocations
		o.ActivationThreshold = b.activationThreshold
		o.RandomSeed = b.seed
		o.TieBreak = b.tieBreak
	})
	if err != nil {
		return nil, translateError(err)
	}

	opts := applyOptions([]Option{
		WithLogger(b.logger),
		WithMetricsCollector(b.metrics),
	})

	return &SDM{
		engine:  eng,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}
