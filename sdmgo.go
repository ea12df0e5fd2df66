package sdmgo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sdmgo/engine"
)

// SDM is a Sparse Distributed Memory: an associative memory addressed by
// binary vectors. All methods are safe for concurrent use; writes and erases
// are mutually exclusive, reads run concurrently against a consistent
// counter snapshot.
type SDM struct {
	engine  *engine.Engine
	logger  *Logger
	metrics MetricsCollector
}

// Write stores a memory vector under an address. Every hard location within
// the activation threshold of the address accumulates the memory into its
// counters. If no location activates, the call is a no-op: there is nowhere
// to write.
func (s *SDM) Write(ctx context.Context, address, memory []byte) error {
	start := time.Now()

	err := translateError(s.engine.Write(address, memory))

	s.metrics.RecordWrite(time.Since(start), err)
	s.logger.LogWrite(ctx, err)

	return err
}

// Read reconstructs the memory stored near an address by summing and
// thresholding the counters of every activated location. If no location
// activates, Read returns an all-zero vector of length U: no stored evidence
// exists for the query. Read never mutates state.
func (s *SDM) Read(ctx context.Context, address []byte) ([]byte, error) {
	start := time.Now()

	memory, err := s.engine.Read(address)
	err = translateError(err)

	s.metrics.RecordRead(time.Since(start), err)
	s.logger.LogRead(ctx, err)

	return memory, err
}

// Erase removes a previously written association. It is the exact algebraic
// inverse of Write for the same (address, memory) pair, as long as no touched
// counter saturated in between. An empty activated set is a no-op, symmetric
// with Write.
func (s *SDM) Erase(ctx context.Context, address, memory []byte) error {
	start := time.Now()

	err := translateError(s.engine.Erase(address, memory))

	s.metrics.RecordErase(time.Since(start), err)
	s.logger.LogErase(ctx, err)

	return err
}

// Activated returns the indices of all hard locations within the activation
// threshold of the address. The empty result is a valid outcome, not an
// error. Activation depends only on the immutable location addresses, so the
// result for a fixed query never changes over the engine's lifetime.
func (s *SDM) Activated(ctx context.Context, address []byte) ([]uint32, error) {
	activated, err := s.engine.Activate(address)
	if err != nil {
		return nil, translateError(err)
	}
	return activated.ToArray(), nil
}

// BatchWrite stores multiple associations at once. All pairs are validated up
// front; a malformed pair fails the whole batch before any counter is
// touched. Activated sets for the batch are computed in parallel.
func (s *SDM) BatchWrite(ctx context.Context, addresses, memories [][]byte) error {
	start := time.Now()

	err := translateError(s.engine.BatchWrite(addresses, memories))

	s.metrics.RecordBatchWrite(len(addresses), time.Since(start), err)
	s.logger.LogBatchWrite(ctx, len(addresses), err)

	return err
}

// BatchRead reconstructs memories for multiple addresses, fanning the reads
// out across CPUs. The result slice is index-aligned with addresses. The
// first failure cancels the remaining reads.
func (s *SDM) BatchRead(ctx context.Context, addresses [][]byte) ([][]byte, error) {
	start := time.Now()

	memories := make([][]byte, len(addresses))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			memory, err := s.engine.Read(address)
			if err != nil {
				return fmt.Errorf("address[%d]: %w", i, err)
			}
			memories[i] = memory
			return nil
		})
	}

	err := translateError(g.Wait())

	s.metrics.RecordBatchRead(len(addresses), time.Since(start), err)
	s.logger.LogBatchRead(ctx, len(addresses), err)

	if err != nil {
		return nil, err
	}
	return memories, nil
}

// Reset zeroes every counter, forgetting all stored associations while
// preserving the hard-location layout.
func (s *SDM) Reset() {
	s.engine.Reset()
}

// Stats returns a snapshot of operation bookkeeping.
func (s *SDM) Stats() engine.Stats {
	return s.engine.Stats()
}

// AddressDimension returns the length of address vectors (N).
func (s *SDM) AddressDimension() int { return s.engine.AddressDimension() }

// MemoryDimension returns the length of memory vectors (U).
func (s *SDM) MemoryDimension() int { return s.engine.MemoryDimension() }

// NumLocations returns the number of hard locations (M).
func (s *SDM) NumLocations() int { return s.engine.NumLocations() }

// ActivationThreshold returns the Hamming activation threshold (H).
func (s *SDM) ActivationThreshold() int { return s.engine.ActivationThreshold() }
