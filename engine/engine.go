package engine

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/sdmgo/binvec"
)

// Engine is a Sparse Distributed Memory engine. It owns its configuration
// (read-only after construction) and the hard location table (read-write via
// operations). Use New to create an instance.
type Engine struct {
	mu    sync.RWMutex
	opts  Options
	table *table

	// Operation bookkeeping, guarded by mu.
	writes uint64
	erases uint64
	stored int64 // net stored associations (T), writes minus erases
}

// New creates a new engine. Construction fails before any location is
// generated if a dimension is non-positive or the activation threshold lies
// outside [0, N].
func New(optFns ...func(o *Options)) (*Engine, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.AddressDimension <= 0 {
		return nil, &ErrInvalidDimension{Name: "address dimension", Value: opts.AddressDimension}
	}
	if opts.MemoryDimension <= 0 {
		return nil, &ErrInvalidDimension{Name: "memory dimension", Value: opts.MemoryDimension}
	}
	if opts.NumLocations <= 0 {
		return nil, &ErrInvalidDimension{Name: "num locations", Value: opts.NumLocations}
	}
	if opts.ActivationThreshold < 0 || opts.ActivationThreshold > opts.AddressDimension {
		return nil, &ErrInvalidThreshold{Threshold: opts.ActivationThreshold, Dimension: opts.AddressDimension}
	}

	rng := rand.New(rand.NewSource(opts.RandomSeed))

	return &Engine{
		opts:  opts,
		table: newTable(opts.AddressDimension, opts.MemoryDimension, opts.NumLocations, rng),
	}, nil
}

// Activate returns the indices of all hard locations within Hamming distance
// H of the query address. An empty bitmap is a valid outcome, not an error.
//
// Activation depends only on the immutable addresses and H, so the result for
// a fixed query never changes over the engine's lifetime.
func (e *Engine) Activate(address []byte) (*roaring.Bitmap, error) {
	if err := e.ValidateAddress(address); err != nil {
		return nil, err
	}

	query := binvec.Pack(address)

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.activate(query), nil
}

// activate scans every hard location. Addresses are immutable, so no lock is
// required for correctness; public callers still hold one so the result is
// consistent with the counter state they go on to touch.
func (e *Engine) activate(query *bitset.BitSet) *roaring.Bitmap {
	activated := roaring.New()
	for i, addr := range e.table.addresses {
		if binvec.Hamming(addr, query) <= e.opts.ActivationThreshold {
			activated.Add(uint32(i))
		}
	}
	return activated
}

// Write stores a memory under an address. Every activated location shifts
// counter j by +1 if memory[j] == 1 and by -1 if memory[j] == 0. An empty
// activated set makes the call a no-op: there is nowhere to write.
func (e *Engine) Write(address, memory []byte) error {
	if err := e.ValidateAddress(address); err != nil {
		return err
	}
	if err := e.ValidateMemory(memory); err != nil {
		return err
	}

	query := binvec.Pack(address)

	e.mu.Lock()
	defer e.mu.Unlock()

	e.writeActivated(e.activate(query), memory)
	return nil
}

// Erase removes a previously written association. It is the exact algebraic
// inverse of Write for the same (address, memory) pair: counter j shifts by
// -1 if memory[j] == 1 and by +1 if memory[j] == 0. An empty activated set is
// a no-op, symmetric with Write.
//
// The inverse law holds exactly as long as no touched counter saturated in
// between.
func (e *Engine) Erase(address, memory []byte) error {
	if err := e.ValidateAddress(address); err != nil {
		return err
	}
	if err := e.ValidateMemory(memory); err != nil {
		return err
	}

	query := binvec.Pack(address)

	e.mu.Lock()
	defer e.mu.Unlock()

	activated := e.activate(query)
	if activated.IsEmpty() {
		return nil
	}

	e.applyDelta(activated, memory, -1)
	e.erases++
	e.stored--
	return nil
}

// writeActivated applies a write update for a precomputed activated set.
// Caller must hold the exclusive lock.
func (e *Engine) writeActivated(activated *roaring.Bitmap, memory []byte) {
	if activated.IsEmpty() {
		return
	}
	e.applyDelta(activated, memory, +1)
	e.writes++
	e.stored++
}

// applyDelta shifts the counters of every activated location by ±polarity
// according to the memory bits. Caller must hold the exclusive lock.
func (e *Engine) applyDelta(activated *roaring.Bitmap, memory []byte, polarity int32) {
	it := activated.Iterator()
	for it.HasNext() {
		row := e.table.counters[it.Next()]
		for j, bit := range memory {
			delta := -polarity
			if bit == 1 {
				delta = polarity
			}
			row[j] = satAdd(row[j], delta)
		}
	}
}

// Read reconstructs the memory stored near an address. Counters of the
// activated locations are summed per position and thresholded: bit j is 1 if
// the sum is positive, 0 if negative, and ties at zero follow the configured
// TieBreakPolicy. An empty activated set returns the all-zero vector: no
// stored evidence exists for the query.
//
// Read never mutates state; repeated reads of the same address against an
// unchanged table return identical output.
func (e *Engine) Read(address []byte) ([]byte, error) {
	if err := e.ValidateAddress(address); err != nil {
		return nil, err
	}

	query := binvec.Pack(address)
	memory := make([]byte, e.opts.MemoryDimension)

	e.mu.RLock()
	defer e.mu.RUnlock()

	activated := e.activate(query)
	if activated.IsEmpty() {
		return memory, nil
	}

	sums := make([]int64, e.opts.MemoryDimension)
	it := activated.Iterator()
	for it.HasNext() {
		row := e.table.counters[it.Next()]
		for j, c := range row {
			sums[j] += int64(c)
		}
	}

	// A fresh source per read keeps seeded tie-breaks repeatable.
	var flip *rand.Rand
	if e.opts.TieBreak == TieBreakSeeded {
		flip = rand.New(rand.NewSource(e.opts.RandomSeed))
	}

	for j, s := range sums {
		switch {
		case s > 0:
			memory[j] = 1
		case s == 0 && flip != nil && flip.Intn(2) == 1:
			memory[j] = 1
		}
	}

	return memory, nil
}

// BatchWrite stores multiple associations in one exclusive critical section.
// All inputs are validated up front, so a malformed pair fails the whole
// batch before any counter is touched. Activated sets are computed in
// parallel; counters never influence activation, so precomputing them outside
// the lock is safe.
func (e *Engine) BatchWrite(addresses, memories [][]byte) error {
	if len(addresses) != len(memories) {
		return &ErrBatchLengthMismatch{Addresses: len(addresses), Memories: len(memories)}
	}

	for i := range addresses {
		if err := e.ValidateAddress(addresses[i]); err != nil {
			return err
		}
		if err := e.ValidateMemory(memories[i]); err != nil {
			return err
		}
	}

	activated := make([]*roaring.Bitmap, len(addresses))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, address := range addresses {
		i, address := i, address
		g.Go(func() error {
			activated[i] = e.activate(binvec.Pack(address))
			return nil
		})
	}
	_ = g.Wait() // workers never fail; inputs are validated

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, set := range activated {
		e.writeActivated(set, memories[i])
	}
	return nil
}

// Reset zeroes every counter and the stored-association count, exactly as if
// no write had ever happened. Hard-location addresses are preserved, so
// activation behavior is unchanged.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.table.reset()
	e.stored = 0
}

// AddressDimension returns the length of address vectors (N).
func (e *Engine) AddressDimension() int { return e.opts.AddressDimension }

// MemoryDimension returns the length of memory vectors (U).
func (e *Engine) MemoryDimension() int { return e.opts.MemoryDimension }

// NumLocations returns the number of hard locations (M).
func (e *Engine) NumLocations() int { return e.opts.NumLocations }

// ActivationThreshold returns the Hamming activation threshold (H).
func (e *Engine) ActivationThreshold() int { return e.opts.ActivationThreshold }

// Stats is a point-in-time snapshot of operation bookkeeping.
type Stats struct {
	// Writes and Erases count operations that touched at least one location.
	Writes uint64
	Erases uint64

	// StoredMemories is the net number of stored associations (T). Negative
	// values are possible when erasing associations that were never written.
	StoredMemories int64
}

// Stats returns a snapshot of operation bookkeeping.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return Stats{
		Writes:         e.writes,
		Erases:         e.erases,
		StoredMemories: e.stored,
	}
}
