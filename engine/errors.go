package engine

import "fmt"

// ErrInvalidDimension indicates a non-positive construction parameter.
type ErrInvalidDimension struct {
	Name  string // "address dimension", "memory dimension" or "num locations"
	Value int
}

// Error returns the error message for an invalid dimension.
func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid %s: %d (must be positive)", e.Name, e.Value)
}

// ErrInvalidThreshold indicates an activation threshold outside [0, N].
type ErrInvalidThreshold struct {
	Threshold int
	Dimension int
}

// Error returns the error message for an invalid activation threshold.
func (e *ErrInvalidThreshold) Error() string {
	return fmt.Sprintf("invalid activation threshold: %d (must be in [0, %d])", e.Threshold, e.Dimension)
}

// ErrDimensionMismatch indicates an operation input of the wrong length.
type ErrDimensionMismatch struct {
	Name     string // "address" or "memory"
	Expected int
	Actual   int
}

// Error returns the error message for a dimension mismatch.
func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("%s dimension mismatch: expected %d, got %d", e.Name, e.Expected, e.Actual)
}

// ErrNonBinaryValue indicates a vector element outside {0, 1}.
type ErrNonBinaryValue struct {
	Name     string // "address" or "memory"
	Position int
	Value    byte
}

// Error returns the error message for a non-binary element.
func (e *ErrNonBinaryValue) Error() string {
	return fmt.Sprintf("%s[%d] = %d: elements must be 0 or 1", e.Name, e.Position, e.Value)
}

// ErrBatchLengthMismatch indicates a batch call with unequal slice lengths.
type ErrBatchLengthMismatch struct {
	Addresses int
	Memories  int
}

// Error returns the error message for a batch length mismatch.
func (e *ErrBatchLengthMismatch) Error() string {
	return fmt.Sprintf("batch length mismatch: %d addresses, %d memories", e.Addresses, e.Memories)
}
