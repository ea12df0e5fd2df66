package engine

// Vector names used in validation errors.
const (
	vectorNameAddress = "address"
	vectorNameMemory  = "memory"
)

// validateVector checks length and binary-ness of an operation input.
// Validation always happens before any mutation; a failed call leaves all
// counters untouched.
func validateVector(vec []byte, dimension int, name string) error {
	if len(vec) != dimension {
		return &ErrDimensionMismatch{Name: name, Expected: dimension, Actual: len(vec)}
	}
	for i, v := range vec {
		if v > 1 {
			return &ErrNonBinaryValue{Name: name, Position: i, Value: v}
		}
	}
	return nil
}

// ValidateAddress checks that address is a binary vector of length N.
func (e *Engine) ValidateAddress(address []byte) error {
	return validateVector(address, e.opts.AddressDimension, vectorNameAddress)
}

// ValidateMemory checks that memory is a binary vector of length U.
func (e *Engine) ValidateMemory(memory []byte) error {
	return validateVector(memory, e.opts.MemoryDimension, vectorNameMemory)
}
