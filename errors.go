package sdmgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sdmgo/engine"
)

// ErrInvalidArgument is the single error kind for all malformed input:
// construction parameters as well as operation vectors. Use errors.Is to test
// for it; the underlying typed engine error stays reachable via errors.As.
var ErrInvalidArgument = errors.New("invalid argument")

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var (
		invalidDimension  *engine.ErrInvalidDimension
		invalidThreshold  *engine.ErrInvalidThreshold
		dimensionMismatch *engine.ErrDimensionMismatch
		nonBinary         *engine.ErrNonBinaryValue
		batchMismatch     *engine.ErrBatchLengthMismatch
	)

	switch {
	case errors.As(err, &invalidDimension),
		errors.As(err, &invalidThreshold),
		errors.As(err, &dimensionMismatch),
		errors.As(err, &nonBinary),
		errors.As(err, &batchMismatch):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return err
}
