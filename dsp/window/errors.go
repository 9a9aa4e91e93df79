package window

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned by Configure for lengths < 1.
	ErrInvalidLength = errors.New("window length must be >= 1")

	// ErrUnknownType is returned by TypeByName for unrecognized names.
	ErrUnknownType = errors.New("unknown window type")

	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func errInvalidLength(samples int) error {
	return fmt.Errorf("%w: %d", ErrInvalidLength, samples)
}
