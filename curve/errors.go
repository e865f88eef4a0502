package curve

import "errors"

// Validation failure kinds. Constructors and [Curve.SetXY] wrap these
// with a cause describing the offending value.
var (
	// ErrShapeMismatch reports frequency and amplitude slices of
	// different lengths.
	ErrShapeMismatch = errors.New("curve: frequency/amplitude length mismatch")

	// ErrInsufficientData reports an empty input.
	ErrInsufficientData = errors.New("curve: at least one point required")

	// ErrInvalidAxis reports a frequency axis that is non-positive,
	// non-finite, or not strictly increasing.
	ErrInvalidAxis = errors.New("curve: invalid frequency axis")

	// ErrNonNumeric reports an amplitude that is not a finite real
	// number.
	ErrNonNumeric = errors.New("curve: non-finite amplitude")
)
