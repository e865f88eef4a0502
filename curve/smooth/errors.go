package smooth

import "errors"

var (
	// ErrUnsupportedType reports a smoothing type outside the known
	// set. The enum is closed, but type values routinely arrive as
	// integers from external configuration.
	ErrUnsupportedType = errors.New("smooth: unsupported smoothing type")

	// ErrInvalidBandwidth reports a bandwidth that is not a positive
	// finite number of octaves.
	ErrInvalidBandwidth = errors.New("smooth: bandwidth must be positive and finite")
)
