package smooth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/curve/resample"
)

// Type identifies a smoothing algorithm.
type Type int

const (
	// Butterworth8 is zero-phase 8th order Butterworth smoothing on a
	// log-spaced grid.
	Butterworth8 Type = iota

	// Butterworth4 is zero-phase 4th order Butterworth smoothing on a
	// log-spaced grid.
	Butterworth4

	// Rectangular is a moving average over the original points,
	// without resampling.
	Rectangular

	// Gaussian is Gaussian kernel convolution on a log-spaced grid.
	Gaussian
)

// String returns the display name of the smoothing type.
func (t Type) String() string {
	switch t {
	case Butterworth8:
		return "Butterworth 8th, log spaced"
	case Butterworth4:
		return "Butterworth 4th, log spaced"
	case Rectangular:
		return "Rectangular, w/o interpolation"
	case Gaussian:
		return "Gaussian, log spaced"
	default:
		return fmt.Sprintf("smooth.Type(%d)", int(t))
	}
}

// Params holds the smoothing parameters. All types use Bandwidth; the
// resampled-domain types additionally use Resolution and PinnedHz.
type Params struct {
	// Bandwidth is the smoothing width in octaves. For the
	// Butterworth types it is the distance between the -3 dB points
	// of the zero-phase response; for Gaussian it is twice the kernel
	// standard deviation; for Rectangular it is the window span.
	Bandwidth float64

	// Resolution is the log-grid density in points per octave for
	// Butterworth and Gaussian smoothing. Ignored by Rectangular.
	Resolution int

	// PinnedHz anchors the resampling grid. Zero selects
	// [resample.DefaultPinnedHz].
	PinnedHz float64
}

func (p Params) pinned() float64 {
	if p.PinnedHz == 0 {
		return resample.DefaultPinnedHz
	}
	return p.PinnedHz
}

func (p Params) checkBandwidth() error {
	if p.Bandwidth <= 0 || math.IsNaN(p.Bandwidth) || math.IsInf(p.Bandwidth, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidBandwidth, p.Bandwidth)
	}
	return nil
}

func (p Params) checkResolution() error {
	if p.Resolution < 1 {
		return fmt.Errorf("%w: smoothing requires at least 1, got %d",
			resample.ErrInvalidResolution, p.Resolution)
	}
	return nil
}

// Smooth applies the selected algorithm to the (freqs, amps) pair and
// returns a freshly allocated pair spanning the same frequency range.
// Inputs must satisfy the curve axis invariants.
func Smooth(t Type, freqs, amps []float64, p Params) (x, y []float64, err error) {
	if len(freqs) != len(amps) {
		return nil, nil, fmt.Errorf("%w: %d frequencies, %d amplitudes",
			curve.ErrShapeMismatch, len(freqs), len(amps))
	}
	if len(freqs) == 0 {
		return nil, nil, curve.ErrInsufficientData
	}

	switch t {
	case Butterworth8:
		return butterworthSmooth(freqs, amps, p, 8)
	case Butterworth4:
		return butterworthSmooth(freqs, amps, p, 4)
	case Rectangular:
		return rectangularSmooth(freqs, amps, p)
	case Gaussian:
		return gaussianSmooth(freqs, amps, p)
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedType, int(t))
	}
}

// Apply smooths a curve and returns a new one carrying the source's
// base name and suffixes. Appending a smoothing descriptor suffix is
// the caller's job.
func Apply(c *curve.Curve, t Type, p Params) (*curve.Curve, error) {
	x, y, err := Smooth(t, c.Frequencies(), c.Amplitudes(), p)
	if err != nil {
		return nil, err
	}
	out, err := curve.New(x, y)
	if err != nil {
		return nil, err
	}
	out.SetNameBase(c.NameBase())
	for _, s := range c.NameSuffixes() {
		out.AddNameSuffix(s)
	}
	return out, nil
}
