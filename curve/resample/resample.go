package resample

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-curve/curve"
)

// DefaultPinnedHz is the conventional grid anchor used by smoothing
// and best-fit scoring when the caller has no opinion of its own.
const DefaultPinnedHz = 1000.0

var (
	// ErrInvalidResolution reports a negative points-per-octave value.
	ErrInvalidResolution = errors.New("resample: points per octave must be >= 0")

	// ErrInvalidPin reports a pinned frequency that is not a positive
	// finite number.
	ErrInvalidPin = errors.New("resample: pinned frequency must be positive and finite")

	// ErrEmptySpan reports a span too narrow to contain any lattice
	// point of the requested grid.
	ErrEmptySpan = errors.New("resample: no grid points inside frequency span")
)

// Relative tolerance for lattice edge inclusion and for the
// identical-grid shortcut.
const gridTol = 1e-9

// Grid returns the log-spaced lattice pinnedHz·2^(k/ppo) clipped to
// [minHz, maxHz]. The pinned frequency itself appears in the result
// whenever it lies inside the span; outside the span it still anchors
// the lattice. Returns nil when no lattice point fits.
func Grid(minHz, maxHz float64, ppo int, pinnedHz float64) []float64 {
	if ppo <= 0 || pinnedHz <= 0 || minHz <= 0 || maxHz < minHz {
		return nil
	}

	step := 1 / float64(ppo)
	kMin := int(math.Ceil(math.Log2(minHz/pinnedHz)/step - gridTol))
	kMax := int(math.Floor(math.Log2(maxHz/pinnedHz)/step + gridTol))
	if kMin > kMax {
		return nil
	}

	out := make([]float64, 0, kMax-kMin+1)
	for k := kMin; k <= kMax; k++ {
		f := pinnedHz * math.Exp2(float64(k)*step)
		// Rounding may push edge points a hair past the span; pull them
		// back so interpolation stays in-domain.
		if f < minHz {
			f = minHz
		}
		if f > maxHz {
			f = maxHz
		}
		out = append(out, f)
	}
	return out
}

// ToPPO resamples (freqs, amps) onto a log-spaced grid with ppo points
// per octave pinned at pinnedHz. Inputs must satisfy the curve axis
// invariants (strictly increasing, positive). The returned slices are
// always freshly allocated.
//
// ppo == 0 requests no resampling and returns copies of the input.
func ToPPO(freqs, amps []float64, ppo int, pinnedHz float64) (x, y []float64, err error) {
	if len(freqs) != len(amps) {
		return nil, nil, fmt.Errorf("%w: %d frequencies, %d amplitudes",
			curve.ErrShapeMismatch, len(freqs), len(amps))
	}
	if len(freqs) == 0 {
		return nil, nil, curve.ErrInsufficientData
	}
	if ppo < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidResolution, ppo)
	}
	if ppo == 0 {
		// "No resampling" — must be decided before grid construction.
		return append([]float64(nil), freqs...), append([]float64(nil), amps...), nil
	}
	if pinnedHz <= 0 || math.IsNaN(pinnedHz) || math.IsInf(pinnedHz, 0) {
		return nil, nil, fmt.Errorf("%w: got %v", ErrInvalidPin, pinnedHz)
	}

	grid := Grid(freqs[0], freqs[len(freqs)-1], ppo, pinnedHz)
	if len(grid) == 0 {
		return nil, nil, fmt.Errorf("%w: span [%v, %v] at %d ppo pinned to %v",
			ErrEmptySpan, freqs[0], freqs[len(freqs)-1], ppo, pinnedHz)
	}

	if gridsNearlyEqual(grid, freqs) {
		// Identical grid: hand back the original amplitudes instead of
		// re-interpolating, so repeated passes stay lossless.
		return grid, append([]float64(nil), amps...), nil
	}

	y = make([]float64, len(grid))
	for i, q := range grid {
		y[i] = interpLog(freqs, amps, q)
	}
	return grid, y, nil
}

// Apply resamples a curve and returns a new one carrying the source's
// base name and suffixes. The positional prefix is not copied; naming
// the result further (e.g. "interpolated to 48 ppo") is the caller's
// job.
func Apply(c *curve.Curve, ppo int, pinnedHz float64) (*curve.Curve, error) {
	x, y, err := ToPPO(c.Frequencies(), c.Amplitudes(), ppo, pinnedHz)
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

// SampleAt evaluates the curve (freqs, amps) at each query frequency
// using linear interpolation in log-frequency. Queries outside the
// curve's span yield NaN, the "absent" marker consumed by the
// similarity scorer.
func SampleAt(freqs, amps, queries []float64) []float64 {
	out := make([]float64, len(queries))
	if len(freqs) == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	lo, hi := freqs[0], freqs[len(freqs)-1]
	for i, q := range queries {
		if q < lo || q > hi || math.IsNaN(q) {
			out[i] = math.NaN()
			continue
		}
		out[i] = interpLog(freqs, amps, q)
	}
	return out
}

// interpLog interpolates amplitude at q, linear in log-frequency.
// q must lie within [freqs[0], freqs[len-1]].
func interpLog(freqs, amps []float64, q float64) float64 {
	if q <= freqs[0] {
		return amps[0]
	}
	if q >= freqs[len(freqs)-1] {
		return amps[len(amps)-1]
	}
	j := sort.SearchFloat64s(freqs, q)
	if freqs[j] == q {
		return amps[j]
	}
	x0, x1 := freqs[j-1], freqs[j]
	t := math.Log(q/x0) / math.Log(x1/x0)
	return amps[j-1] + t*(amps[j]-amps[j-1])
}

// gridsNearlyEqual reports whether two grids match pointwise within
// relative tolerance.
func gridsNearlyEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > gridTol*math.Abs(a[i]) {
			return false
		}
	}
	return true
}
