package bestfit

import (
	"cmp"
	"maps"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/curve/resample"
)

// Band is a critical frequency interval whose residuals are weighted
// differently from the rest of the comparison grid. The interval is
// half-open: a grid frequency f is inside when StartHz <= f < EndHz.
type Band struct {
	StartHz float64
	EndHz   float64
	Weight  float64
}

// Entry is one ranked candidate.
type Entry[K cmp.Ordered] struct {
	ID K

	// StdDev is the weighted residual standard deviation against the
	// reference. NaN when the candidate shares fewer than two grid
	// points with the reference span.
	StdDev float64
}

// Report is the outcome of a ranking run.
type Report[K cmp.Ordered] struct {
	// Ranking is ordered ascending by StdDev, best fit first. NaN
	// entries sort last; ties break on ascending ID.
	Ranking []Entry[K]

	// RefLabel and Points describe the resampled reference grid the
	// candidates were compared on.
	RefLabel string
	Points   int

	// BandEmpty reports that a critical band was requested but no grid
	// frequency fell inside it, so weighting was skipped.
	BandEmpty bool
}

// Rank scores every candidate against the reference curve and returns
// them ordered from best to worst fit.
//
// The reference is resampled to resolution points per octave (pinned
// at [resample.DefaultPinnedHz]); candidates are evaluated on that
// grid by log-frequency interpolation, with grid points outside a
// candidate's span excluded from its score. A nil band disables
// critical-band weighting.
func Rank[K cmp.Ordered](ref *curve.Curve, candidates map[K]*curve.Curve, resolution int, band *Band) (*Report[K], error) {
	refFreqs, refAmps, err := resample.ToPPO(ref.Frequencies(), ref.Amplitudes(), resolution, resample.DefaultPinnedHz)
	if err != nil {
		return nil, err
	}

	rep := &Report[K]{
		RefLabel: ref.FullName(),
		Points:   len(refFreqs),
	}

	normalizer := 1.0
	criticalMult := 1.0
	var inBand []bool
	if band != nil {
		n := len(refFreqs)
		c := 0
		inBand = make([]bool, n)
		for i, f := range refFreqs {
			if f >= band.StartHz && f < band.EndHz {
				inBand[i] = true
				c++
			}
		}
		if c == 0 {
			rep.BandEmpty = true
			inBand = nil
		} else {
			normalizer = (float64(n) + float64(c)*(band.Weight-1)) / float64(n)
			criticalMult = band.Weight / normalizer
		}
	}

	for _, id := range slices.Sorted(maps.Keys(candidates)) {
		cand := candidates[id]
		values := resample.SampleAt(cand.Frequencies(), cand.Amplitudes(), refFreqs)

		// Residuals; absent grid points stay NaN and drop out of the
		// reduction below.
		for i := range values {
			values[i] -= refAmps[i]
		}
		vecmath.MulBlockInPlace(values, values)

		if inBand != nil {
			vecmath.ScaleBlockInPlace(values, 1/normalizer)
			for i, in := range inBand {
				if in {
					values[i] *= criticalMult
				}
			}
		}

		sum := 0.0
		present := 0
		for _, v := range values {
			if math.IsNaN(v) {
				continue
			}
			sum += v
			present++
		}

		stdDev := math.NaN()
		if present >= 2 {
			stdDev = math.Sqrt(sum / float64(present-1))
		}
		rep.Ranking = append(rep.Ranking, Entry[K]{ID: id, StdDev: stdDev})
	}

	slices.SortStableFunc(rep.Ranking, func(a, b Entry[K]) int {
		switch {
		case math.IsNaN(a.StdDev) && math.IsNaN(b.StdDev):
			return cmp.Compare(a.ID, b.ID)
		case math.IsNaN(a.StdDev):
			return 1
		case math.IsNaN(b.StdDev):
			return -1
		}
		if c := cmp.Compare(a.StdDev, b.StdDev); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return rep, nil
}
