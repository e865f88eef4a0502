package smooth

import (
	"math"
	"sort"
)

// rectangularSmooth applies a symmetric moving average whose window
// spans Bandwidth octaves, computed directly on the original (possibly
// irregular) grid. The point count and frequency axis are unchanged.
func rectangularSmooth(freqs, amps []float64, p Params) ([]float64, []float64, error) {
	if err := p.checkBandwidth(); err != nil {
		return nil, nil, err
	}

	x := append([]float64(nil), freqs...)
	y := make([]float64, len(amps))
	halfBand := math.Exp2(p.Bandwidth / 2)

	for i, f := range freqs {
		fLo := f / halfBand
		fHi := f * halfBand

		i0 := sort.Search(len(freqs), func(k int) bool { return freqs[k] >= fLo })
		i1 := sort.Search(len(freqs), func(k int) bool { return freqs[k] > fHi })
		if i0 >= i1 {
			y[i] = amps[i]
			continue
		}

		sum := 0.0
		for j := i0; j < i1; j++ {
			sum += amps[j]
		}
		y[i] = sum / float64(i1-i0)
	}

	return x, y, nil
}
