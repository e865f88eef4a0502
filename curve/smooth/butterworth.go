package smooth

import (
	"math"

	"github.com/cwbudde/algo-curve/curve/resample"
	"github.com/cwbudde/algo-curve/internal/biquad"
)

// butterworthSmooth resamples onto a log-spaced grid and applies a
// zero-phase lowpass Butterworth cascade along the log-frequency axis.
//
// The resampled sequence is treated as a signal sampled at Resolution
// samples per octave; a smoothing width of Bandwidth octaves then
// corresponds to a cutoff of 1/Bandwidth cycles per octave.
func butterworthSmooth(freqs, amps []float64, p Params, order int) ([]float64, []float64, error) {
	if err := p.checkBandwidth(); err != nil {
		return nil, nil, err
	}
	if err := p.checkResolution(); err != nil {
		return nil, nil, err
	}

	x, y, err := resample.ToPPO(freqs, amps, p.Resolution, p.pinned())
	if err != nil {
		return nil, nil, err
	}

	sampleRate := float64(p.Resolution)
	cutoff := 1 / p.Bandwidth
	if cutoff >= sampleRate/2 {
		// The requested width is below the grid spacing; there is
		// nothing the filter could remove.
		return x, y, nil
	}

	sections := butterworthLP(cutoff, order, sampleRate)
	zeroPhase(sections, y)
	return x, y, nil
}

// butterworthLP designs a lowpass Butterworth cascade. For odd orders
// the final section is first-order (B2 = A2 = 0).
func butterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}
	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		sections = append(sections, lowpassRBJ(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLP(freq, sampleRate))
	}
	return sections
}

// butterworthQ returns the quality factor of biquad section index for
// a Butterworth filter of the given order.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2
	}
	return 1 / (2 * s)
}

// lowpassRBJ designs a lowpass biquad at freq with quality factor q
// (RBJ cookbook formula).
func lowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{B0: 1}
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	b0 := (1 - cw) / 2
	b1 := 1 - cw
	b2 := (1 - cw) / 2
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

// firstOrderLP designs a first-order lowpass section, used for odd
// orders.
func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if sampleRate <= 0 || freq <= 0 || freq >= sampleRate/2 {
		return biquad.Coefficients{B0: 1}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// zeroPhase runs the cascade forward and backward over y in place.
// Odd-reflection padding at both ends and DC-primed filter state
// suppress edge transients.
func zeroPhase(sections []biquad.Coefficients, y []float64) {
	n := len(y)
	if n < 2 {
		return
	}

	pad := 3 * 2 * len(sections)
	if pad > n-1 {
		pad = n - 1
	}

	ext := make([]float64, n+2*pad)
	for i := 0; i < pad; i++ {
		ext[i] = 2*y[0] - y[pad-i]
	}
	copy(ext[pad:], y)
	for i := 0; i < pad; i++ {
		ext[pad+n+i] = 2*y[n-1] - y[n-2-i]
	}

	chain := biquad.NewChain(sections)
	chain.PrimeDC(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)
	chain.PrimeDC(ext[0])
	chain.ProcessBlock(ext)
	reverse(ext)

	copy(y, ext[pad:pad+n])
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
