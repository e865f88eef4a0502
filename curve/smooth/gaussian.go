package smooth

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-curve/curve/resample"
)

// Kernels at least this long go through the FFT convolution path.
const fftKernelThreshold = 32

// gaussianSmooth resamples onto a log-spaced grid and convolves with
// a Gaussian kernel of standard deviation Bandwidth/2 octaves. Edges
// are renormalized by the in-span kernel mass, so a constant curve
// stays constant all the way to the endpoints.
func gaussianSmooth(freqs, amps []float64, p Params) ([]float64, []float64, error) {
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

	sigma := p.Bandwidth / 2 * float64(p.Resolution) // octaves -> samples
	kernel := gaussianKernel(sigma)
	if len(kernel) == 1 {
		return x, y, nil
	}

	num, err := convolveSame(y, kernel)
	if err != nil {
		return nil, nil, err
	}
	ones := make([]float64, len(y))
	for i := range ones {
		ones[i] = 1
	}
	den, err := convolveSame(ones, kernel)
	if err != nil {
		return nil, nil, err
	}

	for i := range y {
		y[i] = num[i] / den[i]
	}
	return x, y, nil
}

// gaussianKernel returns a unit-sum Gaussian of the given standard
// deviation in samples, truncated at 4 sigma. Always odd length.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(4 * sigma))
	if radius < 1 {
		return []float64{1}
	}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	inv2s2 := 1 / (2 * sigma * sigma)
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d * inv2s2)
		sum += kernel[i]
	}
	vecmath.ScaleBlockInPlace(kernel, 1/sum)
	return kernel
}

// convolveSame convolves data with an odd-length kernel and returns
// the center len(data) samples of the full convolution. Unavailable
// neighbors count as zero; gaussianSmooth divides by the kernel mass
// afterwards.
func convolveSame(data, kernel []float64) ([]float64, error) {
	if len(kernel) < fftKernelThreshold {
		return convolveSameDirect(data, kernel), nil
	}
	return convolveSameFFT(data, kernel)
}

func convolveSameDirect(data, kernel []float64) []float64 {
	radius := len(kernel) / 2
	out := make([]float64, len(data))
	for i := range data {
		sum := 0.0
		for k, w := range kernel {
			j := i + k - radius
			if j < 0 || j >= len(data) {
				continue
			}
			sum += w * data[j]
		}
		out[i] = sum
	}
	return out
}

func convolveSameFFT(data, kernel []float64) ([]float64, error) {
	n := len(data)
	m := len(kernel)
	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: failed to create FFT plan: %w", err)
	}

	dataPadded := make([]complex128, fftSize)
	kernelPadded := make([]complex128, fftSize)
	for i, v := range data {
		dataPadded[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	dataFreq := make([]complex128, fftSize)
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(dataFreq, dataPadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return nil, fmt.Errorf("smooth: forward FFT failed: %w", err)
	}

	for i := range dataFreq {
		dataFreq[i] *= kernelFreq[i]
	}

	full := make([]complex128, fftSize)
	if err := plan.Inverse(full, dataFreq); err != nil {
		return nil, fmt.Errorf("smooth: inverse FFT failed: %w", err)
	}

	// Center slice of the full linear convolution.
	out := make([]float64, n)
	offset := m / 2
	for i := range out {
		out[i] = real(full[i+offset])
	}
	return out, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
