// Package biquad provides scalar second-order IIR sections and
// cascades for the smoothing filters. Coefficients follow Direct Form
// II Transposed with a0 normalized to 1.
package biquad

import "math"

// Coefficients holds the transfer function of one second-order
// section. a0 is normalized to 1 and not stored.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Section is a single biquad with internal state.
type Section struct {
	Coefficients

	d0, d1 float64
}

// NewSection returns a Section with the given coefficients and zero
// state.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample (Direct Form II Transposed).
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.d0
	s.d0 = s.B1*x - s.A1*y + s.d1
	s.d1 = s.B2*x - s.A2*y

	return y
}

// ProcessBlock filters a block in place.
func (s *Section) ProcessBlock(buf []float64) {
	b0, b1, b2 := s.B0, s.B1, s.B2
	a1, a2 := s.A1, s.A2
	d0, d1 := s.d0, s.d1

	for i, x := range buf {
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	s.d0, s.d1 = d0, d1
}

// Reset clears the internal state.
func (s *Section) Reset() {
	s.d0, s.d1 = 0, 0
}

// PrimeDC sets the internal state to the steady state reached under a
// constant input of the given level, so filtering starts without a
// step transient. Requires unity DC gain.
func (s *Section) PrimeDC(level float64) {
	s.d0 = level * (1 - s.B0)
	s.d1 = level * (s.B2 - s.A2)
}

// Chain is a cascade of biquad sections applied in series.
type Chain struct {
	sections []Section
}

// NewChain builds a cascade from the given section coefficients.
func NewChain(coeffs []Coefficients) *Chain {
	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i].Coefficients = c
	}
	return &Chain{sections: sections}
}

// ProcessBlock runs the whole cascade over buf in place.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears the state of every section.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// PrimeDC primes every section for a constant input of the given
// level. Requires unity DC gain per section.
func (c *Chain) PrimeDC(level float64) {
	for i := range c.sections {
		c.sections[i].PrimeDC(level)
	}
}

// Magnitude returns |H(e^jw)| of a single section at the normalized
// angular frequency w (radians per sample).
func (c Coefficients) Magnitude(w float64) float64 {
	cw, sw := math.Cos(w), math.Sin(w)
	c2, s2 := math.Cos(2*w), math.Sin(2*w)

	numRe := c.B0 + c.B1*cw + c.B2*c2
	numIm := -c.B1*sw - c.B2*s2
	denRe := 1 + c.A1*cw + c.A2*c2
	denIm := -c.A1*sw - c.A2*s2

	num := math.Hypot(numRe, numIm)
	den := math.Hypot(denRe, denIm)
	if den == 0 {
		return math.Inf(1)
	}
	return num / den
}

// CascadeMagnitude returns the combined |H(e^jw)| of a cascade.
func CascadeMagnitude(coeffs []Coefficients, w float64) float64 {
	m := 1.0
	for _, c := range coeffs {
		m *= c.Magnitude(w)
	}
	return m
}
