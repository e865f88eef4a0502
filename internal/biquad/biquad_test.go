package biquad

import (
	"math"
	"testing"
)

// passthrough keeps the signal untouched.
var passthrough = Coefficients{B0: 1}

func TestPassthroughSection(t *testing.T) {
	s := NewSection(passthrough)
	for _, x := range []float64{1, -2, 0.5, 0} {
		if y := s.ProcessSample(x); y != x {
			t.Fatalf("got %v, want %v", y, x)
		}
	}
}

func TestProcessBlockMatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	in := []float64{1, 0, 0, 0, 1, -1, 2, 0.25}

	sampleWise := NewSection(c)
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = sampleWise.ProcessSample(x)
	}

	got := append([]float64(nil), in...)
	blockWise := NewSection(c)
	blockWise.ProcessBlock(got)

	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Fatalf("index %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestResetClearsState(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.4, B2: 0.2, A1: -0.5, A2: 0.3}
	s := NewSection(c)
	first := s.ProcessSample(1)
	s.ProcessSample(0.5)
	s.Reset()
	if again := s.ProcessSample(1); again != first {
		t.Fatalf("state not cleared: got %v, want %v", again, first)
	}
}

func TestPrimeDCHoldsConstantInput(t *testing.T) {
	// Unity DC gain: B0+B1+B2 == 1+A1+A2.
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.3, A2: 0.3}
	const level = 83.5

	s := NewSection(c)
	s.PrimeDC(level)
	for i := 0; i < 16; i++ {
		if y := s.ProcessSample(level); math.Abs(y-level) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, y, level)
		}
	}

	chain := NewChain([]Coefficients{c, c, c})
	chain.PrimeDC(level)
	buf := make([]float64, 32)
	for i := range buf {
		buf[i] = level
	}
	chain.ProcessBlock(buf)
	for i, y := range buf {
		if math.Abs(y-level) > 1e-12 {
			t.Fatalf("chain sample %d: got %v, want %v", i, y, level)
		}
	}
}

func TestMagnitudeOfPassthrough(t *testing.T) {
	for _, w := range []float64{0, 0.1, 1, math.Pi} {
		if m := passthrough.Magnitude(w); math.Abs(m-1) > 1e-12 {
			t.Fatalf("w=%v: got %v, want 1", w, m)
		}
	}
}

func TestCascadeMagnitudeMultiplies(t *testing.T) {
	c := Coefficients{B0: 0.5}
	m := CascadeMagnitude([]Coefficients{c, c, c}, 0.3)
	if math.Abs(m-0.125) > 1e-12 {
		t.Fatalf("got %v, want 0.125", m)
	}
}
