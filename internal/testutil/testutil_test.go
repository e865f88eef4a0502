package testutil

import (
	"math"
	"testing"
)

func TestLogLattice(t *testing.T) {
	freqs := LogLattice(1000, 12, 13)
	if len(freqs) != 13 {
		t.Fatalf("length: %d", len(freqs))
	}
	if freqs[0] != 1000 {
		t.Fatalf("pinned point: %v", freqs[0])
	}
	if math.Abs(freqs[12]-2000) > 1e-9 {
		t.Fatalf("octave end: %v", freqs[12])
	}
	for i := 1; i < len(freqs); i++ {
		if freqs[i] <= freqs[i-1] {
			t.Fatalf("not increasing at %d", i)
		}
	}
}

func TestNoiseIsReproducible(t *testing.T) {
	a := Noise(7, 80, 5, 64)
	b := Noise(7, 80, 5, 64)
	RequireFinite(t, a)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if v < 75 || v > 85 {
			t.Fatalf("index %d out of range: %v", i, v)
		}
	}
}
