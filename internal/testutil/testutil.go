// Package testutil provides deterministic curve fixtures and
// tolerance checks shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
	"testing"
)

// LogLattice returns n frequencies pinnedHz·2^(k/ppo) for k = 0..n-1,
// the grid the resampler generates for a span starting at pinnedHz.
func LogLattice(pinnedHz float64, ppo, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = pinnedHz * math.Exp2(float64(i)/float64(ppo))
	}
	return out
}

// Flat returns n copies of value.
func Flat(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Noise returns n reproducible uniform samples in
// [base-spread, base+spread].
func Noise(seed int64, base, spread float64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = base + spread*(2*rng.Float64()-1)
	}
	return out
}

// RequireSliceNearlyEqual fails t if got and want differ in length or
// if any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}
