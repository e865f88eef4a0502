package ensemble

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-curve/curve"
)

func mustCurve(t *testing.T, freqs, amps []float64) *curve.Curve {
	t.Helper()
	c, err := curve.New(freqs, amps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestMeanMedianRequiresTwoCurves(t *testing.T) {
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, []float64{100, 200}, []float64{80, 81}),
	}
	if _, _, err := MeanMedian(curves); !errors.Is(err, ErrInsufficientCurves) {
		t.Fatalf("got %v, want ErrInsufficientCurves", err)
	}
}

func TestMeanOfIdenticalCurvesIsExact(t *testing.T) {
	freqs := []float64{100, 1000, 10000}
	amps := []float64{80.125, 85.5, 79.875}
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, freqs, amps),
		"b": mustCurve(t, freqs, amps),
	}

	mean, median, err := MeanMedian(curves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, f := range mean.Frequencies() {
		if f != freqs[i] {
			t.Fatalf("grid changed at %d: %v", i, f)
		}
		if got := mean.Amplitudes()[i]; got != amps[i] {
			t.Fatalf("mean at %v: got %v, want %v", f, got, amps[i])
		}
		if got := median.Amplitudes()[i]; got != amps[i] {
			t.Fatalf("median at %v: got %v, want %v", f, got, amps[i])
		}
	}
}

func TestMedianOfThreeCurves(t *testing.T) {
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, freqs, []float64{80}),
		"b": mustCurve(t, freqs, []float64{85}),
		"c": mustCurve(t, freqs, []float64{90}),
	}

	mean, median, err := MeanMedian(curves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := median.Amplitudes()[0]; got != 85 {
		t.Fatalf("median: got %v, want 85", got)
	}
	if got := mean.Amplitudes()[0]; got != 85 {
		t.Fatalf("mean: got %v, want 85", got)
	}
}

func TestMeanMedianOverRaggedGrids(t *testing.T) {
	curves := map[int]*curve.Curve{
		1: mustCurve(t, []float64{100, 1000}, []float64{80, 84}),
		2: mustCurve(t, []float64{1000, 2000}, []float64{86, 90}),
	}

	mean, _, err := MeanMedian(curves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFreqs := []float64{100, 1000, 2000}
	wantAmps := []float64{80, 85, 90} // lone, (84+86)/2, lone
	gotFreqs, gotAmps := mean.XY()
	if len(gotFreqs) != len(wantFreqs) {
		t.Fatalf("union grid size: got %d, want %d", len(gotFreqs), len(wantFreqs))
	}
	for i := range wantFreqs {
		if gotFreqs[i] != wantFreqs[i] {
			t.Fatalf("freq %d: got %v, want %v", i, gotFreqs[i], wantFreqs[i])
		}
		if gotAmps[i] != wantAmps[i] {
			t.Fatalf("amp at %v: got %v, want %v", wantFreqs[i], gotAmps[i], wantAmps[i])
		}
	}
}

func TestMeanMedianSuffixes(t *testing.T) {
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, freqs, []float64{80}),
		"b": mustCurve(t, freqs, []float64{82}),
	}
	mean, median, err := MeanMedian(curves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := mean.NameSuffixes(); len(s) != 1 || s[0] != "mean, 2 curves" {
		t.Fatalf("mean suffixes: %v", s)
	}
	if s := median.NameSuffixes(); len(s) != 1 || s[0] != "median, 2 curves" {
		t.Fatalf("median suffixes: %v", s)
	}
}

func TestIQRRequiresThreeCurves(t *testing.T) {
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, freqs, []float64{80}),
		"b": mustCurve(t, freqs, []float64{82}),
	}
	if _, err := IQR(curves, 1.5); !errors.Is(err, ErrInsufficientCurves) {
		t.Fatalf("got %v, want ErrInsufficientCurves", err)
	}
}

func TestIQRClassifiesOutlier(t *testing.T) {
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"A": mustCurve(t, freqs, []float64{80}),
		"B": mustCurve(t, freqs, []float64{81}),
		"C": mustCurve(t, freqs, []float64{82}),
		"D": mustCurve(t, freqs, []float64{120}),
	}

	res, err := IQR(curves, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Sorted column [80, 81, 82, 120]: Q1 = 80.75, Q3 = 91.5,
	// IQR = 10.75, fences at 64.625 and 107.625.
	if got := res.Lower.Amplitudes()[0]; math.Abs(got-64.625) > 1e-12 {
		t.Fatalf("lower fence: got %v, want 64.625", got)
	}
	if got := res.Median.Amplitudes()[0]; math.Abs(got-81.5) > 1e-12 {
		t.Fatalf("median: got %v, want 81.5", got)
	}
	if got := res.Upper.Amplitudes()[0]; math.Abs(got-107.625) > 1e-12 {
		t.Fatalf("upper fence: got %v, want 107.625", got)
	}
	if len(res.Outliers) != 1 || res.Outliers[0] != "D" {
		t.Fatalf("outliers: got %v, want [D]", res.Outliers)
	}
}

func TestIQROutlierUsesOnlyOwnPoints(t *testing.T) {
	// E is wild at 5000 Hz but defines nothing near the shared
	// 1000 Hz column, so only its own column can flag it.
	curves := map[string]*curve.Curve{
		"A": mustCurve(t, []float64{1000, 5000}, []float64{80, 70}),
		"B": mustCurve(t, []float64{1000, 5000}, []float64{81, 71}),
		"C": mustCurve(t, []float64{1000, 5000}, []float64{82, 72}),
		"E": mustCurve(t, []float64{5000}, []float64{200}),
	}

	res, err := IQR(curves, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Outliers) != 1 || res.Outliers[0] != "E" {
		t.Fatalf("outliers: got %v, want [E]", res.Outliers)
	}
}

func TestIQROutliersSortedByKey(t *testing.T) {
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"z": mustCurve(t, freqs, []float64{200}),
		"m": mustCurve(t, freqs, []float64{80}),
		"a": mustCurve(t, freqs, []float64{-50}),
		"n": mustCurve(t, freqs, []float64{81}),
		"o": mustCurve(t, freqs, []float64{82}),
	}

	res, err := IQR(curves, 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Outliers) != 2 || res.Outliers[0] != "a" || res.Outliers[1] != "z" {
		t.Fatalf("outliers: got %v, want [a z]", res.Outliers)
	}
}

func TestMeanIsDeterministic(t *testing.T) {
	// Summation runs in key order, not map iteration order, so
	// repeated calls must agree bitwise.
	freqs := []float64{1000}
	curves := map[string]*curve.Curve{
		"a": mustCurve(t, freqs, []float64{80.1}),
		"b": mustCurve(t, freqs, []float64{80.2}),
		"c": mustCurve(t, freqs, []float64{80.3}),
		"d": mustCurve(t, freqs, []float64{80.4}),
		"e": mustCurve(t, freqs, []float64{80.5}),
	}

	first, _, err := MeanMedian(curves)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, _, err := MeanMedian(curves)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.Amplitudes()[0] != first.Amplitudes()[0] {
			t.Fatalf("run %d: %v != %v", i, again.Amplitudes()[0], first.Amplitudes()[0])
		}
	}
}

func TestQuantileSorted(t *testing.T) {
	sorted := []float64{80, 81, 82, 120}
	cases := []struct {
		p    float64
		want float64
	}{
		{0, 80},
		{0.25, 80.75},
		{0.5, 81.5},
		{0.75, 91.5},
		{1, 120},
	}
	for _, tc := range cases {
		if got := quantileSorted(sorted, tc.p); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("p=%v: got %v, want %v", tc.p, got, tc.want)
		}
	}
	if got := quantileSorted([]float64{42}, 0.75); got != 42 {
		t.Fatalf("single value: got %v", got)
	}
}
