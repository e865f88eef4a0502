package ensemble

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/cwbudde/algo-curve/curve"
)

// ErrInsufficientCurves is returned when an operation receives fewer
// curves than it needs.
var ErrInsufficientCurves = errors.New("ensemble: not enough curves")

// IQRResult holds the outcome of quartile fencing over a curve set.
// The three curves live on the union frequency grid of the inputs.
type IQRResult[K cmp.Ordered] struct {
	Lower  *curve.Curve // Q1 - fence*IQR per column
	Median *curve.Curve
	Upper  *curve.Curve // Q3 + fence*IQR per column

	// Outliers lists, in ascending key order, every curve that has at
	// least one of its own points strictly outside the fences.
	Outliers []K
}

// table is the union-grid view of a curve set: one column per distinct
// frequency, holding the values of the curves that define that exact
// frequency, in ascending key order.
type table struct {
	freqs []float64
	index map[float64]int
	cols  [][]float64
}

func buildTable[K cmp.Ordered](curves map[K]*curve.Curve) (table, []K) {
	ids := slices.Sorted(maps.Keys(curves))

	var t table
	t.index = make(map[float64]int)
	for _, id := range ids {
		for _, f := range curves[id].Frequencies() {
			if _, ok := t.index[f]; !ok {
				t.index[f] = -1 // placeholder until sorted
				t.freqs = append(t.freqs, f)
			}
		}
	}
	sort.Float64s(t.freqs)
	for i, f := range t.freqs {
		t.index[f] = i
	}

	t.cols = make([][]float64, len(t.freqs))
	for _, id := range ids {
		freqs, amps := curves[id].XY()
		for i, f := range freqs {
			col := t.index[f]
			t.cols[col] = append(t.cols[col], amps[i])
		}
	}
	return t, ids
}

// MeanMedian aggregates at least two curves into a mean curve and a
// median curve over the union frequency grid. Each column uses only
// the values of the curves that define that frequency.
func MeanMedian[K cmp.Ordered](curves map[K]*curve.Curve) (mean, median *curve.Curve, err error) {
	if len(curves) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2, got %d", ErrInsufficientCurves, len(curves))
	}
	t, _ := buildTable(curves)

	meanAmps := make([]float64, len(t.freqs))
	medianAmps := make([]float64, len(t.freqs))
	for i, col := range t.cols {
		meanAmps[i] = meanOf(col)
		medianAmps[i] = medianOf(col)
	}

	mean, err = curve.New(t.freqs, meanAmps)
	if err != nil {
		return nil, nil, err
	}
	median, err = curve.New(t.freqs, medianAmps)
	if err != nil {
		return nil, nil, err
	}
	mean.AddNameSuffix(fmt.Sprintf("mean, %d curves", len(curves)))
	median.AddNameSuffix(fmt.Sprintf("median, %d curves", len(curves)))
	return mean, median, nil
}

// IQR computes per-column quartile fences over at least three curves
// and classifies outliers. fence is the interquartile-range multiplier
// (1.5 is the conventional choice). A curve is an outlier when any of
// its own points lies strictly outside the fences of its column.
func IQR[K cmp.Ordered](curves map[K]*curve.Curve, fence float64) (*IQRResult[K], error) {
	if len(curves) < 3 {
		return nil, fmt.Errorf("%w: need at least 3, got %d", ErrInsufficientCurves, len(curves))
	}
	t, ids := buildTable(curves)

	n := len(t.freqs)
	lower := make([]float64, n)
	med := make([]float64, n)
	upper := make([]float64, n)
	for i, col := range t.cols {
		sorted := append([]float64(nil), col...)
		sort.Float64s(sorted)

		q1 := quantileSorted(sorted, 0.25)
		q3 := quantileSorted(sorted, 0.75)
		iqr := q3 - q1
		lower[i] = q1 - fence*iqr
		med[i] = quantileSorted(sorted, 0.5)
		upper[i] = q3 + fence*iqr
	}

	res := &IQRResult[K]{}
	var err error
	if res.Lower, err = curve.New(t.freqs, lower); err != nil {
		return nil, err
	}
	if res.Median, err = curve.New(t.freqs, med); err != nil {
		return nil, err
	}
	if res.Upper, err = curve.New(t.freqs, upper); err != nil {
		return nil, err
	}
	res.Lower.AddNameSuffix("lower fence")
	res.Median.AddNameSuffix(fmt.Sprintf("median, %d curves", len(curves)))
	res.Upper.AddNameSuffix("upper fence")

	for _, id := range ids {
		freqs, amps := curves[id].XY()
		for i, f := range freqs {
			col := t.index[f]
			if amps[i] < lower[col] || amps[i] > upper[col] {
				res.Outliers = append(res.Outliers, id)
				break
			}
		}
	}
	return res, nil
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func medianOf(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, 0.5)
}

// quantileSorted evaluates the p-quantile of an ascending slice with
// linear interpolation between closest ranks.
func quantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := p * float64(n-1)
	lo := int(pos)
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
