package ensemble

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-curve/curve"
	"github.com/cwbudde/algo-curve/internal/testutil"
)

func benchCurves(b *testing.B, count, points int) map[string]*curve.Curve {
	b.Helper()
	curves := make(map[string]*curve.Curve, count)
	for i := 0; i < count; i++ {
		c, err := curve.New(
			testutil.LogLattice(20, 48, points),
			testutil.Noise(int64(i), 80, 6, points),
		)
		if err != nil {
			b.Fatal(err)
		}
		curves[fmt.Sprintf("unit %03d", i)] = c
	}
	return curves
}

func BenchmarkMeanMedian(b *testing.B) {
	curves := benchCurves(b, 32, 480)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := MeanMedian(curves); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIQR(b *testing.B) {
	curves := benchCurves(b, 32, 480)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := IQR(curves, 1.5); err != nil {
			b.Fatal(err)
		}
	}
}
