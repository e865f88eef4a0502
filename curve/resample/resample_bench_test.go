package resample

import (
	"math"
	"testing"
)

func benchCurve(n int) (freqs, amps []float64) {
	freqs = make([]float64, n)
	amps = make([]float64, n)
	ratio := math.Pow(1000, 1/float64(n-1)) // 20 Hz .. 20 kHz
	f := 20.0
	for i := range freqs {
		freqs[i] = f
		amps[i] = 80 + 6*math.Sin(float64(i)/11)
		f *= ratio
	}
	return freqs, amps
}

func BenchmarkToPPO(b *testing.B) {
	freqs, amps := benchCurve(2048)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, err := ToPPO(freqs, amps, 48, 1000)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSampleAt(b *testing.B) {
	freqs, amps := benchCurve(2048)
	queries := Grid(25, 16000, 96, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SampleAt(freqs, amps, queries)
	}
}
