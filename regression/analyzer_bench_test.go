package regression

import (
	"fmt"
	"math"
	"testing"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/format"
)

func BenchmarkFitting(b *testing.B) {
	fits := []struct {
		name string
		fn   func(x, y []float64) *Model
	}{
		{"Hyperbolic", fitHyperbolic},
		{"Logarithmic", fitLogarithmic},
		{"Power", fitPower},
		{"Linear", fitLinear},
	}

	for _, fit := range fits {
		for _, size := range []int{10, 100, 1000} {
			b.Run(fmt.Sprintf("%s/Points_%d", fit.name, size), func(b *testing.B) {
				x, y := generateBenchmarkData(size)
				b.ResetTimer()

				for b.Loop() {
					fit.fn(x, y)
				}
			})
		}
	}
}

func BenchmarkPerformRegression(b *testing.B) {
	x, y := generateBenchmarkData(16)

	for b.Loop() {
		if _, err := performRegression(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	for _, compression := range []format.CompressionType{format.CompressionNone, format.CompressionS2} {
		b.Run(compression.String(), func(b *testing.B) {
			enc, err := blob.NewFeatureEncoder(blob.WithCompression(compression))
			if err != nil {
				b.Fatal(err)
			}

			for i, g := range mixedFeatures(500) {
				if err := enc.AddByID(uint64(i+1), g); err != nil {
					b.Fatal(err)
				}
			}

			fb, err := enc.Finish()
			if err != nil {
				b.Fatal(err)
			}
			blobs := []blob.FeatureBlob{fb}
			b.ResetTimer()

			for b.Loop() {
				if _, err := Analyze(blobs, WithCompression(compression)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// generateBenchmarkData produces hyperbolic (FPB, BPF) samples with a small
// deterministic ripple.
func generateBenchmarkData(n int) ([]float64, []float64) {
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i + 1)
		y[i] = 40 + 16/x[i] + 0.5*math.Sin(float64(i))
	}

	return x, y
}
