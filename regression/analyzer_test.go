package regression

import (
	"math"
	"testing"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/fixture"
	"github.com/stretchr/testify/require"
)

func samePoints(n int) []geometry.Geometry {
	features := make([]geometry.Geometry, n)
	for i := range features {
		features[i] = geometry.New(geometry.NewPoint(coords.XY{1, 2}))
	}

	return features
}

func mixedFeatures(n int) []geometry.Geometry {
	shapes := fixture.Geometries(geometry.DefaultSRID)
	features := make([]geometry.Geometry, n)
	for i := range features {
		if i%7 == 0 {
			features[i] = fixture.City(i%3 + 1)
		} else {
			features[i] = shapes[i%len(shapes)]
		}
	}

	return features
}

func encodeBlob(t *testing.T, features []geometry.Geometry, opts ...blob.FeatureEncoderOption) blob.FeatureBlob {
	t.Helper()

	enc, err := blob.NewFeatureEncoder(opts...)
	require.NoError(t, err)
	for i, g := range features {
		require.NoError(t, enc.AddByID(uint64(i+1), g))
	}

	fb, err := enc.Finish()
	require.NoError(t, err)

	return fb
}

func TestAnalyze(t *testing.T) {
	blobs := []blob.FeatureBlob{
		encodeBlob(t, mixedFeatures(40)),
		encodeBlob(t, mixedFeatures(60), blob.WithWireFormat(format.WireSpatiaLite)),
		encodeBlob(t, mixedFeatures(25), blob.WithCompression(format.CompressionS2)),
	}

	result, err := Analyze(blobs)
	require.NoError(t, err)
	require.NotNil(t, result.BestFit)
	require.Len(t, result.AllModels, 4)
	require.Same(t, result.AllModels[0], result.BestFit)
	require.Equal(t, []int{1, 2, 5, 10, 20, 50, 100, 125}, result.ChunkFPBs)

	for i := 1; i < len(result.AllModels); i++ {
		require.GreaterOrEqual(t, result.AllModels[i-1].RSquared, result.AllModels[i].RSquared)
	}

	bpf := result.BestFit.Estimator.Estimate(100)
	require.False(t, math.IsInf(bpf, 0) || math.IsNaN(bpf))
	require.Positive(t, bpf)
	require.Positive(t, result.EstimateSize(100))
}

func TestAnalyze_FixedSizeFeatures(t *testing.T) {
	// Every blob costs a 16-byte header plus 16 index bytes and a 21-byte
	// point per feature, so BPF = 37 + 16 / FPB.
	result, err := Analyze([]blob.FeatureBlob{encodeBlob(t, samePoints(100))})
	require.NoError(t, err)

	best := result.BestFit
	require.Equal(t, ModelTypeHyperbolic, best.Type)
	require.InDelta(t, 1.0, best.RSquared, 1e-9)
	require.InDelta(t, 0.0, best.RMSE, 1e-9)
	require.InDelta(t, 37.0, best.Coefficients[0], 1e-9)
	require.InDelta(t, 16.0, best.Coefficients[1], 1e-9)
	require.Equal(t, "BPF = 37.00 + 16.00 / FPB", best.Formula)
	require.InDelta(t, 16+100*37, result.EstimateSize(100), 1)
}

func TestAnalyze_Errors(t *testing.T) {
	t.Run("No blobs", func(t *testing.T) {
		_, err := Analyze(nil)
		require.ErrorIs(t, err, ErrNoBlobs)

		_, err = AnalyzeEach([]blob.FeatureBlob{})
		require.ErrorIs(t, err, ErrNoBlobs)
	})

	t.Run("Single feature", func(t *testing.T) {
		_, err := Analyze([]blob.FeatureBlob{encodeBlob(t, samePoints(1))})
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("Empty blob", func(t *testing.T) {
		_, err := Analyze([]blob.FeatureBlob{{}})
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("Invalid wire format", func(t *testing.T) {
		_, err := Analyze([]blob.FeatureBlob{encodeBlob(t, samePoints(10))}, WithWireFormat(format.WireFormat(9)))
		require.ErrorIs(t, err, errs.ErrInvalidWireFormat)
	})

	t.Run("Invalid compression", func(t *testing.T) {
		_, err := AnalyzeGeometries(samePoints(10), WithCompression(format.CompressionType(0)))
		require.ErrorIs(t, err, errs.ErrInvalidCompression)
	})

	t.Run("No geometries", func(t *testing.T) {
		_, err := AnalyzeGeometries(nil)
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestAnalyzeEach(t *testing.T) {
	blobs := []blob.FeatureBlob{
		encodeBlob(t, samePoints(20)),
		encodeBlob(t, mixedFeatures(30)),
	}

	results, err := AnalyzeEach(blobs)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, []int{1, 2, 5, 10, 20}, results[0].ChunkFPBs)
	require.Equal(t, ModelTypeHyperbolic, results[0].BestFit.Type)
	require.Equal(t, []int{1, 2, 5, 10, 20, 30}, results[1].ChunkFPBs)

	t.Run("Fails on small blob", func(t *testing.T) {
		_, err := AnalyzeEach(append(blobs, encodeBlob(t, samePoints(1))))
		require.ErrorIs(t, err, ErrInsufficientData)
		require.ErrorContains(t, err, "blob 2")
	})
}

func TestAnalyzeGeometries_Options(t *testing.T) {
	features := samePoints(50)

	plain, err := AnalyzeGeometries(features)
	require.NoError(t, err)

	spatial, err := AnalyzeGeometries(features, WithWireFormat(format.WireSpatiaLite), WithBigEndian())
	require.NoError(t, err)

	// SpatiaLite points carry a 43-byte header and a trailer.
	require.Greater(t, spatial.EstimateSize(50), plain.EstimateSize(50))

	compressed, err := AnalyzeGeometries(features, WithCompression(format.CompressionZstd))
	require.NoError(t, err)
	require.Less(t, compressed.EstimateSize(50), plain.EstimateSize(50))
}

func TestPerformRegression(t *testing.T) {
	x := []float64{1, 2, 5, 10, 20, 50, 100}

	tests := []struct {
		name   string
		fn     func(float64) float64
		best   ModelType
		coeffs []float64
	}{
		{"Hyperbolic", func(v float64) float64 { return 10 + 20/v }, ModelTypeHyperbolic, []float64{10, 20}},
		{"Logarithmic", func(v float64) float64 { return 50 - 4*math.Log(v) }, ModelTypeLogarithmic, []float64{50, -4}},
		{"Power", func(v float64) float64 { return 3 * math.Pow(v, 0.5) }, ModelTypePower, []float64{3, 0.5}},
		{"Linear", func(v float64) float64 { return 2 + 0.25*v }, ModelTypeLinear, []float64{2, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := transform(x, tt.fn)

			result, err := performRegression(x, y)
			require.NoError(t, err)
			require.Equal(t, tt.best, result.BestFit.Type)
			require.InDelta(t, 1.0, result.BestFit.RSquared, 1e-9)
			require.InDeltaSlice(t, tt.coeffs, result.BestFit.Coefficients, 1e-6)
		})
	}

	t.Run("Constant data keeps model order", func(t *testing.T) {
		result, err := performRegression(x, []float64{8, 8, 8, 8, 8, 8, 8})
		require.NoError(t, err)
		require.Equal(t, ModelTypeHyperbolic, result.BestFit.Type)
		require.Zero(t, result.BestFit.RSquared)
		require.InDelta(t, 8.0, result.BestFit.Estimator.Estimate(42), 1e-9)
	})

	t.Run("Mismatched lengths", func(t *testing.T) {
		_, err := performRegression([]float64{1, 2}, []float64{1})
		require.ErrorContains(t, err, "mismatched data lengths")
	})

	t.Run("Too few samples", func(t *testing.T) {
		_, err := performRegression([]float64{1}, []float64{1})
		require.ErrorIs(t, err, ErrInsufficientData)
	})
}

func TestCalculateTestPoints(t *testing.T) {
	tests := []struct {
		max      int
		expected []int
	}{
		{0, nil},
		{1, []int{1}},
		{3, []int{1, 2, 3}},
		{10, []int{1, 2, 5, 10}},
		{11, []int{1, 2, 5, 10}},
		{13, []int{1, 2, 5, 10, 13}},
		{blob.MaxFeatureCount, []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000, blob.MaxFeatureCount}},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, calculateTestPoints(tt.max), "max=%d", tt.max)
	}
}

func TestLeastSquares(t *testing.T) {
	a, b := leastSquares([]float64{1, 2, 3}, []float64{3, 5, 7})
	require.InDelta(t, 1.0, a, 1e-12)
	require.InDelta(t, 2.0, b, 1e-12)

	a, b = leastSquares([]float64{4, 4, 4}, []float64{1, 2, 6})
	require.InDelta(t, 3.0, a, 1e-12)
	require.Zero(t, b)

	a, b = leastSquares(nil, nil)
	require.Zero(t, a)
	require.Zero(t, b)
}

func TestCalculateRSquaredAndRMSE(t *testing.T) {
	observed := []float64{1, 2, 3, 4}

	require.InDelta(t, 1.0, calculateRSquared(observed, observed), 1e-12)
	require.Zero(t, calculateRMSE(observed, observed))

	predicted := []float64{2, 3, 4, 5}
	require.InDelta(t, 1.0, calculateRMSE(observed, predicted), 1e-12)
	// SS_res = 4, SS_tot = 5
	require.InDelta(t, 0.2, calculateRSquared(observed, predicted), 1e-12)

	require.Zero(t, calculateRSquared(nil, nil))
	require.Zero(t, calculateRMSE(nil, nil))
}

func TestResult_EstimateSize(t *testing.T) {
	result := &Result{BestFit: &Model{Estimator: newCurveEstimator(ModelTypeLinear, 10.25, 0)}}

	require.Equal(t, 41, result.EstimateSize(4))
	require.Zero(t, result.EstimateSize(0))
	require.Zero(t, result.EstimateSize(-3))
	require.Zero(t, (&Result{}).EstimateSize(10))

	negative := &Result{BestFit: &Model{Estimator: newCurveEstimator(ModelTypeLinear, -1, 0)}}
	require.Zero(t, negative.EstimateSize(10))

	require.Equal(t, "Result{BestFit: nil}", (&Result{}).String())
	require.Contains(t, result.String(), "TotalModels: 0")
}
