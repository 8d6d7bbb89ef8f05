package regression

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/options"
)

var (
	// ErrNoBlobs is returned when no blobs are passed to Analyze or AnalyzeEach.
	ErrNoBlobs = errors.New("no blobs provided")
	// ErrInsufficientData is returned when the features yield fewer than two
	// (FPB, BPF) samples, i.e. fewer than two features.
	ErrInsufficientData = errors.New("insufficient data points for regression")
)

// Analyze aggregates the features of all blobs and returns a single best-fit model.
//
// Shadowed features (the same ID in several blobs) are all counted; the
// analysis is about sizes, not identity.
//
// Example:
//
//	result, err := regression.Analyze(blobs, regression.WithCompression(format.CompressionS2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bpf := result.BestFit.Estimator.Estimate(1000)
func Analyze(blobs []blob.FeatureBlob, opts ...AnalyzeOption) (*Result, error) {
	if len(blobs) == 0 {
		return nil, ErrNoBlobs
	}

	cfg, err := newAnalyzeConfig(opts...)
	if err != nil {
		return nil, err
	}

	var features []geometry.Geometry
	for i, b := range blobs {
		fs, err := collectFeatures(b)
		if err != nil {
			return nil, fmt.Errorf("failed to read features of blob %d: %w", i, err)
		}
		features = append(features, fs...)
	}

	return analyzeFeatures(features, cfg)
}

// AnalyzeEach analyzes each blob separately and returns per-blob models, in
// blob order.
//
// Useful for comparing layers with different geometry complexity, or for
// detecting formula drift over time.
func AnalyzeEach(blobs []blob.FeatureBlob, opts ...AnalyzeOption) ([]*Result, error) {
	if len(blobs) == 0 {
		return nil, ErrNoBlobs
	}

	cfg, err := newAnalyzeConfig(opts...)
	if err != nil {
		return nil, err
	}

	results := make([]*Result, len(blobs))
	for i, b := range blobs {
		features, err := collectFeatures(b)
		if err != nil {
			return nil, fmt.Errorf("failed to read features of blob %d: %w", i, err)
		}

		result, err := analyzeFeatures(features, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to analyze blob %d: %w", i, err)
		}
		results[i] = result
	}

	return results, nil
}

// AnalyzeGeometries fits a model to geometries that are not encoded yet, e.g.
// a sample of a layer before choosing a tile size.
func AnalyzeGeometries(features []geometry.Geometry, opts ...AnalyzeOption) (*Result, error) {
	cfg, err := newAnalyzeConfig(opts...)
	if err != nil {
		return nil, err
	}

	return analyzeFeatures(features, cfg)
}

func newAnalyzeConfig(opts ...AnalyzeOption) (AnalyzeConfig, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return AnalyzeConfig{}, err
	}

	return cfg, nil
}

func analyzeFeatures(features []geometry.Geometry, cfg AnalyzeConfig) (*Result, error) {
	m, err := chunkAndMeasure(features, cfg)
	if err != nil {
		return nil, err
	}

	result, err := performRegression(m.FPB, m.BPF)
	if err != nil {
		return nil, err
	}
	result.ChunkFPBs = m.FPBInt

	return result, nil
}

// performRegression fits every model to the (FPB, BPF) samples and ranks them
// by R², best first. Ties keep the model order, so hyperbolic wins a tie.
func performRegression(fpbValues, bpfValues []float64) (*Result, error) {
	if len(fpbValues) != len(bpfValues) {
		return nil, fmt.Errorf("mismatched data lengths: %d FPB vs %d BPF", len(fpbValues), len(bpfValues))
	}

	if len(fpbValues) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInsufficientData, len(fpbValues))
	}

	models := []*Model{
		fitHyperbolic(fpbValues, bpfValues),
		fitLogarithmic(fpbValues, bpfValues),
		fitPower(fpbValues, bpfValues),
		fitLinear(fpbValues, bpfValues),
	}

	slices.SortStableFunc(models, func(a, b *Model) int {
		switch {
		case a.RSquared > b.RSquared:
			return -1
		case a.RSquared < b.RSquared:
			return 1
		default:
			return 0
		}
	})

	return &Result{
		BestFit:   models[0],
		AllModels: models,
	}, nil
}

// fitHyperbolic fits BPF = a + b / FPB by least squares on X' = 1/FPB.
func fitHyperbolic(x, y []float64) *Model {
	a, b := leastSquares(transform(x, func(v float64) float64 { return 1 / v }), y)
	return newModel(newCurveEstimator(ModelTypeHyperbolic, a, b), x, y)
}

// fitLogarithmic fits BPF = a + b * ln(FPB) by least squares on X' = ln(FPB).
func fitLogarithmic(x, y []float64) *Model {
	a, b := leastSquares(transform(x, math.Log), y)
	return newModel(newCurveEstimator(ModelTypeLogarithmic, a, b), x, y)
}

// fitPower fits BPF = a * FPB^b by least squares in log-log space:
// ln(BPF) = ln(a) + b * ln(FPB). Samples need positive BPF, which every
// encoded blob has.
func fitPower(x, y []float64) *Model {
	lnA, b := leastSquares(transform(x, math.Log), transform(y, math.Log))
	return newModel(newCurveEstimator(ModelTypePower, math.Exp(lnA), b), x, y)
}

// fitLinear fits BPF = a + b * FPB.
func fitLinear(x, y []float64) *Model {
	a, b := leastSquares(x, y)
	return newModel(newCurveEstimator(ModelTypeLinear, a, b), x, y)
}

func newModel(est *curveEstimator, x, y []float64) *Model {
	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = est.Estimate(x[i])
	}

	return &Model{
		Type:         est.Type(),
		Coefficients: est.Coefficients(),
		RSquared:     calculateRSquared(y, predicted),
		RMSE:         calculateRMSE(y, predicted),
		Formula:      est.formula(),
		Estimator:    est,
	}
}

func transform(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}

	return out
}

// leastSquares fits y = a + b*x. When all x are equal the slope is 0 and a is
// the mean of y.
func leastSquares(x, y []float64) (a, b float64) {
	n := float64(len(x))
	if n == 0 {
		return 0, 0
	}

	var sumX, sumY, sumXY, sumX2 float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumX2 += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n

	denom := sumX2 - n*meanX*meanX
	if denom == 0 {
		return meanY, 0
	}

	b = (sumXY - n*meanX*meanY) / denom
	a = meanY - b*meanX

	return a, b
}

// calculateRSquared calculates the coefficient of determination,
// R² = 1 - SS_res / SS_tot. It returns 0 when the observations are constant.
func calculateRSquared(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	mean := calculateMean(observed)

	var ssTot, ssRes float64
	for i := range observed {
		ssTot += (observed[i] - mean) * (observed[i] - mean)
		ssRes += (observed[i] - predicted[i]) * (observed[i] - predicted[i])
	}

	if ssTot == 0 {
		return 0
	}

	return 1.0 - (ssRes / ssTot)
}

// calculateRMSE calculates the root mean square error of the predictions.
func calculateRMSE(observed, predicted []float64) float64 {
	if len(observed) == 0 {
		return 0
	}

	sumSq := 0.0
	for i := range observed {
		diff := observed[i] - predicted[i]
		sumSq += diff * diff
	}

	return math.Sqrt(sumSq / float64(len(observed)))
}

func calculateMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
