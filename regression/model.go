package regression

import (
	"fmt"
	"math"
)

// Model represents a regression model with metadata and the concrete estimator.
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination (goodness of fit, 0-1).
	RSquared float64
	// RMSE is the root mean square error, in bytes per feature.
	RMSE float64
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// Result represents the result of a regression analysis.
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Model
	// AllModels contains all candidate models ranked by R² (best first).
	AllModels []*Model
	// ChunkFPBs holds the chunk sizes, in features per blob, used to generate
	// the (FPB, BPF) samples.
	ChunkFPBs []int
}

// EstimateSize predicts the encoded size in bytes of a blob holding features
// features, using the best-fit model. It returns 0 for features <= 0.
func (r *Result) EstimateSize(features int) int {
	if features <= 0 || r.BestFit == nil {
		return 0
	}

	bpf := r.BestFit.Estimator.Estimate(float64(features))
	if math.IsInf(bpf, 0) || math.IsNaN(bpf) || bpf < 0 {
		return 0
	}

	return int(math.Ceil(bpf * float64(features)))
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d}",
		r.BestFit, len(r.AllModels))
}
