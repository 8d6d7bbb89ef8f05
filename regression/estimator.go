package regression

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeHyperbolic represents the hyperbolic model: BPF = a + b / FPB
	ModelTypeHyperbolic ModelType = iota
	// ModelTypeLogarithmic represents the logarithmic model: BPF = a + b * ln(FPB)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: BPF = a * FPB^b
	ModelTypePower
	// ModelTypeLinear represents the linear model: BPF = a + b * FPB
	ModelTypeLinear
)

var modelTypeNames = map[ModelType]string{
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeLinear:      "linear",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Returns ModelType(-1) for unknown names.
func ModelTypeFromString(name string) ModelType {
	name = strings.ToLower(name)
	for mt, n := range modelTypeNames {
		if n == name {
			return mt
		}
	}

	return ModelType(-1)
}

// Estimator predicts bytes per feature from features per blob.
type Estimator interface {
	// Estimate calculates the bytes per feature (BPF) for a given number of
	// features per blob (FPB).
	Estimate(fpb float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns a copy of the model coefficients [a, b].
	Coefficients() []float64
	// SetCoefficients replaces the coefficients. It expects exactly two.
	SetCoefficients(coeffs []float64) error
}

// curveEstimator evaluates one of the two-coefficient models.
type curveEstimator struct {
	modelType ModelType
	a, b      float64
}

func newCurveEstimator(modelType ModelType, a, b float64) *curveEstimator {
	return &curveEstimator{modelType: modelType, a: a, b: b}
}

// Estimate returns +Inf for fpb <= 0 on models undefined there.
func (c *curveEstimator) Estimate(fpb float64) float64 {
	switch c.modelType {
	case ModelTypeHyperbolic:
		if fpb <= 0 {
			return math.Inf(1)
		}

		return c.a + c.b/fpb
	case ModelTypeLogarithmic:
		if fpb <= 0 {
			return math.Inf(1)
		}

		return c.a + c.b*math.Log(fpb)
	case ModelTypePower:
		if fpb <= 0 {
			return math.Inf(1)
		}

		return c.a * math.Pow(fpb, c.b)
	default:
		return c.a + c.b*fpb
	}
}

func (c *curveEstimator) Type() ModelType {
	return c.modelType
}

func (c *curveEstimator) Coefficients() []float64 {
	return []float64{c.a, c.b}
}

func (c *curveEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return fmt.Errorf("%s model expects exactly 2 coefficients, got %d", c.modelType, len(coeffs))
	}
	c.a, c.b = coeffs[0], coeffs[1]

	return nil
}

// formula renders the model with its coefficients.
func (c *curveEstimator) formula() string {
	switch c.modelType {
	case ModelTypeHyperbolic:
		return fmt.Sprintf("BPF = %.2f + %.2f / FPB", c.a, c.b)
	case ModelTypeLogarithmic:
		return fmt.Sprintf("BPF = %.2f + %.2f * ln(FPB)", c.a, c.b)
	case ModelTypePower:
		return fmt.Sprintf("BPF = %.2f * FPB^%.4f", c.a, c.b)
	default:
		return fmt.Sprintf("BPF = %.2f + %.4f * FPB", c.a, c.b)
	}
}

// NewEstimator restores an estimator from a model name and its coefficients,
// as reported by Model.Type and Model.Coefficients.
//
// Example:
//
//	estimator, err := regression.NewEstimator("hyperbolic", []float64{42.5, 18.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	bpf := estimator.Estimate(1000)
func NewEstimator(name string, coeffs []float64) (Estimator, error) {
	modelType := ModelTypeFromString(name)
	if modelType == ModelType(-1) {
		supported := make([]string, 0, len(modelTypeNames))
		for _, n := range modelTypeNames {
			supported = append(supported, n)
		}
		slices.Sort(supported)

		return nil, fmt.Errorf("unknown model type: %s. Supported types: %s", name, strings.Join(supported, ", "))
	}

	estimator := newCurveEstimator(modelType, 0, 0)
	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
