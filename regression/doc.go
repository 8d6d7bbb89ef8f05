// Package regression estimates feature blob sizes through regression analysis of
// encoded feature blobs.
//
// Every feature blob pays a fixed cost (the 16-byte header) plus a per-feature
// cost (one 16-byte index entry and the encoded geometry), and its payload
// compresses better the more similar geometries it holds. Bytes per feature
// (BPF) therefore falls as features per blob (FPB) grows. This package measures
// that relationship on real data and fits a formula to it.
//
// # Basic Analysis
//
// Analyze blobs from production to get a single best-fit model:
//
//	blobs := []blob.FeatureBlob{tile1, tile2, tile3}
//	result, err := regression.Analyze(blobs, regression.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	bpf := result.BestFit.Estimator.Estimate(500) // bytes per feature at 500 FPB
//	size := result.EstimateSize(500)             // bytes for a 500-feature blob
//
// The features of all blobs are re-encoded in chunks of increasing size (1, 2,
// 5, 10, ... features per blob) with the configured wire format and compression,
// and each chunk size contributes one (FPB, BPF) sample.
//
// # Per-Blob Analysis
//
// AnalyzeEach fits one model per blob, which shows how the formula differs
// between layers or drifts over time:
//
//	results, err := regression.AnalyzeEach(blobs)
//	for i, result := range results {
//	    fmt.Printf("Blob %d: %s (R²=%.4f)\n", i, result.BestFit.Type, result.BestFit.RSquared)
//	}
//
// # Model Types
//
//   - Hyperbolic: BPF = a + b / FPB (typically best for feature blobs)
//   - Logarithmic: BPF = a + b * ln(FPB)
//   - Power: BPF = a * FPB^b
//   - Linear: BPF = a + b * FPB
//
// The best-fit model is selected by the highest R² coefficient. A fitted model
// can be persisted as its type name and coefficients and restored with
// NewEstimator.
package regression
