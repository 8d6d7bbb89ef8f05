package regression

import (
	"fmt"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/geometry"
)

// measureResult bundles the measured FPB/BPF arrays and the integer FPB list.
type measureResult struct {
	FPB    []float64
	BPF    []float64
	FPBInt []int
}

// collectFeatures decodes every feature of b, in index order.
func collectFeatures(b blob.FeatureBlob) ([]geometry.Geometry, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	features := make([]geometry.Geometry, 0, b.Len())
	for _, g := range b.All() {
		features = append(features, g)
	}

	return features, nil
}

// chunkAndMeasure re-encodes features in chunks of each test size and records
// the average encoded bytes per feature.
func chunkAndMeasure(features []geometry.Geometry, cfg AnalyzeConfig) (measureResult, error) {
	capFPB := min(len(features), blob.MaxFeatureCount)

	testFPBs := calculateTestPoints(capFPB)
	if len(testFPBs) < 2 {
		return measureResult{}, fmt.Errorf("%w: %d features", ErrInsufficientData, len(features))
	}

	res := measureResult{
		FPB:    make([]float64, 0, len(testFPBs)),
		BPF:    make([]float64, 0, len(testFPBs)),
		FPBInt: make([]int, 0, len(testFPBs)),
	}

	for _, fpb := range testFPBs {
		totalBytes, err := encodeAllChunks(features, fpb, cfg)
		if err != nil {
			return measureResult{}, err
		}

		res.FPB = append(res.FPB, float64(fpb))
		res.BPF = append(res.BPF, float64(totalBytes)/float64(len(features)))
		res.FPBInt = append(res.FPBInt, fpb)
	}

	return res, nil
}

// calculateTestPoints chooses the chunk sizes to sample, up to maxFeatures.
// maxFeatures itself is added when it is well beyond the last standard size.
func calculateTestPoints(maxFeatures int) []int {
	standard := []int{1, 2, 5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 20000, 50000}

	var out []int
	for _, p := range standard {
		if p <= maxFeatures {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		if maxFeatures > 0 {
			return []int{maxFeatures}
		}

		return nil
	}

	if last := out[len(out)-1]; maxFeatures > last && float64(maxFeatures)/float64(last) > 1.2 {
		out = append(out, maxFeatures)
	}

	return out
}

// encodeAllChunks encodes features into blobs of at most fpb features each and
// returns the total encoded size. Features are keyed by their position in the
// chunk; ID width is fixed so the keys do not affect the size.
func encodeAllChunks(features []geometry.Geometry, fpb int, cfg AnalyzeConfig) (int, error) {
	total := 0
	for start := 0; start < len(features); start += fpb {
		end := min(start+fpb, len(features))

		enc, err := blob.NewFeatureEncoder(cfg.encoderOptions()...)
		if err != nil {
			return 0, err
		}

		for i, g := range features[start:end] {
			if err := enc.AddByID(uint64(i), g); err != nil {
				return 0, fmt.Errorf("failed to encode feature %d: %w", start+i, err)
			}
		}

		fb, err := enc.Finish()
		if err != nil {
			return 0, err
		}
		total += len(fb.Bytes())
	}

	return total, nil
}
