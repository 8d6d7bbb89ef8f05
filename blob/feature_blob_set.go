package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/geometry"
)

// FeatureBlobSet provides unified read access to several feature blobs, for
// example the tiles of a layer.
//
// Lookups search the blobs in the order given and return the first match, so
// earlier blobs shadow later ones for the same key. The blobs may use different
// wire formats, byte orders and compression.
type FeatureBlobSet struct {
	blobs []FeatureBlob
}

// NewFeatureBlobSet creates a set over blobs. The slice is not copied.
func NewFeatureBlobSet(blobs []FeatureBlob) FeatureBlobSet {
	return FeatureBlobSet{blobs: blobs}
}

// Blobs returns the blobs in the set.
func (s FeatureBlobSet) Blobs() []FeatureBlob {
	return s.blobs
}

// Len returns the total number of features across all blobs, counting
// shadowed features.
func (s FeatureBlobSet) Len() int {
	n := 0
	for _, b := range s.blobs {
		n += b.Len()
	}

	return n
}

// Has reports whether any blob contains a feature with the given ID.
func (s FeatureBlobSet) Has(id uint64) bool {
	for _, b := range s.blobs {
		if b.Has(id) {
			return true
		}
	}

	return false
}

// Get decodes the first feature with the given ID.
//
// Returns errs.ErrFeatureNotFound if no blob contains it.
func (s FeatureBlobSet) Get(id uint64) (geometry.Geometry, error) {
	for _, b := range s.blobs {
		if b.Has(id) {
			return b.Get(id)
		}
	}

	return geometry.Geometry{}, fmt.Errorf("%w: ID 0x%016x", errs.ErrFeatureNotFound, id)
}

// GetByName decodes the first feature with the given name.
//
// Returns errs.ErrFeatureNotFound if no blob contains it.
func (s FeatureBlobSet) GetByName(name string) (geometry.Geometry, error) {
	for _, b := range s.blobs {
		if b.HasName(name) {
			return b.GetByName(name)
		}
	}

	return geometry.Geometry{}, fmt.Errorf("%w: %q", errs.ErrFeatureNotFound, name)
}

// All iterates over the features of every blob in order, including shadowed
// ones.
func (s FeatureBlobSet) All() iter.Seq2[uint64, geometry.Geometry] {
	return func(yield func(uint64, geometry.Geometry) bool) {
		for _, b := range s.blobs {
			for id, g := range b.All() {
				if !yield(id, g) {
					return
				}
			}
		}
	}
}

// MBR returns the union of the bounding rectangles of all blobs.
//
// Returns errs.ErrEmptyCoordinates for an empty set.
func (s FeatureBlobSet) MBR() (bbox.MBR, error) {
	calc := bbox.NewCalculator()

	for i, b := range s.blobs {
		mbr, err := b.MBR()
		if err != nil {
			return bbox.MBR{}, fmt.Errorf("blob %d: %w", i, err)
		}
		calc.AddMBR(mbr)
	}

	return calc.Bounds()
}
