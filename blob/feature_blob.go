package blob

import (
	"fmt"
	"iter"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/section"
)

// FeatureBlob is a decoded feature blob: an immutable set of keyed geometries.
//
// Geometries are decoded lazily from the uncompressed payload on every access.
// A FeatureBlob is safe for concurrent use.
type FeatureBlob struct {
	data        []byte
	payload     []byte
	wire        format.WireFormat
	compression format.CompressionType
	bigEndian   bool
	index       featureIndex
}

func newFeatureBlob(data []byte, header section.FeatureHeader, index featureIndex, payload []byte) FeatureBlob {
	return FeatureBlob{
		data:        data,
		payload:     payload,
		wire:        header.Flag.Wire(),
		compression: header.Flag.Compression(),
		bigEndian:   header.Flag.IsBigEndian(),
		index:       index,
	}
}

// Bytes returns the encoded blob. The slice must not be modified.
func (b FeatureBlob) Bytes() []byte {
	return b.data
}

// Len returns the number of features in the blob.
func (b FeatureBlob) Len() int {
	return b.index.Len()
}

// Wire returns the wire format the geometries are stored in.
func (b FeatureBlob) Wire() format.WireFormat {
	return b.wire
}

// Compression returns the payload compression of the encoded blob.
func (b FeatureBlob) Compression() format.CompressionType {
	return b.compression
}

// IsBigEndian reports whether the blob and its geometries use big-endian order.
func (b FeatureBlob) IsBigEndian() bool {
	return b.bigEndian
}

// IDs returns the feature IDs in the order the features were added.
// The slice is newly allocated.
func (b FeatureBlob) IDs() []uint64 {
	return b.index.IDs()
}

// Names returns the feature names in the order the features were added, or nil
// if the blob has no names payload. The slice is newly allocated.
func (b FeatureBlob) Names() []string {
	return b.index.Names()
}

// Has reports whether the blob contains a feature with the given ID.
func (b FeatureBlob) Has(id uint64) bool {
	return b.index.HasID(id)
}

// HasName reports whether the blob contains a feature with the given name.
func (b FeatureBlob) HasName(name string) bool {
	_, ok := b.index.ByName(name)
	return ok
}

// Raw returns the encoded geometry of the feature with the given ID, in the
// blob's wire format. The slice aliases the blob and must not be modified.
func (b FeatureBlob) Raw(id uint64) ([]byte, bool) {
	entry, ok := b.index.ByID(id)
	if !ok {
		return nil, false
	}

	return b.raw(entry), true
}

// Get decodes the feature with the given ID.
//
// Returns errs.ErrFeatureNotFound if the ID is absent.
func (b FeatureBlob) Get(id uint64) (geometry.Geometry, error) {
	entry, ok := b.index.ByID(id)
	if !ok {
		return geometry.Geometry{}, fmt.Errorf("%w: ID 0x%016x", errs.ErrFeatureNotFound, id)
	}

	return decodeFeature(b.wire, b.raw(entry))
}

// GetByName decodes the feature with the given name.
//
// Returns errs.ErrFeatureNotFound if the name is absent.
func (b FeatureBlob) GetByName(name string) (geometry.Geometry, error) {
	entry, ok := b.index.ByName(name)
	if !ok {
		return geometry.Geometry{}, fmt.Errorf("%w: %q", errs.ErrFeatureNotFound, name)
	}

	return decodeFeature(b.wire, b.raw(entry))
}

// All returns an iterator over all features in the order they were added.
//
// Iteration stops at the first feature that fails to decode; use Validate to
// get the error.
//
// Example:
//
//	for id, g := range fb.All() {
//	    fmt.Printf("0x%016x: %s\n", id, g)
//	}
func (b FeatureBlob) All() iter.Seq2[uint64, geometry.Geometry] {
	return func(yield func(uint64, geometry.Geometry) bool) {
		for _, entry := range b.index.entries {
			g, err := decodeFeature(b.wire, b.raw(entry))
			if err != nil {
				return
			}

			if !yield(entry.ID, g) {
				return
			}
		}
	}
}

// Validate decodes every feature and returns the first error.
func (b FeatureBlob) Validate() error {
	for i, entry := range b.index.entries {
		if _, err := decodeFeature(b.wire, b.raw(entry)); err != nil {
			return fmt.Errorf("feature %d (ID 0x%016x): %w", i, entry.ID, err)
		}
	}

	return nil
}

// MBR returns the union of the bounding rectangles of all features.
//
// Every feature is decoded and its rectangle computed from the coordinates;
// rectangles stored in SpatiaLite headers are ignored.
func (b FeatureBlob) MBR() (bbox.MBR, error) {
	calc := bbox.NewCalculator()

	for _, entry := range b.index.entries {
		g, err := decodeFeature(b.wire, b.raw(entry))
		if err != nil {
			return bbox.MBR{}, fmt.Errorf("feature ID 0x%016x: %w", entry.ID, err)
		}

		mbr, err := g.MBR()
		if err != nil {
			return bbox.MBR{}, fmt.Errorf("feature ID 0x%016x: %w", entry.ID, err)
		}
		calc.AddMBR(mbr)
	}

	return calc.Bounds()
}

func (b FeatureBlob) raw(entry section.FeatureIndexEntry) []byte {
	return b.payload[entry.Offset:entry.End():entry.End()]
}
