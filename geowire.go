// Package geowire encodes geometries to and from the binary formats spatial
// databases store them in: PostGIS Extended Well-Known Binary (EWKB) and the
// SpatiaLite BLOB format.
//
// # Core Features
//
//   - Dimension-generic geometry model: six shapes in 2D and 3D
//   - Bit-exact EWKB and SpatiaLite codecs in both byte orders
//   - Optional SRID, with 4326 as the SpatiaLite default
//   - Typed errors instead of panics on any input bytes
//   - Feature blobs: many keyed geometries in one compressed container
//   - database/sql column types and go-geom conversion
//
// # Basic Usage
//
// Encoding and decoding a single geometry:
//
//	import (
//	    "github.com/arloliu/geowire"
//	    "github.com/arloliu/geowire/coords"
//	    "github.com/arloliu/geowire/geometry"
//	)
//
//	g := geometry.NewWithSRID(geometry.NewPoint(coords.XY{8.54, 47.37}), 4326)
//
//	data, _ := geowire.MarshalEWKB(g)
//	back, _ := geowire.UnmarshalEWKB(data)
//
//	pt, err := geometry.AsPoint(back)
//
// Storing many named geometries in one feature blob:
//
//	encoder, _ := geowire.NewDefaultFeatureEncoder()
//	encoder.AddByName("zurich", zurich)
//	encoder.AddByName("geneva", geneva)
//	fb, _ := encoder.Finish()
//
//	decoded, _ := geowire.DecodeFeatureBlob(fb.Bytes())
//	g, err := decoded.GetByName("zurich")
//
// # Package Structure
//
// This package provides top-level wrappers for the most common use cases. The
// ewkb, spatialite and blob packages expose the full API; dbtype binds the
// codecs to database/sql and geomconv converts to and from go-geom.
package geowire

import (
	"fmt"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/arloliu/geowire/spatialite"
)

var defaultFeatureOptions = []blob.FeatureEncoderOption{
	blob.WithLittleEndian(),
	blob.WithWireFormat(format.WireEWKB),
	blob.WithCompression(format.CompressionZstd),
}

// MarshalEWKB returns the EWKB encoding of g in little-endian byte order, the
// order PostGIS itself emits.
//
// Use ewkb.Marshal directly to choose another byte order.
func MarshalEWKB(g geometry.Geometry) ([]byte, error) {
	return ewkb.Marshal(g, ewkb.WithLittleEndian())
}

// UnmarshalEWKB decodes data, which must hold exactly one EWKB geometry in
// either byte order.
func UnmarshalEWKB(data []byte) (geometry.Geometry, error) {
	return ewkb.Unmarshal(data)
}

// MarshalSpatiaLite returns the SpatiaLite BLOB encoding of g in little-endian
// byte order. Geometries without an SRID are written with SRID 4326.
//
// Use spatialite.Marshal directly to choose another byte order or default SRID.
func MarshalSpatiaLite(g geometry.Geometry) ([]byte, error) {
	return spatialite.Marshal(g, spatialite.WithLittleEndian())
}

// UnmarshalSpatiaLite decodes data, which must hold exactly one SpatiaLite BLOB
// in either byte order.
func UnmarshalSpatiaLite(data []byte) (geometry.Geometry, error) {
	return spatialite.Unmarshal(data)
}

// Marshal encodes g in the given wire format, little-endian.
//
// Returns errs.ErrInvalidWireFormat for an unknown wire format.
func Marshal(g geometry.Geometry, wire format.WireFormat) ([]byte, error) {
	switch wire {
	case format.WireEWKB:
		return MarshalEWKB(g)
	case format.WireSpatiaLite:
		return MarshalSpatiaLite(g)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidWireFormat, wire)
	}
}

// Unmarshal decodes data holding exactly one geometry in the given wire format.
//
// Returns errs.ErrInvalidWireFormat for an unknown wire format.
func Unmarshal(data []byte, wire format.WireFormat) (geometry.Geometry, error) {
	switch wire {
	case format.WireEWKB:
		return UnmarshalEWKB(data)
	case format.WireSpatiaLite:
		return UnmarshalSpatiaLite(data)
	default:
		return geometry.Geometry{}, fmt.Errorf("%w: %d", errs.ErrInvalidWireFormat, wire)
	}
}

// NewFeatureEncoder creates a feature blob encoder with custom options.
//
// This is the most flexible factory function, allowing full control over the
// blob layout through options.
//
// Parameters:
//   - opts: Optional configuration functions (see blob.FeatureEncoderOption)
//
// Returns:
//   - *blob.FeatureEncoder: The created feature encoder.
//   - error: An error if the configuration is invalid.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithWireFormat(format.WireEWKB|WireSpatiaLite)
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithFeatureNames(true|false)
//   - blob.WithDefaultSRID(srid)
//
// Example:
//
//	encoder, err := geowire.NewFeatureEncoder(
//	    blob.WithWireFormat(format.WireSpatiaLite),
//	    blob.WithCompression(format.CompressionS2),
//	)
func NewFeatureEncoder(opts ...blob.FeatureEncoderOption) (*blob.FeatureEncoder, error) {
	return blob.NewFeatureEncoder(opts...)
}

// NewDefaultFeatureEncoder creates a feature encoder with recommended default settings.
//
// It uses:
//   - Little-endian byte order
//   - EWKB feature encoding
//   - Zstd payload compression (coordinate payloads compress well)
//   - Names stored only on hash collision
//
// Additional options are applied after the defaults and override them.
//
// Example:
//
//	encoder, err := geowire.NewDefaultFeatureEncoder(blob.WithFeatureNames(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewDefaultFeatureEncoder(opts ...blob.FeatureEncoderOption) (*blob.FeatureEncoder, error) {
	allOpts := append(append([]blob.FeatureEncoderOption{}, defaultFeatureOptions...), opts...)
	return blob.NewFeatureEncoder(allOpts...)
}

// NewFeatureDecoder creates a decoder for reading feature blobs.
//
// The decoder detects the blob's byte order, wire format and compression from
// the header.
//
// Example:
//
//	decoder, err := geowire.NewFeatureDecoder(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fb, err := decoder.Decode()
func NewFeatureDecoder(data []byte) (*blob.FeatureDecoder, error) {
	return blob.NewFeatureDecoder(data)
}

// DecodeFeatureBlob decodes a feature blob in one step.
func DecodeFeatureBlob(data []byte) (blob.FeatureBlob, error) {
	return blob.DecodeFeatureBlob(data)
}

// NewFeatureBlobSet groups feature blobs, such as the tiles of one layer, for
// lookups across all of them. Earlier blobs shadow later ones holding the same
// feature ID.
//
// Example:
//
//	set := geowire.NewFeatureBlobSet([]blob.FeatureBlob{tile1, tile2})
//	g, err := set.GetByName("zurich")
//	bounds, err := set.MBR()
func NewFeatureBlobSet(blobs []blob.FeatureBlob) blob.FeatureBlobSet {
	return blob.NewFeatureBlobSet(blobs)
}

// FeatureID computes the 64-bit feature ID of name using xxHash64.
//
// Encoders in name mode key features by this ID, so it can be used to look up
// features by ID in any blob:
//
//	g, err := fb.Get(geowire.FeatureID("zurich"))
//
// When two names in one blob hash to the same ID, the encoder stores the names
// and the decoder verifies them.
func FeatureID(name string) uint64 {
	return hash.ID(name)
}
