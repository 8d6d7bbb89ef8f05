package blob

import (
	"fmt"

	"github.com/arloliu/geowire/compress"
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/internal/options"
	"github.com/arloliu/geowire/section"
)

// MaxFeatureCount is the maximum number of features in a single blob.
const MaxFeatureCount = section.FeatureMaxCount

// initialIndexCapacity is the initial capacity of the index entries slice.
const initialIndexCapacity = 16

// FeatureEncoderConfig holds feature encoder configuration.
type FeatureEncoderConfig struct {
	header      *section.FeatureHeader
	engine      endian.EndianEngine
	codec       compress.Codec
	storeNames  bool
	defaultSRID uint32
}

// NewFeatureEncoderConfig creates a configuration with the defaults: little-endian,
// EWKB, Zstd compression, no names payload unless names collide, and SRID 4326
// for SpatiaLite features without one.
func NewFeatureEncoderConfig() *FeatureEncoderConfig {
	header := section.NewFeatureHeader()

	return &FeatureEncoderConfig{
		header:      header,
		engine:      header.Flag.GetEndianEngine(),
		defaultSRID: geometry.DefaultSRID,
	}
}

// FeatureEncoderOption configures a FeatureEncoder.
type FeatureEncoderOption = options.Option[*FeatureEncoderConfig]

// WithLittleEndian encodes the blob, including every geometry, in little-endian order.
func WithLittleEndian() FeatureEncoderOption {
	return options.NoError(func(c *FeatureEncoderConfig) {
		c.header.Flag.WithLittleEndian()
		c.engine = c.header.Flag.GetEndianEngine()
	})
}

// WithBigEndian encodes the blob, including every geometry, in big-endian order.
func WithBigEndian() FeatureEncoderOption {
	return options.NoError(func(c *FeatureEncoderConfig) {
		c.header.Flag.WithBigEndian()
		c.engine = c.header.Flag.GetEndianEngine()
	})
}

// WithWireFormat selects the geometry encoding. Default is format.WireEWKB.
//
// Returns errs.ErrInvalidWireFormat for an unknown format.
func WithWireFormat(wire format.WireFormat) FeatureEncoderOption {
	return options.New(func(c *FeatureEncoderConfig) error {
		if !wire.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWireFormat, wire)
		}
		c.header.Flag.SetWire(wire)

		return nil
	})
}

// WithCompression selects the payload compression. Default is format.CompressionZstd.
//
// Returns errs.ErrInvalidCompression for an unknown type.
func WithCompression(compression format.CompressionType) FeatureEncoderOption {
	return options.New(func(c *FeatureEncoderConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
		}
		c.header.Flag.SetCompression(compression)

		return nil
	})
}

// WithFeatureNames stores the names payload even when no names collide, so
// FeatureBlob.Names returns them. It has no effect on blobs keyed by ID.
func WithFeatureNames(enabled bool) FeatureEncoderOption {
	return options.NoError(func(c *FeatureEncoderConfig) {
		c.storeNames = enabled
	})
}

// WithDefaultSRID sets the SRID written for SpatiaLite features that carry
// none. It defaults to geometry.DefaultSRID.
func WithDefaultSRID(srid uint32) FeatureEncoderOption {
	return options.NoError(func(c *FeatureEncoderConfig) {
		c.defaultSRID = srid
	})
}

// setCodec resolves the payload codec from the header.
func (c *FeatureEncoderConfig) setCodec() error {
	codec, err := compress.GetCodec(c.header.Flag.Compression())
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}
