package regression

import (
	"fmt"

	"github.com/arloliu/geowire/blob"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/internal/options"
)

// AnalyzeConfig holds the encoder settings used when re-encoding features.
type AnalyzeConfig struct {
	Wire        format.WireFormat
	Compression format.CompressionType
	BigEndian   bool
}

// defaultAnalyzeConfig returns default config (little-endian EWKB, no compression).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Wire:        format.WireEWKB,
		Compression: format.CompressionNone,
	}
}

// encoderOptions translates the config into feature encoder options.
func (c AnalyzeConfig) encoderOptions() []blob.FeatureEncoderOption {
	byteOrder := blob.WithLittleEndian()
	if c.BigEndian {
		byteOrder = blob.WithBigEndian()
	}

	return []blob.FeatureEncoderOption{
		byteOrder,
		blob.WithWireFormat(c.Wire),
		blob.WithCompression(c.Compression),
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithWireFormat sets the feature wire format.
func WithWireFormat(wire format.WireFormat) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if !wire.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidWireFormat, wire)
		}
		cfg.Wire = wire

		return nil
	})
}

// WithCompression sets the payload compression.
func WithCompression(compression format.CompressionType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, compression)
		}
		cfg.Compression = compression

		return nil
	})
}

// WithBigEndian re-encodes in big-endian byte order.
func WithBigEndian() AnalyzeOption {
	return options.NoError(func(cfg *AnalyzeConfig) {
		cfg.BigEndian = true
	})
}
