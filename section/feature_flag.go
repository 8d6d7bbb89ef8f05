package section

import (
	"fmt"

	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
)

// FeatureFlag is the packed 4-byte flag field at the start of a feature blob header.
type FeatureFlag struct {
	// Options is a packed field for various options.
	// Bit 0 and 3 are reserved, must be set to 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 2 is feature names flag, 1 means a names payload follows the header.
	// Bit 4-15 are the magic number, 0x6E10 for feature blob format v1.
	Options uint16

	// WireFormat is the geometry encoding of every feature in the blob.
	WireFormat uint8
	// CompressionType is the compression applied to the geometry payload.
	CompressionType uint8
}

// NewFeatureFlag creates a little-endian EWKB flag with Zstd payload compression.
func NewFeatureFlag() FeatureFlag {
	return FeatureFlag{
		Options:         MagicFeatureV1Opt,
		WireFormat:      uint8(format.WireEWKB),
		CompressionType: uint8(format.CompressionZstd),
	}
}

// HasFeatureNames returns whether the names payload is present.
func (f FeatureFlag) HasFeatureNames() bool {
	return (f.Options & FeatureNamesMask) != 0
}

// SetHasFeatureNames enables or disables the names payload.
func (f *FeatureFlag) SetHasFeatureNames(enabled bool) {
	if enabled {
		f.Options |= FeatureNamesMask
	} else {
		f.Options &^= FeatureNamesMask
	}
}

// IsLittleEndian returns whether the data is little-endian.
func (f FeatureFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the data is big-endian.
func (f FeatureFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *FeatureFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *FeatureFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f FeatureFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Wire returns the geometry wire format.
func (f FeatureFlag) Wire() format.WireFormat {
	return format.WireFormat(f.WireFormat)
}

// SetWire sets the geometry wire format.
func (f *FeatureFlag) SetWire(w format.WireFormat) {
	f.WireFormat = uint8(w)
}

// Compression returns the payload compression type.
func (f FeatureFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *FeatureFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits, wire format and compression.
func (f FeatureFlag) Validate() error {
	if f.GetMagicNumber() != MagicFeatureV1Opt {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04x", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if !f.Wire().IsValid() {
		return fmt.Errorf("%w: wire format %d", errs.ErrInvalidHeaderFlags, f.WireFormat)
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f FeatureFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
