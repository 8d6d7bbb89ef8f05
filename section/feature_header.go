package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/geowire/errs"
)

// FeatureHeader is the fixed 16-byte header at the start of a feature blob.
type FeatureHeader struct {
	// Flag is a packed field for options, wire format and compression.
	Flag FeatureFlag // byte offset 0-3
	// Count is the number of features stored in the blob.
	Count uint32 // byte offset 4-7
	// PayloadOffset is the byte offset to the start of the compressed geometry payload.
	PayloadOffset uint32 // byte offset 8-11
	// PayloadSize is the size of the geometry payload after decompression.
	PayloadSize uint32 // byte offset 12-15
}

// NewFeatureHeader creates a header with the default flag.
// Count and offsets are filled in by the encoder when it finishes.
func NewFeatureHeader() *FeatureHeader {
	return &FeatureHeader{Flag: NewFeatureFlag()}
}

// Parse parses the header from a byte slice.
//
// The Options field is always little-endian so the byte order bit can be read
// before the engine for the remaining fields is known.
//
// Returns:
//   - errs.ErrInvalidHeaderSize if data is not 16 bytes
//   - flag validation errors
func (h *FeatureHeader) Parse(data []byte) error {
	if len(data) != FeatureHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.WireFormat = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.Count = engine.Uint32(data[4:8])
	h.PayloadOffset = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])

	if h.Count > FeatureMaxCount {
		return fmt.Errorf("%w: %d features", errs.ErrFeatureCountExceeded, h.Count)
	}

	return nil
}

// Bytes serializes the header into a new byte slice.
func (h *FeatureHeader) Bytes() []byte {
	return h.Append(make([]byte, 0, FeatureHeaderSize))
}

// Append appends the serialized header to dst.
func (h *FeatureHeader) Append(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, h.Flag.WireFormat, h.Flag.CompressionType)
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.PayloadOffset)
	dst = engine.AppendUint32(dst, h.PayloadSize)

	return dst
}

// ParseFeatureHeader parses a FeatureHeader from the start of data.
//
// Returns errs.ErrInvalidHeaderSize if data is shorter than 16 bytes.
func ParseFeatureHeader(data []byte) (FeatureHeader, error) {
	if len(data) < FeatureHeaderSize {
		return FeatureHeader{}, errs.ErrInvalidHeaderSize
	}

	h := FeatureHeader{}
	if err := h.Parse(data[:FeatureHeaderSize]); err != nil {
		return FeatureHeader{}, err
	}

	return h, nil
}
