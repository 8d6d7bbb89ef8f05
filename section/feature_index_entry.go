package section

import (
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
)

// FeatureIndexEntry locates one encoded geometry in the uncompressed payload.
// It is a fixed size of 16 bytes and uses absolute offsets.
//
//	Feature 1: 21 bytes → Offset=0,  Length=21
//	Feature 2: 93 bytes → Offset=21, Length=93
//	Direct access: payload[entry.Offset : entry.Offset+entry.Length]
type FeatureIndexEntry struct {
	// ID is the caller-provided feature ID or the xxHash64 of the feature name.
	ID uint64 // 8 bytes, offset 0-7
	// Offset is the absolute byte offset into the uncompressed payload.
	Offset uint32 // 4 bytes, offset 8-11
	// Length is the byte length of the encoded geometry.
	Length uint32 // 4 bytes, offset 12-15
}

// End returns the offset one past the last byte of the entry's geometry.
func (e FeatureIndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// Append appends the serialized entry to dst.
func (e FeatureIndexEntry) Append(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, e.ID)
	dst = engine.AppendUint32(dst, e.Offset)
	dst = engine.AppendUint32(dst, e.Length)

	return dst
}

// ParseFeatureIndexEntry parses an index entry from a byte slice.
func ParseFeatureIndexEntry(data []byte, engine endian.EndianEngine) (FeatureIndexEntry, error) {
	if len(data) < FeatureIndexEntrySize {
		return FeatureIndexEntry{}, errs.ErrInvalidIndexEntrySize
	}

	return FeatureIndexEntry{
		ID:     engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Length: engine.Uint32(data[12:16]),
	}, nil
}
