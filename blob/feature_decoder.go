package blob

import (
	"fmt"

	"github.com/arloliu/geowire/compress"
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	ienc "github.com/arloliu/geowire/internal/encoding"
	"github.com/arloliu/geowire/internal/hash"
	"github.com/arloliu/geowire/section"
)

// FeatureDecoder decodes an encoded feature blob into a FeatureBlob.
//
// The decoder handles:
//   - Header parsing with validation
//   - Feature names payload (when present)
//   - Index entries with bounds checks against the payload
//   - Payload decompression and size verification
//   - Feature name hash verification
//
// Geometries themselves are decoded lazily by FeatureBlob.
//
// Note: The FeatureDecoder is NOT thread-safe.
type FeatureDecoder struct {
	data   []byte
	engine endian.EndianEngine
	header section.FeatureHeader
}

// NewFeatureDecoder creates a decoder for data and validates its header.
//
// Returns errs.ErrInvalidHeaderSize, errs.ErrInvalidMagicNumber or
// errs.ErrInvalidHeaderFlags for a malformed header.
func NewFeatureDecoder(data []byte) (*FeatureDecoder, error) {
	header, err := section.ParseFeatureHeader(data)
	if err != nil {
		return nil, err
	}

	return &FeatureDecoder{
		data:   data,
		engine: header.Flag.GetEndianEngine(),
		header: header,
	}, nil
}

// Decode decodes the blob.
//
// The returned FeatureBlob keeps references to data; when the payload is not
// compressed it also aliases data for the geometries.
func (d *FeatureDecoder) Decode() (FeatureBlob, error) {
	count := int(d.header.Count)
	payloadOffset := int(d.header.PayloadOffset)

	if len(d.data) < payloadOffset {
		return FeatureBlob{}, fmt.Errorf("%w: payload offset %d exceeds blob length %d",
			errs.ErrInvalidIndexOffsets, payloadOffset, len(d.data))
	}

	// Step 1: Parse feature names (if present)
	names, indexOffset, err := d.parseFeatureNames(count)
	if err != nil {
		return FeatureBlob{}, err
	}

	// Step 2: Parse index entries
	entries, err := d.parseIndexEntries(indexOffset, count)
	if err != nil {
		return FeatureBlob{}, err
	}

	// Step 3: Verify names against the stored IDs
	if names != nil {
		ids := make([]uint64, len(entries))
		for i, e := range entries {
			ids[i] = e.ID
		}

		if err := ienc.VerifyFeatureNames(names, ids, hash.ID); err != nil {
			return FeatureBlob{}, fmt.Errorf("feature name verification failed: %w", err)
		}
	}

	// Step 4: Decompress the payload
	payload, err := d.decompressPayload(payloadOffset)
	if err != nil {
		return FeatureBlob{}, err
	}

	return newFeatureBlob(d.data, d.header, newFeatureIndex(entries, names), payload), nil
}

// parseFeatureNames decodes the names payload if present and returns the
// offset where the index section starts.
func (d *FeatureDecoder) parseFeatureNames(count int) ([]string, int, error) {
	if !d.header.Flag.HasFeatureNames() {
		return nil, section.FeatureHeaderSize, nil
	}

	names, n, err := ienc.DecodeFeatureNames(d.data[section.FeatureHeaderSize:], d.engine)
	if err != nil {
		return nil, 0, err
	}

	if len(names) != count {
		return nil, 0, fmt.Errorf("%w: expected %d names, got %d", errs.ErrInvalidNamesPayload, count, len(names))
	}

	return names, section.FeatureHeaderSize + n, nil
}

// parseIndexEntries parses count entries starting at offset. The index must end
// exactly at the payload offset and every entry must lie within the payload.
func (d *FeatureDecoder) parseIndexEntries(offset, count int) ([]section.FeatureIndexEntry, error) {
	end := offset + count*section.FeatureIndexEntrySize
	if end != int(d.header.PayloadOffset) {
		return nil, fmt.Errorf("%w: index ends at %d, payload starts at %d",
			errs.ErrInvalidIndexOffsets, end, d.header.PayloadOffset)
	}

	entries := make([]section.FeatureIndexEntry, count)
	for i := range entries {
		start := offset + i*section.FeatureIndexEntrySize

		entry, err := section.ParseFeatureIndexEntry(d.data[start:end], d.engine)
		if err != nil {
			return nil, err
		}

		if entry.End() > uint64(d.header.PayloadSize) {
			return nil, fmt.Errorf("%w: entry %d spans [%d, %d) beyond payload size %d",
				errs.ErrInvalidIndexOffsets, i, entry.Offset, entry.End(), d.header.PayloadSize)
		}
		entries[i] = entry
	}

	return entries, nil
}

func (d *FeatureDecoder) decompressPayload(offset int) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(d.data[offset:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(payload) != int(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d bytes, got %d",
			errs.ErrPayloadSizeMismatch, d.header.PayloadSize, len(payload))
	}

	return payload, nil
}

// DecodeFeatureBlob is a shorthand for NewFeatureDecoder followed by Decode.
func DecodeFeatureBlob(data []byte) (FeatureBlob, error) {
	d, err := NewFeatureDecoder(data)
	if err != nil {
		return FeatureBlob{}, err
	}

	return d.Decode()
}
