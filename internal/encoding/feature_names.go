package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
)

// FeatureNamesSize returns the encoded size of names.
func FeatureNamesSize(names []string) int {
	size := 2
	for _, name := range names {
		size += 2 + len(name)
	}

	return size
}

// AppendFeatureNames appends the length-prefixed names table to dst.
//
// Format: [Count: uint16] [Len1: uint16][Name1: UTF-8] [Len2: uint16][Name2: UTF-8] ...
//
// Returns errs.ErrFeatureCountExceeded if there are more than 65535 names and
// errs.ErrInvalidFeatureName if a name is longer than 65535 bytes.
func AppendFeatureNames(dst []byte, names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > math.MaxUint16 {
		return dst, fmt.Errorf("%w: %d names, maximum %d", errs.ErrFeatureCountExceeded, len(names), math.MaxUint16)
	}

	for _, name := range names {
		if len(name) > math.MaxUint16 {
			return dst, fmt.Errorf("%w: name of %d bytes exceeds maximum %d",
				errs.ErrInvalidFeatureName, len(name), math.MaxUint16)
		}
	}

	dst = engine.AppendUint16(dst, uint16(len(names))) //nolint:gosec
	for _, name := range names {
		dst = engine.AppendUint16(dst, uint16(len(name))) //nolint:gosec
		dst = append(dst, name...)
	}

	return dst, nil
}

// DecodeFeatureNames decodes a names table from the start of data.
//
// It returns the names and the number of bytes consumed. Truncated input yields
// errs.ErrInvalidNamesPayload.
func DecodeFeatureNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read names count (need 2 bytes, have %d)",
			errs.ErrInvalidNamesPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2

	names := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of name %d at offset %d",
				errs.ErrInvalidNamesPayload, i, offset)
		}

		n := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+n {
			return nil, 0, fmt.Errorf("%w: name %d needs %d bytes at offset %d, have %d",
				errs.ErrInvalidNamesPayload, i, n, offset, len(data)-offset)
		}

		names[i] = string(data[offset : offset+n])
		offset += n
	}

	return names, offset, nil
}

// VerifyFeatureNames checks that hashFunc(names[i]) == ids[i] for every i.
//
// Returns errs.ErrInvalidNamesPayload on a length mismatch and
// errs.ErrHashMismatch on the first name whose hash differs.
func VerifyFeatureNames(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: %d names for %d features", errs.ErrInvalidNamesPayload, len(names), len(ids))
	}

	for i, name := range names {
		if got := hashFunc(name); got != ids[i] {
			return fmt.Errorf("%w: name %q at index %d: expected ID 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, got, ids[i])
		}
	}

	return nil
}
