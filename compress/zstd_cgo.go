//go:build cgo_zstd && cgo

package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/valyala/gozstd"
)

const zstdLevel = 3

// Compress compresses data into a single Zstandard frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes a Zstandard frame. Empty input yields nil.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var header zstd.Header
	if err := header.Decode(data); err == nil && header.HasFCS && header.FrameContentSize > MaxZstdDecompressedSize {
		return nil, fmt.Errorf("zstd decompression failed: %w", zstd.ErrDecoderSizeExceeded)
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	// Frames without a content size are only checked after decoding.
	if len(out) > MaxZstdDecompressedSize {
		return nil, fmt.Errorf("zstd decompression failed: %w", zstd.ErrDecoderSizeExceeded)
	}

	return out, nil
}
