package compress

// MaxZstdDecompressedSize bounds the output of a single Zstandard frame.
// Frames declaring or producing more fail with zstd.ErrDecoderSizeExceeded.
const MaxZstdDecompressedSize = 128 * 1024 * 1024

// ZstdCompressor compresses payloads with Zstandard.
//
// It gives the best ratio of the built-in codecs on coordinate data and is the
// default compression for feature blobs. The implementation is selected at
// build time; see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
