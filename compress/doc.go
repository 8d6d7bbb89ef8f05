// Package compress provides the payload compression codecs used by feature blobs.
//
// A feature blob concatenates the encoded geometries of all its features into a
// single payload and compresses that payload as a whole. Coordinates of nearby
// vertices share sign, exponent and leading mantissa bytes, so general-purpose
// compressors do well on it.
//
// Supported algorithms:
//
//	Type                     | Codec           | Notes
//	-------------------------|-----------------|---------------------------------
//	format.CompressionNone   | NoOpCompressor  | returns its input unchanged
//	format.CompressionZstd   | ZstdCompressor  | best ratio, default for blobs
//	format.CompressionS2     | S2Compressor    | fast, moderate ratio
//	format.CompressionLZ4    | LZ4Compressor   | fastest decompression
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// both cgo and the cgo_zstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags cgo_zstd ./...
//
// The two implementations produce interchangeable frames.
//
// Codecs are stateless values backed by pooled encoders and are safe for
// concurrent use. Use GetCodec to look one up by type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
package compress
