package section

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
)

// SpatiaLiteHeader is the fixed 43-byte header of a SpatiaLite geometry BLOB.
//
// Layout:
//
//	Bytes | Field      | Description
//	------|------------|------------------------------------------
//	0     | Start      | always 0x00
//	1     | Order      | 0x00 big-endian, 0x01 little-endian
//	2-5   | SRID       | always present
//	6-37  | MBR        | min-x, min-y, max-x, max-y as float64
//	38    | Terminator | always 0x7C
//	39-42 | Class      | SpatiaLite class code (1-7, 1001-1007)
//
// The coordinate payload follows the header and a single 0xFE byte closes the BLOB.
type SpatiaLiteHeader struct {
	Engine endian.EndianEngine
	SRID   uint32
	MBR    bbox.MBR
	Kind   format.Kind
}

// Append appends the encoded header to dst and returns the extended slice.
func (h SpatiaLiteHeader) Append(dst []byte) []byte {
	dst = append(dst, SpatiaLiteStart, endian.Marker(h.Engine))
	dst = h.Engine.AppendUint32(dst, h.SRID)
	dst = h.Engine.AppendUint64(dst, math.Float64bits(h.MBR.MinX))
	dst = h.Engine.AppendUint64(dst, math.Float64bits(h.MBR.MinY))
	dst = h.Engine.AppendUint64(dst, math.Float64bits(h.MBR.MaxX))
	dst = h.Engine.AppendUint64(dst, math.Float64bits(h.MBR.MaxY))
	dst = append(dst, SpatiaLiteMBRTerminator)
	dst = h.Engine.AppendUint32(dst, h.Kind.SpatiaLiteCode())

	return dst
}

// ParseSpatiaLiteHeader parses a header from the first 43 bytes of data.
//
// Returns errs.ErrInvalidHeaderSize if data is too short.
func ParseSpatiaLiteHeader(data []byte) (SpatiaLiteHeader, error) {
	if len(data) < SpatiaLiteHeaderSize {
		return SpatiaLiteHeader{}, fmt.Errorf("%w: got %d bytes, need %d",
			errs.ErrInvalidHeaderSize, len(data), SpatiaLiteHeaderSize)
	}

	engine, err := checkSpatiaLitePrefix(data[0], data[1])
	if err != nil {
		return SpatiaLiteHeader{}, err
	}

	return parseSpatiaLiteBody(engine, data[2:SpatiaLiteHeaderSize])
}

// ReadSpatiaLiteHeader reads a header from r.
//
// Read failures are returned unchanged. The start marker and byte order are
// checked before the rest of the header is read, so a stream that is not a
// SpatiaLite BLOB fails fast with errs.ErrInvalidStartMarker.
func ReadSpatiaLiteHeader(r io.Reader) (SpatiaLiteHeader, error) {
	var buf [SpatiaLiteHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:2]); err != nil {
		return SpatiaLiteHeader{}, err
	}

	engine, err := checkSpatiaLitePrefix(buf[0], buf[1])
	if err != nil {
		return SpatiaLiteHeader{}, err
	}

	if _, err := io.ReadFull(r, buf[2:]); err != nil {
		return SpatiaLiteHeader{}, err
	}

	return parseSpatiaLiteBody(engine, buf[2:])
}

// AppendSpatiaLiteTrailer appends the end marker to dst.
func AppendSpatiaLiteTrailer(dst []byte) []byte {
	return append(dst, SpatiaLiteEnd)
}

// CheckSpatiaLiteTrailer verifies the end marker.
func CheckSpatiaLiteTrailer(b byte) error {
	if b != SpatiaLiteEnd {
		return fmt.Errorf("%w: got 0x%02x, want 0x%02x", errs.ErrInvalidEndMarker, b, SpatiaLiteEnd)
	}

	return nil
}

func checkSpatiaLitePrefix(start, marker byte) (endian.EndianEngine, error) {
	if start != SpatiaLiteStart {
		return nil, fmt.Errorf("%w: got 0x%02x, want 0x%02x", errs.ErrInvalidStartMarker, start, SpatiaLiteStart)
	}

	return endian.FromMarker(marker)
}

// parseSpatiaLiteBody parses the 41 header bytes after start and order markers.
func parseSpatiaLiteBody(engine endian.EndianEngine, b []byte) (SpatiaLiteHeader, error) {
	h := SpatiaLiteHeader{
		Engine: engine,
		SRID:   engine.Uint32(b[0:4]),
		MBR: bbox.MBR{
			MinX: math.Float64frombits(engine.Uint64(b[4:12])),
			MinY: math.Float64frombits(engine.Uint64(b[12:20])),
			MaxX: math.Float64frombits(engine.Uint64(b[20:28])),
			MaxY: math.Float64frombits(engine.Uint64(b[28:36])),
		},
	}

	if b[36] != SpatiaLiteMBRTerminator {
		return SpatiaLiteHeader{}, fmt.Errorf("%w: got 0x%02x, want 0x%02x",
			errs.ErrInvalidMBRTerminator, b[36], SpatiaLiteMBRTerminator)
	}

	kind, err := format.KindFromSpatiaLite(engine.Uint32(b[37:41]))
	if err != nil {
		return SpatiaLiteHeader{}, err
	}
	h.Kind = kind

	return h, nil
}
