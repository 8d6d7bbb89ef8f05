package section

import (
	"fmt"
	"io"

	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/format"
)

// EWKBHeader is the variable-size header that starts every EWKB value.
//
// Layout:
//
//	Bytes | Field | Description
//	------|-------|--------------------------------------------------
//	0     | Order | 0x00 big-endian, 0x01 little-endian
//	1-4   | Type  | kind code | Z flag (3D) | SRID flag (SRID present)
//	5-8   | SRID  | present only when the SRID flag is set
type EWKBHeader struct {
	Engine  endian.EndianEngine
	Kind    format.Kind
	SRID    uint32
	HasSRID bool
}

// TypeCode returns the wire type code including the Z and SRID flags.
func (h EWKBHeader) TypeCode() uint32 {
	code := h.Kind.EWKBCode()
	if h.HasSRID {
		code |= format.EWKBSRIDFlag
	}

	return code
}

// Size returns the encoded header size: 5 bytes, or 9 with an SRID.
func (h EWKBHeader) Size() int {
	if h.HasSRID {
		return EWKBMaxSize
	}

	return EWKBMinSize
}

// Append appends the encoded header to dst and returns the extended slice.
func (h EWKBHeader) Append(dst []byte) []byte {
	dst = append(dst, endian.Marker(h.Engine))
	dst = h.Engine.AppendUint32(dst, h.TypeCode())
	if h.HasSRID {
		dst = h.Engine.AppendUint32(dst, h.SRID)
	}

	return dst
}

// ReadEWKBHeader reads an EWKB header from r.
//
// Read failures are returned unchanged. An invalid byte order marker yields
// errs.ErrInvalidByteOrder, an unrecognized type code errs.ErrUnknownKind.
func ReadEWKBHeader(r io.Reader) (EWKBHeader, error) {
	var buf [EWKBMaxSize]byte
	if _, err := io.ReadFull(r, buf[:EWKBMinSize]); err != nil {
		return EWKBHeader{}, err
	}

	engine, err := endian.FromMarker(buf[0])
	if err != nil {
		return EWKBHeader{}, err
	}

	code := engine.Uint32(buf[EWKBMarkerSize:EWKBMinSize])
	kind, err := format.KindFromEWKB(code &^ format.EWKBSRIDFlag)
	if err != nil {
		return EWKBHeader{}, fmt.Errorf("%w (raw type 0x%08x)", err, code)
	}

	h := EWKBHeader{Engine: engine, Kind: kind}
	if code&format.EWKBSRIDFlag == 0 {
		return h, nil
	}

	if _, err := io.ReadFull(r, buf[EWKBMinSize:EWKBMaxSize]); err != nil {
		return EWKBHeader{}, err
	}
	h.SRID = engine.Uint32(buf[EWKBMinSize:EWKBMaxSize])
	h.HasSRID = true

	return h, nil
}
