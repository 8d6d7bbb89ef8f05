// Package ewkb encodes and decodes geometries in the PostGIS Extended
// Well-Known Binary format.
//
// Layout:
//
//	[1]  byte order marker (0 big, 1 little)
//	[4]  type code | 0x80000000 (3D) | 0x20000000 (SRID present)
//	[4]  SRID, only when the SRID flag is set
//	[..] coordinate payload
//
// The SRID flag mirrors whether the geometry carries an SRID, so a geometry
// without one encodes to plain ISO WKB for 2D shapes.
//
// Usage:
//
//	data, err := ewkb.Marshal(g, ewkb.WithLittleEndian())
//	g, err := ewkb.Unmarshal(data)
//
// All functions are safe for concurrent use.
package ewkb

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/geowire/encoding"
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/section"
)

// Encode writes g to w in the host byte order.
func Encode(w io.Writer, g geometry.Geometry) error {
	return EncodeWithEngine(w, g, endian.GetNativeEngine())
}

// EncodeWithEngine writes g to w in the byte order of engine.
func EncodeWithEngine(w io.Writer, g geometry.Geometry, engine endian.EndianEngine) error {
	enc := encoding.NewWriter(engine)
	defer enc.Release()

	if err := WriteGeometry(enc, g); err != nil {
		return err
	}

	_, err := enc.WriteTo(w)

	return err
}

// Marshal returns the EWKB encoding of g.
//
// Byte order defaults to the host's; see WithLittleEndian and WithBigEndian.
func Marshal(g geometry.Geometry, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewWriter(cfg.engine)
	defer enc.Release()

	if err := WriteGeometry(enc, g); err != nil {
		return nil, err
	}

	return bytes.Clone(enc.Bytes()), nil
}

// WriteGeometry appends the EWKB encoding of g to enc in enc's byte order.
func WriteGeometry(enc *encoding.Writer, g geometry.Geometry) error {
	if g.IsEmpty() {
		return errs.ErrNilGeometry
	}

	srid, hasSRID := g.SRID()
	enc.WriteSection(section.EWKBHeader{
		Engine:  enc.Engine(),
		Kind:    g.Kind(),
		SRID:    srid,
		HasSRID: hasSRID,
	})

	return enc.WriteShape(g.Shape())
}

// Decode reads one EWKB geometry from r.
//
// It reads exactly the bytes of one geometry. Read failures are returned
// unchanged; malformed input yields an error wrapping errs.ErrMalformed, and
// geometry collections yield errs.ErrUnsupportedKind.
func Decode(r io.Reader) (geometry.Geometry, error) {
	h, err := section.ReadEWKBHeader(r)
	if err != nil {
		return geometry.Geometry{}, err
	}

	shape, err := encoding.NewReader(r, h.Engine).ReadShape(h.Kind)
	if err != nil {
		return geometry.Geometry{}, err
	}

	if h.HasSRID {
		return geometry.NewWithSRID(shape, h.SRID), nil
	}

	return geometry.New(shape), nil
}

// Unmarshal decodes data, which must hold exactly one EWKB geometry.
//
// Returns errs.ErrTrailingData if bytes remain after the geometry.
func Unmarshal(data []byte) (geometry.Geometry, error) {
	r := bytes.NewReader(data)

	g, err := Decode(r)
	if err != nil {
		return geometry.Geometry{}, err
	}

	if r.Len() != 0 {
		return geometry.Geometry{}, fmt.Errorf("%w: %d bytes", errs.ErrTrailingData, r.Len())
	}

	return g, nil
}

// Codec adapts the package functions to a value, for use where a wire format
// is chosen by type (see package dbtype). The zero value encodes in the host
// byte order.
type Codec struct {
	opts []Option
}

// NewCodec creates a codec that encodes with opts.
func NewCodec(opts ...Option) Codec {
	return Codec{opts: opts}
}

// Format returns format.WireEWKB.
func (Codec) Format() format.WireFormat {
	return format.WireEWKB
}

// Marshal returns the EWKB encoding of g.
func (c Codec) Marshal(g geometry.Geometry) ([]byte, error) {
	return Marshal(g, c.opts...)
}

// Unmarshal decodes one EWKB geometry.
func (Codec) Unmarshal(data []byte) (geometry.Geometry, error) {
	return Unmarshal(data)
}
