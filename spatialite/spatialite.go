// Package spatialite encodes and decodes geometries in the SpatiaLite BLOB format.
//
// Layout:
//
//	[1]  0x00 start
//	[1]  byte order marker (0 big, 1 little)
//	[4]  SRID
//	[32] MBR: min-x, min-y, max-x, max-y
//	[1]  0x7C MBR terminator
//	[4]  class code (1-7 for 2D, 1001-1007 for 3D)
//	[..] coordinate payload
//	[1]  0xFE end
//
// The SRID field is mandatory: geometries without an SRID are written with the
// configured default (4326 unless WithDefaultSRID says otherwise), so decoded
// geometries always carry one. The MBR is recomputed on every encode and ignored
// on decode.
//
// All functions are safe for concurrent use.
package spatialite

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

	if err := WriteGeometry(enc, g, geometry.DefaultSRID); err != nil {
		return err
	}

	_, err := enc.WriteTo(w)

	return err
}

// Marshal returns the SpatiaLite BLOB encoding of g.
func Marshal(g geometry.Geometry, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	enc := encoding.NewWriter(cfg.engine)
	defer enc.Release()

	if err := WriteGeometry(enc, g, cfg.defaultSRID); err != nil {
		return nil, err
	}

	return bytes.Clone(enc.Bytes()), nil
}

// WriteGeometry appends the SpatiaLite encoding of g to enc in enc's byte order.
// defaultSRID is written when g carries no SRID.
//
// The MBR is computed first, so an empty or NaN geometry fails before anything
// is appended.
func WriteGeometry(enc *encoding.Writer, g geometry.Geometry, defaultSRID uint32) error {
	mbr, err := g.MBR()
	if err != nil {
		return err
	}

	enc.WriteSection(section.SpatiaLiteHeader{
		Engine: enc.Engine(),
		SRID:   g.SRIDOr(defaultSRID),
		MBR:    mbr,
		Kind:   g.Kind(),
	})

	if err := enc.WriteShape(g.Shape()); err != nil {
		return err
	}

	return enc.WriteByte(section.SpatiaLiteEnd)
}

// Decode reads one SpatiaLite geometry from r.
//
// It reads exactly the bytes of one BLOB. Read failures are returned unchanged;
// any sentinel mismatch or unknown class code yields an error wrapping
// errs.ErrMalformed, and geometry collections yield errs.ErrUnsupportedKind.
func Decode(r io.Reader) (geometry.Geometry, error) {
	h, err := section.ReadSpatiaLiteHeader(r)
	if err != nil {
		return geometry.Geometry{}, err
	}

	payload := encoding.NewReader(r, h.Engine)

	shape, err := payload.ReadShape(h.Kind)
	if err != nil {
		return geometry.Geometry{}, err
	}

	end, err := payload.ReadByte()
	if err != nil {
		return geometry.Geometry{}, err
	}

	if err := section.CheckSpatiaLiteTrailer(end); err != nil {
		return geometry.Geometry{}, err
	}

	return geometry.NewWithSRID(shape, h.SRID), nil
}

// Unmarshal decodes data, which must hold exactly one SpatiaLite BLOB.
//
// Returns errs.ErrTrailingData if bytes remain after the end marker.
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
// byte order with the default SRID 4326.
type Codec struct {
	opts []Option
}

// NewCodec creates a codec that encodes with opts.
func NewCodec(opts ...Option) Codec {
	return Codec{opts: opts}
}

// Format returns format.WireSpatiaLite.
func (Codec) Format() format.WireFormat {
	return format.WireSpatiaLite
}

// Marshal returns the SpatiaLite encoding of g.
func (c Codec) Marshal(g geometry.Geometry) ([]byte, error) {
	return Marshal(g, c.opts...)
}

// Unmarshal decodes one SpatiaLite BLOB.
func (Codec) Unmarshal(data []byte) (geometry.Geometry, error) {
	return Unmarshal(data)
}
