// Package encoding implements the coordinate payload shared by the EWKB and
// SpatiaLite codecs.
//
// The payload is recursive and parameterized only by tuple arity and byte order:
//
//	tuple         N × float64, no prefix (N = 2 or 3)
//	point seq     uint32 count, then count tuples
//	ring seq      uint32 count, then count point seqs
//	ring seq set  uint32 count, then count ring seqs
//
// Each shape maps onto exactly one payload level:
//
//	Point                        tuple
//	LineString, MultiPoint       point seq
//	Polygon, MultiLineString     ring seq
//	MultiPolygon                 ring seq set
//
// # Writing
//
// Writer appends into a pooled buffer. Header framing is appended through
// WriteSection so a whole value is built in one buffer:
//
//	w := encoding.NewWriter(endian.GetLittleEndianEngine())
//	defer w.Release()
//	w.WriteSection(header)
//	if err := w.WriteShape(g.Shape()); err != nil {
//	    return err
//	}
//	out := bytes.Clone(w.Bytes())
//
// # Reading
//
// Reader consumes exactly the bytes of one payload from an io.Reader:
//
//	r := encoding.NewReader(src, engine)
//	shape, err := r.ReadShape(kind)
//
// Read failures of the source are returned unchanged, so a truncated payload
// yields io.EOF or io.ErrUnexpectedEOF. Element counts are untrusted: slice
// pre-allocation is capped and grows only as elements are actually read.
package encoding
