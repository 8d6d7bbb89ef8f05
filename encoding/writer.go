package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/endian"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/internal/pool"
)

// Appender is implemented by fixed framing sections such as section.EWKBHeader.
type Appender interface {
	Append(dst []byte) []byte
}

// Writer appends coordinate payloads in one byte order.
//
// A Writer is not safe for concurrent use. Call Release when done to return
// its buffer to the pool; Bytes must not be used afterwards.
type Writer struct {
	buf    *pool.ByteBuffer
	put    func(*pool.ByteBuffer)
	engine endian.EndianEngine
}

// NewWriter creates a writer for a single geometry, backed by a pooled buffer.
func NewWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetGeometryBuffer(),
		put:    pool.PutGeometryBuffer,
		engine: engine,
	}
}

// NewPayloadWriter creates a writer for the concatenated geometries of a
// feature blob, backed by the larger pooled feature buffer.
func NewPayloadWriter(engine endian.EndianEngine) *Writer {
	return &Writer{
		buf:    pool.GetFeatureBuffer(),
		put:    pool.PutFeatureBuffer,
		engine: engine,
	}
}

// Engine returns the byte order used by the writer.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Bytes returns the bytes written so far.
//
// The returned slice aliases the writer's buffer and is only valid until the
// next write or Release.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset discards all written bytes and switches to engine.
func (w *Writer) Reset(engine endian.EndianEngine) {
	w.buf.Reset()
	w.engine = engine
}

// Truncate discards all bytes after the first n. It is used to roll back a
// partially written geometry.
func (w *Writer) Truncate(n int) {
	w.buf.Truncate(n)
}

// Release returns the buffer to the pool.
func (w *Writer) Release() {
	if w.buf == nil {
		return
	}

	w.put(w.buf)
	w.buf = nil
}

// WriteTo writes the accumulated bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	return w.buf.WriteTo(dst)
}

// WriteSection appends a framing section.
func (w *Writer) WriteSection(s Appender) {
	w.buf.B = s.Append(w.buf.B)
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(c byte) error {
	return w.buf.WriteByte(c)
}

// WriteUint32 appends v in the writer's byte order.
func (w *Writer) WriteUint32(v uint32) {
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// WriteFloat64 appends the IEEE 754 bits of v in the writer's byte order.
func (w *Writer) WriteFloat64(v float64) {
	w.buf.B = w.engine.AppendUint64(w.buf.B, math.Float64bits(v))
}

// WriteCount appends an element count.
//
// Returns errs.ErrTooManyElements if n does not fit in 32 bits.
func (w *Writer) WriteCount(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("%w: %d elements", errs.ErrTooManyElements, n)
	}

	w.WriteUint32(uint32(n))

	return nil
}

// WriteTuple appends the scalars of v without a count prefix.
func WriteTuple[V coords.Dim](w *Writer, v V) {
	w.buf.Grow(8 * len(v))
	for i := 0; i < len(v); i++ {
		w.WriteFloat64(v[i])
	}
}

// WritePointSeq appends a count-prefixed point sequence.
func WritePointSeq[V coords.Dim](w *Writer, s coords.PointSeq[V]) error {
	if err := w.WriteCount(len(s)); err != nil {
		return err
	}

	w.buf.Grow(len(s) * 8 * coords.Arity[V]())
	for _, v := range s {
		WriteTuple(w, v)
	}

	return nil
}

// WriteRingSeq appends a count-prefixed ring sequence.
func WriteRingSeq[V coords.Dim](w *Writer, r coords.RingSeq[V]) error {
	if err := w.WriteCount(len(r)); err != nil {
		return err
	}

	for _, s := range r {
		if err := WritePointSeq(w, s); err != nil {
			return err
		}
	}

	return nil
}

// WriteRingSeqSet appends a count-prefixed ring sequence set.
func WriteRingSeqSet[V coords.Dim](w *Writer, t coords.RingSeqSet[V]) error {
	if err := w.WriteCount(len(t)); err != nil {
		return err
	}

	for _, r := range t {
		if err := WriteRingSeq(w, r); err != nil {
			return err
		}
	}

	return nil
}
