package encoding

import (
	"io"
	"math"

	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/endian"
)

// maxPrealloc caps slice pre-allocation driven by an untrusted element count.
const maxPrealloc = 1024

// Reader decodes coordinate payloads in one byte order from an io.Reader.
//
// A Reader never reads past the end of the payload it decodes, so framing
// bytes that follow (such as the SpatiaLite end marker) stay in the source.
type Reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

// NewReader creates a payload reader over r.
func NewReader(r io.Reader, engine endian.EndianEngine) *Reader {
	return &Reader{r: r, engine: engine}
}

// Engine returns the byte order used by the reader.
func (r *Reader) Engine() endian.EndianEngine {
	return r.engine
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:1]); err != nil {
		return 0, err
	}

	return r.scratch[0], nil
}

// ReadUint32 reads a 4-byte unsigned integer.
func (r *Reader) ReadUint32() (uint32, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:4]); err != nil {
		return 0, err
	}

	return r.engine.Uint32(r.scratch[:4]), nil
}

// ReadFloat64 reads an 8-byte IEEE 754 float.
func (r *Reader) ReadFloat64() (float64, error) {
	if _, err := io.ReadFull(r.r, r.scratch[:8]); err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(r.scratch[:8])), nil
}

// ReadTuple reads one coordinate tuple of V's arity.
func ReadTuple[V coords.Dim](r *Reader) (V, error) {
	var v V
	for i := 0; i < len(v); i++ {
		f, err := r.ReadFloat64()
		if err != nil {
			return v, err
		}
		v[i] = f
	}

	return v, nil
}

// ReadPointSeq reads a count-prefixed point sequence.
func ReadPointSeq[V coords.Dim](r *Reader) (coords.PointSeq[V], error) {
	return readSeq[coords.PointSeq[V]](r, ReadTuple[V])
}

// ReadRingSeq reads a count-prefixed ring sequence.
func ReadRingSeq[V coords.Dim](r *Reader) (coords.RingSeq[V], error) {
	return readSeq[coords.RingSeq[V]](r, ReadPointSeq[V])
}

// ReadRingSeqSet reads a count-prefixed ring sequence set.
func ReadRingSeqSet[V coords.Dim](r *Reader) (coords.RingSeqSet[V], error) {
	return readSeq[coords.RingSeqSet[V]](r, ReadRingSeq[V])
}

// preallocLen caps count before converting it, so counts of 2^31 and above
// stay non-negative where int is 32 bits wide.
func preallocLen(count uint32) int {
	return int(min(count, maxPrealloc))
}

func readSeq[S ~[]E, E any](r *Reader, readElem func(*Reader) (E, error)) (S, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	out := make(S, 0, preallocLen(count))
	for range count {
		elem, err := readElem(r)
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}

	return out, nil
}
