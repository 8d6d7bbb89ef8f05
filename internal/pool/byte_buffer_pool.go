package pool

import (
	"io"
	"sync"
)

// Default sizes of pooled buffers.
const (
	GeometryBufferDefaultSize  = 512             // one encoded geometry
	GeometryBufferMaxThreshold = 1024 * 64       // 64KiB
	FeatureBufferDefaultSize   = 1024 * 16       // 16KiB
	FeatureBufferMaxThreshold  = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer accumulates encoded geometry bytes. B may be appended to
// directly; the methods below cover the io.Writer side and rollback.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer returns an empty buffer with capacity defaultSize.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of written bytes.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the capacity of the backing array.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer and keeps the backing array.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Truncate keeps the first n bytes. Values of n outside [0, Len) leave the
// buffer unchanged.
func (bb *ByteBuffer) Truncate(n int) {
	if n >= 0 && n < len(bb.B) {
		bb.B = bb.B[:n]
	}
}

// Grow makes room for n more bytes without a further reallocation.
//
// Buffers up to four geometry sizes grow by GeometryBufferDefaultSize, larger
// ones by a quarter of their capacity, and never by less than n.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	step := GeometryBufferDefaultSize
	if cap(bb.B) > 4*GeometryBufferDefaultSize {
		step = cap(bb.B) / 4
	}
	step = max(step, n)

	grown := make([]byte, len(bb.B), len(bb.B)+step)
	copy(grown, bb.B)
	bb.B = grown
}

// Write implements io.Writer. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// WriteTo implements io.WriterTo.
func (bb *ByteBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(bb.B)
	return int64(n), err
}

// ByteBufferPool recycles ByteBuffers of one size class. A buffer that grew
// past maxThreshold is dropped on Put; a maxThreshold of 0 keeps every buffer.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have capacity defaultSize.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and hands it back to the pool. A nil bb is ignored.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	geometryDefaultPool = NewByteBufferPool(GeometryBufferDefaultSize, GeometryBufferMaxThreshold)
	featureDefaultPool  = NewByteBufferPool(FeatureBufferDefaultSize, FeatureBufferMaxThreshold)
)

// GetGeometryBuffer retrieves a ByteBuffer sized for a single encoded geometry.
func GetGeometryBuffer() *ByteBuffer {
	return geometryDefaultPool.Get()
}

// PutGeometryBuffer returns a ByteBuffer to the geometry pool.
func PutGeometryBuffer(bb *ByteBuffer) {
	geometryDefaultPool.Put(bb)
}

// GetFeatureBuffer retrieves a ByteBuffer sized for a feature blob payload.
func GetFeatureBuffer() *ByteBuffer {
	return featureDefaultPool.Get()
}

// PutFeatureBuffer returns a ByteBuffer to the feature pool.
func PutFeatureBuffer(bb *ByteBuffer) {
	featureDefaultPool.Put(bb)
}
