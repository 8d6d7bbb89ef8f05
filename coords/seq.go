package coords

import (
	"iter"
	"math"
	"slices"

	"github.com/arloliu/geowire/bbox"
)

// PointSeq is an ordered sequence of coordinate tuples of one arity.
type PointSeq[V Dim] []V

// RingSeq is an ordered sequence of point sequences.
type RingSeq[V Dim] []PointSeq[V]

// RingSeqSet is an ordered sequence of ring sequences.
type RingSeqSet[V Dim] []RingSeq[V]

// Len returns the number of tuples.
func (s PointSeq[V]) Len() int { return len(s) }

// All returns an iterator over index and tuple pairs.
func (s PointSeq[V]) All() iter.Seq2[int, V] { return slices.All(s) }

// Equal reports whether s and other hold the same tuples in the same order.
// NaN scalars never compare equal.
func (s PointSeq[V]) Equal(other PointSeq[V]) bool { return slices.Equal(s, other) }

// Clone returns a copy of s that shares no memory with it.
func (s PointSeq[V]) Clone() PointSeq[V] { return slices.Clone(s) }

// IsClosed reports whether the first and last tuples are the same coordinate.
// Scalars match when they are equal or have identical bits, so a NaN endpoint
// matches itself. An empty sequence is not closed.
func (s PointSeq[V]) IsClosed() bool {
	return len(s) > 0 && sameTuple(s[0], s[len(s)-1])
}

func sameTuple[V Dim](a, b V) bool {
	for i := range len(a) {
		if a[i] != b[i] && math.Float64bits(a[i]) != math.Float64bits(b[i]) {
			return false
		}
	}

	return true
}

// Closed returns s as a ring: if the first and last tuples differ, a copy of
// the first tuple is appended. Closing an already closed or empty sequence
// returns it unchanged, so the operation is idempotent.
//
// The returned slice never aliases spare capacity of s.
func (s PointSeq[V]) Closed() PointSeq[V] {
	if len(s) == 0 || s.IsClosed() {
		return s
	}

	return append(slices.Clip(s), s[0])
}

// Extend adds every tuple of s to calc.
func (s PointSeq[V]) Extend(calc *bbox.Calculator) {
	for _, v := range s {
		calc.AddPoint(v[0], v[1])
	}
}

// MBR returns the bounding rectangle of all tuples.
func (s PointSeq[V]) MBR() (bbox.MBR, error) { return mbrOf(s.Extend) }

// MinX returns the smallest first scalar.
func (s PointSeq[V]) MinX() (float64, error) {
	m, err := s.MBR()

	return m.MinX, err
}

// MinY returns the smallest second scalar.
func (s PointSeq[V]) MinY() (float64, error) {
	m, err := s.MBR()

	return m.MinY, err
}

// MaxX returns the largest first scalar.
func (s PointSeq[V]) MaxX() (float64, error) {
	m, err := s.MBR()

	return m.MaxX, err
}

// MaxY returns the largest second scalar.
func (s PointSeq[V]) MaxY() (float64, error) {
	m, err := s.MBR()

	return m.MaxY, err
}

// Len returns the number of point sequences.
func (r RingSeq[V]) Len() int { return len(r) }

// All returns an iterator over index and point sequence pairs.
func (r RingSeq[V]) All() iter.Seq2[int, PointSeq[V]] { return slices.All(r) }

// NumPoints returns the total number of tuples across all sequences.
func (r RingSeq[V]) NumPoints() int {
	n := 0
	for _, s := range r {
		n += len(s)
	}

	return n
}

// Equal reports whether r and other hold equal point sequences in the same order.
func (r RingSeq[V]) Equal(other RingSeq[V]) bool {
	return slices.EqualFunc(r, other, func(a, b PointSeq[V]) bool { return a.Equal(b) })
}

// Clone returns a deep copy of r.
func (r RingSeq[V]) Clone() RingSeq[V] {
	if r == nil {
		return nil
	}

	out := make(RingSeq[V], len(r))
	for i, s := range r {
		out[i] = s.Clone()
	}

	return out
}

// Closed returns a ring sequence in which every point sequence is closed.
func (r RingSeq[V]) Closed() RingSeq[V] {
	if r == nil {
		return nil
	}

	out := make(RingSeq[V], len(r))
	for i, s := range r {
		out[i] = s.Closed()
	}

	return out
}

// Extend adds every tuple of r to calc.
func (r RingSeq[V]) Extend(calc *bbox.Calculator) {
	for _, s := range r {
		s.Extend(calc)
	}
}

// MBR returns the bounding rectangle of all tuples.
func (r RingSeq[V]) MBR() (bbox.MBR, error) { return mbrOf(r.Extend) }

// MinX returns the smallest first scalar.
func (r RingSeq[V]) MinX() (float64, error) {
	m, err := r.MBR()

	return m.MinX, err
}

// MinY returns the smallest second scalar.
func (r RingSeq[V]) MinY() (float64, error) {
	m, err := r.MBR()

	return m.MinY, err
}

// MaxX returns the largest first scalar.
func (r RingSeq[V]) MaxX() (float64, error) {
	m, err := r.MBR()

	return m.MaxX, err
}

// MaxY returns the largest second scalar.
func (r RingSeq[V]) MaxY() (float64, error) {
	m, err := r.MBR()

	return m.MaxY, err
}

// Len returns the number of ring sequences.
func (t RingSeqSet[V]) Len() int { return len(t) }

// All returns an iterator over index and ring sequence pairs.
func (t RingSeqSet[V]) All() iter.Seq2[int, RingSeq[V]] { return slices.All(t) }

// NumPoints returns the total number of tuples across all ring sequences.
func (t RingSeqSet[V]) NumPoints() int {
	n := 0
	for _, r := range t {
		n += r.NumPoints()
	}

	return n
}

// Equal reports whether t and other hold equal ring sequences in the same order.
func (t RingSeqSet[V]) Equal(other RingSeqSet[V]) bool {
	return slices.EqualFunc(t, other, func(a, b RingSeq[V]) bool { return a.Equal(b) })
}

// Clone returns a deep copy of t.
func (t RingSeqSet[V]) Clone() RingSeqSet[V] {
	if t == nil {
		return nil
	}

	out := make(RingSeqSet[V], len(t))
	for i, r := range t {
		out[i] = r.Clone()
	}

	return out
}

// Closed returns a set in which every ring of every ring sequence is closed.
func (t RingSeqSet[V]) Closed() RingSeqSet[V] {
	if t == nil {
		return nil
	}

	out := make(RingSeqSet[V], len(t))
	for i, r := range t {
		out[i] = r.Closed()
	}

	return out
}

// Extend adds every tuple of t to calc.
func (t RingSeqSet[V]) Extend(calc *bbox.Calculator) {
	for _, r := range t {
		r.Extend(calc)
	}
}

// MBR returns the bounding rectangle of all tuples.
func (t RingSeqSet[V]) MBR() (bbox.MBR, error) { return mbrOf(t.Extend) }

// MinX returns the smallest first scalar.
func (t RingSeqSet[V]) MinX() (float64, error) {
	m, err := t.MBR()

	return m.MinX, err
}

// MinY returns the smallest second scalar.
func (t RingSeqSet[V]) MinY() (float64, error) {
	m, err := t.MBR()

	return m.MinY, err
}

// MaxX returns the largest first scalar.
func (t RingSeqSet[V]) MaxX() (float64, error) {
	m, err := t.MBR()

	return m.MaxX, err
}

// MaxY returns the largest second scalar.
func (t RingSeqSet[V]) MaxY() (float64, error) {
	m, err := t.MBR()

	return m.MaxY, err
}
