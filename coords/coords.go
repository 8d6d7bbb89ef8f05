// Package coords defines the coordinate hierarchy shared by every geometry shape.
//
// The hierarchy has four levels, each parameterized by the coordinate tuple type
// V (XY for 2D, XYZ for 3D):
//
//	V              one coordinate tuple        Point
//	PointSeq[V]    ordered tuples              LineString, MultiPoint
//	RingSeq[V]     ordered point sequences     Polygon (rings), MultiLineString
//	RingSeqSet[V]  ordered ring sequences      MultiPolygon
//
// Every level can report its minimum bounding rectangle and the min/max of the
// first and second scalar across all contained tuples. These queries never
// panic: an empty hierarchy yields errs.ErrEmptyCoordinates and a NaN scalar
// yields errs.ErrNaNCoordinate.
//
// All types are plain slices and arrays: literals construct them directly.
//
//	ring := coords.PointSeq[coords.XY]{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
//	poly := coords.RingSeq[coords.XY]{ring.Closed()}
package coords

import "github.com/arloliu/geowire/bbox"

// Dim constrains coordinate tuples to the two supported arities.
type Dim interface {
	[2]float64 | [3]float64
}

type (
	// XY is a 2D coordinate tuple.
	XY = [2]float64
	// XYZ is a 3D coordinate tuple.
	XYZ = [3]float64
)

// X returns the first scalar of v.
func X[V Dim](v V) float64 {
	return v[0]
}

// Y returns the second scalar of v.
func Y[V Dim](v V) float64 {
	return v[1]
}

// Z returns the third scalar of v, or 0 for 2D tuples.
func Z[V Dim](v V) float64 {
	if n := len(v); n > 2 {
		return v[n-1]
	}

	return 0
}

// Arity returns the number of scalars in a tuple of type V.
func Arity[V Dim]() int {
	var v V
	return len(v)
}

// TupleMBR returns the degenerate MBR of a single tuple.
func TupleMBR[V Dim](v V) (bbox.MBR, error) {
	var calc bbox.Calculator
	calc.AddPoint(v[0], v[1])

	return calc.Bounds()
}

func mbrOf(extend func(*bbox.Calculator)) (bbox.MBR, error) {
	var calc bbox.Calculator
	extend(&calc)

	return calc.Bounds()
}
