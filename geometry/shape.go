package geometry

import (
	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/format"
)

// Shape is implemented by the twelve concrete geometry values: six shapes,
// each instantiated over coords.XY and coords.XYZ.
//
// The interface is closed; types outside this package cannot implement it.
type Shape interface {
	// Kind returns the registry kind of the shape, derived from its Go type.
	Kind() format.Kind
	// MBR returns the bounding rectangle of all coordinates in the shape.
	MBR() (bbox.MBR, error)

	isShape()
}

// Point is a single coordinate tuple.
type Point[V coords.Dim] struct {
	Coords V
}

// LineString is an ordered path of coordinate tuples.
type LineString[V coords.Dim] struct {
	Points coords.PointSeq[V]
}

// Polygon is an ordered set of closed rings; the first ring is the exterior.
type Polygon[V coords.Dim] struct {
	Rings coords.RingSeq[V]
}

// MultiPoint is an unordered collection of points stored as one point sequence.
type MultiPoint[V coords.Dim] struct {
	Points coords.PointSeq[V]
}

// MultiLineString is a collection of line strings stored as one ring sequence.
type MultiLineString[V coords.Dim] struct {
	Lines coords.RingSeq[V]
}

// MultiPolygon is a collection of polygons stored as one ring sequence set.
type MultiPolygon[V coords.Dim] struct {
	Polygons coords.RingSeqSet[V]
}

// 2D and 3D instantiations.
type (
	Point2D           = Point[coords.XY]
	LineString2D      = LineString[coords.XY]
	Polygon2D         = Polygon[coords.XY]
	MultiPoint2D      = MultiPoint[coords.XY]
	MultiLineString2D = MultiLineString[coords.XY]
	MultiPolygon2D    = MultiPolygon[coords.XY]

	PointZ           = Point[coords.XYZ]
	LineStringZ      = LineString[coords.XYZ]
	PolygonZ         = Polygon[coords.XYZ]
	MultiPointZ      = MultiPoint[coords.XYZ]
	MultiLineStringZ = MultiLineString[coords.XYZ]
	MultiPolygonZ    = MultiPolygon[coords.XYZ]
)

// NewPoint creates a point shape.
func NewPoint[V coords.Dim](v V) Point[V] {
	return Point[V]{Coords: v}
}

// NewLineString creates a line string shape over points.
func NewLineString[V coords.Dim](points coords.PointSeq[V]) LineString[V] {
	return LineString[V]{Points: points}
}

// NewPolygon creates a polygon shape, closing every ring that is not closed yet.
// The input rings are not modified.
func NewPolygon[V coords.Dim](rings coords.RingSeq[V]) Polygon[V] {
	return Polygon[V]{Rings: rings.Closed()}
}

// NewMultiPoint creates a multi-point shape.
func NewMultiPoint[V coords.Dim](points coords.PointSeq[V]) MultiPoint[V] {
	return MultiPoint[V]{Points: points}
}

// NewMultiLineString creates a multi-line-string shape.
func NewMultiLineString[V coords.Dim](lines coords.RingSeq[V]) MultiLineString[V] {
	return MultiLineString[V]{Lines: lines}
}

// NewMultiPolygon creates a multi-polygon shape, closing every ring of every polygon.
func NewMultiPolygon[V coords.Dim](polygons coords.RingSeqSet[V]) MultiPolygon[V] {
	return MultiPolygon[V]{Polygons: polygons.Closed()}
}

func kindOf[V coords.Dim](base format.Kind) format.Kind {
	return base.WithZ(coords.Arity[V]() == 3)
}

func (Point[V]) Kind() format.Kind           { return kindOf[V](format.Point) }
func (LineString[V]) Kind() format.Kind      { return kindOf[V](format.LineString) }
func (Polygon[V]) Kind() format.Kind         { return kindOf[V](format.Polygon) }
func (MultiPoint[V]) Kind() format.Kind      { return kindOf[V](format.MultiPoint) }
func (MultiLineString[V]) Kind() format.Kind { return kindOf[V](format.MultiLineString) }
func (MultiPolygon[V]) Kind() format.Kind    { return kindOf[V](format.MultiPolygon) }

func (p Point[V]) MBR() (bbox.MBR, error)           { return coords.TupleMBR(p.Coords) }
func (l LineString[V]) MBR() (bbox.MBR, error)      { return l.Points.MBR() }
func (p Polygon[V]) MBR() (bbox.MBR, error)         { return p.Rings.MBR() }
func (m MultiPoint[V]) MBR() (bbox.MBR, error)      { return m.Points.MBR() }
func (m MultiLineString[V]) MBR() (bbox.MBR, error) { return m.Lines.MBR() }
func (m MultiPolygon[V]) MBR() (bbox.MBR, error)    { return m.Polygons.MBR() }

func (Point[V]) isShape()           {}
func (LineString[V]) isShape()      {}
func (Polygon[V]) isShape()         {}
func (MultiPoint[V]) isShape()      {}
func (MultiLineString[V]) isShape() {}
func (MultiPolygon[V]) isShape()    {}

// X returns the first scalar of the point.
func (p Point[V]) X() float64 { return coords.X(p.Coords) }

// Y returns the second scalar of the point.
func (p Point[V]) Y() float64 { return coords.Y(p.Coords) }

// Z returns the third scalar of the point, or 0 for 2D points.
func (p Point[V]) Z() float64 { return coords.Z(p.Coords) }

// Exterior returns the first ring, or nil for an empty polygon.
func (p Polygon[V]) Exterior() coords.PointSeq[V] {
	if len(p.Rings) == 0 {
		return nil
	}

	return p.Rings[0]
}

// Interiors returns every ring after the exterior.
func (p Polygon[V]) Interiors() coords.RingSeq[V] {
	if len(p.Rings) < 2 {
		return nil
	}

	return p.Rings[1:]
}
