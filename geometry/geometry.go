// Package geometry provides the geometry value model shared by the EWKB and
// SpatiaLite codecs.
//
// A Geometry is a tagged union: it holds exactly one Shape (one of six shapes
// in a 2D or 3D variant) plus an optional spatial reference identifier (SRID).
// The Shape's Go type is the tag; Kind derives the registry kind from it.
//
//	g := geometry.New(geometry.NewPoint(coords.XY{10, 20})).WithSRID(geometry.DefaultSRID)
//	p, err := geometry.AsPoint(g)
//
// Geometries own their coordinates. Codecs never retain references to them.
package geometry

import (
	"fmt"

	"github.com/arloliu/geowire/bbox"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
)

// DefaultSRID is WGS 84, the SRID most geographic data is expressed in.
const DefaultSRID uint32 = 4326

// Geometry is one shape plus an optional SRID.
//
// The zero value holds no shape; codecs reject it with errs.ErrNilGeometry.
type Geometry struct {
	shape   Shape
	srid    uint32
	hasSRID bool
}

// New creates a geometry without an SRID.
func New(shape Shape) Geometry {
	return Geometry{shape: shape}
}

// NewWithSRID creates a geometry carrying srid.
func NewWithSRID(shape Shape, srid uint32) Geometry {
	return Geometry{shape: shape, srid: srid, hasSRID: true}
}

// Shape returns the held shape, or nil for the zero Geometry.
func (g Geometry) Shape() Shape {
	return g.shape
}

// Kind returns the kind of the held shape, or format.KindUnknown if there is none.
func (g Geometry) Kind() format.Kind {
	if g.shape == nil {
		return format.KindUnknown
	}

	return g.shape.Kind()
}

// IsEmpty reports whether g holds no shape.
func (g Geometry) IsEmpty() bool {
	return g.shape == nil
}

// SRID returns the spatial reference identifier and whether one is set.
func (g Geometry) SRID() (uint32, bool) {
	return g.srid, g.hasSRID
}

// SRIDOr returns the SRID, or def if none is set.
func (g Geometry) SRIDOr(def uint32) uint32 {
	if g.hasSRID {
		return g.srid
	}

	return def
}

// HasSRID reports whether an SRID is set.
func (g Geometry) HasSRID() bool {
	return g.hasSRID
}

// WithSRID returns a copy of g carrying srid.
func (g Geometry) WithSRID(srid uint32) Geometry {
	g.srid, g.hasSRID = srid, true
	return g
}

// SetSRID assigns srid in place.
func (g *Geometry) SetSRID(srid uint32) {
	g.srid, g.hasSRID = srid, true
}

// ClearSRID removes the SRID in place.
func (g *Geometry) ClearSRID() {
	g.srid, g.hasSRID = 0, false
}

// MBR returns the bounding rectangle of the held shape.
//
// Returns errs.ErrNilGeometry for the zero Geometry, and the coordinate errors
// documented on bbox.Calculator otherwise.
func (g Geometry) MBR() (bbox.MBR, error) {
	if g.shape == nil {
		return bbox.MBR{}, errs.ErrNilGeometry
	}

	return g.shape.MBR()
}

// Equal reports whether g and other hold equal shapes and the same SRID state.
func (g Geometry) Equal(other Geometry) bool {
	if g.hasSRID != other.hasSRID || g.srid != other.srid {
		return false
	}

	return shapesEqual(g.shape, other.shape)
}

// String implements fmt.Stringer.
func (g Geometry) String() string {
	if g.hasSRID {
		return fmt.Sprintf("%s(SRID=%d)", g.Kind(), g.srid)
	}

	return g.Kind().String()
}

func shapesEqual(a, b Shape) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case Point2D:
		return x == b.(Point2D)
	case PointZ:
		return x == b.(PointZ)
	case LineString2D:
		return x.Points.Equal(b.(LineString2D).Points)
	case LineStringZ:
		return x.Points.Equal(b.(LineStringZ).Points)
	case Polygon2D:
		return x.Rings.Equal(b.(Polygon2D).Rings)
	case PolygonZ:
		return x.Rings.Equal(b.(PolygonZ).Rings)
	case MultiPoint2D:
		return x.Points.Equal(b.(MultiPoint2D).Points)
	case MultiPointZ:
		return x.Points.Equal(b.(MultiPointZ).Points)
	case MultiLineString2D:
		return x.Lines.Equal(b.(MultiLineString2D).Lines)
	case MultiLineStringZ:
		return x.Lines.Equal(b.(MultiLineStringZ).Lines)
	case MultiPolygon2D:
		return x.Polygons.Equal(b.(MultiPolygon2D).Polygons)
	case MultiPolygonZ:
		return x.Polygons.Equal(b.(MultiPolygonZ).Polygons)
	default:
		return false
	}
}
