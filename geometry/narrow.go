package geometry

import (
	"fmt"

	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
)

// KindMismatchError is returned when a geometry is narrowed to a shape it does
// not hold.
type KindMismatchError struct {
	Expected format.Kind
	Got      format.Kind
}

// Error implements the error interface.
func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("kind mismatch: expected=%s, got=%s", e.Expected, e.Got)
}

// Is makes errors.Is(err, errs.ErrKindMismatch) match.
func (e *KindMismatchError) Is(target error) bool {
	return target == errs.ErrKindMismatch
}

// As narrows g to the concrete shape S.
//
// Returns *KindMismatchError if g holds a different shape or no shape at all.
//
//	line, err := geometry.As[geometry.LineString2D](g)
func As[S Shape](g Geometry) (S, error) {
	if s, ok := g.shape.(S); ok {
		return s, nil
	}

	var zero S

	expected := format.KindUnknown
	if any(zero) != nil {
		expected = zero.Kind()
	}

	return zero, &KindMismatchError{Expected: expected, Got: g.Kind()}
}

// AsPoint narrows g to a 2D point.
func AsPoint(g Geometry) (Point2D, error) { return As[Point2D](g) }

// AsPointZ narrows g to a 3D point.
func AsPointZ(g Geometry) (PointZ, error) { return As[PointZ](g) }

// AsLineString narrows g to a 2D line string.
func AsLineString(g Geometry) (LineString2D, error) { return As[LineString2D](g) }

// AsLineStringZ narrows g to a 3D line string.
func AsLineStringZ(g Geometry) (LineStringZ, error) { return As[LineStringZ](g) }

// AsPolygon narrows g to a 2D polygon.
func AsPolygon(g Geometry) (Polygon2D, error) { return As[Polygon2D](g) }

// AsPolygonZ narrows g to a 3D polygon.
func AsPolygonZ(g Geometry) (PolygonZ, error) { return As[PolygonZ](g) }

// AsMultiPoint narrows g to a 2D multi-point.
func AsMultiPoint(g Geometry) (MultiPoint2D, error) { return As[MultiPoint2D](g) }

// AsMultiPointZ narrows g to a 3D multi-point.
func AsMultiPointZ(g Geometry) (MultiPointZ, error) { return As[MultiPointZ](g) }

// AsMultiLineString narrows g to a 2D multi-line-string.
func AsMultiLineString(g Geometry) (MultiLineString2D, error) { return As[MultiLineString2D](g) }

// AsMultiLineStringZ narrows g to a 3D multi-line-string.
func AsMultiLineStringZ(g Geometry) (MultiLineStringZ, error) { return As[MultiLineStringZ](g) }

// AsMultiPolygon narrows g to a 2D multi-polygon.
func AsMultiPolygon(g Geometry) (MultiPolygon2D, error) { return As[MultiPolygon2D](g) }

// AsMultiPolygonZ narrows g to a 3D multi-polygon.
func AsMultiPolygonZ(g Geometry) (MultiPolygonZ, error) { return As[MultiPolygonZ](g) }
