package encoding

import (
	"fmt"

	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
)

// WriteShape appends the coordinate payload of shape.
//
// Returns errs.ErrNilGeometry for a nil shape.
func (w *Writer) WriteShape(shape geometry.Shape) error {
	switch s := shape.(type) {
	case nil:
		return errs.ErrNilGeometry
	case geometry.Point2D:
		WriteTuple(w, s.Coords)
	case geometry.PointZ:
		WriteTuple(w, s.Coords)
	case geometry.LineString2D:
		return WritePointSeq(w, s.Points)
	case geometry.LineStringZ:
		return WritePointSeq(w, s.Points)
	case geometry.Polygon2D:
		return WriteRingSeq(w, s.Rings)
	case geometry.PolygonZ:
		return WriteRingSeq(w, s.Rings)
	case geometry.MultiPoint2D:
		return WritePointSeq(w, s.Points)
	case geometry.MultiPointZ:
		return WritePointSeq(w, s.Points)
	case geometry.MultiLineString2D:
		return WriteRingSeq(w, s.Lines)
	case geometry.MultiLineStringZ:
		return WriteRingSeq(w, s.Lines)
	case geometry.MultiPolygon2D:
		return WriteRingSeqSet(w, s.Polygons)
	case geometry.MultiPolygonZ:
		return WriteRingSeqSet(w, s.Polygons)
	default:
		return fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, shape.Kind())
	}

	return nil
}

// ReadShape reads the coordinate payload of a shape of the given kind.
//
// Polygon rings are closed on the way in, so a decoded polygon satisfies the
// same invariant as one built with geometry.NewPolygon.
//
// Returns errs.ErrUnsupportedKind for geometry collections and
// errs.ErrUnknownKind for kinds outside the registry.
func (r *Reader) ReadShape(kind format.Kind) (geometry.Shape, error) {
	switch kind {
	case format.Point:
		return readPoint[coords.XY](r)
	case format.PointZ:
		return readPoint[coords.XYZ](r)
	case format.LineString:
		return readLineString[coords.XY](r)
	case format.LineStringZ:
		return readLineString[coords.XYZ](r)
	case format.Polygon:
		return readPolygon[coords.XY](r)
	case format.PolygonZ:
		return readPolygon[coords.XYZ](r)
	case format.MultiPoint:
		return readMultiPoint[coords.XY](r)
	case format.MultiPointZ:
		return readMultiPoint[coords.XYZ](r)
	case format.MultiLineString:
		return readMultiLineString[coords.XY](r)
	case format.MultiLineStringZ:
		return readMultiLineString[coords.XYZ](r)
	case format.MultiPolygon:
		return readMultiPolygon[coords.XY](r)
	case format.MultiPolygonZ:
		return readMultiPolygon[coords.XYZ](r)
	case format.GeometryCollection, format.GeometryCollectionZ:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedKind, kind)
	default:
		return nil, fmt.Errorf("%w: kind %d", errs.ErrUnknownKind, uint8(kind))
	}
}

func readPoint[V coords.Dim](r *Reader) (geometry.Shape, error) {
	v, err := ReadTuple[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewPoint(v), nil
}

func readLineString[V coords.Dim](r *Reader) (geometry.Shape, error) {
	s, err := ReadPointSeq[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewLineString(s), nil
}

func readPolygon[V coords.Dim](r *Reader) (geometry.Shape, error) {
	rings, err := ReadRingSeq[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewPolygon(rings), nil
}

func readMultiPoint[V coords.Dim](r *Reader) (geometry.Shape, error) {
	s, err := ReadPointSeq[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewMultiPoint(s), nil
}

func readMultiLineString[V coords.Dim](r *Reader) (geometry.Shape, error) {
	lines, err := ReadRingSeq[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewMultiLineString(lines), nil
}

func readMultiPolygon[V coords.Dim](r *Reader) (geometry.Shape, error) {
	polygons, err := ReadRingSeqSet[V](r)
	if err != nil {
		return nil, err
	}

	return geometry.NewMultiPolygon(polygons), nil
}
