// Package geomconv converts between geowire geometries and github.com/twpayne/go-geom
// values, so geometries decoded from a database can be handed to go-geom based
// tooling (WKT/GeoJSON encoders, geometry functions) and back.
//
// 2D shapes map to geom.XY and 3D shapes to geom.XYZ. An SRID of 0 in go-geom
// means "no SRID"; a geowire geometry without an SRID converts to SRID 0 and
// back. Measured layouts (XYM, XYZM) and geometry collections are rejected with
// errs.ErrUnsupportedKind.
package geomconv

import (
	"fmt"
	"math"

	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/geometry"
	"github.com/twpayne/go-geom"
)

// ToGeom converts g to the equivalent go-geom value.
//
// The concrete result type follows the shape: *geom.Point, *geom.LineString,
// *geom.Polygon, *geom.MultiPoint, *geom.MultiLineString or *geom.MultiPolygon.
func ToGeom(g geometry.Geometry) (geom.T, error) {
	srid := g.SRIDOr(0)
	if uint64(srid) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d does not fit go-geom", errs.ErrInvalidSRID, srid)
	}

	switch s := g.Shape().(type) {
	case nil:
		return nil, errs.ErrNilGeometry
	case geometry.Point2D:
		return pointToGeom(s).SetSRID(int(srid)), nil
	case geometry.PointZ:
		return pointToGeom(s).SetSRID(int(srid)), nil
	case geometry.LineString2D:
		return lineStringToGeom(s).SetSRID(int(srid)), nil
	case geometry.LineStringZ:
		return lineStringToGeom(s).SetSRID(int(srid)), nil
	case geometry.Polygon2D:
		return polygonToGeom(s).SetSRID(int(srid)), nil
	case geometry.PolygonZ:
		return polygonToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiPoint2D:
		return multiPointToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiPointZ:
		return multiPointToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiLineString2D:
		return multiLineStringToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiLineStringZ:
		return multiLineStringToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiPolygon2D:
		return multiPolygonToGeom(s).SetSRID(int(srid)), nil
	case geometry.MultiPolygonZ:
		return multiPolygonToGeom(s).SetSRID(int(srid)), nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, s)
	}
}

// FromGeom converts t to a geowire geometry.
//
// Polygon rings are closed if go-geom holds them open. A point without
// coordinates, or a multi point holding an empty point, yields
// errs.ErrEmptyCoordinates since geowire has no empty point.
func FromGeom(t geom.T) (geometry.Geometry, error) {
	if t == nil {
		return geometry.Geometry{}, errs.ErrNilGeometry
	}

	var (
		shape geometry.Shape
		err   error
	)

	switch layout := t.Layout(); layout {
	case geom.XY:
		shape, err = shapeFromGeom[coords.XY](t)
	case geom.XYZ:
		shape, err = shapeFromGeom[coords.XYZ](t)
	default:
		return geometry.Geometry{}, fmt.Errorf("%w: %T with layout %v", errs.ErrUnsupportedKind, t, layout)
	}

	if err != nil {
		return geometry.Geometry{}, err
	}

	srid := t.SRID()
	switch {
	case srid == 0:
		return geometry.New(shape), nil
	case srid < 0 || int64(srid) > math.MaxUint32:
		return geometry.Geometry{}, fmt.Errorf("%w: %d", errs.ErrInvalidSRID, srid)
	default:
		return geometry.NewWithSRID(shape, uint32(srid)), nil
	}
}

func layoutOf[V coords.Dim]() geom.Layout {
	if coords.Arity[V]() == 3 {
		return geom.XYZ
	}

	return geom.XY
}

func appendTuple[V coords.Dim](dst []float64, v V) []float64 {
	for i := 0; i < len(v); i++ {
		dst = append(dst, v[i])
	}

	return dst
}

func appendPointSeq[V coords.Dim](dst []float64, s coords.PointSeq[V]) []float64 {
	for _, v := range s {
		dst = appendTuple(dst, v)
	}

	return dst
}

// appendRingSeq flattens r and returns the cumulative end offset of each ring.
func appendRingSeq[V coords.Dim](dst []float64, r coords.RingSeq[V]) ([]float64, []int) {
	ends := make([]int, 0, len(r))
	for _, s := range r {
		dst = appendPointSeq(dst, s)
		ends = append(ends, len(dst))
	}

	return dst, ends
}

func pointToGeom[V coords.Dim](p geometry.Point[V]) *geom.Point {
	return geom.NewPointFlat(layoutOf[V](), appendTuple(nil, p.Coords))
}

func lineStringToGeom[V coords.Dim](l geometry.LineString[V]) *geom.LineString {
	flat := make([]float64, 0, len(l.Points)*coords.Arity[V]())
	return geom.NewLineStringFlat(layoutOf[V](), appendPointSeq(flat, l.Points))
}

func polygonToGeom[V coords.Dim](p geometry.Polygon[V]) *geom.Polygon {
	flat := make([]float64, 0, p.Rings.NumPoints()*coords.Arity[V]())
	flat, ends := appendRingSeq(flat, p.Rings)

	return geom.NewPolygonFlat(layoutOf[V](), flat, ends)
}

func multiPointToGeom[V coords.Dim](m geometry.MultiPoint[V]) *geom.MultiPoint {
	flat := make([]float64, 0, len(m.Points)*coords.Arity[V]())
	return geom.NewMultiPointFlat(layoutOf[V](), appendPointSeq(flat, m.Points))
}

func multiLineStringToGeom[V coords.Dim](m geometry.MultiLineString[V]) *geom.MultiLineString {
	flat := make([]float64, 0, m.Lines.NumPoints()*coords.Arity[V]())
	flat, ends := appendRingSeq(flat, m.Lines)

	return geom.NewMultiLineStringFlat(layoutOf[V](), flat, ends)
}

func multiPolygonToGeom[V coords.Dim](m geometry.MultiPolygon[V]) *geom.MultiPolygon {
	flat := make([]float64, 0, m.Polygons.NumPoints()*coords.Arity[V]())
	endss := make([][]int, 0, len(m.Polygons))
	for _, rings := range m.Polygons {
		var ends []int
		for _, s := range rings {
			flat = appendPointSeq(flat, s)
			ends = append(ends, len(flat))
		}
		endss = append(endss, ends)
	}

	return geom.NewMultiPolygonFlat(layoutOf[V](), flat, endss)
}

func shapeFromGeom[V coords.Dim](t geom.T) (geometry.Shape, error) {
	flat := t.FlatCoords()
	stride := coords.Arity[V]()

	switch t := t.(type) {
	case *geom.Point:
		if len(flat) < stride {
			return nil, fmt.Errorf("%w: empty point", errs.ErrEmptyCoordinates)
		}

		return geometry.NewPoint(seqFromFlat[V](flat[:stride])[0]), nil
	case *geom.LineString:
		return geometry.NewLineString(seqFromFlat[V](flat)), nil
	case *geom.Polygon:
		return geometry.NewPolygon(ringsFromFlat[V](flat, 0, t.Ends())), nil
	case *geom.MultiPoint:
		if len(flat) != t.NumPoints()*stride {
			return nil, fmt.Errorf("%w: multi point holds an empty point", errs.ErrEmptyCoordinates)
		}

		return geometry.NewMultiPoint(seqFromFlat[V](flat)), nil
	case *geom.MultiLineString:
		return geometry.NewMultiLineString(ringsFromFlat[V](flat, 0, t.Ends())), nil
	case *geom.MultiPolygon:
		polygons := make(coords.RingSeqSet[V], 0, len(t.Endss()))
		start := 0
		for _, ends := range t.Endss() {
			polygons = append(polygons, ringsFromFlat[V](flat, start, ends))
			if len(ends) > 0 {
				start = ends[len(ends)-1]
			}
		}

		return geometry.NewMultiPolygon(polygons), nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedKind, t)
	}
}

func seqFromFlat[V coords.Dim](flat []float64) coords.PointSeq[V] {
	stride := coords.Arity[V]()
	s := make(coords.PointSeq[V], len(flat)/stride)
	for i := range s {
		for j := 0; j < stride; j++ {
			s[i][j] = flat[i*stride+j]
		}
	}

	return s
}

func ringsFromFlat[V coords.Dim](flat []float64, start int, ends []int) coords.RingSeq[V] {
	rings := make(coords.RingSeq[V], 0, len(ends))
	for _, end := range ends {
		rings = append(rings, seqFromFlat[V](flat[start:end]))
		start = end
	}

	return rings
}
