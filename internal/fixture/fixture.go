// Package fixture provides sample geometries covering every supported kind,
// for use in tests and benchmarks.
package fixture

import (
	"github.com/arloliu/geowire/coords"
	"github.com/arloliu/geowire/geometry"
)

var (
	square  = coords.PointSeq[coords.XY]{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	hole    = coords.PointSeq[coords.XY]{{0.2, 0.2}, {0.2, 0.4}, {0.4, 0.4}}
	squareZ = coords.PointSeq[coords.XYZ]{{0, 0, 5}, {0, 1, 5}, {1, 1, 6}, {1, 0, 6}}
	holeZ   = coords.PointSeq[coords.XYZ]{{0.2, 0.2, 5}, {0.2, 0.4, 5}, {0.4, 0.4, 5}}
)

// Shapes returns one shape per supported kind, 2D kinds first, in kind order.
// Every call returns freshly allocated values.
func Shapes() []geometry.Shape {
	return []geometry.Shape{
		geometry.NewPoint(coords.XY{10, 20}),
		geometry.NewLineString(coords.PointSeq[coords.XY]{{0, 0}, {1, 2}, {3, 4}}),
		geometry.NewPolygon(coords.RingSeq[coords.XY]{square.Clone(), hole.Clone()}),
		geometry.NewMultiPoint(coords.PointSeq[coords.XY]{{1, 5}, {3, 2}, {-1, 9}}),
		geometry.NewMultiLineString(coords.RingSeq[coords.XY]{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}, {4, 2}}}),
		geometry.NewMultiPolygon(coords.RingSeqSet[coords.XY]{{square.Clone()}, {square.Clone(), hole.Clone()}}),

		geometry.NewPoint(coords.XYZ{10, 20, 30}),
		geometry.NewLineString(coords.PointSeq[coords.XYZ]{{0, 0, 0}, {1, 2, 3}}),
		geometry.NewPolygon(coords.RingSeq[coords.XYZ]{squareZ.Clone(), holeZ.Clone()}),
		geometry.NewMultiPoint(coords.PointSeq[coords.XYZ]{{1, 5, 0}, {3, 2, -1}}),
		geometry.NewMultiLineString(coords.RingSeq[coords.XYZ]{{{0, 0, 1}, {1, 1, 1}}}),
		geometry.NewMultiPolygon(coords.RingSeqSet[coords.XYZ]{{squareZ.Clone()}, {squareZ.Clone(), holeZ.Clone()}}),
	}
}

// Geometries wraps Shapes in geometries. When srid is non-zero every geometry
// carries it; otherwise none carries an SRID.
func Geometries(srid uint32) []geometry.Geometry {
	shapes := Shapes()
	out := make([]geometry.Geometry, len(shapes))
	for i, s := range shapes {
		if srid != 0 {
			out[i] = geometry.NewWithSRID(s, srid)
		} else {
			out[i] = geometry.New(s)
		}
	}

	return out
}

// City returns a larger 2D multi-polygon with n outer rings of 64 points each.
func City(n int) geometry.Geometry {
	polys := make(coords.RingSeqSet[coords.XY], n)
	for i := range polys {
		ring := make(coords.PointSeq[coords.XY], 64)
		for j := range ring {
			ring[j] = coords.XY{float64(i) + float64(j%8)*0.125, float64(j/8) * 0.125}
		}
		polys[i] = coords.RingSeq[coords.XY]{ring}
	}

	return geometry.NewWithSRID(geometry.NewMultiPolygon(polys), geometry.DefaultSRID)
}
