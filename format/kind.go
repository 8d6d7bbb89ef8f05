package format

import (
	"fmt"

	"github.com/arloliu/geowire/errs"
)

// Kind identifies a geometry shape and its dimensionality.
//
// The registry maps each kind to two independently numbered wire codes:
//
//	Kind                 EWKB code     SpatiaLite code
//	Point .. GC          1 .. 7        1 .. 7
//	PointZ .. GCZ        1 .. 7 | Z    1001 .. 1007
//
// where Z is the EWKBZFlag bit (0x80000000).
type Kind uint8

const (
	KindUnknown Kind = iota // KindUnknown represents an unset or unrecognized kind.
	Point                   // Point represents a single 2D position.
	LineString              // LineString represents a 2D polyline.
	Polygon                 // Polygon represents a 2D polygon with an outer ring and optional holes.
	MultiPoint              // MultiPoint represents a collection of 2D points.
	MultiLineString         // MultiLineString represents a collection of 2D polylines.
	MultiPolygon            // MultiPolygon represents a collection of 2D polygons.
	GeometryCollection      // GeometryCollection represents a mixed 2D collection (registered, not encodable).
	PointZ                  // PointZ represents a single 3D position.
	LineStringZ             // LineStringZ represents a 3D polyline.
	PolygonZ                // PolygonZ represents a 3D polygon with an outer ring and optional holes.
	MultiPointZ             // MultiPointZ represents a collection of 3D points.
	MultiLineStringZ        // MultiLineStringZ represents a collection of 3D polylines.
	MultiPolygonZ           // MultiPolygonZ represents a collection of 3D polygons.
	GeometryCollectionZ     // GeometryCollectionZ represents a mixed 3D collection (registered, not encodable).
)

// Wire-level flag bits and code offsets.
const (
	EWKBZFlag    uint32 = 0x80000000 // EWKBZFlag marks a 3D (XYZ) geometry in an EWKB type code.
	EWKBSRIDFlag uint32 = 0x20000000 // EWKBSRIDFlag marks the presence of an SRID field in an EWKB header.

	SpatiaLiteZOffset uint32 = 1000 // SpatiaLiteZOffset is added to the base code of 3D SpatiaLite classes.

	baseCount = 7
)

var kindNames = [...]string{
	KindUnknown:         "Unknown",
	Point:               "Point",
	LineString:          "LineString",
	Polygon:             "Polygon",
	MultiPoint:          "MultiPoint",
	MultiLineString:     "MultiLineString",
	MultiPolygon:        "MultiPolygon",
	GeometryCollection:  "GeometryCollection",
	PointZ:              "PointZ",
	LineStringZ:         "LineStringZ",
	PolygonZ:            "PolygonZ",
	MultiPointZ:         "MultiPointZ",
	MultiLineStringZ:    "MultiLineStringZ",
	MultiPolygonZ:       "MultiPolygonZ",
	GeometryCollectionZ: "GeometryCollectionZ",
}

// String returns the kind name, with a "Z" suffix for 3D kinds.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// Name returns the shape name shared by the 2D and 3D variants, e.g. "Point" for PointZ.
func (k Kind) Name() string {
	return k.Base().String()
}

// IsValid reports whether k is one of the fourteen registered kinds.
func (k Kind) IsValid() bool {
	return k >= Point && k <= GeometryCollectionZ
}

// Is3D reports whether k is an XYZ kind.
func (k Kind) Is3D() bool {
	return k >= PointZ && k <= GeometryCollectionZ
}

// IsCollection reports whether k is a geometry collection kind.
func (k Kind) IsCollection() bool {
	return k == GeometryCollection || k == GeometryCollectionZ
}

// Base returns the 2D kind of the same shape.
func (k Kind) Base() Kind {
	if k.Is3D() {
		return k - baseCount
	}

	return k
}

// WithZ returns the 3D variant of k's shape when z is true, the 2D variant otherwise.
func (k Kind) WithZ(z bool) Kind {
	base := k.Base()
	if !base.IsValid() || !z {
		return base
	}

	return base + baseCount
}

// Dim returns the number of scalars per coordinate tuple: 2, 3, or 0 for invalid kinds.
func (k Kind) Dim() int {
	switch {
	case !k.IsValid():
		return 0
	case k.Is3D():
		return 3
	default:
		return 2
	}
}

// EWKBCode returns the EWKB type code of k, including the Z flag for 3D kinds.
// The SRID flag is a header concern and is never part of the returned code.
func (k Kind) EWKBCode() uint32 {
	if !k.IsValid() {
		return 0
	}

	code := uint32(k.Base())
	if k.Is3D() {
		code |= EWKBZFlag
	}

	return code
}

// SpatiaLiteCode returns the SpatiaLite geometry class code of k.
func (k Kind) SpatiaLiteCode() uint32 {
	if !k.IsValid() {
		return 0
	}

	code := uint32(k.Base())
	if k.Is3D() {
		code += SpatiaLiteZOffset
	}

	return code
}

// KindFromEWKB resolves an EWKB type code with the SRID flag already cleared.
//
// Returns errs.ErrUnknownKind for codes outside the registry, including codes
// carrying flag bits geowire does not support (e.g. the M flag).
func KindFromEWKB(code uint32) (Kind, error) {
	base := code &^ EWKBZFlag
	if base < 1 || base > baseCount {
		return KindUnknown, fmt.Errorf("%w: EWKB type 0x%08x", errs.ErrUnknownKind, code)
	}

	return Kind(base).WithZ(code&EWKBZFlag != 0), nil
}

// KindFromSpatiaLite resolves a SpatiaLite geometry class code.
//
// Returns errs.ErrUnknownKind for codes outside the registry.
func KindFromSpatiaLite(code uint32) (Kind, error) {
	switch {
	case code >= 1 && code <= baseCount:
		return Kind(code), nil
	case code >= SpatiaLiteZOffset+1 && code <= SpatiaLiteZOffset+baseCount:
		return Kind(code - SpatiaLiteZOffset).WithZ(true), nil
	default:
		return KindUnknown, fmt.Errorf("%w: SpatiaLite class %d", errs.ErrUnknownKind, code)
	}
}

// Kinds returns all registered kinds in code order, 2D kinds first.
func Kinds() []Kind {
	kinds := make([]Kind, 0, 2*baseCount)
	for k := Point; k <= GeometryCollectionZ; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}
