package dbtype

import (
	"database/sql"
	"database/sql/driver"

	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/geometry"
)

var (
	_ sql.Scanner   = (*Shape[ewkb.Codec, geometry.Point2D])(nil)
	_ driver.Valuer = Shape[ewkb.Codec, geometry.Point2D]{}
)

// Shape is a nullable column restricted to one shape type S, such as a
// PostGIS geometry(Point, 4326) column:
//
//	var site dbtype.Shape[ewkb.Codec, geometry.Point2D]
//	err := row.Scan(&site)
//	pt, _ := site.Get()
//
// Scanning or writing a geometry of another kind fails with an error matching
// errs.ErrKindMismatch.
type Shape[C Codec, S geometry.Shape] struct {
	Column[C]
}

// NewShape returns a valid column holding s with the given SRID.
func NewShape[C Codec, S geometry.Shape](s S, srid uint32, codec C) Shape[C, S] {
	return Shape[C, S]{Column: NewColumn(geometry.NewWithSRID(s, srid), codec)}
}

// Get returns the shape and whether the column is not NULL.
func (s Shape[C, S]) Get() (S, bool) {
	if !s.Valid {
		var zero S
		return zero, false
	}

	shape, err := geometry.As[S](s.Geometry)

	return shape, err == nil
}

// Scan implements sql.Scanner.
//
// On error the column is left unchanged.
func (s *Shape[C, S]) Scan(src any) error {
	col := Column[C]{Codec: s.Codec}
	if err := col.Scan(src); err != nil {
		return err
	}

	if col.Valid {
		if _, err := geometry.As[S](col.Geometry); err != nil {
			return err
		}
	}

	s.Column = col

	return nil
}

// Value implements driver.Valuer.
func (s Shape[C, S]) Value() (driver.Value, error) {
	if s.Valid {
		if _, err := geometry.As[S](s.Geometry); err != nil {
			return nil, err
		}
	}

	return s.Column.Value()
}
