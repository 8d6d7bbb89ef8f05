// Package dbtype binds geowire codecs to database/sql.
//
// A Column implements sql.Scanner and driver.Valuer for one wire format,
// chosen by its codec type parameter:
//
//	var loc dbtype.EWKB
//	err := db.QueryRow(`SELECT location FROM sites WHERE id = $1`, id).Scan(&loc)
//
//	_, err = db.Exec(`INSERT INTO sites (location) VALUES ($1)`,
//	    dbtype.NewEWKB(geometry.NewWithSRID(geometry.NewPoint(coords.XY{8.5, 47.4}), 4326)))
//
// Scan accepts the binary encoding as []byte, and the hex text rendering
// PostGIS returns over the text protocol as either string or []byte. A NULL
// scans into an invalid column; an invalid column is written as NULL.
package dbtype

import (
	"database/sql"
	"database/sql/driver"
	"encoding/hex"
	"fmt"

	"github.com/arloliu/geowire/errs"
	"github.com/arloliu/geowire/ewkb"
	"github.com/arloliu/geowire/format"
	"github.com/arloliu/geowire/geometry"
	"github.com/arloliu/geowire/spatialite"
)

// Codec is the wire-format capability a column needs. ewkb.Codec and
// spatialite.Codec implement it.
type Codec interface {
	Format() format.WireFormat
	Marshal(g geometry.Geometry) ([]byte, error)
	Unmarshal(data []byte) (geometry.Geometry, error)
}

var (
	_ Codec = ewkb.Codec{}
	_ Codec = spatialite.Codec{}

	_ sql.Scanner   = (*Column[ewkb.Codec])(nil)
	_ driver.Valuer = Column[ewkb.Codec]{}
)

// Column is a nullable geometry column encoded with codec C.
//
// The zero value is a NULL column whose codec is C's zero value.
type Column[C Codec] struct {
	Geometry geometry.Geometry
	Valid    bool // Valid is true if Geometry is not NULL
	Codec    C
}

// EWKB is a PostGIS geometry column.
type EWKB = Column[ewkb.Codec]

// SpatiaLite is a SpatiaLite geometry column.
type SpatiaLite = Column[spatialite.Codec]

// NewColumn returns a valid column holding g, encoded with codec.
func NewColumn[C Codec](g geometry.Geometry, codec C) Column[C] {
	return Column[C]{Geometry: g, Valid: true, Codec: codec}
}

// NewEWKB returns a valid PostGIS column holding g.
func NewEWKB(g geometry.Geometry, opts ...ewkb.Option) EWKB {
	return NewColumn(g, ewkb.NewCodec(opts...))
}

// NewSpatiaLite returns a valid SpatiaLite column holding g.
func NewSpatiaLite(g geometry.Geometry, opts ...spatialite.Option) SpatiaLite {
	return NewColumn(g, spatialite.NewCodec(opts...))
}

// Scan implements sql.Scanner.
//
// On error the column is left unchanged.
func (c *Column[C]) Scan(src any) error {
	if src == nil {
		c.Geometry, c.Valid = geometry.Geometry{}, false
		return nil
	}

	data, err := sourceBytes(src)
	if err != nil {
		return err
	}

	g, err := c.Codec.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("scan %s geometry: %w", c.Codec.Format(), err)
	}

	c.Geometry, c.Valid = g, true

	return nil
}

// Value implements driver.Valuer.
func (c Column[C]) Value() (driver.Value, error) {
	if !c.Valid {
		return nil, nil
	}

	data, err := c.Codec.Marshal(c.Geometry)
	if err != nil {
		return nil, fmt.Errorf("encode %s geometry: %w", c.Codec.Format(), err)
	}

	return data, nil
}

// sourceBytes returns the binary encoding held by src, hex-decoding text
// renderings.
func sourceBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case []byte:
		if isHexText(v) {
			return hexDecode(v)
		}

		return v, nil
	case string:
		if isHexText([]byte(v)) {
			return hexDecode([]byte(v))
		}

		return []byte(v), nil
	default:
		return nil, fmt.Errorf("%w: %T", errs.ErrUnsupportedSource, src)
	}
}

// isHexText reports whether data is a hex rendering. Binary encodings of both
// formats start with byte 0x00 or 0x01, while their hex text starts with the
// ASCII digit '0'.
func isHexText(data []byte) bool {
	return len(data) > 0 && data[0] == '0'
}

func hexDecode(text []byte) ([]byte, error) {
	data := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(data, text); err != nil {
		return nil, fmt.Errorf("%w: hex geometry text: %w", errs.ErrMalformed, err)
	}

	return data, nil
}
