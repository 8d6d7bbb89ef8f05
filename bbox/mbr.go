// Package bbox computes minimum bounding rectangles (MBR) over coordinate data.
//
// An MBR is always derived on demand from coordinates and never stored inside a
// geometry. The SpatiaLite codec writes it into every BLOB header.
package bbox

import (
	"fmt"
	"math"

	"github.com/arloliu/geowire/errs"
)

// MBR is the smallest axis-aligned rectangle enclosing a set of coordinates.
// Only the first (x) and second (y) scalar of each coordinate take part.
type MBR struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Union returns the smallest MBR enclosing both m and other.
func (m MBR) Union(other MBR) MBR {
	return MBR{
		MinX: min(m.MinX, other.MinX),
		MinY: min(m.MinY, other.MinY),
		MaxX: max(m.MaxX, other.MaxX),
		MaxY: max(m.MaxY, other.MaxY),
	}
}

// Contains reports whether the point (x, y) lies inside m, borders included.
func (m MBR) Contains(x, y float64) bool {
	return x >= m.MinX && x <= m.MaxX && y >= m.MinY && y <= m.MaxY
}

// Width returns MaxX - MinX.
func (m MBR) Width() float64 {
	return m.MaxX - m.MinX
}

// Height returns MaxY - MinY.
func (m MBR) Height() float64 {
	return m.MaxY - m.MinY
}

// Calculator accumulates coordinate bounds.
//
// The zero value is ready to use. A Calculator that has seen a NaN scalar stays
// poisoned: Bounds returns errs.ErrNaNCoordinate until Reset is called.
type Calculator struct {
	minX, minY, maxX, maxY float64
	initialized            bool
	nan                    bool
}

// NewCalculator creates a new bounding box calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// AddPoint adds a coordinate to the bounding box calculation.
func (c *Calculator) AddPoint(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) {
		c.nan = true
		return
	}

	if !c.initialized {
		c.minX, c.maxX = x, x
		c.minY, c.maxY = y, y
		c.initialized = true

		return
	}

	c.minX = min(c.minX, x)
	c.maxX = max(c.maxX, x)
	c.minY = min(c.minY, y)
	c.maxY = max(c.maxY, y)
}

// AddMBR extends the calculation with both corners of m.
func (c *Calculator) AddMBR(m MBR) {
	c.AddPoint(m.MinX, m.MinY)
	c.AddPoint(m.MaxX, m.MaxY)
}

// Bounds returns the accumulated bounding box.
//
// Returns:
//   - errs.ErrNaNCoordinate if any added scalar was NaN
//   - errs.ErrEmptyCoordinates if no point was added
func (c *Calculator) Bounds() (MBR, error) {
	if c.nan {
		return MBR{}, errs.ErrNaNCoordinate
	}

	if !c.initialized {
		return MBR{}, errs.ErrEmptyCoordinates
	}

	return MBR{MinX: c.minX, MinY: c.minY, MaxX: c.maxX, MaxY: c.maxY}, nil
}

// Reset clears the calculator for reuse.
func (c *Calculator) Reset() {
	*c = Calculator{}
}

// String implements fmt.Stringer.
func (m MBR) String() string {
	return fmt.Sprintf("MBR(%g %g, %g %g)", m.MinX, m.MinY, m.MaxX, m.MaxY)
}
