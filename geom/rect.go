package geom

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Point is an integer coordinate pair. It doubles as a size (width, height).
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Positive reports whether both components are strictly greater than zero.
func (p Point) Positive() bool {
	return p.X > 0 && p.Y > 0
}

// Add returns p+q component-wise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// String renders the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Rect is an axis-aligned integer rectangle. X1 and Y1 are exclusive.
// A Rect is valid iff X1 > X0 and Y1 > Y0.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// R is shorthand for Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}.
func R(x0, y0, x1, y1 int) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// FromOriginSize builds the rectangle spanning origin..origin+size.
func FromOriginSize(origin, size Point) Rect {
	return Rect{X0: origin.X, Y0: origin.Y, X1: origin.X + size.X, Y1: origin.Y + size.Y}
}

// Width returns X1-X0.
func (r Rect) Width() int { return r.X1 - r.X0 }

// Height returns Y1-Y0.
func (r Rect) Height() int { return r.Y1 - r.Y0 }

// Area returns Width*Height, or 0 for an invalid rectangle.
func (r Rect) Area() int {
	if !r.Valid() {
		return 0
	}
	return r.Width() * r.Height()
}

// Valid reports whether the rectangle has strictly positive width and height.
func (r Rect) Valid() bool {
	return r.X1 > r.X0 && r.Y1 > r.Y0
}

// Origin returns the (X0,Y0) corner.
func (r Rect) Origin() Point { return Point{X: r.X0, Y: r.Y0} }

// Far returns the exclusive (X1,Y1) corner.
func (r Rect) Far() Point { return Point{X: r.X1, Y: r.Y1} }

// Center returns the coordinate-sum midpoint ((X0+X1)/2, (Y0+Y1)/2)
// as an orb.Point, without integer truncation.
func (r Rect) Center() orb.Point {
	return orb.Point{float64(r.X0+r.X1) / 2, float64(r.Y0+r.Y1) / 2}
}

// Bound converts the rectangle into an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{float64(r.X0), float64(r.Y0)},
		Max: orb.Point{float64(r.X1), float64(r.Y1)},
	}
}

// Contains reports whether o lies entirely inside r (edges may coincide).
func (r Rect) Contains(o Rect) bool {
	return r.X0 <= o.X0 && r.Y0 <= o.Y0 && o.X1 <= r.X1 && o.Y1 <= r.Y1
}

// ContainsCell reports whether the grid cell (x,y) lies inside r.
func (r Rect) ContainsCell(x, y int) bool {
	return x >= r.X0 && x < r.X1 && y >= r.Y0 && y < r.Y1
}

// Overlaps reports whether r and o share at least one grid cell.
func (r Rect) Overlaps(o Rect) bool {
	return overlap(r.X0, r.X1, o.X0, o.X1) > 0 && overlap(r.Y0, r.Y1, o.Y0, o.Y1) > 0
}

// Touches reports whether r and o overlap or share an edge of positive
// length, i.e. whether their cells are 4-connected. Corner contact alone
// does not count.
func (r Rect) Touches(o Rect) bool {
	ox := overlap(r.X0, r.X1, o.X0, o.X1)
	oy := overlap(r.Y0, r.Y1, o.Y0, o.Y1)
	return (ox > 0 && oy >= 0) || (ox >= 0 && oy > 0)
}

// String renders the rectangle as "[x0,y0 x1,y1)".
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d %d,%d)", r.X0, r.Y0, r.X1, r.Y1)
}

// overlap returns the signed length shared by [a0,a1) and [b0,b1).
// Zero means the spans abut; negative means a gap.
func overlap(a0, a1, b0, b1 int) int {
	return min(a1, b1) - max(a0, b0)
}
