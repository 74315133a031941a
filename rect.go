package paper

import "fmt"

// Rect is an axis-aligned rectangle. Rectangles produced by this package
// always have X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromCenter returns a rectangle of the given width and height,
// centered around the center point.
func NewRectFromCenter(center Point, width, height float64) Rect {
	return Rect{
		X0: center.X - width/2,
		Y0: center.Y - height/2,
		X1: center.X + width/2,
		Y1: center.Y + height/2,
	}.Abs()
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{(%g, %g), (%g, %g)}", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Origin returns the top left corner in a y-down space.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Corners returns the corners in the order top left, top right, bottom
// right, bottom left (in a y-down space).
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{r.X0, r.Y0},
		{r.X1, r.Y0},
		{r.X1, r.Y1},
		{r.X0, r.Y1},
	}
}

// Contains reports whether pt lies inside r or on its boundary.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// ContainsRect reports whether o lies entirely inside r.
func (r Rect) ContainsRect(o Rect) bool {
	return o.X0 >= r.X0 && o.X1 <= r.X1 && o.Y0 >= r.Y0 && o.Y1 <= r.Y1
}

// Overlaps reports whether the closed rectangles r and o share at least one
// point, allowing for a gap of at most epsilon.
func (r Rect) Overlaps(o Rect, epsilon float64) bool {
	return r.X0 <= o.X1+epsilon &&
		o.X0 <= r.X1+epsilon &&
		r.Y0 <= o.Y1+epsilon &&
		o.Y0 <= r.Y1+epsilon
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

// Transform returns the bounding box of r after transformation by aff.
func (r Rect) Transform(aff Affine) Rect {
	c := r.Corners()
	out := NewRectFromPoints(c[0].Transform(aff), c[1].Transform(aff))
	return out.UnionPoint(c[2].Transform(aff)).UnionPoint(c[3].Transform(aff))
}
