package paper

import (
	"fmt"
	"math"
)

// Curve is a view of the cubic Bézier between two adjacent segments. Curves
// of a path are owned by the path and are rebuilt after structural changes;
// do not keep them across mutations of the path.
type Curve struct {
	path   *Path
	seg1   *Segment
	seg2   *Segment
	length option[float64]
}

// NewCurve returns a curve between two segments that is not part of a
// path.
func NewCurve(seg1, seg2 *Segment) *Curve {
	return &Curve{seg1: seg1, seg2: seg2}
}

// NewCurveFromValues returns a detached curve with the given value vector.
func NewCurveFromValues(c CubicBez) *Curve {
	return NewCurve(
		NewSegment(c.P0, Vec2{}, c.P1.Sub(c.P0)),
		NewSegment(c.P3, c.P2.Sub(c.P3), Vec2{}),
	)
}

func (c *Curve) String() string {
	return fmt.Sprintf("Curve{%s, %s, %s, %s}", c.Point1(), c.Handle1(), c.Handle2(), c.Point2())
}

func (c *Curve) Path() *Path        { return c.path }
func (c *Curve) Segment1() *Segment { return c.seg1 }
func (c *Curve) Segment2() *Segment { return c.seg2 }
func (c *Curve) Point1() Point      { return c.seg1.point }
func (c *Curve) Handle1() Vec2      { return c.seg1.handleOut }
func (c *Curve) Handle2() Vec2      { return c.seg2.handleIn }
func (c *Curve) Point2() Point      { return c.seg2.point }

// Index returns the index of the curve in its path, or -1.
func (c *Curve) Index() int {
	if c.path == nil {
		return -1
	}
	return c.seg1.index
}

// Next returns the following curve of the path, wrapping around on closed
// paths.
func (c *Curve) Next() *Curve {
	if c.path == nil {
		return nil
	}
	curves := c.path.Curves()
	i := c.Index()
	if i+1 < len(curves) {
		return curves[i+1]
	}
	if c.path.closed && len(curves) > 0 {
		return curves[0]
	}
	return nil
}

// Previous returns the preceding curve of the path, wrapping around on
// closed paths.
func (c *Curve) Previous() *Curve {
	if c.path == nil {
		return nil
	}
	curves := c.path.Curves()
	i := c.Index()
	if i > 0 {
		return curves[i-1]
	}
	if c.path.closed && len(curves) > 0 {
		return curves[len(curves)-1]
	}
	return nil
}

// Values returns the curve's value vector, with absolute control points.
func (c *Curve) Values() CubicBez {
	p1 := c.seg1.point
	p2 := c.seg2.point
	return CubicBez{
		P0: p1,
		P1: p1.Translate(c.seg1.handleOut),
		P2: p2.Translate(c.seg2.handleIn),
		P3: p2,
	}
}

func (c *Curve) changed() {
	c.length.clear()
}

// Length returns the arc length of the curve. The result is cached while
// the curve belongs to a path.
func (c *Curve) Length() float64 {
	if c.length.isSet {
		return c.length.value
	}
	l := c.Values().Length()
	if c.path != nil {
		c.length.set(l)
	}
	return l
}

// PartLength returns the arc length between the parameters from and to.
func (c *Curve) PartLength(from, to float64) float64 {
	if from == 0 && to == 1 {
		return c.Length()
	}
	return c.Values().PartLength(from, to)
}

// ParameterAt returns the parameter at arc length offset from start. See
// [CubicBez.ParameterAt].
func (c *Curve) ParameterAt(offset, start float64) (float64, bool) {
	return c.Values().ParameterAt(offset, start)
}

// ParameterOf returns the parameter of pt if it lies on the curve.
func (c *Curve) ParameterOf(pt Point) (float64, bool) {
	return c.Values().ParameterOf(pt)
}

func (c *Curve) PointAt(t float64) Point       { return c.Values().Eval(t) }
func (c *Curve) TangentAt(t float64) Vec2      { return c.Values().Tangent(t) }
func (c *Curve) NormalAt(t float64) Vec2       { return c.Values().Normal(t) }
func (c *Curve) CurvatureAt(t float64) float64 { return c.Values().Curvature(t) }

// Evaluate evaluates the curve at t. See [CubicBez.Evaluate].
func (c *Curve) Evaluate(t float64, kind EvalKind) Vec2 {
	return c.Values().Evaluate(t, kind)
}

// BoundingBox returns the exact bounding box of the curve.
func (c *Curve) BoundingBox() Rect { return c.Values().BoundingBox() }

func (c *Curve) HasHandles() bool { return !c.seg1.handleOut.IsZero() || !c.seg2.handleIn.IsZero() }
func (c *Curve) IsStraight() bool { return c.Values().IsStraight() }
func (c *Curve) IsLinear() bool   { return c.Values().IsLinear() }

// IsFlatEnough reports whether the curve deviates from its chord by less
// than tolerance.
func (c *Curve) IsFlatEnough(tolerance float64) bool {
	return c.Values().IsFlatEnough(tolerance)
}

// Subdivide splits the curve's value vector at t.
func (c *Curve) Subdivide(t float64) (CubicBez, CubicBez) {
	return c.Values().SubdivideAt(t)
}

// ClearHandles removes the handles that shape this curve.
func (c *Curve) ClearHandles() {
	c.seg1.SetHandleOut(Vec2{})
	c.seg2.SetHandleIn(Vec2{})
}

// Reversed returns a detached copy of the curve running in the opposite
// direction.
func (c *Curve) Reversed() *Curve {
	return NewCurve(c.seg2.Reverse(), c.seg1.Reverse())
}

// Intersections returns the intersections of c and o. Each returned
// location lies on c, and its Intersection method returns the matching
// location on o.
func (c *Curve) Intersections(o *Curve) []*CurveLocation {
	xs := c.Values().Intersections(o.Values())
	out := make([]*CurveLocation, 0, len(xs))
	for _, x := range xs {
		l0 := &CurveLocation{curve: c, t: x.T0, point: x.Point}
		l1 := &CurveLocation{curve: o, t: x.T1, point: x.Point}
		l0.intersection = l1
		l1.intersection = l0
		out = append(out, l0)
	}
	return out
}

// NearestLocation returns the location on the curve nearest to pt.
func (c *Curve) NearestLocation(pt Point) *CurveLocation {
	v := c.Values()
	distSq, t := v.Nearest(pt)
	return &CurveLocation{curve: c, t: t, point: v.Eval(t), distance: math.Sqrt(distSq)}
}

// NearestPoint returns the point on the curve nearest to pt.
func (c *Curve) NearestPoint(pt Point) Point {
	return c.NearestLocation(pt).point
}

// Divide splits the curve at t by inserting a new segment, and returns the
// curve that starts at the new segment. Parameters outside of (0, 1) do not
// divide the curve and return nil.
//
// Detached curves are divided by replacing their second segment.
func (c *Curve) Divide(t float64) *Curve {
	if !(t > 0 && t < 1) {
		return nil
	}
	hasHandles := c.HasHandles()
	left, right := c.Values().SubdivideAt(t)
	pt := left.P3
	seg := Seg(pt)
	if hasHandles {
		c.seg1.SetHandleOut(left.P1.Sub(left.P0))
		c.seg2.SetHandleIn(right.P2.Sub(right.P3))
		seg.handleIn = left.P2.Sub(pt)
		seg.handleOut = right.P1.Sub(pt)
	}
	if c.path == nil {
		end := c.seg2
		c.seg2 = seg
		c.changed()
		return NewCurve(seg, end)
	}
	p := c.path
	if c.seg2.index == 0 {
		p.Add(seg)
	} else {
		_, _ = p.Insert(c.seg2.index, seg)
	}
	return seg.curveAfter()
}

// Split splits the path at t on this curve. See [Path.Split].
func (c *Curve) Split(t float64) (*Path, error) {
	if c.path == nil {
		return nil, ErrForeignPath
	}
	return c.path.Split(c.Index(), t)
}
