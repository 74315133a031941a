package paper

import "fmt"

// CurveLocation describes a position on a curve, as returned by nearest
// point queries, arc length lookups and intersections.
type CurveLocation struct {
	curve        *Curve
	t            float64
	point        Point
	distance     float64
	intersection *CurveLocation
}

func (l *CurveLocation) String() string {
	return fmt.Sprintf("CurveLocation{index: %d, parameter: %g, point: %s}", l.Index(), l.t, l.point)
}

func (l *CurveLocation) Curve() *Curve      { return l.curve }
func (l *CurveLocation) Parameter() float64 { return l.t }
func (l *CurveLocation) Point() Point       { return l.point }

// Distance returns the distance to the query point for locations returned
// by nearest point queries, and 0 otherwise.
func (l *CurveLocation) Distance() float64 { return l.distance }

// Intersection returns the matching location on the other curve for
// locations produced by intersection queries, or nil.
func (l *CurveLocation) Intersection() *CurveLocation { return l.intersection }

// Path returns the path of the location's curve, or nil.
func (l *CurveLocation) Path() *Path {
	if l.curve == nil {
		return nil
	}
	return l.curve.path
}

// Index returns the index of the location's curve in its path, or -1.
func (l *CurveLocation) Index() int {
	if l.curve == nil {
		return -1
	}
	return l.curve.Index()
}

// Segment returns the curve's segment that is closer to the location, as
// measured along the curve.
func (l *CurveLocation) Segment() *Segment {
	c := l.curve
	if c == nil {
		return nil
	}
	switch l.t {
	case 0:
		return c.seg1
	case 1:
		return c.seg2
	}
	if c.PartLength(0, l.t) < c.PartLength(l.t, 1) {
		return c.seg1
	}
	return c.seg2
}

// CurveOffset returns the arc length from the start of the curve to the
// location.
func (l *CurveLocation) CurveOffset() float64 {
	return l.curve.PartLength(0, l.t)
}

// Offset returns the arc length from the start of the path to the
// location. For detached curves, it is the same as CurveOffset.
func (l *CurveLocation) Offset() float64 {
	off := l.CurveOffset()
	if p := l.curve.path; p != nil {
		for _, c := range p.Curves()[:l.curve.Index()] {
			off += c.Length()
		}
	}
	return off
}

// Tangent returns the unit tangent of the curve at the location.
func (l *CurveLocation) Tangent() Vec2 {
	return l.curve.TangentAt(l.t)
}

// Normal returns the unit normal of the curve at the location.
func (l *CurveLocation) Normal() Vec2 {
	return l.curve.NormalAt(l.t)
}
