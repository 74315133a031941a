package paper

import "math"

// Line represents a line segment from P0 to P1.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Intersect computes the intersection of two line segments. It returns the
// parameters of the intersection on l and on o, both in [0, 1]. Endpoints
// within [Epsilon] of each other in parameter space count as touching.
// Parallel and coincident segments do not intersect.
func (l Line) Intersect(o Line) (t, u float64, ok bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := o.P1.Sub(o.P0)
	det := d1.Cross(d2)
	if math.Abs(det) < MachineEpsilon*max(1, d1.Hypot2(), d2.Hypot2()) {
		return 0, 0, false
	}
	w := o.P0.Sub(l.P0)
	t = w.Cross(d2) / det
	u = w.Cross(d1) / det
	const eps = Epsilon
	if t < -eps || t > 1+eps || u < -eps || u > 1+eps {
		return 0, 0, false
	}
	return clamp(t, 0, 1), clamp(u, 0, 1), true
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Nearest returns the squared distance and parameter of the point on the
// segment closest to pt.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// SignedDistance returns the distance of pt from the infinite line through
// l, positive on the right-hand side when looking from P0 towards P1 in a
// y-down space.
func (l Line) SignedDistance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	h := d.Hypot()
	if h == 0 {
		return pt.Distance(l.P0)
	}
	return d.Cross(pt.Sub(l.P0)) / h
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}
