package paper

import (
	"fmt"
	"math"
)

func (p *Path) current() (*Segment, error) {
	if len(p.segments) == 0 {
		return nil, ErrNoCurrentPoint
	}
	return p.segments[len(p.segments)-1], nil
}

// MoveTo starts the path at pt. It has no effect on paths that already have
// segments; use a [CompoundPath] for paths with multiple subpaths.
func (p *Path) MoveTo(pt Point) {
	if len(p.segments) != 0 {
		Logger().Debug("MoveTo on non-empty path ignored", "point", pt)
		return
	}
	p.Add(Seg(pt))
}

// LineTo adds a straight line to pt. Unlike the other drawing commands, it
// does not require a current point.
func (p *Path) LineTo(pt Point) {
	p.Add(Seg(pt))
}

// CubicCurveTo adds a cubic Bézier curve to pt, with absolute control
// points h1 and h2.
func (p *Path) CubicCurveTo(h1, h2, to Point) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	cur.SetHandleOut(h1.Sub(cur.point))
	p.Add(NewSegment(to, h2.Sub(to), Vec2{}))
	return nil
}

// QuadraticCurveTo adds the exact cubic representation of the quadratic
// Bézier curve with control point h, ending at to.
func (p *Path) QuadraticCurveTo(h, to Point) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	from := cur.point
	return p.CubicCurveTo(
		h.Translate(from.Sub(h).Mul(1.0/3.0)),
		h.Translate(to.Sub(h).Mul(1.0/3.0)),
		to,
	)
}

// CurveTo adds a quadratic curve to to that passes through through at
// parameter t. The usual value of t is 0.5.
func (p *Path) CurveTo(through, to Point, t float64) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	from := Vec2(cur.point)
	t1 := 1 - t
	h := Vec2(through).Sub(from.Mul(t1 * t1)).Sub(Vec2(to).Mul(t * t)).Div(2 * t * t1)
	if h.IsNaN() || h.IsInf() {
		return fmt.Errorf("curve parameter %g: %w", t, ErrCurveThroughParameter)
	}
	return p.QuadraticCurveTo(Point(h), to)
}

// ArcTo adds a half circle ending at to, turning clockwise or
// counter-clockwise in a y-down space.
func (p *Path) ArcTo(to Point, clockwise bool) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	from := cur.point
	mid := from.Midpoint(to)
	th := -math.Pi / 2
	if !clockwise {
		th = math.Pi / 2
	}
	through := mid.Translate(mid.Sub(from).Rotate(th))
	return p.arc(cur, through, to)
}

// ArcThrough adds a circular arc from the current point through through,
// ending at to.
func (p *Path) ArcThrough(through, to Point) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	return p.arc(cur, through, to)
}

// side returns the side of the line from a to b that pt lies on, as -1, 0
// or 1.
func side(a, b, pt Point) int {
	c := pt.Sub(a).Cross(b.Sub(a))
	switch {
	case math.Abs(c) < GeometricEpsilon*max(1, b.Sub(a).Hypot()):
		return 0
	case c > 0:
		return 1
	default:
		return -1
	}
}

// arc approximates the circular arc from cur through through to to with
// at most one cubic per quarter circle.
func (p *Path) arc(cur *Segment, through, to Point) error {
	from := cur.point
	throughSide := side(from, to, through)
	l1 := Line{from.Midpoint(through), from.Midpoint(through).Translate(through.Sub(from).Rotate(math.Pi / 2))}
	l2 := Line{through.Midpoint(to), through.Midpoint(to).Translate(to.Sub(through).Rotate(math.Pi / 2))}
	center, ok := l1.CrossingPoint(l2)
	if !ok || side(from, through, to) == 0 {
		// Collinear points. An arc through a point between the end points
		// degenerates into a line.
		d := to.Sub(from)
		if u := through.Sub(from).Dot(d); throughSide == 0 && u >= 0 && u <= d.Hypot2() {
			p.LineTo(to)
			return nil
		}
		return fmt.Errorf("arc through %s, %s, %s: %w", from, through, to, ErrArcCollinear)
	}
	vector := from.Sub(center)
	extent := vector.DirectedAngle(to.Sub(center))
	centerSide := side(from, to, center)
	switch {
	case centerSide == 0:
		extent = float64(throughSide) * math.Abs(extent)
	case throughSide == centerSide:
		if extent < 0 {
			extent += 2 * math.Pi
		} else {
			extent -= 2 * math.Pi
		}
	}
	ext := math.Abs(extent)
	count := 4
	if ext < 2*math.Pi {
		count = max(1, int(math.Ceil(ext/(math.Pi/2)-Epsilon)))
	}
	inc := extent / float64(count)
	half := inc / 2
	z := 4.0 / 3.0 * math.Sin(half) / (1 + math.Cos(half))
	segs := make([]*Segment, 0, count)
	for i := 0; i <= count; i++ {
		pt := to
		var out Vec2
		if i < count {
			pt = center.Translate(vector)
			out = vector.Rotate(math.Pi / 2).Mul(z)
		}
		if i == 0 {
			cur.SetHandleOut(out)
		} else {
			segs = append(segs, NewSegment(pt, vector.Rotate(-math.Pi/2).Mul(z), out))
		}
		vector = vector.Rotate(inc)
	}
	p.Add(segs...)
	return nil
}

// LineBy adds a straight line to the current point translated by v.
func (p *Path) LineBy(v Vec2) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	p.LineTo(cur.point.Translate(v))
	return nil
}

// CurveBy is like [Path.CurveTo], with points relative to the current
// point.
func (p *Path) CurveBy(through, to Vec2, t float64) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	return p.CurveTo(cur.point.Translate(through), cur.point.Translate(to), t)
}

// ArcBy is like [Path.ArcThrough], with points relative to the current
// point.
func (p *Path) ArcBy(through, to Vec2) error {
	cur, err := p.current()
	if err != nil {
		return err
	}
	return p.ArcThrough(cur.point.Translate(through), cur.point.Translate(to))
}

// ClosePath closes the path. If the last anchor coincides with the first,
// the last segment is merged into the first.
func (p *Path) ClosePath() {
	if n := len(p.segments); n > 1 {
		first, last := p.segments[0], p.segments[n-1]
		if first.point.IsClose(last.point, GeometricEpsilon) {
			first.SetHandleIn(last.handleIn)
			last.Remove()
		}
	}
	p.SetClosed(true)
}
