package paper

import "math"

// Kappa is the handle length, relative to the radius, of a cubic Bézier
// approximating a quarter circle.
const Kappa = 0.5522847498307936

// NewLinePath returns an open path with the two anchors p0 and p1.
func NewLinePath(p0, p1 Point) *Path {
	return NewPathFromPoints(p0, p1)
}

// NewRectanglePath returns a closed path along the edges of r, starting at
// the corner (X0, Y1).
func NewRectanglePath(r Rect) *Path {
	r = r.Abs()
	p := NewPathFromPoints(
		Pt(r.X0, r.Y1),
		Pt(r.X0, r.Y0),
		Pt(r.X1, r.Y0),
		Pt(r.X1, r.Y1),
	)
	p.SetClosed(true)
	return p
}

// NewRoundRectanglePath returns a closed rectangle with elliptical corners
// of radii rx and ry. The radii are limited to half the rectangle's
// dimensions. Zero radii produce a plain rectangle.
func NewRoundRectanglePath(r Rect, rx, ry float64) *Path {
	r = r.Abs()
	if rx <= 0 && ry <= 0 {
		return NewRectanglePath(r)
	}
	rx = min(rx, r.Width()/2)
	ry = min(ry, r.Height()/2)
	kx, ky := rx*Kappa, ry*Kappa
	bl := Pt(r.X0, r.Y1)
	tl := Pt(r.X0, r.Y0)
	tr := Pt(r.X1, r.Y0)
	br := Pt(r.X1, r.Y1)
	p := NewPath(
		NewSegment(bl.Translate(Vec(rx, 0)), Vec2{}, Vec(-kx, 0)),
		NewSegment(bl.Translate(Vec(0, -ry)), Vec(0, ky), Vec2{}),

		NewSegment(tl.Translate(Vec(0, ry)), Vec2{}, Vec(0, -ky)),
		NewSegment(tl.Translate(Vec(rx, 0)), Vec(-kx, 0), Vec2{}),

		NewSegment(tr.Translate(Vec(-rx, 0)), Vec2{}, Vec(kx, 0)),
		NewSegment(tr.Translate(Vec(0, ry)), Vec(0, -ky), Vec2{}),

		NewSegment(br.Translate(Vec(0, -ry)), Vec2{}, Vec(0, ky)),
		NewSegment(br.Translate(Vec(-rx, 0)), Vec(kx, 0), Vec2{}),
	)
	p.SetClosed(true)
	return p
}

// NewOvalPath returns a closed path of four segments approximating the
// ellipse inscribed in r.
func NewOvalPath(r Rect) *Path {
	r = r.Abs()
	c := r.Center()
	rx, ry := r.Width()/2, r.Height()/2
	kx, ky := rx*Kappa, ry*Kappa
	p := NewPath(
		NewSegment(Pt(r.X0, c.Y), Vec(0, ky), Vec(0, -ky)),
		NewSegment(Pt(c.X, r.Y0), Vec(-kx, 0), Vec(kx, 0)),
		NewSegment(Pt(r.X1, c.Y), Vec(0, -ky), Vec(0, ky)),
		NewSegment(Pt(c.X, r.Y1), Vec(kx, 0), Vec(-kx, 0)),
	)
	p.SetClosed(true)
	return p
}

// NewCirclePath returns a closed path approximating the circle.
func NewCirclePath(center Point, radius float64) *Path {
	return NewOvalPath(NewRectFromCenter(center, 2*radius, 2*radius))
}

// NewArcPath returns an open path along the circular arc from from through
// through to to.
func NewArcPath(from, through, to Point) (*Path, error) {
	p := &Path{}
	p.MoveTo(from)
	if err := p.ArcThrough(through, to); err != nil {
		return nil, err
	}
	return p, nil
}

// NewRegularPolygonPath returns a closed regular polygon with the given
// number of sides, inscribed in the circle of the given radius. Polygons
// with a multiple of three sides point upwards in a y-down space.
func NewRegularPolygonPath(center Point, sides int, radius float64) *Path {
	if sides <= 0 {
		return &Path{}
	}
	step := 2 * math.Pi / float64(sides)
	three := sides%3 == 0
	v := Vec(0, radius)
	offset := 0.5
	if three {
		v = Vec(0, -radius)
		offset = -1
	}
	pts := make([]Point, sides)
	for i := range pts {
		pts[i] = center.Translate(v.Rotate((float64(i) + offset) * step))
	}
	p := NewPathFromPoints(pts...)
	p.SetClosed(true)
	return p
}

// NewStarPath returns a closed star with the given number of points. Tips
// alternate between radius1 and radius2, starting upwards in a y-down
// space.
func NewStarPath(center Point, points int, radius1, radius2 float64) *Path {
	n := points * 2
	if n <= 0 {
		return &Path{}
	}
	step := 2 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		r := radius1
		if i%2 == 1 {
			r = radius2
		}
		pts[i] = center.Translate(Vec(0, -1).Rotate(step * float64(i)).Mul(r))
	}
	p := NewPathFromPoints(pts...)
	p.SetClosed(true)
	return p
}
