package paper

import "math"

// BoundsKind selects one of the bounding boxes cached by a path.
type BoundsKind int

const (
	// Bounds is the tight bounding box of the path's geometry.
	Bounds BoundsKind = iota
	// StrokeBounds additionally covers the stroke, including joins and
	// caps.
	StrokeBounds
	// HandleBounds covers all anchors and handles.
	HandleBounds
	// RoughBounds is HandleBounds padded by the stroke. It is cheap to
	// compute and always contains StrokeBounds.
	RoughBounds

	numBoundsKinds
)

func (k BoundsKind) String() string {
	switch k {
	case Bounds:
		return "bounds"
	case StrokeBounds:
		return "stroke bounds"
	case HandleBounds:
		return "handle bounds"
	case RoughBounds:
		return "rough bounds"
	default:
		return "BoundsKind(?)"
	}
}

// boundsEntry caches one kind of bounds, for the most recently requested
// transform.
type boundsEntry struct {
	valid bool
	aff   Affine
	rect  Rect
}

// Bounds returns the tight bounding box of the path.
func (p *Path) Bounds() (Rect, error) {
	return p.BoundsOf(Bounds, Identity)
}

// BoundsTransformed returns the tight bounding box of the path after
// transformation by aff.
func (p *Path) BoundsTransformed(aff Affine) (Rect, error) {
	return p.BoundsOf(Bounds, aff)
}

// StrokeBounds returns the bounding box of the path's stroke. For paths
// without stroke, it is the same as [Path.Bounds].
func (p *Path) StrokeBounds() (Rect, error) {
	return p.BoundsOf(StrokeBounds, Identity)
}

// StrokeBoundsTransformed returns the bounding box of the path's stroke
// after transformation by aff. The stroke is transformed together with the
// path.
func (p *Path) StrokeBoundsTransformed(aff Affine) (Rect, error) {
	return p.BoundsOf(StrokeBounds, aff)
}

// HandleBounds returns the bounding box of all anchors and handles.
func (p *Path) HandleBounds() (Rect, error) {
	return p.BoundsOf(HandleBounds, Identity)
}

// RoughBounds returns a quickly computed box that contains the stroke
// bounds.
func (p *Path) RoughBounds() (Rect, error) {
	return p.BoundsOf(RoughBounds, Identity)
}

// BoundsOf returns the bounds of the given kind after transformation by
// aff. Results are cached per kind until the path changes.
func (p *Path) BoundsOf(kind BoundsKind, aff Affine) (Rect, error) {
	if len(p.segments) == 0 {
		return Rect{}, ErrEmptyPath
	}
	e := &p.bounds[kind]
	if e.valid && e.aff == aff {
		return e.rect, nil
	}
	var r Rect
	switch kind {
	case Bounds:
		r = p.geometryBounds(aff, 0, 0)
	case StrokeBounds:
		r = p.strokeBounds(aff)
	case HandleBounds:
		r = p.handleBounds(aff, 0, 0)
	case RoughBounds:
		r = p.roughBounds(aff)
	default:
		panic("paper: invalid bounds kind")
	}
	*e = boundsEntry{valid: true, aff: aff, rect: r}
	return r, nil
}

// geometryBounds unions the bounds of all transformed curves. Interior
// extrema are padded by px and py.
func (p *Path) geometryBounds(aff Affine, px, py float64) Rect {
	pt := p.segments[0].point.Transform(aff)
	r := Rect{pt.X, pt.Y, pt.X, pt.Y}
	for _, c := range p.Curves() {
		r = r.Union(c.Values().Transform(aff).boundsPadded(px, py))
	}
	return r
}

func (p *Path) strokeBounds(aff Affine) Rect {
	st := p.stroke
	if !st.IsStroked() {
		return p.geometryBounds(aff, 0, 0)
	}
	radius := st.Width / 2
	px, py := aff.penExtent(radius)
	r := p.geometryBounds(aff, px, py)

	addRound := func(pt Point) {
		q := pt.Transform(aff)
		r = r.Union(Rect{q.X - px, q.Y - py, q.X + px, q.Y + py})
	}
	add := func(pt Point) {
		r = r.UnionPoint(pt.Transform(aff))
	}

	curves := p.Curves()
	n := len(p.segments)
	for i, s := range p.segments {
		switch {
		case !p.closed && i == 0:
			p.addCap(s, curves, st.StartCap, radius, addRound, add)
		case !p.closed && i == n-1:
			p.addCap(s, curves, st.EndCap, radius, addRound, add)
		case st.Join == RoundJoin || (!s.handleIn.IsZero() && !s.handleOut.IsZero()):
			addRound(s.point)
		default:
			in := curves[(i-1+len(curves))%len(curves)]
			out := curves[i]
			addJoin(s.point, in.NormalAt(1), out.NormalAt(0), st, radius, add)
		}
	}
	return r
}

// addJoin adds the outer corner points of a bevel or miter join at pt.
func addJoin(pt Point, n1, n2 Vec2, st Stroke, radius float64, add func(Point)) {
	n1 = n1.Mul(radius)
	n2 = n2.Mul(radius)
	if angle := n1.DirectedAngle(n2); angle < 0 || angle >= math.Pi {
		n1 = n1.Negate()
		n2 = n2.Negate()
	}
	a := pt.Translate(n1)
	b := pt.Translate(n2)
	add(a)
	if st.Join == MiterJoin {
		l1 := Line{a, a.Translate(Vec(-n1.Y, n1.X))}
		l2 := Line{b, b.Translate(Vec(-n2.Y, n2.X))}
		if corner, ok := l1.CrossingPoint(l2); ok && pt.Distance(corner) <= st.MiterLimit*radius {
			add(corner)
		}
	}
	add(b)
}

// addCap adds the extent of the cap at the first or last segment of an
// open path.
func (p *Path) addCap(s *Segment, curves []*Curve, c Cap, radius float64, addRound, add func(Point)) {
	if c == RoundCap || len(curves) == 0 {
		addRound(s.point)
		return
	}
	var t Vec2
	if s.index == 0 {
		t = curves[0].TangentAt(0).Negate()
	} else {
		t = curves[len(curves)-1].TangentAt(1)
	}
	n := t.Perp().Mul(radius)
	pt := s.point
	add(pt.Translate(n))
	add(pt.Translate(n.Negate()))
	if c == SquareCap {
		pt = pt.Translate(t.Mul(radius))
		add(pt.Translate(n))
		add(pt.Translate(n.Negate()))
	}
}

// handleBounds unions all anchors, padded by jp, and all absolute handle
// positions, padded by hp.
func (p *Path) handleBounds(aff Affine, jp, hp float64) Rect {
	var r Rect
	first := true
	add := func(pt Point, pad float64) {
		q := pt.Transform(aff)
		px, py := aff.penExtent(pad)
		b := Rect{q.X - px, q.Y - py, q.X + px, q.Y + py}
		if first {
			r = b
			first = false
		} else {
			r = r.Union(b)
		}
	}
	for _, s := range p.segments {
		add(s.point, jp)
		add(s.point.Translate(s.handleIn), hp)
		add(s.point.Translate(s.handleOut), hp)
	}
	return r
}

func (p *Path) roughBounds(aff Affine) Rect {
	st := p.stroke
	if !st.IsStroked() {
		return p.handleBounds(aff, 0, 0)
	}
	radius := st.Width / 2
	jp := radius
	if st.Join == MiterJoin {
		jp = radius * max(1, st.MiterLimit)
	}
	if st.StartCap == SquareCap || st.EndCap == SquareCap {
		jp = max(jp, radius*math.Sqrt2)
	}
	return p.handleBounds(aff, jp, radius)
}
