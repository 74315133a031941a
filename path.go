package paper

import (
	"fmt"
	"slices"
)

// ChangeFlag describes what kind of change happened to a path.
type ChangeFlag uint8

const (
	// ChangeGeometry means that anchors or handles moved.
	ChangeGeometry ChangeFlag = 1 << iota
	// ChangeStroke means that the stroke changed, which only affects
	// stroke-dependent bounds.
	ChangeStroke
	// ChangeStructure means that segments were added, removed or
	// reordered. It implies ChangeGeometry.
	ChangeStructure
)

// Owner is implemented by containers of paths. ChildChanged is called after
// every change to a path owned by the container.
type Owner interface {
	ChildChanged(p *Path, flags ChangeFlag)
}

// Path is an ordered sequence of segments, connected by cubic Bézier
// curves. A closed path has an additional curve from its last segment back
// to its first.
//
// Derived quantities (curves, bounds, length, orientation) are computed
// lazily and cached. Every mutation clears the caches that depend on it
// before returning.
//
// The zero value is an empty, open path without stroke.
type Path struct {
	segments []*Segment
	curves   []*Curve
	closed   bool
	stroke   Stroke
	owner    Owner

	bounds        [numBoundsKinds]boundsEntry
	length        option[float64]
	clockwise     option[bool]
	selectedState int
}

// NewPath returns an open path consisting of segs.
func NewPath(segs ...*Segment) *Path {
	p := &Path{}
	p.Add(segs...)
	return p
}

// NewPathFromPoints returns an open path with one segment without handles
// per point.
func NewPathFromPoints(pts ...Point) *Path {
	segs := make([]*Segment, len(pts))
	for i, pt := range pts {
		segs[i] = Seg(pt)
	}
	return NewPath(segs...)
}

func (p *Path) String() string {
	return fmt.Sprintf("Path{segments: %v, closed: %t}", p.segments, p.closed)
}

// Segments returns the path's segments. The slice must not be modified.
func (p *Path) Segments() []*Segment { return p.segments }

func (p *Path) SegmentCount() int { return len(p.segments) }

// Segment returns the segment at index i.
func (p *Path) Segment(i int) (*Segment, bool) {
	if i < 0 || i >= len(p.segments) {
		return nil, false
	}
	return p.segments[i], true
}

func (p *Path) FirstSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[0]
}

func (p *Path) LastSegment() *Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// IsEmpty reports whether the path has no segments.
func (p *Path) IsEmpty() bool { return len(p.segments) == 0 }

// Owner returns the container that owns the path, or nil.
func (p *Path) Owner() Owner { return p.owner }

// Stroke returns the path's stroke.
func (p *Path) Stroke() Stroke { return p.stroke }

// SetStroke sets the path's stroke. Only stroke-dependent bounds are
// invalidated.
func (p *Path) SetStroke(s Stroke) {
	if s == p.stroke {
		return
	}
	p.stroke = s
	p.changed(ChangeStroke)
}

func (p *Path) curveCount() int {
	n := len(p.segments)
	if !p.closed && n > 0 {
		n--
	}
	return n
}

// Curves returns the curves of the path, building them if necessary. Curve
// i spans segment i and segment i+1, wrapping around to segment 0 for the
// closing curve. The slice must not be modified and is only valid until the
// next structural change of the path.
func (p *Path) Curves() []*Curve {
	if p.curves == nil {
		n := p.curveCount()
		p.curves = make([]*Curve, n)
		for i := range n {
			p.curves[i] = &Curve{
				path: p,
				seg1: p.segments[i],
				seg2: p.segments[(i+1)%len(p.segments)],
			}
		}
	}
	return p.curves
}

func (p *Path) CurveCount() int { return p.curveCount() }

func (p *Path) FirstCurve() *Curve {
	if cs := p.Curves(); len(cs) > 0 {
		return cs[0]
	}
	return nil
}

func (p *Path) LastCurve() *Curve {
	if cs := p.Curves(); len(cs) > 0 {
		return cs[len(cs)-1]
	}
	return nil
}

func (p *Path) Closed() bool { return p.closed }

// SetClosed opens or closes the path, adding or removing the closing curve.
func (p *Path) SetClosed(closed bool) {
	if p.closed == closed {
		return
	}
	p.closed = closed
	if p.curves != nil {
		n := len(p.segments)
		if closed {
			if n > 0 {
				p.curves = append(p.curves, &Curve{path: p, seg1: p.segments[n-1], seg2: p.segments[0]})
			}
		} else {
			count := p.curveCount()
			for _, c := range p.curves[count:] {
				c.path = nil
			}
			p.curves = p.curves[:count]
		}
	}
	p.changed(ChangeGeometry)
}

// Add appends segments to the path and returns the segments as stored in
// the path. Segments that already belong to a path are copied.
func (p *Path) Add(segs ...*Segment) []*Segment {
	return p.insert(len(p.segments), segs)
}

// Insert inserts segments at index. See [Path.Add].
func (p *Path) Insert(index int, segs ...*Segment) ([]*Segment, error) {
	if index < 0 || index > len(p.segments) {
		return nil, fmt.Errorf("insert at %d into %d segments: %w", index, len(p.segments), ErrIndexOutOfRange)
	}
	return p.insert(index, segs), nil
}

func (p *Path) insert(index int, segs []*Segment) []*Segment {
	if len(segs) == 0 {
		return nil
	}
	out := make([]*Segment, len(segs))
	for i, s := range segs {
		if s.path != nil {
			s = s.Clone()
		}
		s.path = p
		s.index = index + i
		p.selectedState += int(s.selection)
		out[i] = s
	}
	p.segments = slices.Insert(p.segments, index, out...)
	p.reindex(index + len(out))
	p.patchCurves(index)
	p.changed(ChangeGeometry)
	return out
}

// RemoveSegment removes and returns the segment at index.
func (p *Path) RemoveSegment(index int) (*Segment, error) {
	segs, err := p.RemoveSegments(index, index+1)
	if err != nil {
		return nil, err
	}
	return segs[0], nil
}

// RemoveSegments removes and returns the segments in [from, to).
func (p *Path) RemoveSegments(from, to int) ([]*Segment, error) {
	if from < 0 || to > len(p.segments) || from > to {
		return nil, fmt.Errorf("remove [%d, %d) of %d segments: %w", from, to, len(p.segments), ErrIndexOutOfRange)
	}
	if from == to {
		return nil, nil
	}
	removed := slices.Clone(p.segments[from:to])
	p.segments = slices.Delete(p.segments, from, to)
	for _, s := range removed {
		p.selectedState -= int(s.selection)
		s.selection = 0
		s.path = nil
		s.index = -1
	}
	p.reindex(from)
	p.patchCurves(from)
	p.changed(ChangeGeometry)
	return removed, nil
}

// SetSegments replaces all segments of the path.
func (p *Path) SetSegments(segs ...*Segment) {
	p.Clear()
	p.Add(segs...)
}

// Clear removes all segments.
func (p *Path) Clear() {
	_, _ = p.RemoveSegments(0, len(p.segments))
}

func (p *Path) reindex(from int) {
	for i := from; i < len(p.segments); i++ {
		p.segments[i].index = i
	}
}

// patchCurves repairs the cached curves after segments were inserted or
// removed at index pos. Only the curves adjacent to the change are
// touched.
func (p *Path) patchCurves(pos int) {
	if p.curves == nil {
		return
	}
	count := p.curveCount()
	old := len(p.curves)
	delta := count - old
	switch {
	case delta > 0:
		pos = max(0, min(pos, old))
		fresh := make([]*Curve, delta)
		for i := range fresh {
			fresh[i] = &Curve{path: p}
		}
		p.curves = slices.Insert(p.curves, pos, fresh...)
	case delta < 0:
		pos = max(0, min(pos, count))
		for _, c := range p.curves[pos : pos-delta] {
			c.path = nil
		}
		p.curves = slices.Delete(p.curves, pos, pos-delta)
	}
	if count == 0 {
		return
	}
	n := len(p.segments)
	span := max(delta, -delta)
	for i := pos - 1; i <= pos+span; i++ {
		j := i
		if p.closed {
			j = ((i % count) + count) % count
		} else if i < 0 || i >= count {
			continue
		}
		c := p.curves[j]
		c.seg1 = p.segments[j]
		c.seg2 = p.segments[(j+1)%n]
		c.changed()
	}
}

// segmentChanged is called by attached segments after their geometry
// changed.
func (p *Path) segmentChanged(s *Segment) {
	if p.curves != nil {
		count := len(p.curves)
		i := s.index
		if i < count {
			p.curves[i].changed()
		}
		prev := i - 1
		if prev < 0 && p.closed {
			prev = count - 1
		}
		if prev >= 0 && prev < count {
			p.curves[prev].changed()
		}
	}
	p.changed(ChangeGeometry)
}

// changed clears the caches affected by flags and notifies the owner.
func (p *Path) changed(flags ChangeFlag) {
	if flags&ChangeStructure != 0 {
		for _, c := range p.curves {
			c.path = nil
		}
		p.curves = nil
		flags |= ChangeGeometry
	}
	if flags&ChangeGeometry != 0 {
		p.length.clear()
		p.clockwise.clear()
		p.bounds = [numBoundsKinds]boundsEntry{}
	} else if flags&ChangeStroke != 0 {
		p.bounds[StrokeBounds] = boundsEntry{}
		p.bounds[RoughBounds] = boundsEntry{}
	}
	if p.owner != nil {
		p.owner.ChildChanged(p, flags)
	}
}

// Length returns the sum of the lengths of the path's curves.
func (p *Path) Length() float64 {
	if !p.length.isSet {
		var l float64
		for _, c := range p.Curves() {
			l += c.Length()
		}
		p.length.set(l)
	}
	return p.length.value
}

// IsClockwise reports whether the path is oriented clockwise in a y-down
// space. The signed area is accumulated over the polygon formed by the
// anchors and the absolute control points of all curves, with an implicit
// closing curve for open paths.
func (p *Path) IsClockwise() bool {
	if p.clockwise.isSet {
		return p.clockwise.value
	}
	var acc edgeSum
	n := len(p.segments)
	for i, s1 := range p.segments {
		s2 := p.segments[(i+1)%n]
		acc.add(s1.point)
		acc.add(s1.point.Translate(s1.handleOut))
		acc.add(s2.point.Translate(s2.handleIn))
		acc.add(s2.point)
	}
	cw := acc.sum > 0
	p.clockwise.set(cw)
	return cw
}

// edgeSum accumulates twice the signed area of a polygon, one vertex at a
// time.
type edgeSum struct {
	prev    Point
	started bool
	sum     float64
}

func (e *edgeSum) add(pt Point) {
	if e.started {
		e.sum += (e.prev.X - pt.X) * (pt.Y + e.prev.Y)
	}
	e.prev = pt
	e.started = true
}

// SetClockwise reverses the path if its orientation differs from the
// requested one.
func (p *Path) SetClockwise(clockwise bool) {
	if p.IsClockwise() != clockwise {
		p.Reverse()
	}
}

// Area returns the signed area enclosed by the path, positive for
// clockwise paths in a y-down space. Open paths are treated as if closed
// by a straight line.
func (p *Path) Area() float64 {
	var area float64
	for _, c := range p.Curves() {
		area += c.Values().SignedArea()
	}
	if !p.closed && len(p.segments) > 1 {
		a := p.LastSegment().point
		b := p.FirstSegment().point
		area += Vec2(a).Cross(Vec2(b)) * 0.5
	}
	return area
}

// Reverse reverses the direction of the path.
func (p *Path) Reverse() {
	if len(p.segments) == 0 {
		return
	}
	slices.Reverse(p.segments)
	for i, s := range p.segments {
		s.index = i
		s.handleIn, s.handleOut = s.handleOut, s.handleIn
	}
	cw := p.clockwise
	p.changed(ChangeStructure)
	if cw.isSet {
		p.clockwise.set(!cw.value)
	}
}

// Transform applies aff to all segments of the path.
func (p *Path) Transform(aff Affine) {
	for _, s := range p.segments {
		s.point = s.point.Transform(aff)
		s.handleIn = s.handleIn.Transform(aff)
		s.handleOut = s.handleOut.Transform(aff)
	}
	for _, c := range p.curves {
		c.changed()
	}
	p.changed(ChangeGeometry)
}

// Clone returns a copy of the path and its segments, without owner and
// selection.
func (p *Path) Clone() *Path {
	segs := make([]*Segment, len(p.segments))
	for i, s := range p.segments {
		segs[i] = s.Clone()
	}
	q := NewPath(segs...)
	q.closed = p.closed
	q.stroke = p.stroke
	return q
}

// Join appends the segments of o to p, connecting them at coincident end
// points, reversing o if necessary. If the joined path ends where it
// starts, it is closed. The segments are removed from o.
func (p *Path) Join(o *Path) error {
	if o == p {
		return fmt.Errorf("join path with itself: %w", ErrForeignPath)
	}
	if len(o.segments) > 0 && len(p.segments) > 0 {
		last1 := p.LastSegment()
		if last1.point.IsClose(o.LastSegment().point, GeometricEpsilon) {
			o.Reverse()
		}
		first2 := o.FirstSegment()
		if last1.point.IsClose(first2.point, GeometricEpsilon) {
			last1.SetHandleOut(first2.handleOut)
			p.Add(o.segments[1:]...)
		} else {
			first1 := p.FirstSegment()
			if first1.point.IsClose(first2.point, GeometricEpsilon) {
				o.Reverse()
			}
			last2 := o.LastSegment()
			if first1.point.IsClose(last2.point, GeometricEpsilon) {
				first1.SetHandleIn(last2.handleIn)
				p.insert(0, o.segments[:len(o.segments)-1])
			} else {
				p.Add(o.segments...)
			}
		}
	} else {
		p.Add(o.segments...)
	}
	o.Clear()
	if len(p.segments) > 1 {
		first1, last1 := p.FirstSegment(), p.LastSegment()
		if last1.point.IsClose(first1.point, GeometricEpsilon) {
			first1.SetHandleIn(last1.handleIn)
			last1.Remove()
			p.SetClosed(true)
		}
	}
	return nil
}

// Split splits the path at parameter t of the curve at curveIndex. An open
// path keeps the part before the split and the part after it is returned
// as a new path. A closed path is opened at the split location and
// returned itself.
func (p *Path) Split(curveIndex int, t float64) (*Path, error) {
	if t >= 1 {
		curveIndex++
		t--
	}
	curves := p.Curves()
	if curveIndex < 0 || curveIndex >= len(curves) {
		return nil, fmt.Errorf("split at curve %d of %d: %w", curveIndex, len(curves), ErrIndexOutOfRange)
	}
	if t > 0 {
		curves[curveIndex].Divide(t)
		curveIndex++
	}
	segs, err := p.RemoveSegments(curveIndex, len(p.segments))
	if err != nil {
		return nil, err
	}
	var out *Path
	if p.closed {
		p.SetClosed(false)
		out = p
	} else {
		out = &Path{stroke: p.stroke}
	}
	out.insert(0, segs)
	p.Add(segs[0])
	return out, nil
}

// LocationAt returns the location at arc length offset from the start of
// the path.
func (p *Path) LocationAt(offset float64) (*CurveLocation, error) {
	if len(p.segments) == 0 {
		return nil, ErrEmptyPath
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset %g: %w", offset, ErrOffsetOutOfRange)
	}
	curves := p.Curves()
	var length float64
	for _, c := range curves {
		start := length
		length += c.Length()
		if length >= offset {
			t, ok := c.ParameterAt(offset-start, 0)
			if !ok {
				t = 1
			}
			return &CurveLocation{curve: c, t: t, point: c.PointAt(t)}, nil
		}
	}
	if len(curves) > 0 && offset <= p.Length()+GeometricEpsilon {
		c := curves[len(curves)-1]
		return &CurveLocation{curve: c, t: 1, point: c.Point2()}, nil
	}
	return nil, fmt.Errorf("offset %g beyond length %g: %w", offset, length, ErrOffsetOutOfRange)
}

// PointAt returns the point at arc length offset.
func (p *Path) PointAt(offset float64) (Point, error) {
	loc, err := p.LocationAt(offset)
	if err != nil {
		return Point{}, err
	}
	return loc.point, nil
}

// TangentAt returns the unit tangent at arc length offset.
func (p *Path) TangentAt(offset float64) (Vec2, error) {
	loc, err := p.LocationAt(offset)
	if err != nil {
		return Vec2{}, err
	}
	return loc.Tangent(), nil
}

// NormalAt returns the unit normal at arc length offset.
func (p *Path) NormalAt(offset float64) (Vec2, error) {
	loc, err := p.LocationAt(offset)
	if err != nil {
		return Vec2{}, err
	}
	return loc.Normal(), nil
}

// NearestLocation returns the location on the path nearest to pt.
func (p *Path) NearestLocation(pt Point) (*CurveLocation, error) {
	curves := p.Curves()
	if len(curves) == 0 {
		return nil, ErrEmptyPath
	}
	var best *CurveLocation
	for _, c := range curves {
		loc := c.NearestLocation(pt)
		if best == nil || loc.distance < best.distance {
			best = loc
		}
	}
	return best, nil
}

// NearestPoint returns the point on the path nearest to pt.
func (p *Path) NearestPoint(pt Point) (Point, error) {
	loc, err := p.NearestLocation(pt)
	if err != nil {
		return Point{}, err
	}
	return loc.point, nil
}

// Intersections returns the intersections of the curves of p with the
// curves of o, as locations on p. If o is p, self-intersections are
// returned, excluding the points shared by neighbouring curves.
func (p *Path) Intersections(o *Path) []*CurveLocation {
	var out []*CurveLocation
	c1s := p.Curves()
	c2s := o.Curves()
	self := o == p
	for i, c1 := range c1s {
		j0 := 0
		if self {
			j0 = i + 1
		}
		for j := j0; j < len(c2s); j++ {
			c2 := c2s[j]
			for _, loc := range c1.Intersections(c2) {
				if self && isJunction(len(c1s), p.closed, i, j, loc) {
					continue
				}
				out = append(out, loc)
			}
		}
	}
	return out
}

// isJunction reports whether loc is the shared endpoint of the
// neighbouring curves i and j of a path with n curves.
func isJunction(n int, closed bool, i, j int, loc *CurveLocation) bool {
	const eps = CurveTimeEpsilon
	t0, t1 := loc.t, loc.intersection.t
	if j == i+1 && t0 > 1-eps && t1 < eps {
		return true
	}
	if closed && i == 0 && j == n-1 && t0 < eps && t1 > 1-eps {
		return true
	}
	return false
}

// Contains reports whether pt lies inside the path, using the even-odd
// rule. Open paths are treated as if closed by a straight line.
func (p *Path) Contains(pt Point) bool {
	return p.winding(pt)%2 != 0
}

// winding returns the winding number of the path around pt.
func (p *Path) winding(pt Point) int {
	w := 0
	for _, c := range p.Curves() {
		w += windingOf(c.Values(), pt)
	}
	if !p.closed && len(p.segments) > 1 {
		a := p.LastSegment().point
		b := p.FirstSegment().point
		w += windingOf(CubicBez{a, a, b, b}, pt)
	}
	return w
}

// windingOf counts the signed crossings of c with the ray from pt towards
// positive x. Crossings at t = 1 are left to the following curve.
func windingOf(c CubicBez, pt Point) int {
	bb := c.BoundingBox()
	if pt.Y < bb.Y0 || pt.Y > bb.Y1 || pt.X > bb.X1 {
		return 0
	}
	c0, c1, c2, c3 := cubicBezCoefficients(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)
	roots, n := SolveCubicIn(c0-pt.Y, c1, c2, c3, 0, 1)
	w := 0
	for _, t := range roots[:n] {
		if t > 1-CurveTimeEpsilon {
			continue
		}
		if c.Eval(t).X <= pt.X {
			continue
		}
		dy := c.weightedTangent(t).Y
		switch {
		case dy > 0:
			w++
		case dy < 0:
			w--
		}
	}
	return w
}

// curveAfter returns the outgoing curve of the segment, or nil.
func (s *Segment) curveAfter() *Curve {
	if s.path == nil {
		return nil
	}
	curves := s.path.Curves()
	if s.index < len(curves) {
		return curves[s.index]
	}
	return nil
}
