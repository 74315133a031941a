package paper

import (
	"fmt"
	"math"
	"slices"
)

// DefaultSimplifyTolerance is the tolerance used by [Path.Simplify] when a
// non-positive tolerance is passed.
const DefaultSimplifyTolerance = 2.5

// maxFitIterations caps the reparameterization rounds per fitted curve.
const maxFitIterations = 4

// PathFitter fits a sequence of cubic Bézier curves to a sequence of
// points, using the algorithm described by Philip J. Schneider in "An
// Algorithm for Automatically Fitting Digitized Curves" (Graphics Gems,
// 1990). Curves are split at the point of maximum deviation until every
// point lies within the tolerance of the fitted curves.
type PathFitter struct {
	points []Point
	closed bool
}

// NewPathFitter returns a fitter for points. Consecutive duplicate points
// are dropped. If closed is set, the fitted curves also connect the last
// point back to the first one, which then joins its neighbours smoothly.
func NewPathFitter(points []Point, closed bool) *PathFitter {
	pts := make([]Point, 0, len(points)+2)
	for i, pt := range points {
		if i == 0 || pt != pts[len(pts)-1] {
			pts = append(pts, pt)
		}
	}
	if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	return &PathFitter{points: pts, closed: closed}
}

// Fit computes the segments of the fitted path. No input point deviates
// from the fitted curves by more than tolerance.
func (pf *PathFitter) Fit(tolerance float64) ([]*Segment, error) {
	if !(tolerance > 0) {
		return nil, fmt.Errorf("fit with tolerance %g: %w", tolerance, ErrInvalidTolerance)
	}
	pts := pf.points
	if len(pts) < 2 {
		return nil, fmt.Errorf("fit %d points: %w", len(pts), ErrTooFewPoints)
	}
	n := len(pts)
	tan1 := pts[1].Sub(pts[0]).Normalize()
	tan2 := pts[n-2].Sub(pts[n-1]).Normalize()
	if pf.closed {
		// Fit the loop back to the first point, with a common tangent on
		// both sides of the seam.
		if t := pts[1].Sub(pts[n-1]).Normalize(); !t.IsZero() {
			tan1 = t
		}
		tan2 = tan1.Negate()
		pts = append(slices.Clone(pts), pts[0])
	}
	f := fitter{
		points:   pts,
		errSq:    tolerance * tolerance,
		segments: []*Segment{Seg(pts[0])},
	}
	f.fitCubic(0, len(pts)-1, tan1, tan2)
	segs := f.segments
	if pf.closed {
		end := segs[len(segs)-1]
		segs[0].handleIn = end.handleIn
		segs = segs[:len(segs)-1]
	}
	return segs, nil
}

// fitter holds the state of a single Fit call.
type fitter struct {
	points   []Point
	errSq    float64
	segments []*Segment
}

func (f *fitter) fitCubic(first, last int, tan1, tan2 Vec2) {
	pts := f.points
	if last-first == 1 {
		pt1, pt2 := pts[first], pts[last]
		dist := pt1.Distance(pt2) / 3
		f.addCurve(CubicBez{pt1, pt1.Translate(tan1.Mul(dist)), pt2.Translate(tan2.Mul(dist)), pt2})
		return
	}
	u := f.chordLengthParameterize(first, last)
	prevErr := 4 * f.errSq
	split := first + (last-first)/2
	for range maxFitIterations {
		c := f.generateBezier(first, last, u, tan1, tan2)
		maxErr, index := f.findMaxError(first, last, c, u)
		if maxErr < f.errSq {
			f.addCurve(c)
			return
		}
		split = index
		if maxErr >= prevErr {
			break
		}
		if !f.reparameterize(first, last, u, c) {
			break
		}
		prevErr = maxErr
	}
	center := pts[split-1].Sub(pts[split+1]).Normalize()
	f.fitCubic(first, split, tan1, center)
	f.fitCubic(split, last, center.Negate(), tan2)
}

func (f *fitter) addCurve(c CubicBez) {
	prev := f.segments[len(f.segments)-1]
	if c.IsLinear() {
		f.segments = append(f.segments, Seg(c.P3))
		return
	}
	prev.handleOut = c.P1.Sub(c.P0)
	f.segments = append(f.segments, NewSegment(c.P3, c.P2.Sub(c.P3), Vec2{}))
}

// generateBezier finds the handle lengths along tan1 and tan2 that
// minimize the squared distances of the points to the curve at their
// parameters u.
func (f *fitter) generateBezier(first, last int, u []float64, tan1, tan2 Vec2) CubicBez {
	pts := f.points
	pt1, pt2 := pts[first], pts[last]
	var c00, c01, c11, x0, x1 float64
	for i := range last - first + 1 {
		ui := u[i]
		t := 1 - ui
		b := 3 * ui * t
		b0 := t * t * t
		b1 := b * t
		b2 := b * ui
		b3 := ui * ui * ui
		a1 := tan1.Mul(b1)
		a2 := tan2.Mul(b2)
		tmp := Vec2(pts[first+i]).Sub(Vec2(pt1).Mul(b0 + b1)).Sub(Vec2(pt2).Mul(b2 + b3))
		c00 += a1.Dot(a1)
		c01 += a1.Dot(a2)
		c11 += a2.Dot(a2)
		x0 += a1.Dot(tmp)
		x1 += a2.Dot(tmp)
	}

	segLength := pt1.Distance(pt2)
	var alpha1, alpha2 float64
	if det := c00*c11 - c01*c01; math.Abs(det) > Epsilon {
		alpha1 = (x0*c11 - x1*c01) / det
		alpha2 = (c00*x1 - c01*x0) / det
	} else {
		Logger().Debug("fit: singular least squares system", "first", first, "last", last)
		c0 := c00 + c01
		c1 := c01 + c11
		switch {
		case math.Abs(c0) > Epsilon:
			alpha1 = x0 / c0
			alpha2 = alpha1
		case math.Abs(c1) > Epsilon:
			alpha1 = x1 / c1
			alpha2 = alpha1
		}
	}
	// Handles must point along the tangents. Otherwise fall back to a third
	// of the chord and let fitCubic subdivide.
	if eps := Epsilon * segLength; alpha1 < eps || alpha2 < eps {
		alpha1 = segLength / 3
		alpha2 = alpha1
	}
	return CubicBez{pt1, pt1.Translate(tan1.Mul(alpha1)), pt2.Translate(tan2.Mul(alpha2)), pt2}
}

// reparameterize improves u by one Newton step per point. It reports
// whether the parameters are still in increasing order.
func (f *fitter) reparameterize(first, last int, u []float64, c CubicBez) bool {
	for i := first; i <= last; i++ {
		u[i-first] = f.findRoot(c, f.points[i], u[i-first])
	}
	for i := 1; i < len(u); i++ {
		if u[i] <= u[i-1] {
			return false
		}
	}
	return true
}

// findRoot performs one Newton step towards the parameter of the point on
// c nearest to pt.
func (f *fitter) findRoot(c CubicBez, pt Point, u float64) float64 {
	d0 := c.Eval(u).Sub(pt)
	d1 := c.Derivative(u)
	d2 := c.secondDerivative(u)
	den := d1.Dot(d1) + d0.Dot(d2)
	if IsZero(den) {
		return u
	}
	return u - d0.Dot(d1)/den
}

func (f *fitter) chordLengthParameterize(first, last int) []float64 {
	u := make([]float64, last-first+1)
	for i := first + 1; i <= last; i++ {
		u[i-first] = u[i-first-1] + f.points[i].Distance(f.points[i-1])
	}
	for i, m := 1, last-first; i <= m; i++ {
		u[i] /= u[m]
	}
	return u
}

// findMaxError returns the maximum squared distance of the interior
// points to c, and the index of the point where it occurs.
func (f *fitter) findMaxError(first, last int, c CubicBez, u []float64) (float64, int) {
	index := first + (last-first+1)/2
	maxDist := 0.0
	for i := first + 1; i < last; i++ {
		dist := c.Eval(u[i-first]).DistanceSquared(f.points[i])
		if dist >= maxDist {
			maxDist = dist
			index = i
		}
	}
	return maxDist, index
}

// Simplify replaces the segments of the path by fewer segments with
// handles, fitted to the anchors of the path with the given tolerance.
// Paths with at most two segments are left unchanged.
func (p *Path) Simplify(tolerance float64) error {
	if tolerance <= 0 {
		tolerance = DefaultSimplifyTolerance
	}
	if len(p.segments) <= 2 {
		return nil
	}
	pts := make([]Point, len(p.segments))
	for i, s := range p.segments {
		pts[i] = s.point
	}
	segs, err := NewPathFitter(pts, p.closed).Fit(tolerance)
	if err != nil {
		return err
	}
	p.SetSegments(segs...)
	return nil
}
