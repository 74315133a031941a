package paper

import (
	"math"
	"slices"
)

// EvalKind selects the quantity computed by [CubicBez.Evaluate].
type EvalKind int

const (
	// EvalPoint evaluates the position on the curve.
	EvalPoint EvalKind = iota
	// EvalTangent evaluates the unit tangent.
	EvalTangent
	// EvalNormal evaluates the unit normal, which is the tangent rotated
	// to ⟨y, −x⟩.
	EvalNormal
)

func (k EvalKind) String() string {
	switch k {
	case EvalPoint:
		return "point"
	case EvalTangent:
		return "tangent"
	case EvalNormal:
		return "normal"
	default:
		return "EvalKind(?)"
	}
}

// CubicBez is the value vector of a cubic Bézier: its two endpoints and
// two absolute control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Values returns the 8 coordinates of the curve in the order x0, y0, …, x3,
// y3.
func (c CubicBez) Values() [8]float64 {
	return [8]float64{c.P0.X, c.P0.Y, c.P1.X, c.P1.Y, c.P2.X, c.P2.Y, c.P3.X, c.P3.Y}
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Evaluate computes the quantity selected by kind at parameter t. For
// [EvalPoint] the result is the position vector of the point.
//
// At the endpoints, a handle that coincides with its anchor makes the
// derivative vanish. In that case the direction towards the nearest distinct
// control point, or else towards the far endpoint, is used instead.
func (c CubicBez) Evaluate(t float64, kind EvalKind) Vec2 {
	switch kind {
	case EvalTangent:
		return c.Tangent(t)
	case EvalNormal:
		return c.Normal(t)
	default:
		return Vec2(c.Eval(t))
	}
}

// Derivative returns B′(t). No substitution is done for degenerate
// handles; see [CubicBez.Tangent] for that.
func (c CubicBez) Derivative(t float64) Vec2 {
	mt := 1 - t
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	return d01.Mul(3 * mt * mt).Add(d12.Mul(6 * mt * t)).Add(d23.Mul(3 * t * t))
}

func (c CubicBez) secondDerivative(t float64) Vec2 {
	d012 := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	d123 := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return d012.Mul(6 * (1 - t)).Add(d123.Mul(6 * t))
}

// weightedTangent is the derivative, with degenerate end handles replaced
// as described for [CubicBez.Evaluate].
func (c CubicBez) weightedTangent(t float64) Vec2 {
	const tMin = CurveTimeEpsilon
	switch {
	case t < tMin:
		if d := c.P1.Sub(c.P0).Mul(3); !d.IsZero() {
			return d
		}
		if d := c.P2.Sub(c.P0); !d.IsZero() {
			return d
		}
		return c.P3.Sub(c.P0)
	case t > 1-tMin:
		if d := c.P3.Sub(c.P2).Mul(3); !d.IsZero() {
			return d
		}
		if d := c.P3.Sub(c.P1); !d.IsZero() {
			return d
		}
		return c.P3.Sub(c.P0)
	default:
		return c.Derivative(t)
	}
}

// Tangent returns the unit tangent at t.
func (c CubicBez) Tangent(t float64) Vec2 {
	return c.weightedTangent(t).Normalize()
}

// Normal returns the unit normal at t.
func (c CubicBez) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp()
}

// Curvature returns the signed curvature at t, or 0 where the derivative
// vanishes.
func (c CubicBez) Curvature(t float64) float64 {
	d := c.Derivative(t)
	dd := c.secondDerivative(t)
	den := math.Pow(d.Hypot2(), 1.5)
	if den == 0 {
		return 0
	}
	return d.Cross(dd) / den
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	return c.SubdivideAt(0.5)
}

// SubdivideAt splits the cubic at t using de Casteljau's construction. The
// two halves meet at Eval(t).
func (c CubicBez) SubdivideAt(t float64) (CubicBez, CubicBez) {
	p3 := c.P0.Lerp(c.P1, t)
	p4 := c.P1.Lerp(c.P2, t)
	p5 := c.P2.Lerp(c.P3, t)
	p6 := p3.Lerp(p4, t)
	p7 := p4.Lerp(p5, t)
	p8 := p6.Lerp(p7, t)
	return CubicBez{c.P0, p3, p6, p8}, CubicBez{p8, p7, p5, c.P3}
}

// Part returns the portion of the curve between from and to. If from is
// greater than to, the returned curve runs backwards.
func (c CubicBez) Part(from, to float64) CubicBez {
	flip := from > to
	if flip {
		from, to = to, from
	}
	if from > 0 {
		_, c = c.SubdivideAt(from)
	}
	if to < 1 {
		c, _ = c.SubdivideAt((to - from) / (1 - from))
	}
	if flip {
		return c.Reverse()
	}
	return c
}

// Reverse returns the curve with its direction reversed.
func (c CubicBez) Reverse() CubicBez {
	return CubicBez{c.P3, c.P2, c.P1, c.P0}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// HasHandles reports whether either control point differs from its anchor.
func (c CubicBez) HasHandles() bool {
	return !c.P1.Sub(c.P0).IsZero() || !c.P2.Sub(c.P3).IsZero()
}

// IsStraight reports whether the curve is a straight line: either it has no
// handles, or both handles lie on the chord and do not reach beyond the
// opposite anchor.
func (c CubicBez) IsStraight() bool {
	h1 := c.P1.Sub(c.P0)
	h2 := c.P2.Sub(c.P3)
	if h1.IsZero() && h2.IsZero() {
		return true
	}
	v := c.P3.Sub(c.P0)
	if v.IsZero() {
		return false
	}
	l := Line{c.P0, c.P3}
	if math.Abs(l.SignedDistance(c.P1)) >= GeometricEpsilon ||
		math.Abs(l.SignedDistance(c.P2)) >= GeometricEpsilon {
		return false
	}
	div := v.Dot(v)
	s1 := v.Dot(h1) / div
	s2 := v.Dot(h2) / div
	return s1 >= 0 && s1 <= 1 && s2 <= 0 && s2 >= -1
}

// IsLinear reports whether the curve is a straight line traversed at
// constant speed, i.e. its handles are a third of the chord.
func (c CubicBez) IsLinear() bool {
	third := c.P3.Sub(c.P0).Div(3)
	return c.P1.IsClose(c.P0.Translate(third), GeometricEpsilon) &&
		c.P2.IsClose(c.P3.Translate(third.Negate()), GeometricEpsilon)
}

// BoundingBox returns the exact bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	return c.boundsPadded(0, 0)
}

// boundsPadded returns the bounding box of the curve, with interior
// extrema padded by px and py. The endpoints are not padded.
func (c CubicBez) boundsPadded(px, py float64) Rect {
	r := NewRectFromPoints(c.P0, c.P3)
	r.X0, r.X1 = addBounds(c.P0.X, c.P1.X, c.P2.X, c.P3.X, px, r.X0, r.X1)
	r.Y0, r.Y1 = addBounds(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, py, r.Y0, r.Y1)
	return r
}

// addBounds extends [lo, hi] by the interior extrema of a one-dimensional
// cubic with control values v0…v3. The extrema are the roots of the
// derivative.
func addBounds(v0, v1, v2, v3, padding, lo, hi float64) (float64, float64) {
	a := 3*(v1-v2) - v0 + v3
	b := 2*(v0+v2) - 4*v1
	c := v1 - v0
	roots, n := SolveQuadratic(c, b, a)
	const tMin = Tolerance
	const tMax = 1 - tMin
	for _, t := range roots[:n] {
		if tMin < t && t < tMax {
			u := 1 - t
			v := u*u*u*v0 + 3*u*u*t*v1 + 3*u*t*t*v2 + t*t*t*v3
			lo = min(lo, v-padding)
			hi = max(hi, v+padding)
		}
	}
	return lo, hi
}

// IsFlatEnough reports whether the curve deviates from its chord by less
// than tolerance.
//
// The bound used is the one by Roger Willcocks: with u = 3P1 − 2P0 − P3 and
// v = 3P2 − 2P3 − P0, the squared deviation is at most
// (max(ux², vx²) + max(uy², vy²)) / 16.
func (c CubicBez) IsFlatEnough(tolerance float64) bool {
	ux := 3*c.P1.X - 2*c.P0.X - c.P3.X
	uy := 3*c.P1.Y - 2*c.P0.Y - c.P3.Y
	vx := 3*c.P2.X - 2*c.P3.X - c.P0.X
	vy := 3*c.P2.Y - 2*c.P3.Y - c.P0.Y
	return max(ux*ux, vx*vx)+max(uy*uy, vy*vy) < 16*tolerance*tolerance
}

// lengthIntegrand returns the speed |B′(t)| of the curve.
func (c CubicBez) lengthIntegrand() func(float64) float64 {
	ax := 9*(c.P1.X-c.P2.X) + 3*(c.P3.X-c.P0.X)
	bx := 6*(c.P0.X+c.P2.X) - 12*c.P1.X
	cx := 3 * (c.P1.X - c.P0.X)
	ay := 9*(c.P1.Y-c.P2.Y) + 3*(c.P3.Y-c.P0.Y)
	by := 6*(c.P0.Y+c.P2.Y) - 12*c.P1.Y
	cy := 3 * (c.P1.Y - c.P0.Y)
	return func(t float64) float64 {
		dx := (ax*t+bx)*t + cx
		dy := (ay*t+by)*t + cy
		return math.Sqrt(dx*dx + dy*dy)
	}
}

// lengthIterations returns the quadrature order used for the interval
// [a, b].
func lengthIterations(a, b float64) int {
	return max(minGaussOrder, min(maxGaussOrder, int(math.Ceil(math.Abs(b-a)*32))))
}

// Length returns the arc length of the curve.
func (c CubicBez) Length() float64 {
	return c.PartLength(0, 1)
}

// PartLength returns the arc length between the parameters a and b.
func (c CubicBez) PartLength(a, b float64) float64 {
	if a == 0 && b == 1 && c.IsStraight() {
		return c.P3.Distance(c.P0)
	}
	return Integrate(c.lengthIntegrand(), a, b, lengthIterations(a, b))
}

// arclenCursor integrates the length incrementally from the last evaluated
// parameter, so that successive root finding steps reuse earlier work.
type arclenCursor struct {
	ds     func(float64) float64
	start  float64
	length float64
	offset float64
}

func (ac *arclenCursor) f(t float64) float64 {
	ac.length += Integrate(ac.ds, ac.start, t, lengthIterations(ac.start, t))
	ac.start = t
	return ac.length - ac.offset
}

// ParameterAt returns the parameter at which the arc length measured from
// start equals offset. Negative offsets are measured backwards from start.
// It reports false if the offset lies beyond the respective end of the
// curve.
func (c CubicBez) ParameterAt(offset, start float64) (float64, bool) {
	if offset == 0 {
		return start, true
	}
	forward := offset > 0
	a, b := 0.0, start
	if forward {
		a, b = start, 1
	}
	ds := c.lengthIntegrand()
	rangeLength := Integrate(ds, a, b, lengthIterations(a, b))
	diff := math.Abs(offset) - rangeLength
	if math.Abs(diff) < Epsilon {
		if forward {
			return b, true
		}
		return a, true
	} else if diff > Epsilon {
		return 0, false
	}
	guess := offset / rangeLength
	ac := arclenCursor{ds: ds, start: start, offset: offset}
	return FindRoot(ac.f, ds, start+guess, a, b, 32, Epsilon), true
}

// ParameterOf returns the parameter of pt if it lies on the curve, within
// [GeometricEpsilon].
func (c CubicBez) ParameterOf(pt Point) (float64, bool) {
	if pt.IsClose(c.P0, Epsilon) {
		return 0, true
	}
	if pt.IsClose(c.P3, Epsilon) {
		return 1, true
	}
	coords := [2][5]float64{
		{c.P0.X, c.P1.X, c.P2.X, c.P3.X, pt.X},
		{c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y, pt.Y},
	}
	for _, v := range coords {
		c0, c1, c2, c3 := cubicBezCoefficients(v[0], v[1], v[2], v[3])
		roots, n := SolveCubicIn(c0-v[4], c1, c2, c3, 0, 1)
		for _, t := range roots[:n] {
			if pt.IsClose(c.Eval(t), GeometricEpsilon) {
				return t, true
			}
		}
	}
	if pt.IsClose(c.P0, GeometricEpsilon) {
		return 0, true
	}
	if pt.IsClose(c.P3, GeometricEpsilon) {
		return 1, true
	}
	return 0, false
}

// cubicBezCoefficients returns the power basis coefficients c0 + c1 t + c2
// t² + c3 t³ of a one-dimensional cubic.
func cubicBezCoefficients(x0, x1, x2, x3 float64) (_, _, _, _ float64) {
	p0 := x0
	p1 := 3 * (x1 - x0)
	p2 := 3 * (x2 - 2*x1 + x0)
	p3 := x3 - 3*x2 + 3*x1 - x0
	return p0, p1, p2, p3
}

// SignedArea returns the signed area under the curve, using Green's
// theorem. Summed over the curves of a closed path, it yields the area
// enclosed by the path; positive for clockwise paths in a y-down space.
func (c CubicBez) SignedArea() float64 {
	v := c.P0.X*(6.0*c.P1.Y+3.0*c.P2.Y+c.P3.Y) +
		3.0*(c.P1.X*(-2.0*c.P0.Y+c.P2.Y+c.P3.Y)-c.P2.X*(c.P0.Y+c.P1.Y-2.0*c.P3.Y)) -
		c.P3.X*(c.P0.Y+3.0*c.P1.Y+6.0*c.P2.Y)
	return v * (1.0 / 20.0)
}

// CurveIntersection describes a point shared by two curves. T0 is the
// parameter on the receiver, T1 the parameter on the other curve.
type CurveIntersection struct {
	T0, T1 float64
	Point  Point
}

const (
	maxIntersectionDepth = 32
	intersectionFlatness = GeometricEpsilon * 10
	intersectionDedup    = GeometricEpsilon * 10
)

// intersector accumulates intersections found by recursive subdivision.
type intersector struct {
	c0, c1  CubicBez
	out     []CurveIntersection
	ceiling bool
}

// Intersections returns the points where c and o intersect, sorted by their
// parameter on c. Intersections closer than a small proximity epsilon are
// reported once. If the curves coincide over a range, only the ends of the
// common part are returned.
func (c CubicBez) Intersections(o CubicBez) []CurveIntersection {
	if !c.BoundingBox().Overlaps(o.BoundingBox(), GeometricEpsilon) {
		return nil
	}
	if ends, ok := c.overlap(o); ok {
		return ends
	}
	is := intersector{c0: c, c1: o}
	is.recurse(c, o, 0, 1, 0, 1, 0)
	if is.ceiling {
		Logger().Debug("curve intersection reached depth ceiling",
			"depth", maxIntersectionDepth, "found", len(is.out))
	}
	slices.SortFunc(is.out, func(a, b CurveIntersection) int {
		switch {
		case a.T0 < b.T0:
			return -1
		case a.T0 > b.T0:
			return 1
		default:
			return 0
		}
	})
	return is.out
}

func (is *intersector) recurse(v0, v1 CubicBez, t0, t1, u0, u1 float64, depth int) {
	if !v0.BoundingBox().Overlaps(v1.BoundingBox(), GeometricEpsilon) {
		return
	}
	flat := (v0.IsStraight() || v0.IsFlatEnough(intersectionFlatness)) &&
		(v1.IsStraight() || v1.IsFlatEnough(intersectionFlatness))
	if depth >= maxIntersectionDepth {
		is.ceiling = true
		flat = true
	}
	if flat {
		s, u, ok := Line{v0.P0, v0.P3}.Intersect(Line{v1.P0, v1.P3})
		if !ok {
			return
		}
		pt := v0.P0.Lerp(v0.P3, s)
		ta := refineParameter(is.c0, pt, t0+s*(t1-t0), t0, t1)
		tb := refineParameter(is.c1, pt, u0+u*(u1-u0), u0, u1)
		is.add(CurveIntersection{T0: ta, T1: tb, Point: pt})
		return
	}
	a0, a1 := v0.Subdivide()
	b0, b1 := v1.Subdivide()
	tm := (t0 + t1) / 2
	um := (u0 + u1) / 2
	is.recurse(a0, b0, t0, tm, u0, um, depth+1)
	is.recurse(a0, b1, t0, tm, um, u1, depth+1)
	is.recurse(a1, b0, tm, t1, u0, um, depth+1)
	is.recurse(a1, b1, tm, t1, um, u1, depth+1)
}

// overlap reports whether c and o coincide over a parameter range. It
// returns the two ends of the common part, sorted by their parameter on c.
func (c CubicBez) overlap(o CubicBez) ([]CurveIntersection, bool) {
	straight := c.IsStraight() && o.IsStraight()
	if straight {
		l := Line{c.P0, c.P3}
		if l.Length() == 0 ||
			math.Abs(l.SignedDistance(o.P0)) >= GeometricEpsilon ||
			math.Abs(l.SignedDistance(o.P3)) >= GeometricEpsilon {
			return nil, false
		}
	}
	var ends []CurveIntersection
	add := func(t, u float64, pt Point) {
		for _, e := range ends {
			if math.Abs(e.T0-t) < CurveTimeEpsilon {
				return
			}
		}
		ends = append(ends, CurveIntersection{T0: t, T1: u, Point: pt})
	}
	for i, pt := range [2]Point{c.P0, c.P3} {
		if u, ok := o.ParameterOf(pt); ok {
			add(float64(i), u, pt)
		}
	}
	for i, pt := range [2]Point{o.P0, o.P3} {
		if t, ok := c.ParameterOf(pt); ok {
			add(t, float64(i), pt)
		}
	}
	if len(ends) != 2 || math.Abs(ends[0].T1-ends[1].T1) < CurveTimeEpsilon {
		return nil, false
	}
	if !straight {
		a := c.Part(ends[0].T0, ends[1].T0)
		b := o.Part(ends[0].T1, ends[1].T1)
		if !a.P0.IsClose(b.P0, intersectionDedup) || !a.P1.IsClose(b.P1, intersectionDedup) ||
			!a.P2.IsClose(b.P2, intersectionDedup) || !a.P3.IsClose(b.P3, intersectionDedup) {
			return nil, false
		}
	}
	if ends[0].T0 > ends[1].T0 {
		ends[0], ends[1] = ends[1], ends[0]
	}
	return ends, true
}

func (is *intersector) add(x CurveIntersection) {
	for _, o := range is.out {
		if o.Point.IsClose(x.Point, intersectionDedup) {
			return
		}
	}
	is.out = append(is.out, x)
}

// refineParameter improves the estimate t of the parameter of the point on
// c nearest to pt, searching in [lo, hi].
func refineParameter(c CubicBez, pt Point, t, lo, hi float64) float64 {
	f := func(t float64) float64 {
		return c.Eval(t).Sub(pt).Dot(c.Derivative(t))
	}
	df := func(t float64) float64 {
		d := c.Derivative(t)
		return d.Hypot2() + c.Eval(t).Sub(pt).Dot(c.secondDerivative(t))
	}
	return FindRoot(f, df, t, lo, hi, 16, CurveTimeEpsilon)
}

const nearestMaxDepth = 64

// Nearest returns the squared distance and parameter of the point on the
// curve nearest to pt.
//
// The stationary points of the squared distance are the roots of
// (B(t) − pt)·B′(t), a polynomial of degree 5. It is converted to Bézier form
// and its roots are isolated by recursive subdivision, as in Philip J.
// Schneider's "Solving the Nearest-Point-On-Curve Problem" from Graphics
// Gems. The endpoints are always considered as candidates.
func (c CubicBez) Nearest(pt Point) (distSq, t float64) {
	rf := rootFinder{}
	rf.find(c.nearestBezierForm(pt), 0)
	if rf.ceiling {
		Logger().Debug("nearest point root isolation reached depth ceiling", "depth", nearestMaxDepth)
	}
	distSq = c.P0.DistanceSquared(pt)
	t = 0
	if d := c.P3.DistanceSquared(pt); d < distSq {
		distSq, t = d, 1
	}
	for _, r := range rf.roots {
		if d := c.Eval(r).DistanceSquared(pt); d < distSq {
			distSq, t = d, r
		}
	}
	return distSq, t
}

// nearestZ holds the products of binomial coefficients C(3,i)·C(2,j)/C(5,i+j),
// indexed by [j][i].
var nearestZ = [3][4]float64{
	{1.0, 0.6, 0.3, 0.1},
	{0.4, 0.6, 0.6, 0.4},
	{0.1, 0.3, 0.6, 1.0},
}

// nearestBezierForm returns the control points of (B(t) − pt)·B′(t) as a
// degree 5 Bézier, with x as the parameter and y as the value.
func (c CubicBez) nearestBezierForm(pt Point) [6]Point {
	v := [4]Point{c.P0, c.P1, c.P2, c.P3}
	var cv [4]Vec2
	for i := range cv {
		cv[i] = v[i].Sub(pt)
	}
	var d [3]Vec2
	for i := range d {
		d[i] = v[i+1].Sub(v[i]).Mul(3)
	}
	var w [6]Point
	for i := range w {
		w[i].X = float64(i) / 5
	}
	for k := 0; k <= 5; k++ {
		lb := max(0, k-2)
		ub := min(k, 3)
		for i := lb; i <= ub; i++ {
			j := k - i
			w[k].Y += d[j].Dot(cv[i]) * nearestZ[j][i]
		}
	}
	return w
}

// rootFinder collects the roots of a degree 5 Bézier function.
type rootFinder struct {
	roots   []float64
	ceiling bool
}

func (rf *rootFinder) find(w [6]Point, depth int) {
	switch crossings(w) {
	case 0:
		return
	case 1:
		if depth >= nearestMaxDepth {
			rf.ceiling = true
			rf.roots = append(rf.roots, (w[0].X+w[5].X)/2)
			return
		}
		if controlPolygonFlat(w) {
			rf.roots = append(rf.roots, xIntercept(w))
			return
		}
	default:
		if depth >= nearestMaxDepth {
			rf.ceiling = true
			rf.roots = append(rf.roots, (w[0].X+w[5].X)/2)
			return
		}
	}
	left, right := subdivideBezier5(w)
	rf.find(left, depth+1)
	rf.find(right, depth+1)
}

// crossings counts the sign changes of the control polygon's values.
func crossings(w [6]Point) int {
	n := 0
	sign := math.Signbit(w[0].Y)
	for _, p := range w[1:] {
		s := math.Signbit(p.Y)
		if s != sign {
			n++
		}
		sign = s
	}
	return n
}

// controlPolygonFlat reports whether the control polygon is flat enough
// that its chord's x-intercept approximates the root within [Epsilon].
func controlPolygonFlat(w [6]Point) bool {
	a := w[0].Y - w[5].Y
	b := w[5].X - w[0].X
	c := w[0].X*w[5].Y - w[5].X*w[0].Y
	if a == 0 {
		return false
	}
	var above, below float64
	for _, p := range w[1:5] {
		d := a*p.X + b*p.Y + c
		above = max(above, d)
		below = min(below, d)
	}
	return 0.5*math.Abs(above-below)/math.Abs(a) < Epsilon
}

func xIntercept(w [6]Point) float64 {
	dx := w[5].X - w[0].X
	dy := w[5].Y - w[0].Y
	if dy == 0 {
		return (w[0].X + w[5].X) / 2
	}
	return w[0].X - w[0].Y*dx/dy
}

// subdivideBezier5 splits a degree 5 Bézier at its midpoint.
func subdivideBezier5(w [6]Point) (left, right [6]Point) {
	tmp := w
	left[0] = tmp[0]
	right[5] = tmp[5]
	for i := 1; i <= 5; i++ {
		for j := 0; j <= 5-i; j++ {
			tmp[j] = tmp[j].Midpoint(tmp[j+1])
		}
		left[i] = tmp[0]
		right[5-i] = tmp[5-i]
	}
	return left, right
}
