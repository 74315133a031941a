package paper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segmentPoints(p *Path) []Point {
	pts := make([]Point, len(p.Segments()))
	for i, s := range p.Segments() {
		pts[i] = s.Point()
	}
	return pts
}

func TestDrawLines(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	require.NoError(t, p.LineBy(Vec(0, 10)))

	// A second MoveTo doesn't start a new subpath.
	p.MoveTo(Pt(50, 50))
	assert.Equal(t, 3, p.SegmentCount())

	p.LineTo(Pt(0, 0))
	p.ClosePath()
	assert.True(t, p.Closed())
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, segmentPoints(p))
}

func TestDrawRequiresCurrentPoint(t *testing.T) {
	p := &Path{}
	assert.ErrorIs(t, p.CubicCurveTo(Pt(1, 1), Pt(2, 2), Pt(3, 3)), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.QuadraticCurveTo(Pt(1, 1), Pt(2, 2)), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.CurveTo(Pt(1, 1), Pt(2, 2), 0.5), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.ArcTo(Pt(1, 1), true), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.ArcThrough(Pt(1, 1), Pt(2, 0)), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.LineBy(Vec(1, 1)), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.CurveBy(Vec(1, 1), Vec(2, 2), 0.5), ErrNoCurrentPoint)
	assert.ErrorIs(t, p.ArcBy(Vec(1, 1), Vec(2, 0)), ErrNoCurrentPoint)
	assert.True(t, p.IsEmpty())

	// LineTo starts a path by itself.
	p.LineTo(Pt(1, 1))
	assert.Equal(t, 1, p.SegmentCount())
}

func TestDrawCubicCurveTo(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.CubicCurveTo(Pt(1, 2), Pt(2, -2), Pt(3, 0)))
	diff(t, sCurve, p.FirstCurve().Values())
}

func TestDrawQuadraticCurveTo(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.QuadraticCurveTo(Pt(10, 10), Pt(20, 0)))
	diff(t, Vec(20.0/3, 20.0/3), p.FirstSegment().HandleOut(), approx(1e-12))
	diff(t, Vec(-20.0/3, 20.0/3), p.LastSegment().HandleIn(), approx(1e-12))

	// The quadratic curve at t = 0.5 is at a quarter of the way to its
	// control point.
	assertNear(t, p.FirstCurve().PointAt(0.5), Pt(10, 5), 1e-12)
}

func TestDrawCurveTo(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.CurveTo(Pt(10, 5), Pt(20, 0), 0.5))
	assertNear(t, p.FirstCurve().PointAt(0.5), Pt(10, 5), 1e-12)

	require.NoError(t, p.CurveBy(Vec(5, 5), Vec(10, 0), 0.25))
	c := p.LastCurve()
	diff(t, Pt(30, 0), c.Point2())
	assertNear(t, c.PointAt(0.25), Pt(25, 5), 1e-12)

	for _, ts := range []float64{0, 1} {
		err := p.CurveTo(Pt(40, 5), Pt(50, 0), ts)
		assert.ErrorIs(t, err, ErrCurveThroughParameter, "t = %g", ts)
	}
	assert.Equal(t, 3, p.SegmentCount())
}

func TestDrawArcThrough(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.ArcThrough(Pt(16, 8), Pt(20, 0)))
	require.Equal(t, 3, p.SegmentCount())
	diff(t, Pt(20, 0), p.LastSegment().Point())
	for _, s := range p.Segments() {
		assert.InDelta(t, 10.0, s.Point().Distance(Pt(10, 0)), 1e-9)
	}
	loc, err := p.NearestLocation(Pt(16, 8))
	require.NoError(t, err)
	assert.Less(t, loc.Distance(), 1e-2)

	// All points of the approximation are close to the circle.
	for _, c := range p.Curves() {
		for i := range 11 {
			pt := c.PointAt(float64(i) / 10)
			assert.InDelta(t, 10.0, pt.Distance(Pt(10, 0)), 10*3e-4)
		}
	}
}

func TestDrawArcTo(t *testing.T) {
	tests := []struct {
		clockwise bool
		through   Point
	}{
		{true, Pt(10, -10)},
		{false, Pt(10, 10)},
	}
	for _, tt := range tests {
		p := &Path{}
		p.MoveTo(Pt(0, 0))
		require.NoError(t, p.ArcTo(Pt(20, 0), tt.clockwise))
		require.Equal(t, 3, p.SegmentCount())
		assertNear(t, p.Segments()[1].Point(), tt.through, 1e-9)
		diff(t, Pt(20, 0), p.LastSegment().Point())
		assert.Equal(t, tt.clockwise, p.IsClockwise())
	}
}

func TestDrawArcBy(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(10, 10))
	require.NoError(t, p.ArcBy(Vec(10, 10), Vec(20, 0)))
	diff(t, Pt(30, 10), p.LastSegment().Point())
	assertNear(t, p.Segments()[1].Point(), Pt(20, 20), 1e-9)
}

func TestDrawArcCollinear(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	// Through a point between the end points, the arc is a line.
	require.NoError(t, p.ArcThrough(Pt(10, 0), Pt(20, 0)))
	require.Equal(t, 2, p.SegmentCount())
	assert.False(t, p.FirstCurve().HasHandles())

	err := p.ArcThrough(Pt(30, 0), Pt(25, 0))
	assert.ErrorIs(t, err, ErrArcCollinear)
	assert.Equal(t, 2, p.SegmentCount())
}

func TestDrawArcFullCircle(t *testing.T) {
	// Three quarters of the circle around (10, 0).
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.ArcThrough(Pt(10, -10), Pt(10, 10)))
	assert.Equal(t, 4, p.SegmentCount())
	for _, s := range p.Segments() {
		assert.InDelta(t, 10.0, s.Point().Distance(Pt(10, 0)), 1e-9)
	}
}

func TestClosePathMerge(t *testing.T) {
	p := &Path{}
	p.MoveTo(Pt(0, 0))
	require.NoError(t, p.CubicCurveTo(Pt(5, -5), Pt(10, -5), Pt(10, 0)))
	require.NoError(t, p.CubicCurveTo(Pt(10, 5), Pt(2, 5), Pt(0, 0)))
	p.ClosePath()
	require.Equal(t, 2, p.SegmentCount())
	diff(t, Vec(2, 5), p.FirstSegment().HandleIn())
	diff(t, Vec(5, -5), p.FirstSegment().HandleOut())

	// Without coincident ends, ClosePath only closes.
	q := NewPathFromPoints(Pt(0, 0), Pt(1, 0), Pt(1, 1))
	q.ClosePath()
	assert.Equal(t, 3, q.SegmentCount())
	assert.True(t, q.Closed())
}

func TestRectanglePath(t *testing.T) {
	p := NewRectanglePath(Rect{10, 5, 0, 0})
	diff(t, []Point{Pt(0, 5), Pt(0, 0), Pt(10, 0), Pt(10, 5)}, segmentPoints(p))
	assert.True(t, p.Closed())
	assert.True(t, p.IsClockwise())
	assert.InDelta(t, 50.0, p.Area(), 1e-9)
}

func TestRoundRectanglePath(t *testing.T) {
	p := NewRoundRectanglePath(Rect{0, 0, 20, 10}, 2, 2)
	assert.Equal(t, 8, p.SegmentCount())
	b, err := p.Bounds()
	require.NoError(t, err)
	diff(t, Rect{0, 0, 20, 10}, b, approx(1e-9))
	assert.InDelta(t, 2*(16+6)+2*math.Pi*2, p.Length(), 1e-2)
	assert.True(t, p.IsClockwise())

	// Radii are limited to half the size.
	p = NewRoundRectanglePath(Rect{0, 0, 10, 10}, 20, 20)
	b, err = p.Bounds()
	require.NoError(t, err)
	diff(t, Rect{0, 0, 10, 10}, b, approx(1e-9))
	assert.InDelta(t, math.Pi*10, p.Length(), 1e-2)

	assert.Equal(t, 4, NewRoundRectanglePath(Rect{0, 0, 10, 10}, 0, 0).SegmentCount())
}

func TestOvalPath(t *testing.T) {
	p := NewOvalPath(Rect{0, 0, 20, 10})
	assert.Equal(t, 4, p.SegmentCount())
	b, err := p.Bounds()
	require.NoError(t, err)
	diff(t, Rect{0, 0, 20, 10}, b, approx(1e-9))
	assert.True(t, p.IsClockwise())
	assert.True(t, p.Contains(Pt(10, 4)))
	assert.False(t, p.Contains(Pt(1, 1)))
}

func TestCirclePath(t *testing.T) {
	p := NewCirclePath(Pt(5, 5), 10)
	assert.InDelta(t, 2*math.Pi*10, p.Length(), 2e-2)
	for _, c := range p.Curves() {
		for i := range 11 {
			assert.InDelta(t, 10.0, c.PointAt(float64(i)/10).Distance(Pt(5, 5)), 3e-3)
		}
	}
}

func TestArcPath(t *testing.T) {
	p, err := NewArcPath(Pt(0, 0), Pt(10, -10), Pt(20, 0))
	require.NoError(t, err)
	assert.Equal(t, 3, p.SegmentCount())
	assert.False(t, p.Closed())
	b, err := p.Bounds()
	require.NoError(t, err)
	diff(t, Rect{0, -10, 20, 0}, b, approx(1e-9))

	_, err = NewArcPath(Pt(0, 0), Pt(30, 0), Pt(20, 0))
	assert.ErrorIs(t, err, ErrArcCollinear)
}

func TestRegularPolygonPath(t *testing.T) {
	p := NewRegularPolygonPath(Pt(0, 0), 3, 10)
	require.Equal(t, 3, p.SegmentCount())
	assert.True(t, p.Closed())
	for _, s := range p.Segments() {
		assert.InDelta(t, 10.0, s.Point().Distance(Pt(0, 0)), 1e-12)
	}
	// Triangles point upwards.
	assertNear(t, p.Segments()[1].Point(), Pt(0, -10), 1e-12)

	// Squares are axis aligned.
	p = NewRegularPolygonPath(Pt(0, 0), 4, 10)
	b, err := p.Bounds()
	require.NoError(t, err)
	s := 10 / math.Sqrt2
	diff(t, Rect{-s, -s, s, s}, b, approx(1e-12))

	assert.True(t, NewRegularPolygonPath(Pt(0, 0), 0, 10).IsEmpty())
}

func TestStarPath(t *testing.T) {
	p := NewStarPath(Pt(0, 0), 5, 10, 5)
	require.Equal(t, 10, p.SegmentCount())
	for i, s := range p.Segments() {
		want := 10.0
		if i%2 == 1 {
			want = 5
		}
		assert.InDelta(t, want, s.Point().Distance(Pt(0, 0)), 1e-12)
	}
	assertNear(t, p.FirstSegment().Point(), Pt(0, -10), 1e-12)
	assert.True(t, p.Contains(Pt(0, 0)))
}

func TestSmoothOpen(t *testing.T) {
	p := NewPathFromPoints(Pt(0, 0), Pt(10, 5), Pt(20, 0), Pt(30, 5))
	p.Smooth()
	diff(t, []Point{Pt(0, 0), Pt(10, 5), Pt(20, 0), Pt(30, 5)}, segmentPoints(p))
	segs := p.Segments()
	assert.True(t, segs[0].HandleIn().IsZero())
	assert.True(t, segs[3].HandleOut().IsZero())
	for _, s := range segs[1:3] {
		assert.False(t, s.HandleOut().IsZero())
		diff(t, s.HandleOut().Negate(), s.HandleIn(), approx(1e-9))
	}
}

func TestSmoothClosed(t *testing.T) {
	p := NewRegularPolygonPath(Pt(0, 0), 6, 10)
	p.Smooth()
	for i, s := range p.Segments() {
		assert.False(t, s.HandleOut().IsZero(), "segment %d", i)
		diff(t, s.HandleOut().Negate(), s.HandleIn(), approx(1e-9))
	}
	// The smoothed hexagon bulges out between its corners.
	for _, c := range p.Curves() {
		assert.Greater(t, c.PointAt(0.5).Distance(Pt(0, 0)), 10*math.Cos(math.Pi/6))
	}
}

func TestSmoothCollinear(t *testing.T) {
	p := NewPathFromPoints(Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0))
	p.Smooth()
	for i, c := range p.Curves() {
		assert.True(t, c.IsLinear(), "curve %d: %s", i, c)
	}
}

func TestSmoothTooFewSegments(t *testing.T) {
	p := NewPathFromPoints(Pt(0, 0), Pt(10, 5))
	p.Smooth()
	for _, s := range p.Segments() {
		assert.False(t, s.HasHandles())
	}
}
