package paper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quarterCirclePath(r float64) *Path {
	c := quarterCircle(r)
	return NewPath(
		NewSegment(c.P0, Vec2{}, c.P1.Sub(c.P0)),
		NewSegment(c.P3, c.P2.Sub(c.P3), Vec2{}),
	)
}

func TestFlattenerTolerance(t *testing.T) {
	p := quarterCirclePath(100)
	prev := 0
	var counts []int
	for _, tol := range []float64{1, 0.5, 0.1, 0.01, 0.001} {
		n := len(NewPathFlattener(p, tol).parts)
		assert.GreaterOrEqual(t, n, prev, "tolerance %g", tol)
		// Subdivision stops at 1/32 of the parameter range.
		assert.LessOrEqual(t, n, 32, "tolerance %g", tol)
		counts = append(counts, n)
		prev = n
	}
	assert.Greater(t, counts[len(counts)-1], counts[0])
}

func TestFlattenerLength(t *testing.T) {
	p := quarterCirclePath(100)
	f := NewPathFlattener(p, 0.01)
	// The polyline is shorter than the curve, but not by much.
	assert.Less(t, f.Length(), p.Length())
	assert.InDelta(t, p.Length(), f.Length(), 0.1)

	f = NewPathFlattener(square(0, 0, 10), 0)
	assert.Equal(t, 40.0, f.Length())
}

func TestFlattenerPointAt(t *testing.T) {
	p := quarterCirclePath(100)
	f := NewPathFlattener(p, 0.1)
	assertNear(t, f.PointAt(0), Pt(100, 0), 1e-12)
	assertNear(t, f.PointAt(f.Length()), Pt(0, 100), 1e-9)
	assertNear(t, f.PointAt(f.Length()+10), Pt(0, 100), 1e-9)

	for i := range 11 {
		pt := f.PointAt(f.Length() * float64(i) / 10)
		assert.InDelta(t, 100.0, pt.Distance(Pt(0, 0)), 0.05)
	}

	tan := f.Evaluate(0, EvalTangent)
	diff(t, Vec(0, 1), tan, approx(1e-12))
}

func TestFlattenerCursor(t *testing.T) {
	p := NewCirclePath(Pt(0, 0), 50)
	var offsets []float64
	length := NewPathFlattener(p, 0.5).Length()
	for i := range 21 {
		offsets = append(offsets, length*float64(i)/20)
	}

	// Lookups give the same results regardless of the cursor position.
	f := NewPathFlattener(p, 0.5)
	for _, off := range offsets {
		want := NewPathFlattener(p, 0.5).PointAt(off)
		diff(t, want, f.PointAt(off))
	}
	for i := len(offsets) - 1; i >= 0; i-- {
		want := NewPathFlattener(p, 0.5).PointAt(offsets[i])
		diff(t, want, f.PointAt(offsets[i]))
	}
	// Jump around.
	for _, i := range []int{3, 17, 0, 20, 9, 10, 2} {
		want := NewPathFlattener(p, 0.5).PointAt(offsets[i])
		diff(t, want, f.PointAt(offsets[i]))
	}
}

func TestFlattenerParameterAt(t *testing.T) {
	f := NewPathFlattener(square(0, 0, 10), 0)
	// Each side is a single chord.
	assert.Len(t, f.parts, 4)
	tests := []struct {
		offset float64
		curve  int
		pt     Point
	}{
		{-5, 0, Pt(0, 0)},
		{0, 0, Pt(0, 0)},
		{5, 0, Pt(5, 0)},
		{10, 0, Pt(10, 0)},
		{15, 1, Pt(10, 5)},
		{37.5, 3, Pt(2.5, 10)},
		{50, 3, Pt(0, 0)},
	}
	for _, tt := range tests {
		curve, ts := f.ParameterAt(tt.offset)
		assert.Equal(t, tt.curve, curve, "offset %g", tt.offset)
		assert.GreaterOrEqual(t, ts, 0.0, "offset %g", tt.offset)
		assert.LessOrEqual(t, ts, 1.0, "offset %g", tt.offset)
		diff(t, tt.pt, f.curves[curve].Eval(ts), approx(1e-9))
	}

	// The handles of the square's sides are zero, so the parameter is not
	// proportional to the distance.
	_, ts := f.ParameterAt(37.5)
	assert.InDelta(t, 0.6736481776669302, ts, 1e-9)

	// Before the start.
	curve, ts := f.ParameterAt(-1)
	assert.Equal(t, 0, curve)
	assert.Equal(t, 0.0, ts)
}

func TestFlattenerNegativeOffset(t *testing.T) {
	f := NewPathFlattener(quarterCirclePath(100), 0.1)
	curve, ts := f.ParameterAt(-10)
	assert.Equal(t, 0, curve)
	assert.Equal(t, 0.0, ts)
	diff(t, Pt(100, 0), f.PointAt(-10))
}

type pointDrawer struct {
	moves []Point
	ends  []Point
}

func (d *pointDrawer) MoveTo(pt Point)        { d.moves = append(d.moves, pt) }
func (d *pointDrawer) LineTo(pt Point)        { d.ends = append(d.ends, pt) }
func (d *pointDrawer) CubicTo(_, _, pt Point) { d.ends = append(d.ends, pt) }
func (d *pointDrawer) ClosePath()             {}

func TestFlattenerDrawPart(t *testing.T) {
	f := NewPathFlattener(square(0, 0, 10), 0)
	var d pointDrawer
	f.DrawPart(&d, 5, 15)
	diff(t, []Point{Pt(5, 0)}, d.moves, approx(1e-9))
	diff(t, []Point{Pt(10, 0), Pt(10, 5)}, d.ends, approx(1e-9))

	// Within a single curve, a single piece is drawn.
	d = pointDrawer{}
	f.DrawPart(&d, 12, 18)
	diff(t, []Point{Pt(10, 2)}, d.moves, approx(1e-9))
	diff(t, []Point{Pt(10, 8)}, d.ends, approx(1e-9))
}

func TestFlattenerPoints(t *testing.T) {
	f := NewPathFlattener(square(0, 0, 10), 0)
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, f.Points())

	open := NewPathFromPoints(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	diff(t, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}, NewPathFlattener(open, 0).Points())

	assert.Empty(t, NewPathFlattener(&Path{}, 0).Points())
}

func TestPathFlatten(t *testing.T) {
	p := NewCirclePath(Pt(0, 0), 10)
	n := int(math.Ceil(NewPathFlattener(p, DefaultFlatness).Length()))
	require.NoError(t, p.Flatten(1))
	assert.Equal(t, n, p.SegmentCount())
	assert.True(t, p.Closed())
	segs := p.Segments()
	for i, s := range segs {
		assert.False(t, s.HasHandles())
		assert.InDelta(t, 10.0, s.Point().Distance(Pt(0, 0)), 0.1)
		next := segs[(i+1)%len(segs)]
		assert.LessOrEqual(t, s.Point().Distance(next.Point()), 1.05)
	}
}

func TestPathFlattenOpen(t *testing.T) {
	// With handles at a third of the chord, the parameter is proportional
	// to the arc length.
	p := NewPath(
		NewSegment(Pt(0, 0), Vec2{}, Vec(10, 0)),
		NewSegment(Pt(30, 0), Vec(-10, 0), Vec2{}),
	)
	require.NoError(t, p.Flatten(10))
	want := []Point{Pt(0, 0), Pt(10, 0), Pt(20, 0), Pt(30, 0)}
	got := segmentPoints(p)
	diff(t, want, got, approx(1e-9))
}

func TestPathFlattenErrors(t *testing.T) {
	assert.ErrorIs(t, (&Path{}).Flatten(1), ErrEmptyPath)
	assert.ErrorIs(t, square(0, 0, 1).Flatten(0), ErrInvalidTolerance)
	assert.ErrorIs(t, square(0, 0, 1).Flatten(math.NaN()), ErrInvalidTolerance)

	p := NewPathFromPoints(Pt(1, 1), Pt(1, 1))
	require.NoError(t, p.Flatten(1))
	assert.Equal(t, 1, p.SegmentCount())
}
