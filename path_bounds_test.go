package paper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrokeBoundsUnstroked(t *testing.T) {
	p := NewCirclePath(Pt(0, 0), 10)
	b, err := p.Bounds()
	require.NoError(t, err)
	sb, err := p.StrokeBounds()
	require.NoError(t, err)
	diff(t, b, sb)
}

func TestStrokeBoundsCaps(t *testing.T) {
	tests := []struct {
		cap  Cap
		want Rect
	}{
		{ButtCap, Rect{0, -1, 10, 1}},
		{SquareCap, Rect{-1, -1, 11, 1}},
		{RoundCap, Rect{-1, -1, 11, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			p := NewLinePath(Pt(0, 0), Pt(10, 0))
			p.SetStroke(DefaultStroke.WithWidth(2).WithCaps(tt.cap))
			b, err := p.StrokeBounds()
			require.NoError(t, err)
			diff(t, tt.want, b, approx(1e-12))
		})
	}
}

func TestStrokeBoundsJoins(t *testing.T) {
	for _, join := range []Join{MiterJoin, BevelJoin, RoundJoin} {
		t.Run(join.String(), func(t *testing.T) {
			p := square(0, 0, 10)
			p.SetStroke(DefaultStroke.WithWidth(2).WithJoin(join))
			b, err := p.StrokeBounds()
			require.NoError(t, err)
			diff(t, Rect{-1, -1, 11, 11}, b, approx(1e-12))

			// The outer side of the joins doesn't depend on the orientation.
			p.Reverse()
			b, err = p.StrokeBounds()
			require.NoError(t, err)
			diff(t, Rect{-1, -1, 11, 11}, b, approx(1e-12))
		})
	}
}

func TestStrokeBoundsMiterLimit(t *testing.T) {
	// The miter of the sharp corner at (10, 1) reaches about 10.05 past the
	// anchor.
	p := NewPathFromPoints(Pt(0, 0), Pt(10, 1), Pt(0, 2))
	p.SetStroke(DefaultStroke.WithWidth(2))
	b, err := p.StrokeBounds()
	require.NoError(t, err)
	assert.InDelta(t, 10+math.Sin(math.Atan2(1, 10)), b.X1, 1e-9)

	p.SetStroke(DefaultStroke.WithWidth(2).WithMiterLimit(20))
	b, err = p.StrokeBounds()
	require.NoError(t, err)
	assert.InDelta(t, 10+1/math.Sin(math.Atan2(1, 10)), b.X1, 1e-9)

	rough, err := p.RoughBounds()
	require.NoError(t, err)
	assert.True(t, rough.ContainsRect(b), "%s does not contain %s", rough, b)
}

func TestStrokeBoundsCircle(t *testing.T) {
	p := NewCirclePath(Pt(0, 0), 10)
	p.SetStroke(DefaultStroke.WithWidth(2))
	b, err := p.StrokeBounds()
	require.NoError(t, err)
	diff(t, Rect{-11, -11, 11, 11}, b, approx(1e-4))
}

func TestStrokeBoundsTransformed(t *testing.T) {
	p := NewLinePath(Pt(0, 0), Pt(10, 0))
	p.SetStroke(DefaultStroke.WithWidth(2))
	b, err := p.StrokeBoundsTransformed(Scale(2, 2))
	require.NoError(t, err)
	diff(t, Rect{0, -2, 20, 2}, b, approx(1e-12))

	b, err = p.StrokeBounds()
	require.NoError(t, err)
	diff(t, Rect{0, -1, 10, 1}, b, approx(1e-12))
}

func TestRoughBoundsContainStrokeBounds(t *testing.T) {
	paths := []*Path{
		square(0, 0, 10),
		NewCirclePath(Pt(3, 4), 5),
		NewStarPath(Pt(0, 0), 5, 10, 4),
		NewPath(
			NewSegment(Pt(0, 0), Vec2{}, Vec(5, -8)),
			NewSegment(Pt(10, 0), Vec(3, 3), Vec(0, 4)),
			Seg(Pt(12, 12)),
		),
	}
	strokes := []Stroke{
		DefaultStroke.WithWidth(3),
		DefaultStroke.WithWidth(3).WithJoin(RoundJoin).WithCaps(SquareCap),
		DefaultStroke.WithWidth(1).WithMiterLimit(4),
	}
	for i, p := range paths {
		for j, st := range strokes {
			p.SetStroke(st)
			sb, err := p.StrokeBounds()
			require.NoError(t, err)
			rb, err := p.RoughBounds()
			require.NoError(t, err)
			assert.True(t, rb.Inflate(1e-9, 1e-9).ContainsRect(sb), "path %d, stroke %d: %s does not contain %s", i, j, rb, sb)
		}
	}
}

func TestHandleBounds(t *testing.T) {
	p := NewPath(
		NewSegment(Pt(0, 0), Vec2{}, Vec(5, -5)),
		NewSegment(Pt(10, 0), Vec(0, 5), Vec2{}),
	)
	b, err := p.HandleBounds()
	require.NoError(t, err)
	diff(t, Rect{0, -5, 10, 5}, b)

	// The tight bounds stay inside the handle bounds.
	tight, err := p.Bounds()
	require.NoError(t, err)
	assert.True(t, b.ContainsRect(tight))
	assert.Less(t, tight.Y1-tight.Y0, 10.0)
}

func TestBoundsTransformedCache(t *testing.T) {
	p := square(0, 0, 10)
	b, err := p.BoundsTransformed(Scale(2, 2))
	require.NoError(t, err)
	diff(t, Rect{0, 0, 20, 20}, b)

	b, err = p.Bounds()
	require.NoError(t, err)
	diff(t, Rect{0, 0, 10, 10}, b)
	assert.Equal(t, Identity, p.bounds[Bounds].aff)

	s := 10 / math.Sqrt2
	b, err = p.BoundsTransformed(Rotate(math.Pi / 4))
	require.NoError(t, err)
	diff(t, Rect{-s, 0, s, 2 * s}, b, approx(1e-9))

	_, err = p.BoundsOf(HandleBounds, Translate(Vec(1, 1)))
	require.NoError(t, err)
	assert.True(t, p.bounds[HandleBounds].valid)
	p.Segments()[0].SetPoint(Pt(-1, -1))
	assert.False(t, p.bounds[HandleBounds].valid)
}
