package paper

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(Rotate(0)), p, epsilon)
	assertNear(t, p.Transform(Rotate(math.Pi/2)), Pt(-4, 3), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, Pt(2, 1).Transform(RotateAbout(math.Pi/2, Pt(1, 1))), Pt(1, 2), epsilon)
	assertNear(t, Pt(2, 1).RotateAbout(math.Pi/2, Pt(1, 1)), Pt(1, 2), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(a2).Transform(a1), p.Transform(a1.Mul(a2)), epsilon)
	}
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	for _, p := range []Point{Pt(1, 0), Pt(0, 1), Pt(1, 1)} {
		assertNear(t, p.Transform(aInv).Transform(a), p, epsilon)
		assertNear(t, p.Transform(a).Transform(aInv), p, epsilon)
	}
}

func TestAffinePenExtent(t *testing.T) {
	px, py := Scale(2, 3).penExtent(1)
	assert.InDelta(t, 2.0, px, 1e-12)
	assert.InDelta(t, 3.0, py, 1e-12)

	// A rotated circle is still a circle.
	px, py = Rotate(0.3).penExtent(5)
	assert.InDelta(t, 5.0, px, 1e-12)
	assert.InDelta(t, 5.0, py, 1e-12)
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
	assert.True(t, p3.IsClose(p4, 5))
	assert.False(t, p3.IsClose(p4, 4.99))
}

func TestPointFixed(t *testing.T) {
	diff(t, fixed.Point26_6{X: 96, Y: -128}, Pt(1.5, -2).Fixed())
	diff(t, fixed.Point26_6{X: 1, Y: 0}, Pt(1.0/64, 0.001).Fixed())
}

func TestVec2(t *testing.T) {
	diff(t, Vec2{}, Vec2{}.Normalize())
	diff(t, Vec(0.6, 0.8), Vec(3, 4).Normalize(), approx(1e-15))
	diff(t, Vec(6, 8), Vec(3, 4).WithLength(10), approx(1e-12))
	diff(t, Vec(2, -1), Vec(1, 2).Perp())
	assert.InDelta(t, math.Pi/2, Vec(1, 0).DirectedAngle(Vec(0, 1)), 1e-15)
	assert.InDelta(t, -math.Pi/2, Vec(1, 0).DirectedAngle(Vec(0, -1)), 1e-15)
	assert.True(t, Vec(1e-13, -1e-13).IsZero())
	assert.False(t, Vec(1e-3, 0).IsZero())
	diff(t, Vec(2, 3), Vec(2, 3).Transform(Translate(Vec(10, 10))))
}

func TestRectContains(t *testing.T) {
	r := Rect{0, 0, 10, 5}
	for _, pt := range []Point{Pt(0, 0), Pt(10, 5), Pt(5, 0), Pt(10, 2)} {
		assert.True(t, r.Contains(pt), "%s", pt)
	}
	for _, pt := range []Point{Pt(-0.1, 0), Pt(10, 5.1), Pt(11, 2)} {
		assert.False(t, r.Contains(pt), "%s", pt)
	}
	assert.True(t, r.ContainsRect(Rect{1, 1, 10, 5}))
	assert.False(t, r.ContainsRect(Rect{1, 1, 11, 5}))
	assert.True(t, r.Overlaps(Rect{10, 5, 20, 20}, 0))
	assert.False(t, r.Overlaps(Rect{10.5, 5, 20, 20}, 0))
	assert.True(t, r.Overlaps(Rect{10.5, 5, 20, 20}, 1))
}

func TestRectTransform(t *testing.T) {
	r := Rect{0, 0, 1, 2}
	diff(t, Rect{0, 0, 2, 6}, r.Transform(Scale(2, 3)))
	diff(t, Rect{-2, 0, 0, 1}, r.Transform(Rotate(math.Pi/2)), approx(1e-12))
	diff(t, Rect{-1, -2, 1, 2}, NewRectFromCenter(Point{}, 2, 4))
}

func TestLineIntersect(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	ta, tb, ok := hLine.Intersect(vLine)
	if !ok {
		t.Fatal("expected intersection")
	}
	assert.InDelta(t, 0.1, ta, 1e-12)
	assert.InDelta(t, 0.5, tb, 1e-12)

	pt, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected crossing point")
	}
	assertNear(t, pt, Pt(10, 0), 1e-12)

	vLine2 := Line{Pt(200.0, -10.0), Pt(200.0, 10.0)}
	if _, _, ok := hLine.Intersect(vLine2); ok {
		t.Error("unexpected intersection beyond the segment")
	}
	if _, _, ok := hLine.Intersect(Line{Pt(0, 1), Pt(100, 1)}); ok {
		t.Error("unexpected intersection of parallel lines")
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	d, ts := l.Nearest(Pt(3, 4))
	assert.InDelta(t, 16.0, d, 1e-12)
	assert.InDelta(t, 0.3, ts, 1e-12)
	d, ts = l.Nearest(Pt(-3, 4))
	assert.InDelta(t, 25.0, d, 1e-12)
	assert.Equal(t, 0.0, ts)
	assert.InDelta(t, 4.0, l.SignedDistance(Pt(3, 4)), 1e-12)
}
