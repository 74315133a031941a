package paper

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// approx compares floats, and structs of floats, with an absolute margin.
func approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

func square(x0, y0, size float64) *Path {
	p := NewPathFromPoints(
		Pt(x0, y0),
		Pt(x0+size, y0),
		Pt(x0+size, y0+size),
		Pt(x0, y0+size),
	)
	p.SetClosed(true)
	return p
}
