package paper

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

// PathElement is one drawing command of a path. LineTo and MoveTo use P0;
// CubicTo uses P0 and P1 as control points and P2 as the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

// Elements returns the drawing commands for the path. Curves without
// handles are emitted as lines, except for a straight closing curve, which
// ClosePath implies.
func (p *Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(p.segments) == 0 {
			return
		}
		if !yield(PathElement{Kind: MoveToKind, P0: p.segments[0].point}) {
			return
		}
		curves := p.Curves()
		for i, c := range curves {
			// ClosePath draws a straight closing curve.
			if p.closed && i == len(curves)-1 && !c.HasHandles() {
				break
			}
			var el PathElement
			if c.HasHandles() {
				v := c.Values()
				el = PathElement{Kind: CubicToKind, P0: v.P1, P1: v.P2, P2: v.P3}
			} else {
				el = PathElement{Kind: LineToKind, P0: c.Point2()}
			}
			if !yield(el) {
				return
			}
		}
		if p.closed {
			yield(PathElement{Kind: ClosePathKind})
		}
	}
}

// Drawer receives drawing commands, for example to render a path.
type Drawer interface {
	MoveTo(pt Point)
	LineTo(pt Point)
	CubicTo(p1, p2, p3 Point)
	ClosePath()
}

// DrawElements sends els to d.
func DrawElements(d Drawer, els iter.Seq[PathElement]) {
	for el := range els {
		switch el.Kind {
		case MoveToKind:
			d.MoveTo(el.P0)
		case LineToKind:
			d.LineTo(el.P0)
		case CubicToKind:
			d.CubicTo(el.P0, el.P1, el.P2)
		case ClosePathKind:
			d.ClosePath()
		}
	}
}

// DrawPath sends the drawing commands of p to d.
func DrawPath(d Drawer, p *Path) {
	DrawElements(d, p.Elements())
}

// Float32Drawer is implemented by rasterizers with single precision
// coordinates, such as [golang.org/x/image/vector.Rasterizer].
type Float32Drawer interface {
	MoveTo(ax, ay float32)
	LineTo(bx, by float32)
	CubeTo(bx, by, cx, cy, dx, dy float32)
	ClosePath()
}

// Float32 returns a Drawer that forwards to d, transforming all points by
// aff first.
func Float32(d Float32Drawer, aff Affine) Drawer {
	return float32Drawer{d: d, aff: aff}
}

type float32Drawer struct {
	d   Float32Drawer
	aff Affine
}

func (fd float32Drawer) pt(p Point) (float32, float32) {
	p = p.Transform(fd.aff)
	return float32(p.X), float32(p.Y)
}

func (fd float32Drawer) MoveTo(p Point) { fd.d.MoveTo(fd.pt(p)) }
func (fd float32Drawer) LineTo(p Point) { fd.d.LineTo(fd.pt(p)) }
func (fd float32Drawer) ClosePath()     { fd.d.ClosePath() }

func (fd float32Drawer) CubicTo(p1, p2, p3 Point) {
	bx, by := fd.pt(p1)
	cx, cy := fd.pt(p2)
	dx, dy := fd.pt(p3)
	fd.d.CubeTo(bx, by, cx, cy, dx, dy)
}
