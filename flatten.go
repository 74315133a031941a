package paper

import (
	"fmt"
	"math"
)

// DefaultFlatness is the flattening tolerance used when a non-positive
// tolerance is passed to [NewPathFlattener].
const DefaultFlatness = 0.25

// flatPart is one chord of a flattened curve. offset is the cumulative arc
// length at the end of the chord, t the curve parameter there. A straight
// curve is a single chord spanning the whole curve.
type flatPart struct {
	offset   float64
	t        float64
	curve    int
	straight bool
}

// PathFlattener approximates a path by a polyline and maps arc length
// offsets to curve parameters using the polyline's cumulative lengths.
// Lookups are fastest for increasing offsets, as when dashing a stroke.
//
// A PathFlattener is a snapshot; it does not track later changes of the
// path. It is not safe for concurrent use.
type PathFlattener struct {
	curves []CubicBez
	parts  []flatPart
	length float64
	index  int
	closed bool
}

// NewPathFlattener flattens p. Each curve is subdivided until its pieces
// deviate from their chords by less than tolerance, or until the pieces
// span 1/32 of the curve's parameter range.
func NewPathFlattener(p *Path, tolerance float64) *PathFlattener {
	if tolerance <= 0 {
		tolerance = DefaultFlatness
	}
	curves := p.Curves()
	f := &PathFlattener{
		curves: make([]CubicBez, len(curves)),
		closed: p.closed,
	}
	for i, c := range curves {
		v := c.Values()
		f.curves[i] = v
		if v.IsStraight() {
			if dist := v.P0.Distance(v.P3); dist > Tolerance {
				f.length += dist
				f.parts = append(f.parts, flatPart{offset: f.length, t: 1, curve: i, straight: true})
			}
			continue
		}
		f.computeParts(v, i, 0, 1, tolerance)
	}
	return f
}

func (f *PathFlattener) computeParts(c CubicBez, index int, minT, maxT, tolerance float64) {
	if maxT-minT > 1.0/32 && !c.IsFlatEnough(tolerance) {
		left, right := c.Subdivide()
		halfT := (minT + maxT) / 2
		f.computeParts(left, index, minT, halfT, tolerance)
		f.computeParts(right, index, halfT, maxT, tolerance)
		return
	}
	if dist := c.P0.Distance(c.P3); dist > Tolerance {
		f.length += dist
		f.parts = append(f.parts, flatPart{offset: f.length, t: maxT, curve: index})
	}
}

// Length returns the length of the polyline, which approximates the
// path's arc length from below.
func (f *PathFlattener) Length() float64 { return f.length }

// ParameterAt returns the curve index and curve parameter at offset along
// the polyline. The parameter is interpolated linearly within a chord, except
// on straight curves, where it is found by arc length. Offsets are clamped
// to the polyline.
func (f *PathFlattener) ParameterAt(offset float64) (curve int, t float64) {
	if len(f.parts) == 0 {
		return 0, 0
	}
	offset = max(offset, 0)
	// Search backwards for a start position that precedes offset.
	i, j := f.index, f.index
	for {
		i = j
		if j == 0 {
			break
		}
		j--
		if f.parts[j].offset < offset {
			break
		}
	}
	for ; i < len(f.parts); i++ {
		part := f.parts[i]
		if part.offset < offset {
			continue
		}
		f.index = i
		var prevT, prevLen float64
		if part.straight {
			if i > 0 {
				prevLen = f.parts[i-1].offset
			}
			return part.curve, straightParameter(f.curves[part.curve], offset-prevLen)
		}
		if i > 0 {
			prev := f.parts[i-1]
			prevLen = prev.offset
			if prev.curve == part.curve {
				prevT = prev.t
			}
		}
		return part.curve, prevT + (part.t-prevT)*(offset-prevLen)/(part.offset-prevLen)
	}
	return f.parts[len(f.parts)-1].curve, 1
}

// straightParameter returns the parameter at which the straight curve c has
// covered the distance offset from its start.
func straightParameter(c CubicBez, offset float64) float64 {
	length := c.P0.Distance(c.P3)
	switch {
	case offset <= 0:
		return 0
	case offset >= length:
		return 1
	}
	if c.IsLinear() {
		return offset / length
	}
	t, ok := c.ParameterAt(offset, 0)
	if !ok {
		return 1
	}
	return t
}

// Evaluate evaluates the curve at offset along the polyline.
func (f *PathFlattener) Evaluate(offset float64, kind EvalKind) Vec2 {
	if len(f.curves) == 0 {
		return Vec2{}
	}
	i, t := f.ParameterAt(offset)
	return f.curves[i].Evaluate(t, kind)
}

// PointAt returns the point on the path at offset along the polyline.
func (f *PathFlattener) PointAt(offset float64) Point {
	return Point(f.Evaluate(offset, EvalPoint))
}

// DrawPart draws the portion of the path between the offsets from and to,
// using the fewest possible cubic pieces.
func (f *PathFlattener) DrawPart(d Drawer, from, to float64) {
	if len(f.parts) == 0 {
		return
	}
	fi, ft := f.ParameterAt(from)
	ti, tt := f.ParameterAt(to)
	for i := fi; i <= ti; i++ {
		t0, t1 := 0.0, 1.0
		if i == fi {
			t0 = ft
		}
		if i == ti {
			t1 = tt
		}
		c := f.curves[i].Part(t0, t1)
		if i == fi {
			d.MoveTo(c.P0)
		}
		d.CubicTo(c.P1, c.P2, c.P3)
	}
}

// Points returns the vertices of the polyline. For closed paths, the
// start point is not repeated at the end.
func (f *PathFlattener) Points() []Point {
	if len(f.curves) == 0 {
		return nil
	}
	pts := make([]Point, 0, len(f.parts)+1)
	pts = append(pts, f.curves[0].P0)
	for _, part := range f.parts {
		pts = append(pts, f.curves[part.curve].Eval(part.t))
	}
	if f.closed && len(pts) > 1 && pts[0].IsClose(pts[len(pts)-1], Tolerance) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// Flatten replaces the path's segments by straight segments spaced evenly
// along the path, at most maxDistance apart.
func (p *Path) Flatten(maxDistance float64) error {
	if len(p.segments) == 0 {
		return ErrEmptyPath
	}
	if !(maxDistance > 0) {
		return fmt.Errorf("flatten with distance %g: %w", maxDistance, ErrInvalidTolerance)
	}
	f := NewPathFlattener(p, DefaultFlatness)
	if f.length == 0 {
		p.SetSegments(Seg(p.segments[0].point))
		return nil
	}
	step := f.length / math.Ceil(f.length/maxDistance)
	end := f.length + step/2
	if p.closed {
		end = f.length - step/2
	}
	var segs []*Segment
	for pos := 0.0; pos <= end; pos += step {
		segs = append(segs, Seg(f.PointAt(pos)))
	}
	p.SetSegments(segs...)
	return nil
}
