package paper

import (
	"fmt"
	"strings"
)

// Segment is an anchor point with two control handles. The handles are
// stored relative to the anchor; a zero handle means that the segment has no
// handle on that side.
//
// A segment belongs to at most one [Path]. Adding a segment that already
// belongs to a path adds a copy of it instead.
type Segment struct {
	point     Point
	handleIn  Vec2
	handleOut Vec2

	path      *Path
	index     int
	selection SegmentPart
}

// NewSegment returns a detached segment.
func NewSegment(point Point, handleIn, handleOut Vec2) *Segment {
	return &Segment{
		point:     point,
		handleIn:  handleIn,
		handleOut: handleOut,
		index:     -1,
	}
}

// Seg returns a detached segment without handles.
func Seg(point Point) *Segment {
	return NewSegment(point, Vec2{}, Vec2{})
}

func (s *Segment) String() string {
	var parts []string
	parts = append(parts, "point: "+s.point.String())
	if !s.handleIn.IsZero() {
		parts = append(parts, "handleIn: "+s.handleIn.String())
	}
	if !s.handleOut.IsZero() {
		parts = append(parts, "handleOut: "+s.handleOut.String())
	}
	return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
}

func (s *Segment) Point() Point    { return s.point }
func (s *Segment) HandleIn() Vec2  { return s.handleIn }
func (s *Segment) HandleOut() Vec2 { return s.handleOut }

func (s *Segment) SetPoint(pt Point) {
	s.point = pt
	s.changed()
}

func (s *Segment) SetHandleIn(h Vec2) {
	s.handleIn = h
	s.changed()
}

func (s *Segment) SetHandleOut(h Vec2) {
	s.handleOut = h
	s.changed()
}

// HasHandles reports whether either handle is set.
func (s *Segment) HasHandles() bool {
	return !s.handleIn.IsZero() || !s.handleOut.IsZero()
}

// ClearHandles sets both handles to zero.
func (s *Segment) ClearHandles() {
	s.handleIn = Vec2{}
	s.handleOut = Vec2{}
	s.changed()
}

// Transform applies aff to the anchor and the linear part of aff to the
// handles.
func (s *Segment) Transform(aff Affine) {
	s.point = s.point.Transform(aff)
	s.handleIn = s.handleIn.Transform(aff)
	s.handleOut = s.handleOut.Transform(aff)
	s.changed()
}

func (s *Segment) changed() {
	if s.path != nil {
		s.path.segmentChanged(s)
	}
}

// Path returns the owning path, or nil.
func (s *Segment) Path() *Path { return s.path }

// Index returns the segment's position in its path, or -1 if it is
// detached.
func (s *Segment) Index() int { return s.index }

// Curve returns the curve that owns this segment for parameter purposes:
// the incoming curve, except for the first segment of an open path, for
// which it is the outgoing curve. It returns nil for detached segments and
// paths without curves.
func (s *Segment) Curve() *Curve {
	if s.path == nil {
		return nil
	}
	curves := s.path.Curves()
	if len(curves) == 0 {
		return nil
	}
	switch {
	case s.index > 0:
		return curves[s.index-1]
	case s.path.closed:
		return curves[len(curves)-1]
	default:
		return curves[0]
	}
}

// Next returns the following segment, wrapping around on closed paths.
func (s *Segment) Next() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	if s.index+1 < len(segs) {
		return segs[s.index+1]
	}
	if s.path.closed {
		return segs[0]
	}
	return nil
}

// Previous returns the preceding segment, wrapping around on closed paths.
func (s *Segment) Previous() *Segment {
	if s.path == nil {
		return nil
	}
	segs := s.path.segments
	if s.index > 0 {
		return segs[s.index-1]
	}
	if s.path.closed {
		return segs[len(segs)-1]
	}
	return nil
}

func (s *Segment) IsFirst() bool { return s.index == 0 }

func (s *Segment) IsLast() bool {
	return s.path != nil && s.index == len(s.path.segments)-1
}

// Reverse returns a detached copy with the handles swapped.
func (s *Segment) Reverse() *Segment {
	return NewSegment(s.point, s.handleOut, s.handleIn)
}

// Clone returns a detached copy of the segment.
func (s *Segment) Clone() *Segment {
	return NewSegment(s.point, s.handleIn, s.handleOut)
}

// Remove removes the segment from its path. It reports whether the segment
// was attached.
func (s *Segment) Remove() bool {
	if s.path == nil {
		return false
	}
	_, err := s.path.RemoveSegment(s.index)
	return err == nil
}
