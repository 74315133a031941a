package paper

// SegmentPart identifies the anchor or one of the handles of a segment. It
// is also used as a bitmask describing which parts are selected.
type SegmentPart uint8

const (
	SelectHandleIn SegmentPart = 1 << iota
	SelectHandleOut
	SelectPoint
)

// Selection returns the selected parts of the segment.
func (s *Segment) Selection() SegmentPart { return s.selection }

// IsSelected reports whether any of the parts in part is selected.
func (s *Segment) IsSelected(part SegmentPart) bool {
	return s.selection&part != 0
}

// SetSelected selects or deselects part, which must be one of
// [SelectPoint], [SelectHandleIn] or [SelectHandleOut].
//
// Selecting the anchor deselects both handles. Deselecting the anchor
// leaves a handle selected if the neighbouring segment on that side has its
// anchor or its outgoing handle selected. Neither happens if the anchor
// already is in the requested state. Selecting a handle deselects the
// anchor.
func (s *Segment) SetSelected(part SegmentPart, selected bool) {
	old := s.selection
	state := old
	switch part {
	case SelectPoint:
		if (state&SelectPoint != 0) == selected {
			return
		}
		state &^= SelectHandleIn | SelectHandleOut
		if !selected {
			if prev := s.Previous(); prev != nil && prev.IsSelected(SelectPoint|SelectHandleOut) {
				state |= SelectHandleIn
			}
			if next := s.Next(); next != nil && next.IsSelected(SelectPoint|SelectHandleOut) {
				state |= SelectHandleOut
			}
		}
		state = setBit(state, SelectPoint, selected)
	case SelectHandleIn, SelectHandleOut:
		if (state&part != 0) != selected {
			if selected {
				state &^= SelectPoint
			}
			state = setBit(state, part, selected)
		}
	default:
		return
	}
	if state == old {
		return
	}
	s.selection = state
	if s.path != nil {
		s.path.selectedState += int(state) - int(old)
	}
}

func setBit(state, bit SegmentPart, on bool) SegmentPart {
	if on {
		return state | bit
	}
	return state &^ bit
}

// IsSelected reports whether any part of any segment is selected.
func (p *Path) IsSelected() bool {
	return p.selectedState > 0
}

// IsFullySelected reports whether the anchors of all segments are
// selected.
func (p *Path) IsFullySelected() bool {
	if len(p.segments) == 0 {
		return false
	}
	for _, s := range p.segments {
		if !s.IsSelected(SelectPoint) {
			return false
		}
	}
	return true
}

// SetFullySelected selects or deselects the anchors of all segments.
// Deselecting also clears handle selections.
func (p *Path) SetFullySelected(selected bool) {
	for _, s := range p.segments {
		if selected {
			s.SetSelected(SelectPoint, true)
		} else {
			p.selectedState -= int(s.selection)
			s.selection = 0
		}
	}
}
