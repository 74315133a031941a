package paper

// Join defines the connection between two segments of a stroke.
type Join int

const (
	// A straight line connecting the segments.
	BevelJoin Join = iota
	// The segments are extended to their natural intersection point.
	MiterJoin
	// An arc between the segments.
	RoundJoin
)

func (j Join) String() string {
	switch j {
	case BevelJoin:
		return "bevel"
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	default:
		return "Join(?)"
	}
}

// Cap defines the shape to be drawn at the ends of a stroke.
type Cap int

const (
	// Flat cap.
	ButtCap Cap = iota
	// Square cap with dimensions equal to half the stroke width.
	SquareCap
	// Rounded cap with radius equal to half the stroke width.
	RoundCap
)

func (c Cap) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "Cap(?)"
	}
}

// Stroke describes the stroke of a path, as far as it affects the path's
// geometry. A zero Width means that the path is not stroked.
type Stroke struct {
	// Width of the stroke.
	Width float64
	// Style for connecting segments of the stroke.
	Join Join
	// Limit for miter joins, as a multiple of half the stroke width.
	MiterLimit float64
	// Style for capping the beginning of an open path.
	StartCap Cap
	// Style for capping the end of an open path.
	EndCap Cap
}

var DefaultStroke = Stroke{
	Width:      1.0,
	Join:       MiterJoin,
	MiterLimit: 10.0,
	StartCap:   ButtCap,
	EndCap:     ButtCap,
}

func (s Stroke) WithWidth(width float64) Stroke      { s.Width = width; return s }
func (s Stroke) WithJoin(join Join) Stroke           { s.Join = join; return s }
func (s Stroke) WithMiterLimit(limit float64) Stroke { s.MiterLimit = limit; return s }
func (s Stroke) WithStartCap(cap Cap) Stroke         { s.StartCap = cap; return s }
func (s Stroke) WithEndCap(cap Cap) Stroke           { s.EndCap = cap; return s }
func (s Stroke) WithCaps(cap Cap) Stroke             { s.StartCap, s.EndCap = cap, cap; return s }

// IsStroked reports whether the stroke has a positive width.
func (s Stroke) IsStroked() bool {
	return s.Width > 0
}
