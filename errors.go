package paper

import "errors"

var (
	// ErrEmptyPath is returned by queries that need at least one segment.
	ErrEmptyPath = errors.New("paper: path has no segments")
	// ErrNoCurrentPoint is returned by relative drawing commands on a path
	// without segments. Use MoveTo first.
	ErrNoCurrentPoint = errors.New("paper: no current point, use MoveTo first")
	// ErrCurveThroughParameter is returned by CurveTo when the curve
	// parameter does not define a handle.
	ErrCurveThroughParameter = errors.New("paper: cannot put a curve through points with parameter")
	// ErrArcCollinear is returned when an arc is requested through three
	// collinear points.
	ErrArcCollinear = errors.New("paper: cannot put an arc through the given points")
	// ErrOffsetOutOfRange is returned for offsets beyond a path's length.
	ErrOffsetOutOfRange = errors.New("paper: offset out of range")
	// ErrIndexOutOfRange is returned for invalid segment or curve indices.
	ErrIndexOutOfRange = errors.New("paper: index out of range")
	// ErrInvalidTolerance is returned for tolerances and distances that are
	// not positive.
	ErrInvalidTolerance = errors.New("paper: tolerance must be positive")
	// ErrTooFewPoints is returned when fitting fewer than two distinct points.
	ErrTooFewPoints = errors.New("paper: at least two distinct points are required")
	// ErrForeignPath is returned when an operation receives a segment or
	// path that is owned by something else.
	ErrForeignPath = errors.New("paper: item belongs to another owner")
)
