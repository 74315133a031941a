// Package paper provides an editable 2D vector path model built from cubic
// Bézier curves, together with the numeric routines needed to measure,
// query and approximate such paths. It was designed to serve as the
// geometry kernel of vector drawing applications.
//
// # Segments, curves, and paths
//
// A [Path] is an ordered sequence of [Segment] values. Each segment is an
// anchor point with an incoming and an outgoing handle, stored relative to
// the anchor. Consecutive segments are connected by a [Curve], the cubic
// Bézier from one anchor, via the outgoing handle of the first segment and
// the incoming handle of the second, to the next anchor. Closed paths have
// an additional curve from the last segment back to the first.
//
// Curves are views. They are created lazily by [Path.Curves] and are kept
// consistent as segments are inserted and removed. Mutating a segment
// through its setters notifies the owning path, which clears all derived
// quantities that depend on it: curve lengths, bounds, orientation, and the
// bounds of the [Owner] containing the path, such as a [CompoundPath].
//
// The raw curve math is available on [CubicBez], a value type with absolute
// control points, independent of any path.
//
// # Parameters and offsets
//
// Positions on a curve are addressed either by the curve parameter t ∈ [0,
// 1] or by an arc length offset. [Curve.ParameterAt] and [Path.LocationAt]
// convert from offsets to parameters. Both return a [CurveLocation], which
// is also the result of nearest point queries and intersections.
//
// # Flattening and fitting
//
// [PathFlattener] approximates a path by a polyline and maps offsets to
// parameters cheaply, as needed for dashing. [PathFitter] goes the other
// way and fits cubic Béziers to a sequence of points, which is used by
// [Path.Simplify].
//
// # Drawing
//
// Paths can be built with PostScript-like commands such as [Path.MoveTo],
// [Path.LineTo] and [Path.ArcThrough], or with shape constructors such as
// [NewCirclePath]. They can be emitted as [PathElement] sequences or sent to
// a [Drawer]. [Float32] adapts rasterizers such as
// [golang.org/x/image/vector.Rasterizer].
//
// # Numerics
//
// The numeric routines used throughout the package, such as Gauss-Legendre
// quadrature ([Integrate]), safeguarded Newton iteration ([FindRoot]) and
// robust polynomial solvers ([SolveQuadratic], [SolveCubic]), are exported.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - "An Algorithm for Automatically Fitting Digitized Curves" by Philip J. Schneider, Graphics Gems, 1990
//   - "Solving the Nearest Point-on-Curve Problem" by Philip J. Schneider, Graphics Gems, 1990
//   - [Piecewise Linear Approximation of Bézier Curves] by Roger Willcocks
//   - [Green's theorem]
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Piecewise Linear Approximation of Bézier Curves]: https://hcklbrrfnn.files.wordpress.com/2012/08/bez.pdf
// [Green's theorem]: https://en.wikipedia.org/wiki/Green%27s_theorem
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package paper
