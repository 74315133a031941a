package paper

import (
	"math"
)

const (
	// Epsilon is the threshold below which values are treated as zero.
	Epsilon = 1e-12
	// MachineEpsilon approximates the spacing of float64 values around 1.
	MachineEpsilon = 1.12e-16
	// Tolerance is the default geometric tolerance, used for example to
	// exclude extrema that coincide with curve endpoints.
	Tolerance = 1e-5
	// CurveTimeEpsilon is the resolution of curve parameters.
	CurveTimeEpsilon = 1e-8
	// GeometricEpsilon is the distance below which two points are
	// considered coincident.
	GeometricEpsilon = 1e-7
)

const (
	minGaussOrder = 2
	maxGaussOrder = 16
)

// gaussLegendre holds the weight and abscissa pairs for each supported
// order, indexed by order.
var gaussLegendre [maxGaussOrder + 1][][2]float64

func init() {
	for n := minGaussOrder; n <= maxGaussOrder; n++ {
		gaussLegendre[n] = gaussLegendreCoeffs(n)
	}
}

// gaussLegendreCoeffs computes the n-point Gauss-Legendre rule on [-1, 1] by
// Newton iteration on the roots of the Legendre polynomial P_n.
func gaussLegendreCoeffs(n int) [][2]float64 {
	out := make([][2]float64, n)
	m := (n + 1) / 2
	for i := 1; i <= m; i++ {
		z := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
		var pp float64
		for range 100 {
			p1, p2 := 1.0, 0.0
			for j := 1; j <= n; j++ {
				p3 := p2
				p2 = p1
				p1 = ((2*float64(j)-1)*z*p2 - (float64(j)-1)*p3) / float64(j)
			}
			pp = float64(n) * (z*p1 - p2) / (z*z - 1)
			z1 := z
			z = z1 - p1/pp
			if math.Abs(z-z1) < 1e-15 {
				break
			}
		}
		w := 2 / ((1 - z*z) * pp * pp)
		out[i-1] = [2]float64{w, -z}
		out[n-i] = [2]float64{w, z}
	}
	return out
}

// IsZero reports whether v is within [Epsilon] of zero.
func IsZero(v float64) bool {
	return v >= -Epsilon && v <= Epsilon
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}

// Integrate integrates f over [a, b] with an n-point Gauss-Legendre rule.
// The order n is clamped to [2, 16].
func Integrate(f func(float64) float64, a, b float64, n int) float64 {
	n = max(minGaussOrder, min(maxGaussOrder, n))
	coeffs := gaussLegendre[n]
	// Map [-1, 1] onto [a, b].
	A := 0.5 * (b - a)
	B := A + a
	var sum float64
	for _, c := range coeffs {
		sum += c[0] * f(B+A*c[1])
	}
	return A * sum
}

// FindRoot finds a root of f in [a, b] using Newton-Raphson, starting at x.
// Whenever a Newton step would leave the current bracket, the step is
// replaced by bisection of the bracket. The bracket is tightened after every
// step, using the sign of f(x), which assumes that f is increasing over
// [a, b].
//
// FindRoot stops after n iterations or once a step is smaller than
// tolerance. The result is the best estimate found, clamped to [a, b]; it is
// not guaranteed to be within tolerance of a true root.
func FindRoot(f, df func(float64) float64, x, a, b float64, n int, tolerance float64) float64 {
	for range n {
		fx := f(x)
		if fx == 0 {
			break
		}
		dx := fx / df(x)
		nx := x - dx
		if math.Abs(dx) < tolerance {
			x = nx
			break
		}
		if fx > 0 {
			b = x
			if nx <= a {
				x = (a + b) * 0.5
			} else {
				x = nx
			}
		} else {
			a = x
			if nx >= b {
				x = (a + b) * 0.5
			} else {
				x = nx
			}
		}
		if math.IsNaN(x) {
			x = (a + b) * 0.5
		}
	}
	return clamp(x, a, b)
}

// SolveQuadratic finds real roots of a quadratic equation.
//
// Returns values of x for which c0 + c1 x + c2 x² = 0.0
//
// This function tries to be quite numerically robust. If the equation is nearly
// linear, it will return the root ignoring the quadratic term; the other root
// might be out of representable range. In the degenerate case where all
// coefficients are zero, so that all values of x satisfy the equation, a single
// 0.0 is returned.
func SolveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		// c2 is zero or very small, treat as linear eqn
		root := -c0 / c1
		if !math.IsInf(root, 0) && !math.IsNaN(root) {
			return [2]float64{root}, 1
		} else if c0 == 0.0 && c1 == 0.0 {
			// Degenerate case
			return [2]float64{0}, 1
		} else {
			return [2]float64{}, 0
		}
	}
	arg := sc1*sc1 - 4.0*sc0
	var root1 float64
	if math.IsInf(arg, 0) {
		// Likely, calculation of sc1 * sc1 overflowed. Find one root
		// using sc1 x + x² = 0, other root as sc0 / root1.
		root1 = -sc1
	} else {
		if arg < 0.0 {
			return [2]float64{}, 0
		} else if arg == 0.0 {
			return [2]float64{-0.5 * sc1}, 1
		}
		// See https://math.stackexchange.com/questions/866331
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}
	root2 := sc0 / root1
	if !math.IsInf(root2, 0) && !math.IsNaN(root2) {
		if root2 == root1 {
			return [2]float64{root1}, 1
		}
		// Sort just to be friendly and make results deterministic.
		if root2 > root1 {
			return [2]float64{root1, root2}, 2
		} else {
			return [2]float64{root2, root1}, 2
		}
	} else {
		return [2]float64{root1}, 1
	}
}

// SolveCubic finds real roots of cubic equations.
//
// It handles the case where c3 is zero by solving the quadratic equation
// instead. Three real roots are found with the trigonometric method.
//
// See: https://momentsingraphics.de/CubicRoots.html
//
// That implementation is in turn based on Jim Blinn's "How to Solve a Cubic
// Equation".
//
// Returns values of x for which c0 + c1 x + c2 x² + c3 x³ = 0.0
//
// The second return value states how many roots were found.
func SolveCubic(c0, c1, c2, c3 float64) ([3]float64, int) {
	c3Recip := 1.0 / c3
	scaledC2 := c2 * (1.0 / 3.0 * c3Recip)
	scaledC1 := c1 * (1.0 / 3.0 * c3Recip)
	scaledC0 := c0 * c3Recip
	if math.IsInf(scaledC0, 0) || math.IsInf(scaledC1, 0) || math.IsInf(scaledC2, 0) ||
		math.IsNaN(scaledC0) || math.IsNaN(scaledC1) || math.IsNaN(scaledC2) {
		// cubic coefficient is zero or nearly so.
		roots, n := SolveQuadratic(c0, c1, c2)
		return [3]float64{roots[0], roots[1]}, n
	}
	c0, c1, c2 = scaledC0, scaledC1, scaledC2
	// (d0, d1, d2) is called "Delta" in article
	d0 := math.FMA(-c2, c2, c1)
	d1 := math.FMA(-c1, c2, c0)
	d2 := c2*c0 - c1*c1
	// d is called "Discriminant"
	d := 4.0*d0*d2 - d1*d1
	// de is called "Depressed.x", Depressed.y = d0
	de := math.FMA(-2.0*c2, d0, d1)
	if d < 0.0 {
		sq := math.Sqrt(-0.25 * d)
		r := -0.5 * de
		t1 := math.Cbrt(r+sq) + math.Cbrt(r-sq)
		return [3]float64{t1 - c2}, 1
	} else if d == 0.0 {
		t1 := math.Copysign(math.Sqrt(-d0), de)
		if t1 == 0 {
			return [3]float64{-c2}, 1
		}
		return [3]float64{t1 - c2, -2.0*t1 - c2}, 2
	} else {
		th := math.Atan2(math.Sqrt(d), -de) * (1.0 / 3.0)
		// (thCos, thSin) is called "CubicRoot"
		thSin, thCos := math.Sincos(th)
		// (r0, r1, r2) is called "Root"
		r0 := thCos
		ss3 := thSin * math.Sqrt(3.0)
		r1 := 0.5 * (-thCos + ss3)
		r2 := 0.5 * (-thCos - ss3)
		t := 2.0 * math.Sqrt(-d0)

		return [3]float64{
			math.FMA(t, r0, -c2),
			math.FMA(t, r1, -c2),
			math.FMA(t, r2, -c2),
		}, 3
	}
}

// SolveQuadraticIn is like [SolveQuadratic] but only returns roots in the
// closed interval [lo, hi]. Roots that lie within [Epsilon] outside of the
// interval are clamped to it. Infinite bounds disable filtering on that side.
func SolveQuadraticIn(c0, c1, c2, lo, hi float64) ([2]float64, int) {
	roots, n := SolveQuadratic(c0, c1, c2)
	var out [2]float64
	n = filterRoots(out[:], roots[:n], lo, hi)
	return out, n
}

// SolveCubicIn is like [SolveCubic] but only returns roots in the closed
// interval [lo, hi]. See [SolveQuadraticIn].
func SolveCubicIn(c0, c1, c2, c3, lo, hi float64) ([3]float64, int) {
	roots, n := SolveCubic(c0, c1, c2, c3)
	var out [3]float64
	n = filterRoots(out[:], roots[:n], lo, hi)
	return out, n
}

// filterRoots copies the roots that lie in [lo, hi] into out, dropping
// duplicates, and returns how many it copied.
func filterRoots(out, roots []float64, lo, hi float64) int {
	n := 0
outer:
	for _, r := range roots {
		if r < lo-Epsilon || r > hi+Epsilon {
			continue
		}
		r = clamp(r, lo, hi)
		for _, o := range out[:n] {
			if o == r {
				continue outer
			}
		}
		out[n] = r
		n++
	}
	return n
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) clear() {
	opt.isSet = false
	opt.value = *new(T)
}
