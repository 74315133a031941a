package paper

// Smooth sets the handles of all segments so that the path passes through
// its anchors as a natural cubic spline with continuous first and second
// derivatives. Closed paths are smoothed across the seam by solving the
// open problem with up to four anchors of overlap at each end and fading
// between the overlapping solutions. Paths with at most two segments are
// left unchanged.
func (p *Path) Smooth() {
	size := len(p.segments)
	if size <= 2 {
		Logger().Debug("smooth: too few segments", "segments", size)
		return
	}
	n := size
	overlap := 0
	if p.closed {
		overlap = min(size, 4)
		n += overlap * 2
	}
	knots := make([]Point, n)
	for i, s := range p.segments {
		knots[i+overlap] = s.point
	}
	if p.closed {
		for i := range overlap {
			knots[i] = p.segments[i+size-overlap].point
			knots[i+size+overlap] = p.segments[i].point
		}
	} else {
		n--
	}

	rhs := make([]float64, n)
	for i := 1; i < n-1; i++ {
		rhs[i] = 4*knots[i].X + 2*knots[i+1].X
	}
	rhs[0] = knots[0].X + 2*knots[1].X
	rhs[n-1] = 3 * knots[n-1].X
	x := firstControlPoints(rhs)

	for i := 1; i < n-1; i++ {
		rhs[i] = 4*knots[i].Y + 2*knots[i+1].Y
	}
	rhs[0] = knots[0].Y + 2*knots[1].Y
	rhs[n-1] = 3 * knots[n-1].Y
	y := firstControlPoints(rhs)

	if p.closed {
		for i, j := 0, size; i < overlap; i, j = i+1, j+1 {
			f1 := float64(i) / float64(overlap)
			f2 := 1 - f1
			// Beginning
			x[j] = x[i]*f1 + x[j]*f2
			y[j] = y[i]*f1 + y[j]*f2
			// End
			ie, je := i+overlap, j+overlap
			x[je] = x[ie]*f2 + x[je]*f1
			y[je] = y[ie]*f2 + y[je]*f1
		}
		n--
	}

	var handleIn option[Point]
	for i := overlap; i <= n-overlap; i++ {
		s := p.segments[i-overlap]
		if handleIn.isSet {
			s.SetHandleIn(handleIn.value.Sub(s.point))
		}
		if i < n {
			s.SetHandleOut(Pt(x[i], y[i]).Sub(s.point))
			if i < n-1 {
				handleIn.set(Pt(2*knots[i+1].X-x[i+1], 2*knots[i+1].Y-y[i+1]))
			} else {
				handleIn.set(Pt((knots[n].X+x[n-1])/2, (knots[n].Y+y[n-1])/2))
			}
		}
	}
	if p.closed && handleIn.isSet {
		s := p.segments[0]
		s.SetHandleIn(handleIn.value.Sub(s.point))
	}
}

// firstControlPoints solves the tridiagonal system for the first control
// points of a natural cubic spline, with diagonal 2, 4, …, 4, 2 and unit
// off-diagonals, using the Thomas algorithm.
func firstControlPoints(rhs []float64) []float64 {
	n := len(rhs)
	x := make([]float64, n)
	tmp := make([]float64, n)
	b := 2.0
	x[0] = rhs[0] / b
	for i := 1; i < n; i++ {
		tmp[i] = 1 / b
		if i < n-1 {
			b = 4 - tmp[i]
		} else {
			b = 2 - tmp[i]
		}
		x[i] = (rhs[i] - x[i-1]) / b
	}
	for i := 1; i < n; i++ {
		x[n-i-1] -= tmp[n-i] * x[n-i]
	}
	return x
}
