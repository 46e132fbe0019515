package curve

import "rigctl/internal/mathutil"

// Point evaluates the curve at parameter t using de Boor's algorithm.
// t is clamped to the curve domain.
func (g Geometry) Point(t float64) mathutil.Vec3 {
	cvs := g.WrappedPoints()
	knots := g.evalKnots()
	d := g.Degree

	lo, hi := g.Domain()
	if t < lo {
		t = lo
	}
	if t > hi {
		t = hi
	}

	// Knot span containing t: knots[s] <= t < knots[s+1].
	s := d
	for s < len(cvs)-1 && knots[s+1] <= t {
		s++
	}

	// de Boor triangle over the d+1 contributing control points.
	work := make([]mathutil.Vec3, d+1)
	copy(work, cvs[s-d:s+1])
	for r := 1; r <= d; r++ {
		for j := d; j >= r; j-- {
			i := s - d + j
			den := knots[i+d-r+1] - knots[i]
			var alpha float64
			if den != 0 {
				alpha = (t - knots[i]) / den
			}
			work[j] = work[j-1].Scale(1 - alpha).Add(work[j].Scale(alpha))
		}
	}
	return work[d]
}

// Domain returns the parameter range over which the curve is defined.
func (g Geometry) Domain() (lo, hi float64) {
	knots := g.evalKnots()
	n := len(g.WrappedPoints())
	return knots[g.Degree], knots[n]
}

// Sample evaluates count points across the domain. Open curves include both
// endpoints; periodic curves stop one step short of the wrap point.
func (g Geometry) Sample(count int) []mathutil.Vec3 {
	if count < 2 {
		count = 2
	}
	lo, hi := g.Domain()
	span := hi - lo

	steps := count - 1
	if g.Form.IsPeriodic() {
		steps = count
	}

	out := make([]mathutil.Vec3, count)
	for i := 0; i < count; i++ {
		out[i] = g.Point(lo + span*float64(i)/float64(steps))
	}
	return out
}

// evalKnots returns a knot vector sized for the wrapped control polygon.
// The stored vector covers the distinct points; periodic evaluation needs
// degree extra knots, appended by continuing the interval pattern from the
// start of the vector.
func (g Geometry) evalKnots() []float64 {
	if !g.Form.IsPeriodic() {
		return g.Knots
	}
	knots := make([]float64, 0, len(g.Knots)+g.Degree)
	knots = append(knots, g.Knots...)
	for i := 0; i < g.Degree; i++ {
		delta := g.Knots[i+1] - g.Knots[i]
		knots = append(knots, knots[len(knots)-1]+delta)
	}
	return knots
}
