package curve

import (
	"fmt"

	"rigctl/internal/mathutil"
)

// Build constructs curve geometry the way the host's curve command does:
// from an explicit control polygon, degree and knot vector. For periodic
// curves the point list must already carry the closed-loop wrap (the first
// degree points duplicated at the end); Build verifies the wrap and stores
// the distinct ring.
func Build(points []mathutil.Vec3, degree int, knots []float64, periodic bool) (Geometry, error) {
	g := Geometry{
		Degree: degree,
		Knots:  make([]float64, len(knots)),
	}
	copy(g.Knots, knots)

	if !periodic {
		g.Form = Open
		g.Points = make([]mathutil.Vec3, len(points))
		copy(g.Points, points)
		if err := g.Validate(); err != nil {
			return Geometry{}, err
		}
		return g, nil
	}

	g.Form = Periodic
	n := len(points) - degree
	if n < degree+1 {
		return Geometry{}, fmt.Errorf("curve: %d wrapped points too few for periodic degree %d", len(points), degree)
	}
	for i := 0; i < degree; i++ {
		if points[i] != points[n+i] {
			return Geometry{}, fmt.Errorf("curve: periodic wrap mismatch at point %d", i)
		}
	}
	g.Points = make([]mathutil.Vec3, n)
	copy(g.Points, points[:n])
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}
