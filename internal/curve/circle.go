package curve

import (
	"math"

	"rigctl/internal/mathutil"
)

// circleSections is the number of control vertices of the circle primitive.
const circleSections = 8

// Circle returns a periodic cubic circle of the given radius lying in the
// YZ plane (normal +X), the default control shape for new controllers.
func Circle(radius float64) Geometry {
	// Push the CVs out so the cubic spline passes through the requested
	// radius at the knots: on-knot value is (P0 + 4P1 + P2)/6.
	cvRadius := radius * 6 / (4 + 2*math.Cos(2*math.Pi/circleSections))

	points := make([]mathutil.Vec3, circleSections)
	for i := range points {
		a := 2 * math.Pi * float64(i) / circleSections
		points[i] = mathutil.Vec3{0, cvRadius * math.Cos(a), cvRadius * math.Sin(a)}
	}

	knots := make([]float64, circleSections+4)
	for i := range knots {
		knots[i] = float64(i - 2)
	}

	return Geometry{
		Degree: 3,
		Form:   Periodic,
		Points: points,
		Knots:  knots,
	}
}
