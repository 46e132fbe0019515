package curve

import (
	"encoding/json"
	"fmt"

	"rigctl/internal/mathutil"
)

// Form describes how a curve closes, matching the host attribute values.
type Form int

const (
	Open     Form = 0
	Closed   Form = 1
	Periodic Form = 2
)

// IsPeriodic reports whether the control polygon wraps. Closed and periodic
// forms both reconstruct through the wrapped-point path.
func (f Form) IsPeriodic() bool {
	return f > 0
}

// Geometry is the serializable description of one curve shape: degree, form,
// control vertices and knot vector. For periodic forms Points holds the
// distinct ring only; the wrap duplication is applied on reconstruction.
//
// Invariant: len(Knots) == len(Points) + Degree + 1, knots non-decreasing.
type Geometry struct {
	Degree int
	Form   Form
	Points []mathutil.Vec3
	Knots  []float64
}

// Record is one captured shape: geometry plus the display color override at
// capture time. A nil Color means no override. Library files persist only
// the geometry part (see the preset package).
type Record struct {
	Geometry
	Color *int
}

// Validate checks the geometric invariants.
func (g Geometry) Validate() error {
	if g.Degree < 1 {
		return fmt.Errorf("curve: degree %d < 1", g.Degree)
	}
	if len(g.Points) < g.Degree+1 {
		return fmt.Errorf("curve: %d control points, need at least %d for degree %d",
			len(g.Points), g.Degree+1, g.Degree)
	}
	if want := len(g.Points) + g.Degree + 1; len(g.Knots) != want {
		return fmt.Errorf("curve: %d knots, want %d (%d points, degree %d)",
			len(g.Knots), want, len(g.Points), g.Degree)
	}
	for i := 1; i < len(g.Knots); i++ {
		if g.Knots[i] < g.Knots[i-1] {
			return fmt.Errorf("curve: knot vector decreases at index %d", i)
		}
	}
	return nil
}

// WrappedPoints returns the control polygon the curve constructor expects:
// periodic forms get the first Degree points appended, open forms are
// returned as a copy.
func (g Geometry) WrappedPoints() []mathutil.Vec3 {
	if !g.Form.IsPeriodic() {
		points := make([]mathutil.Vec3, len(g.Points))
		copy(points, g.Points)
		return points
	}
	points := make([]mathutil.Vec3, 0, len(g.Points)+g.Degree)
	points = append(points, g.Points...)
	points = append(points, g.Points[:g.Degree]...)
	return points
}

// Clone deep-copies the geometry.
func (g Geometry) Clone() Geometry {
	out := g
	out.Points = make([]mathutil.Vec3, len(g.Points))
	copy(out.Points, g.Points)
	out.Knots = make([]float64, len(g.Knots))
	copy(out.Knots, g.Knots)
	return out
}

// Clone deep-copies the record.
func (r Record) Clone() Record {
	out := Record{Geometry: r.Geometry.Clone()}
	if r.Color != nil {
		c := *r.Color
		out.Color = &c
	}
	return out
}

// geometryJSON is the on-disk schema of the preset library. Field names and
// the geometry-only scope are frozen for compatibility with existing files.
type geometryJSON struct {
	Degree int          `json:"degree"`
	Form   int          `json:"form"`
	Point  [][3]float64 `json:"point"`
	Knot   []float64    `json:"knot"`
}

func (g Geometry) MarshalJSON() ([]byte, error) {
	out := geometryJSON{
		Degree: g.Degree,
		Form:   int(g.Form),
		Point:  make([][3]float64, len(g.Points)),
		Knot:   g.Knots,
	}
	for i, p := range g.Points {
		out.Point[i] = p
	}
	if out.Knot == nil {
		out.Knot = []float64{}
	}
	return json.Marshal(out)
}

func (g *Geometry) UnmarshalJSON(data []byte) error {
	var in geometryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Degree = in.Degree
	g.Form = Form(in.Form)
	g.Points = make([]mathutil.Vec3, len(in.Point))
	for i, p := range in.Point {
		g.Points[i] = p
	}
	g.Knots = in.Knot
	return nil
}
