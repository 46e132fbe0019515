package curve

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rigctl/internal/mathutil"
)

func openSquare() Geometry {
	return Geometry{
		Degree: 1,
		Form:   Open,
		Points: []mathutil.Vec3{
			{0, -1, -1}, {0, 1, -1}, {0, 1, 1}, {0, -1, 1}, {0, -1, -1},
		},
		Knots: []float64{0, 0, 1, 2, 3, 4, 4},
	}
}

func TestValidate(t *testing.T) {
	if err := openSquare().Validate(); err != nil {
		t.Fatalf("valid geometry rejected: %v", err)
	}
	if err := Circle(1).Validate(); err != nil {
		t.Fatalf("circle primitive invalid: %v", err)
	}

	bad := openSquare()
	bad.Degree = 0
	if bad.Validate() == nil {
		t.Fatal("degree 0 accepted")
	}

	bad = openSquare()
	bad.Knots = bad.Knots[:len(bad.Knots)-1]
	if bad.Validate() == nil {
		t.Fatal("short knot vector accepted")
	}

	bad = openSquare()
	bad.Knots[2], bad.Knots[3] = bad.Knots[3], bad.Knots[2]
	if bad.Validate() == nil {
		t.Fatal("decreasing knot vector accepted")
	}
}

func TestBuildRoundTrip(t *testing.T) {
	for _, g := range []Geometry{openSquare(), Circle(2)} {
		wrapped := g.WrappedPoints()
		built, err := Build(wrapped, g.Degree, g.Knots, g.Form.IsPeriodic())
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		if diff := cmp.Diff(g.Points, built.Points); diff != "" {
			t.Errorf("points differ (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(g.Knots, built.Knots); diff != "" {
			t.Errorf("knots differ (-want +got):\n%s", diff)
		}
		if built.Degree != g.Degree {
			t.Errorf("degree %d, want %d", built.Degree, g.Degree)
		}
		if built.Form.IsPeriodic() != g.Form.IsPeriodic() {
			t.Errorf("form %v, want periodicity of %v", built.Form, g.Form)
		}
	}
}

func TestBuildRejectsBadWrap(t *testing.T) {
	g := Circle(1)
	wrapped := g.WrappedPoints()
	wrapped[len(wrapped)-1][1] += 0.5
	if _, err := Build(wrapped, g.Degree, g.Knots, true); err == nil {
		t.Fatal("mismatched wrap accepted")
	}
}

func TestWrappedPointsCopies(t *testing.T) {
	g := openSquare()
	wrapped := g.WrappedPoints()
	wrapped[0][1] = 99
	if g.Points[0][1] == 99 {
		t.Fatal("WrappedPoints aliases the stored ring")
	}

	c := Circle(1)
	wrapped = c.WrappedPoints()
	if len(wrapped) != len(c.Points)+c.Degree {
		t.Fatalf("wrapped length %d, want %d", len(wrapped), len(c.Points)+c.Degree)
	}
	for i := 0; i < c.Degree; i++ {
		if wrapped[len(c.Points)+i] != c.Points[i] {
			t.Fatalf("wrap point %d not duplicated", i)
		}
	}
}

func TestCircleLiesOnRadius(t *testing.T) {
	const radius = 1.5
	g := Circle(radius)
	for _, p := range g.Sample(64) {
		if math.Abs(p[0]) > 1e-12 {
			t.Fatalf("circle point %v leaves the YZ plane", p)
		}
		r := math.Hypot(p[1], p[2])
		if math.Abs(r-radius) > 0.05*radius {
			t.Fatalf("circle point %v at radius %g, want ~%g", p, r, radius)
		}
	}
}

func TestOpenCurveHitsEndpoints(t *testing.T) {
	g := openSquare()
	samples := g.Sample(33)
	first, last := samples[0], samples[len(samples)-1]
	if d := first.Sub(g.Points[0]).Len(); d > 1e-9 {
		t.Fatalf("start point off by %g", d)
	}
	if d := last.Sub(g.Points[len(g.Points)-1]).Len(); d > 1e-9 {
		t.Fatalf("end point off by %g", d)
	}
}

func TestPeriodicEvaluationWraps(t *testing.T) {
	g := Circle(1)
	lo, hi := g.Domain()
	if d := g.Point(lo).Sub(g.Point(hi)).Len(); d > 1e-9 {
		t.Fatalf("periodic curve does not close: gap %g", d)
	}
}

func TestGeometryJSONSchema(t *testing.T) {
	g := openSquare()
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}

	// The library schema is geometry-only with fixed field names.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"degree", "form", "point", "knot"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("schema missing %q", key)
		}
	}
	if len(raw) != 4 {
		t.Errorf("schema has %d fields, want 4: %v", len(raw), raw)
	}

	var back Geometry
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(g, back); diff != "" {
		t.Errorf("JSON round trip (-want +got):\n%s", diff)
	}
}

func TestRecordCloneIndependent(t *testing.T) {
	color := 17
	r := Record{Geometry: Circle(1), Color: &color}
	c := r.Clone()
	*c.Color = 5
	c.Points[0][1] = 42
	if *r.Color != 17 || r.Points[0][1] == 42 {
		t.Fatal("Clone shares state with the original")
	}
}
