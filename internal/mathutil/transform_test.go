package mathutil

import (
	"math"
	"testing"
)

func assertVecNear(t *testing.T, got, want Vec3, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Len(); d > epsilon {
		t.Fatalf("got %v, want %v (dist %g)", got, want, d)
	}
}

func assertMat4Near(t *testing.T, got, want Mat4, epsilon float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Fatalf("matrices differ at [%d]: got %v, want %v", i, got, want)
		}
	}
}

func TestEulerRoundTrip(t *testing.T) {
	const epsilon = 1e-9
	angles := []Vec3{
		{0, 0, 0},
		{0.3, -0.7, 1.2},
		{-2.1, 0.4, 0.9},
		{math.Pi / 4, math.Pi / 3, -math.Pi / 6},
	}
	for _, a := range angles {
		m := EulerToMat3(a[0], a[1], a[2])
		rx, ry, rz := Mat3ToEuler(m)
		back := EulerToMat3(rx, ry, rz)
		for i := range m {
			if math.Abs(m[i]-back[i]) > epsilon {
				t.Fatalf("euler %v: matrices differ at [%d]", a, i)
			}
		}
	}
}

func TestEulerGimbalLock(t *testing.T) {
	m := EulerToMat3(0.5, math.Pi/2, 0.25)
	rx, ry, rz := Mat3ToEuler(m)
	back := EulerToMat3(rx, ry, rz)
	for i := range m {
		if math.Abs(m[i]-back[i]) > 1e-6 {
			t.Fatalf("gimbal lock round trip failed at [%d]: %v vs %v", i, m, back)
		}
	}
}

func TestComposeDecompose(t *testing.T) {
	const epsilon = 1e-9
	tr := Vec3{1, -2, 3.5}
	rot := Vec3{0.2, -0.6, 1.1}
	sc := Vec3{2, 0.5, 3}

	m := ComposeTRS(tr, rot, sc)
	gt, gr, gs := DecomposeTRS(m)

	assertVecNear(t, gt, tr, epsilon)
	assertVecNear(t, gs, sc, epsilon)
	assertMat4Near(t, ComposeTRS(gt, gr, gs), m, epsilon)
}

func TestMat4Invert(t *testing.T) {
	m := ComposeTRS(Vec3{4, 5, 6}, Vec3{0.3, 0.7, -0.2}, Vec3{1, 2, 0.5})
	assertMat4Near(t, Mat4Mul(m, m.Invert()), Mat4Identity(), 1e-9)
	assertMat4Near(t, Mat4Mul(m.Invert(), m), Mat4Identity(), 1e-9)
}

func TestMulPointMatchesCompose(t *testing.T) {
	p := Vec3{1, 1, 1}
	m := ComposeTRS(Vec3{10, 0, 0}, Vec3{0, 0, math.Pi / 2}, Vec3{2, 2, 2})
	// Scale by 2, rotate 90° about Z, translate +10 in X.
	assertVecNear(t, m.MulPoint(p), Vec3{8, 2, 2}, 1e-9)
}

func TestCentroid(t *testing.T) {
	ps := []Vec3{{1, 0, 0}, {3, 0, 0}, {2, 3, -3}}
	assertVecNear(t, Centroid(ps), Vec3{2, 1, -1}, 1e-12)
	assertVecNear(t, Centroid(nil), Vec3{}, 0)
}
