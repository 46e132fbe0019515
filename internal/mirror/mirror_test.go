package mirror

import (
	"errors"
	"math"
	"testing"

	"rigctl/internal/mathutil"
	"rigctl/internal/scene"
)

func TestName(t *testing.T) {
	cases := []struct {
		in, want string
		ok       bool
	}{
		{"arm_L_jnt", "arm_R_jnt", true},
		{"arm_R_jnt", "arm_L_jnt", true},
		{"hand_L", "hand_R", true},
		{"hand_R", "hand_L", true},
		{"L_foot", "R_foot", true},
		{"leg_l_ctl", "leg_r_ctl", true},
		{"spine_ctl", "", false},
		{"Left_arm", "", false},
	}
	for _, c := range cases {
		got, ok := Name(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("Name(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNameRoundTrip(t *testing.T) {
	for _, name := range []string{"arm_L_jnt", "hand_R", "L_foot"} {
		once, ok := Name(name)
		if !ok {
			t.Fatalf("Name(%q) not sided", name)
		}
		back, ok := Name(once)
		if !ok || back != name {
			t.Errorf("Name(Name(%q)) = %q", name, back)
		}
	}
}

func TestWorldMatrixInvolution(t *testing.T) {
	m := mathutil.ComposeTRS(
		mathutil.Vec3{3, -2, 5},
		mathutil.Vec3{0.4, -1.1, 0.7},
		mathutil.Vec3{1, 1, 1},
	)
	twice := WorldMatrix(WorldMatrix(m))
	for i := range m {
		if math.Abs(twice[i]-m[i]) > 1e-12 {
			t.Fatalf("involution broken at [%d]: %v vs %v", i, twice, m)
		}
	}
	// The mirror negates the world X position.
	if got := WorldMatrix(m).Translation(); got[0] != -3 || got[1] != -2 {
		// X row negation flips the X component of every column, so the
		// translation's X coordinate lands at -3.
		t.Fatalf("mirrored translation %v", got)
	}
}

func TestPose(t *testing.T) {
	sc := scene.New()
	left, err := sc.CreateTransform("arm_L_ctl")
	if err != nil {
		t.Fatal(err)
	}
	right, err := sc.CreateTransform("arm_R_ctl")
	if err != nil {
		t.Fatal(err)
	}
	for attr, v := range map[string]float64{"translateX": 2, "translateY": 1, "rotateZ": 40} {
		if err := sc.SetAttr(left, attr, v); err != nil {
			t.Fatal(err)
		}
	}

	if err := Pose(sc, left); err != nil {
		t.Fatal(err)
	}

	want := WorldMatrix(sc.WorldMatrix(left))
	got := sc.WorldMatrix(right)
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("counterpart world differs at [%d]", i)
		}
	}
	// Source stays untouched.
	if v, _ := sc.Attr(left, "translateX"); v != 2 {
		t.Fatal("source modified")
	}
}

func TestPoseErrors(t *testing.T) {
	sc := scene.New()
	unsided, err := sc.CreateTransform("spine_ctl")
	if err != nil {
		t.Fatal(err)
	}
	if err := Pose(sc, unsided); !errors.Is(err, ErrNotSided) {
		t.Fatalf("got %v, want ErrNotSided", err)
	}

	orphan, err := sc.CreateTransform("arm_L_ctl")
	if err != nil {
		t.Fatal(err)
	}
	if err := Pose(sc, orphan); !errors.Is(err, ErrNoMirrorTarget) {
		t.Fatalf("got %v, want ErrNoMirrorTarget", err)
	}
}

func TestDuplicate(t *testing.T) {
	sc := scene.New()
	root, err := sc.CreateTransform("leg_L_ctl")
	if err != nil {
		t.Fatal(err)
	}
	child, err := sc.CreateTransform("leg_L_jnt")
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.SetParent(child, root); err != nil {
		t.Fatal(err)
	}
	if err := sc.SetAttr(root, "translateX", 1.5); err != nil {
		t.Fatal(err)
	}

	dup, err := Duplicate(sc, root)
	if err != nil {
		t.Fatal(err)
	}
	if dup.Name() != "leg_R_ctl" {
		t.Fatalf("duplicate name %q", dup.Name())
	}
	if _, ok := sc.Get("leg_R_jnt"); !ok {
		t.Fatal("child not renamed to the mirrored side")
	}

	got := sc.WorldMatrix(dup)
	want := WorldMatrix(sc.WorldMatrix(root))
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("duplicate world differs at [%d]: got %v want %v", i, got, want)
		}
	}
	// Source hierarchy intact.
	if _, ok := sc.Get("leg_L_jnt"); !ok {
		t.Fatal("source child lost")
	}
}

func TestDuplicateUnsided(t *testing.T) {
	sc := scene.New()
	n, err := sc.CreateTransform("center_ctl")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Duplicate(sc, n); !errors.Is(err, ErrNotSided) {
		t.Fatalf("got %v, want ErrNotSided", err)
	}
}
