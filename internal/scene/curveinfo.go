package scene

import "fmt"

// CurveInfo is a helper node wired to a curve shape for reading derived
// curve data (the knot vector is not a plain attribute on the shape).
// Callers own the node and must Delete it when done.
type CurveInfo struct {
	node  *Node
	input *Node
	scene *Scene
}

// CreateCurveInfo creates a curveInfo node connected to the given shape.
func (s *Scene) CreateCurveInfo(shape *Node) (*CurveInfo, error) {
	if shape.kind != KindCurve {
		return nil, fmt.Errorf("scene: %q is a %s: %w", shape.name, shape.kind, ErrWrongKind)
	}
	n, err := s.createNode(s.UniqueName("curveInfo1"), KindCurveInfo)
	if err != nil {
		return nil, err
	}
	return &CurveInfo{node: n, input: shape, scene: s}, nil
}

// Knots returns a copy of the connected curve's knot vector.
func (ci *CurveInfo) Knots() []float64 {
	knots := make([]float64, len(ci.input.geom.Knots))
	copy(knots, ci.input.geom.Knots)
	return knots
}

// Delete removes the helper node from the scene.
func (ci *CurveInfo) Delete() {
	ci.scene.Delete(ci.node)
}
