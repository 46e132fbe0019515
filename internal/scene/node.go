package scene

import (
	"rigctl/internal/curve"
)

// Kind discriminates node types in the graph.
type Kind int

const (
	KindTransform Kind = iota
	KindJoint
	KindCurve
	KindCurveInfo
)

func (k Kind) String() string {
	switch k {
	case KindTransform:
		return "transform"
	case KindJoint:
		return "joint"
	case KindCurve:
		return "nurbsCurve"
	case KindCurveInfo:
		return "curveInfo"
	}
	return "unknown"
}

// Node is one element of the scene graph. Transform and joint nodes carry
// the nine transform channels; curve nodes carry geometry and a display
// color override. Nodes are created and mutated only through their Scene.
type Node struct {
	name     string
	kind     Kind
	parent   *Node
	children []*Node

	attrs     map[string]*Attr
	attrOrder []string

	// curve shape state
	geom            curve.Geometry
	overrideEnabled bool
	overrideColor   int

	scene *Scene
}

func (n *Node) Name() string { return n.name }
func (n *Node) Kind() Kind   { return n.kind }
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list in creation order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// HasTransform reports whether the node carries transform channels.
func (n *Node) HasTransform() bool {
	return n.kind == KindTransform || n.kind == KindJoint
}

// Geometry returns a deep copy of a curve node's geometry. Zero value for
// other kinds.
func (n *Node) Geometry() curve.Geometry {
	if n.kind != KindCurve {
		return curve.Geometry{}
	}
	return n.geom.Clone()
}

// walk visits n and every descendant depth-first in child order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.children {
		c.walk(visit)
	}
}
