// Package scene provides the in-memory scene graph the rig operations run
// against: typed nodes with transform channels, parenting, unique names,
// curve shapes with display color overrides, and an undo journal grouping
// mutations into chunks.
//
// A Scene is not safe for concurrent use; all operations are expected to
// run on one goroutine, mirroring a DCC host's main-thread model.
package scene

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"rigctl/internal/curve"
)

var (
	ErrExists      = errors.New("name already exists")
	ErrNotFound    = errors.New("node not found")
	ErrUnknownAttr = errors.New("unknown attribute")
	ErrLocked      = errors.New("attribute is locked")
	ErrConnected   = errors.New("attribute has an incoming connection")
	ErrWrongKind   = errors.New("wrong node kind")
)

// Scene owns a node graph. The zero value is not usable; construct with New.
type Scene struct {
	nodes map[string]*Node
	roots []*Node
	log   zerolog.Logger

	undoStack []undoChunk
	openDepth int
}

func New() *Scene {
	return &Scene{
		nodes: make(map[string]*Node),
		log:   zerolog.Nop(),
	}
}

// SetLogger routes warning output. The default logger discards everything.
func (s *Scene) SetLogger(l zerolog.Logger) { s.log = l }

// Log returns the scene's logger for callers that warn in scene context.
func (s *Scene) Log() zerolog.Logger { return s.log }

// Get returns the node with the given name.
func (s *Scene) Get(name string) (*Node, bool) {
	n, ok := s.nodes[name]
	return n, ok
}

// Exists reports whether a node with the given name exists.
func (s *Scene) Exists(name string) bool {
	_, ok := s.nodes[name]
	return ok
}

// UniqueName returns base if it is free, otherwise base with the first free
// numeric suffix starting at 1.
func (s *Scene) UniqueName(base string) string {
	if !s.Exists(base) {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s%d", base, i)
		if !s.Exists(name) {
			return name
		}
	}
}

// CreateTransform creates an empty transform node at the root.
func (s *Scene) CreateTransform(name string) (*Node, error) {
	return s.createNode(name, KindTransform)
}

// CreateJoint creates a joint node at the root.
func (s *Scene) CreateJoint(name string) (*Node, error) {
	return s.createNode(name, KindJoint)
}

// CreateCurve creates a transform with one curve shape child holding the
// given geometry, the way a host curve command does. An empty name
// auto-names the transform ("curve1", "curve2", ...). The shape is named
// "{transform}Shape". Returns the transform.
func (s *Scene) CreateCurve(name string, g curve.Geometry) (*Node, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		for i := 1; ; i++ {
			name = fmt.Sprintf("curve%d", i)
			if !s.Exists(name) {
				break
			}
		}
	}
	tr, err := s.createNode(name, KindTransform)
	if err != nil {
		return nil, err
	}
	shape, err := s.createNode(s.UniqueName(name+"Shape"), KindCurve)
	if err != nil {
		s.rawDelete(tr)
		return nil, err
	}
	shape.geom = g.Clone()
	s.rawReparent(shape, tr, -1)
	s.record(func() { s.rawReparent(shape, nil, -1) })
	return tr, nil
}

func (s *Scene) createNode(name string, kind Kind) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("scene: empty node name")
	}
	if s.Exists(name) {
		return nil, fmt.Errorf("scene: %q: %w", name, ErrExists)
	}
	n := &Node{
		name:  name,
		kind:  kind,
		attrs: make(map[string]*Attr),
		scene: s,
	}
	if n.HasTransform() {
		n.initChannels()
	}
	s.nodes[name] = n
	s.roots = append(s.roots, n)
	s.record(func() { s.rawDelete(n) })
	return n, nil
}

// Delete removes a node and its whole subtree.
func (s *Scene) Delete(n *Node) {
	parent := n.parent
	idx := s.childIndex(n)
	s.record(func() { s.rawInsert(n, parent, idx) })
	s.rawDelete(n)
}

// SetParent moves a node under parent (nil for the scene root), preserving
// its local values. The node keeps its position among the new siblings at
// the end of the child list.
func (s *Scene) SetParent(n *Node, parent *Node) error {
	for p := parent; p != nil; p = p.parent {
		if p == n {
			return fmt.Errorf("scene: cannot parent %q under its own subtree", n.name)
		}
	}
	oldParent := n.parent
	oldIdx := s.childIndex(n)
	s.record(func() { s.rawReparent(n, oldParent, oldIdx) })
	s.rawReparent(n, parent, -1)
	return nil
}

// Rename gives the node a new unique name.
func (s *Scene) Rename(n *Node, name string) error {
	if name == n.name {
		return nil
	}
	if s.Exists(name) {
		return fmt.Errorf("scene: %q: %w", name, ErrExists)
	}
	old := n.name
	s.record(func() {
		delete(s.nodes, n.name)
		n.name = old
		s.nodes[old] = n
	})
	delete(s.nodes, old)
	n.name = name
	s.nodes[name] = n
	return nil
}

// Roots returns the top-level nodes in creation order.
func (s *Scene) Roots() []*Node {
	out := make([]*Node, len(s.roots))
	copy(out, s.roots)
	return out
}

// Walk visits every node depth-first, roots in creation order. This is the
// scene enumeration order; it is stable for one scene but callers must not
// rely on any particular total order across hosts.
func (s *Scene) Walk(visit func(*Node)) {
	for _, r := range s.roots {
		r.walk(visit)
	}
}

// CurveShapes returns the curve shape children of a node, or the node
// itself when it is already a curve shape.
func (s *Scene) CurveShapes(n *Node) []*Node {
	if n.kind == KindCurve {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.children {
		if c.kind == KindCurve {
			out = append(out, c)
		}
	}
	return out
}

// AllCurveShapes returns every curve shape in the scene in enumeration order.
func (s *Scene) AllCurveShapes() []*Node {
	var out []*Node
	s.Walk(func(n *Node) {
		if n.kind == KindCurve {
			out = append(out, n)
		}
	})
	return out
}

// ColorOverride returns a curve shape's display override state.
func (s *Scene) ColorOverride(shape *Node) (enabled bool, index int) {
	return shape.overrideEnabled, shape.overrideColor
}

// SetColorOverride sets a curve shape's display override state.
func (s *Scene) SetColorOverride(shape *Node, enabled bool, index int) error {
	if shape.kind != KindCurve {
		return fmt.Errorf("scene: %q is a %s: %w", shape.name, shape.kind, ErrWrongKind)
	}
	oldEnabled, oldIndex := shape.overrideEnabled, shape.overrideColor
	s.record(func() {
		shape.overrideEnabled, shape.overrideColor = oldEnabled, oldIndex
	})
	shape.overrideEnabled, shape.overrideColor = enabled, index
	return nil
}

// SetCurveGeometry replaces a curve shape's geometry.
func (s *Scene) SetCurveGeometry(shape *Node, g curve.Geometry) error {
	if shape.kind != KindCurve {
		return fmt.Errorf("scene: %q is a %s: %w", shape.name, shape.kind, ErrWrongKind)
	}
	if err := g.Validate(); err != nil {
		return err
	}
	old := shape.geom
	s.record(func() { shape.geom = old })
	shape.geom = g.Clone()
	return nil
}

// Duplicate deep-copies a node and its subtree under the same parent.
// Copies are named after the originals with a numeric suffix picking the
// first free name.
func (s *Scene) Duplicate(n *Node) *Node {
	dup := s.dupNode(n)
	s.rawReparent(dup, n.parent, -1)
	s.record(func() { s.rawDelete(dup) })
	return dup
}

func (s *Scene) dupNode(src *Node) *Node {
	dup := &Node{
		name:            s.UniqueName(src.name),
		kind:            src.kind,
		attrs:           make(map[string]*Attr),
		geom:            src.geom.Clone(),
		overrideEnabled: src.overrideEnabled,
		overrideColor:   src.overrideColor,
		scene:           s,
	}
	for _, name := range src.attrOrder {
		a := *src.attrs[name]
		dup.attrs[name] = &a
		dup.attrOrder = append(dup.attrOrder, name)
	}
	s.nodes[dup.name] = dup
	for _, c := range src.children {
		cd := s.dupNode(c)
		cd.parent = dup
		dup.children = append(dup.children, cd)
	}
	return dup
}

// childIndex returns n's index among its siblings (parent children or
// scene roots).
func (s *Scene) childIndex(n *Node) int {
	siblings := s.roots
	if n.parent != nil {
		siblings = n.parent.children
	}
	for i, c := range siblings {
		if c == n {
			return i
		}
	}
	return -1
}

// rawDelete removes a subtree without journaling.
func (s *Scene) rawDelete(n *Node) {
	s.detach(n)
	n.walk(func(d *Node) { delete(s.nodes, d.name) })
}

// rawInsert restores a detached subtree at a position without journaling.
func (s *Scene) rawInsert(n *Node, parent *Node, idx int) {
	n.walk(func(d *Node) { s.nodes[d.name] = d })
	s.attach(n, parent, idx)
}

// rawReparent moves a live node without journaling. idx < 0 appends.
func (s *Scene) rawReparent(n *Node, parent *Node, idx int) {
	s.detach(n)
	s.attach(n, parent, idx)
}

func (s *Scene) detach(n *Node) {
	siblings := &s.roots
	if n.parent != nil {
		siblings = &n.parent.children
	}
	for i, c := range *siblings {
		if c == n {
			*siblings = append((*siblings)[:i], (*siblings)[i+1:]...)
			break
		}
	}
	n.parent = nil
}

func (s *Scene) attach(n *Node, parent *Node, idx int) {
	n.parent = parent
	siblings := &s.roots
	if parent != nil {
		siblings = &parent.children
	}
	if idx < 0 || idx > len(*siblings) {
		*siblings = append(*siblings, n)
		return
	}
	*siblings = append(*siblings, nil)
	copy((*siblings)[idx+1:], (*siblings)[idx:])
	(*siblings)[idx] = n
}
