package scene

import (
	"fmt"

	"rigctl/internal/mathutil"
)

// Attr returns the current value of an attribute.
func (s *Scene) Attr(n *Node, name string) (float64, error) {
	a, ok := n.attrs[name]
	if !ok {
		return 0, fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrUnknownAttr)
	}
	return a.Value, nil
}

// AttrDefault returns an attribute's declared default value. ok is false
// when the attribute does not exist or carries no default.
func (s *Scene) AttrDefault(n *Node, name string) (value float64, ok bool) {
	a, exists := n.attrs[name]
	if !exists || !a.HasDefault {
		return 0, false
	}
	return a.Default, true
}

// SetAttr writes an attribute value. Locked or connected attributes reject
// the write.
func (s *Scene) SetAttr(n *Node, name string, value float64) error {
	a, ok := n.attrs[name]
	if !ok {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrUnknownAttr)
	}
	if a.Locked {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrLocked)
	}
	if a.Connected {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrConnected)
	}
	old := a.Value
	s.record(func() { a.Value = old })
	a.Value = value
	return nil
}

// AddAttr declares a custom attribute with a default value.
func (s *Scene) AddAttr(n *Node, name string, def float64) error {
	if _, ok := n.attrs[name]; ok {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrExists)
	}
	n.addAttr(name, def, true)
	s.record(func() { n.removeAttr(name) })
	return nil
}

// LockAttr sets an attribute's locked flag.
func (s *Scene) LockAttr(n *Node, name string, locked bool) error {
	a, ok := n.attrs[name]
	if !ok {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrUnknownAttr)
	}
	old := a.Locked
	s.record(func() { a.Locked = old })
	a.Locked = locked
	return nil
}

// Connect marks an attribute as having an incoming connection, which blocks
// direct writes.
func (s *Scene) Connect(n *Node, name string, connected bool) error {
	a, ok := n.attrs[name]
	if !ok {
		return fmt.Errorf("scene: %s.%s: %w", n.name, name, ErrUnknownAttr)
	}
	old := a.Connected
	s.record(func() { a.Connected = old })
	a.Connected = connected
	return nil
}

func (n *Node) channelVec(base string) mathutil.Vec3 {
	return mathutil.Vec3{
		n.attrs[base+"X"].Value,
		n.attrs[base+"Y"].Value,
		n.attrs[base+"Z"].Value,
	}
}

// LocalMatrix composes the node's transform channels (rotation channels are
// degrees, X-then-Y-then-Z order). Non-transform nodes are identity.
func (s *Scene) LocalMatrix(n *Node) mathutil.Mat4 {
	if !n.HasTransform() {
		return mathutil.Mat4Identity()
	}
	t := n.channelVec("translate")
	r := n.channelVec("rotate")
	sc := n.channelVec("scale")
	return mathutil.ComposeTRS(t, mathutil.Vec3{
		mathutil.Deg2Rad(r[0]),
		mathutil.Deg2Rad(r[1]),
		mathutil.Deg2Rad(r[2]),
	}, sc)
}

// WorldMatrix chains local matrices up the parent chain.
func (s *Scene) WorldMatrix(n *Node) mathutil.Mat4 {
	m := s.LocalMatrix(n)
	for p := n.parent; p != nil; p = p.parent {
		m = mathutil.Mat4Mul(s.LocalMatrix(p), m)
	}
	return m
}

// SetWorldMatrix writes a world transform onto a node by decomposing the
// matrix relative to its parent into the nine channels. Fails on the first
// locked or connected channel.
func (s *Scene) SetWorldMatrix(n *Node, world mathutil.Mat4) error {
	if !n.HasTransform() {
		return fmt.Errorf("scene: %q is a %s: %w", n.name, n.kind, ErrWrongKind)
	}
	local := world
	if n.parent != nil {
		local = mathutil.Mat4Mul(s.WorldMatrix(n.parent).Invert(), world)
	}
	t, r, sc := mathutil.DecomposeTRS(local)
	values := []struct {
		name  string
		value float64
	}{
		{"translateX", t[0]}, {"translateY", t[1]}, {"translateZ", t[2]},
		{"rotateX", mathutil.Rad2Deg(r[0])}, {"rotateY", mathutil.Rad2Deg(r[1])}, {"rotateZ", mathutil.Rad2Deg(r[2])},
		{"scaleX", sc[0]}, {"scaleY", sc[1]}, {"scaleZ", sc[2]},
	}
	for _, v := range values {
		if err := s.SetAttr(n, v.name, v.value); err != nil {
			return err
		}
	}
	return nil
}

// SetWorldTranslation moves a node so its world-space pivot lands on p,
// leaving rotation and scale channels untouched.
func (s *Scene) SetWorldTranslation(n *Node, p mathutil.Vec3) error {
	if !n.HasTransform() {
		return fmt.Errorf("scene: %q is a %s: %w", n.name, n.kind, ErrWrongKind)
	}
	local := p
	if n.parent != nil {
		local = s.WorldMatrix(n.parent).Invert().MulPoint(p)
	}
	for i, name := range []string{"translateX", "translateY", "translateZ"} {
		if err := s.SetAttr(n, name, local[i]); err != nil {
			return err
		}
	}
	return nil
}
