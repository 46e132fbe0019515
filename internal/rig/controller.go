package rig

import (
	"fmt"

	"rigctl/internal/curve"
	"rigctl/internal/mathutil"
	"rigctl/internal/scene"
)

// defaultControlColor is the override index new controls are created with.
const defaultControlColor = 17

// ControllerOptions configures CreateController. Host context (active
// manipulator, current selection) is passed in explicitly: SnapPoint is the
// manipulator pick-point when a sub-component was selected, Reference the
// whole object to match otherwise. Both nil leaves the buffer at the
// origin.
type ControllerOptions struct {
	Name      string // control base name; empty means "default"
	Suffix    string // control suffix; empty means "_ctl"
	WithJoint bool
	LockAttrs []string // attributes to lock on the control; failures warn

	SnapPoint *mathutil.Vec3
	Reference *scene.Node
}

// CreateController creates a buffer transform with a circle control curve
// under it, and optionally a joint under the control. Returns the buffer
// and the control.
func CreateController(sc *scene.Scene, opts ControllerOptions) (buffer, control *scene.Node, err error) {
	name := opts.Name
	if name == "" {
		name = "default"
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = "_ctl"
	}

	ctlName := name + suffix
	if sc.Exists(ctlName) {
		return nil, nil, fmt.Errorf("rig: control %q: %w", ctlName, ErrNameCollision)
	}
	bfrName := name + "_bfr"
	if sc.Exists(bfrName) {
		return nil, nil, fmt.Errorf("rig: buffer %q: %w", bfrName, ErrNameCollision)
	}

	err = sc.Chunk("createController", func() error {
		buffer, err = sc.CreateTransform(bfrName)
		if err != nil {
			return err
		}

		control, err = sc.CreateCurve(ctlName, curve.Circle(1))
		if err != nil {
			return err
		}
		for _, shape := range sc.CurveShapes(control) {
			if err := sc.SetColorOverride(shape, true, defaultControlColor); err != nil {
				return err
			}
		}
		if err := sc.SetParent(control, buffer); err != nil {
			return err
		}

		if opts.WithJoint {
			joint, err := sc.CreateJoint(sc.UniqueName(name + "_jnt"))
			if err != nil {
				return err
			}
			if err := sc.SetParent(joint, control); err != nil {
				return err
			}
		}

		for _, attr := range opts.LockAttrs {
			if err := sc.LockAttr(control, attr, true); err != nil {
				log := sc.Log()
				log.Warn().Str("node", ctlName).Str("attr", attr).Err(err).
					Msg("could not lock attribute")
			}
		}

		return snapBuffer(sc, buffer, opts)
	})
	if err != nil {
		return nil, nil, err
	}
	return buffer, control, nil
}

// snapBuffer places the buffer on the pick-point or reference object.
func snapBuffer(sc *scene.Scene, buffer *scene.Node, opts ControllerOptions) error {
	switch {
	case opts.SnapPoint != nil:
		return sc.SetWorldTranslation(buffer, *opts.SnapPoint)
	case opts.Reference != nil:
		// Match position and rotation, keep scale.
		world := sc.WorldMatrix(opts.Reference)
		t, r, _ := mathutil.DecomposeTRS(world)
		matched := mathutil.ComposeTRS(t, r, mathutil.Vec3{1, 1, 1})
		return sc.SetWorldMatrix(buffer, matched)
	}
	return nil
}
