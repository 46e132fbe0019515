package rig

import (
	"rigctl/internal/scene"
)

// SetColor sets or clears the display color override on every curve shape
// of node (or on node itself when it is a shape). A nil index clears the
// override. Nodes without curve shapes produce a warning, not an error.
func SetColor(sc *scene.Scene, node *scene.Node, index *int) error {
	return sc.Chunk("setColor", func() error {
		shapes := sc.CurveShapes(node)
		if len(shapes) == 0 {
			log := sc.Log()
			log.Warn().Str("node", node.Name()).
				Msg("no shape of type nurbsCurve found")
			return nil
		}
		for _, shape := range shapes {
			if err := applyColor(sc, shape, index); err != nil {
				return err
			}
		}
		return nil
	})
}

// SetColorOnNodes applies SetColor to every node. An empty list is a no-op.
func SetColorOnNodes(sc *scene.Scene, nodes []*scene.Node, index *int) error {
	if len(nodes) == 0 {
		return nil
	}
	return sc.Chunk("setColorOnNodes", func() error {
		for _, n := range nodes {
			if err := SetColor(sc, n, index); err != nil {
				return err
			}
		}
		return nil
	})
}

// SelectByColor returns the parent transforms of every curve shape whose
// override state matches: a nil index matches shapes with the override
// disabled, a non-nil index matches enabled shapes with that stored index.
// Results follow scene enumeration order (no guaranteed total order).
func SelectByColor(sc *scene.Scene, index *int) []*scene.Node {
	var out []*scene.Node
	for _, shape := range sc.AllCurveShapes() {
		enabled, stored := sc.ColorOverride(shape)
		if enabled != (index != nil) {
			continue
		}
		if index != nil && stored != *index {
			continue
		}
		if parent := shape.Parent(); parent != nil {
			out = append(out, parent)
		}
	}
	return out
}
