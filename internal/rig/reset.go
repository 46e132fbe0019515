package rig

import (
	"rigctl/internal/scene"
)

// ResetTransform writes the declared default back into every transform
// channel and every custom attribute of the node. Attributes without a
// discoverable default are skipped; locked or connected attributes warn
// and processing continues, so partial application is an accepted outcome.
func ResetTransform(sc *scene.Scene, node *scene.Node) error {
	return sc.Chunk("resetTransform", func() error {
		for _, name := range node.AttrNames() {
			def, ok := sc.AttrDefault(node, name)
			if !ok {
				continue
			}
			if err := sc.SetAttr(node, name, def); err != nil {
				log := sc.Log()
			log.Warn().Str("node", node.Name()).Str("attr", name).Err(err).
					Msg("could not reset attribute")
			}
		}
		return nil
	})
}

// ResetTransformOnNodes resets every node in the list.
func ResetTransformOnNodes(sc *scene.Scene, nodes []*scene.Node) error {
	return sc.Chunk("resetTransformOnNodes", func() error {
		for _, n := range nodes {
			if err := ResetTransform(sc, n); err != nil {
				return err
			}
		}
		return nil
	})
}
