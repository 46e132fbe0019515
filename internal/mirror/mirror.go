// Package mirror derives mirrored names and poses for symmetric rigs. The
// symmetry plane is fixed to YZ (the X axis is reflected); the naming
// convention uses L/R side tokens separated by underscores.
package mirror

import (
	"errors"
	"fmt"
	"strings"

	"rigctl/internal/mathutil"
	"rigctl/internal/scene"
)

var (
	ErrNotSided       = errors.New("name has no side token")
	ErrNoMirrorTarget = errors.New("mirror counterpart does not exist")
)

// sideTokens lists recognized side markers as (infix, prefix, suffix)
// candidates, each with its opposite.
var sideTokens = [][2]string{
	{"_L_", "_R_"},
	{"_l_", "_r_"},
}

var sideEdges = [][2]string{
	{"_L", "_R"},
	{"_l", "_r"},
	{"L_", "R_"},
	{"l_", "r_"},
}

// Name returns the mirrored counterpart of a sided name. ok is false when
// the name carries no recognized side token.
func Name(name string) (mirrored string, ok bool) {
	for _, pair := range sideTokens {
		for swap := 0; swap < 2; swap++ {
			from, to := pair[swap], pair[1-swap]
			if strings.Contains(name, from) {
				return strings.Replace(name, from, to, 1), true
			}
		}
	}
	for _, pair := range sideEdges {
		for swap := 0; swap < 2; swap++ {
			from, to := pair[swap], pair[1-swap]
			if strings.HasSuffix(name, from) {
				return strings.TrimSuffix(name, from) + to, true
			}
			if strings.HasPrefix(name, from) {
				return to + strings.TrimPrefix(name, from), true
			}
		}
	}
	return "", false
}

// WorldMatrix reflects a world transform across the YZ plane by negating
// the X row. Applying it twice returns the original matrix.
func WorldMatrix(m mathutil.Mat4) mathutil.Mat4 {
	m[0], m[1], m[2], m[3] = -m[0], -m[1], -m[2], -m[3]
	return m
}

// Pose copies the node's mirrored world matrix onto its mirror-named
// counterpart, leaving the node untouched.
func Pose(sc *scene.Scene, node *scene.Node) error {
	counterName, ok := Name(node.Name())
	if !ok {
		return fmt.Errorf("mirror: %q: %w", node.Name(), ErrNotSided)
	}
	counterpart, ok := sc.Get(counterName)
	if !ok {
		return fmt.Errorf("mirror: %q: %w", counterName, ErrNoMirrorTarget)
	}
	return sc.Chunk("mirrorPose", func() error {
		return sc.SetWorldMatrix(counterpart, WorldMatrix(sc.WorldMatrix(node)))
	})
}

// Duplicate copies the node's hierarchy, applies the mirrored world matrix
// to the duplicate root, and renames every duplicated node by swapping its
// side token (nodes without a token keep their copy name).
func Duplicate(sc *scene.Scene, node *scene.Node) (*scene.Node, error) {
	if _, ok := Name(node.Name()); !ok {
		return nil, fmt.Errorf("mirror: %q: %w", node.Name(), ErrNotSided)
	}

	var dup *scene.Node
	err := sc.Chunk("mirrorDuplicate", func() error {
		dup = sc.Duplicate(node)
		if err := renameMirrored(sc, node, dup); err != nil {
			return err
		}
		return sc.SetWorldMatrix(dup, WorldMatrix(sc.WorldMatrix(node)))
	})
	if err != nil {
		return nil, err
	}
	return dup, nil
}

// renameMirrored walks the source and duplicate subtrees in parallel,
// renaming each duplicate after its source with the side token swapped.
func renameMirrored(sc *scene.Scene, src, dup *scene.Node) error {
	if mirrored, ok := Name(src.Name()); ok {
		if err := sc.Rename(dup, sc.UniqueName(mirrored)); err != nil {
			return err
		}
	}
	srcKids, dupKids := src.Children(), dup.Children()
	for i := range dupKids {
		if err := renameMirrored(sc, srcKids[i], dupKids[i]); err != nil {
			return err
		}
	}
	return nil
}
