// Package rig implements the controller-authoring operations: creating
// controllers, capturing and applying curve-shape data, display colors,
// control-vertex editing and channel resets. Every public operation runs
// inside one scene undo chunk.
package rig

import (
	"fmt"

	"rigctl/internal/curve"
	"rigctl/internal/scene"
)

// ShapesData captures every curve shape of a transform as records: degree,
// form, control points, knot vector (read through a curve-info helper) and
// the current color override.
func ShapesData(sc *scene.Scene, transform *scene.Node) ([]curve.Record, error) {
	shapes := sc.CurveShapes(transform)
	if len(shapes) == 0 {
		return nil, fmt.Errorf("rig: %q: %w", transform.Name(), ErrNoShapesFound)
	}

	var records []curve.Record
	err := sc.Chunk("shapesData", func() error {
		for _, shape := range shapes {
			rec, err := encodeShape(sc, shape)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func encodeShape(sc *scene.Scene, shape *scene.Node) (curve.Record, error) {
	g := shape.Geometry()

	info, err := sc.CreateCurveInfo(shape)
	if err != nil {
		return curve.Record{}, err
	}
	defer info.Delete()

	rec := curve.Record{
		Geometry: curve.Geometry{
			Degree: g.Degree,
			Form:   g.Form,
			Points: g.Points,
			Knots:  info.Knots(),
		},
	}
	if enabled, index := sc.ColorOverride(shape); enabled {
		c := index
		rec.Color = &c
	}
	return rec, nil
}

// SetShapesData replaces a transform's curve shapes with curves rebuilt
// from the records. All new curves are constructed before any existing
// shape is deleted, so a bad record never leaves the target without its
// shapes. Old shape colors carry over positionally onto the new shapes;
// count mismatches are tolerated.
func SetShapesData(sc *scene.Scene, transform *scene.Node, records []curve.Record) error {
	return sc.Chunk("setShapesData", func() error {
		// Construct first.
		temps := make([]*scene.Node, 0, len(records))
		for _, rec := range records {
			g, err := curve.Build(rec.WrappedPoints(), rec.Degree, rec.Knots, rec.Form.IsPeriodic())
			if err != nil {
				for _, tmp := range temps {
					sc.Delete(tmp)
				}
				return fmt.Errorf("rig: rebuild shape for %q: %w", transform.Name(), err)
			}
			tmp, err := sc.CreateCurve("", g)
			if err != nil {
				for _, tmp := range temps {
					sc.Delete(tmp)
				}
				return err
			}
			temps = append(temps, tmp)
		}

		// Capture old colors, then destroy.
		var oldColors []*int
		for _, old := range sc.CurveShapes(transform) {
			var c *int
			if enabled, index := sc.ColorOverride(old); enabled {
				v := index
				c = &v
			}
			oldColors = append(oldColors, c)
			sc.Delete(old)
		}

		// Move the new shapes over.
		for i, tmp := range temps {
			shape := sc.CurveShapes(tmp)[0]

			name := transform.Name() + "Shape"
			if i > 0 {
				name = fmt.Sprintf("%s%d", name, i)
			}

			if err := sc.SetParent(shape, transform); err != nil {
				return err
			}
			if err := sc.Rename(shape, sc.UniqueName(name)); err != nil {
				return err
			}
			if i < len(oldColors) {
				if err := applyColor(sc, shape, oldColors[i]); err != nil {
					return err
				}
			}
			sc.Delete(tmp)
		}
		return nil
	})
}

func applyColor(sc *scene.Scene, shape *scene.Node, index *int) error {
	if index == nil {
		return sc.SetColorOverride(shape, false, 0)
	}
	return sc.SetColorOverride(shape, true, *index)
}

// ReplaceShapes copies the first node's shapes onto every remaining node.
func ReplaceShapes(sc *scene.Scene, nodes []*scene.Node) error {
	if len(nodes) < 2 {
		return fmt.Errorf("rig: need a source and at least one destination, got %d: %w",
			len(nodes), ErrInvalidSelection)
	}
	records, err := ShapesData(sc, nodes[0])
	if err != nil {
		return err
	}
	return sc.Chunk("replaceShapes", func() error {
		for _, dst := range nodes[1:] {
			if err := SetShapesData(sc, dst, records); err != nil {
				return err
			}
		}
		return nil
	})
}
