package rig

import (
	"fmt"

	"rigctl/internal/curve"
	"rigctl/internal/scene"
)

// Clipboard holds captured shape records for copy/paste between transforms
// within a session. Unlike the preset library file, the clipboard keeps
// color overrides.
type Clipboard struct {
	records []curve.Record
}

// HasData reports whether anything has been copied.
func (cb *Clipboard) HasData() bool {
	return len(cb.records) > 0
}

// Copy captures the shapes of a transform.
func (cb *Clipboard) Copy(sc *scene.Scene, transform *scene.Node) error {
	records, err := ShapesData(sc, transform)
	if err != nil {
		return err
	}
	cb.records = make([]curve.Record, len(records))
	for i, r := range records {
		cb.records[i] = r.Clone()
	}
	return nil
}

// Records returns a deep copy of the captured records.
func (cb *Clipboard) Records() []curve.Record {
	out := make([]curve.Record, len(cb.records))
	for i, r := range cb.records {
		out[i] = r.Clone()
	}
	return out
}

// Paste applies the captured shapes to every target transform.
func (cb *Clipboard) Paste(sc *scene.Scene, targets ...*scene.Node) error {
	if !cb.HasData() {
		return fmt.Errorf("rig: clipboard empty: %w", ErrNothingToPaste)
	}
	if len(targets) == 0 {
		return fmt.Errorf("rig: no paste targets: %w", ErrInvalidSelection)
	}
	return sc.Chunk("pasteShapes", func() error {
		for _, target := range targets {
			if err := SetShapesData(sc, target, cb.records); err != nil {
				return err
			}
		}
		return nil
	})
}
