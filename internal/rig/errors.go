package rig

import "errors"

// Error kinds raised by the rig operations. All are returned synchronously;
// callers classify with errors.Is.
var (
	ErrNameCollision    = errors.New("name already exists")
	ErrNoShapesFound    = errors.New("no curve shapes found")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNothingToPaste   = errors.New("nothing to paste")
)
