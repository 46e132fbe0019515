package scene

// undoChunk groups the inverses of one user-facing operation.
type undoChunk struct {
	name     string
	inverses []func()
}

// record appends an inverse for a mutation about to happen. With no chunk
// open the mutation becomes its own single-step chunk.
func (s *Scene) record(inverse func()) {
	if s.openDepth > 0 {
		top := &s.undoStack[len(s.undoStack)-1]
		top.inverses = append(top.inverses, inverse)
		return
	}
	s.undoStack = append(s.undoStack, undoChunk{inverses: []func(){inverse}})
}

// Chunk runs fn with all its scene mutations grouped into one undo step.
// The chunk closes on every exit path; a returned error keeps the chunk so
// the partial work stays undoable. Nested calls fold into the outermost
// chunk.
func (s *Scene) Chunk(name string, fn func() error) error {
	if s.openDepth == 0 {
		s.undoStack = append(s.undoStack, undoChunk{name: name})
	}
	s.openDepth++
	defer func() {
		s.openDepth--
		if s.openDepth == 0 {
			top := &s.undoStack[len(s.undoStack)-1]
			if len(top.inverses) == 0 {
				s.undoStack = s.undoStack[:len(s.undoStack)-1]
			}
		}
	}()
	return fn()
}

// Undo rolls back the most recent chunk. Returns false when there is
// nothing to undo.
func (s *Scene) Undo() bool {
	if s.openDepth > 0 || len(s.undoStack) == 0 {
		return false
	}
	chunk := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	for i := len(chunk.inverses) - 1; i >= 0; i-- {
		chunk.inverses[i]()
	}
	return true
}

// UndoDepth returns the number of undoable chunks.
func (s *Scene) UndoDepth() int {
	return len(s.undoStack)
}
