package game

// History keeps the linear undo/redo stacks of engine snapshots. One
// user-initiated command records exactly one checkpoint; recording anything
// new invalidates the redo stack.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
}

func NewHistory() *History {
	return &History{}
}

// Record pushes the pre-mutation snapshot onto the undo stack and discards
// any redo history.
func (h *History) Record(s Snapshot) {
	h.undoStack = append(h.undoStack, s)
	h.redoStack = h.redoStack[:0]
}

// Undo trades the current state for the most recent checkpoint. Returns
// false when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	restored := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return restored, true
}

// Redo trades the current state for the most recently undone one. Returns
// false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	restored := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return restored, true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

func (h *History) UndoLen() int {
	return len(h.undoStack)
}

func (h *History) RedoLen() int {
	return len(h.redoStack)
}

// Clear drops both stacks, as on a new game, a new round or a load.
func (h *History) Clear() {
	h.undoStack = h.undoStack[:0]
	h.redoStack = h.redoStack[:0]
}
