package brand

// History is an append-only list of whole-state snapshots plus a cursor.
// Undo and redo move the cursor; pushing a new snapshot truncates any redo
// tail. Both operations are no-ops past their boundary, never errors.
type History struct {
	snapshots []State
	index     int
}

// NewHistory starts a history at the given initial state.
func NewHistory(initial State) *History {
	return &History{snapshots: []State{initial}}
}

// Current returns the snapshot under the cursor.
func (h *History) Current() State {
	return h.snapshots[h.index]
}

// Push appends a new snapshot after the cursor, discarding any redo tail.
func (h *History) Push(s State) {
	h.snapshots = append(h.snapshots[:h.index+1], s)
	h.index = len(h.snapshots) - 1
}

// Undo moves the cursor back one snapshot and returns it.
// At the beginning of history it returns the current state unchanged.
func (h *History) Undo() State {
	if h.index > 0 {
		h.index--
	}
	return h.snapshots[h.index]
}

// Redo moves the cursor forward one snapshot and returns it.
// At the end of history it returns the current state unchanged.
func (h *History) Redo() State {
	if h.index < len(h.snapshots)-1 {
		h.index++
	}
	return h.snapshots[h.index]
}

// CanUndo reports whether an undo would change the cursor.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a redo would change the cursor.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Index returns the cursor position.
func (h *History) Index() int { return h.index }

// Len returns the number of snapshots.
func (h *History) Len() int { return len(h.snapshots) }
