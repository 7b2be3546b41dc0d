package easel

// History is a bounded undo/redo sequence of whole-canvas raster snapshots
// with a cursor marking the currently displayed state.
//
// Boundary calls are silent no-ops: undo with nothing to undo and redo with
// nothing to redo return ok=false, never an error, and do not broadcast
// StateChanged since availability cannot have changed. Every state-changing
// push, undo, redo, and clear broadcasts. Pushing while the cursor sits
// before the end discards the undone-but-not-redone future.
type History struct {
	entries    []*Snapshot
	cursor     int // index of the entry currently displayed; -1 when empty
	maxEntries int

	// StateChanged broadcasts undo/redo availability after every
	// state-changing push, undo, redo, and clear.
	StateChanged Topic[HistoryState]
}

// NewHistory creates a history bounded to maxEntries snapshots. Passing a
// value < 1 uses DefaultMaxHistory.
func NewHistory(maxEntries int) *History {
	if maxEntries < 1 {
		maxEntries = DefaultMaxHistory
	}
	return &History{cursor: -1, maxEntries: maxEntries}
}

// Push appends snap as the new current entry, taking ownership of it.
// Entries after the cursor are truncated first; if the bound is exceeded the
// oldest entry is evicted and the cursor shifted so the undo distance from
// the cursor back to the start is preserved.
func (h *History) Push(snap *Snapshot) {
	h.entries = h.entries[:h.cursor+1]
	h.entries = append(h.entries, snap)
	h.cursor++
	if len(h.entries) > h.maxEntries {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = nil
		h.entries = h.entries[:len(h.entries)-1]
		h.cursor--
	}
	h.broadcast()
}

// Undo steps the cursor back one entry and returns a deep copy of the
// snapshot at the new position. Returns ok=false, with no state change, when
// there is nothing to undo.
func (h *History) Undo() (*Snapshot, bool) {
	if h.cursor <= 0 {
		return nil, false
	}
	h.cursor--
	snap := h.entries[h.cursor].Clone()
	h.broadcast()
	return snap, true
}

// Redo steps the cursor forward one entry and returns a deep copy of the
// snapshot at the new position. Returns ok=false, with no state change, when
// there is nothing to redo.
func (h *History) Redo() (*Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return nil, false
	}
	h.cursor++
	snap := h.entries[h.cursor].Clone()
	h.broadcast()
	return snap, true
}

// CanUndo reports whether Undo would return a snapshot.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether Redo would return a snapshot.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of retained entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear empties the history, e.g. when a project is loaded.
func (h *History) Clear() {
	h.entries = nil
	h.cursor = -1
	h.broadcast()
}

func (h *History) broadcast() {
	h.StateChanged.Publish(HistoryState{CanUndo: h.CanUndo(), CanRedo: h.CanRedo()})
}
