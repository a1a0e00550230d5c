package cubik

// History is a pointer-addressed log of applied moves supporting
// undo/redo. The cursor counts applied entries: entries[:cursor] have
// been played forward, entries[cursor:] are the redo branch.
type History struct {
	entries []Move
	cursor  int
	limit   int // 0 = unbounded
}

// NewHistory creates an empty move history. A limit of 0 means
// unbounded; a positive limit evicts the oldest entries when exceeded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Append records a newly applied move. Any redo branch past the cursor
// is discarded first.
func (h *History) Append(m Move) {
	h.entries = append(h.entries[:h.cursor], m)
	h.cursor = len(h.entries)

	if h.limit > 0 && len(h.entries) > h.limit {
		drop := len(h.entries) - h.limit
		h.entries = append(h.entries[:0], h.entries[drop:]...)
		h.cursor -= drop
	}
}

// Undo steps the cursor back and returns the move to invert.
// Returns false when there is nothing to undo.
func (h *History) Undo() (Move, bool) {
	if h.cursor == 0 {
		return Move{}, false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the move to replay.
// Returns false when there is nothing to redo.
func (h *History) Redo() (Move, bool) {
	if h.cursor == len(h.entries) {
		return Move{}, false
	}
	m := h.entries[h.cursor]
	h.cursor++
	return m, true
}

// Applied returns a copy of the moves played forward so far, oldest first.
func (h *History) Applied() []Move {
	out := make([]Move, h.cursor)
	copy(out, h.entries[:h.cursor])
	return out
}

// Len returns the number of applied (undoable) moves.
func (h *History) Len() int {
	return h.cursor
}

// RedoLen returns the number of redoable moves past the cursor.
func (h *History) RedoLen() int {
	return len(h.entries) - h.cursor
}

// Clear drops all entries and resets the cursor.
func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.cursor = 0
}
