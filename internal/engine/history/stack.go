// Package history records invertible change records for every scene
// mutation and replays them for undo/redo.
//
// # Changes
//
// A Change is one atomic mutation as a tagged variant (node add/remove/
// update, camera move, guide edits, visual-group edits). Each kind
// carries everything needed to apply itself forward and to produce its
// exact inverse, so the stack itself never inspects change contents.
//
// # Entries and batches
//
// An Entry is one undoable step. Outside a batch every recorded change
// becomes its own entry. During a gesture the engine opens a Batch;
// changes recorded into it coalesce by key (node id, guide id, the
// camera) so that N incremental drag updates collapse into one record
// whose Before is the pre-batch state and whose After is the final
// state. A batch that closes with zero changes is discarded.
//
// # Replay
//
// Undo pops the past stack and applies each change's inverse in reverse
// order; redo replays forward. Both are refused while a batch is open.
// The engine threads TransitionMode through its apply path so replayed
// changes are never recorded again.
package history

// DefaultMaxEntries bounds the past stack when no limit is configured.
const DefaultMaxEntries = 1000

// History holds the past and future entry stacks and the optional open
// batch. It is a passive data structure: the engine facade applies
// changes to the scene and drives replay; History only tracks them.
type History struct {
	past   []*Entry
	future []*Entry
	batch  *Batch

	maxEntries int
}

// New creates a history with the given past-stack limit.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record routes a change into the open batch, or pushes it as a
// single-change entry when no batch is open. Fresh entries clear the
// future stack.
func (h *History) Record(c Change) {
	if h.batch != nil {
		h.batch.Record(c)
		return
	}
	h.push(&Entry{Changes: []Change{c}})
}

func (h *History) push(e *Entry) {
	h.past = append(h.past, e)
	h.future = nil
	if len(h.past) > h.maxEntries {
		h.past = h.past[len(h.past)-h.maxEntries:]
	}
}

// Begin opens a batch. Batches do not nest: if one is already open the
// call is ignored and Begin reports false.
func (h *History) Begin(label string) bool {
	if h.batch != nil {
		return false
	}
	h.batch = newBatch(label)
	return true
}

// End closes the open batch and flushes it to the past stack. A batch
// that accumulated no changes is discarded. Returns the flushed entry,
// or nil when nothing was pushed.
func (h *History) End() *Entry {
	b := h.batch
	h.batch = nil
	if b == nil || b.Len() == 0 {
		return nil
	}
	e := b.entry()
	h.push(e)
	return e
}

// BatchOpen reports whether a batch is currently open.
func (h *History) BatchOpen() bool { return h.batch != nil }

// CanUndo reports whether an undo step is available. Replay is refused
// while a batch is open.
func (h *History) CanUndo() bool { return h.batch == nil && len(h.past) > 0 }

// CanRedo reports whether a redo step is available.
func (h *History) CanRedo() bool { return h.batch == nil && len(h.future) > 0 }

// PastLen returns the depth of the past stack.
func (h *History) PastLen() int { return len(h.past) }

// FutureLen returns the depth of the future stack.
func (h *History) FutureLen() int { return len(h.future) }

// PopPast removes and returns the most recent entry. It refuses while a
// batch is open.
func (h *History) PopPast() (*Entry, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	e := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	return e, true
}

// PopFuture removes and returns the next redo entry. It refuses while a
// batch is open.
func (h *History) PopFuture() (*Entry, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	e := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	return e, true
}

// PushFuture stores an undone entry for redo.
func (h *History) PushFuture(e *Entry) {
	h.future = append(h.future, e)
}

// PushPast restores a redone entry to the past stack without clearing
// the future stack.
func (h *History) PushPast(e *Entry) {
	h.past = append(h.past, e)
}

// Clear drops all history state including any open batch.
func (h *History) Clear() {
	h.past = nil
	h.future = nil
	h.batch = nil
}

// EntryInfo is read-only information about one history entry, for
// undo-history UIs.
type EntryInfo struct {
	Label   string
	Changes int
}

// UndoInfo describes the past stack, oldest first.
func (h *History) UndoInfo() []EntryInfo {
	out := make([]EntryInfo, len(h.past))
	for i, e := range h.past {
		out[i] = EntryInfo{Label: e.Label, Changes: len(e.Changes)}
	}
	return out
}

// RedoInfo describes the future stack.
func (h *History) RedoInfo() []EntryInfo {
	out := make([]EntryInfo, len(h.future))
	for i, e := range h.future {
		out[i] = EntryInfo{Label: e.Label, Changes: len(e.Changes)}
	}
	return out
}
