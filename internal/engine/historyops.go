package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/engine/history"
)

// BeginHistory opens a gesture batch: every change recorded until
// EndHistory coalesces into one undoable step, and the alignment engine
// is armed for snap computation. A no-op if a batch is already open.
func (st *Store) BeginHistory(label string) {
	if !st.history.Begin(label) {
		return
	}
	st.snap.Begin()
	st.logger.Debug("batch opened", zap.String("label", label))
}

// EndHistory closes the open batch, flushing it to the past stack. A
// batch with no accumulated changes is discarded, which is also how a
// gesture is abandoned. Ephemeral snap state is always cleared.
func (st *Store) EndHistory() {
	entry := st.history.End()
	st.snap.End()
	if entry != nil {
		st.logger.Debug("batch flushed",
			zap.String("label", entry.Label),
			zap.Int("changes", len(entry.Changes)))
		st.notify(EventHistory)
	}
}

// Undo applies the inverse of the most recent history entry. A no-op
// while a batch is open or when the past stack is empty. Before
// mutating, the camera recenters if the geometry about to reappear lies
// entirely off-screen; afterward the selection is pruned to ids that
// still exist.
func (st *Store) Undo() {
	entry, ok := st.history.PopPast()
	if !ok {
		return
	}
	st.recenterFor(entry.InverseBounds())
	for i := len(entry.Changes) - 1; i >= 0; i-- {
		st.apply(entry.Changes[i].Invert(), history.Replaying)
	}
	st.history.PushFuture(entry)
	st.scene.PruneSelection()
	st.pruneEphemeral()
	st.logger.Debug("undo", zap.String("label", entry.Label))
	st.notify(EventNodes, EventSelection, EventGroups, EventGuides, EventHistory)
}

// Redo reapplies the most recently undone entry. A no-op while a batch
// is open or when the future stack is empty.
func (st *Store) Redo() {
	entry, ok := st.history.PopFuture()
	if !ok {
		return
	}
	st.recenterFor(entry.Bounds())
	for _, c := range entry.Changes {
		st.apply(c, history.Replaying)
	}
	st.history.PushPast(entry)
	st.scene.PruneSelection()
	st.pruneEphemeral()
	st.logger.Debug("redo", zap.String("label", entry.Label))
	st.notify(EventNodes, EventSelection, EventGroups, EventGuides, EventHistory)
}

// CanUndo reports whether Undo would apply a step.
func (st *Store) CanUndo() bool { return st.history.CanUndo() }

// CanRedo reports whether Redo would apply a step.
func (st *Store) CanRedo() bool { return st.history.CanRedo() }

// HistoryLen returns the depth of the past stack.
func (st *Store) HistoryLen() int { return st.history.PastLen() }

// FutureLen returns the depth of the future stack.
func (st *Store) FutureLen() int { return st.history.FutureLen() }

// BatchOpen reports whether a gesture batch is open.
func (st *Store) BatchOpen() bool { return st.history.BatchOpen() }

// UndoInfo describes the undoable entries, oldest first.
func (st *Store) UndoInfo() []history.EntryInfo { return st.history.UndoInfo() }

// RedoInfo describes the redoable entries.
func (st *Store) RedoInfo() []history.EntryInfo { return st.history.RedoInfo() }
