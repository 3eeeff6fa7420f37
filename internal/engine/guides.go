package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// AddGuide creates an alignment guide at a world coordinate on the given
// axis and returns its id.
func (st *Store) AddGuide(axis scene.Axis, value float64) string {
	g := scene.Guide{ID: uuid.NewString(), Axis: axis, Value: value}
	st.apply(history.GuideAdd{Guide: g}, history.Recording)
	st.notify(EventGuides)
	return g.ID
}

// MoveGuide moves a guide to a new coordinate as its own undoable step.
// Missing ids and no-change moves are no-ops.
func (st *Store) MoveGuide(id string, value float64) {
	g, ok := st.scene.Guide(id)
	if !ok || g.Value == value {
		return
	}
	st.apply(history.GuideMove{ID: id, Before: g.Value, After: value}, history.Recording)
	st.notify(EventGuides)
}

// MoveGuideTemporary moves a guide without recording history, for live
// drag feedback. The first temporary move snapshots the starting value
// so MoveGuideCommit can record the net change.
func (st *Store) MoveGuideTemporary(id string, value float64) {
	g, ok := st.scene.Guide(id)
	if !ok {
		return
	}
	if _, ok := st.gestureGuides[id]; !ok {
		st.gestureGuides[id] = g.Value
	}
	g.Value = value
	st.scene.PutGuide(g)
	st.notify(EventGuides)
}

// MoveGuideCommit records the net change of a temporary guide drag as
// one history entry. A drag that returned to its starting value (after
// rounding) records nothing.
func (st *Store) MoveGuideCommit(id string) {
	base, ok := st.gestureGuides[id]
	if !ok {
		return
	}
	delete(st.gestureGuides, id)
	g, ok := st.scene.Guide(id)
	if !ok || round3(g.Value) == round3(base) {
		return
	}
	// The guide already sits at its final value; record the transition
	// without reapplying it.
	st.history.Record(history.GuideMove{ID: id, Before: base, After: g.Value})
	st.notify(EventGuides)
}

// RemoveGuide deletes a guide. Missing ids are no-ops.
func (st *Store) RemoveGuide(id string) {
	g, ok := st.scene.Guide(id)
	if !ok {
		return
	}
	st.apply(history.GuideRemove{Guide: g}, history.Recording)
	st.pruneEphemeral()
	st.notify(EventGuides)
}

// ClearGuides removes all guides as one undoable step.
func (st *Store) ClearGuides() {
	guides := st.scene.Guides()
	if len(guides) == 0 {
		return
	}
	st.withEntry("clear guides", func() {
		for _, g := range guides {
			st.apply(history.GuideRemove{Guide: g}, history.Recording)
		}
	})
	st.pruneEphemeral()
	st.notify(EventGuides)
}

// SetActiveGuide marks a guide as highlighted in the UI. Ephemeral.
func (st *Store) SetActiveGuide(id string) {
	if id != "" {
		if _, ok := st.scene.Guide(id); !ok {
			return
		}
	}
	st.activeGuideID = id
	st.notify(EventGuides)
}

// ActiveGuideID returns the highlighted guide id, or "".
func (st *Store) ActiveGuideID() string { return st.activeGuideID }
