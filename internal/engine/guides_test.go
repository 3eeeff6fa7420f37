package engine

import (
	"testing"

	"github.com/dshills/scenekit/internal/engine/scene"
)

func guideValue(t *testing.T, st *Store, id string) float64 {
	t.Helper()
	for _, g := range st.Guides() {
		if g.ID == id {
			return g.Value
		}
	}
	t.Fatalf("guide %s missing", id)
	return 0
}

func TestAddMoveRemoveGuide(t *testing.T) {
	st := New()

	id := st.AddGuide(scene.AxisX, 120)
	if id == "" {
		t.Fatal("empty guide id")
	}
	if st.HistoryLen() != 1 {
		t.Fatalf("HistoryLen() = %d, want 1", st.HistoryLen())
	}

	st.MoveGuide(id, 140)
	if guideValue(t, st, id) != 140 {
		t.Errorf("value = %g, want 140", guideValue(t, st, id))
	}

	st.Undo()
	if guideValue(t, st, id) != 120 {
		t.Errorf("value after undo = %g, want 120", guideValue(t, st, id))
	}

	st.RemoveGuide(id)
	if len(st.Guides()) != 0 {
		t.Error("guide survived removal")
	}
	st.Undo()
	if guideValue(t, st, id) != 120 {
		t.Error("undo did not restore guide")
	}
}

func TestMoveGuideNoOps(t *testing.T) {
	st := New()
	id := st.AddGuide(scene.AxisY, 50)
	base := st.HistoryLen()

	st.MoveGuide("missing", 10)
	st.MoveGuide(id, 50)

	if st.HistoryLen() != base {
		t.Errorf("HistoryLen() = %d, no-op moves recorded", st.HistoryLen())
	}
}

func TestGuideDragCommitsNetChange(t *testing.T) {
	st := New()
	id := st.AddGuide(scene.AxisX, 100)
	base := st.HistoryLen()

	st.MoveGuideTemporary(id, 110)
	st.MoveGuideTemporary(id, 125)
	if st.HistoryLen() != base {
		t.Fatal("temporary moves recorded history")
	}
	if guideValue(t, st, id) != 125 {
		t.Fatalf("live value = %g, want 125", guideValue(t, st, id))
	}

	st.MoveGuideCommit(id)
	if st.HistoryLen() != base+1 {
		t.Fatalf("HistoryLen() = %d, want one entry for the drag", st.HistoryLen())
	}

	// The recorded transition spans base to final, not the last step.
	st.Undo()
	if guideValue(t, st, id) != 100 {
		t.Errorf("value after undo = %g, want 100", guideValue(t, st, id))
	}
	st.Redo()
	if guideValue(t, st, id) != 125 {
		t.Errorf("value after redo = %g, want 125", guideValue(t, st, id))
	}
}

func TestGuideDragReturningToStartRecordsNothing(t *testing.T) {
	st := New()
	id := st.AddGuide(scene.AxisX, 100)
	base := st.HistoryLen()

	st.MoveGuideTemporary(id, 130)
	st.MoveGuideTemporary(id, 100)
	st.MoveGuideCommit(id)

	if st.HistoryLen() != base {
		t.Errorf("HistoryLen() = %d, round-trip drag recorded", st.HistoryLen())
	}
}

func TestClearGuidesIsOneUndoStep(t *testing.T) {
	st := New()
	st.AddGuide(scene.AxisX, 10)
	st.AddGuide(scene.AxisY, 20)
	base := st.HistoryLen()

	st.ClearGuides()
	if len(st.Guides()) != 0 {
		t.Fatal("guides survived clear")
	}
	if st.HistoryLen() != base+1 {
		t.Fatalf("HistoryLen() = %d, want one entry", st.HistoryLen())
	}

	st.Undo()
	if len(st.Guides()) != 2 {
		t.Errorf("guides after undo = %d, want 2", len(st.Guides()))
	}
}

func TestActiveGuidePruned(t *testing.T) {
	st := New()
	id := st.AddGuide(scene.AxisX, 10)

	st.SetActiveGuide("missing")
	if st.ActiveGuideID() != "" {
		t.Error("unknown guide id accepted as active")
	}

	st.SetActiveGuide(id)
	st.RemoveGuide(id)
	if st.ActiveGuideID() != "" {
		t.Error("active guide id survived removal")
	}
}
