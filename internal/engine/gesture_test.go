package engine

import (
	"testing"

	"github.com/dshills/scenekit/internal/engine/scene"
)

func TestResizeGestureCommitsNetChange(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 100, 60))
	st.SelectOnly("a")
	base := st.HistoryLen()

	st.ResizeSelectionTemporary(10, 5)
	st.ResizeSelectionTemporary(20, 10)
	if st.HistoryLen() != base {
		t.Fatal("temporary resizes recorded history")
	}
	if n := nodeAt(t, st, "a"); n.Width != 120 || n.Height != 70 {
		t.Fatalf("live size = %gx%g, want 120x70", n.Width, n.Height)
	}

	st.ResizeSelectionCommit()
	if st.HistoryLen() != base+1 {
		t.Fatalf("HistoryLen() = %d, want one entry", st.HistoryLen())
	}

	st.Undo()
	if n := nodeAt(t, st, "a"); n.Width != 100 || n.Height != 60 {
		t.Errorf("size after undo = %gx%g, want 100x60", n.Width, n.Height)
	}
}

func TestResizeClampsAtOne(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 10, 10))
	st.SelectOnly("a")

	st.ResizeSelectionTemporary(-50, -50)
	if n := nodeAt(t, st, "a"); n.Width != 1 || n.Height != 1 {
		t.Errorf("size = %gx%g, want clamped 1x1", n.Width, n.Height)
	}
	st.ResizeSelectionCommit()
}

func TestRotateGesture(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 10, 10))
	st.SelectOnly("a")

	st.RotateSelectionTemporary(15)
	st.RotateSelectionTemporary(45)
	st.RotateSelectionCommit()

	if n := nodeAt(t, st, "a"); n.Rotation != 45 {
		t.Errorf("rotation = %g, want 45 (delta from gesture start)", n.Rotation)
	}

	st.Undo()
	if n := nodeAt(t, st, "a"); n.Rotation != 0 {
		t.Errorf("rotation after undo = %g, want 0", n.Rotation)
	}
}

func TestCornerRadiusGesture(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 100, 60))
	st.SelectOnly("a")

	st.SetCornerRadiusTemporary(scene.Uniform(8))
	st.SetCornerRadiusCommit()

	if n := nodeAt(t, st, "a"); n.CornerRadius != scene.Uniform(8) {
		t.Errorf("corners = %+v, want uniform 8", n.CornerRadius)
	}
	if st.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want add + corner entry", st.HistoryLen())
	}
}

func TestGestureReturningToStartRecordsNothing(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 100, 60))
	st.SelectOnly("a")
	base := st.HistoryLen()

	st.ResizeSelectionTemporary(30, 0)
	st.ResizeSelectionTemporary(0, 0)
	st.ResizeSelectionCommit()

	if st.HistoryLen() != base {
		t.Errorf("HistoryLen() = %d, no-net-change gesture recorded", st.HistoryLen())
	}
	if n := nodeAt(t, st, "a"); n.Width != 100 {
		t.Errorf("width = %g, want 100", n.Width)
	}
}

func TestGestureCommitCoversMultipleNodes(t *testing.T) {
	st := New()
	st.AddNode(rectNode("a", 0, 0, 100, 60))
	st.AddNode(rectNode("b", 200, 0, 50, 50))
	st.SelectOnly("a")
	st.AddToSelection("b")
	base := st.HistoryLen()

	st.ResizeSelectionTemporary(10, 10)
	st.ResizeSelectionCommit()

	if st.HistoryLen() != base+1 {
		t.Fatalf("HistoryLen() = %d, want one entry for both nodes", st.HistoryLen())
	}

	st.Undo()
	if n := nodeAt(t, st, "a"); n.Width != 100 {
		t.Errorf("a.Width after undo = %g, want 100", n.Width)
	}
	if n := nodeAt(t, st, "b"); n.Width != 50 {
		t.Errorf("b.Width after undo = %g, want 50", n.Width)
	}
}
