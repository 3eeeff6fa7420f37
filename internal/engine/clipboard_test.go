package engine

import (
	"reflect"
	"testing"

	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/scene"
)

func TestCopyPasteRemapsIDsAndParents(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.AddNode(scene.Node{ID: "c1", ParentID: "p", X: 10, Y: 10, Width: 20, Height: 20})

	st.SelectOnly("p")
	st.CopySelection()
	if st.ClipboardLen() != 2 {
		t.Fatalf("ClipboardLen() = %d, want closure of 2", st.ClipboardLen())
	}

	st.PasteClipboard(nil)

	pc := nodeAt(t, st, "p-copy")
	if pc.X != 16 || pc.Y != 16 {
		t.Errorf("p-copy at (%g, %g), want (16, 16)", pc.X, pc.Y)
	}
	cc := nodeAt(t, st, "c1-copy")
	if cc.ParentID != "p-copy" {
		t.Errorf("c1-copy.ParentID = %q, want p-copy", cc.ParentID)
	}
	if cc.X != 26 || cc.Y != 26 {
		t.Errorf("c1-copy at (%g, %g), want (26, 26)", cc.X, cc.Y)
	}

	// Originals untouched.
	if n := nodeAt(t, st, "p"); n.X != 0 {
		t.Errorf("p.X = %g, original moved", n.X)
	}

	if got := st.Selected(); !reflect.DeepEqual(got, []string{"c1-copy", "p-copy"}) {
		t.Errorf("Selected() = %v, want pasted ids", got)
	}
}

func TestRepeatedPasteNudgesAndSuffixes(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.SelectOnly("p")
	st.CopySelection()

	st.PasteClipboard(nil)
	st.PasteClipboard(nil)

	if n := nodeAt(t, st, "p-copy"); n.X != 16 {
		t.Errorf("first paste X = %g, want 16", n.X)
	}
	if n := nodeAt(t, st, "p-copy2"); n.X != 32 || n.Y != 32 {
		t.Errorf("second paste at (%g, %g), want (32, 32)", n.X, n.Y)
	}
}

func TestPasteNudgeWraps(t *testing.T) {
	st := New(WithPasteOffset(16, 2))
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.SelectOnly("p")
	st.CopySelection()

	st.PasteClipboard(nil) // k=1 -> 16
	st.PasteClipboard(nil) // k=2 -> 32
	st.PasteClipboard(nil) // wraps -> 16

	if n := nodeAt(t, st, "p-copy3"); n.X != 16 {
		t.Errorf("third paste X = %g, want wrapped 16", n.X)
	}
}

func TestCopyResetsNudgeCounter(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.SelectOnly("p")
	st.CopySelection()
	st.PasteClipboard(nil)
	st.PasteClipboard(nil)

	st.SelectOnly("p")
	st.CopySelection()
	st.PasteClipboard(nil)

	if n := nodeAt(t, st, "p-copy3"); n.X != 16 {
		t.Errorf("post-recopy paste X = %g, want 16", n.X)
	}
}

func TestPasteAtExplicitPosition(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 40, 20, 100, 60))
	st.SelectOnly("p")
	st.CopySelection()

	st.PasteClipboard(&geom.Point{X: 200, Y: 100})

	if n := nodeAt(t, st, "p-copy"); n.X != 200 || n.Y != 100 {
		t.Errorf("p-copy at (%g, %g), want (200, 100)", n.X, n.Y)
	}
}

func TestPasteIsOneUndoStep(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.AddNode(scene.Node{ID: "c1", ParentID: "p", X: 10, Y: 10, Width: 20, Height: 20})
	st.SelectOnly("p")
	st.CopySelection()
	base := st.HistoryLen()

	st.PasteClipboard(nil)
	if st.HistoryLen() != base+1 {
		t.Fatalf("HistoryLen() = %d, want %d", st.HistoryLen(), base+1)
	}

	st.Undo()
	if _, ok := st.Node("p-copy"); ok {
		t.Error("p-copy survived undo")
	}
	if _, ok := st.Node("c1-copy"); ok {
		t.Error("c1-copy survived undo")
	}
	if st.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d after undo, want 2", st.NodeCount())
	}
}

func TestPasteOutsideParentLinkCleared(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.AddNode(scene.Node{ID: "c1", ParentID: "p", X: 10, Y: 10, Width: 20, Height: 20})

	// Copy only the child: its parent is outside the clipboard set.
	st.SelectOnly("c1")
	st.CopySelection()
	st.PasteClipboard(nil)

	if n := nodeAt(t, st, "c1-copy"); n.ParentID != "" {
		t.Errorf("c1-copy.ParentID = %q, want cleared", n.ParentID)
	}
}

func TestCutSelection(t *testing.T) {
	st := New()
	st.AddNode(rectNode("p", 0, 0, 100, 60))
	st.SelectOnly("p")

	st.CutSelection()

	if _, ok := st.Node("p"); ok {
		t.Fatal("p survived cut")
	}
	if st.ClipboardLen() != 1 {
		t.Fatalf("ClipboardLen() = %d, want 1", st.ClipboardLen())
	}

	st.PasteClipboard(nil)
	// The original id is free again, but paste still derives a copy id.
	if _, ok := st.Node("p-copy"); !ok {
		t.Error("paste after cut missing p-copy")
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	st := New()
	base := st.HistoryLen()
	st.PasteClipboard(nil)
	if st.HistoryLen() != base {
		t.Error("empty paste recorded history")
	}
}
