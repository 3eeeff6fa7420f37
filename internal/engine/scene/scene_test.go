package scene

import (
	"reflect"
	"testing"
)

func TestPutNodePreservesOrder(t *testing.T) {
	s := New()
	s.PutNode(Node{ID: "a"})
	s.PutNode(Node{ID: "b"})
	s.PutNode(Node{ID: "c"})

	// Replacing an existing node keeps its z-order slot.
	s.PutNode(Node{ID: "b", X: 99})

	want := []string{"a", "b", "c"}
	if got := s.NodeIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("NodeIDs() = %v, want %v", got, want)
	}
	n, ok := s.Node("b")
	if !ok || n.X != 99 {
		t.Errorf("Node(b) = %+v, %t", n, ok)
	}
}

func TestDeleteNode(t *testing.T) {
	s := New()
	s.PutNode(Node{ID: "a"})
	s.PutNode(Node{ID: "b"})
	s.DeleteNode("a")
	s.DeleteNode("missing")

	if s.HasNode("a") {
		t.Error("node a still present after delete")
	}
	if got := s.NodeIDs(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("NodeIDs() = %v, want [b]", got)
	}
}

func TestSelection(t *testing.T) {
	s := New()
	s.PutNode(Node{ID: "a"})
	s.PutNode(Node{ID: "b"})
	s.Select("b")
	s.Select("a")

	if got := s.Selected(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Selected() = %v, want sorted [a b]", got)
	}

	s.DeleteNode("a")
	s.PruneSelection()
	if got := s.Selected(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("after prune Selected() = %v, want [b]", got)
	}

	s.ClearSelection()
	if s.SelectionCount() != 0 {
		t.Errorf("SelectionCount() = %d after clear", s.SelectionCount())
	}
}

func TestNodeBounds(t *testing.T) {
	n := Node{ID: "a", X: 10, Y: 20, Width: 100, Height: 60, Rotation: 45}
	b := n.Bounds()
	if b.X != 10 || b.Y != 20 || b.Width != 100 || b.Height != 60 {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestPatched(t *testing.T) {
	n := Node{ID: "a", X: 10, Y: 20, Width: 100, Height: 60}
	p := Patch{X: Float64(15), ParentID: String("root")}
	got := n.Patched(p)

	if got.X != 15 || got.Y != 20 || got.ParentID != "root" {
		t.Errorf("Patched() = %+v", got)
	}
	if n.X != 10 {
		t.Error("Patched mutated the receiver")
	}
}

func TestPatchIsZero(t *testing.T) {
	if !(Patch{}).IsZero() {
		t.Error("empty patch not zero")
	}
	if (Patch{Rotation: Float64(0)}).IsZero() {
		t.Error("patch with set field reported zero")
	}
}

func TestCorners(t *testing.T) {
	u := Uniform(8)
	if !u.IsUniform() || u.IsZero() {
		t.Errorf("Uniform(8) = %+v", u)
	}
	mixed := Corners{TopLeft: 8, TopRight: 0, BottomRight: 8, BottomLeft: 0}
	if mixed.IsUniform() {
		t.Error("mixed corners reported uniform")
	}
}

func TestGroups(t *testing.T) {
	s := New()
	s.PutGroup(NewVisualGroup("g1", "b", "a"))

	g, ok := s.Group("g1")
	if !ok {
		t.Fatal("group g1 missing")
	}
	if got := g.MemberIDs(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("MemberIDs() = %v, want sorted [a b]", got)
	}
	if !g.Has("a") || g.Has("z") {
		t.Error("Has() wrong")
	}

	s.DeleteGroup("g1")
	if _, ok := s.Group("g1"); ok {
		t.Error("group g1 survived delete")
	}
}

func TestGuides(t *testing.T) {
	s := New()
	s.PutGuide(Guide{ID: "gx", Axis: "x", Value: 120})
	s.PutGuide(Guide{ID: "gy", Axis: "y", Value: 40})
	s.PutGuide(Guide{ID: "gx", Axis: "x", Value: 130})

	if len(s.Guides()) != 2 {
		t.Fatalf("Guides() len = %d, want 2", len(s.Guides()))
	}
	g, ok := s.Guide("gx")
	if !ok || g.Value != 130 {
		t.Errorf("Guide(gx) = %+v, %t", g, ok)
	}

	s.DeleteGuide("gy")
	if _, ok := s.Guide("gy"); ok {
		t.Error("guide gy survived delete")
	}
}
