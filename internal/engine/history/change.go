package history

import (
	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// TransitionMode distinguishes ordinary mutation from undo/redo replay.
// It is threaded through the engine's internal apply path so replayed
// changes are never re-recorded.
type TransitionMode int

const (
	// Recording is the default mode: applied changes enter history.
	Recording TransitionMode = iota
	// Replaying is set while an undo or redo entry is being applied.
	Replaying
)

// Change is one atomic, invertible scene mutation. Each kind knows how to
// apply itself forward and how to produce its inverse, keeping the
// history stack kind-agnostic.
type Change interface {
	// Apply performs the forward mutation on the scene.
	Apply(s *scene.Scene)

	// Invert returns a change that exactly undoes this one.
	Invert() Change

	// Bounds returns the world-space geometry this change puts in place
	// when applied, if it has any. Used to recenter the camera when a
	// replayed change lands off-screen.
	Bounds() (geom.Rect, bool)

	// Kind names the change variant for logs and history introspection.
	Kind() string
}

// NodeAdd inserts a node.
type NodeAdd struct {
	Node scene.Node
}

func (c NodeAdd) Apply(s *scene.Scene)     { s.PutNode(c.Node) }
func (c NodeAdd) Invert() Change           { return NodeRemove{Node: c.Node} }
func (c NodeAdd) Bounds() (geom.Rect, bool) { return c.Node.Bounds(), true }
func (c NodeAdd) Kind() string             { return "node.add" }

// NodeRemove deletes a node. The full node value is retained so the
// inverse can restore it.
type NodeRemove struct {
	Node scene.Node
}

func (c NodeRemove) Apply(s *scene.Scene)     { s.DeleteNode(c.Node.ID) }
func (c NodeRemove) Invert() Change           { return NodeAdd{Node: c.Node} }
func (c NodeRemove) Bounds() (geom.Rect, bool) { return c.Node.Bounds(), true }
func (c NodeRemove) Kind() string             { return "node.remove" }

// NodeUpdate replaces a node's value. Before and After are full
// snapshots; coalescing inside a batch keeps the earliest Before and the
// latest After so the whole batch inverts in one step.
type NodeUpdate struct {
	ID     string
	Before scene.Node
	After  scene.Node
}

func (c NodeUpdate) Apply(s *scene.Scene) { s.PutNode(c.After) }
func (c NodeUpdate) Invert() Change {
	return NodeUpdate{ID: c.ID, Before: c.After, After: c.Before}
}
func (c NodeUpdate) Bounds() (geom.Rect, bool) { return c.After.Bounds(), true }
func (c NodeUpdate) Kind() string             { return "node.update" }

// CameraMove replaces the camera value. Consecutive camera motion inside
// a batch coalesces into one record holding the net change.
type CameraMove struct {
	Before geom.Camera
	After  geom.Camera
}

func (c CameraMove) Apply(s *scene.Scene) { s.SetCamera(c.After) }
func (c CameraMove) Invert() Change {
	return CameraMove{Before: c.After, After: c.Before}
}
func (c CameraMove) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c CameraMove) Kind() string             { return "camera.move" }

// GuideAdd inserts a guide.
type GuideAdd struct {
	Guide scene.Guide
}

func (c GuideAdd) Apply(s *scene.Scene)     { s.PutGuide(c.Guide) }
func (c GuideAdd) Invert() Change           { return GuideRemove{Guide: c.Guide} }
func (c GuideAdd) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c GuideAdd) Kind() string             { return "guide.add" }

// GuideRemove deletes a guide.
type GuideRemove struct {
	Guide scene.Guide
}

func (c GuideRemove) Apply(s *scene.Scene)     { s.DeleteGuide(c.Guide.ID) }
func (c GuideRemove) Invert() Change           { return GuideAdd{Guide: c.Guide} }
func (c GuideRemove) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c GuideRemove) Kind() string             { return "guide.remove" }

// GuideMove changes a guide's world coordinate.
type GuideMove struct {
	ID     string
	Before float64
	After  float64
}

func (c GuideMove) Apply(s *scene.Scene) {
	if g, ok := s.Guide(c.ID); ok {
		g.Value = c.After
		s.PutGuide(g)
	}
}
func (c GuideMove) Invert() Change {
	return GuideMove{ID: c.ID, Before: c.After, After: c.Before}
}
func (c GuideMove) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c GuideMove) Kind() string             { return "guide.move" }

// GroupPut inserts or replaces a visual group record.
type GroupPut struct {
	Group scene.VisualGroup
}

func (c GroupPut) Apply(s *scene.Scene)     { s.PutGroup(c.Group) }
func (c GroupPut) Invert() Change           { return GroupRemove{Group: c.Group} }
func (c GroupPut) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c GroupPut) Kind() string             { return "group.put" }

// GroupRemove deletes a visual group record.
type GroupRemove struct {
	Group scene.VisualGroup
}

func (c GroupRemove) Apply(s *scene.Scene)     { s.DeleteGroup(c.Group.ID) }
func (c GroupRemove) Invert() Change           { return GroupPut{Group: c.Group} }
func (c GroupRemove) Bounds() (geom.Rect, bool) { return geom.Rect{}, false }
func (c GroupRemove) Kind() string             { return "group.remove" }
