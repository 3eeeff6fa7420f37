package engine

import (
	"math"

	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// The Temporary/Commit pairs support transform gestures: Temporary
// variants mutate live geometry without history so the UI can render
// continuously, and the Commit variant wraps the net change in one
// batch. Commits compare against the gesture-start snapshot with
// rounding so float noise from incremental math never produces a
// history entry.

// round3 rounds to three decimal places, the comparison precision for
// gesture commits.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// gestureBase returns the gesture-start snapshot for a node, capturing
// it on first use.
func (st *Store) gestureBase(id string) (scene.Node, bool) {
	if base, ok := st.gestureNodes[id]; ok {
		return base, true
	}
	n, ok := st.scene.Node(id)
	if !ok {
		return scene.Node{}, false
	}
	st.gestureNodes[id] = n
	return n, true
}

// ResizeSelectionTemporary resizes every selected node by a delta from
// its gesture-start size, without recording history. Sizes clamp at 1.
func (st *Store) ResizeSelectionTemporary(dw, dh float64) {
	for _, id := range st.scene.Selected() {
		base, ok := st.gestureBase(id)
		if !ok {
			continue
		}
		n := base
		n.Width = max(1, base.Width+dw)
		n.Height = max(1, base.Height+dh)
		st.scene.PutNode(n)
	}
	st.notify(EventNodes)
}

// ResizeSelectionCommit records the net size change of the gesture as
// one history entry, or nothing if the sizes round-trip unchanged.
func (st *Store) ResizeSelectionCommit() {
	st.commitGesture("resize")
}

// RotateSelectionTemporary rotates every selected node by a delta in
// degrees from its gesture-start rotation, without recording history.
func (st *Store) RotateSelectionTemporary(deg float64) {
	for _, id := range st.scene.Selected() {
		base, ok := st.gestureBase(id)
		if !ok {
			continue
		}
		n := base
		n.Rotation = base.Rotation + deg
		st.scene.PutNode(n)
	}
	st.notify(EventNodes)
}

// RotateSelectionCommit records the net rotation change of the gesture.
func (st *Store) RotateSelectionCommit() {
	st.commitGesture("rotate")
}

// SetCornerRadiusTemporary sets the corner radius of every selected
// node, without recording history.
func (st *Store) SetCornerRadiusTemporary(c scene.Corners) {
	for _, id := range st.scene.Selected() {
		base, ok := st.gestureBase(id)
		if !ok {
			continue
		}
		n := base
		n.CornerRadius = c
		st.scene.PutNode(n)
	}
	st.notify(EventNodes)
}

// SetCornerRadiusCommit records the net corner-radius change.
func (st *Store) SetCornerRadiusCommit() {
	st.commitGesture("corner radius")
}

// commitGesture compares every gesture-snapshot node against its live
// value and records the changed ones as one entry. The snapshot map is
// always cleared, so an abandoned gesture simply leaves the live values
// as they are with nothing recorded.
func (st *Store) commitGesture(label string) {
	if len(st.gestureNodes) == 0 {
		return
	}
	type pair struct {
		before scene.Node
		after  scene.Node
	}
	var changed []pair
	for id, base := range st.gestureNodes {
		cur, ok := st.scene.Node(id)
		if !ok {
			continue
		}
		if !nodesEqualRounded(base, cur) {
			changed = append(changed, pair{before: base, after: cur})
		}
	}
	clear(st.gestureNodes)
	if len(changed) == 0 {
		return
	}
	st.withEntry(label, func() {
		for _, p := range changed {
			// Live geometry already holds the after value; record the
			// transition through the batch without reapplying.
			st.history.Record(history.NodeUpdate{ID: p.after.ID, Before: p.before, After: p.after})
		}
	})
	st.notify(EventNodes, EventHistory)
}

// nodesEqualRounded compares two node values at commit precision.
func nodesEqualRounded(a, b scene.Node) bool {
	return round3(a.X) == round3(b.X) &&
		round3(a.Y) == round3(b.Y) &&
		round3(a.Width) == round3(b.Width) &&
		round3(a.Height) == round3(b.Height) &&
		round3(a.Rotation) == round3(b.Rotation) &&
		roundedCorners(a.CornerRadius) == roundedCorners(b.CornerRadius) &&
		a.ParentID == b.ParentID
}

func roundedCorners(c scene.Corners) scene.Corners {
	return scene.Corners{
		TopLeft:     round3(c.TopLeft),
		TopRight:    round3(c.TopRight),
		BottomRight: round3(c.BottomRight),
		BottomLeft:  round3(c.BottomLeft),
	}
}
