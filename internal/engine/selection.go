package engine

import (
	"github.com/dshills/scenekit/internal/engine/align"
	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// Selection is ephemeral UI state: none of these primitives record
// history.

// SelectOnly replaces the selection with the single given id. Unknown
// ids leave the selection empty.
func (st *Store) SelectOnly(id string) {
	st.scene.ClearSelection()
	if st.scene.HasNode(id) {
		st.scene.Select(id)
	}
	st.notify(EventSelection)
}

// AddToSelection adds an existing node id to the selection.
func (st *Store) AddToSelection(id string) {
	if !st.scene.HasNode(id) {
		return
	}
	st.scene.Select(id)
	st.notify(EventSelection)
}

// RemoveFromSelection drops an id from the selection.
func (st *Store) RemoveFromSelection(id string) {
	st.scene.Deselect(id)
	st.notify(EventSelection)
}

// ToggleInSelection flips an existing node id's selection membership.
func (st *Store) ToggleInSelection(id string) {
	if !st.scene.HasNode(id) {
		return
	}
	if st.scene.IsSelected(id) {
		st.scene.Deselect(id)
	} else {
		st.scene.Select(id)
	}
	st.notify(EventSelection)
}

// ClearSelection empties the selection.
func (st *Store) ClearSelection() {
	st.scene.ClearSelection()
	st.notify(EventSelection)
}

// SetInnerEditTarget enters or leaves inner-edit mode. While a target is
// set, movement is scoped to the target's subtree or the active visual
// group. An empty id leaves the mode.
func (st *Store) SetInnerEditTarget(id string) {
	if id != "" && !st.scene.HasNode(id) {
		return
	}
	st.innerEditID = id
	st.notify(EventSelection)
}

// InnerEditTarget returns the current inner-edit target id, or "".
func (st *Store) InnerEditTarget() string { return st.innerEditID }

// movementScope resolves which selected ids a move affects, before
// descendant expansion. Under inner-edit the scope narrows to the
// active visual group's members, or to selected ids whose ancestor
// chain reaches the target.
func (st *Store) movementScope() []string {
	selected := st.scene.Selected()
	if st.innerEditID == "" {
		return selected
	}
	if st.selectedGroupID != "" {
		if g, ok := st.scene.Group(st.selectedGroupID); ok {
			var ids []string
			for _, id := range g.MemberIDs() {
				if st.scene.HasNode(id) {
					ids = append(ids, id)
				}
			}
			return ids
		}
	}
	var ids []string
	for _, id := range selected {
		if st.scene.AncestorReaches(id, st.innerEditID) {
			ids = append(ids, id)
		}
	}
	return ids
}

// MoveSelectedBy moves the scoped selection and its descendant closure
// by a world-space delta. During an open gesture batch the delta is
// snap-adjusted by the alignment engine and each node's updates coalesce
// into a single change. A zero delta or empty scope is a no-op.
func (st *Store) MoveSelectedBy(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	scope := st.movementScope()
	if len(scope) == 0 {
		return
	}
	closure := st.scene.Descendants(scope...)

	if st.history.BatchOpen() {
		dx, dy = st.snapAdjust(scope, closure, dx, dy)
	}
	if dx == 0 && dy == 0 {
		return
	}

	st.withEntry("move", func() {
		for _, id := range closure {
			n, ok := st.scene.Node(id)
			if !ok {
				continue
			}
			after := n
			after.X += dx
			after.Y += dy
			st.apply(history.NodeUpdate{ID: id, Before: n, After: after}, history.Recording)
		}
	})
	st.notify(EventNodes)
}

// snapAdjust runs the raw drag delta through the alignment engine. The
// moving bounding box covers the scoped selection only; candidates come
// from every node outside the moving closure and from all guides.
func (st *Store) snapAdjust(scope, closure []string, dx, dy float64) (float64, float64) {
	var box geom.Rect
	found := false
	for _, id := range scope {
		n, ok := st.scene.Node(id)
		if !ok {
			continue
		}
		if !found {
			box = n.Bounds()
			found = true
			continue
		}
		box = box.Union(n.Bounds())
	}
	if !found {
		return dx, dy
	}

	moving := make(map[string]struct{}, len(closure))
	for _, id := range closure {
		moving[id] = struct{}{}
	}

	var xs, ys []align.Candidate
	for _, n := range st.scene.Nodes() {
		if _, ok := moving[n.ID]; ok {
			continue
		}
		b := n.Bounds()
		xs = append(xs,
			align.Candidate{Value: b.X, Kind: align.KindEdge, TargetID: n.ID},
			align.Candidate{Value: b.CenterX(), Kind: align.KindCenter, TargetID: n.ID},
			align.Candidate{Value: b.Right(), Kind: align.KindEdge, TargetID: n.ID})
		ys = append(ys,
			align.Candidate{Value: b.Y, Kind: align.KindEdge, TargetID: n.ID},
			align.Candidate{Value: b.CenterY(), Kind: align.KindCenter, TargetID: n.ID},
			align.Candidate{Value: b.Bottom(), Kind: align.KindEdge, TargetID: n.ID})
	}
	for _, g := range st.scene.Guides() {
		cand := align.Candidate{Value: g.Value, Kind: align.KindEdge, TargetID: g.ID}
		if g.Axis == scene.AxisX {
			xs = append(xs, cand)
		} else {
			ys = append(ys, cand)
		}
	}

	return st.snap.Adjust(box, dx, dy, xs, ys, st.scene.Camera().Zoom)
}

// DeleteSelected removes the current deletion set: with an active visual
// group, the group's members plus any additionally selected ids and the
// group record itself, all in one history entry; otherwise the
// selection's descendant closure. Nothing selected is a no-op.
func (st *Store) DeleteSelected() {
	if st.selectedGroupID != "" {
		if g, ok := st.scene.Group(st.selectedGroupID); ok {
			st.deleteGroupSelection(g)
			return
		}
		st.selectedGroupID = ""
	}
	selected := st.scene.Selected()
	if len(selected) == 0 {
		return
	}
	st.RemoveNodes(st.scene.Descendants(selected...))
}

// deleteGroupSelection removes a visual group and its member nodes
// atomically, so one undo restores both.
func (st *Store) deleteGroupSelection(g scene.VisualGroup) {
	set := make(map[string]struct{})
	for id := range g.Members {
		set[id] = struct{}{}
	}
	for _, id := range st.scene.Selected() {
		set[id] = struct{}{}
	}
	roots := make([]string, 0, len(set))
	for id := range set {
		roots = append(roots, id)
	}
	doomed := st.scene.Descendants(roots...)

	st.withEntry("delete group", func() {
		st.apply(history.GroupRemove{Group: g.Clone()}, history.Recording)
		for _, id := range doomed {
			st.removeOne(id)
		}
	})
	st.selectedGroupID = ""
	st.scene.PruneSelection()
	st.pruneEphemeral()
	st.notify(EventNodes, EventSelection, EventGroups)
}
