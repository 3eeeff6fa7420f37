package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// GroupNodes sets parentID as the logical parent of each candidate
// child. Candidates are rejected silently, per candidate, when they do
// not exist, equal the parent, already have that parent, or when
// adoption would close a cycle (the parent's own ancestor chain reaches
// the candidate). Accepted children are recorded as ordinary updates in
// one history entry.
func (st *Store) GroupNodes(parentID string, childIDs []string) {
	if !st.scene.HasNode(parentID) {
		return
	}
	var accepted []string
	for _, childID := range childIDs {
		child, ok := st.scene.Node(childID)
		switch {
		case !ok:
		case childID == parentID:
		case child.ParentID == parentID:
		case st.scene.WouldCycle(parentID, childID):
			st.logger.Debug("grouping rejected: cycle",
				zap.String("parent", parentID), zap.String("child", childID))
		default:
			accepted = append(accepted, childID)
		}
	}
	if len(accepted) == 0 {
		return
	}
	st.withEntry("group nodes", func() {
		for _, childID := range accepted {
			child, _ := st.scene.Node(childID)
			st.apply(history.NodeUpdate{
				ID:     childID,
				Before: child,
				After:  child.Patched(scene.Patch{ParentID: &parentID}),
			}, history.Recording)
		}
	})
	st.notify(EventNodes)
}

// Ungroup clears the parent link on each given id that has one. Ids
// without a parent, or without a node, are no-ops.
func (st *Store) Ungroup(ids []string) {
	var parented []string
	for _, id := range ids {
		if n, ok := st.scene.Node(id); ok && n.ParentID != "" {
			parented = append(parented, id)
		}
	}
	if len(parented) == 0 {
		return
	}
	empty := ""
	st.withEntry("ungroup", func() {
		for _, id := range parented {
			n, _ := st.scene.Node(id)
			st.apply(history.NodeUpdate{
				ID:     id,
				Before: n,
				After:  n.Patched(scene.Patch{ParentID: &empty}),
			}, history.Recording)
		}
	})
	st.notify(EventNodes)
}
