package engine

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// AddNode inserts a node and records the addition. An empty id is
// replaced with a generated one; the assigned id is returned. Adding an
// id that already exists is a silent no-op. A parent link that is
// missing or self-referential is cleared before insertion.
func (st *Store) AddNode(n scene.Node) string {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if st.scene.HasNode(n.ID) {
		return n.ID
	}
	if n.ParentID == n.ID || (n.ParentID != "" && !st.scene.HasNode(n.ParentID)) {
		n.ParentID = ""
	}
	st.apply(history.NodeAdd{Node: n}, history.Recording)
	st.notify(EventNodes)
	return n.ID
}

// AddNodeAtCenter inserts a default-sized node centered in the current
// viewport and makes it the sole selection.
func (st *Store) AddNodeAtCenter() string {
	cam := st.scene.Camera()
	vis := cam.Visible(st.viewport)
	id := st.AddNode(scene.Node{
		X:      vis.CenterX() - DefaultNodeWidth/2,
		Y:      vis.CenterY() - DefaultNodeHeight/2,
		Width:  DefaultNodeWidth,
		Height: DefaultNodeHeight,
	})
	st.SelectOnly(id)
	return id
}

// UpdateNode applies a field patch to a node. Missing ids, empty
// patches, and patches that change nothing are silent no-ops. A ParentID
// patch is dropped when it would dangle, self-reference, or close a
// cycle; the rest of the patch still applies.
func (st *Store) UpdateNode(id string, p scene.Patch) {
	before, ok := st.scene.Node(id)
	if !ok || p.IsZero() {
		return
	}
	if p.ParentID != nil {
		if pid := *p.ParentID; pid != "" {
			if pid == id || !st.scene.HasNode(pid) || st.scene.WouldCycle(pid, id) {
				st.logger.Debug("parent link rejected",
					zap.String("node", id), zap.String("parent", pid))
				p.ParentID = nil
			}
		}
	}
	after := before.Patched(p)
	if after == before {
		return
	}
	st.apply(history.NodeUpdate{ID: id, Before: before, After: after}, history.Recording)
	st.notify(EventNodes)
}

// RemoveNode removes a node, strips it from the selection, and clears
// the parent link on its direct children. The child updates and the
// removal form one logical change. Removing an absent id is a no-op.
func (st *Store) RemoveNode(id string) {
	st.RemoveNodes([]string{id})
}

// RemoveNodes removes a set of nodes as one history entry. Absent ids
// are silently skipped; the call is idempotent.
func (st *Store) RemoveNodes(ids []string) {
	var present []string
	for _, id := range ids {
		if st.scene.HasNode(id) {
			present = append(present, id)
		}
	}
	if len(present) == 0 {
		return
	}
	st.withEntry("remove nodes", func() {
		for _, id := range present {
			st.removeOne(id)
		}
	})
	st.scene.PruneSelection()
	st.pruneEphemeral()
	st.notify(EventNodes, EventSelection)
}

// removeOne records the child-link clears and the removal for a single
// node. Grandchildren keep their links to the now-orphaned child;
// cleanup is one level only.
func (st *Store) removeOne(id string) {
	node, ok := st.scene.Node(id)
	if !ok {
		return
	}
	empty := ""
	for _, childID := range st.scene.ChildrenOf(id) {
		child, ok := st.scene.Node(childID)
		if !ok {
			continue
		}
		st.apply(history.NodeUpdate{
			ID:     childID,
			Before: child,
			After:  child.Patched(scene.Patch{ParentID: &empty}),
		}, history.Recording)
	}
	st.apply(history.NodeRemove{Node: node}, history.Recording)
	st.scene.Deselect(id)
}

// pruneEphemeral clears UI-adjacent references that point at entities
// that no longer exist.
func (st *Store) pruneEphemeral() {
	if st.innerEditID != "" && !st.scene.HasNode(st.innerEditID) {
		st.innerEditID = ""
	}
	if st.selectedGroupID != "" {
		if _, ok := st.scene.Group(st.selectedGroupID); !ok {
			st.selectedGroupID = ""
		}
	}
	if st.hoveredGroupID != "" {
		if _, ok := st.scene.Group(st.hoveredGroupID); !ok {
			st.hoveredGroupID = ""
		}
	}
	if st.hoveredGroup2ID != "" {
		if _, ok := st.scene.Group(st.hoveredGroup2ID); !ok {
			st.hoveredGroup2ID = ""
		}
	}
	if st.activeGuideID != "" {
		if _, ok := st.scene.Guide(st.activeGuideID); !ok {
			st.activeGuideID = ""
		}
	}
}
