package engine

import (
	"fmt"
	"sort"

	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// CopySelection snapshots the selection's full descendant closure as
// independent node clones. An empty selection leaves the clipboard
// untouched. Copying resets the blind-paste nudge counter.
func (st *Store) CopySelection() {
	selected := st.scene.Selected()
	if len(selected) == 0 {
		return
	}
	closure := st.scene.Descendants(selected...)
	st.clipboard = make([]scene.Node, 0, len(closure))
	for _, id := range closure {
		if n, ok := st.scene.Node(id); ok {
			st.clipboard = append(st.clipboard, n)
		}
	}
	st.pasteCount = 0
}

// CutSelection copies the selection then deletes it. The two steps are
// independent: the deletion produces its own history entry.
func (st *Store) CutSelection() {
	st.CopySelection()
	st.DeleteSelected()
}

// PasteClipboard inserts clones of the clipboard contents as one history
// batch and selects them. Ids are remapped collision-free against the
// current node set; parent links are remapped through the same id map
// and parents are inserted before children. With an explicit position
// the clipboard's bounding-box top-left lands there; without one, each
// successive paste nudges diagonally by one more step, wrapping so
// repeated blind pastes stay near the original.
func (st *Store) PasteClipboard(position *geom.Point) {
	if len(st.clipboard) == 0 {
		return
	}

	var dx, dy float64
	if position != nil {
		box := clipboardBounds(st.clipboard)
		dx = position.X - box.X
		dy = position.Y - box.Y
	} else {
		st.pasteCount++
		k := float64((st.pasteCount-1)%st.pasteWrap + 1)
		dx = st.pasteStep * k
		dy = st.pasteStep * k
	}

	inClipboard := make(map[string]int, len(st.clipboard))
	for i, n := range st.clipboard {
		inClipboard[n.ID] = i
	}

	idMap := make(map[string]string, len(st.clipboard))
	for _, n := range st.clipboard {
		idMap[n.ID] = st.freshID(n.ID, idMap)
	}

	// Parents before children: sort by depth within the clipboard set so
	// no node is created with a not-yet-existing parent reference.
	ordered := make([]scene.Node, len(st.clipboard))
	copy(ordered, st.clipboard)
	depth := func(n scene.Node) int {
		d := 0
		for cur := n; cur.ParentID != ""; {
			i, ok := inClipboard[cur.ParentID]
			if !ok {
				break
			}
			d++
			cur = st.clipboard[i]
		}
		return d
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return depth(ordered[i]) < depth(ordered[j])
	})

	newIDs := make([]string, 0, len(ordered))
	st.withEntry("paste", func() {
		for _, n := range ordered {
			clone := n
			clone.ID = idMap[n.ID]
			if mapped, ok := idMap[n.ParentID]; ok {
				clone.ParentID = mapped
			} else {
				clone.ParentID = ""
			}
			clone.X += dx
			clone.Y += dy
			st.apply(history.NodeAdd{Node: clone}, history.Recording)
			newIDs = append(newIDs, clone.ID)
		}
	})

	st.scene.ClearSelection()
	for _, id := range newIDs {
		st.scene.Select(id)
	}
	st.notify(EventNodes, EventSelection)
}

// freshID derives a paste id from the original by suffixing -copy,
// -copy2, ... until it collides with neither the live node set nor ids
// already assigned during this paste.
func (st *Store) freshID(orig string, assigned map[string]string) string {
	taken := func(id string) bool {
		if st.scene.HasNode(id) {
			return true
		}
		for _, v := range assigned {
			if v == id {
				return true
			}
		}
		return false
	}
	candidate := orig + "-copy"
	for i := 2; taken(candidate); i++ {
		candidate = fmt.Sprintf("%s-copy%d", orig, i)
	}
	return candidate
}

// ClipboardLen returns the number of nodes on the clipboard.
func (st *Store) ClipboardLen() int { return len(st.clipboard) }

func clipboardBounds(nodes []scene.Node) geom.Rect {
	box := nodes[0].Bounds()
	for _, n := range nodes[1:] {
		box = box.Union(n.Bounds())
	}
	return box
}
