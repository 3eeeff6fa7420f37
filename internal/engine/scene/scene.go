// Package scene is the authoritative entity store for the engine: the
// node map, camera, selection set, visual groups, and guides. It exposes
// CRUD primitives with no history awareness; the engine facade wraps
// every mutation in change records before it reaches this package.
package scene

import (
	"sort"

	"github.com/dshills/scenekit/internal/engine/geom"
)

// Axis identifies one of the two canvas axes.
type Axis string

// Guide axes.
const (
	AxisX Axis = "x"
	AxisY Axis = "y"
)

// Guide is a user-created alignment aid: an infinite line at a fixed
// world coordinate on one axis.
type Guide struct {
	ID    string
	Axis  Axis
	Value float64
}

// VisualGroup is a labeled set of member node ids, independent of the
// parent/child hierarchy.
type VisualGroup struct {
	ID      string
	Members map[string]struct{}
}

// NewVisualGroup creates a group with the given members.
func NewVisualGroup(id string, members ...string) VisualGroup {
	g := VisualGroup{ID: id, Members: make(map[string]struct{}, len(members))}
	for _, m := range members {
		g.Members[m] = struct{}{}
	}
	return g
}

// Has reports whether id is a member of the group.
func (g VisualGroup) Has(id string) bool {
	_, ok := g.Members[id]
	return ok
}

// MemberIDs returns the member ids in sorted order.
func (g VisualGroup) MemberIDs() []string {
	ids := make([]string, 0, len(g.Members))
	for id := range g.Members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Clone returns a deep copy of the group.
func (g VisualGroup) Clone() VisualGroup {
	out := VisualGroup{ID: g.ID, Members: make(map[string]struct{}, len(g.Members))}
	for m := range g.Members {
		out.Members[m] = struct{}{}
	}
	return out
}

// Scene owns all mutable canvas state. It is not safe for concurrent use;
// the engine facade is the single choke point that serializes access.
type Scene struct {
	nodes map[string]Node
	order []string // node insertion order, doubles as z-order

	camera geom.Camera

	selection map[string]struct{}

	groups     map[string]VisualGroup
	groupOrder []string

	guides     map[string]Guide
	guideOrder []string
}

// New creates an empty scene with a default camera.
func New() *Scene {
	return &Scene{
		nodes:     make(map[string]Node),
		camera:    geom.DefaultCamera(),
		selection: make(map[string]struct{}),
		groups:    make(map[string]VisualGroup),
		guides:    make(map[string]Guide),
	}
}

// Node returns the node with the given id.
func (s *Scene) Node(id string) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// HasNode reports whether a node with the given id exists.
func (s *Scene) HasNode(id string) bool {
	_, ok := s.nodes[id]
	return ok
}

// PutNode inserts or replaces a node. New ids append to the z-order.
func (s *Scene) PutNode(n Node) {
	if _, ok := s.nodes[n.ID]; !ok {
		s.order = append(s.order, n.ID)
	}
	s.nodes[n.ID] = n
}

// DeleteNode removes a node. Missing ids are ignored.
func (s *Scene) DeleteNode(id string) {
	if _, ok := s.nodes[id]; !ok {
		return
	}
	delete(s.nodes, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// NodeCount returns the number of nodes.
func (s *Scene) NodeCount() int { return len(s.nodes) }

// Nodes returns all nodes in z-order as copies.
func (s *Scene) Nodes() []Node {
	out := make([]Node, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.nodes[id])
	}
	return out
}

// NodeIDs returns all node ids in z-order.
func (s *Scene) NodeIDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Camera returns the current camera value.
func (s *Scene) Camera() geom.Camera { return s.camera }

// SetCamera replaces the camera value.
func (s *Scene) SetCamera(c geom.Camera) { s.camera = c }

// Select adds id to the selection set.
func (s *Scene) Select(id string) { s.selection[id] = struct{}{} }

// Deselect removes id from the selection set.
func (s *Scene) Deselect(id string) { delete(s.selection, id) }

// IsSelected reports selection membership.
func (s *Scene) IsSelected(id string) bool {
	_, ok := s.selection[id]
	return ok
}

// ClearSelection empties the selection set.
func (s *Scene) ClearSelection() {
	clear(s.selection)
}

// SelectionCount returns the number of selected ids.
func (s *Scene) SelectionCount() int { return len(s.selection) }

// Selected returns the selected ids in sorted order.
func (s *Scene) Selected() []string {
	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PruneSelection drops selected ids whose nodes no longer exist. Called
// after every removal and after undo/redo replay.
func (s *Scene) PruneSelection() {
	for id := range s.selection {
		if _, ok := s.nodes[id]; !ok {
			delete(s.selection, id)
		}
	}
}

// Group returns the visual group with the given id.
func (s *Scene) Group(id string) (VisualGroup, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// PutGroup inserts or replaces a visual group.
func (s *Scene) PutGroup(g VisualGroup) {
	if _, ok := s.groups[g.ID]; !ok {
		s.groupOrder = append(s.groupOrder, g.ID)
	}
	s.groups[g.ID] = g.Clone()
}

// DeleteGroup removes a visual group. Missing ids are ignored.
func (s *Scene) DeleteGroup(id string) {
	if _, ok := s.groups[id]; !ok {
		return
	}
	delete(s.groups, id)
	for i, gid := range s.groupOrder {
		if gid == id {
			s.groupOrder = append(s.groupOrder[:i], s.groupOrder[i+1:]...)
			break
		}
	}
}

// Groups returns all visual groups in creation order as deep copies.
func (s *Scene) Groups() []VisualGroup {
	out := make([]VisualGroup, 0, len(s.groupOrder))
	for _, id := range s.groupOrder {
		out = append(out, s.groups[id].Clone())
	}
	return out
}

// Guide returns the guide with the given id.
func (s *Scene) Guide(id string) (Guide, bool) {
	g, ok := s.guides[id]
	return g, ok
}

// PutGuide inserts or replaces a guide.
func (s *Scene) PutGuide(g Guide) {
	if _, ok := s.guides[g.ID]; !ok {
		s.guideOrder = append(s.guideOrder, g.ID)
	}
	s.guides[g.ID] = g
}

// DeleteGuide removes a guide. Missing ids are ignored.
func (s *Scene) DeleteGuide(id string) {
	if _, ok := s.guides[id]; !ok {
		return
	}
	delete(s.guides, id)
	for i, gid := range s.guideOrder {
		if gid == id {
			s.guideOrder = append(s.guideOrder[:i], s.guideOrder[i+1:]...)
			break
		}
	}
}

// Guides returns all guides in creation order.
func (s *Scene) Guides() []Guide {
	out := make([]Guide, 0, len(s.guideOrder))
	for _, id := range s.guideOrder {
		out = append(out, s.guides[id])
	}
	return out
}
