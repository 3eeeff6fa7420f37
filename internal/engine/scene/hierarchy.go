package scene

// ChildrenOf returns the ids of the node's direct children in z-order.
func (s *Scene) ChildrenOf(parentID string) []string {
	var out []string
	for _, id := range s.order {
		if s.nodes[id].ParentID == parentID {
			out = append(out, id)
		}
	}
	return out
}

// childrenIndex builds a parent id -> child ids map over the current
// node set.
func (s *Scene) childrenIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, id := range s.order {
		if p := s.nodes[id].ParentID; p != "" {
			idx[p] = append(idx[p], id)
		}
	}
	return idx
}

// Descendants returns the given ids plus every node transitively
// reachable from them via child links, in breadth-first order with
// duplicates removed. Unknown ids are skipped.
func (s *Scene) Descendants(ids ...string) []string {
	idx := s.childrenIndex()
	seen := make(map[string]struct{}, len(ids))
	var out, queue []string
	for _, id := range ids {
		if !s.HasNode(id) {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
		queue = append(queue, id)
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range idx[id] {
			if _, ok := seen[child]; ok {
				continue
			}
			seen[child] = struct{}{}
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}

// AncestorReaches reports whether walking the parent chain upward from id
// (including id itself) reaches target.
func (s *Scene) AncestorReaches(id, target string) bool {
	for cur := id; cur != ""; {
		if cur == target {
			return true
		}
		n, ok := s.nodes[cur]
		if !ok {
			return false
		}
		cur = n.ParentID
	}
	return false
}

// WouldCycle reports whether setting childID's parent to parentID would
// close a loop: it walks the parent chain starting at parentID and
// returns true if it ever reaches childID.
func (s *Scene) WouldCycle(parentID, childID string) bool {
	for cur := parentID; cur != ""; {
		if cur == childID {
			return true
		}
		n, ok := s.nodes[cur]
		if !ok {
			return false
		}
		cur = n.ParentID
	}
	return false
}
