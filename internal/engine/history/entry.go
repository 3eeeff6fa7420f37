package history

import "github.com/dshills/scenekit/internal/engine/geom"

// Entry is one undoable step: an ordered list of changes applied as a
// unit. Redo replays the list forward; undo applies each change's
// inverse in reverse order.
type Entry struct {
	Label   string
	Changes []Change
}

// Bounds returns the union of the geometry the entry's changes put in
// place when applied forward. For the undo direction, invert the changes
// first; NodeUpdate then reports its pre-change geometry.
func (e *Entry) Bounds() (geom.Rect, bool) {
	var box geom.Rect
	found := false
	for _, c := range e.Changes {
		r, ok := c.Bounds()
		if !ok {
			continue
		}
		if !found {
			box = r
			found = true
			continue
		}
		box = box.Union(r)
	}
	return box, found
}

// InverseBounds returns the union of the geometry undoing this entry
// puts in place.
func (e *Entry) InverseBounds() (geom.Rect, bool) {
	inv := Entry{Changes: make([]Change, len(e.Changes))}
	for i, c := range e.Changes {
		inv.Changes[i] = c.Invert()
	}
	return inv.Bounds()
}

// Batch accumulates changes for one open gesture. The index maps are the
// coalescing invariant: a second update to the same node (or guide, or
// the camera) merges into the existing record, keeping its original
// Before and taking the new After, so the whole batch inverts to the
// pre-batch state in one step.
type Batch struct {
	label     string
	changes   []Change
	nodeIdx   map[string]int
	guideIdx  map[string]int
	cameraIdx int
}

func newBatch(label string) *Batch {
	return &Batch{
		label:     label,
		nodeIdx:   make(map[string]int),
		guideIdx:  make(map[string]int),
		cameraIdx: -1,
	}
}

// Record appends a change to the batch, merging with an existing record
// of the same coalescing key where one exists.
func (b *Batch) Record(c Change) {
	switch c := c.(type) {
	case NodeUpdate:
		if i, ok := b.nodeIdx[c.ID]; ok {
			prev := b.changes[i].(NodeUpdate)
			prev.After = c.After
			b.changes[i] = prev
			return
		}
		b.nodeIdx[c.ID] = len(b.changes)
	case GuideMove:
		if i, ok := b.guideIdx[c.ID]; ok {
			prev := b.changes[i].(GuideMove)
			prev.After = c.After
			b.changes[i] = prev
			return
		}
		b.guideIdx[c.ID] = len(b.changes)
	case CameraMove:
		if b.cameraIdx >= 0 {
			prev := b.changes[b.cameraIdx].(CameraMove)
			prev.After = c.After
			b.changes[b.cameraIdx] = prev
			return
		}
		b.cameraIdx = len(b.changes)
	}
	b.changes = append(b.changes, c)
}

// Len returns the number of accumulated change records.
func (b *Batch) Len() int { return len(b.changes) }

// entry converts the batch into a history entry.
func (b *Batch) entry() *Entry {
	return &Entry{Label: b.label, Changes: b.changes}
}
