// Package engine is the core state-transition engine for the canvas
// editor. A Store instance owns all mutable session state: the node map,
// camera, selection, visual groups, guides, clipboard, and the undo/redo
// history. Rendering and input layers call the Store's operation surface
// and read derived snapshots; they never mutate state directly, which is
// what keeps the structural invariants (parent-link acyclicity,
// selection referential integrity, exactly-once coalesced undo steps)
// enforceable at a single choke point.
//
// # Mutation and history
//
// Every mutating primitive builds one or more invertible change records
// and applies them through the store's internal apply function. In
// Recording mode the change also enters history - into the open batch
// if one exists, otherwise as its own entry. Undo and redo replay
// entries in Replaying mode so their mutations are never re-recorded.
//
// # Gestures
//
// Input layers bracket multi-step gestures with BeginHistory and
// EndHistory. All changes inside the bracket coalesce into one undoable
// step; a gesture abandoned with no net change leaves no history behind.
// While a batch is open the alignment engine is armed and MoveSelectedBy
// deltas are snap-adjusted.
//
// # Concurrency
//
// The Store is single-threaded and synchronous. The batch-open and
// replaying markers guard against logical re-entrancy (undo during a
// drag is refused, not queued); they are not cross-thread locks.
package engine
