package engine

// EventKind names the slice of store state a change notification covers.
type EventKind int

// Notification kinds.
const (
	EventNodes EventKind = iota
	EventCamera
	EventSelection
	EventGroups
	EventGuides
	EventHistory
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case EventNodes:
		return "nodes"
	case EventCamera:
		return "camera"
	case EventSelection:
		return "selection"
	case EventGroups:
		return "groups"
	case EventGuides:
		return "guides"
	case EventHistory:
		return "history"
	default:
		return "unknown"
	}
}

// Event is a change notification. It carries only the kind; subscribers
// read the state they care about from the store's snapshot accessors.
type Event struct {
	Kind EventKind
}

// Subscribe registers a callback invoked synchronously after mutations.
// The returned function cancels the subscription. Callbacks must not
// mutate the store.
func (st *Store) Subscribe(fn func(Event)) func() {
	id := st.nextSub
	st.nextSub++
	st.subs[id] = fn
	return func() {
		delete(st.subs, id)
	}
}

func (st *Store) notify(kinds ...EventKind) {
	if len(st.subs) == 0 {
		return
	}
	for _, k := range kinds {
		for _, fn := range st.subs {
			fn(Event{Kind: k})
		}
	}
}
