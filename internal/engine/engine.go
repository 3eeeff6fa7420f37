package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/engine/align"
	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/history"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// Default store configuration.
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
	DefaultMinZoom        = 0.1
	DefaultMaxZoom        = 8.0
	DefaultSnapTolerance  = 6.0 // screen pixels
	DefaultPasteStep      = 16.0
	DefaultPasteWrap      = 8
	DefaultNodeWidth      = 100.0
	DefaultNodeHeight     = 60.0
)

// Store is the state-transition engine for one editor session. Construct
// one per session with New and pass it by reference; all operations are
// methods on the instance.
type Store struct {
	logger *zap.Logger

	scene   *scene.Scene
	history *history.History
	snap    *align.Engine

	viewport geom.Size
	minZoom  float64
	maxZoom  float64

	pasteStep float64
	pasteWrap int

	clipboard  []scene.Node
	pasteCount int

	innerEditID     string
	selectedGroupID string
	hoveredGroupID  string
	hoveredGroup2ID string
	activeGuideID   string

	// gesture-start snapshots for the Temporary/Commit transform pairs
	gestureNodes  map[string]scene.Node
	gestureGuides map[string]float64

	subs    map[int]func(Event)
	nextSub int
}

// New creates an empty store.
func New(opts ...Option) *Store {
	st := &Store{
		logger:        zap.NewNop(),
		scene:         scene.New(),
		viewport:      geom.Size{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
		minZoom:       DefaultMinZoom,
		maxZoom:       DefaultMaxZoom,
		pasteStep:     DefaultPasteStep,
		pasteWrap:     DefaultPasteWrap,
		gestureNodes:  make(map[string]scene.Node),
		gestureGuides: make(map[string]float64),
		subs:          make(map[int]func(Event)),
	}
	maxEntries := 0
	snapTolerance := DefaultSnapTolerance
	cfg := &storeConfig{maxUndoEntries: &maxEntries, snapTolerance: &snapTolerance}
	for _, opt := range opts {
		opt(st, cfg)
	}
	st.history = history.New(maxEntries)
	st.snap = align.New(snapTolerance)
	if cfg.snapDisabled {
		st.snap.SetEnabled(false)
	}
	return st
}

// apply is the single choke point every mutation flows through. In
// Recording mode the change enters history; in Replaying mode (undo and
// redo) it only mutates the scene.
func (st *Store) apply(c history.Change, mode history.TransitionMode) {
	c.Apply(st.scene)
	if mode == history.Recording {
		st.history.Record(c)
		st.logger.Debug("change recorded",
			zap.String("kind", c.Kind()),
			zap.Bool("batched", st.history.BatchOpen()))
	}
}

// withEntry groups the changes recorded by fn into one history entry.
// If the caller already has a batch open the changes merge into it, so
// composite primitives behave identically inside and outside gestures.
func (st *Store) withEntry(label string, fn func()) {
	wrap := st.history.Begin(label)
	fn()
	if wrap {
		st.history.End()
	}
}

// Nodes returns all nodes in z-order as value copies.
func (st *Store) Nodes() []scene.Node { return st.scene.Nodes() }

// Node returns the node with the given id.
func (st *Store) Node(id string) (scene.Node, bool) { return st.scene.Node(id) }

// NodeCount returns the number of nodes in the scene.
func (st *Store) NodeCount() int { return st.scene.NodeCount() }

// Camera returns the current camera.
func (st *Store) Camera() geom.Camera { return st.scene.Camera() }

// Viewport returns the configured screen viewport size.
func (st *Store) Viewport() geom.Size { return st.viewport }

// Selected returns the selected node ids in sorted order.
func (st *Store) Selected() []string { return st.scene.Selected() }

// VisualGroups returns all visual groups as deep copies.
func (st *Store) VisualGroups() []scene.VisualGroup { return st.scene.Groups() }

// Guides returns all guides in creation order.
func (st *Store) Guides() []scene.Guide { return st.scene.Guides() }

// AlignmentGuides returns the ephemeral snap guides for the active
// gesture, empty outside one.
func (st *Store) AlignmentGuides() []align.Guide { return st.snap.Guides() }

// SnapOffset returns the correction applied by engaged snap locks.
func (st *Store) SnapOffset() geom.Point { return st.snap.Offset() }

// SetSnapEnabled toggles alignment snapping globally.
func (st *Store) SetSnapEnabled(on bool) { st.snap.SetEnabled(on) }

// SnapEnabled reports whether alignment snapping is enabled.
func (st *Store) SnapEnabled() bool { return st.snap.Enabled() }
