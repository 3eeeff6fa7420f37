package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/config"
	"github.com/dshills/scenekit/internal/engine/geom"
)

// storeConfig carries option values that must be resolved before the
// history and snap engines are constructed.
type storeConfig struct {
	maxUndoEntries *int
	snapTolerance  *float64
	snapDisabled   bool
}

// Option configures a Store during creation.
type Option func(*Store, *storeConfig)

// WithLogger sets the store's logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(st *Store, _ *storeConfig) {
		if l != nil {
			st.logger = l
		}
	}
}

// WithViewport sets the screen viewport size used for visibility checks
// and undo recentering.
func WithViewport(width, height float64) Option {
	return func(st *Store, _ *storeConfig) {
		if width > 0 && height > 0 {
			st.viewport = geom.Size{Width: width, Height: height}
		}
	}
}

// WithZoomRange sets the camera zoom clamp range.
func WithZoomRange(minZoom, maxZoom float64) Option {
	return func(st *Store, _ *storeConfig) {
		if minZoom > 0 && maxZoom >= minZoom {
			st.minZoom = minZoom
			st.maxZoom = maxZoom
		}
	}
}

// WithSnapTolerance sets the snap tolerance in screen pixels.
func WithSnapTolerance(px float64) Option {
	return func(_ *Store, c *storeConfig) {
		if px > 0 {
			*c.snapTolerance = px
		}
	}
}

// WithSnapDisabled creates the store with alignment snapping off.
func WithSnapDisabled() Option {
	return func(_ *Store, c *storeConfig) {
		c.snapDisabled = true
	}
}

// WithPasteOffset sets the diagonal nudge step for blind pastes and the
// repeat count after which the nudge wraps.
func WithPasteOffset(step float64, wrapAfter int) Option {
	return func(st *Store, _ *storeConfig) {
		if step > 0 {
			st.pasteStep = step
		}
		if wrapAfter > 0 {
			st.pasteWrap = wrapAfter
		}
	}
}

// WithMaxUndoEntries sets the maximum depth of the undo stack.
func WithMaxUndoEntries(n int) Option {
	return func(_ *Store, c *storeConfig) {
		if n > 0 {
			*c.maxUndoEntries = n
		}
	}
}

// WithConfig applies a loaded configuration file to the store.
func WithConfig(cfg config.Config) Option {
	return func(st *Store, c *storeConfig) {
		WithViewport(cfg.Viewport.Width, cfg.Viewport.Height)(st, c)
		WithZoomRange(cfg.Camera.MinZoom, cfg.Camera.MaxZoom)(st, c)
		WithSnapTolerance(cfg.Snap.TolerancePx)(st, c)
		if !cfg.Snap.Enabled {
			c.snapDisabled = true
		}
		WithPasteOffset(cfg.Paste.Step, cfg.Paste.WrapAfter)(st, c)
		WithMaxUndoEntries(cfg.History.MaxEntries)(st, c)
	}
}

// ApplyConfig applies the tunable parts of a configuration to a running
// store, for live reload. History depth is fixed at construction.
func (st *Store) ApplyConfig(cfg config.Config) {
	if cfg.Viewport.Width > 0 && cfg.Viewport.Height > 0 {
		st.viewport = geom.Size{Width: cfg.Viewport.Width, Height: cfg.Viewport.Height}
	}
	if cfg.Camera.MinZoom > 0 && cfg.Camera.MaxZoom >= cfg.Camera.MinZoom {
		st.minZoom = cfg.Camera.MinZoom
		st.maxZoom = cfg.Camera.MaxZoom
	}
	if cfg.Snap.TolerancePx > 0 {
		st.snap.SetTolerance(cfg.Snap.TolerancePx)
	}
	st.snap.SetEnabled(cfg.Snap.Enabled)
	if cfg.Paste.Step > 0 {
		st.pasteStep = cfg.Paste.Step
	}
	if cfg.Paste.WrapAfter > 0 {
		st.pasteWrap = cfg.Paste.WrapAfter
	}
	st.logger.Debug("configuration applied",
		zap.Float64("snap_tolerance", cfg.Snap.TolerancePx),
		zap.Bool("snap_enabled", cfg.Snap.Enabled))
}
