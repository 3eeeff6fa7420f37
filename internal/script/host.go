// Package script hosts user macros written in Lua. A macro drives the
// engine through the same operation surface the UI uses, so repetitive
// edits (layout sweeps, bulk renames, test fixtures) can be automated
// without touching engine internals.
//
// The Lua state is sandboxed: only the base, table, string, and math
// libraries are opened, file and OS access is unavailable, and script
// execution is bounded by a wall-clock timeout.
package script

import (
	"context"
	"fmt"
	"os"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/scenekit/internal/engine"
)

// DefaultTimeout bounds a single macro execution.
const DefaultTimeout = 5 * time.Second

// Host runs Lua macros against one engine store. Not safe for
// concurrent use; the engine itself is single-threaded.
type Host struct {
	L       *lua.LState
	store   *engine.Store
	logger  *zap.Logger
	timeout time.Duration
	closed  bool
}

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the host's logger.
func WithLogger(l *zap.Logger) Option {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithTimeout sets the per-execution wall-clock limit.
func WithTimeout(d time.Duration) Option {
	return func(h *Host) {
		if d > 0 {
			h.timeout = d
		}
	}
}

// New creates a macro host bound to the given store.
func New(store *engine.Store, opts ...Option) *Host {
	h := &Host{
		store:   store,
		logger:  zap.NewNop(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(open.fn))
		L.Push(lua.LString(open.name))
		L.Call(1, 0)
	}
	// Base opens a few escape hatches we do not want macros to have.
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	h.L = L
	h.register()
	return h
}

// Run executes macro source. Engine state mutated before a script error
// remains in place, mirroring an interrupted interactive gesture.
func (h *Host) Run(source string) error {
	if h.closed {
		return ErrHostClosed
	}
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()
	h.L.SetContext(ctx)
	defer h.L.RemoveContext()

	if err := h.L.DoString(source); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w after %s", ErrScriptTimeout, h.timeout)
		}
		return fmt.Errorf("macro: %w", err)
	}
	return nil
}

// RunFile executes a macro from disk.
func (h *Host) RunFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading macro %s: %w", path, err)
	}
	h.logger.Debug("running macro", zap.String("path", path))
	return h.Run(string(data))
}

// Close releases the Lua state. The host cannot be used afterward.
func (h *Host) Close() {
	if h.closed {
		return
	}
	h.closed = true
	h.L.Close()
}
