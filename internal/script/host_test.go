package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/scenekit/internal/engine"
	"github.com/dshills/scenekit/internal/engine/scene"
)

func newHost(t *testing.T) (*Host, *engine.Store) {
	t.Helper()
	st := engine.New()
	h := New(st)
	t.Cleanup(h.Close)
	return h, st
}

func TestMacroDrivesEngine(t *testing.T) {
	h, st := newHost(t)

	err := h.Run(`
		local id = scene.add_node({ id = "box", x = 10, y = 20, width = 100, height = 60 })
		scene.select_only(id)
		scene.move_selected_by(5, 0)
	`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	n, ok := st.Node("box")
	if !ok {
		t.Fatal("node box missing")
	}
	if n.X != 15 || n.Y != 20 {
		t.Errorf("box at (%g, %g), want (15, 20)", n.X, n.Y)
	}
}

func TestMacroReadsState(t *testing.T) {
	h, st := newHost(t)
	st.AddNode(engineNode("a", 1, 2))
	st.AddNode(engineNode("b", 3, 4))

	err := h.Run(`
		assert(scene.node_count() == 2, "count")
		local n = scene.node("a")
		assert(n.x == 1 and n.y == 2, "fields")
		assert(scene.node("missing") == nil, "missing id")
	`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestMacroHistoryRoundTrip(t *testing.T) {
	h, st := newHost(t)

	err := h.Run(`
		scene.begin_history("macro edit")
		local id = scene.add_node({ id = "m", width = 10, height = 10 })
		scene.select_only(id)
		scene.move_selected_by(1, 0)
		scene.move_selected_by(2, 0)
		scene.end_history()
		assert(scene.history_len() == 1, "one batched entry")
		scene.undo()
		assert(scene.node_count() == 0, "undone")
		assert(scene.can_redo(), "redoable")
		scene.redo()
	`)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if n, ok := st.Node("m"); !ok || n.X != 3 {
		t.Errorf("node m = %+v, %t after redo", n, ok)
	}
}

func TestMacroErrorKeepsPartialState(t *testing.T) {
	h, st := newHost(t)

	err := h.Run(`
		scene.add_node({ id = "kept", width = 10, height = 10 })
		error("boom")
	`)
	if err == nil {
		t.Fatal("Run() succeeded, want error")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error = %v, want script message", err)
	}
	if _, ok := st.Node("kept"); !ok {
		t.Error("state before the failure was rolled back")
	}
}

func TestSandboxBlocksFileAccess(t *testing.T) {
	h, _ := newHost(t)

	for _, src := range []string{
		`dofile("x")`,
		`loadstring("return 1")`,
		`os.exit(1)`,
		`io.open("x")`,
	} {
		if err := h.Run(src); err == nil {
			t.Errorf("Run(%q) succeeded, want sandbox error", src)
		}
	}
}

func TestTimeout(t *testing.T) {
	st := engine.New()
	h := New(st, WithTimeout(50*time.Millisecond))
	defer h.Close()

	err := h.Run(`while true do end`)
	if !errors.Is(err, ErrScriptTimeout) {
		t.Errorf("Run() error = %v, want timeout", err)
	}
}

func TestRunFile(t *testing.T) {
	h, st := newHost(t)
	path := filepath.Join(t.TempDir(), "macro.lua")
	src := `scene.add_node({ id = "fromfile", width = 10, height = 10 })`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := h.RunFile(path); err != nil {
		t.Fatalf("RunFile() error = %v", err)
	}
	if _, ok := st.Node("fromfile"); !ok {
		t.Error("macro file did not run")
	}

	if err := h.RunFile(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("RunFile() on missing path succeeded")
	}
}

func TestClosedHostRefusesRun(t *testing.T) {
	h, _ := newHost(t)
	h.Close()
	if err := h.Run(`return`); !errors.Is(err, ErrHostClosed) {
		t.Errorf("Run() error = %v, want ErrHostClosed", err)
	}
}

func engineNode(id string, x, y float64) scene.Node {
	return scene.Node{ID: id, X: x, Y: y, Width: 10, Height: 10}
}
