package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scenekit/internal/engine/scene"
)

// nodeToTable converts a node value to a Lua table.
func nodeToTable(L *lua.LState, n scene.Node) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("id", lua.LString(n.ID))
	t.RawSetString("x", lua.LNumber(n.X))
	t.RawSetString("y", lua.LNumber(n.Y))
	t.RawSetString("width", lua.LNumber(n.Width))
	t.RawSetString("height", lua.LNumber(n.Height))
	t.RawSetString("rotation", lua.LNumber(n.Rotation))
	if n.ParentID != "" {
		t.RawSetString("parent_id", lua.LString(n.ParentID))
	}
	if !n.CornerRadius.IsZero() {
		t.RawSetString("corner_radius", cornersToValue(L, n.CornerRadius))
	}
	return t
}

// cornersToValue renders a uniform radius as a number and anything else
// as a four-field table.
func cornersToValue(L *lua.LState, c scene.Corners) lua.LValue {
	if c.IsUniform() {
		return lua.LNumber(c.TopLeft)
	}
	t := L.NewTable()
	t.RawSetString("top_left", lua.LNumber(c.TopLeft))
	t.RawSetString("top_right", lua.LNumber(c.TopRight))
	t.RawSetString("bottom_right", lua.LNumber(c.BottomRight))
	t.RawSetString("bottom_left", lua.LNumber(c.BottomLeft))
	return t
}

// tableToNode builds a node from a Lua table. Missing fields keep their
// zero values.
func tableToNode(t *lua.LTable) scene.Node {
	n := scene.Node{}
	n.ID = stringField(t, "id")
	n.X = numberField(t, "x")
	n.Y = numberField(t, "y")
	n.Width = numberField(t, "width")
	n.Height = numberField(t, "height")
	n.Rotation = numberField(t, "rotation")
	n.ParentID = stringField(t, "parent_id")
	if c, ok := cornersField(t, "corner_radius"); ok {
		n.CornerRadius = c
	}
	return n
}

// tableToPatch builds a field-mask patch: only keys present in the
// table are set.
func tableToPatch(t *lua.LTable) scene.Patch {
	p := scene.Patch{}
	if v, ok := rawNumber(t, "x"); ok {
		p.X = scene.Float64(v)
	}
	if v, ok := rawNumber(t, "y"); ok {
		p.Y = scene.Float64(v)
	}
	if v, ok := rawNumber(t, "width"); ok {
		p.Width = scene.Float64(v)
	}
	if v, ok := rawNumber(t, "height"); ok {
		p.Height = scene.Float64(v)
	}
	if v, ok := rawNumber(t, "rotation"); ok {
		p.Rotation = scene.Float64(v)
	}
	if s := t.RawGetString("parent_id"); s != lua.LNil {
		p.ParentID = scene.String(lua.LVAsString(s))
	}
	if c, ok := cornersField(t, "corner_radius"); ok {
		p.CornerRadius = scene.CornersPtr(c)
	}
	return p
}

func stringField(t *lua.LTable, key string) string {
	v := t.RawGetString(key)
	if v == lua.LNil {
		return ""
	}
	return lua.LVAsString(v)
}

func numberField(t *lua.LTable, key string) float64 {
	v, _ := rawNumber(t, key)
	return v
}

func rawNumber(t *lua.LTable, key string) (float64, bool) {
	v := t.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return float64(n), true
	}
	return 0, false
}

// cornersField accepts either a plain number (uniform radius) or a
// table with per-corner keys.
func cornersField(t *lua.LTable, key string) (scene.Corners, bool) {
	v := t.RawGetString(key)
	switch v := v.(type) {
	case lua.LNumber:
		return scene.Uniform(float64(v)), true
	case *lua.LTable:
		return scene.Corners{
			TopLeft:     numberField(v, "top_left"),
			TopRight:    numberField(v, "top_right"),
			BottomRight: numberField(v, "bottom_right"),
			BottomLeft:  numberField(v, "bottom_left"),
		}, true
	default:
		return scene.Corners{}, false
	}
}

// stringsFromTable collects the array part of a table as strings.
func stringsFromTable(t *lua.LTable) []string {
	var out []string
	t.ForEach(func(_, v lua.LValue) {
		out = append(out, lua.LVAsString(v))
	})
	return out
}
