package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scenekit/internal/engine/geom"
	"github.com/dshills/scenekit/internal/engine/scene"
)

// register installs the global `scene` table exposing the store's
// operation surface to macros.
func (h *Host) register() {
	st := h.store
	L := h.L
	mod := L.NewTable()

	fns := map[string]lua.LGFunction{
		"add_node": func(L *lua.LState) int {
			n := tableToNode(L.CheckTable(1))
			L.Push(lua.LString(st.AddNode(n)))
			return 1
		},
		"add_node_at_center": func(L *lua.LState) int {
			L.Push(lua.LString(st.AddNodeAtCenter()))
			return 1
		},
		"update_node": func(L *lua.LState) int {
			st.UpdateNode(L.CheckString(1), tableToPatch(L.CheckTable(2)))
			return 0
		},
		"remove_node": func(L *lua.LState) int {
			st.RemoveNode(L.CheckString(1))
			return 0
		},
		"remove_nodes": func(L *lua.LState) int {
			st.RemoveNodes(stringsFromTable(L.CheckTable(1)))
			return 0
		},
		"node": func(L *lua.LState) int {
			n, ok := st.Node(L.CheckString(1))
			if !ok {
				L.Push(lua.LNil)
				return 1
			}
			L.Push(nodeToTable(L, n))
			return 1
		},
		"nodes": func(L *lua.LState) int {
			t := L.NewTable()
			for _, n := range st.Nodes() {
				t.Append(nodeToTable(L, n))
			}
			L.Push(t)
			return 1
		},
		"node_count": func(L *lua.LState) int {
			L.Push(lua.LNumber(st.NodeCount()))
			return 1
		},

		"select_only": func(L *lua.LState) int {
			st.SelectOnly(L.CheckString(1))
			return 0
		},
		"add_to_selection": func(L *lua.LState) int {
			st.AddToSelection(L.CheckString(1))
			return 0
		},
		"remove_from_selection": func(L *lua.LState) int {
			st.RemoveFromSelection(L.CheckString(1))
			return 0
		},
		"toggle_in_selection": func(L *lua.LState) int {
			st.ToggleInSelection(L.CheckString(1))
			return 0
		},
		"clear_selection": func(L *lua.LState) int {
			st.ClearSelection()
			return 0
		},
		"selected": func(L *lua.LState) int {
			t := L.NewTable()
			for _, id := range st.Selected() {
				t.Append(lua.LString(id))
			}
			L.Push(t)
			return 1
		},
		"delete_selected": func(L *lua.LState) int {
			st.DeleteSelected()
			return 0
		},
		"set_inner_edit_target": func(L *lua.LState) int {
			st.SetInnerEditTarget(L.OptString(1, ""))
			return 0
		},

		"move_selected_by": func(L *lua.LState) int {
			st.MoveSelectedBy(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
			return 0
		},
		"group_nodes": func(L *lua.LState) int {
			st.GroupNodes(L.CheckString(1), stringsFromTable(L.CheckTable(2)))
			return 0
		},
		"ungroup": func(L *lua.LState) int {
			st.Ungroup(stringsFromTable(L.CheckTable(1)))
			return 0
		},

		"create_group_from_selection": func(L *lua.LState) int {
			L.Push(lua.LString(st.CreateVisualGroupFromSelection()))
			return 1
		},
		"select_group": func(L *lua.LState) int {
			st.SelectVisualGroup(L.CheckString(1))
			return 0
		},

		"pan_by": func(L *lua.LState) int {
			st.PanBy(float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
			return 0
		},
		"zoom_to": func(L *lua.LState) int {
			st.ZoomTo(float64(L.CheckNumber(1)))
			return 0
		},
		"zoom_by_at": func(L *lua.LState) int {
			p := geom.Point{X: float64(L.CheckNumber(1)), Y: float64(L.CheckNumber(2))}
			st.ZoomByAt(p, float64(L.CheckNumber(3)))
			return 0
		},
		"camera": func(L *lua.LState) int {
			c := st.Camera()
			t := L.NewTable()
			t.RawSetString("zoom", lua.LNumber(c.Zoom))
			t.RawSetString("offset_x", lua.LNumber(c.OffsetX))
			t.RawSetString("offset_y", lua.LNumber(c.OffsetY))
			L.Push(t)
			return 1
		},

		"add_guide": func(L *lua.LState) int {
			axis := scene.Axis(L.CheckString(1))
			if axis != scene.AxisX && axis != scene.AxisY {
				L.ArgError(1, "axis must be \"x\" or \"y\"")
				return 0
			}
			L.Push(lua.LString(st.AddGuide(axis, float64(L.CheckNumber(2)))))
			return 1
		},
		"move_guide": func(L *lua.LState) int {
			st.MoveGuide(L.CheckString(1), float64(L.CheckNumber(2)))
			return 0
		},
		"remove_guide": func(L *lua.LState) int {
			st.RemoveGuide(L.CheckString(1))
			return 0
		},
		"clear_guides": func(L *lua.LState) int {
			st.ClearGuides()
			return 0
		},

		"copy_selection": func(L *lua.LState) int {
			st.CopySelection()
			return 0
		},
		"cut_selection": func(L *lua.LState) int {
			st.CutSelection()
			return 0
		},
		"paste_clipboard": func(L *lua.LState) int {
			if L.GetTop() >= 2 {
				p := geom.Point{X: float64(L.CheckNumber(1)), Y: float64(L.CheckNumber(2))}
				st.PasteClipboard(&p)
			} else {
				st.PasteClipboard(nil)
			}
			return 0
		},

		"begin_history": func(L *lua.LState) int {
			st.BeginHistory(L.OptString(1, ""))
			return 0
		},
		"end_history": func(L *lua.LState) int {
			st.EndHistory()
			return 0
		},
		"undo": func(L *lua.LState) int {
			st.Undo()
			return 0
		},
		"redo": func(L *lua.LState) int {
			st.Redo()
			return 0
		},
		"can_undo": func(L *lua.LState) int {
			L.Push(lua.LBool(st.CanUndo()))
			return 1
		},
		"can_redo": func(L *lua.LState) int {
			L.Push(lua.LBool(st.CanRedo()))
			return 1
		},
		"history_len": func(L *lua.LState) int {
			L.Push(lua.LNumber(st.HistoryLen()))
			return 1
		},
	}

	for name, fn := range fns {
		mod.RawSetString(name, L.NewFunction(fn))
	}
	L.SetGlobal("scene", mod)
}
