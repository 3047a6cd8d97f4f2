package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the module constructors as Lua globals. All but
// Game are curried: Location("id") returns a function taking the body
// table, so module files read as declarations.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", start = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	curried := func(sink *[]rawDef) *lua.LFunction {
		return L.NewFunction(func(L *lua.LState) int {
			id := L.CheckString(1)
			L.Push(L.NewFunction(func(L *lua.LState) int {
				tbl := L.CheckTable(1)
				*sink = append(*sink, rawDef{id: id, table: tbl})
				return 0
			}))
			return 1
		})
	}

	L.SetGlobal("Location", curried(&coll.locations))
	L.SetGlobal("Item", curried(&coll.items))
	L.SetGlobal("NPC", curried(&coll.npcs))
	L.SetGlobal("Quest", curried(&coll.quests))
	L.SetGlobal("Event", curried(&coll.events))
	L.SetGlobal("Recipe", curried(&coll.recipes))
}
