// Package loader reads custom world modules. Lua modules are compiled
// into the typed world through a small declarative API; JSON modules
// deserialize directly. The Lua VM is discarded after loading.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nathoo/thornhold/engine/save"
	"github.com/nathoo/thornhold/types"
	lua "github.com/yuin/gopher-lua"
)

// collector accumulates Lua definitions during file execution.
type collector struct {
	game      *lua.LTable
	locations []rawDef
	items     []rawDef
	npcs      []rawDef
	quests    []rawDef
	events    []rawDef
	recipes   []rawDef
}

// Load reads a world module from path. A path ending in .json is
// deserialized directly; a directory is treated as a Lua module (all
// .lua files, world.lua first). The result is validated either way.
func Load(path string) (*types.World, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", path, err)
	}

	var w *types.World
	if !info.IsDir() {
		if !strings.HasSuffix(path, ".json") {
			return nil, fmt.Errorf("module %s: expected a directory of .lua files or a .json file", path)
		}
		w, err = loadJSON(path)
	} else {
		w, err = loadLua(path)
	}
	if err != nil {
		return nil, err
	}

	if err := Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

func loadJSON(path string) (*types.World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", path, err)
	}
	var w types.World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("parsing module %s: %w", path, err)
	}
	save.Normalize(&w)
	return &w, nil
}

func loadLua(dir string) (*types.World, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading module directory %s: %w", dir, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			luaFiles = append(luaFiles, e.Name())
		}
	}
	if len(luaFiles) == 0 {
		return nil, fmt.Errorf("no .lua files found in %s", dir)
	}
	luaFiles = sortedLuaFiles(luaFiles)

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	openSafeLibs(L)
	sandbox(L)

	coll := &collector{}
	registerAPI(L, coll)

	for _, f := range luaFiles {
		if err := L.DoFile(filepath.Join(dir, f)); err != nil {
			return nil, fmt.Errorf("executing %s: %w", f, err)
		}
	}

	w, err := compile(coll)
	if err != nil {
		return nil, fmt.Errorf("compiling module data: %w", err)
	}
	return w, nil
}

// openSafeLibs opens only the safe subset of Lua standard libraries.
func openSafeLibs(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// sandbox removes dangerous globals and functions.
func sandbox(L *lua.LState) {
	dangerous := []string{
		"dofile", "loadfile", "load", "loadstring",
		"rawset", "rawget", "rawequal",
		"collectgarbage",
	}
	for _, name := range dangerous {
		L.SetGlobal(name, lua.LNil)
	}

	// Remove math.randomseed to preserve determinism.
	if mathTbl := L.GetGlobal("math"); mathTbl != lua.LNil {
		if tbl, ok := mathTbl.(*lua.LTable); ok {
			tbl.RawSetString("randomseed", lua.LNil)
		}
	}
}

// sortedLuaFiles returns the file list with world.lua first and the
// rest sorted alphabetically.
func sortedLuaFiles(files []string) []string {
	var worldFile string
	var others []string
	for _, f := range files {
		if f == "world.lua" {
			worldFile = f
		} else {
			others = append(others, f)
		}
	}
	sort.Strings(others)
	if worldFile != "" {
		return append([]string{worldFile}, others...)
	}
	return others
}
