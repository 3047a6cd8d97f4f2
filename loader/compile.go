package loader

import (
	"fmt"

	"github.com/nathoo/thornhold/types"
	lua "github.com/yuin/gopher-lua"
)

// rawDef holds one declaration before compilation.
type rawDef struct {
	id    string
	table *lua.LTable
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or the default if missing.
func getInt(tbl *lua.LTable, key string, def int) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return def
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// getStrings returns an array-style table field as a string slice.
func getStrings(tbl *lua.LTable, key string) []string {
	arr := getTable(tbl, key)
	if arr == nil {
		return nil
	}
	var out []string
	for i := 1; i <= arr.MaxN(); i++ {
		if s, ok := arr.RawGetInt(i).(lua.LString); ok {
			out = append(out, string(s))
		}
	}
	return out
}

// getDirectionMap converts a {direction = "target"} table. Unknown
// direction keys are a compile error.
func getDirectionMap(tbl *lua.LTable, key, owner string) (map[types.Direction]string, error) {
	out := map[types.Direction]string{}
	sub := getTable(tbl, key)
	if sub == nil {
		return out, nil
	}
	var badKey string
	sub.ForEach(func(k, v lua.LValue) {
		ks, ok := k.(lua.LString)
		if !ok {
			return
		}
		dir, ok := types.ParseDirection(string(ks))
		if !ok {
			badKey = string(ks)
			return
		}
		if vs, ok := v.(lua.LString); ok {
			out[dir] = string(vs)
		}
	})
	if badKey != "" {
		return nil, fmt.Errorf("%s: unknown direction %q in %s", owner, badKey, key)
	}
	return out, nil
}

// compile converts the collected declarations into a world ready for
// validation. The start location is marked visited so the first look
// renders as a first visit everywhere else.
func compile(coll *collector) (*types.World, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} declaration found")
	}

	w := &types.World{
		Title:     getString(coll.game, "title"),
		Locations: map[string]*types.Location{},
		Items:     map[string]*types.Item{},
		Npcs:      map[string]*types.Npc{},
		Quests:    map[string]*types.Quest{},
		Mode:      types.Exploring(),
	}

	start := getString(coll.game, "start")
	w.Player = types.Player{
		Location:     start,
		Inventory:    []string{},
		MaxInventory: getInt(coll.game, "max_inventory", 10),
		MaxHealth:    getInt(coll.game, "health", 100),
		Attack:       getInt(coll.game, "attack", 5),
		Defense:      getInt(coll.game, "defense", 3),
		QuestFlags:   map[string]bool{},
		Visited:      map[string]bool{},
	}
	w.Player.Health = w.Player.MaxHealth
	if start != "" {
		w.Player.Visited[start] = true
	}

	for _, raw := range coll.locations {
		loc, err := compileLocation(raw)
		if err != nil {
			return nil, err
		}
		if loc.ID == start {
			loc.Visited = true
		}
		w.Locations[loc.ID] = loc
	}
	for _, raw := range coll.items {
		w.Items[raw.id] = compileItem(raw)
	}
	for _, raw := range coll.npcs {
		w.Npcs[raw.id] = compileNpc(raw)
	}
	for _, raw := range coll.quests {
		w.Quests[raw.id] = compileQuest(raw)
	}
	for _, raw := range coll.events {
		ev, err := compileEvent(raw)
		if err != nil {
			return nil, err
		}
		w.Events = append(w.Events, ev)
	}
	for _, raw := range coll.recipes {
		w.Recipes = append(w.Recipes, &types.Recipe{
			ID:     raw.id,
			Inputs: getStrings(raw.table, "inputs"),
			Output: getString(raw.table, "output"),
			Hint:   getString(raw.table, "hint"),
		})
	}

	return w, nil
}

func compileLocation(raw rawDef) (*types.Location, error) {
	tbl := raw.table
	exits, err := getDirectionMap(tbl, "exits", "location "+raw.id)
	if err != nil {
		return nil, err
	}
	locked, err := getDirectionMap(tbl, "locked_exits", "location "+raw.id)
	if err != nil {
		return nil, err
	}
	return &types.Location{
		ID:             raw.id,
		Name:           getString(tbl, "name"),
		Description:    getString(tbl, "description"),
		RevisitText:    getString(tbl, "revisit"),
		ExamineDetails: getString(tbl, "examine"),
		Items:          getStrings(tbl, "items"),
		Npcs:           getStrings(tbl, "npcs"),
		Exits:          exits,
		LockedExits:    locked,
		Mood:           types.Mood(getString(tbl, "mood")),
	}, nil
}

func compileItem(raw rawDef) *types.Item {
	tbl := raw.table
	item := &types.Item{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Type:        types.ItemType(getString(tbl, "type")),
		Usable:      getBool(tbl, "usable", false),
		Consumable:  getBool(tbl, "consumable", false),
		KeyID:       getString(tbl, "key_id"),
		Lore:        getString(tbl, "lore"),
	}
	atk := getInt(tbl, "attack", 0)
	def := getInt(tbl, "defense", 0)
	hp := getInt(tbl, "health", 0)
	if atk != 0 || def != 0 || hp != 0 {
		item.Modifier = &types.Modifier{Attack: atk, Defense: def, Health: hp}
	}
	return item
}

func compileNpc(raw rawDef) *types.Npc {
	tbl := raw.table
	hostile := getBool(tbl, "hostile", false)
	state := types.StateGreeting
	if hostile {
		state = types.StateHostile
	}
	health := getInt(tbl, "health", 1)
	return &types.Npc{
		ID:              raw.id,
		Name:            getString(tbl, "name"),
		Description:     getString(tbl, "description"),
		PersonalitySeed: getString(tbl, "personality"),
		DialogueState:   state,
		Hostile:         hostile,
		Health:          health,
		MaxHealth:       health,
		Attack:          getInt(tbl, "attack", 0),
		Defense:         getInt(tbl, "defense", 0),
		Items:           getStrings(tbl, "drops"),
		QuestGiver:      getString(tbl, "quest"),
		ExamineText:     getString(tbl, "examine"),
	}
}

func compileQuest(raw rawDef) *types.Quest {
	tbl := raw.table
	quest := &types.Quest{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Giver:       getString(tbl, "giver"),
		Reward:      getStrings(tbl, "reward"),
		Active:      getBool(tbl, "active", false),
	}
	if obj := getTable(tbl, "objective"); obj != nil {
		quest.Objective = types.Objective{
			Kind:   types.ObjectiveKind(getString(obj, "kind")),
			Target: getString(obj, "target"),
		}
	}
	return quest
}

// triggerKinds maps the short trigger names used in Lua modules.
var triggerKinds = map[string]types.TriggerKind{
	"enter": types.OnEnter,
	"take":  types.OnTake,
	"use":   types.OnUse,
	"kill":  types.OnKill,
	"turn":  types.OnTurn,
}

func compileEvent(raw rawDef) (*types.GameEvent, error) {
	tbl := raw.table
	ev := &types.GameEvent{
		ID:         raw.id,
		LocationID: getString(tbl, "location"),
		OneShot:    getBool(tbl, "one_shot", false),
	}

	trig := getTable(tbl, "trigger")
	if trig == nil {
		return nil, fmt.Errorf("event %s: missing trigger", raw.id)
	}
	kind, ok := triggerKinds[getString(trig, "on")]
	if !ok {
		return nil, fmt.Errorf("event %s: unknown trigger %q", raw.id, getString(trig, "on"))
	}
	ev.Trigger = types.Trigger{
		Kind: kind,
		ID:   getString(trig, "id"),
		Turn: getInt(trig, "turn", 0),
	}

	act := getTable(tbl, "action")
	if act == nil {
		return nil, fmt.Errorf("event %s: missing action", raw.id)
	}
	ev.Action = types.EventAction{
		Kind:     types.EventActionKind(getString(act, "kind")),
		Amount:   getInt(act, "amount", 0),
		ID:       getString(act, "id"),
		Text:     getString(act, "text"),
		Location: getString(act, "location"),
	}
	if dirStr := getString(act, "direction"); dirStr != "" {
		dir, ok := types.ParseDirection(dirStr)
		if !ok {
			return nil, fmt.Errorf("event %s: unknown direction %q", raw.id, dirStr)
		}
		ev.Action.Direction = dir
	}
	if st := getTable(act, "status"); st != nil {
		ev.Action.Status = &types.StatusEffect{
			Name:          getString(st, "name"),
			TurnsLeft:     getInt(st, "turns", 0),
			DamagePerTurn: getInt(st, "damage_per_turn", 0),
			AttackMod:     getInt(st, "attack_mod", 0),
			DefenseMod:    getInt(st, "defense_mod", 0),
		}
	}

	return ev, nil
}
