package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nathoo/thornhold/types"
)

func writeModule(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

const minimalModule = `
Game { title = "Minimal Test World", start = "hall" }

Location "hall" {
    name = "A Grand Hall",
    description = "A grand hall.",
}
`

func TestLoad_MinimalModule(t *testing.T) {
	dir := writeModule(t, map[string]string{"world.lua": minimalModule})

	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if w.Title != "Minimal Test World" {
		t.Errorf("Title = %q, want %q", w.Title, "Minimal Test World")
	}
	if w.Player.Location != "hall" {
		t.Errorf("start = %q, want %q", w.Player.Location, "hall")
	}
	if !w.Player.Visited["hall"] {
		t.Error("start location not marked visited")
	}
	hall, ok := w.Locations["hall"]
	if !ok {
		t.Fatal("location 'hall' not found")
	}
	if hall.Description != "A grand hall." {
		t.Errorf("hall description = %q", hall.Description)
	}
	if !hall.Visited {
		t.Error("start location flag not set")
	}
	if w.Player.Health != 100 || w.Player.Attack != 5 || w.Player.Defense != 3 {
		t.Errorf("player defaults = %d/%d/%d, want 100/5/3",
			w.Player.Health, w.Player.Attack, w.Player.Defense)
	}
}

const fullModule = `
Game {
    title = "Full Test World",
    start = "entrance",
    max_inventory = 6,
    health = 50,
}

Location "entrance" {
    name = "The Entrance",
    description = "A narrow entrance.",
    items = { "brass_key" },
    npcs = { "doorkeeper" },
    exits = { north = "vault_door" },
}

Location "vault_door" {
    name = "The Vault Door",
    description = "A sealed door.",
    exits = { south = "entrance" },
    locked_exits = { north = "brass_key" },
    mood = "tense",
}

Location "vault" {
    name = "The Vault",
    description = "Gold everywhere.",
    exits = { south = "vault_door" },
}

Item "brass_key" {
    name = "Brass Key",
    description = "A small brass key.",
    type = "key",
    key_id = "vault",
}

Item "healing_draught" {
    name = "Healing Draught",
    description = "A restorative drink.",
    type = "consumable",
    health = 20,
    usable = true,
    consumable = true,
}

NPC "doorkeeper" {
    name = "The Doorkeeper",
    description = "An old man with a ring of keys.",
    personality = "Gruff but fair.",
    quest = "open_the_vault",
    drops = { "healing_draught" },
    health = 12,
    attack = 3,
}

Quest "open_the_vault" {
    name = "Open the Vault",
    description = "Reach the vault.",
    giver = "doorkeeper",
    objective = { kind = "reach_location", target = "vault" },
    reward = { "healing_draught" },
}

Event "door_trap" {
    location = "vault_door",
    trigger = { on = "enter" },
    action = { kind = "damage", amount = 4 },
    one_shot = true,
}

Recipe "brass_draught" {
    inputs = { "brass_key", "healing_draught" },
    output = "healing_draught",
    hint = "Metal and medicine...",
}
`

func TestLoad_FullModule(t *testing.T) {
	dir := writeModule(t, map[string]string{"world.lua": fullModule})

	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(w.Locations) != 3 {
		t.Errorf("expected 3 locations, got %d", len(w.Locations))
	}
	if w.Player.MaxInventory != 6 {
		t.Errorf("MaxInventory = %d, want 6", w.Player.MaxInventory)
	}
	if w.Player.Health != 50 || w.Player.MaxHealth != 50 {
		t.Errorf("health = %d/%d, want 50/50", w.Player.Health, w.Player.MaxHealth)
	}

	door := w.Locations["vault_door"]
	if door.Exits[types.South] != "entrance" {
		t.Errorf("vault_door south exit = %q", door.Exits[types.South])
	}
	if door.LockedExits[types.North] != "brass_key" {
		t.Errorf("vault_door locked north = %q", door.LockedExits[types.North])
	}
	if door.Mood != types.MoodTense {
		t.Errorf("vault_door mood = %q", door.Mood)
	}

	key := w.Items["brass_key"]
	if key == nil || key.Type != types.ItemKey || key.KeyID != "vault" {
		t.Errorf("brass_key = %+v", key)
	}
	draught := w.Items["healing_draught"]
	if draught.Modifier == nil || draught.Modifier.Health != 20 {
		t.Errorf("healing_draught modifier = %+v", draught.Modifier)
	}
	if !draught.Usable || !draught.Consumable {
		t.Error("healing_draught should be usable and consumable")
	}

	keeper := w.Npcs["doorkeeper"]
	if keeper.DialogueState != types.StateGreeting {
		t.Errorf("doorkeeper state = %q", keeper.DialogueState)
	}
	if keeper.Health != 12 || keeper.MaxHealth != 12 {
		t.Errorf("doorkeeper health = %d/%d", keeper.Health, keeper.MaxHealth)
	}
	if keeper.QuestGiver != "open_the_vault" {
		t.Errorf("doorkeeper quest = %q", keeper.QuestGiver)
	}

	quest := w.Quests["open_the_vault"]
	if quest.Objective.Kind != types.ObjectiveReachLocation || quest.Objective.Target != "vault" {
		t.Errorf("quest objective = %+v", quest.Objective)
	}

	if len(w.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(w.Events))
	}
	ev := w.Events[0]
	if ev.Trigger.Kind != types.OnEnter || ev.Action.Kind != types.ActDamage || ev.Action.Amount != 4 {
		t.Errorf("event = %+v", ev)
	}
	if !ev.OneShot {
		t.Error("event should be one-shot")
	}

	if len(w.Recipes) != 1 || w.Recipes[0].Output != "healing_draught" {
		t.Errorf("recipes = %+v", w.Recipes)
	}
}

func TestLoad_MultipleFiles(t *testing.T) {
	// world.lua runs first regardless of name order.
	dir := writeModule(t, map[string]string{
		"world.lua": `Game { title = "Split World", start = "cave" }`,
		"areas.lua": `Location "cave" { name = "A Cave", description = "Dark and damp." }`,
	})

	w, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if w.Title != "Split World" {
		t.Errorf("Title = %q", w.Title)
	}
	if _, ok := w.Locations["cave"]; !ok {
		t.Error("location from second file missing")
	}
}

func TestLoad_NoLuaFiles(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for empty module directory")
	}
}

func TestLoad_LuaError(t *testing.T) {
	dir := writeModule(t, map[string]string{"world.lua": `this is not lua`})
	if _, err := Load(dir); err == nil {
		t.Fatal("expected error for invalid Lua")
	}
}

func TestLoad_SandboxBlocksIO(t *testing.T) {
	dir := writeModule(t, map[string]string{"world.lua": `
Game { title = "Escape Attempt", start = "hall" }
Location "hall" { name = "Hall", description = "A hall." }
dofile("/etc/passwd")
`})
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected sandboxed dofile to fail")
	}
}

func TestLoad_UnknownDirection(t *testing.T) {
	dir := writeModule(t, map[string]string{"world.lua": `
Game { title = "Bad Exits", start = "hall" }
Location "hall" { name = "Hall", description = "A hall.", exits = { sideways = "hall" } }
`})
	_, err := Load(dir)
	if err == nil || !strings.Contains(err.Error(), "unknown direction") {
		t.Fatalf("expected unknown direction error, got %v", err)
	}
}

func TestLoad_JSONModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.json")
	content := `{
  "title": "JSON World",
  "player": {"location": "den", "max_inventory": 10, "health": 100, "max_health": 100},
  "locations": {"den": {"id": "den", "name": "The Den", "description": "Cozy."}}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if w.Title != "JSON World" {
		t.Errorf("Title = %q", w.Title)
	}
	// Normalization must leave no nil maps behind.
	if w.Player.QuestFlags == nil || w.Player.Visited == nil {
		t.Error("player maps not normalized")
	}
	if w.Locations["den"].Exits == nil {
		t.Error("location exits not normalized")
	}
}
