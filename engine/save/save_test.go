package save

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nathoo/thornhold/world"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	w := world.New(42)
	w.Player.Inventory = []string{"rusty_lantern"}
	w.Player.TurnsElapsed = 17
	w.Player.QuestFlags["met_merchant"] = true
	w.RNGPosition = 9

	data, err := Save(w)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	sd, err := Load(data)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if sd.Version != Version {
		t.Errorf("version = %q", sd.Version)
	}
	if sd.Game != w.Title {
		t.Errorf("game = %q, want %q", sd.Game, w.Title)
	}
	if sd.Turn != 17 {
		t.Errorf("turn = %d", sd.Turn)
	}

	got := sd.World
	if got.Player.TurnsElapsed != 17 {
		t.Errorf("turns = %d", got.Player.TurnsElapsed)
	}
	if len(got.Player.Inventory) != 1 || got.Player.Inventory[0] != "rusty_lantern" {
		t.Errorf("inventory = %v", got.Player.Inventory)
	}
	if !got.Player.QuestFlags["met_merchant"] {
		t.Error("quest flag lost")
	}
	if got.RNGSeed != 42 || got.RNGPosition != 9 {
		t.Errorf("rng = seed %d pos %d", got.RNGSeed, got.RNGPosition)
	}
	if len(got.Locations) != len(w.Locations) {
		t.Errorf("locations = %d, want %d", len(got.Locations), len(w.Locations))
	}
}

func TestLoad_BadJSON(t *testing.T) {
	if _, err := Load([]byte("{not json")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_NormalizesNilMaps(t *testing.T) {
	sd, err := Load([]byte(`{"version":"1","world":{"title":"Bare","player":{"location":"x"},"locations":{"x":{"id":"x","name":"X"}}}}`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	w := sd.World
	if w.Items == nil || w.Npcs == nil || w.Quests == nil {
		t.Error("entity maps still nil")
	}
	if w.Player.Inventory == nil || w.Player.QuestFlags == nil || w.Player.Visited == nil {
		t.Error("player collections still nil")
	}
	if w.CommandLog == nil {
		t.Error("command log still nil")
	}
	loc := w.Locations["x"]
	if loc.Exits == nil || loc.LockedExits == nil {
		t.Error("location exit maps still nil")
	}
}

func TestSlots_WriteReadList(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "saves")
	w := world.New(3)
	w.Player.TurnsElapsed = 4

	data, err := Save(w)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := WriteSlot(dir, "alpha", data); err != nil {
		t.Fatalf("WriteSlot: %v", err)
	}
	if err := WriteSlot(dir, "beta", data); err != nil {
		t.Fatalf("WriteSlot: %v", err)
	}

	sd, err := ReadSlot(dir, "alpha")
	if err != nil {
		t.Fatalf("ReadSlot: %v", err)
	}
	if sd.Turn != 4 {
		t.Errorf("turn = %d", sd.Turn)
	}

	slots := ListSlots(dir)
	if len(slots) != 2 || slots[0] != "alpha" || slots[1] != "beta" {
		t.Errorf("slots = %v", slots)
	}
}

func TestSlots_ReadMissing(t *testing.T) {
	if _, err := ReadSlot(t.TempDir(), "nope"); err == nil {
		t.Error("expected error for missing slot")
	}
}

func TestSlots_ListEmptyOrMissingDir(t *testing.T) {
	if got := ListSlots(t.TempDir()); len(got) != 0 {
		t.Errorf("empty dir slots = %v", got)
	}
	if got := ListSlots(filepath.Join(t.TempDir(), "absent")); len(got) != 0 {
		t.Errorf("missing dir slots = %v", got)
	}
}

func TestSlots_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteSlot(dir, "game", []byte("{}")); err != nil {
		t.Fatal(err)
	}
	slots := ListSlots(dir)
	if len(slots) != 1 || slots[0] != "game" {
		t.Errorf("slots = %v", slots)
	}
}
