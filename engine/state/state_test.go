package state

import (
	"testing"

	"github.com/nathoo/thornhold/types"
	"github.com/nathoo/thornhold/world"
)

func TestInventoryHelpers(t *testing.T) {
	w := world.New(1)
	w.Player.Inventory = []string{"rusty_lantern", "healing_potion"}
	w.Player.MaxInventory = 3

	if !HasItem(w, "rusty_lantern") {
		t.Error("HasItem should find carried item")
	}
	if HasItem(w, "iron_sword") {
		t.Error("HasItem found item not carried")
	}
	if InventoryFull(w) {
		t.Error("inventory not full at 2/3")
	}

	w.Player.Inventory = append(w.Player.Inventory, "iron_sword")
	if !InventoryFull(w) {
		t.Error("inventory full at 3/3")
	}

	if !RemoveFromInventory(w, "healing_potion") {
		t.Error("RemoveFromInventory should succeed")
	}
	if HasItem(w, "healing_potion") {
		t.Error("item still present after removal")
	}
	if RemoveFromInventory(w, "healing_potion") {
		t.Error("second removal should fail")
	}
}

func TestStringHelpers(t *testing.T) {
	list := []string{"a", "b", "c"}
	if !ContainsString(list, "b") {
		t.Error("ContainsString(b)")
	}
	if ContainsString(list, "z") {
		t.Error("ContainsString(z)")
	}
	got := RemoveString(list, "b")
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Errorf("RemoveString = %v", got)
	}
	if got := RemoveString([]string{"a"}, "z"); len(got) != 1 {
		t.Errorf("RemoveString of absent = %v", got)
	}
}

func TestDisplayNames(t *testing.T) {
	w := world.New(1)

	if got := ItemName(w, "rusty_lantern"); got != "Rusty Lantern" {
		t.Errorf("ItemName = %q", got)
	}
	if got := ItemName(w, "no_such_item"); got != "no_such_item" {
		t.Errorf("ItemName fallback = %q", got)
	}
	if got := LocationName(w, "courtyard"); got != "The Courtyard" {
		t.Errorf("LocationName = %q", got)
	}
	if got := NpcName(w, "merchant_ghost"); got != "The Dead Merchant" {
		t.Errorf("NpcName = %q", got)
	}
}

func TestEffectiveStats(t *testing.T) {
	w := world.New(1)
	w.Player.Attack = 5
	w.Player.Defense = 3
	w.Items["test_sword"] = &types.Item{
		ID: "test_sword", Name: "Test Sword", Type: types.ItemWeapon,
		Modifier: &types.Modifier{Attack: 4},
	}
	w.Items["test_shield"] = &types.Item{
		ID: "test_shield", Name: "Test Shield", Type: types.ItemArmor,
		Modifier: &types.Modifier{Defense: 2},
	}

	if got := EffectiveAttack(w); got != 5 {
		t.Errorf("bare attack = %d", got)
	}

	w.Player.EquippedWeapon = "test_sword"
	w.Player.EquippedArmor = "test_shield"
	if got := EffectiveAttack(w); got != 9 {
		t.Errorf("equipped attack = %d, want 9", got)
	}
	if got := EffectiveDefense(w); got != 5 {
		t.Errorf("equipped defense = %d, want 5", got)
	}

	w.Player.StatusEffects = []types.StatusEffect{
		{Name: "blessed", TurnsLeft: 3, AttackMod: 2, DefenseMod: -1},
	}
	if got := EffectiveAttack(w); got != 11 {
		t.Errorf("attack with status = %d, want 11", got)
	}
	if got := EffectiveDefense(w); got != 4 {
		t.Errorf("defense with status = %d, want 4", got)
	}
}

func TestAddJournal_Idempotent(t *testing.T) {
	w := world.New(1)
	entry := types.JournalEntry{ID: "loc_courtyard", Category: types.JournalLocation, Title: "The Courtyard"}

	if !AddJournal(w, entry) {
		t.Error("first add should report true")
	}
	if AddJournal(w, entry) {
		t.Error("duplicate add should report false")
	}
	if len(w.Journal) != 1 {
		t.Errorf("journal entries = %d, want 1", len(w.Journal))
	}
}

func TestRemember_Bounded(t *testing.T) {
	npc := &types.Npc{ID: "ghost", Name: "Ghost"}
	for i := 0; i < MaxMemory+5; i++ {
		Remember(npc, i, "talked")
	}
	if len(npc.Memory) != MaxMemory {
		t.Fatalf("memory = %d, want %d", len(npc.Memory), MaxMemory)
	}
	// Oldest entries evicted first.
	if npc.Memory[0].Turn != 5 {
		t.Errorf("oldest kept turn = %d, want 5", npc.Memory[0].Turn)
	}
}

func TestLogBlow_Bounded(t *testing.T) {
	w := world.New(1)
	for i := 0; i < MaxCombatLog+10; i++ {
		LogBlow(w, types.CombatLogEntry{Turn: i, Damage: 1})
	}
	if len(w.CombatLog) != MaxCombatLog {
		t.Fatalf("combat log = %d, want %d", len(w.CombatLog), MaxCombatLog)
	}
	if w.CombatLog[0].Turn != 10 {
		t.Errorf("oldest kept turn = %d, want 10", w.CombatLog[0].Turn)
	}
}

func TestLiveHostile(t *testing.T) {
	w := world.New(1)
	barracks := w.Locations["barracks"]

	if got := LiveHostile(w, barracks); got != "skeletal_guard" {
		t.Errorf("LiveHostile = %q", got)
	}

	w.Npcs["skeletal_guard"].DialogueState = types.StateDead
	if got := LiveHostile(w, barracks); got != "" {
		t.Errorf("LiveHostile after death = %q", got)
	}

	courtyard := w.Locations["courtyard"]
	if got := LiveHostile(w, courtyard); got != "" {
		t.Errorf("merchant ghost is not hostile, got %q", got)
	}
}
