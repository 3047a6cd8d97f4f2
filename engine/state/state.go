// Package state provides lookup and mutation helpers over the world
// model shared by every engine subsystem.
package state

import "github.com/nathoo/thornhold/types"

const (
	// MaxMemory bounds an NPC's memory log.
	MaxMemory = 20
	// MaxCombatLog bounds the combat log.
	MaxCombatLog = 100
)

// CurrentLocation returns the player's location, or nil if the world is
// inconsistent (should not happen after validation).
func CurrentLocation(w *types.World) *types.Location {
	return w.Locations[w.Player.Location]
}

// HasItem reports whether the player carries the given item.
func HasItem(w *types.World, itemID string) bool {
	for _, id := range w.Player.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// InventoryFull reports whether another item would exceed capacity.
func InventoryFull(w *types.World) bool {
	return len(w.Player.Inventory) >= w.Player.MaxInventory
}

// RemoveFromInventory removes the first occurrence of itemID.
// Returns false if the player does not carry it.
func RemoveFromInventory(w *types.World, itemID string) bool {
	for i, id := range w.Player.Inventory {
		if id == itemID {
			w.Player.Inventory = append(w.Player.Inventory[:i], w.Player.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveString removes the first occurrence of s from list.
func RemoveString(list []string, s string) []string {
	for i, v := range list {
		if v == s {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// ContainsString reports whether list contains s.
func ContainsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ItemName returns the display name for an item id, falling back to the
// id itself for unknown items.
func ItemName(w *types.World, itemID string) string {
	if it, ok := w.Items[itemID]; ok {
		return it.Name
	}
	return itemID
}

// LocationName returns the display name for a location id.
func LocationName(w *types.World, locID string) string {
	if l, ok := w.Locations[locID]; ok {
		return l.Name
	}
	return locID
}

// NpcName returns the display name for an NPC id.
func NpcName(w *types.World, npcID string) string {
	if n, ok := w.Npcs[npcID]; ok {
		return n.Name
	}
	return npcID
}

// EffectiveAttack is the player's attack including equipment and status
// modifiers.
func EffectiveAttack(w *types.World) int {
	atk := w.Player.Attack
	if w.Player.EquippedWeapon != "" {
		if it, ok := w.Items[w.Player.EquippedWeapon]; ok && it.Modifier != nil {
			atk += it.Modifier.Attack
		}
	}
	for _, se := range w.Player.StatusEffects {
		atk += se.AttackMod
	}
	return atk
}

// EffectiveDefense is the player's defense including equipment and
// status modifiers.
func EffectiveDefense(w *types.World) int {
	def := w.Player.Defense
	if w.Player.EquippedArmor != "" {
		if it, ok := w.Items[w.Player.EquippedArmor]; ok && it.Modifier != nil {
			def += it.Modifier.Defense
		}
	}
	for _, se := range w.Player.StatusEffects {
		def += se.DefenseMod
	}
	return def
}

// AddJournal appends a codex entry unless one with the same ID already
// exists. Returns true if the entry was added.
func AddJournal(w *types.World, entry types.JournalEntry) bool {
	for _, e := range w.Journal {
		if e.ID == entry.ID {
			return false
		}
	}
	w.Journal = append(w.Journal, entry)
	return true
}

// Remember appends an event to an NPC's memory log, evicting the oldest
// entry past the cap.
func Remember(npc *types.Npc, turn int, event string) {
	npc.Memory = append(npc.Memory, types.NpcMemory{Turn: turn, Event: event})
	if len(npc.Memory) > MaxMemory {
		npc.Memory = npc.Memory[len(npc.Memory)-MaxMemory:]
	}
}

// LogBlow appends a combat log entry, evicting the oldest past the cap.
func LogBlow(w *types.World, entry types.CombatLogEntry) {
	w.CombatLog = append(w.CombatLog, entry)
	if len(w.CombatLog) > MaxCombatLog {
		w.CombatLog = w.CombatLog[len(w.CombatLog)-MaxCombatLog:]
	}
}

// LiveHostile returns the id of a living hostile NPC present in the
// location, or "" if there is none.
func LiveHostile(w *types.World, loc *types.Location) string {
	for _, id := range loc.Npcs {
		if n, ok := w.Npcs[id]; ok && n.Hostile && n.DialogueState != types.StateDead {
			return id
		}
	}
	return ""
}

// GameOver reports whether the world is in its terminal mode.
func GameOver(w *types.World) bool {
	return w.Mode.Kind == types.ModeGameOver
}
