package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nathoo/thornhold/types"
)

// describeLocation renders the standard room readout: header,
// description, items, live NPCs, sorted exits with lock markers.
func describeLocation(w *types.World, loc *types.Location, firstVisit bool) []string {
	var lines []string

	if firstVisit {
		lines = append(lines, fmt.Sprintf("--- %s ---", loc.Name), loc.Description)
	} else {
		lines = append(lines, fmt.Sprintf("--- %s (revisited) ---", loc.Name))
		if loc.RevisitText != "" {
			lines = append(lines, loc.RevisitText)
		} else {
			lines = append(lines, loc.Description)
		}
	}

	var itemNames []string
	for _, id := range loc.Items {
		if it, ok := w.Items[id]; ok {
			itemNames = append(itemNames, it.Name)
		}
	}
	if len(itemNames) > 0 {
		lines = append(lines, "You see: "+joinNames(itemNames))
	}

	var npcNames []string
	for _, id := range loc.Npcs {
		n, ok := w.Npcs[id]
		if !ok {
			continue
		}
		if n.DialogueState == types.StateDead {
			npcNames = append(npcNames, n.Name+" (dead)")
		} else {
			npcNames = append(npcNames, n.Name)
		}
	}
	if len(npcNames) > 0 {
		lines = append(lines, "Present: "+joinNames(npcNames))
	}

	var exits []string
	for dir := range loc.Exits {
		if _, locked := loc.LockedExits[dir]; locked {
			exits = append(exits, dir.Display()+" (locked)")
		} else {
			exits = append(exits, dir.Display())
		}
	}
	sort.Strings(exits)
	if len(exits) > 0 {
		lines = append(lines, "Exits: "+joinNames(exits))
	}

	return lines
}

func describeExamineRoom(loc *types.Location) []string {
	lines := []string{fmt.Sprintf("--- %s (detailed) ---", loc.Name)}
	if loc.ExamineDetails != "" {
		return append(lines, loc.ExamineDetails)
	}
	return append(lines, loc.Description)
}

func describeExamineItem(item *types.Item) []string {
	lines := []string{fmt.Sprintf("--- %s ---", item.Name), item.Description}

	if m := item.Modifier; m != nil {
		var stats []string
		if m.Attack != 0 {
			stats = append(stats, fmt.Sprintf("Attack %+d", m.Attack))
		}
		if m.Defense != 0 {
			stats = append(stats, fmt.Sprintf("Defense %+d", m.Defense))
		}
		if m.Health != 0 {
			stats = append(stats, fmt.Sprintf("Health %+d", m.Health))
		}
		if len(stats) > 0 {
			lines = append(lines, "Stats: "+joinNames(stats))
		}
	}
	if item.Lore != "" {
		lines = append(lines, "Lore: "+item.Lore)
	}
	return lines
}

func describeExamineNpc(npc *types.Npc) []string {
	lines := []string{fmt.Sprintf("--- %s ---", npc.Name)}
	if npc.ExamineText != "" {
		lines = append(lines, npc.ExamineText)
	} else {
		lines = append(lines, npc.Description)
	}
	if npc.DialogueState == types.StateDead {
		lines = append(lines, "Dead.")
	} else {
		lines = append(lines, fmt.Sprintf("Health: %d/%d", npc.Health, npc.MaxHealth))
	}
	return lines
}

func describeInventory(w *types.World) []string {
	lines := []string{fmt.Sprintf("--- Inventory (%d/%d) ---", len(w.Player.Inventory), w.Player.MaxInventory)}

	if len(w.Player.Inventory) == 0 {
		return append(lines, "Your inventory is empty.")
	}
	for _, id := range w.Player.Inventory {
		it, ok := w.Items[id]
		if !ok {
			continue
		}
		desc := it.Name
		if w.Player.EquippedWeapon == id {
			desc += " (wielded)"
		} else if w.Player.EquippedArmor == id {
			desc += " (worn)"
		}
		lines = append(lines, "  - "+desc)
	}
	return lines
}

func describeStats(w *types.World) []string {
	var weaponBonus, armorBonus int
	if it, ok := w.Items[w.Player.EquippedWeapon]; ok && it.Modifier != nil {
		weaponBonus = it.Modifier.Attack
	}
	if it, ok := w.Items[w.Player.EquippedArmor]; ok && it.Modifier != nil {
		armorBonus = it.Modifier.Defense
	}

	return []string{
		fmt.Sprintf("HP: %d/%d", w.Player.Health, w.Player.MaxHealth),
		fmt.Sprintf("Attack: %d (+%d)", w.Player.Attack+weaponBonus, weaponBonus),
		fmt.Sprintf("Defense: %d (+%d)", w.Player.Defense+armorBonus, armorBonus),
		fmt.Sprintf("Turns: %d", w.Player.TurnsElapsed),
	}
}

// describeMap lists visited rooms alphabetically with their exits and a
// marker on the player's position.
func describeMap(w *types.World) []string {
	lines := []string{"--- Map ---"}

	ids := make([]string, 0, len(w.Player.Visited))
	for id, seen := range w.Player.Visited {
		if seen {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	for _, id := range ids {
		loc, ok := w.Locations[id]
		if !ok {
			continue
		}
		marker := ""
		if w.Player.Location == id {
			marker = " <-- You are here"
		}
		var exits []string
		for dir := range loc.Exits {
			exits = append(exits, dir.Display())
		}
		sort.Strings(exits)
		lines = append(lines, fmt.Sprintf("  %s (exits: %s)%s", loc.Name, joinNames(exits), marker))
	}
	return lines
}

func describeQuestLog(w *types.World) []string {
	lines := []string{"--- Quest Log ---"}

	ids := make([]string, 0, len(w.Quests))
	for id := range w.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var active, completed []*types.Quest
	for _, id := range ids {
		q := w.Quests[id]
		switch {
		case q.Completed:
			completed = append(completed, q)
		case q.Active:
			active = append(active, q)
		}
	}

	if len(active) == 0 && len(completed) == 0 {
		return append(lines, "No quests yet.")
	}
	if len(active) > 0 {
		lines = append(lines, "Active:")
		for _, q := range active {
			lines = append(lines, fmt.Sprintf("  - %s: %s", q.Name, q.Description))
		}
	}
	if len(completed) > 0 {
		lines = append(lines, "Completed:")
		for _, q := range completed {
			lines = append(lines, fmt.Sprintf("  - %s (done)", q.Name))
		}
	}
	return lines
}

func describeJournal(w *types.World) []string {
	lines := []string{"--- Codex ---"}
	if len(w.Journal) == 0 {
		return append(lines, "No entries yet. Explore and examine to discover lore.")
	}

	categories := []struct {
		cat   types.JournalCategory
		label string
	}{
		{types.JournalLocation, "Locations"},
		{types.JournalBestiary, "Bestiary"},
		{types.JournalItem, "Items"},
		{types.JournalLore, "Lore"},
	}
	for _, c := range categories {
		var entries []types.JournalEntry
		for _, e := range w.Journal {
			if e.Category == c.cat {
				entries = append(entries, e)
			}
		}
		if len(entries) == 0 {
			continue
		}
		lines = append(lines, "\n"+c.label+":")
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("  - %s: %s", e.Title, e.Content))
		}
	}
	return lines
}

func describeHelp(mode types.Mode) []string {
	lines := []string{"--- Help ---"}

	switch mode.Kind {
	case types.ModeInCombat:
		return append(lines,
			"Combat commands:",
			"  attack        - Attack the enemy",
			"  use <item>    - Use an item",
			"  flee          - Try to escape",
			"  inventory     - Check your items",
		)
	case types.ModeInDialogue:
		return append(lines,
			"Dialogue mode:",
			"  Type your response to speak",
			"  leave/goodbye - End conversation",
			"  inventory     - Check your items",
		)
	}
	return append(lines,
		"Movement:  go <direction>, north/south/east/west/up/down",
		"Look:      look, examine <target>",
		"Items:     take/drop/use/equip/unequip <item>",
		"Interact:  talk to <npc>, attack <target>, craft <item> with <item>",
		"Info:      inventory, map, stats, quests, codex, help",
		"Game:      save [name], load [name], retry (retell the last scene)",
	)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
