// Package dungeon generates the procedural chain of rooms hanging off
// the hand-built map.
package dungeon

import (
	"fmt"

	"github.com/nathoo/thornhold/types"
)

// sentinelRoomID marks a world that already carries a dungeon;
// generation is idempotent so loaded saves are never regrown.
const sentinelRoomID = "dungeon_d0_r0"

// Config controls dungeon generation.
type Config struct {
	EntryLocation  string
	EntryDirection types.Direction
	Depth          int
	DifficultyBase int
}

type roomTemplate struct {
	name        string
	description string
	mood        types.Mood
}

var roomTemplates = []roomTemplate{
	{
		name:        "Narrow Tunnel",
		description: "A cramped tunnel hewn from rough stone. Water seeps through cracks in the walls.",
		mood:        types.MoodDark,
	},
	{
		name:        "Musty Chamber",
		description: "A large chamber with a low ceiling. Mushrooms grow in clusters along the walls.",
		mood:        types.MoodMysterious,
	},
	{
		name:        "Collapsed Hall",
		description: "Once a grand hall, now half-buried in rubble. Dust motes dance in shafts of dim light.",
		mood:        types.MoodTense,
	},
	{
		name:        "Flooded Passage",
		description: "Ankle-deep water fills this passage. Something ripples beneath the surface.",
		mood:        types.MoodDark,
	},
	{
		name:        "Bone Gallery",
		description: "Walls lined with ancient bones arranged in deliberate patterns. A dark shrine stands at one end.",
		mood:        types.MoodDangerous,
	},
	{
		name:        "Crystal Cavern",
		description: "Crystalline formations jut from every surface, casting prismatic reflections.",
		mood:        types.MoodMysterious,
	},
	{
		name:        "Ancient Forge",
		description: "A dwarven forge, cold and silent. Tools still lie where their owners left them.",
		mood:        types.MoodTense,
	},
}

// Generate appends a linear dungeon of cfg.Depth rooms (minimum 2) below
// cfg.EntryLocation. Forward exits alternate Down, South, Down, South; a
// guard waits at the midpoint and the keeper in the final room. No-op if
// the world already has a dungeon.
func Generate(cfg Config, w *types.World) {
	if _, ok := w.Locations[sentinelRoomID]; ok {
		return
	}

	depth := cfg.Depth
	if depth < 2 {
		depth = 2
	}

	prevRoomID := cfg.EntryLocation
	prevDirection := cfg.EntryDirection

	for d := 0; d < depth; d++ {
		roomID := fmt.Sprintf("dungeon_d%d_r%d", d, d)
		isFinal := d == depth-1
		template := roomTemplates[d%len(roomTemplates)]

		name := fmt.Sprintf("%s (Depth %d)", template.name, d+1)
		description := template.description
		mood := template.mood
		if isFinal {
			name = "The Dungeon Heart"
			description = "The deepest point of the dungeon. An oppressive aura permeates the air. " +
				"A massive creature guards a chest overflowing with treasures."
			mood = types.MoodDangerous
		}

		nextDirection := types.Down
		if d%2 != 0 {
			nextDirection = types.South
		}

		exits := map[types.Direction]string{
			prevDirection.Opposite(): prevRoomID,
		}
		if !isFinal {
			exits[nextDirection] = fmt.Sprintf("dungeon_d%d_r%d", d+1, d+1)
		}

		var items []string
		switch {
		case isFinal:
			items = []string{"dungeon_treasure"}
		case d == 1:
			items = []string{"dungeon_health_potion"}
		}

		var npcs []string
		switch {
		case isFinal:
			npcs = []string{"dungeon_boss"}
		case d == depth/2:
			npcs = []string{fmt.Sprintf("dungeon_guard_%d", d)}
		}

		w.Locations[roomID] = &types.Location{
			ID:          roomID,
			Name:        name,
			Description: description,
			Items:       items,
			Npcs:        npcs,
			Exits:       exits,
			LockedExits: map[types.Direction]string{},
			Mood:        mood,
		}

		if !isFinal && d == depth/2 {
			guardID := fmt.Sprintf("dungeon_guard_%d", d)
			guardHealth := 15 + d*5
			w.Npcs[guardID] = &types.Npc{
				ID:              guardID,
				Name:            "Dungeon Lurker",
				Description:     "A twisted creature adapted to the darkness. Its pale eyes gleam with hunger.",
				PersonalitySeed: "Hostile. Attacks on sight. Protects its territory.",
				DialogueState:   types.StateHostile,
				Hostile:         true,
				Health:          guardHealth,
				MaxHealth:       guardHealth,
				Attack:          cfg.DifficultyBase + d*2,
				Defense:         cfg.DifficultyBase / 2,
			}
		}

		if prev, ok := w.Locations[prevRoomID]; ok {
			prev.Exits[prevDirection] = roomID
		}

		prevRoomID = roomID
		prevDirection = nextDirection
	}

	bossHealth := 30 + cfg.DifficultyBase*2
	w.Npcs["dungeon_boss"] = &types.Npc{
		ID:   "dungeon_boss",
		Name: "The Dungeon Keeper",
		Description: "A massive, armored beast with eyes like molten gold. " +
			"It guards its hoard with primal fury.",
		PersonalitySeed: "Territorial and primal. Roars before attacking. Ancient and powerful.",
		DialogueState:   types.StateHostile,
		Hostile:         true,
		Health:          bossHealth,
		MaxHealth:       bossHealth,
		Attack:          cfg.DifficultyBase + 8,
		Defense:         cfg.DifficultyBase,
		Items:           []string{"dungeon_key_shard"},
		ExamineText: "Scars criss-cross its thick hide. A crown of twisted metal sits upon its head. " +
			"Perhaps it was once something more.",
	}

	w.Items["dungeon_treasure"] = &types.Item{
		ID:          "dungeon_treasure",
		Name:        "Dungeon Treasure",
		Description: "A chest of ancient gold coins, gemstones, and a mysterious crystal shard.",
		Type:        types.ItemQuest,
		Modifier:    &types.Modifier{Attack: 2, Defense: 2},
		Lore:        "The accumulated wealth of centuries, guarded by a creature that long forgot why it hoards.",
	}
	w.Items["dungeon_health_potion"] = &types.Item{
		ID:          "dungeon_health_potion",
		Name:        "Glowing Elixir",
		Description: "A vial of luminescent liquid found deep underground. It radiates warmth.",
		Type:        types.ItemConsumable,
		Modifier:    &types.Modifier{Health: 25},
		Usable:      true,
		Consumable:  true,
	}
	w.Items["dungeon_key_shard"] = &types.Item{
		ID:          "dungeon_key_shard",
		Name:        "Key Shard",
		Description: "A fragment of an ancient key. It hums with residual magic.",
		Type:        types.ItemMisc,
		Lore: "Part of the original key to Thornhold's deepest vault. " +
			"Whoever carried it was consumed by what they guarded.",
	}
}
