// Package world holds the built-in Thornhold campaign: the hand-crafted
// locations, items, characters, quests, events, and recipes a new game
// starts from.
package world

import "github.com/nathoo/thornhold/types"

// Title is the campaign name shown on the title line.
const Title = "The Depths of Thornhold"

// New assembles a fresh world seeded for the given random stream.
func New(seed int64) *types.World {
	return &types.World{
		Title:     Title,
		Player:    newPlayer(),
		Locations: buildLocations(),
		Items:     buildItems(),
		Npcs:      buildNpcs(),
		Quests:    buildQuests(),
		Events:    buildEvents(),
		Recipes:   buildRecipes(),
		Mode:      types.Exploring(),
		RNGSeed:   seed,
	}
}

func newPlayer() types.Player {
	return types.Player{
		Location:     "courtyard",
		Inventory:    []string{},
		MaxInventory: 10,
		Health:       100,
		MaxHealth:    100,
		Attack:       5,
		Defense:      3,
		QuestFlags:   map[string]bool{},
		Visited:      map[string]bool{"courtyard": true},
	}
}

func buildLocations() map[string]*types.Location {
	return map[string]*types.Location{
		"courtyard": {
			ID:          "courtyard",
			Name:        "The Courtyard",
			Description: "Crumbling stone walls surround a desolate courtyard. Weeds push through cracks in the flagstones. A cold wind carries whispers of those who once gathered here.",
			Items:       []string{"rusty_lantern", "merchant_journal"},
			Npcs:        []string{"merchant_ghost"},
			Exits: map[types.Direction]string{
				types.East:  "great_hall",
				types.South: "barracks",
			},
			LockedExits:    map[types.Direction]string{},
			Visited:        true,
			Mood:           types.MoodPeaceful,
			ExamineDetails: "The flagstones bear scorch marks from an ancient battle. Faded carvings on the walls depict merchants trading goods. A broken fountain stands in the center, its basin cracked and dry.",
			RevisitText:    "The courtyard is as bleak as before. The cold wind still whispers.",
		},
		"great_hall": {
			ID:          "great_hall",
			Name:        "The Great Hall",
			Description: "Once magnificent, the great hall now stands in shadow. Tattered banners hang from the vaulted ceiling. A massive fireplace dominates the north wall, cold and dark.",
			Items:       []string{"torn_tapestry"},
			Exits: map[types.Direction]string{
				types.West:  "courtyard",
				types.East:  "library",
				types.South: "kitchen",
				types.Up:    "tower_apex",
			},
			LockedExits: map[types.Direction]string{
				types.East: "library_key",
			},
			Mood:           types.MoodMysterious,
			ExamineDetails: "The banners bear the crest of House Thornhold, a tower wreathed in thorns. Claw marks gouge the stone floor near the fireplace. A faint draft comes from behind the eastern wall.",
			RevisitText:    "The great hall looms in familiar shadow. The cold fireplace watches like a dark eye.",
		},
		"tower_apex": {
			ID:          "tower_apex",
			Name:        "The Tower Apex",
			Description: "The highest point of Thornhold. Wind howls through broken windows. The view stretches endlessly over dark forests, distant mountains, and the ruins below.",
			Items:       []string{"old_spyglass"},
			Exits: map[types.Direction]string{
				types.Down: "great_hall",
			},
			LockedExits:    map[types.Direction]string{},
			Mood:           types.MoodTense,
			ExamineDetails: "From here you can see the entire ruin spread below. Scratches on the window frame suggest someone tried to climb in. A weathervane creaks overhead, pointing eternally north.",
		},
		"library": {
			ID:          "library",
			Name:        "The Library",
			Description: "Shelves of rotting books line the walls. The air is thick with dust and the smell of ancient parchment. Knowledge lingers here, waiting to be found.",
			Items:       []string{"sacred_scroll", "dusty_tome", "quill_pen"},
			Exits: map[types.Direction]string{
				types.West:  "great_hall",
				types.South: "chapel",
			},
			LockedExits:    map[types.Direction]string{},
			Mood:           types.MoodMysterious,
			ExamineDetails: "Many books have been deliberately torn apart. One shelf holds a collection of sealed scrolls. The dust on the floor shows no footprints. You are the first visitor in ages.",
			RevisitText:    "The library's dusty silence greets you once more.",
		},
		"barracks": {
			ID:          "barracks",
			Name:        "The Barracks",
			Description: "Rows of collapsed bunks fill this room. Rusted weapons hang on racks. Something moves in the shadows, bones scraping against stone.",
			Items:       []string{"iron_shield"},
			Npcs:        []string{"skeletal_guard"},
			Exits: map[types.Direction]string{
				types.North: "courtyard",
				types.East:  "kitchen",
				types.South: "armory",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodTense,
		},
		"kitchen": {
			ID:          "kitchen",
			Name:        "The Kitchen",
			Description: "A vast kitchen, long abandoned. Pots hang from hooks, thick with grime. Something rustles behind the overturned table. A pair of bright eyes watches you.",
			Items:       []string{"stale_bread", "health_potion"},
			Npcs:        []string{"gristle_rat"},
			Exits: map[types.Direction]string{
				types.North: "great_hall",
				types.West:  "barracks",
				types.East:  "chapel",
				types.South: "cellar_entrance",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodPeaceful,
		},
		"chapel": {
			ID:          "chapel",
			Name:        "The Chapel",
			Description: "Stained glass windows cast colored shadows across stone pews. An altar stands at the far end, still bearing offerings from ages past. A sense of peace lingers here.",
			Items:       []string{"silver_chalice"},
			Exits: map[types.Direction]string{
				types.North: "library",
				types.West:  "kitchen",
				types.South: "crypt_passage",
			},
			LockedExits: map[types.Direction]string{
				types.South: "chapel_seal",
			},
			Mood:           types.MoodSacred,
			ExamineDetails: "The stained glass depicts the founding of Thornhold. The altar bears scratch marks, as if something tried to deface it. A faint warmth radiates from the stone.",
			RevisitText:    "The chapel's colored light washes over you again. The altar waits patiently.",
		},
		"armory": {
			ID:          "armory",
			Name:        "The Armory",
			Description: "Weapon racks and armor stands fill this room. Most are rusted beyond use, but a few pieces remain serviceable. The air smells of oil and old metal.",
			Items:       []string{"short_sword", "leather_armor"},
			Exits: map[types.Direction]string{
				types.North: "barracks",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodTense,
		},
		"cellar_entrance": {
			ID:          "cellar_entrance",
			Name:        "Cellar Entrance",
			Description: "Stone steps descend into darkness. The air grows cold and damp. Water drips somewhere below, echoing in the silence.",
			Items:       []string{"torch"},
			Exits: map[types.Direction]string{
				types.North: "kitchen",
				types.Down:  "wine_cellar",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodDark,
		},
		"wine_cellar": {
			ID:          "wine_cellar",
			Name:        "The Wine Cellar",
			Description: "Rows of dusty barrels and empty bottles line the walls. The smell of old wine mixes with damp earth. A narrow passage leads further down.",
			Items:       []string{"empty_bottle", "cellar_cheese"},
			Exits: map[types.Direction]string{
				types.Up:   "cellar_entrance",
				types.Down: "crypt_passage",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodDark,
		},
		"crypt_passage": {
			ID:          "crypt_passage",
			Name:        "The Crypt Passage",
			Description: "A narrow corridor of ancient stone. Bones protrude from the walls. The temperature drops with each step. An unnatural cold seeps into your very bones.",
			Items:       []string{"bone_fragment"},
			Exits: map[types.Direction]string{
				types.Up:    "wine_cellar",
				types.Down:  "deep_chamber",
				types.North: "chapel",
			},
			LockedExits: map[types.Direction]string{},
			Mood:        types.MoodDark,
		},
		"deep_chamber": {
			ID:          "deep_chamber",
			Name:        "The Deep Chamber",
			Description: "A vast underground chamber, lit by phosphorescent fungi. Ancient runes cover the walls. The air thrums with a power both ancient and terrible.",
			Items:       []string{"ancient_amulet"},
			Exits: map[types.Direction]string{
				types.Up:   "crypt_passage",
				types.Down: "final_sanctum",
			},
			LockedExits:    map[types.Direction]string{},
			Mood:           types.MoodDangerous,
			ExamineDetails: "The runes on the walls shift when you look away. The fungi pulse in a rhythm like a heartbeat. Chains embedded in the far wall have been snapped, links scattered across the floor.",
		},
		"final_sanctum": {
			ID:          "final_sanctum",
			Name:        "The Final Sanctum",
			Description: "The heart of Thornhold. A circular chamber pulsing with eldritch light. At its center stands a figure, ancient and terrible, bound in chains of fading magic.",
			Items:       []string{"mysterious_orb"},
			Npcs:        []string{"the_forgotten_one"},
			Exits: map[types.Direction]string{
				types.Up: "deep_chamber",
			},
			LockedExits:    map[types.Direction]string{},
			Mood:           types.MoodDangerous,
			ExamineDetails: "The chains binding the figure are inscribed with names, perhaps those who placed them. The eldritch light emanates from a crack in the floor. The air tastes of copper and ozone.",
		},
		"hidden_vault": {
			ID:          "hidden_vault",
			Name:        "The Hidden Vault",
			Description: "A secret chamber behind the walls. Dust motes dance in a shaft of light from a crack in the ceiling. Ancient treasures and forgotten relics line the shelves.",
			Items:       []string{"vault_amulet"},
			Exits: map[types.Direction]string{
				types.Up: "great_hall",
			},
			LockedExits:    map[types.Direction]string{},
			Mood:           types.MoodMysterious,
			ExamineDetails: "The shelves hold trinkets from across the ages. A child's toy, a soldier's medal, a lover's locket. Each tells a story of Thornhold's past.",
			RevisitText:    "The hidden vault is as you left it. The treasures gleam in the dim light.",
		},
	}
}
