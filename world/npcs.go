package world

import "github.com/nathoo/thornhold/types"

func buildNpcs() map[string]*types.Npc {
	return map[string]*types.Npc{
		"merchant_ghost": {
			ID:              "merchant_ghost",
			Name:            "The Dead Merchant",
			Description:     "A translucent figure in merchant's robes. His eyes hold centuries of sorrow. He wrings spectral hands, unable to find peace.",
			PersonalitySeed: "Melancholic and formal. Speaks in old-fashioned manner. Desperately wants his journal delivered to the Chapel altar.",
			DialogueState:   types.StateGreeting,
			Health:          1,
			MaxHealth:       1,
			QuestGiver:      "merchants_unfinished_business",
			ExamineText:     "His robes bear the insignia of the Thornhold Merchant Guild. A heavy ledger hangs from a spectral chain at his belt. His expression carries centuries of regret.",
		},
		"gristle_rat": {
			ID:              "gristle_rat",
			Name:            "Gristle",
			Description:     "An unusually large rat with intelligent eyes. It chatters and squeaks, somehow making itself understood. It seems desperate for something.",
			PersonalitySeed: "Nervous and helpful. Obsessed with cheese. Speaks in short, excited sentences. Knows secrets about the cellar.",
			DialogueState:   types.StateGreeting,
			Health:          5,
			MaxHealth:       5,
			Attack:          1,
			QuestGiver:      "rats_request",
		},
		"skeletal_guard": {
			ID:              "skeletal_guard",
			Name:            "Skeletal Guard",
			Description:     "An animated skeleton in rusted armor. It grips a notched sword and stands vigil over the barracks, as it has for centuries.",
			PersonalitySeed: "Silent and hostile. Attacks on sight. Bound by ancient duty.",
			DialogueState:   types.StateHostile,
			Hostile:         true,
			Health:          25,
			MaxHealth:       25,
			Attack:          7,
			Defense:         4,
			Items:           []string{"library_key"},
		},
		"the_warden": {
			ID:              "the_warden",
			Name:            "The Warden",
			Description:     "A massive, hooded figure wreathed in shadow. Eyes like dying embers peer from beneath the hood. It radiates menace and ancient purpose.",
			PersonalitySeed: "Menacing and philosophical. Questions why you trespass. Offers cryptic warnings about what lies below.",
			DialogueState:   types.StateHostile,
			Hostile:         true,
			Health:          40,
			MaxHealth:       40,
			Attack:          10,
			Defense:         6,
			Items:           []string{"rusty_dagger"},
		},
		"the_forgotten_one": {
			ID:              "the_forgotten_one",
			Name:            "The Forgotten One",
			Description:     "An ancient being of terrible power, bound in chains of fading magic. Its form shifts between human and something else entirely. It speaks with the weight of millennia.",
			PersonalitySeed: "Ancient, weary, and surprisingly reasonable. Offers negotiation if the player has proven worthy. Can be fought or reasoned with.",
			DialogueState:   types.StateGreeting,
			Health:          60,
			MaxHealth:       60,
			Attack:          15,
			Defense:         8,
			QuestGiver:      "the_final_confrontation",
			ExamineText:     "Its form flickers between shapes. Now a crowned king, now a beast of shadow, now something that has no name. The chains binding it glow faintly where they touch its shifting form.",
		},
	}
}

func buildQuests() map[string]*types.Quest {
	return map[string]*types.Quest{
		"the_lost_key": {
			ID:          "the_lost_key",
			Name:        "The Lost Key",
			Description: "The Skeletal Guard in the barracks holds a key. Defeat it to claim the Library Key.",
			Giver:       "skeletal_guard",
			Objective:   types.Objective{Kind: types.ObjectiveKillNpc, Target: "skeletal_guard"},
			Active:      true,
		},
		"rats_request": {
			ID:          "rats_request",
			Name:        "The Rat's Request",
			Description: "Gristle the rat desperately wants cheese from the Wine Cellar. Find the Aged Cellar Cheese and bring it back.",
			Giver:       "gristle_rat",
			Objective:   types.Objective{Kind: types.ObjectiveFetchItem, Target: "cellar_cheese"},
			Reward:      []string{"health_potion"},
		},
		"merchants_unfinished_business": {
			ID:          "merchants_unfinished_business",
			Name:        "The Merchant's Unfinished Business",
			Description: "The ghost merchant begs you to take his journal to the Chapel altar. Use the journal at the Chapel to complete his final wish.",
			Giver:       "merchant_ghost",
			Objective:   types.Objective{Kind: types.ObjectiveFetchItem, Target: "merchant_journal"},
		},
		"the_final_confrontation": {
			ID:          "the_final_confrontation",
			Name:        "The Final Confrontation",
			Description: "Face The Forgotten One in the Final Sanctum. You may fight or negotiate, but only the worthy may negotiate.",
			Giver:       "the_forgotten_one",
			Objective:   types.Objective{Kind: types.ObjectiveReachLocation, Target: "final_sanctum"},
		},
	}
}

func buildEvents() []*types.GameEvent {
	return []*types.GameEvent{
		// The crypt's cold bites on every entry.
		{
			ID:         "crypt_chill",
			LocationID: "crypt_passage",
			Trigger:    types.Trigger{Kind: types.OnEnter},
			Action:     types.EventAction{Kind: types.ActDamage, Amount: 5},
		},
		{
			ID:         "warden_awakens",
			LocationID: "deep_chamber",
			Trigger:    types.Trigger{Kind: types.OnEnter},
			Action:     types.EventAction{Kind: types.ActSpawnNpc, ID: "the_warden"},
			OneShot:    true,
		},
		{
			ID:         "amulet_touch",
			LocationID: "deep_chamber",
			Trigger:    types.Trigger{Kind: types.OnTake, ID: "ancient_amulet"},
			Action: types.EventAction{
				Kind: types.ActMessage,
				Text: "The amulet pulses with warmth as you touch it. You feel a connection to something ancient.",
			},
			OneShot: true,
		},
		// Reading the scroll at the altar opens the way to the crypt.
		{
			ID:         "scroll_unseals_crypt",
			LocationID: "chapel",
			Trigger:    types.Trigger{Kind: types.OnUse, ID: "sacred_scroll"},
			Action:     types.EventAction{Kind: types.ActUnlock, Direction: types.South},
			OneShot:    true,
		},
		{
			ID:         "scroll_unseals_crypt_msg",
			LocationID: "chapel",
			Trigger:    types.Trigger{Kind: types.OnUse, ID: "sacred_scroll"},
			Action: types.EventAction{
				Kind: types.ActMessage,
				Text: "The scroll dissolves into light. Ancient words echo through the chapel. The floor trembles as a hidden passage opens downward.",
			},
			OneShot: true,
		},
		{
			ID:         "journal_laid_to_rest",
			LocationID: "chapel",
			Trigger:    types.Trigger{Kind: types.OnUse, ID: "merchant_journal"},
			Action:     types.EventAction{Kind: types.ActSetQuestFlag, ID: "merchant_quest_complete"},
			OneShot:    true,
		},
		{
			ID:         "journal_laid_to_rest_msg",
			LocationID: "chapel",
			Trigger:    types.Trigger{Kind: types.OnUse, ID: "merchant_journal"},
			Action: types.EventAction{
				Kind: types.ActMessage,
				Text: "You place the journal on the altar. It glows briefly, then fades. Somewhere, a spirit finds peace. You feel blessed.",
			},
			OneShot: true,
		},
		{
			ID:         "armory_trap",
			LocationID: "armory",
			Trigger:    types.Trigger{Kind: types.OnEnter},
			Action:     types.EventAction{Kind: types.ActDamage, Amount: 10},
			OneShot:    true,
		},
		{
			ID:         "armory_trap_msg",
			LocationID: "armory",
			Trigger:    types.Trigger{Kind: types.OnEnter},
			Action: types.EventAction{
				Kind: types.ActMessage,
				Text: "A blade swings from the shadows! You barely dodge, but it catches your side.",
			},
			OneShot: true,
		},
	}
}

func buildRecipes() []*types.Recipe {
	return []*types.Recipe{
		{
			ID:     "makeshift_bandage",
			Inputs: []string{"torn_tapestry", "quill_pen"},
			Output: "makeshift_bandage",
			Hint:   "Something torn could bind a wound with the right tool...",
		},
		{
			ID:     "lantern_torch",
			Inputs: []string{"rusty_lantern", "torch"},
			Output: "lit_lantern",
			Hint:   "A lantern needs a flame...",
		},
		{
			ID:     "bone_talisman",
			Inputs: []string{"bone_fragment", "silver_chalice"},
			Output: "bone_talisman",
			Hint:   "Bone and silver have warding properties...",
		},
	}
}
