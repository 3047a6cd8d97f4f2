package loader

import (
	"fmt"
	"strings"

	"github.com/nathoo/thornhold/types"
)

// ValidationError collects every problem found in a module so authors
// can fix them in one pass.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validItemTypes = map[types.ItemType]bool{
	types.ItemWeapon: true, types.ItemArmor: true, types.ItemConsumable: true,
	types.ItemKey: true, types.ItemScroll: true, types.ItemQuest: true,
	types.ItemMisc: true,
}

var validMoods = map[types.Mood]bool{
	"": true, types.MoodPeaceful: true, types.MoodTense: true,
	types.MoodMysterious: true, types.MoodDark: true,
	types.MoodSacred: true, types.MoodDangerous: true,
}

var validObjectiveKinds = map[types.ObjectiveKind]bool{
	types.ObjectiveFetchItem:     true,
	types.ObjectiveKillNpc:       true,
	types.ObjectiveReachLocation: true,
}

var validActionKinds = map[types.EventActionKind]bool{
	types.ActDamage: true, types.ActSpawnNpc: true, types.ActUnlock: true,
	types.ActMessage: true, types.ActGiveItem: true, types.ActSetQuestFlag: true,
	types.ActApplyStatus: true, types.ActRemoveStatus: true,
	types.ActChangeDescription: true,
}

// Validate checks a world for referential integrity: the start location
// exists, every exit resolves, and every item, NPC, and quest reference
// points at a defined id. Locked-exit values name key items but are
// deliberately unchecked, so a door can be sealed with no matching key.
func Validate(w *types.World) error {
	ve := &ValidationError{}

	if w.Title == "" {
		ve.Errors = append(ve.Errors, "game title is required")
	}
	if len(w.Locations) == 0 {
		ve.Errors = append(ve.Errors, "at least one location is required")
	}
	if w.Player.Location == "" {
		ve.Errors = append(ve.Errors, "start location is required")
	} else if _, ok := w.Locations[w.Player.Location]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start location %q not found", w.Player.Location))
	}

	for id, loc := range w.Locations {
		for dir, target := range loc.Exits {
			if _, ok := w.Locations[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q exit %s points to undefined location %q", id, dir, target))
			}
		}
		for _, itemID := range loc.Items {
			if _, ok := w.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q references undefined item %q", id, itemID))
			}
		}
		for _, npcID := range loc.Npcs {
			if _, ok := w.Npcs[npcID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"location %q references undefined NPC %q", id, npcID))
			}
		}
		if !validMoods[loc.Mood] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"location %q has unknown mood %q", id, loc.Mood))
		}
	}

	for id, item := range w.Items {
		if !validItemTypes[item.Type] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"item %q has unknown type %q", id, item.Type))
		}
	}

	for id, npc := range w.Npcs {
		for _, itemID := range npc.Items {
			if _, ok := w.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"NPC %q drops undefined item %q", id, itemID))
			}
		}
		if npc.QuestGiver != "" {
			if _, ok := w.Quests[npc.QuestGiver]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"NPC %q gives undefined quest %q", id, npc.QuestGiver))
			}
		}
	}

	for id, quest := range w.Quests {
		if !validObjectiveKinds[quest.Objective.Kind] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"quest %q has unknown objective kind %q", id, quest.Objective.Kind))
			continue
		}
		target := quest.Objective.Target
		switch quest.Objective.Kind {
		case types.ObjectiveFetchItem:
			if _, ok := w.Items[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest %q objective targets undefined item %q", id, target))
			}
		case types.ObjectiveKillNpc:
			if _, ok := w.Npcs[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest %q objective targets undefined NPC %q", id, target))
			}
		case types.ObjectiveReachLocation:
			if _, ok := w.Locations[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest %q objective targets undefined location %q", id, target))
			}
		}
		for _, itemID := range quest.Reward {
			if _, ok := w.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"quest %q rewards undefined item %q", id, itemID))
			}
		}
	}

	for _, ev := range w.Events {
		if _, ok := w.Locations[ev.LocationID]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q bound to undefined location %q", ev.ID, ev.LocationID))
		}
		if !validActionKinds[ev.Action.Kind] {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"event %q has unknown action kind %q", ev.ID, ev.Action.Kind))
			continue
		}
		switch ev.Action.Kind {
		case types.ActSpawnNpc:
			if _, ok := w.Npcs[ev.Action.ID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"event %q spawns undefined NPC %q", ev.ID, ev.Action.ID))
			}
		case types.ActGiveItem:
			if _, ok := w.Items[ev.Action.ID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"event %q gives undefined item %q", ev.ID, ev.Action.ID))
			}
		}
	}

	for _, recipe := range w.Recipes {
		if len(recipe.Inputs) != 2 {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"recipe %q needs exactly two inputs, has %d", recipe.ID, len(recipe.Inputs)))
		}
		for _, itemID := range recipe.Inputs {
			if _, ok := w.Items[itemID]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"recipe %q input references undefined item %q", recipe.ID, itemID))
			}
		}
		if _, ok := w.Items[recipe.Output]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"recipe %q output references undefined item %q", recipe.ID, recipe.Output))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
