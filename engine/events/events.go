// Package events evaluates trigger→action rules against the world and
// ticks per-turn status effects. Single pass — actions never cascade
// into further triggers.
package events

import (
	"fmt"

	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// Process fires every event bound to locationID whose trigger matches.
// One-shot events are marked fired before their actions apply, so a
// fired one-shot never re-fires.
func Process(w *types.World, trigger types.Trigger, locationID string) []types.OutputLine {
	var actions []types.EventAction

	for _, ev := range w.Events {
		if ev.LocationID != locationID {
			continue
		}
		if ev.OneShot && ev.Fired {
			continue
		}
		if ev.Trigger != trigger {
			continue
		}
		actions = append(actions, ev.Action)
		if ev.OneShot {
			ev.Fired = true
		}
	}

	var lines []types.OutputLine
	for _, action := range actions {
		lines = append(lines, apply(w, action, locationID)...)
	}
	return lines
}

// ProcessTurn fires OnTurn events for the current turn and location,
// then ticks every active status effect once: apply the per-turn damage
// or heal, decrement, and expire at zero.
func ProcessTurn(w *types.World) []types.OutputLine {
	trigger := types.Trigger{Kind: types.OnTurn, Turn: w.Player.TurnsElapsed}
	lines := Process(w, trigger, w.Player.Location)

	var expired []string
	for i := range w.Player.StatusEffects {
		se := &w.Player.StatusEffects[i]
		if se.DamagePerTurn != 0 {
			hp := w.Player.Health - se.DamagePerTurn
			if hp < 0 {
				hp = 0
			}
			if hp > w.Player.MaxHealth {
				hp = w.Player.MaxHealth
			}
			w.Player.Health = hp
			if se.DamagePerTurn > 0 {
				lines = append(lines, types.OutputLine{
					Text: fmt.Sprintf("%s deals %d damage! (HP: %d)", se.Name, se.DamagePerTurn, hp),
					Kind: types.LineCombat,
				})
			} else {
				lines = append(lines, types.OutputLine{
					Text: fmt.Sprintf("%s restores %d HP. (HP: %d)", se.Name, -se.DamagePerTurn, hp),
					Kind: types.LineSystem,
				})
			}
		}
		se.TurnsLeft--
		if se.TurnsLeft <= 0 {
			expired = append(expired, se.Name)
		}
	}
	for _, name := range expired {
		lines = append(lines, types.OutputLine{
			Text: fmt.Sprintf("%s has worn off.", name),
			Kind: types.LineSystem,
		})
	}
	active := w.Player.StatusEffects[:0]
	for _, se := range w.Player.StatusEffects {
		if se.TurnsLeft > 0 {
			active = append(active, se)
		}
	}
	w.Player.StatusEffects = active

	return lines
}

func apply(w *types.World, action types.EventAction, locationID string) []types.OutputLine {
	var lines []types.OutputLine

	switch action.Kind {
	case types.ActDamage:
		w.Player.Health -= action.Amount
		if w.Player.Health < 0 {
			w.Player.Health = 0
		}
		lines = append(lines, types.OutputLine{
			Text: fmt.Sprintf("You take %d damage!", action.Amount),
			Kind: types.LineCombat,
		})

	case types.ActSpawnNpc:
		if loc, ok := w.Locations[locationID]; ok {
			if !state.ContainsString(loc.Npcs, action.ID) {
				loc.Npcs = append(loc.Npcs, action.ID)
			}
		}
		lines = append(lines, types.OutputLine{
			Text: "A presence manifests before you...",
			Kind: types.LineNarration,
		})

	case types.ActUnlock:
		if loc, ok := w.Locations[locationID]; ok {
			delete(loc.LockedExits, action.Direction)
		}
		lines = append(lines, types.OutputLine{
			Text: fmt.Sprintf("A passage %s has been revealed!", action.Direction),
			Kind: types.LineSystem,
		})

	case types.ActMessage:
		if action.Text != "" {
			lines = append(lines, types.OutputLine{Text: action.Text, Kind: types.LineNarration})
		}

	case types.ActGiveItem:
		name := state.ItemName(w, action.ID)
		if !state.InventoryFull(w) {
			w.Player.Inventory = append(w.Player.Inventory, action.ID)
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("You received: %s", name),
				Kind: types.LineSystem,
			})
		} else {
			// Drop to the floor rather than lose the item.
			if loc, ok := w.Locations[w.Player.Location]; ok {
				loc.Items = append(loc.Items, action.ID)
			}
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("Your inventory is full! The %s falls to the ground.", name),
				Kind: types.LineSystem,
			})
		}

	case types.ActSetQuestFlag:
		w.Player.QuestFlags[action.ID] = true

	case types.ActApplyStatus:
		if action.Status != nil {
			w.Player.StatusEffects = append(w.Player.StatusEffects, *action.Status)
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("You are now affected by: %s", action.Status.Name),
				Kind: types.LineSystem,
			})
		}

	case types.ActRemoveStatus:
		kept := w.Player.StatusEffects[:0]
		for _, se := range w.Player.StatusEffects {
			if se.Name != action.ID {
				kept = append(kept, se)
			}
		}
		w.Player.StatusEffects = kept
		lines = append(lines, types.OutputLine{
			Text: fmt.Sprintf("%s has worn off.", action.ID),
			Kind: types.LineSystem,
		})

	case types.ActChangeDescription:
		target := action.Location
		if target == "" {
			target = locationID
		}
		if loc, ok := w.Locations[target]; ok {
			loc.Description = action.Text
		}
	}

	return lines
}
