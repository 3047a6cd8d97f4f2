// Package quest evaluates quest objectives against the world.
package quest

import (
	"fmt"
	"sort"

	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// CheckProgress evaluates every active, incomplete quest and marks the
// satisfied ones completed. If the giver is present, its dialogue state
// advances to QuestComplete so the reward can be claimed immediately;
// otherwise the player is told where to return. Completed quests are
// never re-evaluated.
func CheckProgress(w *types.World) []types.OutputLine {
	var lines []types.OutputLine

	ids := make([]string, 0, len(w.Quests))
	for id := range w.Quests {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		q := w.Quests[id]
		if !q.Active || q.Completed {
			continue
		}
		if !satisfied(w, q.Objective) {
			continue
		}
		q.Completed = true

		giverName := state.NpcName(w, q.Giver)
		giverNearby := false
		if loc := state.CurrentLocation(w); loc != nil {
			giverNearby = state.ContainsString(loc.Npcs, q.Giver)
		}

		if giverNearby {
			if giver, ok := w.Npcs[q.Giver]; ok {
				giver.DialogueState = types.StateQuestComplete
			}
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("Quest objective complete! %s wants to speak with you.", giverName),
				Kind: types.LineSystem,
			})
		} else {
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("Quest objective complete! Return to %s to claim your reward.", giverName),
				Kind: types.LineSystem,
			})
		}
	}

	return lines
}

func satisfied(w *types.World, obj types.Objective) bool {
	switch obj.Kind {
	case types.ObjectiveFetchItem:
		return state.HasItem(w, obj.Target)
	case types.ObjectiveKillNpc:
		if n, ok := w.Npcs[obj.Target]; ok {
			return n.DialogueState == types.StateDead
		}
		return false
	case types.ObjectiveReachLocation:
		return w.Player.Location == obj.Target
	}
	return false
}
