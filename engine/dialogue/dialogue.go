// Package dialogue implements the NPC conversation state machine.
package dialogue

import (
	"fmt"
	"strings"

	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// Result is the outcome of one conversational step.
type Result struct {
	Lines  []types.OutputLine
	Action types.Action
	Exited bool // true when the conversation did not start or ended
}

var exitTokens = map[string]bool{
	"leave": true, "goodbye": true, "bye": true, "exit": true, "quit": true,
}

var yesTokens = map[string]bool{
	"yes": true, "y": true, "accept": true, "sure": true, "ok": true,
}

var noTokens = map[string]bool{
	"no": true, "n": true, "decline": true, "nah": true,
}

// Enter starts a conversation with an NPC. Hostile and dead NPCs refuse
// outright. A Greeting/Familiar quest giver with an untouched quest
// advances to QuestOffered immediately; a QuestActive giver whose quest
// is already completed advances to QuestComplete.
func Enter(w *types.World, npcID string) Result {
	npc, ok := w.Npcs[npcID]
	if !ok {
		return Result{
			Lines:  []types.OutputLine{{Text: "There's no one to talk to.", Kind: types.LineError}},
			Action: types.Action{Kind: types.ActionError, Text: "npc not found"},
			Exited: true,
		}
	}

	if npc.Hostile || npc.DialogueState == types.StateDead {
		return Result{
			Lines:  []types.OutputLine{{Text: greeting(npc), Kind: types.LineDialogue}},
			Action: types.Action{Kind: types.ActionDialogue, Text: npc.Name + " refuses to talk"},
			Exited: true,
		}
	}

	w.Mode = types.InDialogue(npcID)
	w.DialogueLog = nil // fresh conversation, fresh narration history

	text := greeting(npc)
	lines := []types.OutputLine{{Text: text, Kind: types.LineDialogue}}
	w.DialogueLog = append(w.DialogueLog, types.DialogueTurn{Role: "npc", Text: text})

	offersQuest := npc.QuestGiver != "" &&
		(npc.DialogueState == types.StateGreeting || npc.DialogueState == types.StateFamiliar)
	if offersQuest {
		if q, ok := w.Quests[npc.QuestGiver]; ok && !q.Active && !q.Completed {
			npc.DialogueState = types.StateQuestOffered
			lines = append(lines,
				types.OutputLine{Text: fmt.Sprintf("%q", q.Description), Kind: types.LineDialogue},
				types.OutputLine{Text: "Will you accept? (yes/no, or 'leave' to end conversation)", Kind: types.LineSystem},
			)
		}
	}

	if npc.DialogueState == types.StateQuestActive && npc.QuestGiver != "" {
		if q, ok := w.Quests[npc.QuestGiver]; ok && q.Completed {
			npc.DialogueState = types.StateQuestComplete
			lines = append(lines, types.OutputLine{Text: greeting(npc), Kind: types.LineDialogue})
		}
	}

	return Result{
		Lines:  lines,
		Action: types.Action{Kind: types.ActionDialogue, Text: npc.Name + ": " + text},
	}
}

// Step processes one player utterance while in dialogue.
func Step(w *types.World, npcID, input string) Result {
	lower := strings.ToLower(strings.TrimSpace(input))

	if exitTokens[lower] {
		w.Mode = types.Exploring()
		w.DialogueLog = nil
		name := state.NpcName(w, npcID)
		return Result{
			Lines:  []types.OutputLine{{Text: fmt.Sprintf("You end your conversation with %s.", name), Kind: types.LineSystem}},
			Action: types.Action{Kind: types.ActionDisplay},
			Exited: true,
		}
	}

	npc, ok := w.Npcs[npcID]
	if !ok {
		w.Mode = types.Exploring()
		w.DialogueLog = nil
		return Result{Action: types.Action{Kind: types.ActionDisplay}, Exited: true}
	}

	w.DialogueLog = append(w.DialogueLog, types.DialogueTurn{Role: "user", Text: input})

	switch npc.DialogueState {
	case types.StateQuestOffered:
		if yesTokens[lower] {
			return acceptQuest(w, npc)
		}
		if noTokens[lower] {
			return declineQuest(w, npc)
		}

	case types.StateQuestComplete:
		return claimReward(w, npc)
	}

	// Free-form dialogue: acknowledge and let the narrator voice the NPC.
	reply := fmt.Sprintf("%s considers your words.", npc.Name)
	w.DialogueLog = append(w.DialogueLog, types.DialogueTurn{Role: "npc", Text: reply})
	return Result{
		Lines:  []types.OutputLine{{Text: reply, Kind: types.LineDialogue}},
		Action: types.Action{Kind: types.ActionDialogue, Text: npc.Name + " heard: " + input},
	}
}

func acceptQuest(w *types.World, npc *types.Npc) Result {
	q, ok := w.Quests[npc.QuestGiver]
	if !ok {
		return Result{Action: types.Action{Kind: types.ActionDisplay}}
	}
	q.Active = true
	npc.DialogueState = types.StateQuestActive
	npc.Relationship += 5
	state.Remember(npc, w.Player.TurnsElapsed, "quest_accepted")

	return Result{
		Lines: []types.OutputLine{
			{Text: fmt.Sprintf("%s nods gratefully.", npc.Name), Kind: types.LineDialogue},
			{Text: fmt.Sprintf("New Quest: %s - %s", q.Name, q.Description), Kind: types.LineSystem},
		},
		Action: types.Action{Kind: types.ActionQuestStarted, Text: "quest started: " + q.Name},
	}
}

func declineQuest(w *types.World, npc *types.Npc) Result {
	npc.DialogueState = types.StateFamiliar
	npc.Relationship -= 5
	state.Remember(npc, w.Player.TurnsElapsed, "quest_declined")

	return Result{
		Lines: []types.OutputLine{
			{Text: fmt.Sprintf("%s looks disappointed. \"Perhaps another time.\"", npc.Name), Kind: types.LineDialogue},
		},
		Action: types.Action{Kind: types.ActionDialogue, Text: npc.Name + ": quest declined"},
	}
}

func claimReward(w *types.World, npc *types.Npc) Result {
	q, ok := w.Quests[npc.QuestGiver]
	if !ok {
		return Result{Action: types.Action{Kind: types.ActionDisplay}}
	}

	var given, dropped []string
	for _, itemID := range q.Reward {
		if !state.InventoryFull(w) {
			w.Player.Inventory = append(w.Player.Inventory, itemID)
			given = append(given, state.ItemName(w, itemID))
		} else {
			if loc := state.CurrentLocation(w); loc != nil {
				loc.Items = append(loc.Items, itemID)
			}
			dropped = append(dropped, state.ItemName(w, itemID))
		}
	}

	npc.DialogueState = types.StateFamiliar
	npc.Relationship += 10
	state.Remember(npc, w.Player.TurnsElapsed, "quest_rewarded")

	lines := []types.OutputLine{
		{Text: fmt.Sprintf("Quest Complete: %s!", q.Name), Kind: types.LineSystem},
	}
	if len(given) > 0 {
		lines = append(lines, types.OutputLine{
			Text: "You received: " + strings.Join(given, ", "),
			Kind: types.LineSystem,
		})
	}
	if len(dropped) > 0 {
		lines = append(lines, types.OutputLine{
			Text: fmt.Sprintf("Inventory full! %s dropped to the ground.", strings.Join(dropped, ", ")),
			Kind: types.LineSystem,
		})
	}

	return Result{
		Lines:  lines,
		Action: types.Action{Kind: types.ActionQuestCompleted, Text: "quest completed: " + q.Name},
	}
}

// greeting renders the NPC's opening line for its current state and
// disposition.
func greeting(npc *types.Npc) string {
	switch npc.DialogueState {
	case types.StateGreeting, types.StateFamiliar:
		if npc.Relationship > 30 {
			return fmt.Sprintf("%s greets you warmly. \"Welcome back, friend!\"", npc.Name)
		}
		if npc.Relationship < -30 {
			return fmt.Sprintf("%s regards you with suspicion.", npc.Name)
		}
		if npc.DialogueState == types.StateGreeting {
			return fmt.Sprintf("%s regards you with interest. \"Greetings, traveler.\"", npc.Name)
		}
		return fmt.Sprintf("%s nods in recognition. \"We meet again.\"", npc.Name)
	case types.StateQuestOffered:
		return fmt.Sprintf("%s leans forward. \"I have a task for you, if you're willing...\"", npc.Name)
	case types.StateQuestActive:
		return fmt.Sprintf("%s asks, \"Have you completed what I asked of you?\"", npc.Name)
	case types.StateQuestComplete:
		return fmt.Sprintf("%s smiles broadly. \"You've done it! Here is your reward.\"", npc.Name)
	case types.StateHostile:
		return fmt.Sprintf("%s snarls and lunges at you!", npc.Name)
	case types.StateDead:
		return "The body lies still."
	}
	return fmt.Sprintf("%s says nothing.", npc.Name)
}
