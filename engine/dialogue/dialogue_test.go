package dialogue

import (
	"strings"
	"testing"

	"github.com/nathoo/thornhold/types"
)

func dialogueWorld() *types.World {
	return &types.World{
		Player: types.Player{
			Location:     "shrine",
			MaxInventory: 10,
			Health:       100,
			MaxHealth:    100,
			QuestFlags:   map[string]bool{},
			Visited:      map[string]bool{"shrine": true},
		},
		Locations: map[string]*types.Location{
			"shrine": {ID: "shrine", Name: "The Shrine"},
		},
		Items: map[string]*types.Item{
			"amulet": {ID: "amulet", Name: "Silver Amulet"},
		},
		Npcs: map[string]*types.Npc{
			"hermit": {
				ID: "hermit", Name: "The Hermit",
				DialogueState: types.StateGreeting,
				QuestGiver:    "find_amulet",
			},
			"revenant": {
				ID: "revenant", Name: "Revenant",
				DialogueState: types.StateHostile,
				Hostile:       true,
			},
		},
		Quests: map[string]*types.Quest{
			"find_amulet": {
				ID: "find_amulet", Name: "The Lost Amulet",
				Description: "Bring me my amulet.",
				Giver:       "hermit",
				Objective:   types.Objective{Kind: types.ObjectiveFetchItem, Target: "amulet"},
				Reward:      []string{"amulet"},
			},
		},
		Mode: types.Exploring(),
	}
}

func hasLine(lines []types.OutputLine, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

func TestEnter_OffersQuest(t *testing.T) {
	w := dialogueWorld()
	res := Enter(w, "hermit")

	if res.Exited {
		t.Fatal("conversation should start")
	}
	if w.Mode.Kind != types.ModeInDialogue || w.Mode.NpcID != "hermit" {
		t.Errorf("mode = %+v", w.Mode)
	}
	if w.Npcs["hermit"].DialogueState != types.StateQuestOffered {
		t.Errorf("state = %s", w.Npcs["hermit"].DialogueState)
	}
	if !hasLine(res.Lines, "Will you accept?") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestEnter_HostileRefuses(t *testing.T) {
	w := dialogueWorld()
	res := Enter(w, "revenant")

	if !res.Exited {
		t.Error("hostile NPC should refuse conversation")
	}
	if w.Mode.Kind != types.ModeExploring {
		t.Errorf("mode = %+v", w.Mode)
	}
	if !hasLine(res.Lines, "snarls and lunges") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestEnter_DeadNpc(t *testing.T) {
	w := dialogueWorld()
	w.Npcs["hermit"].DialogueState = types.StateDead

	res := Enter(w, "hermit")
	if !res.Exited {
		t.Error("dead NPC should not converse")
	}
	if !hasLine(res.Lines, "The body lies still.") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestEnter_UnknownNpc(t *testing.T) {
	w := dialogueWorld()
	res := Enter(w, "nobody")
	if !res.Exited || res.Action.Kind != types.ActionError {
		t.Errorf("res = %+v", res)
	}
}

func TestStep_AcceptQuest(t *testing.T) {
	w := dialogueWorld()
	Enter(w, "hermit")

	res := Step(w, "hermit", "yes")
	q := w.Quests["find_amulet"]
	npc := w.Npcs["hermit"]

	if !q.Active {
		t.Error("quest not activated")
	}
	if npc.DialogueState != types.StateQuestActive {
		t.Errorf("state = %s", npc.DialogueState)
	}
	if npc.Relationship != 5 {
		t.Errorf("relationship = %d, want 5", npc.Relationship)
	}
	if len(npc.Memory) == 0 || npc.Memory[len(npc.Memory)-1].Event != "quest_accepted" {
		t.Errorf("memory = %+v", npc.Memory)
	}
	if res.Action.Kind != types.ActionQuestStarted {
		t.Errorf("action = %+v", res.Action)
	}
	if !hasLine(res.Lines, "New Quest: The Lost Amulet") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestStep_DeclineQuest(t *testing.T) {
	w := dialogueWorld()
	Enter(w, "hermit")

	res := Step(w, "hermit", "no")
	npc := w.Npcs["hermit"]

	if w.Quests["find_amulet"].Active {
		t.Error("declined quest should stay inactive")
	}
	if npc.DialogueState != types.StateFamiliar {
		t.Errorf("state = %s", npc.DialogueState)
	}
	if npc.Relationship != -5 {
		t.Errorf("relationship = %d, want -5", npc.Relationship)
	}
	if !hasLine(res.Lines, "Perhaps another time.") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestStep_ExitTokens(t *testing.T) {
	for _, token := range []string{"leave", "goodbye", "bye", "exit", "quit"} {
		t.Run(token, func(t *testing.T) {
			w := dialogueWorld()
			Enter(w, "hermit")

			res := Step(w, "hermit", token)
			if !res.Exited {
				t.Error("should exit conversation")
			}
			if w.Mode.Kind != types.ModeExploring {
				t.Errorf("mode = %+v", w.Mode)
			}
			if w.DialogueLog != nil {
				t.Error("dialogue log should reset on exit")
			}
		})
	}
}

func TestStep_FreeFormLogsTurns(t *testing.T) {
	w := dialogueWorld()
	w.Npcs["hermit"].QuestGiver = "" // plain conversation
	Enter(w, "hermit")

	res := Step(w, "hermit", "What is this place?")
	if res.Exited {
		t.Error("free-form input should not end the conversation")
	}
	if res.Action.Kind != types.ActionDialogue {
		t.Errorf("action = %+v", res.Action)
	}

	// Greeting + player line + canned reply.
	if len(w.DialogueLog) != 3 {
		t.Fatalf("dialogue log = %+v", w.DialogueLog)
	}
	if w.DialogueLog[1].Role != "user" || w.DialogueLog[1].Text != "What is this place?" {
		t.Errorf("player turn = %+v", w.DialogueLog[1])
	}
	if w.DialogueLog[2].Role != "npc" {
		t.Errorf("npc turn = %+v", w.DialogueLog[2])
	}
}

func TestStep_ClaimReward(t *testing.T) {
	w := dialogueWorld()
	q := w.Quests["find_amulet"]
	npc := w.Npcs["hermit"]

	// Quest already done; talking again advances to the reward.
	q.Active = true
	q.Completed = true
	npc.DialogueState = types.StateQuestActive

	Enter(w, "hermit")
	if npc.DialogueState != types.StateQuestComplete {
		t.Fatalf("state = %s", npc.DialogueState)
	}

	res := Step(w, "hermit", "here it is")
	if res.Action.Kind != types.ActionQuestCompleted {
		t.Errorf("action = %+v", res.Action)
	}
	if !hasLine(res.Lines, "Quest Complete: The Lost Amulet!") {
		t.Errorf("lines = %+v", res.Lines)
	}
	if !hasLine(res.Lines, "You received: Silver Amulet") {
		t.Errorf("lines = %+v", res.Lines)
	}
	if npc.DialogueState != types.StateFamiliar {
		t.Errorf("state after reward = %s", npc.DialogueState)
	}
	if npc.Relationship != 10 {
		t.Errorf("relationship = %d, want 10", npc.Relationship)
	}
}

func TestStep_RewardOverflowDropsToFloor(t *testing.T) {
	w := dialogueWorld()
	w.Player.MaxInventory = 0
	q := w.Quests["find_amulet"]
	npc := w.Npcs["hermit"]
	q.Active = true
	q.Completed = true
	npc.DialogueState = types.StateQuestActive

	Enter(w, "hermit")
	res := Step(w, "hermit", "done")

	if len(w.Player.Inventory) != 0 {
		t.Errorf("inventory = %v", w.Player.Inventory)
	}
	loc := w.Locations["shrine"]
	if len(loc.Items) != 1 || loc.Items[0] != "amulet" {
		t.Errorf("floor items = %v", loc.Items)
	}
	if !hasLine(res.Lines, "dropped to the ground") {
		t.Errorf("lines = %+v", res.Lines)
	}
}

func TestGreeting_RelationshipBands(t *testing.T) {
	npc := &types.Npc{Name: "The Hermit", DialogueState: types.StateGreeting}

	npc.Relationship = 31
	if got := greeting(npc); !strings.Contains(got, "Welcome back, friend!") {
		t.Errorf("warm greeting = %q", got)
	}

	npc.Relationship = -31
	if got := greeting(npc); !strings.Contains(got, "suspicion") {
		t.Errorf("cold greeting = %q", got)
	}

	npc.Relationship = 0
	if got := greeting(npc); !strings.Contains(got, "Greetings, traveler.") {
		t.Errorf("neutral greeting = %q", got)
	}

	npc.DialogueState = types.StateFamiliar
	if got := greeting(npc); !strings.Contains(got, "We meet again.") {
		t.Errorf("familiar greeting = %q", got)
	}
}
