package narrative

import (
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/nathoo/thornhold/types"
)

// dialogueHistoryLimit caps how many past exchanges are replayed to the
// model; older turns are dropped.
const dialogueHistoryLimit = 5

// buildNarrationPrompt renders the system instruction and user message
// for narrating one completed action.
func buildNarrationPrompt(nctx *types.NarrationContext, tone, verbosity string) (system, user string) {
	var length string
	switch verbosity {
	case "brief":
		length = "1 sentence max per response."
	case "verbose":
		length = "4-6 sentences per response. Be richly descriptive."
	default:
		length = "2-3 sentences max per response."
	}

	system = fmt.Sprintf(
		"You are the narrator for a dark fantasy text adventure called \"The Depths of Thornhold.\" "+
			"Tone: %s. Be atmospheric and concise. %s "+
			"Never contradict the game state provided. Never mention game mechanics directly. "+
			"Describe what the player experiences, not what the system does.",
		tone, length)

	user = fmt.Sprintf(
		"CURRENT STATE:\n"+
			"- Location: %q, %s\n"+
			"- Player: %d/%d HP, carrying: %s\n"+
			"- Room contains: %s, with %s\n"+
			"- Mood: %s\n"+
			"- Turns elapsed: %d\n\n"+
			"ACTION: %s\n\n"+
			"Narrate this moment.",
		nctx.LocationName,
		nctx.LocationDesc,
		nctx.Health,
		nctx.MaxHealth,
		listOr(nctx.Inventory, "nothing"),
		listOr(nctx.RoomItems, "nothing"),
		listOr(nctx.RoomNpcs, "no one"),
		nctx.Mood,
		nctx.TurnsElapsed,
		describeAction(nctx.Action))
	return system, user
}

// dialogueSystemPrompt renders the in-character instruction for one NPC:
// personality seed, disposition band, and the most recent memories.
func dialogueSystemPrompt(npc *types.Npc) string {
	return fmt.Sprintf(
		"You are voicing %q. Personality: %s. Disposition toward the player: %s.%s "+
			"Respond in character. 1-2 sentences. Stay consistent with the personality.",
		npc.Name, npc.PersonalitySeed, relationshipBand(npc.Relationship), recentMemories(npc.Memory))
}

func relationshipBand(relationship int) string {
	switch {
	case relationship > 30:
		return "friendly and warm"
	case relationship < -30:
		return "hostile and suspicious"
	default:
		return "neutral"
	}
}

func recentMemories(memory []types.NpcMemory) string {
	if len(memory) == 0 {
		return ""
	}
	var recent []string
	for i := len(memory) - 1; i >= 0 && len(recent) < 5; i-- {
		recent = append(recent, memory[i].Event)
	}
	return " Recent memories: " + strings.Join(recent, ", ") + "."
}

// dialogueHistory converts the stored conversation into model content,
// keeping only the last dialogueHistoryLimit turns.
func dialogueHistory(history []types.DialogueTurn) []*genai.Content {
	start := 0
	if len(history) > dialogueHistoryLimit {
		start = len(history) - dialogueHistoryLimit
	}
	var out []*genai.Content
	for _, turn := range history[start:] {
		role := "user"
		if turn.Role != "user" {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return out
}

func describeAction(a types.Action) string {
	switch a.Kind {
	case types.ActionPlayerDeath:
		return "Player has died."
	case types.ActionCombatFlee:
		if a.Text == "fled combat" {
			return "Player successfully fled from combat."
		}
		return "Player failed to flee from combat."
	case types.ActionDialogue:
		return a.Text
	case types.ActionQuestStarted:
		return "Quest started: " + a.Text
	case types.ActionQuestCompleted:
		return "Quest completed: " + a.Text
	case types.ActionEvent:
		return "Event: " + a.Text
	case types.ActionDisplay:
		return "Information displayed."
	case types.ActionError:
		return "Error: " + a.Text
	default:
		return "Player " + a.Text + "."
	}
}

func listOr(names []string, empty string) string {
	if len(names) == 0 {
		return empty
	}
	return strings.Join(names, ", ")
}
