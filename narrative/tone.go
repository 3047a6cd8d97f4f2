package narrative

import "github.com/nathoo/thornhold/types"

// Tone picks the narrator's voice from the current world state. Health
// dominates, then combat, then a fresh victory, then the room's mood.
func Tone(w *types.World) string {
	if w.Player.MaxHealth <= 0 {
		return "ominous, foreboding, something is deeply wrong"
	}
	healthPct := w.Player.Health * 100 / w.Player.MaxHealth

	mood := types.MoodPeaceful
	if loc, ok := w.Locations[w.Player.Location]; ok && loc.Mood != "" {
		mood = loc.Mood
	}

	recentVictory := false
	if w.Mode.Kind == types.ModeExploring {
		for _, q := range w.Quests {
			if q.Completed {
				recentVictory = true
				break
			}
		}
	}

	if healthPct < 25 {
		return "desperate, visceral, every breath feels like the last"
	}
	if w.Mode.Kind == types.ModeInCombat {
		return "tense, urgent, danger at every moment"
	}
	if recentVictory && healthPct > 75 {
		return "triumphant with dry humor, hard-won relief"
	}

	switch mood {
	case types.MoodPeaceful:
		if healthPct > 75 {
			return "calm, reflective, atmospheric"
		}
		return "uneasy calm, a moment to catch breath"
	case types.MoodTense:
		return "tense, watchful, danger lurks nearby"
	case types.MoodMysterious:
		return "curious, atmospheric, secrets in the shadows"
	case types.MoodDark:
		return "ominous, foreboding, darkness presses close"
	case types.MoodSacred:
		return "reverent, mysterious, ancient power lingers"
	case types.MoodDangerous:
		return "perilous, every step could be the last"
	}
	return "calm, reflective, atmospheric"
}
