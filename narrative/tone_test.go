package narrative

import (
	"strings"
	"testing"

	"github.com/nathoo/thornhold/types"
)

func toneWorld() *types.World {
	return &types.World{
		Player: types.Player{
			Location:  "courtyard",
			Health:    100,
			MaxHealth: 100,
		},
		Locations: map[string]*types.Location{
			"courtyard": {ID: "courtyard", Name: "Courtyard", Mood: types.MoodPeaceful},
		},
		Quests: map[string]*types.Quest{},
		Mode:   types.Exploring(),
	}
}

func TestTone_ChangesWithHealth(t *testing.T) {
	w := toneWorld()

	if tone := Tone(w); !strings.Contains(tone, "calm") {
		t.Errorf("healthy tone = %q, want calm", tone)
	}

	w.Player.Health = 10
	if tone := Tone(w); !strings.Contains(tone, "desperate") {
		t.Errorf("low-health tone = %q, want desperate", tone)
	}
}

func TestTone_InCombat(t *testing.T) {
	w := toneWorld()
	w.Mode = types.InCombat("enemy")
	if tone := Tone(w); !strings.Contains(tone, "tense") {
		t.Errorf("combat tone = %q, want tense", tone)
	}
}

func TestTone_CombatBeatsVictory(t *testing.T) {
	w := toneWorld()
	w.Mode = types.InCombat("enemy")
	w.Quests["q"] = &types.Quest{ID: "q", Completed: true}
	if tone := Tone(w); !strings.Contains(tone, "urgent") {
		t.Errorf("tone = %q, combat should dominate victory", tone)
	}
}

func TestTone_RecentVictory(t *testing.T) {
	w := toneWorld()
	w.Quests["q"] = &types.Quest{ID: "q", Completed: true}
	if tone := Tone(w); !strings.Contains(tone, "triumphant") {
		t.Errorf("tone = %q, want triumphant", tone)
	}
}

func TestTone_LocationMood(t *testing.T) {
	tests := []struct {
		mood types.Mood
		want string
	}{
		{types.MoodTense, "watchful"},
		{types.MoodMysterious, "secrets"},
		{types.MoodDark, "darkness"},
		{types.MoodSacred, "reverent"},
		{types.MoodDangerous, "perilous"},
	}
	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			w := toneWorld()
			w.Locations["courtyard"].Mood = tt.mood
			if tone := Tone(w); !strings.Contains(tone, tt.want) {
				t.Errorf("tone for %s = %q, want %q", tt.mood, tone, tt.want)
			}
		})
	}
}

func TestTone_UneasyCalmWhenHurt(t *testing.T) {
	w := toneWorld()
	w.Player.Health = 50
	if tone := Tone(w); !strings.Contains(tone, "uneasy") {
		t.Errorf("tone = %q, want uneasy calm", tone)
	}
}

func TestTone_ZeroMaxHealth(t *testing.T) {
	w := toneWorld()
	w.Player.MaxHealth = 0
	if tone := Tone(w); !strings.Contains(tone, "deeply wrong") {
		t.Errorf("tone = %q", tone)
	}
}
