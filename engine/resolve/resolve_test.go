package resolve

import (
	"errors"
	"testing"

	"github.com/nathoo/thornhold/types"
)

var names = map[string]string{
	"rusty_lantern":  "Rusty Lantern",
	"iron_sword":     "Iron Sword",
	"silver_sword":   "Silver Sword",
	"healing_potion": "Healing Potion",
	"library_key":    "Library Key",
}

func nameOf(id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return id
}

func ids() []string {
	return []string{"rusty_lantern", "iron_sword", "silver_sword", "healing_potion", "library_key"}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"exact id", "iron_sword", []string{"iron_sword"}},
		{"exact name", "Iron Sword", []string{"iron_sword"}},
		{"substring name", "lantern", []string{"rusty_lantern"}},
		{"substring id", "healing", []string{"healing_potion"}},
		{"ambiguous substring", "sword", []string{"iron_sword", "silver_sword"}},
		{"case insensitive", "RUSTY LANTERN", []string{"rusty_lantern"}},
		{"no match", "dragon", nil},
		{"empty query", "", nil},
		{"whitespace query", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.query, ids(), nameOf)
			if len(got) != len(tt.want) {
				t.Fatalf("Match(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Match(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatch_ExactBeatsSubstring(t *testing.T) {
	// "sword" as an exact name must not also pull in substring matches.
	local := func(id string) string {
		if id == "plain_sword" {
			return "Sword"
		}
		return nameOf(id)
	}
	got := Match("sword", []string{"iron_sword", "plain_sword"}, local)
	if len(got) != 1 || got[0] != "plain_sword" {
		t.Errorf("Match = %v, want [plain_sword]", got)
	}
}

func TestOne(t *testing.T) {
	id, err := One("lantern", ids(), nameOf)
	if err != nil || id != "rusty_lantern" {
		t.Errorf("One(lantern) = %q, %v", id, err)
	}

	_, err = One("dragon", ids(), nameOf)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("One(dragon) err = %v, want NotFoundError", err)
	}
	if nf.Error() != "You don't see 'dragon' here." {
		t.Errorf("message = %q", nf.Error())
	}

	_, err = One("sword", ids(), nameOf)
	var amb *AmbiguityError
	if !errors.As(err, &amb) {
		t.Fatalf("One(sword) err = %v, want AmbiguityError", err)
	}
	if amb.Error() != "Which one? Iron Sword, Silver Sword" {
		t.Errorf("message = %q", amb.Error())
	}
}

func TestNameMatches(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"rusty_lantern", true},
		{"Rusty Lantern", true},
		{"lantern", true},
		{"rusty", true},
		{"sword", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := NameMatches(tt.query, "rusty_lantern", "Rusty Lantern"); got != tt.want {
			t.Errorf("NameMatches(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestItemAndNpc(t *testing.T) {
	w := &types.World{
		Items: map[string]*types.Item{
			"rusty_lantern": {ID: "rusty_lantern", Name: "Rusty Lantern"},
		},
		Npcs: map[string]*types.Npc{
			"merchant_ghost": {ID: "merchant_ghost", Name: "The Dead Merchant"},
		},
	}

	id, err := Item(w, "lantern", []string{"rusty_lantern"})
	if err != nil || id != "rusty_lantern" {
		t.Errorf("Item = %q, %v", id, err)
	}

	id, err = Npc(w, "merchant", []string{"merchant_ghost"})
	if err != nil || id != "merchant_ghost" {
		t.Errorf("Npc = %q, %v", id, err)
	}

	// Unknown id falls back to the id itself as display name.
	id, err = Item(w, "mystery_box", []string{"mystery_box"})
	if err != nil || id != "mystery_box" {
		t.Errorf("Item fallback = %q, %v", id, err)
	}
}
