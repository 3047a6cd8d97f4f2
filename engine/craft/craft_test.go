package craft

import (
	"strings"
	"testing"

	"github.com/nathoo/thornhold/types"
)

func craftWorld() *types.World {
	return &types.World{
		Player: types.Player{
			Location:     "workshop",
			Inventory:    []string{"cloth", "needle", "flint"},
			MaxInventory: 10,
			QuestFlags:   map[string]bool{},
			Visited:      map[string]bool{"workshop": true},
		},
		Locations: map[string]*types.Location{
			"workshop": {ID: "workshop", Name: "The Workshop"},
		},
		Items: map[string]*types.Item{
			"cloth":   {ID: "cloth", Name: "Torn Cloth"},
			"needle":  {ID: "needle", Name: "Bone Needle"},
			"flint":   {ID: "flint", Name: "Flint Shard"},
			"bandage": {ID: "bandage", Name: "Field Bandage"},
		},
		Recipes: []*types.Recipe{
			{
				ID:     "bandage",
				Inputs: []string{"cloth", "needle"},
				Output: "bandage",
				Hint:   "Cloth could bind a wound with the right tool...",
			},
		},
		Mode: types.Exploring(),
	}
}

func resultText(r types.Result) string {
	var parts []string
	for _, l := range r.Lines {
		parts = append(parts, l.Text)
	}
	return strings.Join(parts, "\n")
}

func TestCombine_MatchedRecipe(t *testing.T) {
	w := craftWorld()

	result := Combine(w, "cloth", "needle")
	if !strings.Contains(resultText(result), "You combine Torn Cloth and Bone Needle to create Field Bandage!") {
		t.Errorf("output = %q", resultText(result))
	}

	inv := strings.Join(w.Player.Inventory, ",")
	if strings.Contains(inv, "cloth") || strings.Contains(inv, "needle") {
		t.Errorf("inputs not consumed: %v", w.Player.Inventory)
	}
	if !strings.Contains(inv, "bandage") {
		t.Errorf("output missing: %v", w.Player.Inventory)
	}
	if !w.Recipes[0].Discovered {
		t.Error("recipe not marked discovered")
	}

	// Crafting records a codex entry once.
	if len(w.Journal) != 1 || w.Journal[0].ID != "craft_bandage" {
		t.Errorf("journal = %+v", w.Journal)
	}
}

func TestCombine_OrderIrrelevant(t *testing.T) {
	w := craftWorld()
	result := Combine(w, "needle", "cloth")
	if result.Action.Kind != types.ActionItemUsed {
		t.Errorf("action = %+v", result.Action)
	}
}

func TestCombine_HintOnNearMiss(t *testing.T) {
	w := craftWorld()
	result := Combine(w, "cloth", "flint")
	if !strings.Contains(resultText(result), "Hint: Cloth could bind a wound with the right tool...") {
		t.Errorf("output = %q", resultText(result))
	}
	if len(w.Player.Inventory) != 3 {
		t.Errorf("failed craft consumed items: %v", w.Player.Inventory)
	}
}

func TestCombine_NoRecipeAtAll(t *testing.T) {
	w := craftWorld()
	w.Recipes = nil
	result := Combine(w, "cloth", "flint")
	if !strings.Contains(resultText(result), "can't be combined into anything useful") {
		t.Errorf("output = %q", resultText(result))
	}
}

func TestCombine_MissingIngredient(t *testing.T) {
	w := craftWorld()
	result := Combine(w, "cloth", "hammer")
	if !strings.Contains(resultText(result), "You don't have anything called 'hammer'.") {
		t.Errorf("output = %q", resultText(result))
	}
}

func TestCombine_SameItemTwice(t *testing.T) {
	w := craftWorld()
	result := Combine(w, "cloth", "cloth")
	if !strings.Contains(resultText(result), "You can't combine an item with itself.") {
		t.Errorf("output = %q", resultText(result))
	}
}

func TestCombine_ListRecipes(t *testing.T) {
	w := craftWorld()

	result := Combine(w, "", "")
	if !strings.Contains(resultText(result), "You haven't discovered any recipes yet.") {
		t.Errorf("output = %q", resultText(result))
	}

	Combine(w, "cloth", "needle")
	result = Combine(w, "recipes", "")
	text := resultText(result)
	if !strings.Contains(text, "--- Known Recipes ---") {
		t.Errorf("output = %q", text)
	}
	if !strings.Contains(text, "Torn Cloth + Bone Needle = Field Bandage") {
		t.Errorf("output = %q", text)
	}
}

func TestCombine_SingleIngredientPrompts(t *testing.T) {
	w := craftWorld()
	result := Combine(w, "cloth", "")
	if !strings.Contains(resultText(result), "Craft cloth with what?") {
		t.Errorf("output = %q", resultText(result))
	}
}
