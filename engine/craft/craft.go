// Package craft implements two-item crafting recipes.
package craft

import (
	"fmt"

	"github.com/nathoo/thornhold/engine/resolve"
	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// Combine attempts to craft with two named inventory items. A matched
// recipe consumes both inputs, produces the output, marks the recipe
// discovered, and records a journal entry once per recipe. With no
// second ingredient it lists discovered recipes or prompts for one.
func Combine(w *types.World, first, second string) types.Result {
	if second == "" {
		return listRecipes(w, first)
	}

	firstID, err := findInInventory(w, first)
	if err != nil {
		return craftError(inventoryErrText(err, first))
	}
	secondID, err := findInInventory(w, second)
	if err != nil {
		return craftError(inventoryErrText(err, second))
	}
	if firstID == secondID {
		return craftError("You can't combine an item with itself.")
	}

	recipe := matchRecipe(w, firstID, secondID)
	if recipe == nil {
		for _, r := range w.Recipes {
			if state.ContainsString(r.Inputs, firstID) || state.ContainsString(r.Inputs, secondID) {
				return craftError("Those items don't combine. Hint: " + r.Hint)
			}
		}
		return craftError("Those items can't be combined into anything useful.")
	}

	recipe.Discovered = true
	state.RemoveFromInventory(w, firstID)
	state.RemoveFromInventory(w, secondID)
	w.Player.Inventory = append(w.Player.Inventory, recipe.Output)

	firstName := state.ItemName(w, firstID)
	secondName := state.ItemName(w, secondID)
	outputName := state.ItemName(w, recipe.Output)

	state.AddJournal(w, types.JournalEntry{
		ID:       "craft_" + recipe.ID,
		Category: types.JournalItem,
		Title:    outputName,
		Content:  fmt.Sprintf("Crafted from %s and %s.", firstName, secondName),
		Turn:     w.Player.TurnsElapsed,
	})

	return types.Result{
		Lines: []types.OutputLine{{
			Text: fmt.Sprintf("You combine %s and %s to create %s!", firstName, secondName, outputName),
			Kind: types.LineSystem,
		}},
		Action: types.Action{Kind: types.ActionItemUsed, Text: "crafted " + outputName},
	}
}

func matchRecipe(w *types.World, firstID, secondID string) *types.Recipe {
	for _, r := range w.Recipes {
		if len(r.Inputs) == 2 &&
			state.ContainsString(r.Inputs, firstID) &&
			state.ContainsString(r.Inputs, secondID) {
			return r
		}
	}
	return nil
}

func findInInventory(w *types.World, name string) (string, error) {
	return resolve.Item(w, name, w.Player.Inventory)
}

func inventoryErrText(err error, name string) string {
	if amb, ok := err.(*resolve.AmbiguityError); ok {
		return amb.Error()
	}
	return fmt.Sprintf("You don't have anything called '%s'.", name)
}

func listRecipes(w *types.World, query string) types.Result {
	if query == "recipes" || query == "list" || query == "" {
		var discovered []*types.Recipe
		for _, r := range w.Recipes {
			if r.Discovered {
				discovered = append(discovered, r)
			}
		}
		if len(discovered) == 0 {
			return types.Result{
				Lines: []types.OutputLine{{
					Text: "You haven't discovered any recipes yet. Try combining items!",
					Kind: types.LineSystem,
				}},
				Action: types.Action{Kind: types.ActionDisplay},
			}
		}
		lines := []types.OutputLine{{Text: "--- Known Recipes ---", Kind: types.LineSystem}}
		for _, r := range discovered {
			lines = append(lines, types.OutputLine{
				Text: fmt.Sprintf("  %s + %s = %s",
					state.ItemName(w, r.Inputs[0]),
					state.ItemName(w, r.Inputs[1]),
					state.ItemName(w, r.Output)),
				Kind: types.LineSystem,
			})
		}
		return types.Result{Lines: lines, Action: types.Action{Kind: types.ActionDisplay}}
	}

	return types.Result{
		Lines: []types.OutputLine{{
			Text: fmt.Sprintf("Craft %s with what? Use: craft <item> with <item>", query),
			Kind: types.LineSystem,
		}},
		Action: types.Action{Kind: types.ActionDisplay},
	}
}

func craftError(msg string) types.Result {
	return types.Result{
		Lines:  []types.OutputLine{{Text: msg, Kind: types.LineError}},
		Action: types.Action{Kind: types.ActionError, Text: msg},
	}
}
