// Package parser converts command strings into Command structs.
// Intentionally dumb: no NLP, just normalization and table lookups.
// The current mode gates which verbs parse at all.
package parser

import (
	"strings"

	"github.com/nathoo/thornhold/types"
)

var verbAliases = map[string]types.Verb{
	// Look / Examine
	"look":    types.VerbLook,
	"l":       types.VerbLook,
	"examine": types.VerbLook,
	"inspect": types.VerbLook,
	"x":       types.VerbLook,

	// Movement
	"go":   types.VerbGo,
	"move": types.VerbGo,
	"walk": types.VerbGo,
	"head": types.VerbGo,

	// Take / Get
	"take": types.VerbTake,
	"get":  types.VerbTake,
	"grab": types.VerbTake,
	"pick": types.VerbTake, // "pick up X"

	// Drop
	"drop":    types.VerbDrop,
	"discard": types.VerbDrop,
	"throw":   types.VerbDrop,

	// Use
	"use":   types.VerbUse,
	"drink": types.VerbUse,
	"eat":   types.VerbUse,
	"read":  types.VerbUse,

	// Equip / Unequip
	"equip":   types.VerbEquip,
	"wield":   types.VerbEquip,
	"wear":    types.VerbEquip,
	"unequip": types.VerbUnequip,
	"remove":  types.VerbUnequip,

	// Talk
	"talk":  types.VerbTalk,
	"speak": types.VerbTalk,
	"ask":   types.VerbTalk,
	"chat":  types.VerbTalk,

	// Combat
	"attack": types.VerbAttack,
	"fight":  types.VerbAttack,
	"hit":    types.VerbAttack,
	"kill":   types.VerbAttack,
	"strike": types.VerbAttack,
	"flee":   types.VerbFlee,
	"run":    types.VerbFlee,
	"escape": types.VerbFlee,

	// Info
	"inventory": types.VerbInventory,
	"inv":       types.VerbInventory,
	"i":         types.VerbInventory,
	"map":       types.VerbMap,
	"m":         types.VerbMap,
	"stats":     types.VerbStats,
	"quests":    types.VerbQuestLog,
	"quest":     types.VerbQuestLog,
	"journal":   types.VerbQuestLog,
	"codex":     types.VerbJournal,
	"notes":     types.VerbJournal,
	"lore":      types.VerbJournal,

	// Crafting
	"craft":   types.VerbCraft,
	"combine": types.VerbCraft,
	"mix":     types.VerbCraft,

	// System
	"save": types.VerbSave,
	"load": types.VerbLoad,
	"help": types.VerbHelp,
	"?":    types.VerbHelp,
	"h":    types.VerbHelp,
}

// secretWords are recognized anywhere in Exploring mode.
var secretWords = map[string]bool{
	"xyzzy":       true,
	"plugh":       true,
	"abracadabra": true,
	"sesame":      true,
	"opensesame":  true,
}

var combatVerbs = map[types.Verb]bool{
	types.VerbAttack:    true,
	types.VerbFlee:      true,
	types.VerbUse:       true,
	types.VerbInventory: true,
	types.VerbHelp:      true,
}

var articles = map[string]bool{
	"the": true, "a": true, "an": true, "to": true, "at": true,
}

// Parse converts a raw input line into a Command, gated by mode.
// Unrecognized input yields VerbUnknown carrying the normalized text,
// never an error, so the executor can route it (e.g. to dialogue).
func Parse(input string, mode types.Mode) types.Command {
	trimmed := strings.TrimSpace(input)
	lower := strings.ToLower(trimmed)
	if lower == "" {
		return types.Command{Verb: types.VerbUnknown}
	}

	// Dialogue mode: only a small meta set parses; everything else is
	// free-form dialogue text forwarded verbatim.
	if mode.Kind == types.ModeInDialogue {
		return parseInDialogue(trimmed, lower)
	}

	cmd := parseFree(lower)

	// Combat mode: restrict to the combat vocabulary.
	if mode.Kind == types.ModeInCombat && !combatVerbs[cmd.Verb] {
		return types.Command{Verb: types.VerbUnknown, Arg: lower}
	}

	return cmd
}

func parseInDialogue(raw, lower string) types.Command {
	switch lower {
	case "inventory", "inv", "i":
		return types.Command{Verb: types.VerbInventory}
	case "help", "?", "h":
		return types.Command{Verb: types.VerbHelp}
	}
	// Exit tokens and everything else flow through as dialogue input.
	return types.Command{Verb: types.VerbUnknown, Arg: raw}
}

// parseFree handles Exploring-mode grammar (also used as the first pass
// for combat gating).
func parseFree(lower string) types.Command {
	words := strings.Fields(lower)

	// Direction shortcut: bare "n", "south", etc.
	if len(words) == 1 {
		if dir, ok := types.ParseDirection(words[0]); ok {
			return types.Command{Verb: types.VerbGo, Dir: dir}
		}
		if secretWords[words[0]] {
			return types.Command{Verb: types.VerbSecret, Arg: words[0]}
		}
	}
	if lower == "open sesame" {
		return types.Command{Verb: types.VerbSecret, Arg: "opensesame"}
	}

	verb, ok := verbAliases[words[0]]
	if !ok {
		return types.Command{Verb: types.VerbUnknown, Arg: lower}
	}

	rest := stripArticles(words[1:])

	// "pick up X" — drop the "up".
	if words[0] == "pick" {
		if len(rest) == 0 || rest[0] != "up" {
			return types.Command{Verb: types.VerbUnknown, Arg: lower}
		}
		rest = rest[1:]
	}
	// "talk to X" / "speak with X" — "to" is already stripped as an
	// article; drop a leading "with".
	if verb == types.VerbTalk && len(rest) > 0 && rest[0] == "with" {
		rest = rest[1:]
	}

	arg := strings.Join(rest, " ")

	switch verb {
	case types.VerbGo:
		dir, ok := types.ParseDirection(arg)
		if !ok {
			return types.Command{Verb: types.VerbUnknown, Arg: lower}
		}
		return types.Command{Verb: types.VerbGo, Dir: dir}

	case types.VerbCraft:
		first, second := splitIngredients(rest)
		return types.Command{Verb: types.VerbCraft, Arg: first, Second: second}

	case types.VerbSave, types.VerbLoad:
		return types.Command{Verb: verb, Arg: arg}

	default:
		return types.Command{Verb: verb, Arg: arg}
	}
}

// splitIngredients splits crafting input on "with" or "and".
// "craft X" with no separator lists recipes or hints.
func splitIngredients(words []string) (first, second string) {
	for i, w := range words {
		if w == "with" || w == "and" {
			return strings.Join(words[:i], " "), strings.Join(words[i+1:], " ")
		}
	}
	return strings.Join(words, " "), ""
}

func stripArticles(words []string) []string {
	result := make([]string, 0, len(words))
	for _, w := range words {
		if !articles[w] {
			result = append(result, w)
		}
	}
	return result
}
