package types

// Verb is the canonical command vocabulary after parsing.
type Verb string

const (
	VerbLook      Verb = "look"
	VerbGo        Verb = "go"
	VerbTake      Verb = "take"
	VerbDrop      Verb = "drop"
	VerbUse       Verb = "use"
	VerbEquip     Verb = "equip"
	VerbUnequip   Verb = "unequip"
	VerbTalk      Verb = "talk"
	VerbAttack    Verb = "attack"
	VerbFlee      Verb = "flee"
	VerbInventory Verb = "inventory"
	VerbMap       Verb = "map"
	VerbStats     Verb = "stats"
	VerbQuestLog  Verb = "quests"
	VerbJournal   Verb = "journal"
	VerbCraft     Verb = "craft"
	VerbSecret    Verb = "secret"
	VerbSave      Verb = "save"
	VerbLoad      Verb = "load"
	VerbHelp      Verb = "help"
	VerbUnknown   Verb = "unknown"
)

// Command is the parsed form of one player input line.
// Arg holds the primary target text (or the raw input for VerbUnknown,
// the secret word for VerbSecret, the slot name for save/load).
// Second holds the second crafting ingredient. Dir is set for VerbGo.
type Command struct {
	Verb   Verb
	Arg    string
	Second string
	Dir    Direction
}

// LineKind classifies an output line for styling.
type LineKind string

const (
	LineNarration LineKind = "narration"
	LineSystem    LineKind = "system"
	LineError     LineKind = "error"
	LineInput     LineKind = "input"
	LineCombat    LineKind = "combat"
	LineDialogue  LineKind = "dialogue"
)

// OutputLine is one line of player-facing text.
type OutputLine struct {
	Text string   `json:"text"`
	Kind LineKind `json:"kind"`
}

// ActionKind tags what a completed command did, for narration.
type ActionKind string

const (
	ActionRoomEntered    ActionKind = "room_entered"
	ActionItemTaken      ActionKind = "item_taken"
	ActionItemDropped    ActionKind = "item_dropped"
	ActionItemUsed       ActionKind = "item_used"
	ActionItemEquipped   ActionKind = "item_equipped"
	ActionItemUnequipped ActionKind = "item_unequipped"
	ActionCombatAttack   ActionKind = "combat_attack"
	ActionCombatVictory  ActionKind = "combat_victory"
	ActionCombatFlee     ActionKind = "combat_flee"
	ActionPlayerDeath    ActionKind = "player_death"
	ActionDialogue       ActionKind = "dialogue"
	ActionQuestStarted   ActionKind = "quest_started"
	ActionQuestCompleted ActionKind = "quest_completed"
	ActionEvent          ActionKind = "event"
	ActionDisplay        ActionKind = "display"
	ActionError          ActionKind = "error"
)

// Action is the tagged outcome of one executed command. Text is a short
// plain description consumed by the narrator prompt.
type Action struct {
	Kind ActionKind `json:"kind"`
	Text string     `json:"text,omitempty"`
}

// Result is everything one executed command produced.
type Result struct {
	Lines   []OutputLine
	Action  Action
	Context *NarrationContext // nil when the action needs no narration
}
