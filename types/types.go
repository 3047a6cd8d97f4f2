// Package types defines the shared data structures for the Thornhold
// engine: the world model, commands, and per-turn results. Logic lives
// in the engine packages; this package carries only data and the small
// helpers tied to it.
package types

// ItemType tags what an item is for.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemConsumable ItemType = "consumable"
	ItemKey        ItemType = "key"
	ItemScroll     ItemType = "scroll"
	ItemQuest      ItemType = "quest"
	ItemMisc       ItemType = "misc"
)

// Modifier is the stat delta an item grants when used or equipped.
type Modifier struct {
	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	Health  int `json:"health,omitempty"`
}

// Item is a world object the player can interact with.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Type        ItemType  `json:"type"`
	Modifier    *Modifier `json:"modifier,omitempty"`
	Usable      bool      `json:"usable"`
	Consumable  bool      `json:"consumable"`
	KeyID       string    `json:"key_id,omitempty"` // exit this key unlocks
	Lore        string    `json:"lore,omitempty"`
}

// DialogueState is an NPC's position in the conversation state machine.
type DialogueState string

const (
	StateGreeting      DialogueState = "greeting"
	StateFamiliar      DialogueState = "familiar"
	StateQuestOffered  DialogueState = "quest_offered"
	StateQuestActive   DialogueState = "quest_active"
	StateQuestComplete DialogueState = "quest_complete"
	StateHostile       DialogueState = "hostile"
	StateDead          DialogueState = "dead"
)

// NpcMemory is one remembered interaction. The memory log is bounded;
// oldest entries are evicted first.
type NpcMemory struct {
	Turn  int    `json:"turn"`
	Event string `json:"event"`
}

// Npc is a character in the world.
type Npc struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	PersonalitySeed string        `json:"personality_seed,omitempty"`
	DialogueState   DialogueState `json:"dialogue_state"`
	Hostile         bool          `json:"hostile"`
	Health          int           `json:"health"`
	MaxHealth       int           `json:"max_health"`
	Attack          int           `json:"attack"`
	Defense         int           `json:"defense"`
	Items           []string      `json:"items,omitempty"` // dropped on death
	QuestGiver      string        `json:"quest_giver,omitempty"`
	ExamineText     string        `json:"examine_text,omitempty"`
	Relationship    int           `json:"relationship"`
	Memory          []NpcMemory   `json:"memory,omitempty"`
}

// Mood colors a location's ambience for narration.
type Mood string

const (
	MoodPeaceful   Mood = "peaceful"
	MoodTense      Mood = "tense"
	MoodMysterious Mood = "mysterious"
	MoodDark       Mood = "dark"
	MoodSacred     Mood = "sacred"
	MoodDangerous  Mood = "dangerous"
)

// Location is one room in the world graph.
type Location struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	RevisitText     string               `json:"revisit_text,omitempty"`
	ExamineDetails  string               `json:"examine_details,omitempty"`
	Items           []string             `json:"items,omitempty"`
	Npcs            []string             `json:"npcs,omitempty"`
	Exits           map[Direction]string `json:"exits,omitempty"`
	LockedExits     map[Direction]string `json:"locked_exits,omitempty"` // direction → key item id
	Visited         bool                 `json:"visited"`
	Mood            Mood                 `json:"mood,omitempty"`
	SecretsRevealed []string             `json:"secrets_revealed,omitempty"`
}

// ObjectiveKind discriminates quest objectives.
type ObjectiveKind string

const (
	ObjectiveFetchItem     ObjectiveKind = "fetch_item"
	ObjectiveKillNpc       ObjectiveKind = "kill_npc"
	ObjectiveReachLocation ObjectiveKind = "reach_location"
)

// Objective is a quest's single completion condition.
type Objective struct {
	Kind   ObjectiveKind `json:"kind"`
	Target string        `json:"target"`
}

// Quest is a trackable task given by an NPC.
type Quest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Giver       string    `json:"giver"`
	Objective   Objective `json:"objective"`
	Reward      []string  `json:"reward,omitempty"`
	Active      bool      `json:"active"`
	Completed   bool      `json:"completed"`
}

// TriggerKind discriminates event triggers.
type TriggerKind string

const (
	OnEnter TriggerKind = "on_enter"
	OnTake  TriggerKind = "on_take"
	OnUse   TriggerKind = "on_use"
	OnKill  TriggerKind = "on_kill"
	OnTurn  TriggerKind = "on_turn"
)

// Trigger is the condition a GameEvent fires on. ID holds the item or
// NPC id for OnTake/OnUse/OnKill; Turn holds the turn number for OnTurn.
type Trigger struct {
	Kind TriggerKind `json:"kind"`
	ID   string      `json:"id,omitempty"`
	Turn int         `json:"turn,omitempty"`
}

// EventActionKind discriminates event actions.
type EventActionKind string

const (
	ActDamage            EventActionKind = "damage"
	ActSpawnNpc          EventActionKind = "spawn_npc"
	ActUnlock            EventActionKind = "unlock"
	ActMessage           EventActionKind = "message"
	ActGiveItem          EventActionKind = "give_item"
	ActSetQuestFlag      EventActionKind = "set_quest_flag"
	ActApplyStatus       EventActionKind = "apply_status"
	ActRemoveStatus      EventActionKind = "remove_status"
	ActChangeDescription EventActionKind = "change_description"
)

// EventAction is what a GameEvent does when it fires. Only the fields
// relevant to Kind are populated.
type EventAction struct {
	Kind      EventActionKind `json:"kind"`
	Amount    int             `json:"amount,omitempty"`
	ID        string          `json:"id,omitempty"` // item, npc, or flag name
	Direction Direction       `json:"direction,omitempty"`
	Text      string          `json:"text,omitempty"`
	Status    *StatusEffect   `json:"status,omitempty"`
	Location  string          `json:"location,omitempty"` // for change_description
}

// GameEvent is a trigger→action rule bound to a location.
// A fired one-shot event never re-fires.
type GameEvent struct {
	ID         string      `json:"id"`
	LocationID string      `json:"location_id"`
	Trigger    Trigger     `json:"trigger"`
	Action     EventAction `json:"action"`
	OneShot    bool        `json:"one_shot"`
	Fired      bool        `json:"fired"`
}

// StatusEffect is a timed per-turn effect on the player.
type StatusEffect struct {
	Name          string `json:"name"`
	TurnsLeft     int    `json:"turns_left"`
	DamagePerTurn int    `json:"damage_per_turn"` // negative heals
	AttackMod     int    `json:"attack_mod,omitempty"`
	DefenseMod    int    `json:"defense_mod,omitempty"`
}

// Player holds all player-owned state.
type Player struct {
	Location       string          `json:"location"`
	Inventory      []string        `json:"inventory"`
	MaxInventory   int             `json:"max_inventory"`
	Health         int             `json:"health"`
	MaxHealth      int             `json:"max_health"`
	Attack         int             `json:"attack"`
	Defense        int             `json:"defense"`
	EquippedWeapon string          `json:"equipped_weapon,omitempty"`
	EquippedArmor  string          `json:"equipped_armor,omitempty"`
	QuestFlags     map[string]bool `json:"quest_flags"`
	Visited        map[string]bool `json:"visited"`
	TurnsElapsed   int             `json:"turns_elapsed"`
	StatusEffects  []StatusEffect  `json:"status_effects,omitempty"`
	Secrets        []string        `json:"secrets,omitempty"` // discovered secret words
}

// CombatState tracks an active fight.
type CombatState struct {
	EnemyID   string `json:"enemy_id"`
	TurnCount int    `json:"turn_count"`
}

// CombatLogEntry records a single blow struck.
type CombatLogEntry struct {
	Turn         int    `json:"turn"`
	Attacker     string `json:"attacker"`
	Defender     string `json:"defender"`
	Damage       int    `json:"damage"`
	DefenderHP   int    `json:"defender_hp"`
	PlayerAttack bool   `json:"player_attack"`
}

// JournalCategory groups codex entries.
type JournalCategory string

const (
	JournalLocation JournalCategory = "location"
	JournalBestiary JournalCategory = "bestiary"
	JournalItem     JournalCategory = "item"
	JournalLore     JournalCategory = "lore"
)

// JournalEntry is one discovered codex fact, idempotent by ID.
type JournalEntry struct {
	ID       string          `json:"id"`
	Category JournalCategory `json:"category"`
	Title    string          `json:"title"`
	Content  string          `json:"content"`
	Turn     int             `json:"turn"`
}

// Recipe combines two inventory items into a third.
type Recipe struct {
	ID         string   `json:"id"`
	Inputs     []string `json:"inputs"` // exactly two item ids
	Output     string   `json:"output"`
	Hint       string   `json:"hint,omitempty"`
	Discovered bool     `json:"discovered"`
}

// DialogueTurn is one exchange in the current conversation, kept only
// for narration prompts. Role is "user" or "npc".
type DialogueTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// World is the complete mutable game state. Exactly one instance exists
// per running game; every engine operation mutates it in place.
type World struct {
	Title       string               `json:"title"`
	Player      Player               `json:"player"`
	Locations   map[string]*Location `json:"locations"`
	Items       map[string]*Item     `json:"items"`
	Npcs        map[string]*Npc      `json:"npcs"`
	Quests      map[string]*Quest    `json:"quests"`
	Events      []*GameEvent         `json:"events"`
	Recipes     []*Recipe            `json:"recipes,omitempty"`
	Mode        Mode                 `json:"mode"`
	Combat      *CombatState         `json:"combat,omitempty"`
	Journal     []JournalEntry       `json:"journal,omitempty"`
	CombatLog   []CombatLogEntry     `json:"combat_log,omitempty"`
	CommandLog  []string             `json:"command_log,omitempty"`
	DialogueLog []DialogueTurn       `json:"dialogue_log,omitempty"`
	LastContext *NarrationContext    `json:"last_context,omitempty"`
	RNGSeed     int64                `json:"rng_seed"`
	RNGPosition int64                `json:"rng_position"`
}

// NarrationContext is the immutable snapshot handed to the external
// narrator after a command completes. It never references the world.
type NarrationContext struct {
	LocationName string   `json:"location_name"`
	LocationDesc string   `json:"location_desc"`
	Mood         Mood     `json:"mood"`
	Health       int      `json:"health"`
	MaxHealth    int      `json:"max_health"`
	Inventory    []string `json:"inventory"`
	RoomItems    []string `json:"room_items"`
	RoomNpcs     []string `json:"room_npcs"`
	Action       Action   `json:"action"`
	TurnsElapsed int      `json:"turns_elapsed"`
}
