package types

// ModeKind discriminates the top-level game mode. Command legality
// depends on it; only mode transitions change what is accepted.
type ModeKind string

const (
	ModeExploring  ModeKind = "exploring"
	ModeInCombat   ModeKind = "in_combat"
	ModeInDialogue ModeKind = "in_dialogue"
	ModeGameOver   ModeKind = "game_over"
)

// Ending tags how the game finished.
type Ending string

const (
	EndingDeath         Ending = "death"
	EndingVictoryPeace  Ending = "victory_peace"
	EndingVictoryCombat Ending = "victory_combat"
)

// Mode is the mutually exclusive top-level state. Payload fields are
// meaningful only for the matching kind: EnemyID for in_combat, NpcID
// for in_dialogue, Ending for game_over. Use the constructors so
// illegal combinations never appear.
type Mode struct {
	Kind    ModeKind `json:"kind"`
	EnemyID string   `json:"enemy_id,omitempty"`
	NpcID   string   `json:"npc_id,omitempty"`
	Ending  Ending   `json:"ending,omitempty"`
}

// Exploring returns the default free-roam mode.
func Exploring() Mode { return Mode{Kind: ModeExploring} }

// InCombat returns combat mode against the given enemy.
func InCombat(enemyID string) Mode { return Mode{Kind: ModeInCombat, EnemyID: enemyID} }

// InDialogue returns dialogue mode with the given NPC.
func InDialogue(npcID string) Mode { return Mode{Kind: ModeInDialogue, NpcID: npcID} }

// GameOver returns the terminal mode with the given ending.
func GameOver(ending Ending) Mode { return Mode{Kind: ModeGameOver, Ending: ending} }
