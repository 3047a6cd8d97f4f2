// Package save implements JSON serialization and deserialization of game state.
package save

import (
	"encoding/json"
	"time"

	"github.com/nathoo/thornhold/types"
)

// Version is bumped when the save format changes incompatibly.
const Version = "1"

// SaveData is the JSON-serializable save format: the complete world plus
// metadata. The RNG seed and position travel inside the world, so a
// loaded game continues the same random stream.
type SaveData struct {
	Version string       `json:"version"`
	Game    string       `json:"game"`
	SavedAt time.Time    `json:"saved_at"`
	Turn    int          `json:"turn"`
	World   *types.World `json:"world"`
}

// Save serializes the world to JSON bytes.
func Save(w *types.World) ([]byte, error) {
	data := SaveData{
		Version: Version,
		Game:    w.Title,
		SavedAt: time.Now().UTC(),
		Turn:    w.Player.TurnsElapsed,
		World:   w,
	}
	return json.MarshalIndent(data, "", "  ")
}

// Load deserializes JSON bytes into SaveData and normalizes the world so
// no map or slice the engine touches is nil.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.World != nil {
		Normalize(sd.World)
	}
	return &sd, nil
}

// Normalize ensures the world's maps and slices are never nil after a
// round trip through JSON.
func Normalize(w *types.World) {
	if w.Locations == nil {
		w.Locations = map[string]*types.Location{}
	}
	if w.Items == nil {
		w.Items = map[string]*types.Item{}
	}
	if w.Npcs == nil {
		w.Npcs = map[string]*types.Npc{}
	}
	if w.Quests == nil {
		w.Quests = map[string]*types.Quest{}
	}
	if w.Player.Inventory == nil {
		w.Player.Inventory = []string{}
	}
	if w.Player.QuestFlags == nil {
		w.Player.QuestFlags = map[string]bool{}
	}
	if w.Player.Visited == nil {
		w.Player.Visited = map[string]bool{}
	}
	if w.CommandLog == nil {
		w.CommandLog = []string{}
	}
	for _, loc := range w.Locations {
		if loc.Exits == nil {
			loc.Exits = map[types.Direction]string{}
		}
		if loc.LockedExits == nil {
			loc.LockedExits = map[types.Direction]string{}
		}
	}
}
