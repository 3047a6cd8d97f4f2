package save

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WriteSlot serializes the world into dir/<name>.json, creating the
// directory if needed.
func WriteSlot(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	path := filepath.Join(dir, name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing save %s: %w", name, err)
	}
	return nil
}

// ReadSlot loads and normalizes the save stored at dir/<name>.json.
func ReadSlot(dir, name string) (*SaveData, error) {
	data, err := os.ReadFile(filepath.Join(dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("reading save %s: %w", name, err)
	}
	return Load(data)
}

// ListSlots returns the save slot names in dir, sorted. A missing
// directory is an empty list.
func ListSlots(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, strings.TrimSuffix(e.Name(), ".json"))
		}
	}
	sort.Strings(names)
	return names
}
