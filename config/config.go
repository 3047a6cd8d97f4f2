// Package config loads game settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable the game reads at startup. Environment
// variables win over the YAML file, which wins over defaults.
type Config struct {
	// Narration.
	APIKey           string `yaml:"api_key" env:"THORNHOLD_API_KEY"`
	Model            string `yaml:"model" env:"THORNHOLD_MODEL"`
	NarrationEnabled bool   `yaml:"narration_enabled" env:"THORNHOLD_NARRATION"`
	Verbosity        string `yaml:"verbosity" env:"THORNHOLD_VERBOSITY"`

	// World generation.
	Seed              int64 `yaml:"seed" env:"THORNHOLD_SEED"`
	DungeonDepth      int   `yaml:"dungeon_depth" env:"THORNHOLD_DUNGEON_DEPTH"`
	DungeonDifficulty int   `yaml:"dungeon_difficulty" env:"THORNHOLD_DUNGEON_DIFFICULTY"`

	// Paths. ModulePath selects a custom world module; empty means the
	// built-in campaign.
	SaveDir    string `yaml:"save_dir" env:"THORNHOLD_SAVE_DIR"`
	ModulePath string `yaml:"module" env:"THORNHOLD_MODULE"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Model:             "gemini-2.5-flash",
		Verbosity:         "normal",
		DungeonDepth:      5,
		DungeonDifficulty: 5,
		SaveDir:           defaultSaveDir(),
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// if it exists, then environment overrides. A missing file is not an
// error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DungeonDepth < 2 {
		cfg.DungeonDepth = 2
	}
	return cfg, nil
}

func defaultSaveDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "saves"
	}
	return filepath.Join(base, "thornhold", "saves")
}
