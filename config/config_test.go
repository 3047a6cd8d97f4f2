package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Verbosity != "normal" {
		t.Errorf("Verbosity = %q", cfg.Verbosity)
	}
	if cfg.NarrationEnabled {
		t.Error("narration should be off by default")
	}
	if cfg.DungeonDepth != 5 || cfg.DungeonDifficulty != 5 {
		t.Errorf("dungeon = depth %d, difficulty %d", cfg.DungeonDepth, cfg.DungeonDifficulty)
	}
}

func TestLoad_MissingFileOK(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := "verbosity: verbose\ndungeon_depth: 8\nsave_dir: /tmp/thsaves\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Verbosity != "verbose" {
		t.Errorf("Verbosity = %q", cfg.Verbosity)
	}
	if cfg.DungeonDepth != 8 {
		t.Errorf("DungeonDepth = %d", cfg.DungeonDepth)
	}
	if cfg.SaveDir != "/tmp/thsaves" {
		t.Errorf("SaveDir = %q", cfg.SaveDir)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("verbosity: brief\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("THORNHOLD_VERBOSITY", "verbose")
	t.Setenv("THORNHOLD_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Verbosity != "verbose" {
		t.Errorf("Verbosity = %q, want env to win", cfg.Verbosity)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d", cfg.Seed)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("verbosity: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_DepthClamp(t *testing.T) {
	t.Setenv("THORNHOLD_DUNGEON_DEPTH", "1")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DungeonDepth != 2 {
		t.Errorf("DungeonDepth = %d, want clamp to 2", cfg.DungeonDepth)
	}
}
