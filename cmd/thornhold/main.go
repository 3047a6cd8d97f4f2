// Thornhold is a single-player text adventure: a deterministic core
// with optional LLM narration.
// Usage: thornhold [--version] [--plain] [--script <file>] [--config <file>] [module]
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nathoo/thornhold/cli"
	"github.com/nathoo/thornhold/config"
	"github.com/nathoo/thornhold/engine"
	"github.com/nathoo/thornhold/engine/dungeon"
	"github.com/nathoo/thornhold/loader"
	"github.com/nathoo/thornhold/narrative"
	"github.com/nathoo/thornhold/tui"
	"github.com/nathoo/thornhold/types"
	"github.com/nathoo/thornhold/world"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var configPath string
	var scriptFile string
	var modulePath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("thornhold %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		case "--script":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--script requires a file path\n")
				os.Exit(1)
			}
			i++
			scriptFile = args[i]
		case "--config":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--config requires a file path\n")
				os.Exit(1)
			}
			i++
			configPath = args[i]
		default:
			if modulePath == "" {
				modulePath = args[i]
			}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if modulePath == "" {
		modulePath = cfg.ModulePath
	}

	w, err := buildWorld(cfg, modulePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading world: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(w)

	narrator, err := narrative.New(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting narrator: %v\n", err)
		os.Exit(1)
	}
	defer narrator.Close()

	// Script mode: open file, force plain, echo commands.
	if scriptFile != "" {
		f, err := os.Open(scriptFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening script: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		fmt.Printf("%s\n\n", w.Title)
		c := cli.New(eng, narrator, cfg.SaveDir)
		c.In = f
		c.EchoInput = true
		c.Run()
		return
	}

	// Use plain CLI if --plain flag or stdout is not a terminal.
	if plain || !isTerminal() {
		fmt.Printf("%s\n\n", w.Title)
		c := cli.New(eng, narrator, cfg.SaveDir)
		c.Run()
		return
	}

	if err := tui.Run(eng, narrator, cfg.SaveDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildWorld assembles the starting world: a custom module when given,
// otherwise the built-in campaign with its generated dungeon.
func buildWorld(cfg config.Config, modulePath string) (*types.World, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if modulePath != "" {
		w, err := loader.Load(modulePath)
		if err != nil {
			return nil, err
		}
		if w.RNGSeed == 0 {
			w.RNGSeed = seed
		}
		return w, nil
	}

	w := world.New(seed)
	dungeon.Generate(dungeon.Config{
		EntryLocation:  "armory",
		EntryDirection: types.Down,
		Depth:          cfg.DungeonDepth,
		DifficultyBase: cfg.DungeonDifficulty,
	}, w)
	return w, nil
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
