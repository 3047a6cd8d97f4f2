// Package cli provides the plain terminal front end: a prompt loop over
// the engine with save slots, inline narration, and meta-commands. Used
// when stdout is not a terminal or --plain is given.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nathoo/thornhold/engine"
	"github.com/nathoo/thornhold/engine/save"
	"github.com/nathoo/thornhold/narrative"
	"github.com/nathoo/thornhold/types"
)

// CLI handles terminal interaction with the player.
type CLI struct {
	Engine    *engine.Engine
	Narrator  *narrative.Narrator
	In        io.Reader
	Out       io.Writer
	SaveDir   string
	EchoInput bool   // echo each input line after the prompt (for script playback)
	lastCmd   string // for "again"/"g" repeat
}

// New creates a CLI wired to the given engine.
func New(eng *engine.Engine, narrator *narrative.Narrator, saveDir string) *CLI {
	return &CLI{
		Engine:   eng,
		Narrator: narrator,
		In:       os.Stdin,
		Out:      os.Stdout,
		SaveDir:  saveDir,
	}
}

// Run starts the game loop: describe the starting room, then
// prompt → input → dispatch → output until EOF or quit.
func (c *CLI) Run() {
	c.printResult(c.Engine.Step("look"))

	scanner := bufio.NewScanner(c.In)
	for {
		c.print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		// Skip comment lines (for script files).
		if strings.HasPrefix(input, "#") {
			continue
		}
		if c.EchoInput {
			c.printLine(input)
		}

		lower := strings.ToLower(input)
		if lower == "quit" || lower == "exit" || lower == "/quit" {
			c.printSystem("Goodbye.")
			return
		}

		// "retry" retells the last narrated moment.
		if lower == "retry" {
			c.cmdRetry()
			continue
		}

		// "again" / "g" repeats the last game command.
		if lower == "again" || lower == "g" {
			if c.lastCmd == "" {
				c.printSystem("Nothing to repeat.")
				continue
			}
			input = c.lastCmd
		} else {
			c.lastCmd = input
		}

		// Persistence lives in the front end; the engine never touches disk.
		if handled := c.handlePersistence(input); handled {
			continue
		}

		wasInDialogue := c.Engine.World.Mode.Kind == types.ModeInDialogue
		result := c.Engine.Step(input)
		c.printResult(result)
		c.narrate(input, wasInDialogue, result)
	}
}

// handlePersistence intercepts "save [slot]" and "load [slot]". Returns
// false for everything else, including "load" mid-word commands.
func (c *CLI) handlePersistence(input string) bool {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 || len(fields) > 2 {
		return false
	}
	slot := "quicksave"
	if len(fields) == 2 {
		slot = fields[1]
	}

	switch fields[0] {
	case "save":
		c.cmdSave(slot)
		return true
	case "load":
		c.cmdLoad(slot)
		return true
	case "saves":
		slots := save.ListSlots(c.SaveDir)
		if len(slots) == 0 {
			c.printSystem("No saves yet.")
		} else {
			c.printSystem("Saves: " + strings.Join(slots, ", "))
		}
		return true
	}
	return false
}

func (c *CLI) cmdSave(slot string) {
	data, err := save.Save(c.Engine.World)
	if err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	if err := save.WriteSlot(c.SaveDir, slot, data); err != nil {
		c.printSystem(fmt.Sprintf("Save failed: %v", err))
		return
	}
	c.printSystem(fmt.Sprintf("Game saved to %s.", slot))
}

func (c *CLI) cmdLoad(slot string) {
	sd, err := save.ReadSlot(c.SaveDir, slot)
	if err != nil {
		c.printSystem(fmt.Sprintf("Load failed: %v", err))
		return
	}

	c.Engine.World = sd.World
	c.Engine.RestoreRNG(sd.World.RNGSeed, sd.World.RNGPosition)
	c.printSystem(fmt.Sprintf("Game loaded from %s (turn %d).", slot, sd.Turn))

	c.printResult(c.Engine.Step("look"))
}

// narrate streams LLM prose for the finished command, inline. Free
// dialogue turns go through the in-character prompt with the stored
// conversation history; everything else uses the scene narrator. The
// narrator degrades to a Fallback event when disabled, which prints
// nothing; the pre-authored text above already covers the turn.
func (c *CLI) narrate(input string, wasInDialogue bool, result types.Result) {
	if c.Narrator == nil || !c.Narrator.Enabled() {
		return
	}
	w := c.Engine.World
	if npc, ok := dialogueTurn(w, wasInDialogue); ok {
		c.printStream(c.Narrator.NarrateDialogue(context.Background(), npc, input, w.DialogueLog))
		return
	}
	if result.Context == nil {
		return
	}
	c.printStream(c.Narrator.Narrate(context.Background(), result.Context, narrative.Tone(w)))
}

// dialogueTurn reports whether the finished command was a spoken line in
// an ongoing conversation, with the NPC to voice. Entering and leaving a
// conversation stay with the scene narrator.
func dialogueTurn(w *types.World, wasInDialogue bool) (*types.Npc, bool) {
	if !wasInDialogue || w.Mode.Kind != types.ModeInDialogue {
		return nil, false
	}
	npc, ok := w.Npcs[w.Mode.NpcID]
	return npc, ok
}

// cmdRetry replays the stored narration context through the narrator.
func (c *CLI) cmdRetry() {
	w := c.Engine.World
	if w.LastContext == nil {
		c.printSystem("Nothing to retell yet.")
		return
	}
	if c.Narrator == nil || !c.Narrator.Enabled() {
		c.printSystem("Narration is disabled.")
		return
	}
	c.printStream(c.Narrator.Narrate(context.Background(), w.LastContext, narrative.Tone(w)))
}

func (c *CLI) printStream(ch <-chan narrative.Event) {
	streaming := false
	for ev := range ch {
		switch ev.Kind {
		case narrative.EventToken:
			streaming = true
			c.print(ev.Text)
		case narrative.EventComplete:
			c.printLine("")
		case narrative.EventFallback:
			if streaming {
				c.printLine("")
			}
		}
	}
}

func (c *CLI) printResult(result types.Result) {
	for _, line := range result.Lines {
		c.printLine(line.Text)
	}
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}

func (c *CLI) print(text string) {
	fmt.Fprint(c.Out, text)
}

func (c *CLI) printSystem(text string) {
	fmt.Fprintf(c.Out, "[%s]\n", text)
}
