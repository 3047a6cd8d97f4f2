package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nathoo/thornhold/engine"
	"github.com/nathoo/thornhold/engine/save"
	"github.com/nathoo/thornhold/narrative"
	"github.com/nathoo/thornhold/types"
)

// rawLine stores an unstyled output line with its classification,
// so we can re-wrap and re-style when the terminal is resized.
type rawLine struct {
	text    string
	kind    types.LineKind
	isInput bool // echoed player input
	stream  bool // finished narration stream text
}

// Model is the Bubble Tea model for the Thornhold TUI.
type Model struct {
	engine   *engine.Engine
	narrator *narrative.Narrator

	viewport viewport.Model
	input    textinput.Model
	history  *History

	rawLines []rawLine // accumulated output (unstyled, for re-wrapping)
	stream   string    // narration tokens accumulated for the current turn

	width    int
	height   int
	ready    bool
	quitting bool
	lastCmd  string
	saveDir  string
}

// gameOutputMsg carries engine output into the Update loop.
type gameOutputMsg struct {
	input string // echoed player input (empty for intro)
	lines []types.OutputLine
}

// narrationMsg carries one narration stream event plus the channel to
// keep listening on.
type narrationMsg struct {
	ev narrative.Event
	ch <-chan narrative.Event
	ok bool
}

// New creates a TUI model wired to the given engine.
func New(eng *engine.Engine, narrator *narrative.Narrator, saveDir string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.PromptStyle = styleInputPrompt

	return Model{
		engine:   eng,
		narrator: narrator,
		input:    ti,
		history:  NewHistory(100),
		saveDir:  saveDir,
	}
}

// Run starts the Bubble Tea program.
func Run(eng *engine.Engine, narrator *narrative.Narrator, saveDir string) error {
	m := New(eng, narrator, saveDir)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init returns the initial command that shows the title and first look.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.initialOutput())
}

func (m Model) initialOutput() tea.Cmd {
	return func() tea.Msg {
		lines := []types.OutputLine{
			{Text: m.engine.World.Title, Kind: types.LineSystem},
			{Text: "", Kind: types.LineSystem},
		}
		result := m.engine.Step("look")
		lines = append(lines, result.Lines...)
		return gameOutputMsg{lines: lines}
	}
}

// listenNarration waits for the next event on a narration stream.
func listenNarration(ch <-chan narrative.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		return narrationMsg{ev: ev, ch: ch, ok: ok}
	}
}

// Update handles messages (key presses, window resize, game output).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		vpHeight := m.height - 2 // 1 status bar + 1 input line
		if vpHeight < 1 {
			vpHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.viewport.KeyMap = viewportKeyMap()
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}

		m.refreshViewport()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "up":
			if prev, ok := m.history.Prev(); ok {
				m.input.SetValue(prev)
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if next, ok := m.history.Next(); ok {
				m.input.SetValue(next)
				m.input.CursorEnd()
			} else {
				m.input.SetValue("")
				m.history.ResetCursor()
			}
			return m, nil

		case "pgup", "pgdown":
			var vpCmd tea.Cmd
			m.viewport, vpCmd = m.viewport.Update(msg)
			return m, vpCmd
		}

	case gameOutputMsg:
		m = m.appendOutput(msg)

	case narrationMsg:
		return m.handleNarration(msg)
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	cmds = append(cmds, inputCmd)

	return m, tea.Batch(cmds...)
}

// handleEnter processes the submitted input line.
func (m Model) handleEnter() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	m.input.SetValue("")

	if input == "" {
		return m, nil
	}

	m.history.Push(input)
	m.history.ResetCursor()

	lower := strings.ToLower(input)
	if lower == "quit" || lower == "exit" || lower == "/quit" {
		m.quitting = true
		return m, tea.Quit
	}

	// "retry" retells the last narrated moment.
	if lower == "retry" {
		return m.handleRetry(input)
	}

	// "again" / "g" repeats the last game command.
	if lower == "again" || lower == "g" {
		if m.lastCmd == "" {
			m = m.appendOutput(gameOutputMsg{
				input: input,
				lines: []types.OutputLine{{Text: "Nothing to repeat.", Kind: types.LineSystem}},
			})
			return m, nil
		}
		input = m.lastCmd
	} else {
		m.lastCmd = input
	}

	// Persistence is a front-end concern; the engine never touches disk.
	if lines, handled := m.handlePersistence(input); handled {
		m = m.appendOutput(gameOutputMsg{input: input, lines: lines})
		return m, nil
	}

	wasInDialogue := m.engine.World.Mode.Kind == types.ModeInDialogue
	result := m.engine.Step(input)
	m = m.appendOutput(gameOutputMsg{input: input, lines: result.Lines})

	if cmd := m.narrationCmd(input, wasInDialogue, result); cmd != nil {
		m.stream = ""
		return m, cmd
	}
	return m, nil
}

// narrationCmd picks the stream for the finished turn: the in-character
// dialogue prompt while conversing, the scene narrator otherwise. Nil
// when there is nothing to narrate.
func (m Model) narrationCmd(input string, wasInDialogue bool, result types.Result) tea.Cmd {
	if m.narrator == nil || !m.narrator.Enabled() {
		return nil
	}
	w := m.engine.World
	if npc, ok := dialogueTurn(w, wasInDialogue); ok {
		return listenNarration(m.narrator.NarrateDialogue(context.Background(), npc, input, w.DialogueLog))
	}
	if result.Context == nil {
		return nil
	}
	return listenNarration(m.narrator.Narrate(context.Background(), result.Context, narrative.Tone(w)))
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

// handleRetry replays the stored narration context through the narrator.
func (m Model) handleRetry(input string) (tea.Model, tea.Cmd) {
	system := func(text string) []types.OutputLine {
		return []types.OutputLine{{Text: text, Kind: types.LineSystem}}
	}

	w := m.engine.World
	if w.LastContext == nil {
		m = m.appendOutput(gameOutputMsg{input: input, lines: system("Nothing to retell yet.")})
		return m, nil
	}
	if m.narrator == nil || !m.narrator.Enabled() {
		m = m.appendOutput(gameOutputMsg{input: input, lines: system("Narration is disabled.")})
		return m, nil
	}

	m = m.appendOutput(gameOutputMsg{input: input})
	ch := m.narrator.Narrate(context.Background(), w.LastContext, narrative.Tone(w))
	m.stream = ""
	return m, listenNarration(ch)
}

// handleNarration folds one stream event into the narration pane.
func (m Model) handleNarration(msg narrationMsg) (tea.Model, tea.Cmd) {
	if !msg.ok {
		// Stream closed: commit whatever arrived.
		if m.stream != "" {
			m.rawLines = append(m.rawLines, rawLine{text: m.stream, stream: true}, rawLine{})
			m.stream = ""
		}
		m.refreshViewport()
		return m, nil
	}

	switch msg.ev.Kind {
	case narrative.EventToken:
		m.stream += msg.ev.Text
		m.refreshViewport()
	case narrative.EventComplete, narrative.EventFallback:
		// Terminal events; keep draining until the channel closes.
	}
	return m, listenNarration(msg.ch)
}

// handlePersistence intercepts "save [slot]" and "load [slot]".
func (m *Model) handlePersistence(input string) ([]types.OutputLine, bool) {
	fields := strings.Fields(strings.ToLower(input))
	if len(fields) == 0 || len(fields) > 2 {
		return nil, false
	}
	slot := "quicksave"
	if len(fields) == 2 {
		slot = fields[1]
	}

	system := func(text string) []types.OutputLine {
		return []types.OutputLine{{Text: text, Kind: types.LineSystem}}
	}

	switch fields[0] {
	case "save":
		data, err := save.Save(m.engine.World)
		if err == nil {
			err = save.WriteSlot(m.saveDir, slot, data)
		}
		if err != nil {
			return system(fmt.Sprintf("Save failed: %v", err)), true
		}
		return system(fmt.Sprintf("Game saved to %s.", slot)), true

	case "load":
		sd, err := save.ReadSlot(m.saveDir, slot)
		if err != nil {
			return system(fmt.Sprintf("Load failed: %v", err)), true
		}
		m.engine.World = sd.World
		m.engine.RestoreRNG(sd.World.RNGSeed, sd.World.RNGPosition)
		lines := system(fmt.Sprintf("Game loaded from %s (turn %d).", slot, sd.Turn))
		lines = append(lines, m.engine.Step("look").Lines...)
		return lines, true

	case "saves":
		slots := save.ListSlots(m.saveDir)
		if len(slots) == 0 {
			return system("No saves yet."), true
		}
		return system("Saves: " + strings.Join(slots, ", ")), true
	}
	return nil, false
}

// appendOutput adds lines to the scrollback and refreshes the viewport.
func (m Model) appendOutput(msg gameOutputMsg) Model {
	if msg.input != "" {
		m.rawLines = append(m.rawLines, rawLine{
			text: "> " + msg.input, isInput: true,
		})
	}

	for _, line := range msg.lines {
		m.rawLines = append(m.rawLines, rawLine{text: line.Text, kind: line.Kind})
	}

	// Blank line separator between turns.
	m.rawLines = append(m.rawLines, rawLine{})

	m.refreshViewport()

	return m
}

// refreshViewport re-wraps and re-styles all raw lines at the current
// width, including the in-flight narration stream.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}

	width := m.width
	if width < 10 {
		width = 10
	}

	var styled []string
	for _, rl := range m.rawLines {
		if rl.text == "" {
			styled = append(styled, "")
			continue
		}

		wrapped := wordWrap(rl.text, width)

		switch {
		case rl.isInput:
			styled = append(styled, stylePlayerInput.Render(wrapped))
		case rl.stream:
			styled = append(styled, styleStream.Render(wrapped))
		default:
			styled = append(styled, renderLine(wrapped, rl.kind))
		}
	}

	if m.stream != "" {
		styled = append(styled, styleStream.Render(wordWrap(m.stream, width)))
	}

	m.viewport.SetContent(strings.Join(styled, "\n"))
	m.viewport.GotoBottom()
}

// wordWrap wraps text to fit within the given width, breaking at word
// boundaries.
func wordWrap(text string, width int) string {
	if width <= 0 || len(text) <= width {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		wLen := len(word)

		if i == 0 {
			result.WriteString(word)
			lineLen = wLen
			continue
		}

		if lineLen+1+wLen > width {
			result.WriteString("\n")
			result.WriteString(word)
			lineLen = wLen
		} else {
			result.WriteString(" ")
			result.WriteString(word)
			lineLen += 1 + wLen
		}
	}

	return result.String()
}

// View renders the full TUI layout: viewport + status bar + input.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	return m.viewport.View() + "\n" + m.renderStatusBar() + "\n" + m.input.View()
}

// viewportKeyMap returns a viewport keymap with Up/Down disabled
// (we use those for input history).
func viewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		Up:           key.NewBinding(key.WithDisabled()),
		Down:         key.NewBinding(key.WithDisabled()),
	}
}
