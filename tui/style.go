package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/nathoo/thornhold/types"
)

// Styles used throughout the TUI.
var (
	styleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Bold(true)

	styleInputPrompt = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleNarration = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	styleCombat = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	styleDialogue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))

	stylePlayerInput = lipgloss.NewStyle().
				Foreground(lipgloss.Color("34"))

	styleStream = lipgloss.NewStyle().
			Foreground(lipgloss.Color("105")).
			Italic(true)
)

// renderLine applies the style for an engine output line.
func renderLine(text string, kind types.LineKind) string {
	switch kind {
	case types.LineSystem:
		return styleSystem.Render(text)
	case types.LineError:
		return styleError.Render(text)
	case types.LineCombat:
		return styleCombat.Render(text)
	case types.LineDialogue:
		return styleDialogue.Render(text)
	case types.LineInput:
		return stylePlayerInput.Render(text)
	default:
		return styleNarration.Render(text)
	}
}
