package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathoo/thornhold/engine/state"
	"github.com/nathoo/thornhold/types"
)

// modeLabel renders the current game mode for the status bar.
func modeLabel(w *types.World) string {
	switch w.Mode.Kind {
	case types.ModeInCombat:
		return "Combat: " + state.NpcName(w, w.Mode.EnemyID)
	case types.ModeInDialogue:
		return "Talking: " + state.NpcName(w, w.Mode.NpcID)
	case types.ModeGameOver:
		return "Game Over"
	default:
		return "Exploring"
	}
}

// renderStatusBar produces a full-width inverted status line showing
// health, location, mode, and turn count.
func (m Model) renderStatusBar() string {
	w := m.engine.World

	left := fmt.Sprintf(" HP %d/%d | %s | %s",
		w.Player.Health, w.Player.MaxHealth,
		state.LocationName(w, w.Player.Location),
		modeLabel(w))
	right := fmt.Sprintf("T:%d ", w.Player.TurnsElapsed)

	// Show inventory count if it fits.
	if n := len(w.Player.Inventory); n > 0 {
		candidate := fmt.Sprintf("Inv: %d/%d | T:%d ", n, w.Player.MaxInventory, w.Player.TurnsElapsed)
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return styleStatusBar.Width(m.width).Render(bar)
}
