// Package tui provides the Bubble Tea terminal front end: a scrollback
// viewport, status bar, input line, and a streaming narration pane.
package tui

// History keeps recently submitted commands for up/down recall in the
// input line.
type History struct {
	items []string
	limit int
	pos   int // -1 when not browsing
}

// NewHistory creates an empty history holding at most limit commands.
func NewHistory(limit int) *History {
	return &History{limit: limit, pos: -1}
}

// Push records a submitted command. A repeat of the previous command is
// not stored, and the oldest entry falls off past the limit.
func (h *History) Push(cmd string) {
	if n := len(h.items); n > 0 && h.items[n-1] == cmd {
		return
	}
	h.items = append(h.items, cmd)
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
}

// Prev steps toward older entries, entering browse mode at the newest.
// Reports false only when the history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.items) == 0 {
		return "", false
	}
	switch {
	case h.pos < 0:
		h.pos = len(h.items) - 1
	case h.pos > 0:
		h.pos--
	}
	return h.items[h.pos], true
}

// Next steps toward newer entries. Stepping past the newest leaves
// browse mode and reports false so the caller can restore fresh input.
func (h *History) Next() (string, bool) {
	if h.pos < 0 {
		return "", false
	}
	h.pos++
	if h.pos >= len(h.items) {
		h.pos = -1
		return "", false
	}
	return h.items[h.pos], true
}

// ResetCursor leaves browse mode.
func (h *History) ResetCursor() {
	h.pos = -1
}
