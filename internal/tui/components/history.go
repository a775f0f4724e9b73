package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/cutline/internal/tui/styles"
)

// History displays the edit history with the undo cursor
type History struct{}

// NewHistory creates a new History component
func NewHistory() *History {
	return &History{}
}

// Render renders the history panel. Entries after cursor are the ones redo
// would re-apply.
func (h *History) Render(entries []string, cursor, width, height int, focused bool) string {
	title := styles.PanelTitle("History", focused)

	var content string
	if len(entries) == 0 {
		content = styles.Muted.Render("No edits yet")
	} else {
		content = h.renderHistory(entries, cursor, width-4, height-4)
	}

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		content,
	))
}

func (h *History) renderHistory(entries []string, cursor, width, maxLines int) string {
	if maxLines < 1 {
		maxLines = 1
	}

	// Keep the cursor in view, newest entries at the bottom
	start := 0
	if len(entries) > maxLines {
		start = cursor - maxLines + 2
		if start < 0 {
			start = 0
		}
		if start > len(entries)-maxLines {
			start = len(entries) - maxLines
		}
	}
	end := start + maxLines
	if end > len(entries) {
		end = len(entries)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		text := truncate(fmt.Sprintf("%d. %s", i+1, entries[i]), width-2)
		switch {
		case i == cursor:
			lines = append(lines, styles.Highlight.Render("› "+text))
		case i > cursor:
			lines = append(lines, styles.Dim.Render("  "+text))
		default:
			lines = append(lines, "  "+text)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
