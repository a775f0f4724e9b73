package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/cutline/internal/render"
	"github.com/tessro/cutline/internal/tui/styles"
)

// Canvas shows the scene under the playhead as a solid color block.
type Canvas struct {
	swatch *render.Swatch
}

// NewCanvas creates a canvas over swatch.
func NewCanvas(swatch *render.Swatch) *Canvas {
	return &Canvas{swatch: swatch}
}

// Render renders the canvas panel
func (c *Canvas) Render(width, height int, focused bool) string {
	title := styles.PanelTitle("Canvas", focused)

	panel := styles.Panel(focused).
		Width(width).
		Height(height)

	return panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		c.swatch.View(width-2, height-2),
	))
}
