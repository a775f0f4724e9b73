package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Swatch is an in-memory Renderer that paints the current scene as a solid
// lipgloss block. The TUI draws into it on every frame and reads View back.
type Swatch struct {
	ready   bool
	cleared bool
	name    string
	color   string
	local   int
	renders int
}

// NewSwatch returns a cleared swatch.
func NewSwatch() *Swatch {
	return &Swatch{cleared: true}
}

// Init marks the swatch ready.
func (s *Swatch) Init() error {
	s.ready = true
	return nil
}

// RenderScene records the scene to paint.
func (s *Swatch) RenderScene(name, color string, localFrame int) error {
	s.cleared = false
	s.name, s.color, s.local = name, color, localFrame
	s.renders++
	return nil
}

// Clear blanks the swatch.
func (s *Swatch) Clear() error {
	s.cleared = true
	s.name, s.color, s.local = "", "", 0
	s.renders++
	return nil
}

// Renders reports how many requests reached the swatch.
func (s *Swatch) Renders() int {
	return s.renders
}

// Scene returns the scene last painted and whether one is showing.
func (s *Swatch) Scene() (name, color string, localFrame int, ok bool) {
	return s.name, s.color, s.local, !s.cleared
}

// View renders the swatch as a width x height block.
func (s *Swatch) View(width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	block := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if !s.ready || s.cleared {
		return block.
			Foreground(lipgloss.Color("#6B7280")).
			Render("no scene")
	}

	return block.
		Background(lipgloss.Color(s.color)).
		Foreground(lipgloss.Color(contrast(s.color))).
		Bold(true).
		Render(fmt.Sprintf("%s\nframe %d", s.name, s.local))
}

// contrast picks black or white text for a #RRGGBB background.
func contrast(hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return "#F9FAFB"
	}
	// Rec. 601 luma
	if 299*r+587*g+114*b > 128*1000 {
		return "#111827"
	}
	return "#F9FAFB"
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return 0, 0, 0, false
	}
	return r, g, b, true
}
