package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/cutline/internal/core"
	"github.com/tessro/cutline/internal/tui/styles"
)

// Strip displays the scenes side by side, each as wide as its share of the timeline
type Strip struct{}

// NewStrip creates a new Strip component
func NewStrip() *Strip {
	return &Strip{}
}

// Render renders the timeline panel
func (s *Strip) Render(scenes []core.Scene, currentFrame, selected, width, height int, focused bool) string {
	title := styles.PanelTitle("Timeline", focused)

	var content string
	if len(scenes) == 0 {
		content = styles.Muted.Render("No scenes")
	} else {
		inner := width - 4
		widths := Widths(scenes, inner)
		content = lipgloss.JoinVertical(lipgloss.Left,
			s.renderBlocks(scenes, widths),
			s.renderMarkers(scenes, widths, selected),
			s.renderPlayhead(scenes, widths, currentFrame),
		)
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

func (s *Strip) renderBlocks(scenes []core.Scene, widths []int) string {
	var b strings.Builder
	for i, scene := range scenes {
		b.WriteString(styles.SceneBlock(scene.Color, widths[i], truncate(scene.Name, widths[i])))
	}
	return b.String()
}

func (s *Strip) renderMarkers(scenes []core.Scene, widths []int, selected int) string {
	var b strings.Builder
	for i := range scenes {
		if i == selected {
			b.WriteString(styles.Highlight.Render(strings.Repeat("▔", widths[i])))
		} else {
			b.WriteString(strings.Repeat(" ", widths[i]))
		}
	}
	return b.String()
}

func (s *Strip) renderPlayhead(scenes []core.Scene, widths []int, frame int) string {
	col := PlayheadColumn(scenes, widths, frame)
	if col < 0 {
		return ""
	}
	return strings.Repeat(" ", col) + styles.Playhead.Render("▲")
}

// Widths splits width columns across scenes in proportion to their lengths.
// Every scene gets at least one column; rounding leftovers go to the last scene.
func Widths(scenes []core.Scene, width int) []int {
	widths := make([]int, len(scenes))
	if len(scenes) == 0 {
		return widths
	}
	total := core.TotalFrames(scenes)
	if width < len(scenes) {
		width = len(scenes)
	}
	used := 0
	for i, sc := range scenes {
		w := 1
		if total > 0 {
			w = sc.Length * width / total
		}
		if w < 1 {
			w = 1
		}
		widths[i] = w
		used += w
	}
	if used < width {
		widths[len(widths)-1] += width - used
	}
	return widths
}

// PlayheadColumn returns the strip column under frame, or -1 when no scene owns it.
func PlayheadColumn(scenes []core.Scene, widths []int, frame int) int {
	scene, local, ok := core.Locate(scenes, frame)
	if !ok {
		return -1
	}
	col := 0
	for i := 0; i < scene.Index; i++ {
		col += widths[i]
	}
	w := widths[scene.Index]
	return col + local*w/scene.Length
}

// truncate shortens s to at most n runes, adding "…" if truncated.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 0 {
		return ""
	}
	if n == 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
