package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/cutline/internal/playback"
	"github.com/tessro/cutline/internal/timeline"
	"github.com/tessro/cutline/internal/tui/styles"
)

// Transport displays the playhead position and play state
type Transport struct {
	timecode string
}

// NewTransport creates a Transport showing positions in the given timecode mode.
func NewTransport(timecode string) *Transport {
	return &Transport{timecode: timecode}
}

// Render renders the transport panel
func (t *Transport) Render(state timeline.State, width, height int, focused bool) string {
	title := styles.PanelTitle("Transport", focused)

	var content string
	if state.TotalFrames == 0 {
		content = styles.Muted.Render("Timeline is empty. Press a to add a scene")
	} else {
		content = t.renderPosition(state, width-4)
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

func (t *Transport) renderPosition(state timeline.State, width int) string {
	pb := state.Playback

	sceneLine := styles.Muted.Render("no scene")
	for _, s := range state.Scenes {
		if s.Contains(pb.CurrentFrame) {
			sceneLine = fmt.Sprintf("%s %s",
				styles.Title.Render(s.Name),
				styles.Dim.Render(fmt.Sprintf("+%d/%d", pb.CurrentFrame-s.StartFrame, s.Length)))
			break
		}
	}

	current := playback.Timecode(pb.CurrentFrame, pb.FPS, t.timecode)
	total := playback.Timecode(state.TotalFrames-1, pb.FPS, t.timecode)

	progressWidth := width - len(current) - len(total) - 2
	if progressWidth < 10 {
		progressWidth = 10
	}
	progress := fmt.Sprintf("%s %s %s", current, styles.ProgressBar(pb.Progress(state.TotalFrames), progressWidth), total)

	info := styles.Muted.Render(fmt.Sprintf("%g fps · %d frames · %d scenes",
		pb.FPS, state.TotalFrames, len(state.Scenes)))

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.StatusIcon(pb.IsPlaying)+" "+sceneLine,
		"",
		progress,
		"",
		info,
	)
}
