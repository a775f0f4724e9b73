package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/tessro/cutline/internal/playback"
	"github.com/tessro/cutline/internal/render"
	"github.com/tessro/cutline/internal/timeline"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the configured timeline",
	Long:  `Shows every scene of the configured timeline with its position and length.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	state := newEngine(logger).State()

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(state)
	}
	printState(state)
	return nil
}

// printState writes the scene table and totals to stdout.
func printState(state timeline.State) {
	if len(state.Scenes) == 0 {
		fmt.Println("Timeline is empty")
		return
	}

	pb := state.Playback
	mode := cfg.Playback.Timecode

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", "#", "SCENE", "START", "LENGTH", "END", "COLOR")
	for _, s := range state.Scenes {
		tbl.AddRow(
			StatusIcon(s.Contains(pb.CurrentFrame)),
			s.Index,
			TruncateString(s.Name, 24),
			playback.Timecode(s.StartFrame, pb.FPS, mode),
			humanize.Comma(int64(s.Length)),
			playback.Timecode(s.EndFrame()-1, pb.FPS, mode),
			swatch(s.Color),
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	fmt.Println()
	fmt.Printf("%s frames (%s) at %g fps\n",
		humanize.Comma(int64(state.TotalFrames)),
		FormatFrames(state.TotalFrames, pb.FPS),
		pb.FPS)
	fmt.Printf("Playhead: %s %s (%s)\n",
		playback.Timecode(pb.CurrentFrame, pb.FPS, mode),
		FormatProgress(pb.CurrentFrame, state.TotalFrames, 20),
		playState(pb.IsPlaying))
	if line := historySummary(state); line != "" {
		fmt.Println(line)
	}
}

// historySummary describes the undo cursor, or "" with no history.
func historySummary(state timeline.State) string {
	if len(state.History) == 0 {
		return ""
	}
	return fmt.Sprintf("History: %d of %s", state.HistoryIndex+1,
		english.Plural(len(state.History), "edit", "edits"))
}

func playState(playing bool) string {
	if playing {
		return "playing"
	}
	return "paused"
}

// swatch renders a color token next to a block in the nearest terminal color.
func swatch(hex string) string {
	return color.New(render.Nearest(hex)).Sprint("■") + " " + hex
}

// FormatFrames formats a frame count at fps as a human duration.
func FormatFrames(frames int, fps float64) string {
	if fps <= 0 {
		return "0s"
	}
	d := time.Duration(float64(frames) / fps * float64(time.Second))
	return FormatDuration(int(d.Round(time.Second) / time.Second))
}
