package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tessro/cutline/internal/tui"
)

var (
	uiAutoplay bool
	uiTheme    string
)

var tuiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive timeline editor",
	Long: `Launch the interactive terminal editor.

The editor shows:
  • Canvas - the scene under the playhead
  • Transport - play state, timecode and progress
  • Timeline - every scene, sized by length, with the playhead
  • History - edits, with the undo cursor

Keyboard shortcuts:
  q, Ctrl+C    Quit
  ?            Help
  Space        Play/Pause
  ←/→          Step one frame
  Home/End     First/last frame
  g            Jump to frame
  Tab          Select next scene
  a            Add scene
  [ / ]        Shrink/grow selected scene
  < / >        Move selected scene
  u / Ctrl+R   Undo/redo
  y            Copy position`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&uiAutoplay, "play", false, "start playing immediately")
	tuiCmd.Flags().StringVar(&uiTheme, "theme", "", "color theme (auto, dark, light)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Logs would corrupt the alternate screen, so only a log file is honored.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	theme := cfg.TUI.Theme
	if uiTheme != "" {
		theme = uiTheme
	}

	engine := newEngine(logger)
	logger.Info("editor started", "scenes", len(engine.Scenes()), "total_frames", engine.TotalFrames())

	return tui.Run(engine, tui.Options{
		Timecode: cfg.Playback.Timecode,
		Autoplay: cfg.Playback.Autoplay || uiAutoplay,
		Theme:    theme,
		Logger:   logger,
	})
}
