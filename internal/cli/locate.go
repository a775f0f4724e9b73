package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/playback"
)

var locateCmd = &cobra.Command{
	Use:   "locate <frame>",
	Short: "Show which scene owns a frame",
	Long: `Show the scene that owns a global frame and the frame's offset into it.

Examples:
  cutline locate 45
  cutline locate 45 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	frame, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid frame %q: %w", args[0], err)
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	engine := newEngine(logger)
	if engine.TotalFrames() == 0 {
		return cuterrors.ErrEmptyTimeline
	}
	scene, local, ok := engine.SceneAtFrame(frame)
	if !ok {
		return cuterrors.WithSuggestion(
			fmt.Errorf("frame %d: %w", frame, cuterrors.ErrSceneNotFound),
			fmt.Sprintf("The timeline has frames 0 to %d", engine.TotalFrames()-1),
		)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"frame":       frame,
			"scene":       scene,
			"local_frame": local,
		})
	}

	fps := engine.Playback().FPS
	fmt.Printf("Frame %d (%s) is in %s\n", frame,
		playback.Timecode(frame, fps, cfg.Playback.Timecode), scene.Name)
	fmt.Printf("  index:  %d\n", scene.Index)
	fmt.Printf("  local:  %d of %d\n", local, scene.Length)
	fmt.Printf("  color:  %s\n", swatch(scene.Color))
	return nil
}
