package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/playback"
	"github.com/tessro/cutline/internal/render"
)

var (
	playLoops     int
	playFrom      int
	playRender    bool
	playFrames    bool
	playNoEmoji   bool
	playTimestamp bool
	playFormat    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the timeline in the terminal",
	Long: `Play the configured timeline in real time and print what happens.

Events printed:
  - Scene changes (the playhead entered a new scene)
  - Loops (the playhead wrapped back to frame 0)
  - Frames (with --frames, one line per frame)

With --render, the scene under the playhead is also drawn as a colored line
on every frame.

Template fields for --format:
  {{.Type}} {{.Emoji}} {{.Time}} {{.Frame}} {{.LocalFrame}} {{.Timecode}}
  {{.Scene}} {{.Color}} {{.Index}} {{.PreviousScene}} {{.Loops}}

Examples:
  cutline play
  cutline play --loops 0 --render
  cutline play --format '{{.Timecode}} {{.Scene}}'`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&playLoops, "loops", "n", 1, "stop after this many loops (0 plays forever)")
	playCmd.Flags().IntVar(&playFrom, "from", 0, "start frame")
	playCmd.Flags().BoolVarP(&playRender, "render", "r", false, "draw the current scene on every frame")
	playCmd.Flags().BoolVar(&playFrames, "frames", false, "print an event for every frame")
	playCmd.Flags().BoolVar(&playNoEmoji, "no-emoji", false, "disable emoji output")
	playCmd.Flags().BoolVarP(&playTimestamp, "timestamp", "t", false, "show timestamps")
	playCmd.Flags().StringVarP(&playFormat, "format", "f", "", "custom format template")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playFormat != "" {
		if err := playback.ParseTemplate(playFormat); err != nil {
			return fmt.Errorf("invalid --format: %w", err)
		}
	}
	if playLoops < 0 {
		return fmt.Errorf("%w: --loops must be 0 or more", cuterrors.ErrInvalidEdit)
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
	engine.SetCurrentFrame(playFrom)
	engine.SetPlaying(true)

	formatter := playback.NewFormatter(
		playback.WithEmoji(!playNoEmoji),
		playback.WithTimestamp(playTimestamp),
		playback.WithTimecode(cfg.Playback.Timecode),
		playback.WithTemplate(playFormat),
	)

	opts := []playback.Option{
		playback.WithFrameEvents(playFrames),
		playback.WithLogger(logger),
	}
	if playRender {
		line := render.NewLine(os.Stdout, render.WithNoColor(color.NoColor || JSONOutput()))
		opts = append(opts, playback.WithRenderer(render.Dedupe(line)))
	}
	clock := playback.NewClock(engine, opts...)

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := clock.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		defer clock.Stop()
		for event := range clock.Events() {
			if err := printEvent(os.Stdout, formatter, event); err != nil {
				return err
			}
			if event.Type == playback.EventLoop && playLoops > 0 && event.Loops >= playLoops {
				clock.Stop()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	pb := engine.Playback()
	logger.Debug("playback stopped", "frame", pb.CurrentFrame)
	return nil
}

func printEvent(w io.Writer, f *playback.Formatter, e playback.Event) error {
	if !JSONOutput() {
		_, err := fmt.Fprintln(w, f.Format(e))
		return err
	}

	out := map[string]interface{}{
		"type":        playback.EventTypeName(e.Type),
		"timestamp":   e.Timestamp,
		"frame":       e.Frame,
		"timecode":    playback.Timecode(e.Frame, e.FPS, cfg.Playback.Timecode),
		"local_frame": e.LocalFrame,
	}
	if e.Scene != nil {
		out["scene"] = e.Scene
	}
	if e.Previous != nil {
		out["previous_scene"] = e.Previous.Name
	}
	if e.Type == playback.EventLoop {
		out["loops"] = e.Loops
	}
	return json.NewEncoder(w).Encode(out)
}
