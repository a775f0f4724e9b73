package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/timeline"
)

var editCmd = &cobra.Command{
	Use:   "edit <op>...",
	Short: "Apply edits to the configured timeline",
	Long: `Apply a sequence of edits to the configured timeline and print the result.

The configuration file is not modified. Operations run left to right:
  add                    Append a new scene
  move:FROM:TO           Move the scene at index FROM to index TO
  resize:INDEX:LENGTH    Set a scene's length in frames
  seek:FRAME             Move the playhead
  play, pause            Start or stop playback
  undo, redo             Step through the edit history

Examples:
  cutline edit add resize:3:45 move:3:0
  cutline edit seek:40 resize:1:20 undo --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

// Op is one parsed edit operation.
type Op struct {
	Name string
	Args []int
}

func (o Op) String() string {
	if len(o.Args) == 0 {
		return o.Name
	}
	parts := []string{o.Name}
	for _, a := range o.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, ":")
}

var opArity = map[string]int{
	"add":    0,
	"move":   2,
	"resize": 2,
	"seek":   1,
	"play":   0,
	"pause":  0,
	"undo":   0,
	"redo":   0,
}

// ParseOp parses a single "name[:arg...]" operation.
func ParseOp(s string) (Op, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	name := strings.ToLower(parts[0])
	arity, ok := opArity[name]
	if !ok {
		return Op{}, fmt.Errorf("%w: unknown operation %q", cuterrors.ErrInvalidEdit, s)
	}
	if len(parts)-1 != arity {
		return Op{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", cuterrors.ErrInvalidEdit, name, arity, len(parts)-1)
	}

	op := Op{Name: name}
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Op{}, fmt.Errorf("%w: %s: %q is not a number", cuterrors.ErrInvalidEdit, name, p)
		}
		op.Args = append(op.Args, n)
	}
	return op, nil
}

// ParseOps parses every operation, stopping at the first invalid one.
func ParseOps(args []string) ([]Op, error) {
	ops := make([]Op, 0, len(args))
	for _, a := range args {
		op, err := ParseOp(a)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// ApplyOp runs op against engine. Undo and redo with nothing to step over
// are errors so scripts notice them.
func ApplyOp(engine *timeline.Engine, op Op) error {
	switch op.Name {
	case "add":
		_, err := engine.AddScene()
		return err
	case "move":
		return engine.ReorderScenes(op.Args[0], op.Args[1])
	case "resize":
		return engine.ResizeScene(op.Args[0], op.Args[1])
	case "seek":
		engine.SetCurrentFrame(op.Args[0])
	case "play":
		if engine.TotalFrames() == 0 {
			return cuterrors.ErrEmptyTimeline
		}
		engine.SetPlaying(true)
	case "pause":
		engine.SetPlaying(false)
	case "undo":
		if !engine.Undo() {
			return fmt.Errorf("%w: nothing to undo", cuterrors.ErrHistory)
		}
	case "redo":
		if !engine.Redo() {
			return fmt.Errorf("%w: nothing to redo", cuterrors.ErrHistory)
		}
	default:
		return fmt.Errorf("%w: unknown operation %q", cuterrors.ErrInvalidEdit, op.Name)
	}
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ops, err := ParseOps(args)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	engine := newEngine(logger)
	for i, op := range ops {
		if err := ApplyOp(engine, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op, err)
		}
		logger.Debug("applied", "op", op.String(), "total_frames", engine.TotalFrames())
	}

	state := engine.State()
	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(state)
	}
	printState(state)
	return nil
}
