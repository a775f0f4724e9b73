// Package timeline owns the editable scene timeline: the scene sequence, the
// playhead and the undo/redo history. Every structural edit goes through a
// Command so it can be reverted, and every committed edit re-anchors the
// playhead on the scene it was watching.
//
// An Engine is not safe for concurrent use. Callers that drive it from more
// than one goroutine must serialize access themselves.
package timeline

import (
	"fmt"
	"log/slog"

	"github.com/tessro/cutline/internal/core"
	cuterrors "github.com/tessro/cutline/internal/errors"
)

// DefaultSceneLength is the length given to newly added scenes, in frames.
const DefaultSceneLength = 30

// DefaultScenes returns the starting timeline: three scenes of 30, 60 and 30 frames.
func DefaultScenes() []core.Scene {
	return core.Recalculate([]core.Scene{
		{Name: core.SceneName(1), Color: DefaultColors[0], Length: 30},
		{Name: core.SceneName(2), Color: DefaultColors[1], Length: 60},
		{Name: core.SceneName(3), Color: DefaultColors[2], Length: 30},
	})
}

// State is a point-in-time copy of everything an Engine exposes.
type State struct {
	Scenes       []core.Scene       `json:"scenes"`
	TotalFrames  int                `json:"total_frames"`
	Playback     core.PlaybackState `json:"playback"`
	History      []string           `json:"history"`
	HistoryIndex int                `json:"history_index"`
	CanUndo      bool               `json:"can_undo"`
	CanRedo      bool               `json:"can_redo"`
}

// Engine holds the timeline state and is the only way to change it.
type Engine struct {
	scenes        []core.Scene
	totalFrames   int
	playback      core.PlaybackState
	history       *History
	palette       *Palette
	minLength     int
	defaultLength int
	logger        *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithScenes sets the initial scenes. Index and StartFrame are recomputed.
func WithScenes(scenes []core.Scene) Option {
	return func(e *Engine) {
		e.scenes = core.Recalculate(scenes)
	}
}

// WithFPS sets the playback rate.
func WithFPS(fps float64) Option {
	return func(e *Engine) {
		if fps > 0 {
			e.playback.FPS = fps
		}
	}
}

// WithMinSceneLength sets the shortest length a resize may produce.
func WithMinSceneLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minLength = n
		}
	}
}

// WithDefaultSceneLength sets the length of newly added scenes.
func WithDefaultSceneLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.defaultLength = n
		}
	}
}

// WithPalette sets the palette new scene colors are drawn from.
func WithPalette(p *Palette) Option {
	return func(e *Engine) {
		if p != nil {
			e.palette = p
		}
	}
}

// WithHistoryLimit caps the number of history entries. 0 means unlimited.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		e.history = NewHistory(n)
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with the default timeline unless WithScenes is given.
func New(opts ...Option) *Engine {
	e := &Engine{
		scenes:        DefaultScenes(),
		playback:      core.PlaybackState{FPS: core.DefaultFPS},
		history:       NewHistory(0),
		palette:       NewPalette(DefaultColors, nil),
		minLength:     core.DefaultMinSceneLength,
		defaultLength: DefaultSceneLength,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.totalFrames = core.TotalFrames(e.scenes)
	return e
}

// Scenes returns a copy of the scene sequence.
func (e *Engine) Scenes() []core.Scene {
	return core.Clone(e.scenes)
}

// TotalFrames returns the summed length of all scenes.
func (e *Engine) TotalFrames() int {
	return e.totalFrames
}

// Playback returns the playhead state.
func (e *Engine) Playback() core.PlaybackState {
	return e.playback
}

// MinSceneLength returns the shortest length a resize may produce.
func (e *Engine) MinSceneLength() int {
	return e.minLength
}

// History returns the description of every recorded command.
func (e *Engine) History() []string {
	return e.history.Descriptions()
}

// HistoryIndex returns the position of the most recently applied command.
func (e *Engine) HistoryIndex() int {
	return e.history.Index()
}

// CanUndo reports whether Undo would change anything.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would change anything.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// SceneAtFrame returns the scene owning frame and the frame's offset into it.
func (e *Engine) SceneAtFrame(frame int) (core.Scene, int, bool) {
	return core.Locate(e.scenes, frame)
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	return State{
		Scenes:       e.Scenes(),
		TotalFrames:  e.totalFrames,
		Playback:     e.playback,
		History:      e.history.Descriptions(),
		HistoryIndex: e.history.Index(),
		CanUndo:      e.history.CanUndo(),
		CanRedo:      e.history.CanRedo(),
	}
}

// NewAddScene builds the command AddScene would execute. The scene's name
// and color are fixed here, so redoing it later yields the same scene.
func (e *Engine) NewAddScene() Command {
	return AddScene{Scene: core.Scene{
		Name:   core.SceneName(len(e.scenes) + 1),
		Color:  e.palette.Pick(),
		Length: e.defaultLength,
		Index:  len(e.scenes),
	}}
}

// NewReorder builds a command moving the scene at from to position to.
func (e *Engine) NewReorder(from, to int) (Command, error) {
	if from < 0 || from >= len(e.scenes) {
		return nil, fmt.Errorf("move scene %d: %w", from, cuterrors.ErrSceneNotFound)
	}
	if to < 0 || to >= len(e.scenes) {
		return nil, fmt.Errorf("move to position %d: %w", to, cuterrors.ErrSceneNotFound)
	}
	return Reorder{From: from, To: to, Name: e.scenes[from].Name}, nil
}

// NewResize builds a command setting the length of the scene at index.
// Lengths below the minimum are raised to it.
func (e *Engine) NewResize(index, length int) (Command, error) {
	if index < 0 || index >= len(e.scenes) {
		return nil, fmt.Errorf("resize scene %d: %w", index, cuterrors.ErrSceneNotFound)
	}
	if length < e.minLength {
		e.logger.Debug("clamping scene length", "requested", length, "min", e.minLength)
		length = e.minLength
	}
	s := e.scenes[index]
	return Resize{Index: index, OldLength: s.Length, NewLength: length, Name: s.Name}, nil
}

// AddScene appends a new scene and returns it.
func (e *Engine) AddScene() (core.Scene, error) {
	cmd := e.NewAddScene()
	if err := e.Execute(cmd); err != nil {
		return core.Scene{}, err
	}
	return e.scenes[len(e.scenes)-1], nil
}

// ReorderScenes moves the scene at from to position to.
func (e *Engine) ReorderScenes(from, to int) error {
	cmd, err := e.NewReorder(from, to)
	if err != nil {
		return err
	}
	return e.Execute(cmd)
}

// ResizeScene sets the length of the scene at index.
func (e *Engine) ResizeScene(index, length int) error {
	cmd, err := e.NewResize(index, length)
	if err != nil {
		return err
	}
	return e.Execute(cmd)
}

// Execute applies cmd and records it, discarding any redoable entries.
func (e *Engine) Execute(cmd Command) error {
	a := anchorAt(e.scenes, e.playback.CurrentFrame)
	next, err := cmd.Apply(e.scenes)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Description(), err)
	}
	e.history.Push(cmd)
	e.commit(next, a)
	e.logger.Debug("executed", "command", cmd.Description(), "history_index", e.history.Index())
	return nil
}

// Undo reverts the most recently applied command. It reports false when
// there is nothing to undo.
func (e *Engine) Undo() bool {
	cmd, ok := e.history.Current()
	if !ok {
		return false
	}
	a := anchorAt(e.scenes, e.playback.CurrentFrame)
	next, err := cmd.Revert(e.scenes)
	if err != nil {
		e.logger.Error("undo failed", "command", cmd.Description(), "err", err)
		return false
	}
	e.history.Back()
	e.commit(next, a)
	e.logger.Debug("undone", "command", cmd.Description(), "history_index", e.history.Index())
	return true
}

// Redo re-applies the next undone command. It reports false when there is
// nothing to redo.
func (e *Engine) Redo() bool {
	cmd, ok := e.history.Next()
	if !ok {
		return false
	}
	a := anchorAt(e.scenes, e.playback.CurrentFrame)
	next, err := cmd.Apply(e.scenes)
	if err != nil {
		e.logger.Error("redo failed", "command", cmd.Description(), "err", err)
		return false
	}
	e.history.Forward()
	e.commit(next, a)
	e.logger.Debug("redone", "command", cmd.Description(), "history_index", e.history.Index())
	return true
}

// SetCurrentFrame moves the playhead, clamped to the timeline. It is not
// recorded in history.
func (e *Engine) SetCurrentFrame(frame int) {
	e.playback.CurrentFrame = core.ClampFrame(frame, e.totalFrames)
}

// SetPlaying starts or pauses playback. It is not recorded in history.
func (e *Engine) SetPlaying(playing bool) {
	e.playback.IsPlaying = playing
}

// TogglePlaying flips between playing and paused and returns the new state.
func (e *Engine) TogglePlaying() bool {
	e.playback.IsPlaying = !e.playback.IsPlaying
	return e.playback.IsPlaying
}

// Advance moves the playhead one frame forward, wrapping to 0 past the end.
// It reports whether the playhead wrapped.
func (e *Engine) Advance() bool {
	next := core.NextFrame(e.playback.CurrentFrame, e.totalFrames)
	wrapped := next <= e.playback.CurrentFrame && e.totalFrames > 0
	e.playback.CurrentFrame = next
	return wrapped
}

func (e *Engine) commit(scenes []core.Scene, a anchor) {
	e.scenes = scenes
	e.totalFrames = core.TotalFrames(scenes)
	e.playback.CurrentFrame = reconcile(a, e.scenes, e.totalFrames, e.logger)
	e.playback.IsPlaying = false
}
