package timeline

import (
	"fmt"

	"github.com/tessro/cutline/internal/core"
	cuterrors "github.com/tessro/cutline/internal/errors"
)

// CommandKind identifies a command variant.
type CommandKind string

const (
	KindAddScene CommandKind = "add_scene"
	KindReorder  CommandKind = "reorder"
	KindResize   CommandKind = "resize"
)

// Command is a reversible structural edit. Apply and Revert are pure: they
// return a new recalculated sequence and never modify their input.
type Command interface {
	Kind() CommandKind
	Apply(scenes []core.Scene) ([]core.Scene, error)
	Revert(scenes []core.Scene) ([]core.Scene, error)
	Description() string
}

// AddScene appends Scene to the end of the sequence.
type AddScene struct {
	Scene core.Scene
}

// Kind implements Command.
func (c AddScene) Kind() CommandKind { return KindAddScene }

// Apply implements Command.
func (c AddScene) Apply(scenes []core.Scene) ([]core.Scene, error) {
	next := make([]core.Scene, 0, len(scenes)+1)
	next = append(next, scenes...)
	next = append(next, c.Scene)
	return core.Recalculate(next), nil
}

// Revert implements Command.
func (c AddScene) Revert(scenes []core.Scene) ([]core.Scene, error) {
	if len(scenes) == 0 {
		return nil, fmt.Errorf("remove %s: %w", c.Scene.Name, cuterrors.ErrHistory)
	}
	return core.Recalculate(scenes[:len(scenes)-1]), nil
}

// Description implements Command.
func (c AddScene) Description() string {
	return "Add " + c.Scene.Name
}

// Reorder moves the scene at From so that it ends up at To.
type Reorder struct {
	From int
	To   int
	Name string
}

// Kind implements Command.
func (c Reorder) Kind() CommandKind { return KindReorder }

// Apply implements Command.
func (c Reorder) Apply(scenes []core.Scene) ([]core.Scene, error) {
	return move(scenes, c.From, c.To)
}

// Revert implements Command.
func (c Reorder) Revert(scenes []core.Scene) ([]core.Scene, error) {
	return move(scenes, c.To, c.From)
}

// Description implements Command.
func (c Reorder) Description() string {
	return fmt.Sprintf("Move %s to position %d", c.Name, c.To+1)
}

// Resize changes the length of the scene at Index.
type Resize struct {
	Index     int
	OldLength int
	NewLength int
	Name      string
}

// Kind implements Command.
func (c Resize) Kind() CommandKind { return KindResize }

// Apply implements Command.
func (c Resize) Apply(scenes []core.Scene) ([]core.Scene, error) {
	return setLength(scenes, c.Index, c.NewLength)
}

// Revert implements Command.
func (c Resize) Revert(scenes []core.Scene) ([]core.Scene, error) {
	return setLength(scenes, c.Index, c.OldLength)
}

// Description implements Command.
func (c Resize) Description() string {
	return fmt.Sprintf("Resize %s from %d to %d frames", c.Name, c.OldLength, c.NewLength)
}

func move(scenes []core.Scene, from, to int) ([]core.Scene, error) {
	if from < 0 || from >= len(scenes) {
		return nil, fmt.Errorf("move from %d: %w", from, cuterrors.ErrSceneNotFound)
	}
	if to < 0 || to >= len(scenes) {
		return nil, fmt.Errorf("move to %d: %w", to, cuterrors.ErrSceneNotFound)
	}

	moved := scenes[from]
	rest := make([]core.Scene, 0, len(scenes))
	rest = append(rest, scenes[:from]...)
	rest = append(rest, scenes[from+1:]...)

	next := make([]core.Scene, 0, len(scenes))
	next = append(next, rest[:to]...)
	next = append(next, moved)
	next = append(next, rest[to:]...)
	return core.Recalculate(next), nil
}

func setLength(scenes []core.Scene, index, length int) ([]core.Scene, error) {
	if index < 0 || index >= len(scenes) {
		return nil, fmt.Errorf("resize %d: %w", index, cuterrors.ErrSceneNotFound)
	}
	next := core.Clone(scenes)
	next[index].Length = length
	return core.Recalculate(next), nil
}
