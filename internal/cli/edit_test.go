package cli

import (
	"errors"
	"reflect"
	"testing"

	cuterrors "github.com/tessro/cutline/internal/errors"
	"github.com/tessro/cutline/internal/timeline"
)

func TestParseOp(t *testing.T) {
	tests := []struct {
		in   string
		want Op
	}{
		{"add", Op{Name: "add"}},
		{"ADD", Op{Name: "add"}},
		{"move:2:0", Op{Name: "move", Args: []int{2, 0}}},
		{"resize:1:45", Op{Name: "resize", Args: []int{1, 45}}},
		{"seek:-5", Op{Name: "seek", Args: []int{-5}}},
		{" undo ", Op{Name: "undo"}},
	}

	for _, tt := range tests {
		got, err := ParseOp(tt.in)
		if err != nil {
			t.Errorf("ParseOp(%q) error = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseOp(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseOpErrors(t *testing.T) {
	for _, in := range []string{"", "split:1", "move:1", "resize:1:2:3", "seek:x", "undo:1"} {
		_, err := ParseOp(in)
		if !errors.Is(err, cuterrors.ErrInvalidEdit) {
			t.Errorf("ParseOp(%q) error = %v, want ErrInvalidEdit", in, err)
		}
	}
}

func TestParseOpsStopsAtFirstError(t *testing.T) {
	ops, err := ParseOps([]string{"add", "bogus", "undo"})
	if err == nil {
		t.Fatal("ParseOps() should fail")
	}
	if ops != nil {
		t.Errorf("ParseOps() ops = %v, want nil", ops)
	}
}

func TestOpString(t *testing.T) {
	op := Op{Name: "resize", Args: []int{1, 45}}
	if got := op.String(); got != "resize:1:45" {
		t.Errorf("String() = %q, want %q", got, "resize:1:45")
	}
}

func apply(t *testing.T, e *timeline.Engine, args ...string) error {
	t.Helper()
	ops, err := ParseOps(args)
	if err != nil {
		t.Fatalf("ParseOps(%v) error = %v", args, err)
	}
	for _, op := range ops {
		if err := ApplyOp(e, op); err != nil {
			return err
		}
	}
	return nil
}

func TestApplyOps(t *testing.T) {
	e := timeline.New()

	if err := apply(t, e, "add", "resize:3:45", "move:3:0"); err != nil {
		t.Fatalf("apply error = %v", err)
	}

	scenes := e.Scenes()
	if len(scenes) != 4 {
		t.Fatalf("len(Scenes()) = %d, want 4", len(scenes))
	}
	if scenes[0].Name != "Scene 4" || scenes[0].Length != 45 {
		t.Errorf("scenes[0] = %s/%d, want Scene 4/45", scenes[0].Name, scenes[0].Length)
	}
	if e.TotalFrames() != 165 {
		t.Errorf("TotalFrames() = %d, want 165", e.TotalFrames())
	}

	if err := apply(t, e, "undo", "undo", "undo"); err != nil {
		t.Fatalf("undo error = %v", err)
	}
	if e.TotalFrames() != 120 {
		t.Errorf("TotalFrames() after undo = %d, want 120", e.TotalFrames())
	}
	if err := apply(t, e, "redo"); err != nil {
		t.Fatalf("redo error = %v", err)
	}
	if len(e.Scenes()) != 4 {
		t.Errorf("len(Scenes()) after redo = %d, want 4", len(e.Scenes()))
	}
}

func TestApplySeekAndPlay(t *testing.T) {
	e := timeline.New()

	if err := apply(t, e, "seek:500", "play"); err != nil {
		t.Fatalf("apply error = %v", err)
	}
	pb := e.Playback()
	if pb.CurrentFrame != 119 {
		t.Errorf("CurrentFrame = %d, want 119", pb.CurrentFrame)
	}
	if !pb.IsPlaying {
		t.Error("IsPlaying = false, want true")
	}

	if err := apply(t, e, "pause"); err != nil {
		t.Fatalf("pause error = %v", err)
	}
	if e.Playback().IsPlaying {
		t.Error("IsPlaying = true after pause")
	}
}

func TestApplyOpErrors(t *testing.T) {
	e := timeline.New()

	if err := apply(t, e, "undo"); !errors.Is(err, cuterrors.ErrHistory) {
		t.Errorf("undo on fresh engine error = %v, want ErrHistory", err)
	}
	if err := apply(t, e, "redo"); !errors.Is(err, cuterrors.ErrHistory) {
		t.Errorf("redo on fresh engine error = %v, want ErrHistory", err)
	}
	if err := apply(t, e, "move:0:9"); !errors.Is(err, cuterrors.ErrSceneNotFound) {
		t.Errorf("move out of range error = %v, want ErrSceneNotFound", err)
	}
	if err := apply(t, e, "resize:7:20"); !errors.Is(err, cuterrors.ErrSceneNotFound) {
		t.Errorf("resize out of range error = %v, want ErrSceneNotFound", err)
	}
	if len(e.History()) != 0 {
		t.Errorf("History() = %v, want empty after failed edits", e.History())
	}

	empty := timeline.New(timeline.WithScenes(nil))
	if err := apply(t, empty, "play"); !errors.Is(err, cuterrors.ErrEmptyTimeline) {
		t.Errorf("play on empty timeline error = %v, want ErrEmptyTimeline", err)
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Scene 1", 10, "Scene 1"},
		{"Opening titles", 10, "Opening..."},
		{"Überschrift", 5, "Üb..."},
		{"abc", 2, "ab"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.n); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}
