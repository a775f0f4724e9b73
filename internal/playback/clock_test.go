package playback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tessro/cutline/internal/core"
	"github.com/tessro/cutline/internal/timeline"
)

func shortEngine(playing bool) *timeline.Engine {
	e := timeline.New(
		timeline.WithMinSceneLength(1),
		timeline.WithScenes([]core.Scene{
			{Name: "A", Color: "#F65937", Length: 2},
			{Name: "B", Color: "#379EF6", Length: 3},
		}),
	)
	e.SetPlaying(playing)
	return e
}

type countingRenderer struct {
	initErr error
	scenes  int
	clears  int
}

func (r *countingRenderer) Init() error { return r.initErr }

func (r *countingRenderer) RenderScene(string, string, int) error {
	r.scenes++
	return nil
}

func (r *countingRenderer) Clear() error {
	r.clears++
	return nil
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(25); got != 40*time.Millisecond {
		t.Errorf("FrameInterval(25) = %v, want 40ms", got)
	}
	if got := FrameInterval(0); got != FrameInterval(core.DefaultFPS) {
		t.Errorf("FrameInterval(0) = %v, want default rate", got)
	}
}

func TestClockRunLoops(t *testing.T) {
	engine := shortEngine(true)
	r := &countingRenderer{}
	clock := NewClock(engine, WithInterval(time.Millisecond), WithRenderer(r))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- clock.Run(ctx) }()

	var seen []string
	for e := range clock.Events() {
		switch e.Type {
		case EventSceneChange:
			seen = append(seen, e.Scene.Name)
		case EventLoop:
			seen = append(seen, "loop")
			clock.Stop()
		}
	}
	if err := <-errc; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"A", "B", "loop", "A"}
	if len(seen) < 3 {
		t.Fatalf("events = %v, want prefix %v", seen, want)
	}
	for i := range seen {
		if i < len(want) && seen[i] != want[i] {
			t.Errorf("events = %v, want %v", seen, want)
			break
		}
	}
	if r.scenes == 0 {
		t.Error("renderer never drawn")
	}
}

func TestClockPausedDoesNotAdvance(t *testing.T) {
	engine := shortEngine(false)
	clock := NewClock(engine, WithInterval(time.Millisecond), WithFrameEvents(true))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for e := range clock.Events() {
			if e.Type == EventFrame {
				t.Errorf("frame event while paused: %+v", e)
			}
		}
	}()

	if err := clock.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, want deadline exceeded", err)
	}
	<-drained
	if got := engine.Playback().CurrentFrame; got != 0 {
		t.Errorf("CurrentFrame = %d, want 0", got)
	}
}

func TestClockRendererInitFailure(t *testing.T) {
	engine := shortEngine(true)
	r := &countingRenderer{initErr: errors.New("no display")}
	clock := NewClock(engine, WithInterval(time.Millisecond), WithRenderer(r))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	go func() {
		for range clock.Events() {
		}
	}()
	_ = clock.Run(ctx)

	if r.scenes != 0 || r.clears != 0 {
		t.Errorf("renderer used after failed init: %d scenes, %d clears", r.scenes, r.clears)
	}
	if !engine.Playback().IsPlaying {
		t.Error("renderer failure stopped playback")
	}
}

func TestClockStopTwice(t *testing.T) {
	clock := NewClock(shortEngine(false))
	clock.Stop()
	clock.Stop()
	if err := clock.Run(context.Background()); err != nil {
		t.Errorf("Run() after Stop = %v, want nil", err)
	}
}

func TestDiffSnapshots(t *testing.T) {
	a := core.Scene{Name: "A", Index: 0, Length: 2}
	b := core.Scene{Name: "B", Index: 1, StartFrame: 2, Length: 3}

	first := diffSnapshots(nil, snapshot{frame: 0, scene: &a}, false, true, 0)
	if len(first) != 1 || first[0].Type != EventSceneChange {
		t.Fatalf("first sample events = %+v", first)
	}

	prev := snapshot{frame: 1, playing: true, scene: &a, local: 1}
	curr := snapshot{frame: 2, playing: true, scene: &b}
	got := types(diffSnapshots(&prev, curr, false, true, 0))
	if want := []EventType{EventFrame, EventSceneChange}; !equalTypes(got, want) {
		t.Errorf("scene boundary events = %v, want %v", got, want)
	}

	got = types(diffSnapshots(&prev, curr, false, false, 0))
	if want := []EventType{EventSceneChange}; !equalTypes(got, want) {
		t.Errorf("without frame events = %v, want %v", got, want)
	}

	prev = snapshot{frame: 4, playing: true, scene: &b, local: 2}
	curr = snapshot{frame: 0, playing: true, scene: &a}
	events := diffSnapshots(&prev, curr, true, false, 3)
	if want := []EventType{EventLoop, EventSceneChange}; !equalTypes(types(events), want) {
		t.Errorf("wrap events = %v, want %v", types(events), want)
	}
	if events[0].Loops != 3 {
		t.Errorf("Loops = %d, want 3", events[0].Loops)
	}
	if events[1].Previous == nil || events[1].Previous.Name != "B" {
		t.Errorf("Previous = %+v, want B", events[1].Previous)
	}

	paused := snapshot{frame: 0, playing: false, scene: &a}
	if got := types(diffSnapshots(&curr, paused, false, true, 0)); !equalTypes(got, []EventType{EventPause}) {
		t.Errorf("pause events = %v", got)
	}
	if got := types(diffSnapshots(&paused, curr, false, true, 0)); !equalTypes(got, []EventType{EventResume}) {
		t.Errorf("resume events = %v", got)
	}
}

func types(events []Event) []EventType {
	out := make([]EventType, len(events))
	for i, e := range events {
		out[i] = e.Type
	}
	return out
}

func equalTypes(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
