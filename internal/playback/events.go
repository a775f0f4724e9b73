package playback

import (
	"time"

	"github.com/tessro/cutline/internal/core"
)

// EventType represents the type of playback event.
type EventType int

const (
	EventFrame EventType = iota
	EventSceneChange
	EventLoop
	EventPause
	EventResume
)

// Event represents a playhead change observed by the clock.
type Event struct {
	Type       EventType
	Timestamp  time.Time
	Frame      int
	FPS        float64
	Scene      *core.Scene
	LocalFrame int
	Previous   *core.Scene
	Loops      int
}

// snapshot is what the clock samples from the transport on every tick.
type snapshot struct {
	frame   int
	playing bool
	fps     float64
	scene   *core.Scene
	local   int
}

func sample(t Transport) snapshot {
	pb := t.Playback()
	s := snapshot{frame: pb.CurrentFrame, playing: pb.IsPlaying, fps: pb.FPS}
	if scene, local, ok := t.SceneAtFrame(pb.CurrentFrame); ok {
		s.scene = &scene
		s.local = local
	}
	return s
}

func (s snapshot) event(typ EventType, now time.Time) Event {
	return Event{
		Type:       typ,
		Timestamp:  now,
		Frame:      s.frame,
		FPS:        s.fps,
		Scene:      s.scene,
		LocalFrame: s.local,
	}
}

// diffSnapshots compares two samples and returns detected events.
// prev is nil on the first sample.
func diffSnapshots(prev *snapshot, curr snapshot, wrapped bool, frames bool, loops int) []Event {
	now := time.Now()
	var events []Event

	// First sample - announce the starting scene
	if prev == nil {
		if curr.scene != nil {
			events = append(events, curr.event(EventSceneChange, now))
		}
		return events
	}

	if frames && prev.frame != curr.frame {
		events = append(events, curr.event(EventFrame, now))
	}

	if wrapped {
		e := curr.event(EventLoop, now)
		e.Loops = loops
		events = append(events, e)
	}

	if sceneChanged(prev.scene, curr.scene) {
		e := curr.event(EventSceneChange, now)
		e.Previous = prev.scene
		events = append(events, e)
	}

	// Pause/Resume detection
	if prev.playing && !curr.playing {
		events = append(events, curr.event(EventPause, now))
	} else if !prev.playing && curr.playing {
		events = append(events, curr.event(EventResume, now))
	}

	return events
}

// sceneChanged returns true if the playhead moved onto a different scene.
func sceneChanged(prev, curr *core.Scene) bool {
	if prev == nil && curr == nil {
		return false
	}
	if prev == nil || curr == nil {
		return true
	}
	return prev.Index != curr.Index || prev.Name != curr.Name
}
