package timeline

import (
	"log/slog"

	"github.com/tessro/cutline/internal/core"
)

// anchor is the playhead's position expressed relative to its scene.
type anchor struct {
	frame int
	found bool
	name  string
	index int
	local int
}

func anchorAt(scenes []core.Scene, frame int) anchor {
	a := anchor{frame: frame}
	scene, local, ok := core.Locate(scenes, frame)
	if !ok {
		return a
	}
	a.found = true
	a.name = scene.Name
	a.index = scene.Index
	a.local = local
	return a
}

// reconcile returns the frame that keeps the playhead on the same scene and
// offset after an edit, falling back to clamping the old frame.
func reconcile(a anchor, scenes []core.Scene, totalFrames int, logger *slog.Logger) int {
	if !a.found {
		frame := core.ClampFrame(a.frame, totalFrames)
		logger.Debug("no scene at playhead, clamping", "frame", a.frame, "new_frame", frame)
		return frame
	}

	scene, ok := findScene(scenes, a.name, a.index)
	if !ok {
		frame := core.ClampFrame(a.frame, totalFrames)
		logger.Debug("scene gone, clamping", "scene", a.name, "frame", a.frame, "new_frame", frame)
		return frame
	}

	frame := scene.StartFrame + min(a.local, scene.Length-1)
	logger.Debug("re-anchored playhead",
		"scene", scene.Name,
		"local_frame", a.local,
		"old_frame", a.frame,
		"new_frame", frame,
	)
	return frame
}

// findScene matches by name, preferring the scene at hint when names repeat.
func findScene(scenes []core.Scene, name string, hint int) (core.Scene, bool) {
	if hint >= 0 && hint < len(scenes) && scenes[hint].Name == name {
		return scenes[hint], true
	}
	for _, s := range scenes {
		if s.Name == name {
			return s, true
		}
	}
	return core.Scene{}, false
}
