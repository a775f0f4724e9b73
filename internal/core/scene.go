package core

import "fmt"

// DefaultMinSceneLength is the shortest a scene may be, in frames.
const DefaultMinSceneLength = 10

// Scene represents one timed segment of the timeline.
type Scene struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	Length     int    `json:"length"`
	Index      int    `json:"index"`
	StartFrame int    `json:"start_frame"`
}

// EndFrame returns the first frame after the scene.
func (s Scene) EndFrame() int {
	return s.StartFrame + s.Length
}

// Contains reports whether frame falls inside the scene's range.
func (s Scene) Contains(frame int) bool {
	return frame >= s.StartFrame && frame < s.EndFrame()
}

// SceneName returns the display name for a scene at the given 1-based position.
func SceneName(position int) string {
	return fmt.Sprintf("Scene %d", position)
}
