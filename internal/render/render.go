// Package render drives display back ends from the timeline's read model.
//
// A Renderer is told which scene is under the playhead and how far into it
// the playhead is. It never sees the timeline itself; Draw does the lookup.
package render

import "github.com/tessro/cutline/internal/core"

// Renderer draws the visual state of one scene at a local frame.
// Implementations should tolerate repeated identical requests.
type Renderer interface {
	Init() error
	RenderScene(name, color string, localFrame int) error
	Clear() error
}

// Locator maps an absolute frame to its scene and local frame.
type Locator interface {
	SceneAtFrame(frame int) (core.Scene, int, bool)
}

// Draw renders the scene under frame, or clears when no scene owns it.
func Draw(r Renderer, loc Locator, frame int) error {
	scene, local, ok := loc.SceneAtFrame(frame)
	if !ok {
		return r.Clear()
	}
	return r.RenderScene(scene.Name, scene.Color, local)
}
