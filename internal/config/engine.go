package config

import (
	"math/rand/v2"

	"github.com/tessro/cutline/internal/core"
	"github.com/tessro/cutline/internal/timeline"
)

// Scenes converts the configured starting timeline into scenes.
// Scenes without a color take one from the palette in order.
func (c *Config) Scenes() []core.Scene {
	colors := c.Palette.Colors
	if len(colors) == 0 {
		colors = timeline.DefaultColors
	}
	scenes := make([]core.Scene, len(c.Timeline.Scenes))
	for i, s := range c.Timeline.Scenes {
		color := s.Color
		if color == "" {
			color = colors[i%len(colors)]
		}
		scenes[i] = core.Scene{Name: s.Name, Color: color, Length: s.Length}
	}
	return core.Recalculate(scenes)
}

// EngineOptions returns the timeline options described by the config.
// rng may be nil for a randomly seeded palette.
func (c *Config) EngineOptions(rng *rand.Rand) []timeline.Option {
	return []timeline.Option{
		timeline.WithScenes(c.Scenes()),
		timeline.WithFPS(c.Timeline.FPS),
		timeline.WithMinSceneLength(c.Timeline.MinSceneLength),
		timeline.WithDefaultSceneLength(c.Timeline.DefaultSceneLength),
		timeline.WithHistoryLimit(c.Timeline.HistoryLimit),
		timeline.WithPalette(timeline.NewPalette(c.Palette.Colors, rng)),
	}
}
