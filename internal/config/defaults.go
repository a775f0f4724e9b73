package config

import (
	"github.com/tessro/cutline/internal/core"
	"github.com/tessro/cutline/internal/timeline"
)

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Timeline: TimelineConfig{
			FPS:                core.DefaultFPS,
			MinSceneLength:     core.DefaultMinSceneLength,
			DefaultSceneLength: timeline.DefaultSceneLength,
			Scenes:             defaultScenes(),
		},
		Palette: PaletteConfig{
			Colors: append([]string(nil), timeline.DefaultColors...),
		},
		Playback: PlaybackConfig{
			Timecode: "seconds",
		},
		TUI: TUIConfig{
			Theme: "auto",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func defaultScenes() []SceneConfig {
	scenes := timeline.DefaultScenes()
	out := make([]SceneConfig, len(scenes))
	for i, s := range scenes {
		out[i] = SceneConfig{Name: s.Name, Color: s.Color, Length: s.Length}
	}
	return out
}

// ApplyDefaults fills in zero values with sensible defaults.
// A nil scene list gets the default timeline; an explicitly empty one is kept.
func (c *Config) ApplyDefaults() {
	d := Default()

	// Timeline
	if c.Timeline.FPS == 0 {
		c.Timeline.FPS = d.Timeline.FPS
	}
	if c.Timeline.MinSceneLength == 0 {
		c.Timeline.MinSceneLength = d.Timeline.MinSceneLength
	}
	if c.Timeline.DefaultSceneLength == 0 {
		c.Timeline.DefaultSceneLength = d.Timeline.DefaultSceneLength
	}
	if c.Timeline.Scenes == nil {
		c.Timeline.Scenes = d.Timeline.Scenes
	}

	// Palette
	if len(c.Palette.Colors) == 0 {
		c.Palette.Colors = d.Palette.Colors
	}

	// Playback
	if c.Playback.Timecode == "" {
		c.Playback.Timecode = d.Playback.Timecode
	}

	// TUI
	if c.TUI.Theme == "" {
		c.TUI.Theme = d.TUI.Theme
	}

	// Log
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
}
