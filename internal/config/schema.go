package config

// Config is the root configuration structure.
type Config struct {
	Timeline TimelineConfig `toml:"timeline" yaml:"timeline" json:"timeline"`
	Palette  PaletteConfig  `toml:"palette" yaml:"palette" json:"palette"`
	Playback PlaybackConfig `toml:"playback" yaml:"playback" json:"playback"`
	TUI      TUIConfig      `toml:"tui" yaml:"tui" json:"tui"`
	Log      LogConfig      `toml:"log" yaml:"log" json:"log"`
}

// TimelineConfig holds the starting timeline and edit limits.
type TimelineConfig struct {
	FPS                float64       `toml:"fps" yaml:"fps" json:"fps"`
	MinSceneLength     int           `toml:"min_scene_length" yaml:"min_scene_length" json:"min_scene_length"`
	DefaultSceneLength int           `toml:"default_scene_length" yaml:"default_scene_length" json:"default_scene_length"`
	HistoryLimit       int           `toml:"history_limit" yaml:"history_limit" json:"history_limit"`
	Scenes             []SceneConfig `toml:"scenes" yaml:"scenes" json:"scenes"`
}

// SceneConfig describes one scene of the starting timeline.
type SceneConfig struct {
	Name   string `toml:"name" yaml:"name" json:"name"`
	Color  string `toml:"color" yaml:"color" json:"color"`
	Length int    `toml:"length" yaml:"length" json:"length"`
}

// PaletteConfig holds the colors new scenes are drawn from.
type PaletteConfig struct {
	Colors []string `toml:"colors" yaml:"colors" json:"colors"`
}

// PlaybackConfig holds playhead settings.
type PlaybackConfig struct {
	Autoplay bool   `toml:"autoplay" yaml:"autoplay" json:"autoplay"`
	Timecode string `toml:"timecode" yaml:"timecode" json:"timecode"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `toml:"theme" yaml:"theme" json:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
	File  string `toml:"file" yaml:"file" json:"file"`
}
