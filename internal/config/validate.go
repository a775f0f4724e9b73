package config

import (
	"errors"
	"fmt"
	"regexp"

	cuterrors "github.com/tessro/cutline/internal/errors"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Timeline.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("timeline: %w", err))
	}
	if err := c.Palette.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("palette: %w", err))
	}
	if err := c.Playback.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("playback: %w", err))
	}
	if err := c.TUI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tui: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", cuterrors.ErrInvalidConfig, errors.Join(errs...))
}

// Validate checks TimelineConfig for errors.
func (c *TimelineConfig) Validate() error {
	var errs []error
	if c.FPS <= 0 {
		errs = append(errs, errors.New("fps must be positive"))
	}
	if c.MinSceneLength < 1 {
		errs = append(errs, errors.New("min_scene_length must be at least 1"))
	}
	if c.DefaultSceneLength < c.MinSceneLength {
		errs = append(errs, fmt.Errorf("default_scene_length %d is below min_scene_length %d",
			c.DefaultSceneLength, c.MinSceneLength))
	}
	if c.HistoryLimit < 0 {
		errs = append(errs, errors.New("history_limit must be non-negative"))
	}
	for i, s := range c.Scenes {
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("scenes[%d]: name is required", i))
		}
		if s.Color != "" && !hexColor.MatchString(s.Color) {
			errs = append(errs, fmt.Errorf("scenes[%d]: invalid color %q (want #RRGGBB)", i, s.Color))
		}
		if s.Length < c.MinSceneLength {
			errs = append(errs, fmt.Errorf("scenes[%d]: length %d is below min_scene_length %d",
				i, s.Length, c.MinSceneLength))
		}
	}
	return errors.Join(errs...)
}

// Validate checks PaletteConfig for errors.
func (c *PaletteConfig) Validate() error {
	if len(c.Colors) == 0 {
		return errors.New("colors must not be empty")
	}
	for _, color := range c.Colors {
		if !hexColor.MatchString(color) {
			return fmt.Errorf("invalid color %q (want #RRGGBB)", color)
		}
	}
	return nil
}

// Validate checks PlaybackConfig for errors.
func (c *PlaybackConfig) Validate() error {
	switch c.Timecode {
	case "", "seconds", "frames":
		// valid
	default:
		return fmt.Errorf("invalid timecode: %s (must be seconds or frames)", c.Timecode)
	}
	return nil
}

// Validate checks TUIConfig for errors.
func (c *TUIConfig) Validate() error {
	switch c.Theme {
	case "", "auto", "dark", "light":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be auto, dark, or light)", c.Theme)
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	switch c.Level {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	return nil
}
