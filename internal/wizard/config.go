package wizard

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/tessro/cutline/internal/config"
)

// ConfigAnswers holds the form fields as the user typed them.
type ConfigAnswers struct {
	FPS                string
	MinSceneLength     string
	DefaultSceneLength string
	HistoryLimit       string
	Timecode           string
	Theme              string
	LogLevel           string
	Autoplay           bool
}

// AnswersFrom pre-fills the form from cfg.
func AnswersFrom(cfg *config.Config) *ConfigAnswers {
	return &ConfigAnswers{
		FPS:                strconv.FormatFloat(cfg.Timeline.FPS, 'f', -1, 64),
		MinSceneLength:     strconv.Itoa(cfg.Timeline.MinSceneLength),
		DefaultSceneLength: strconv.Itoa(cfg.Timeline.DefaultSceneLength),
		HistoryLimit:       strconv.Itoa(cfg.Timeline.HistoryLimit),
		Timecode:           cfg.Playback.Timecode,
		Theme:              cfg.TUI.Theme,
		LogLevel:           cfg.Log.Level,
		Autoplay:           cfg.Playback.Autoplay,
	}
}

// Apply returns a copy of base with the answers applied, validated.
func (a *ConfigAnswers) Apply(base *config.Config) (*config.Config, error) {
	cfg := *base

	fps, err := strconv.ParseFloat(a.FPS, 64)
	if err != nil {
		return nil, fmt.Errorf("fps: %w", err)
	}
	minLen, err := strconv.Atoi(a.MinSceneLength)
	if err != nil {
		return nil, fmt.Errorf("min scene length: %w", err)
	}
	defLen, err := strconv.Atoi(a.DefaultSceneLength)
	if err != nil {
		return nil, fmt.Errorf("default scene length: %w", err)
	}
	limit, err := strconv.Atoi(a.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("history limit: %w", err)
	}

	cfg.Timeline.FPS = fps
	cfg.Timeline.MinSceneLength = minLen
	cfg.Timeline.DefaultSceneLength = defLen
	cfg.Timeline.HistoryLimit = limit
	cfg.Playback.Timecode = a.Timecode
	cfg.Playback.Autoplay = a.Autoplay
	cfg.TUI.Theme = a.Theme
	cfg.Log.Level = a.LogLevel

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("enter a whole number of frames")
	}
	return nil
}

func runConfigForm(a *ConfigAnswers) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Frames per second").
				Value(&a.FPS).
				Validate(func(s string) error {
					f, err := strconv.ParseFloat(s, 64)
					if err != nil || f <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Minimum scene length").
				Description("Resizes never go below this many frames").
				Value(&a.MinSceneLength).
				Validate(positiveInt),
			huh.NewInput().
				Title("New scene length").
				Value(&a.DefaultSceneLength).
				Validate(positiveInt),
			huh.NewInput().
				Title("History limit").
				Description("0 keeps every edit").
				Value(&a.HistoryLimit).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 0 {
						return fmt.Errorf("enter 0 or a positive number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Timecode display").
				Options(
					huh.NewOption("Minutes:seconds:frames", "seconds"),
					huh.NewOption("Frame number", "frames"),
				).
				Value(&a.Timecode),
			huh.NewConfirm().
				Title("Start playing when the editor opens?").
				Value(&a.Autoplay),
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("auto", "dark", "light")...).
				Value(&a.Theme),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&a.LogLevel),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("setup cancelled: %w", err)
	}
	return nil
}
