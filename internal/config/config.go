package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	cuterrors "github.com/tessro/cutline/internal/errors"
)

// Header is written at the top of generated TOML config files.
const Header = "# Cutline Configuration\n# https://github.com/tessro/cutline\n\n"

// Load reads configuration from standard locations with environment overrides.
// Search order: ~/.cutlinerc, $XDG_CONFIG_HOME/cutline/config.toml,
// $XDG_CONFIG_HOME/cutline/config.yaml
func Load() (*Config, error) {
	cfg := &Config{}

	// Try loading from file
	path := findConfigFile()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Apply defaults, then environment variable overrides
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFrom reads configuration from a specific file path. A leading ~ is expanded.
func LoadFrom(path string) (*Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(expanded); os.IsNotExist(err) {
		return nil, cuterrors.WithSuggestion(
			fmt.Errorf("%w: %s", cuterrors.ErrConfigNotFound, expanded),
			"Run 'cutline config init' to create one",
		)
	}

	cfg := &Config{}
	if err := decodeFile(expanded, cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultPath is where config init writes when no --config flag is given.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ".cutlinerc"
	}
	return filepath.Join(home, ".cutlinerc")
}

// Save writes cfg to path, encoding as YAML or TOML by file extension.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg, isYAML(path))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Encode renders v as TOML (with the generated header) or YAML.
func Encode(v any, asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(v)
	}
	var buf bytes.Buffer
	buf.WriteString(Header)
	encoder := toml.NewEncoder(&buf)
	encoder.Indent = "  "
	if err := encoder.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Set updates a single section.key in the file at path, preserving other keys.
func Set(path, key, value string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cuterrors.WithSuggestion(
			fmt.Errorf("%w: %s", cuterrors.ErrConfigNotFound, path),
			"Run 'cutline config init' to create one",
		)
	}
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if isYAML(path) {
		err = yaml.Unmarshal(data, &raw)
	} else {
		_, err = toml.Decode(string(data), &raw)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return fmt.Errorf("invalid key format. Use 'section.key' (e.g., timeline.fps)")
	}
	section, field := parts[0], parts[1]

	typed, err := typedValue(key, value)
	if err != nil {
		return err
	}

	sectionMap, ok := raw[section].(map[string]any)
	if !ok {
		sectionMap = make(map[string]any)
		raw[section] = sectionMap
	}
	sectionMap[field] = typed

	// Validate the result before touching the file.
	var check Config
	encoded, err := Encode(raw, isYAML(path))
	if err != nil {
		return err
	}
	if err := decode(encoded, isYAML(path), &check); err != nil {
		return err
	}
	check.ApplyDefaults()
	if err := check.Validate(); err != nil {
		return err
	}

	return os.WriteFile(path, encoded, 0644)
}

// SetKeys lists the keys accepted by Set.
var SetKeys = []string{
	"timeline.fps",
	"timeline.min_scene_length",
	"timeline.default_scene_length",
	"timeline.history_limit",
	"playback.autoplay",
	"playback.timecode",
	"tui.theme",
	"log.level",
	"log.file",
}

func typedValue(key, value string) (any, error) {
	switch key {
	case "timeline.fps":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("value must be a number for %s", key)
		}
		return f, nil
	case "timeline.min_scene_length", "timeline.default_scene_length", "timeline.history_limit":
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("value must be an integer for %s", key)
		}
		return i, nil
	case "playback.autoplay":
		return value == "true" || value == "1" || value == "yes", nil
	case "playback.timecode", "tui.theme", "log.level", "log.file":
		return value, nil
	default:
		return nil, fmt.Errorf("unknown key %q (supported: %s)", key, strings.Join(SetKeys, ", "))
	}
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := decode(data, isYAML(path), cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func decode(data []byte, asYAML bool, cfg *Config) error {
	if asYAML {
		return yaml.Unmarshal(data, cfg)
	}
	_, err := toml.Decode(string(data), cfg)
	return err
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// findConfigFile returns the first existing config file path.
func findConfigFile() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}

	paths := []string{
		filepath.Join(home, ".cutlinerc"),
	}

	// XDG_CONFIG_HOME or default
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	paths = append(paths,
		filepath.Join(xdgConfig, "cutline", "config.toml"),
		filepath.Join(xdgConfig, "cutline", "config.yaml"),
	)

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Timeline
	if v := os.Getenv("CUTLINE_FPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Timeline.FPS = f
		}
	}
	if v := os.Getenv("CUTLINE_MIN_SCENE_LENGTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Timeline.MinSceneLength = i
		}
	}
	if v := os.Getenv("CUTLINE_DEFAULT_SCENE_LENGTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Timeline.DefaultSceneLength = i
		}
	}
	if v := os.Getenv("CUTLINE_HISTORY_LIMIT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Timeline.HistoryLimit = i
		}
	}

	// TUI
	if v := os.Getenv("CUTLINE_TUI_THEME"); v != "" {
		cfg.TUI.Theme = v
	}

	// Log
	if v := os.Getenv("CUTLINE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CUTLINE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
