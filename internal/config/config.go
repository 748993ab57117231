// Package config provides configuration management for the Pressroom CLI
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files (.pressroom.yml),
// environment variable overrides with the PRESSROOM_ prefix, and
// validation. It manages the editor tuning knobs (drag threshold), the
// document paths the tooling operates on, and logging options.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Editor    EditorConfig    `yaml:"editor"`
	Documents DocumentsConfig `yaml:"documents"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type EditorConfig struct {
	// DragThreshold is the pixel movement required before a pointer-down
	// on empty canvas becomes a marquee drag.
	DragThreshold float64 `yaml:"drag_threshold"`
}

type DocumentsConfig struct {
	// Dir is the default directory document paths resolve against
	Dir string `yaml:"dir"`
	// WatchDebounceMs groups rapid document saves in watch mode
	WatchDebounceMs int `yaml:"watch_debounce_ms"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load builds a Config from whatever viper has read (config file, env,
// flags), applies defaults, and validates the result.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Editor.DragThreshold == 0 && viper.IsSet("editor.drag_threshold") {
		config.Editor.DragThreshold = viper.GetFloat64("editor.drag_threshold")
	}
	if config.Editor.DragThreshold == 0 {
		config.Editor.DragThreshold = 5
	}

	if config.Documents.Dir == "" {
		config.Documents.Dir = "."
	}
	// Handle underscore keys set via viper (workaround for viper key
	// matching against CamelCase fields).
	if config.Documents.WatchDebounceMs == 0 && viper.IsSet("documents.watch_debounce_ms") {
		config.Documents.WatchDebounceMs = viper.GetInt("documents.watch_debounce_ms")
	}
	if config.Documents.WatchDebounceMs == 0 {
		config.Documents.WatchDebounceMs = 300
	}

	if config.Logging.Level == "" {
		config.Logging.Level = viper.GetString("log-level")
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for correctness.
func validateConfig(config *Config) error {
	if config.Editor.DragThreshold < 0 {
		return fmt.Errorf("editor config: drag_threshold must not be negative, got %v", config.Editor.DragThreshold)
	}

	if config.Documents.WatchDebounceMs < 0 {
		return fmt.Errorf("documents config: watch_debounce_ms must not be negative, got %d", config.Documents.WatchDebounceMs)
	}
	if err := validatePath(config.Documents.Dir); err != nil {
		return fmt.Errorf("documents config: invalid dir %q: %w", config.Documents.Dir, err)
	}

	switch config.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging config: unknown level %q", config.Logging.Level)
	}
	switch config.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging config: unknown format %q", config.Logging.Format)
	}

	return nil
}

// validatePath validates a configured path.
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	return nil
}
