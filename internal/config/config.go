// Package config loads game settings from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Settings holds the runtime configuration for the game and its tools.
type Settings struct {
	// LogDir is where latest.log and archived run logs are written.
	LogDir string `yaml:"log_dir" env:"STARCOMMAND_LOG_DIR"`
	// LogLevel is the minimum level written: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"STARCOMMAND_LOG_LEVEL"`
	// TargetFPS is the frame rate the game loop paces itself to.
	TargetFPS int `yaml:"target_fps" env:"STARCOMMAND_TARGET_FPS"`
	// PhaseSeconds is how long the combat loop dwells in each phase.
	PhaseSeconds float64 `yaml:"phase_seconds" env:"STARCOMMAND_PHASE_SECONDS"`
	// Telemetry enables the OTLP trace exporter.
	Telemetry bool `yaml:"telemetry" env:"STARCOMMAND_TELEMETRY"`
}

// Default returns the settings used when no file or overrides exist.
func Default() Settings {
	return Settings{
		LogDir:       "logs",
		LogLevel:     "info",
		TargetFPS:    60,
		PhaseSeconds: 1.5,
		Telemetry:    false,
	}
}

// Load reads settings from the YAML file at path, then applies
// environment overrides. A missing file is not an error; the defaults
// are used as the base either way.
func Load(path string) (Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return settings, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Fall through to env overrides.
	default:
		return settings, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(&settings); err != nil {
		return settings, fmt.Errorf("parse env: %w", err)
	}

	return settings, nil
}
