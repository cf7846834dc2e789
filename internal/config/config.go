// Package config loads countdown settings from the config file, the command
// line and first-run prompts
package config

import (
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Alert   AlertConfig   `mapstructure:"alert"`
		Display DisplayConfig `mapstructure:"display"`
		Log     LogConfig     `mapstructure:"log"`
		Preset  PresetConfig  `mapstructure:"preset"`
	}

	// AlertConfig controls what happens when the countdown expires.
	AlertConfig struct {
		Sound  string  `mapstructure:"sound"`
		Cmd    string  `mapstructure:"cmd"`
		Volume float64 `mapstructure:"volume"`
		Notify bool    `mapstructure:"notify"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		ClockColor  string `mapstructure:"clock_color"`
		ErrorColor  string `mapstructure:"error_color"`
		ButtonColor string `mapstructure:"button_color"`
		FocusColor  string `mapstructure:"focus_color"`
		DarkTheme   bool   `mapstructure:"dark_theme"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// PresetConfig holds the values the minute and second inputs start with.
	PresetConfig struct {
		Minutes int `mapstructure:"minutes"`
		Seconds int `mapstructure:"seconds"`
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
