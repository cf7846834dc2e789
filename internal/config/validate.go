package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/ayoisaiah/countdown/internal/static"
)

const soundOff = "off"

var (
	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateAlert(); err != nil {
		return err
	}

	if err := c.validateDisplay(); err != nil {
		return err
	}

	if c.Preset.Minutes < 0 {
		return errNegativePreset.Fmt("minutes", c.Preset.Minutes)
	}

	if c.Preset.Seconds < 0 {
		return errNegativePreset.Fmt("seconds", c.Preset.Seconds)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

func (c *Config) validateAlert() error {
	if c.Alert.Volume < 0 || c.Alert.Volume > 1 {
		return errInvalidVolume.Fmt(c.Alert.Volume)
	}

	return validateSound(c.Alert.Sound)
}

func (c *Config) validateDisplay() error {
	colors := []struct {
		name  string
		value string
	}{
		{"clock color", c.Display.ClockColor},
		{"error color", c.Display.ErrorColor},
		{"button color", c.Display.ButtonColor},
		{"focus color", c.Display.FocusColor},
	}

	for _, v := range colors {
		if v.value == "" {
			continue
		}

		if !hexColorRegex.MatchString(v.value) {
			return errInvalidColor.Fmt(v.name, v.value)
		}
	}

	return nil
}

// validateSound handles both bundled sounds (no extension) and custom sound
// files on disk.
func validateSound(sound string) error {
	if sound == "" || sound == soundOff {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(sound))

	if ext == "" {
		if !static.Exists(sound + ".wav") {
			return errUnknownAlertSound.Fmt(sound)
		}

		return nil
	}

	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownAlertSound.Fmt(sound)
	}

	return nil
}

// ParseLevel converts a configured log level to a slog.Level. An empty string
// selects the default level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, errInvalidLogLevel.Fmt(s)
	}

	return level, nil
}
