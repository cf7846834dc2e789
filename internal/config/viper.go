package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

// viper keys for each setting.
const (
	keyAlertSound         = "alert.sound"
	keyAlertVolume        = "alert.volume"
	keyAlertNotify        = "alert.notify"
	keyAlertCmd           = "alert.cmd"
	keyDisplayDarkTheme   = "display.dark_theme"
	keyDisplayClockColor  = "display.clock_color"
	keyDisplayErrorColor  = "display.error_color"
	keyDisplayButtonColor = "display.button_color"
	keyDisplayFocusColor  = "display.focus_color"
	keyPresetMinutes      = "preset.minutes"
	keyPresetSeconds      = "preset.seconds"
	keyLogLevel           = "log.level"
)

// Default values written to a fresh config file.
const (
	DefaultSound       = "beep"
	DefaultVolume      = 0.5
	DefaultClockColor  = "#F4D35E"
	DefaultErrorColor  = "#EE4266"
	DefaultButtonColor = "#007BFF"
	DefaultFocusColor  = "#1785FC"
	DefaultLogLevel    = "info"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing a default file if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setDefaults registers the default value of every key.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAlertSound, DefaultSound)
	v.SetDefault(keyAlertVolume, DefaultVolume)
	v.SetDefault(keyAlertNotify, false)
	v.SetDefault(keyAlertCmd, "")
	v.SetDefault(keyDisplayDarkTheme, true)
	v.SetDefault(keyDisplayClockColor, DefaultClockColor)
	v.SetDefault(keyDisplayErrorColor, DefaultErrorColor)
	v.SetDefault(keyDisplayButtonColor, DefaultButtonColor)
	v.SetDefault(keyDisplayFocusColor, DefaultFocusColor)
	v.SetDefault(keyPresetMinutes, 0)
	v.SetDefault(keyPresetSeconds, 0)
	v.SetDefault(keyLogLevel, DefaultLogLevel)
}

// setupViper configures Viper with defaults and any values collected by an
// earlier option such as the first-run prompt.
func setupViper(v *viper.Viper, c *Config) {
	setDefaults(v)

	if c.Alert.Sound != "" {
		v.SetDefault(keyAlertSound, c.Alert.Sound)
		v.SetDefault(keyAlertVolume, c.Alert.Volume)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
