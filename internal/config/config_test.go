package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Alert: config.AlertConfig{
			Sound:  "beep",
			Volume: 0.5,
		},
		Display: config.DisplayConfig{
			ClockColor:  "#F4D35E",
			ErrorColor:  "#EE4266",
			ButtonColor: "#007BFF",
			FocusColor:  "#1785FC",
			DarkTheme:   true,
		},
		Log: config.LogConfig{
			Level: "info",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	// the written file must round trip to the same defaults
	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	assert.Equal(t, "beep", v.GetString("alert.sound"))
	assert.InDelta(t, 0.5, v.GetFloat64("alert.volume"), 1e-9)
	assert.Equal(t, "#007BFF", v.GetString("display.button_color"))
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	testutil.WriteFixture(t, "modified_config.yml", configPath)

	want := defaultConfig()
	want.Alert = config.AlertConfig{
		Sound:  "off",
		Volume: 0.75,
		Notify: true,
		Cmd:    `notify-send "time is up"`,
	}
	want.Display.DarkTheme = false
	want.Display.ClockColor = "#FFFFFF"
	want.Preset = config.PresetConfig{Minutes: 5, Seconds: 30}
	want.Log.Level = "debug"

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, want, cfg)
}

func TestViperReadInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	testutil.WriteFixture(t, "invalid_color.yml", configPath)

	_, err := config.New(config.WithViperConfig(configPath))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clock color must be a valid hex color code")
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("{}\n"), 0o600))

	cfg, err := config.New(
		config.WithPromptConfig(configPath),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	customSound := filepath.Join(t.TempDir(), "bell.mp3")
	require.NoError(t, os.WriteFile(customSound, nil, 0o600))

	testCases := []struct {
		modify  func(c *config.Config)
		name    string
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(*config.Config) {},
		},
		{
			name: "sound can be disabled",
			modify: func(c *config.Config) {
				c.Alert.Sound = "off"
			},
		},
		{
			name: "custom sound file",
			modify: func(c *config.Config) {
				c.Alert.Sound = customSound
			},
		},
		{
			name: "missing custom sound file",
			modify: func(c *config.Config) {
				c.Alert.Sound = filepath.Join(t.TempDir(), "missing.ogg")
			},
			wantErr: "unknown alert sound",
		},
		{
			name: "unknown bundled sound",
			modify: func(c *config.Config) {
				c.Alert.Sound = "kazoo"
			},
			wantErr: "unknown alert sound: kazoo",
		},
		{
			name: "unsupported sound format",
			modify: func(c *config.Config) {
				c.Alert.Sound = "bell.aac"
			},
			wantErr: "invalid sound file format",
		},
		{
			name: "volume above range",
			modify: func(c *config.Config) {
				c.Alert.Volume = 1.5
			},
			wantErr: "alert volume must be between 0 and 1",
		},
		{
			name: "negative preset minutes",
			modify: func(c *config.Config) {
				c.Preset.Minutes = -1
			},
			wantErr: "preset minutes must not be negative",
		},
		{
			name: "preset beyond 59 is left to the timer",
			modify: func(c *config.Config) {
				c.Preset.Minutes = 75
			},
		},
		{
			name: "bad log level",
			modify: func(c *config.Config) {
				c.Log.Level = "loud"
			},
			wantErr: "unknown log level: loud",
		},
		{
			name: "bad focus color",
			modify: func(c *config.Config) {
				c.Display.FocusColor = "#12345"
			},
			wantErr: "focus color must be a valid hex color code",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
