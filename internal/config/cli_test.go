package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func newCLIContext(t *testing.T, args map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("countdown", flag.ContinueOnError)
	_ = f.Int("minutes", 0, "")
	_ = f.Int("seconds", 0, "")
	_ = f.Float64("volume", 0, "")
	_ = f.String("sound", "", "")
	_ = f.String("cmd", "", "")
	_ = f.Bool("notify", false, "")

	for k, v := range args {
		require.NoError(t, f.Set(k, v))
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIOverrides(t *testing.T) {
	testCases := []struct {
		args map[string]string
		want Config
		name string
	}{
		{
			name: "no flags keep file values",
			args: map[string]string{},
			want: Config{
				Alert:  AlertConfig{Sound: "beep", Volume: 0.5},
				Preset: PresetConfig{Minutes: 3, Seconds: 15},
			},
		},
		{
			name: "explicit zero overrides the preset",
			args: map[string]string{
				"minutes": "0",
				"seconds": "45",
			},
			want: Config{
				Alert:  AlertConfig{Sound: "beep", Volume: 0.5},
				Preset: PresetConfig{Minutes: 0, Seconds: 45},
			},
		},
		{
			name: "alert flags",
			args: map[string]string{
				"sound":  "off",
				"volume": "0.2",
				"cmd":    "echo done",
				"notify": "true",
			},
			want: Config{
				Alert: AlertConfig{
					Sound:  "off",
					Volume: 0.2,
					Cmd:    "echo done",
					Notify: true,
				},
				Preset: PresetConfig{Minutes: 3, Seconds: 15},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				Alert:  AlertConfig{Sound: "beep", Volume: 0.5},
				Preset: PresetConfig{Minutes: 3, Seconds: 15},
			}

			err := WithCLIConfig(newCLIContext(t, tc.args))(cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.want, *cfg)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", level.String())

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", level.String())

	_, err = ParseLevel("verbose")
	assert.ErrorIs(t, err, errInvalidLogLevel)
}

func TestWatchKeepsCLIOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	_, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	ctx := newCLIContext(t, map[string]string{
		"volume": "0.2",
		"cmd":    "echo done",
		"notify": "true",
	})

	reloaded := make(chan *Config, 16)

	err = Watch(configPath, func(c *Config) {
		select {
		case reloaded <- c:
		default:
		}
	}, WithCLIConfig(ctx))
	require.NoError(t, err)

	err = os.WriteFile(
		configPath,
		[]byte("alert:\n  volume: 0.9\n  cmd: ls\ndisplay:\n  clock_color: \"#112233\"\n"),
		0o600,
	)
	require.NoError(t, err)

	timeout := time.After(5 * time.Second)

	for {
		select {
		case c := <-reloaded:
			if c.Display.ClockColor != "#112233" {
				continue
			}

			assert.Equal(t, 0.2, c.Alert.Volume)
			assert.Equal(t, "echo done", c.Alert.Cmd)
			assert.True(t, c.Alert.Notify)

			return
		case <-timeout:
			t.Fatal("timed out waiting for config reload")
		}
	}
}
