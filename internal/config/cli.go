package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options. Pointer fields
// are nil when the flag was not provided.
type CLIOptions struct {
	Minutes *int
	Seconds *int
	Volume  *float64
	Sound   string
	Cmd     string
	Notify  bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Sound:  ctx.String("sound"),
			Cmd:    ctx.String("cmd"),
			Notify: ctx.Bool("notify"),
		}

		if ctx.IsSet("minutes") {
			v := ctx.Int("minutes")
			opts.Minutes = &v
		}

		if ctx.IsSet("seconds") {
			v := ctx.Int("seconds")
			opts.Seconds = &v
		}

		if ctx.IsSet("volume") {
			v := ctx.Float64("volume")
			opts.Volume = &v
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Minutes != nil {
		c.Preset.Minutes = *opts.Minutes
	}

	if opts.Seconds != nil {
		c.Preset.Seconds = *opts.Seconds
	}

	if opts.Volume != nil {
		c.Alert.Volume = *opts.Volume
	}

	if opts.Sound != "" {
		c.Alert.Sound = opts.Sound
	}

	if opts.Cmd != "" {
		c.Alert.Cmd = opts.Cmd
	}

	if opts.Notify {
		c.Alert.Notify = true
	}
}
