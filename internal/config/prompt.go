package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ┏━╸┏━┓╻ ╻┏┓╻╺┳╸╺┳┓┏━┓╻ ╻┏┓╻
 ┃  ┃ ┃┃ ┃┃┗┫ ┃  ┃┃┃ ┃┃╻┃┃┗┫
 ┗━╸┗━┛┗━┛╹ ╹ ╹ ╺┻┛┗━┛┗┻┛╹ ╹`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	Sound  string
	Volume float64
}

// WithPromptConfig returns an Option that asks for the alert settings the
// first time countdown runs in an interactive terminal.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return nil
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure countdown for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'countdown edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Alert sound").
				Options(
					huh.NewOption("Beep", DefaultSound).Selected(true),
					huh.NewOption("No sound", soundOff),
				).
				Value(&opts.Sound),
		),
		huh.NewGroup(
			huh.NewSelect[float64]().
				Title("Alert volume").
				Options(
					huh.NewOption("Quiet (25%)", 0.25),
					huh.NewOption("Moderate (50%)", DefaultVolume).Selected(true),
					huh.NewOption("Loud (75%)", 0.75),
					huh.NewOption("Full (100%)", 1.0),
				).
				Value(&opts.Volume),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Alert.Sound = opts.Sound
	c.Alert.Volume = opts.Volume
}
