// Package app wires the countdown command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
)

// Get retrieves the countdown app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "countdown",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Countdown is a minutes and seconds timer for the command-line. Set the
		inputs, press Start and an alert sounds when the clock reaches 0:00.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "run",
				Usage:  "Run a countdown without the interactive screen",
				Flags:  timerFlags(),
				Action: runAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the available alert sounds",
				Action: soundsAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  timerFlags(),
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
