package app

import "github.com/urfave/cli/v2"

var (
	minutesFlag = &cli.IntFlag{
		Name:    "minutes",
		Aliases: []string{"m"},
		Usage:   "Initial value of the minutes input (0-59)",
	}

	secondsFlag = &cli.IntFlag{
		Name:    "seconds",
		Aliases: []string{"s"},
		Usage:   "Initial value of the seconds input (0-59)",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when the countdown expires. Use a bundled sound name\n\t\t\t\t(see 'countdown sounds'), a path to an mp3, ogg, flac or wav file, or 'off'",
	}

	volumeFlag = &cli.Float64Flag{
		Name:  "volume",
		Usage: "Alert volume between 0 and 1 (default: 0.5)",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Display a desktop notification when the countdown expires",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when the countdown expires",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)

func timerFlags() []cli.Flag {
	return []cli.Flag{
		minutesFlag,
		secondsFlag,
		soundFlag,
		volumeFlag,
		notifyFlag,
		cmdFlag,
		noColorFlag,
	}
}
