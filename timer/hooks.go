package timer

import (
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/countdown/internal/config"
)

const (
	notifyTitle   = "Countdown"
	notifyMessage = "Time is up!"
)

// runExpiryCmd executes the configured command without a shell.
func runExpiryCmd(cmdStr string) error {
	if cmdStr == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmdStr)
	if err != nil {
		return errParseExpiryCmd.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	if err := cmd.Run(); err != nil {
		return errRunExpiryCmd.Fmt(cmdStr).Wrap(err)
	}

	return nil
}

// RunExpiryHooks sends the desktop notification and runs the expiry command
// when they are enabled. The command still runs if the notification fails.
func RunExpiryHooks(cfg config.AlertConfig) error {
	var notifyErr error

	if cfg.Notify {
		if err := beeep.Notify(notifyTitle, notifyMessage, ""); err != nil {
			notifyErr = errNotify.Wrap(err)
		}
	}

	if err := runExpiryCmd(cfg.Cmd); err != nil {
		return err
	}

	return notifyErr
}

func hasExpiryHooks(cfg config.AlertConfig) bool {
	return cfg.Notify || cfg.Cmd != ""
}
