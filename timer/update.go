package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/countdown/internal/countdown"
	"github.com/ayoisaiah/countdown/internal/ui"
)

func (t *Timer) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	switch t.machine.Tick(msg.lease) {
	case countdown.Ticked:
		return t, t.schedule(msg.lease)
	case countdown.Expired:
		slog.Info("countdown expired")
		return t, t.expired()
	}

	return t, nil
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, t.keys.quit):
		t.machine.Stop()
		return t, tea.Quit

	case key.Matches(msg, t.keys.next):
		return t, t.setFocus(t.focus + 1)

	case key.Matches(msg, t.keys.prev):
		return t, t.setFocus(t.focus - 1)

	case key.Matches(msg, t.keys.start):
		return t, t.start()

	case key.Matches(msg, t.keys.stop):
		return t, t.stop()

	case key.Matches(msg, t.keys.reset):
		return t, t.reset()

	case key.Matches(msg, t.keys.press):
		if i := t.focusedButton(); i >= 0 {
			return t, t.buttons[i].Press()
		}
	}

	var cmd tea.Cmd

	switch t.focus {
	case focusMinutes:
		t.minutes, cmd = t.minutes.Update(msg)
	case focusSeconds:
		t.seconds, cmd = t.seconds.Update(msg)
	}

	return t, cmd
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("message received", slog.String("msg", spew.Sdump(msg)))
	}

	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case expiryDoneMsg:
		if msg.err != nil {
			slog.Error("expiry hooks failed", slog.Any("error", msg.err))
		}

		return t, nil

	case ReloadMsg:
		if msg.Config == nil {
			return t, nil
		}

		// presets only seed a fresh screen
		t.cfg.Alert = msg.Config.Alert
		t.cfg.Display = msg.Config.Display
		ui.DarkTheme = msg.Config.Display.DarkTheme
		t.applyStyles(ui.NewStyles(msg.Config.Display))

		return t, nil

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.help.Width = min(msg.Width-padding*2, maxWidth)

		return t, nil
	}

	var cmd tea.Cmd

	switch t.focus {
	case focusMinutes:
		t.minutes, cmd = t.minutes.Update(msg)
	case focusSeconds:
		t.seconds, cmd = t.seconds.Update(msg)
	}

	return t, cmd
}
