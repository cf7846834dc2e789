// Package timer implements the interactive countdown screen
package timer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/countdown"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/internal/widget"
)

const (
	padding  = 2
	maxWidth = 80
)

type focusIndex int

const (
	focusMinutes focusIndex = iota
	focusSeconds
	focusStart
	focusStop
	focusReset
	focusCount
)

const (
	btnStart = iota
	btnStop
	btnReset
)

type (
	// tickMsg is delivered once per second to the Running period that owns
	// lease.
	tickMsg struct {
		lease countdown.Lease
	}

	expiryDoneMsg struct {
		err error
	}

	// ReloadMsg carries a configuration that was changed on disk.
	ReloadMsg struct {
		Config *config.Config
	}
)

// Timer is the root model of the countdown screen.
type Timer struct {
	machine  *countdown.Machine
	cfg      *config.Config
	schedule func(countdown.Lease) tea.Cmd
	styles   ui.Styles
	help     help.Model
	keys     keymap
	minutes  widget.NumericInput
	seconds  widget.NumericInput
	buttons  []widget.Button
	focus    focusIndex
}

// tick arms a single tick for the Running period identified by lease.
func tick(lease countdown.Lease) tea.Cmd {
	return tea.Tick(countdown.DefaultInterval, func(time.Time) tea.Msg {
		return tickMsg{lease: lease}
	})
}

// New returns the countdown screen. The inputs start at the configured
// presets and alerter is invoked each time the countdown expires.
func New(cfg *config.Config, alerter countdown.Alerter) *Timer {
	t := &Timer{
		machine:  countdown.New(alerter),
		cfg:      cfg,
		schedule: tick,
		help:     help.New(),
		keys:     defaultKeymap,
	}

	t.minutes = widget.NewNumericInput("Minutes", t.machine.EditMinutes)
	t.seconds = widget.NewNumericInput("Seconds", t.machine.EditSeconds)

	t.buttons = []widget.Button{
		btnStart: widget.NewButton("Start", t.start),
		btnStop:  widget.NewButton("Stop", t.stop),
		btnReset: widget.NewButton("Reset", t.reset),
	}

	t.machine.EditMinutes(cfg.Preset.Minutes)
	t.machine.EditSeconds(cfg.Preset.Seconds)
	t.syncInputs()

	t.applyStyles(ui.NewStyles(cfg.Display))
	t.setFocus(focusMinutes)

	return t
}

func (t *Timer) Init() tea.Cmd {
	return textinput.Blink
}

// Machine exposes the underlying state machine.
func (t *Timer) Machine() *countdown.Machine {
	return t.machine
}

func (t *Timer) applyStyles(s ui.Styles) {
	t.styles = s

	t.minutes.SetStyles(s.InputFocused, s.Input, s.Label)
	t.seconds.SetStyles(s.InputFocused, s.Input, s.Label)

	for i := range t.buttons {
		t.buttons[i].SetStyles(s.ButtonFocused, s.Button)
	}

	t.help.Styles.ShortKey = s.Label
	t.help.Styles.ShortDesc = s.Hint
	t.help.Styles.ShortSeparator = s.Hint
}

// syncInputs redraws both inputs from the machine after a transition that
// changed the stored values.
func (t *Timer) syncInputs() {
	state := t.machine.State()

	t.minutes = t.minutes.SetValue(state.InputMinutes)
	t.seconds = t.seconds.SetValue(state.InputSeconds)
}

func (t *Timer) setFocus(f focusIndex) tea.Cmd {
	t.focus = (f%focusCount + focusCount) % focusCount

	t.minutes.Blur()
	t.seconds.Blur()

	for i := range t.buttons {
		t.buttons[i].Blur()
	}

	switch t.focus {
	case focusMinutes:
		return t.minutes.Focus()
	case focusSeconds:
		return t.seconds.Focus()
	default:
		t.buttons[t.focus-focusStart].Focus()
	}

	return nil
}

// focusedButton returns the index of the focused button, or -1 when an input
// has focus.
func (t *Timer) focusedButton() int {
	if t.focus < focusStart {
		return -1
	}

	return int(t.focus - focusStart)
}

func (t *Timer) start() tea.Cmd {
	switch t.machine.Start() {
	case countdown.Started:
		return t.schedule(t.machine.Lease())
	case countdown.Expired:
		return t.expired()
	}

	return nil
}

func (t *Timer) stop() tea.Cmd {
	t.machine.Stop()

	return nil
}

func (t *Timer) reset() tea.Cmd {
	t.machine.Reset()
	t.syncInputs()

	return nil
}

// expired runs after the machine has fired the alert and reset itself.
func (t *Timer) expired() tea.Cmd {
	t.syncInputs()

	alert := t.cfg.Alert
	if !hasExpiryHooks(alert) {
		return nil
	}

	return func() tea.Msg {
		return expiryDoneMsg{err: RunExpiryHooks(alert)}
	}
}
