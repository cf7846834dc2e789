// Package countdown implements the timer state machine: the minute and second
// inputs, the authoritative countdown value, and the five transitions that
// mutate them.
package countdown

import (
	"slices"

	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// Validation messages reported by Start, in the order they are checked.
const (
	MsgMinutesRange = "minutes must be a number between 0 and 59"
	MsgSecondsRange = "seconds must be a number between 0 and 59"
)

const (
	maxMinutes = 59
	maxSeconds = 59
)

// Phase is the observable state of the machine. Expiry is resolved within a
// single tick so it is never reported.
type Phase int

const (
	Idle Phase = iota
	Running
)

func (p Phase) String() string {
	if p == Running {
		return "running"
	}

	return "idle"
}

// Outcome describes the effect of a Start or Tick.
type Outcome int

const (
	// Ignored means the call had no effect on the state.
	Ignored Outcome = iota
	// Rejected means Start failed validation; see State.Errors.
	Rejected
	// Started means the machine entered Running.
	Started
	// Ticked means the countdown was decremented and is still running.
	Ticked
	// Expired means the countdown reached zero, the alert fired and the
	// machine was reset.
	Expired
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Started:
		return "started"
	case Ticked:
		return "ticked"
	case Expired:
		return "expired"
	default:
		return "ignored"
	}
}

// Lease identifies the periodic tick owned by one Running period. A new lease
// is acquired on every entry into Running and retired on every exit, so ticks
// scheduled under an older lease are discarded.
type Lease uint64

// Alerter is notified exactly once each time the countdown expires.
type Alerter interface {
	Alert()
}

// AlerterFunc adapts a function to the Alerter interface.
type AlerterFunc func()

func (f AlerterFunc) Alert() {
	f()
}

// State is a snapshot of the timer.
type State struct {
	Errors       []string
	InputMinutes int
	InputSeconds int
	TotalSeconds int
	Running      bool
}

// Display renders the remaining time as "M:SS".
func (s State) Display() string {
	return timeutil.Clock(s.TotalSeconds)
}

// Machine owns one TimerState. It is not safe for concurrent use; every
// transition is expected to run on the goroutine that owns the UI loop.
type Machine struct {
	alerter Alerter
	state   State
	lease   Lease
	leases  Lease
}

// New returns an idle machine with zeroed state. A nil alerter is allowed.
func New(alerter Alerter) *Machine {
	if alerter == nil {
		alerter = AlerterFunc(func() {})
	}

	return &Machine{
		alerter: alerter,
	}
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	s := m.state
	s.Errors = slices.Clone(m.state.Errors)

	return s
}

// Phase reports whether the countdown is ticking.
func (m *Machine) Phase() Phase {
	if m.state.Running {
		return Running
	}

	return Idle
}

// Lease returns the lease of the current Running period, or zero when idle.
func (m *Machine) Lease() Lease {
	return m.lease
}

// Display renders the remaining time as "M:SS".
func (m *Machine) Display() string {
	return m.state.Display()
}

// EditMinutes stores the minutes input. While idle the countdown value is
// recomputed; while running the value only applies to the next Start.
// Negative values never reach the machine and are ignored.
func (m *Machine) EditMinutes(v int) {
	if v < 0 {
		return
	}

	m.state.InputMinutes = v

	if !m.state.Running {
		m.state.TotalSeconds = timeutil.ToSecs(v, m.state.InputSeconds)
	}
}

// EditSeconds is the seconds counterpart of EditMinutes.
func (m *Machine) EditSeconds(v int) {
	if v < 0 {
		return
	}

	m.state.InputSeconds = v

	if !m.state.Running {
		m.state.TotalSeconds = timeutil.ToSecs(m.state.InputMinutes, v)
	}
}

// validate checks both inputs and returns every message that applies.
func (m *Machine) validate() []string {
	var errs []string

	if m.state.InputMinutes < 0 || m.state.InputMinutes > maxMinutes {
		errs = append(errs, MsgMinutesRange)
	}

	if m.state.InputSeconds < 0 || m.state.InputSeconds > maxSeconds {
		errs = append(errs, MsgSecondsRange)
	}

	return errs
}

// Start validates the inputs and begins the countdown from them. Calling
// Start while running has no effect. A zero total expires immediately.
func (m *Machine) Start() Outcome {
	if m.state.Running {
		return Ignored
	}

	if errs := m.validate(); len(errs) > 0 {
		m.state.Errors = errs
		return Rejected
	}

	m.state.Errors = nil
	m.state.TotalSeconds = timeutil.ToSecs(
		m.state.InputMinutes,
		m.state.InputSeconds,
	)
	m.state.Running = true
	m.acquire()

	if m.state.TotalSeconds == 0 {
		m.expire()
		return Expired
	}

	return Started
}

// Stop pauses the countdown. The remaining time is kept on display.
func (m *Machine) Stop() bool {
	if !m.state.Running {
		return false
	}

	m.state.Running = false
	m.release()

	return true
}

// Reset returns every field to its initial value from any state.
func (m *Machine) Reset() {
	m.state = State{}
	m.release()
}

// Tick applies one elapsed second. Ticks carrying a retired lease, or arriving
// while idle, are ignored.
func (m *Machine) Tick(l Lease) Outcome {
	if !m.state.Running || l == 0 || l != m.lease {
		return Ignored
	}

	if m.state.TotalSeconds > 0 {
		m.state.TotalSeconds--
	}

	if m.state.TotalSeconds == 0 {
		m.expire()
		return Expired
	}

	return Ticked
}

// expire sounds the alert and resets. The machine never lingers at 0:00.
func (m *Machine) expire() {
	m.alerter.Alert()
	m.Reset()
}

func (m *Machine) acquire() {
	m.leases++
	m.lease = m.leases
}

func (m *Machine) release() {
	m.lease = 0
}
