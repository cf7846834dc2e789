package countdown

import (
	"context"
	"time"
)

// DefaultInterval is the wall-clock length of one tick.
const DefaultInterval = time.Second

// Ticker drives a Machine from a time.Ticker for use outside an event loop.
type Ticker struct {
	machine  *Machine
	onFrame  func(State)
	interval time.Duration
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithInterval overrides the tick interval.
func WithInterval(d time.Duration) TickerOption {
	return func(t *Ticker) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithFrameFunc registers a callback that receives the state once on start
// and after every tick.
func WithFrameFunc(fn func(State)) TickerOption {
	return func(t *Ticker) {
		t.onFrame = fn
	}
}

// NewTicker returns a Ticker bound to m.
func NewTicker(m *Machine, opts ...TickerOption) *Ticker {
	t := &Ticker{
		machine:  m,
		interval: DefaultInterval,
		onFrame:  func(State) {},
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Run starts the machine and blocks until the countdown expires, is rejected
// or ctx is cancelled. Cancellation stops the machine, so the remaining time
// is preserved, and returns ctx.Err(). The underlying ticker is released on
// every return path.
func (t *Ticker) Run(ctx context.Context) (Outcome, error) {
	outcome := t.machine.Start()

	switch outcome {
	case Rejected, Ignored:
		return outcome, nil
	case Expired:
		t.onFrame(t.machine.State())
		return outcome, nil
	}

	lease := t.machine.Lease()

	clock := time.NewTicker(t.interval)
	defer clock.Stop()

	t.onFrame(t.machine.State())

	for {
		select {
		case <-ctx.Done():
			t.machine.Stop()
			return Ignored, ctx.Err()
		case <-clock.C:
			outcome = t.machine.Tick(lease)

			switch outcome {
			case Ticked:
				t.onFrame(t.machine.State())
			case Expired:
				t.onFrame(t.machine.State())
				return Expired, nil
			default:
				return outcome, nil
			}
		}
	}
}
