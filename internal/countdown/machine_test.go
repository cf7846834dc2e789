package countdown

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type alertCounter struct {
	count int
}

func (a *alertCounter) Alert() {
	a.count++
}

func newTestMachine(t *testing.T, mins, secs int) (*Machine, *alertCounter) {
	t.Helper()

	a := &alertCounter{}
	m := New(a)
	m.EditMinutes(mins)
	m.EditSeconds(secs)

	return m, a
}

func assertState(t *testing.T, want, got State) {
	t.Helper()

	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestStartAcceptsEveryValidInput(t *testing.T) {
	for mins := 0; mins <= 59; mins++ {
		for secs := 0; secs <= 59; secs++ {
			if mins == 0 && secs == 0 {
				continue
			}

			m, a := newTestMachine(t, mins, secs)

			if got := m.Start(); got != Started {
				t.Fatalf("%d:%02d: expected %s, but got %s", mins, secs, Started, got)
			}

			assertState(t, State{
				InputMinutes: mins,
				InputSeconds: secs,
				TotalSeconds: mins*60 + secs,
				Running:      true,
			}, m.State())

			if a.count != 0 {
				t.Fatalf("%d:%02d: alert fired on start", mins, secs)
			}
		}
	}
}

func TestStartValidation(t *testing.T) {
	testCases := []struct {
		name string
		mins int
		secs int
		want []string
	}{
		{
			name: "minutes above range",
			mins: 60,
			secs: 0,
			want: []string{MsgMinutesRange},
		},
		{
			name: "seconds above range",
			mins: 1,
			secs: 75,
			want: []string{MsgSecondsRange},
		},
		{
			name: "both out of range keeps minutes first",
			mins: 120,
			secs: 60,
			want: []string{MsgMinutesRange, MsgSecondsRange},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestMachine(t, tc.mins, tc.secs)
			before := m.State().TotalSeconds

			if got := m.Start(); got != Rejected {
				t.Fatalf("expected %s, but got %s", Rejected, got)
			}

			assertState(t, State{
				InputMinutes: tc.mins,
				InputSeconds: tc.secs,
				TotalSeconds: before,
				Errors:       tc.want,
			}, m.State())

			if m.Lease() != 0 {
				t.Errorf("rejected start must not acquire a tick lease")
			}
		})
	}
}

func TestStartRejectsNegativeInputsSetDirectly(t *testing.T) {
	m := New(nil)
	m.state.InputMinutes = -1
	m.state.InputSeconds = -3

	if got := m.Start(); got != Rejected {
		t.Fatalf("expected %s, but got %s", Rejected, got)
	}

	want := []string{MsgMinutesRange, MsgSecondsRange}
	if diff := cmp.Diff(want, m.State().Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	if m.Phase() != Idle {
		t.Errorf("expected machine to stay idle")
	}
}

func TestErrorsAreOnlyClearedByStartOrReset(t *testing.T) {
	m, _ := newTestMachine(t, 99, 0)
	m.Start()

	m.EditMinutes(3)
	m.Stop()

	if len(m.State().Errors) != 1 {
		t.Fatalf("edit and stop must not clear errors, got %v", m.State().Errors)
	}

	if got := m.Start(); got != Started {
		t.Fatalf("expected %s, but got %s", Started, got)
	}

	if len(m.State().Errors) != 0 {
		t.Errorf("successful start must clear errors, got %v", m.State().Errors)
	}

	m.Reset()
	m.EditMinutes(80)
	m.Start()
	m.Reset()

	assertState(t, State{}, m.State())
}

func TestEditWhileIdleRecomputesTotal(t *testing.T) {
	m := New(nil)

	m.EditMinutes(5)

	assertState(t, State{
		InputMinutes: 5,
		TotalSeconds: 300,
	}, m.State())

	m.EditSeconds(7)

	assertState(t, State{
		InputMinutes: 5,
		InputSeconds: 7,
		TotalSeconds: 307,
	}, m.State())
}

func TestEditIgnoresNegativeValues(t *testing.T) {
	m, _ := newTestMachine(t, 2, 0)

	m.EditMinutes(-1)
	m.EditSeconds(-10)

	assertState(t, State{
		InputMinutes: 2,
		TotalSeconds: 120,
	}, m.State())
}

func TestEditWhileRunningIsInertForDisplay(t *testing.T) {
	m, _ := newTestMachine(t, 1, 0)
	m.Start()

	m.EditSeconds(30)

	got := m.State()
	if got.InputSeconds != 30 {
		t.Errorf("expected pending seconds to be stored, got %d", got.InputSeconds)
	}

	if got.TotalSeconds != 60 {
		t.Errorf("expected total to remain 60, got %d", got.TotalSeconds)
	}

	if m.Display() != "1:00" {
		t.Errorf("expected display 1:00, got %s", m.Display())
	}
}

func TestStopPreservesRemainingTime(t *testing.T) {
	m, a := newTestMachine(t, 0, 10)
	m.Start()
	lease := m.Lease()

	m.Tick(lease)
	m.Tick(lease)

	if !m.Stop() {
		t.Fatal("expected stop to report a change")
	}

	assertState(t, State{
		InputSeconds: 10,
		TotalSeconds: 8,
	}, m.State())

	if a.count != 0 {
		t.Errorf("alert must not fire on stop")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	m, _ := newTestMachine(t, 0, 10)
	before := m.State()

	if m.Stop() {
		t.Error("stop while idle must report no change")
	}

	assertState(t, before, m.State())
}

func TestStartWhileRunningIsIgnored(t *testing.T) {
	m, _ := newTestMachine(t, 0, 10)
	m.Start()
	lease := m.Lease()

	m.Tick(lease)

	if got := m.Start(); got != Ignored {
		t.Fatalf("expected %s, but got %s", Ignored, got)
	}

	if m.Lease() != lease {
		t.Error("duplicate start must keep the current lease")
	}

	if got := m.State().TotalSeconds; got != 9 {
		t.Errorf("expected 9 seconds remaining, got %d", got)
	}
}

func TestStartAfterStopRestartsFromInputs(t *testing.T) {
	m, _ := newTestMachine(t, 0, 10)
	m.Start()
	m.Tick(m.Lease())
	m.Stop()
	m.EditSeconds(20)

	if got := m.Start(); got != Started {
		t.Fatalf("expected %s, but got %s", Started, got)
	}

	if got := m.State().TotalSeconds; got != 20 {
		t.Errorf("expected 20 seconds, got %d", got)
	}
}

func TestResetFromAnyState(t *testing.T) {
	testCases := []struct {
		setup func(m *Machine)
		name  string
	}{
		{name: "fresh", setup: func(*Machine) {}},
		{name: "idle with inputs", setup: func(m *Machine) {
			m.EditMinutes(4)
			m.EditSeconds(2)
		}},
		{name: "running", setup: func(m *Machine) {
			m.EditMinutes(1)
			m.Start()
		}},
		{name: "paused", setup: func(m *Machine) {
			m.EditSeconds(30)
			m.Start()
			m.Tick(m.Lease())
			m.Stop()
		}},
		{name: "with errors", setup: func(m *Machine) {
			m.EditMinutes(61)
			m.Start()
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := &alertCounter{}
			m := New(a)
			tc.setup(m)

			m.Reset()
			m.Reset()

			assertState(t, State{}, m.State())

			if m.Lease() != 0 {
				t.Error("reset must retire the tick lease")
			}

			if a.count != 0 {
				t.Error("alert must not fire on reset")
			}
		})
	}
}

func TestTickDecrementsByOne(t *testing.T) {
	m, _ := newTestMachine(t, 0, 5)
	m.Start()
	lease := m.Lease()

	for want := 4; want > 0; want-- {
		if got := m.Tick(lease); got != Ticked {
			t.Fatalf("expected %s, but got %s", Ticked, got)
		}

		if got := m.State().TotalSeconds; got != want {
			t.Fatalf("expected %d seconds remaining, got %d", want, got)
		}
	}
}

func TestExpiry(t *testing.T) {
	m, a := newTestMachine(t, 0, 2)

	if got := m.Start(); got != Started {
		t.Fatalf("expected %s, but got %s", Started, got)
	}

	lease := m.Lease()

	if got := m.Tick(lease); got != Ticked {
		t.Fatalf("expected %s, but got %s", Ticked, got)
	}

	if got := m.State().TotalSeconds; got != 1 {
		t.Fatalf("expected 1 second remaining, got %d", got)
	}

	if got := m.Tick(lease); got != Expired {
		t.Fatalf("expected %s, but got %s", Expired, got)
	}

	if a.count != 1 {
		t.Errorf("expected one alert, got %d", a.count)
	}

	assertState(t, State{}, m.State())

	if got := m.Tick(lease); got != Ignored {
		t.Errorf("tick after expiry must be ignored, got %s", got)
	}

	if a.count != 1 {
		t.Errorf("alert fired again after expiry")
	}
}

func TestStartWithZeroTotalExpiresImmediately(t *testing.T) {
	m, a := newTestMachine(t, 0, 0)

	if got := m.Start(); got != Expired {
		t.Fatalf("expected %s, but got %s", Expired, got)
	}

	if a.count != 1 {
		t.Errorf("expected one alert, got %d", a.count)
	}

	assertState(t, State{}, m.State())
}

func TestStaleLeaseIsIgnored(t *testing.T) {
	m, a := newTestMachine(t, 0, 3)
	m.Start()
	first := m.Lease()

	m.Stop()

	if got := m.Tick(first); got != Ignored {
		t.Fatalf("tick after stop must be ignored, got %s", got)
	}

	m.Start()
	second := m.Lease()

	if second == first {
		t.Fatal("a new running period must acquire a new lease")
	}

	m.Tick(first)
	m.Tick(first)
	m.Tick(first)

	if got := m.State().TotalSeconds; got != 3 {
		t.Errorf("stale ticks changed the countdown: %d", got)
	}

	if a.count != 0 {
		t.Errorf("stale ticks fired the alert")
	}

	if got := m.Tick(second); got != Ticked {
		t.Errorf("current lease must tick, got %s", got)
	}
}

func TestStateReturnsACopy(t *testing.T) {
	m, _ := newTestMachine(t, 70, 0)
	m.Start()

	s := m.State()
	s.Errors[0] = "changed"

	if m.State().Errors[0] != MsgMinutesRange {
		t.Error("mutating a snapshot must not affect the machine")
	}
}

func TestDisplay(t *testing.T) {
	testCases := []struct {
		want  string
		total int
	}{
		{total: 65, want: "1:05"},
		{total: 9, want: "0:09"},
		{total: 0, want: "0:00"},
	}

	for _, tc := range testCases {
		s := State{TotalSeconds: tc.total}
		if got := s.Display(); got != tc.want {
			t.Errorf("%d: expected %s, but got %s", tc.total, tc.want, got)
		}
	}
}
