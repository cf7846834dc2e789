package timer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/countdown/internal/countdown"
)

func (t *Timer) inputsView() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.minutes.View(),
		"   ",
		t.seconds.View(),
	)
}

func (t *Timer) clockView() string {
	status := "[Stopped]"
	if t.machine.Phase() == countdown.Running {
		status = "[Running]"
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		t.styles.Clock.Render(t.machine.Display()),
		"  ",
		t.styles.Hint.Render(status),
	)
}

func (t *Timer) buttonsView() string {
	views := make([]string, 0, len(t.buttons))

	for _, b := range t.buttons {
		views = append(views, b.View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// errorsView renders one alert line per validation message.
func (t *Timer) errorsView() string {
	errs := t.machine.State().Errors
	if len(errs) == 0 {
		return ""
	}

	lines := make([]string, 0, len(errs))

	for _, e := range errs {
		lines = append(lines, t.styles.Error.Render(e))
	}

	return "\n\n" + strings.Join(lines, "\n")
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.inputsView())
	s.WriteString("\n")
	s.WriteString(t.clockView())
	s.WriteString("\n")
	s.WriteString(t.buttonsView())
	s.WriteString(t.errorsView())
	s.WriteString("\n\n" + t.help.View(t.keys))

	return t.styles.Base.Render(s.String())
}
