// Package ui holds the colours and styles shared by the interactive and
// headless countdown views
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/countdown/internal/config"
)

// Styles are the lipgloss styles of the countdown screen.
type Styles struct {
	Base          lipgloss.Style
	Clock         lipgloss.Style
	Error         lipgloss.Style
	Label         lipgloss.Style
	Hint          lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
}

func colorOr(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}

	return lipgloss.Color(value)
}

// NewStyles derives the screen styles from the display settings.
func NewStyles(d config.DisplayConfig) Styles {
	clock := colorOr(d.ClockColor, config.DefaultClockColor)
	errColor := colorOr(d.ErrorColor, config.DefaultErrorColor)
	button := colorOr(d.ButtonColor, config.DefaultButtonColor)
	focus := colorOr(d.FocusColor, config.DefaultFocusColor)

	text := lipgloss.Color("#FFFFFF")
	muted := lipgloss.Color("#6E6E6E")

	if !d.DarkTheme {
		text = lipgloss.Color("#000000")
		muted = lipgloss.Color("#8C8C8C")
	}

	return Styles{
		Base:  lipgloss.NewStyle().Padding(1, 2),
		Clock: lipgloss.NewStyle().Bold(true).Foreground(clock).Padding(1, 0),
		Error: lipgloss.NewStyle().
			Foreground(errColor).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(errColor).
			PaddingLeft(1),
		Label: lipgloss.NewStyle().Foreground(text),
		Hint:  lipgloss.NewStyle().Foreground(muted),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(button).
			Padding(0, 2).
			MarginRight(2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(focus).
			Underline(true).
			Padding(0, 2).
			MarginRight(2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(focus).
			Padding(0, 1),
	}
}
