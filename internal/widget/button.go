package widget

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Button is a clickable control. Each press invokes the owner callback once;
// repeated presses are not debounced.
type Button struct {
	onPress      func() tea.Cmd
	label        string
	focusedStyle lipgloss.Style
	blurredStyle lipgloss.Style
	focused      bool
}

// NewButton returns a button that calls onPress when pressed.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{
		label:        label,
		onPress:      onPress,
		focusedStyle: lipgloss.NewStyle().Padding(0, 2).Reverse(true),
		blurredStyle: lipgloss.NewStyle().Padding(0, 2),
	}
}

// SetStyles replaces the focused and blurred styles.
func (b *Button) SetStyles(focused, blurred lipgloss.Style) {
	b.focusedStyle = focused
	b.blurredStyle = blurred
}

// Press invokes the owner callback and returns its command.
func (b Button) Press() tea.Cmd {
	if b.onPress == nil {
		return nil
	}

	return b.onPress()
}

func (b Button) Label() string {
	return b.label
}

func (b *Button) Focus() {
	b.focused = true
}

func (b *Button) Blur() {
	b.focused = false
}

func (b Button) Focused() bool {
	return b.focused
}

func (b Button) View() string {
	if b.focused {
		return b.focusedStyle.Render(b.label)
	}

	return b.blurredStyle.Render(b.label)
}
