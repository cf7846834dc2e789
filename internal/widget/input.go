// Package widget holds the presentation-only leaf components of the countdown
// screen. Widgets keep no state of their own beyond what their owner supplies
// and report user actions through owner callbacks.
package widget

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputCharLimit = 4

// NumericInput is a labelled integer field. Edits are parsed and forwarded to
// the owner only when they form a non-negative integer; any other edit is
// undone immediately so the field always shows the last accepted value.
type NumericInput struct {
	onChange     func(int)
	field        textinput.Model
	label        string
	labelStyle   lipgloss.Style
	focusedStyle lipgloss.Style
	blurredStyle lipgloss.Style
	value        int
}

// NewNumericInput returns an input showing 0. onChange receives every
// accepted value.
func NewNumericInput(label string, onChange func(int)) NumericInput {
	field := textinput.New()
	field.Prompt = ""
	field.CharLimit = inputCharLimit
	field.Width = inputCharLimit
	field.Placeholder = "0"

	n := NumericInput{
		field:        field,
		label:        label,
		onChange:     onChange,
		focusedStyle: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()),
		blurredStyle: lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.HiddenBorder()),
	}

	return n.SetValue(0)
}

// SetStyles replaces the styles used for the field frame and the label.
func (n *NumericInput) SetStyles(focused, blurred, label lipgloss.Style) {
	n.focusedStyle = focused
	n.blurredStyle = blurred
	n.labelStyle = label
}

// SetValue sets the owner-controlled value and redraws the field with it.
func (n NumericInput) SetValue(v int) NumericInput {
	n.value = v
	n.field.SetValue(strconv.Itoa(v))
	n.field.CursorEnd()

	return n
}

// Value returns the last value supplied by the owner or accepted from the
// user.
func (n NumericInput) Value() int {
	return n.value
}

// Text returns the raw contents of the field.
func (n NumericInput) Text() string {
	return n.field.Value()
}

// Label returns the input label.
func (n NumericInput) Label() string {
	return n.label
}

func (n *NumericInput) Focus() tea.Cmd {
	return n.field.Focus()
}

// Blur removes focus and redraws the field in canonical form, so "07" is
// shown as "7".
func (n *NumericInput) Blur() {
	n.field.Blur()
	*n = n.SetValue(n.value)
}

func (n NumericInput) Focused() bool {
	return n.field.Focused()
}

// Update forwards key input to the text field and emits the parsed value to
// the owner when it changed into a valid, non-negative integer.
func (n NumericInput) Update(msg tea.Msg) (NumericInput, tea.Cmd) {
	if !n.field.Focused() {
		return n, nil
	}

	prev := n.field.Value()

	var cmd tea.Cmd
	n.field, cmd = n.field.Update(msg)

	text := n.field.Value()
	if text == prev {
		return n, cmd
	}

	v, ok := ParseNonNegative(text)
	if !ok {
		// rejected edits never reach the screen
		return n.SetValue(n.value), cmd
	}

	n.value = v

	if n.onChange != nil {
		n.onChange(v)
	}

	return n, cmd
}

func (n NumericInput) View() string {
	style := n.blurredStyle
	if n.field.Focused() {
		style = n.focusedStyle
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		style.Render(n.field.View()),
		" ",
		n.labelStyle.Render(n.label),
	)
}

// ParseNonNegative parses s as a base 10 integer and reports whether it is a
// valid value for a numeric input.
func ParseNonNegative(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0, false
	}

	return v, true
}
