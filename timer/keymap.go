package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	next  key.Binding
	prev  key.Binding
	press key.Binding
	start key.Binding
	stop  key.Binding
	reset key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next"),
	),
	prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous"),
	),
	press: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter/space", "press"),
	),
	start: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "start"),
	),
	stop: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "stop"),
	),
	reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.press, k.start, k.stop, k.reset, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.next, k.prev, k.press},
		{k.start, k.stop, k.reset, k.quit},
	}
}
