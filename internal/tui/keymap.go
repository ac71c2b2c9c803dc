package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit   key.Binding
	Help   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Tables key.Binding
	Charts key.Binding
	Shares key.Binding
	Edit   key.Binding
	Reset  key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab/←", "previous tab"),
		),
		Tables: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "tables"),
		),
		Charts: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "charts"),
		),
		Shares: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "shares"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit data"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to samples"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Edit, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tables, k.Charts, k.Shares, k.Next, k.Prev},
		{k.Edit, k.Reset, k.Help, k.Quit},
	}
}
