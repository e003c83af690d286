package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level keybindings. Panel keys live with
// their panels.
type KeyMap struct {
	Quit       key.Binding
	ToggleTab  key.Binding
	GotoForm   key.Binding
	GotoList   key.Binding
	LeaveInput key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ToggleTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "switch tab"),
		),
		GotoForm: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "generate"),
		),
		GotoList: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "history"),
		),
		LeaveInput: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "history"),
		),
	}
}
