package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the converter screen. The date
// input owns all printable keys, so every binding here is a control or
// navigation key.
type KeyMap struct {
	NextCalendar key.Binding
	PrevCalendar key.Binding
	Submit       key.Binding
	OpenRef      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextCalendar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next input calendar"),
		),
		PrevCalendar: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous input calendar"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "convert"),
		),
		OpenRef: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open algorithm reference"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1", "ctrl+g"),
			key.WithHelp("f1", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns key bindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCalendar, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextCalendar, k.PrevCalendar, k.Submit},
		{k.OpenRef, k.Help, k.Quit},
	}
}
