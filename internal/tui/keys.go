package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings with built-in help text.
type KeyMap struct {
	Quit       key.Binding
	NextAction key.Binding
	PrevAction key.Binding
	PickAction key.Binding
	ReadOnly   key.Binding
	Clear      key.Binding
	Export     key.Binding

	// Paint is display-only: painting happens with the mouse.
	Paint key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		NextAction: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next action"),
		),
		PrevAction: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev action"),
		),
		PickAction: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "pick action"),
		),
		ReadOnly: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "read-only"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		// "drag" is never a key name, so this binding can't match a
		// KeyMsg; it exists so the help line advertises mouse painting.
		Paint: key.NewBinding(
			key.WithKeys("drag"),
			key.WithHelp("drag", "paint"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Paint, k.NextAction, k.PickAction, k.ReadOnly, k.Clear, k.Export, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Paint, k.NextAction, k.PrevAction, k.PickAction},
		{k.ReadOnly, k.Clear, k.Export, k.Quit},
	}
}
