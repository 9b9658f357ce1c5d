package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit     key.Binding
	Shorter    key.Binding
	Longer     key.Binding
	Duration   key.Binding
	Retry      key.Binding
	Focus      key.Binding
	FocusBack  key.Binding
	HoverUp    key.Binding
	HoverDown  key.Binding
	ClearHover key.Binding
	PrevCard   key.Binding
	NextCard   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "find window")),
	Shorter:    key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "shorter")),
	Longer:     key.NewBinding(key.WithKeys("right", "+", "="), key.WithHelp("→/+", "longer")),
	Duration:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "hours")),
	Retry:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
	Focus:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next card")),
	FocusBack:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev card")),
	HoverUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "prev source")),
	HoverDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next source")),
	ClearHover: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
	PrevCard:   key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev day")),
	NextCard:   key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next day")),
	ScrollUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "scroll down")),
	PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Shorter, k.Longer, k.Submit, k.Focus, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Shorter, k.Longer, k.Duration, k.Submit, k.Retry},
		{k.Focus, k.FocusBack, k.HoverUp, k.HoverDown, k.ClearHover},
		{k.PrevCard, k.NextCard, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}
