package myskills

import "charm.land/bubbles/v2/key"

type keyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Percent key.Binding
	Refresh key.Binding
	Open    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		NextTab: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("Tab", "Category")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("S-Tab", "Back")),
		Up:      key.NewBinding(key.WithKeys("up", "k")),
		Down:    key.NewBinding(key.WithKeys("down", "j")),
		Left:    key.NewBinding(key.WithKeys("left", "h")),
		Right:   key.NewBinding(key.WithKeys("right", "l")),
		Percent: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Labels/%")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Refresh")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Details")),
		Quit:    key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "Quit")),
	}
}
