package components

import "github.com/charmbracelet/bubbles/key"

// TableKeyMap defines key bindings for artwork table navigation
type TableKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	HalfUp   key.Binding
	HalfDown key.Binding
	Escape   key.Binding
	Enter    key.Binding
	Filter   key.Binding
}

// DefaultTableKeyMap returns the default table key bindings
func DefaultTableKeyMap() TableKeyMap {
	return TableKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first row"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last row"),
		),
		HalfUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("C-u", "half page up"),
		),
		HalfDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "half page down"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept filter"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
	}
}

// SelectionPanelKeyMap defines key bindings for the selection panel
type SelectionPanelKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Clear  key.Binding
	Filter key.Binding
	Close  key.Binding
}

// DefaultSelectionPanelKeyMap returns the default selection panel key bindings
func DefaultSelectionPanelKeyMap() SelectionPanelKeyMap {
	return SelectionPanelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up", "ctrl+p"),
			key.WithHelp("k/↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down", "ctrl+n"),
			key.WithHelp("j/↓", "next"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/space", "remove"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "v", "q"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Package-level key map instances
var (
	TableKeys          = DefaultTableKeyMap()
	SelectionPanelKeys = DefaultSelectionPanelKeyMap()
)
