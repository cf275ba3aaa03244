package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Paging
	NextPage  key.Binding
	PrevPage  key.Binding
	FirstPage key.Binding
	LastPage  key.Binding

	// Selection
	Toggle        key.Binding
	TogglePage    key.Binding
	SelectN       key.Binding
	ShowSelection key.Binding

	// Actions
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding
	Filter key.Binding
	Sort   key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Paging
		NextPage: key.NewBinding(
			key.WithKeys("l", "right", "n"),
			key.WithHelp("l/→", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("h", "left", "p"),
			key.WithHelp("h/←", "previous page"),
		),
		FirstPage: key.NewBinding(
			key.WithKeys("<"),
			key.WithHelp("<", "first page"),
		),
		LastPage: key.NewBinding(
			key.WithKeys(">"),
			key.WithHelp(">", "last page"),
		),

		// Selection
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle row"),
		),
		TogglePage: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "toggle page"),
		),
		SelectN: key.NewBinding(
			key.WithKeys("N", "#"),
			key.WithHelp("N", "select next N"),
		),
		ShowSelection: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view selection"),
		),

		// Actions
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel/clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload page"),
		),
	}
}

// Keys is the global key bindings instance
var Keys = DefaultKeyMap()
