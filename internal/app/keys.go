package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Move     key.Binding
	Grouping key.Binding
	Sorting  key.Binding
	Theme    key.Binding
	Reload   key.Binding
	Filter   key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev column"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next column"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", "e", " "),
		key.WithHelp("enter", "open"),
	),
	Move: key.NewBinding(
		key.WithKeys("J", "K", "T", "B"),
		key.WithHelp("J/K/T/B", "move ticket"),
	),
	Grouping: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "group by"),
	),
	Sorting: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "sort by"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Open, k.Move, k.Grouping, k.Sorting, k.Theme, k.Reload, k.Filter, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Open, k.Move, k.Filter},
		{k.Grouping, k.Sorting, k.Theme, k.Reload, k.Quit},
	}
}
