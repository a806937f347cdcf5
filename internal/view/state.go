// Package view holds the transient board configuration chosen by the user.
package view

import (
	"github.com/Kavantix/kanview/internal/board"
	"github.com/Kavantix/kanview/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// State is replaced as a whole on every change and never persisted.
type State struct {
	Grouping board.Grouping
	Sorting  board.Sorting
	Theme    theme.Name
}

func Default() State {
	return State{
		Grouping: board.ByStatus,
		Sorting:  board.ByPriorityDesc,
		Theme:    theme.Light,
	}
}

func (s State) WithGrouping(grouping board.Grouping) State {
	s.Grouping = grouping
	return s
}

func (s State) WithSorting(sorting board.Sorting) State {
	s.Sorting = sorting
	return s
}

func (s State) WithTheme(name theme.Name) State {
	s.Theme = name
	return s
}

func (s State) ToggleTheme() State {
	if s.Theme == theme.Dark {
		return s.WithTheme(theme.Light)
	}
	return s.WithTheme(theme.Dark)
}

type Update func(State) State

// UpdateMsg asks the app to replace its state with Update applied to it.
type UpdateMsg struct {
	Update Update
}

func Apply(update Update) tea.Cmd {
	return func() tea.Msg {
		return UpdateMsg{update}
	}
}

func SetGrouping(grouping board.Grouping) Update {
	return func(s State) State { return s.WithGrouping(grouping) }
}

func SetSorting(sorting board.Sorting) Update {
	return func(s State) State { return s.WithSorting(sorting) }
}

func SetTheme(name theme.Name) Update {
	return func(s State) State { return s.WithTheme(name) }
}
