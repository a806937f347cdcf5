// Package messages holds the tea messages shared between the app and
// its modals.
package messages

import (
	tea "github.com/charmbracelet/bubbletea"
)

type CloseModalMsg struct{}

func CloseModal() tea.Msg {
	return CloseModalMsg{}
}

type QuitMsg struct{}

func Quit() tea.Msg {
	return QuitMsg{}
}

// ReloadMsg asks the app to fetch the tickets again.
type ReloadMsg struct{}

func Reload() tea.Msg {
	return ReloadMsg{}
}

type CriticalFailureMsg struct {
	Err          error
	FriendlyText string
}

func CriticalFailure(friendlyText string, err error) tea.Cmd {
	return func() tea.Msg {
		return CriticalFailureMsg{Err: err, FriendlyText: friendlyText}
	}
}
