package ticket

import (
	tea "github.com/charmbracelet/bubbletea"
)

// TicketsUpdatedMsg carries a copy of the store's list after a load or move.
type TicketsUpdatedMsg struct {
	Snapshot Snapshot
}

func ShowTicket(t Ticket, userName string) tea.Cmd {
	return func() tea.Msg {
		return NewModel(t, userName)
	}
}
