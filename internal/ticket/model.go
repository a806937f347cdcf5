package ticket

import (
	"github.com/Kavantix/kanview/internal/messages"
	"github.com/Kavantix/kanview/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Model is the read-only detail card of a single ticket.
type Model struct {
	width  int
	height int

	ticket   Ticket
	userName string
}

// assert
var _ overlay.ModalModel = Model{}
var _ overlay.Sizeable = Model{}

var idStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("69")).
	Bold(true)

func IdStyle() lipgloss.Style {
	return idStyle
}

var labelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245")).
	Width(10)

var ticketStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("62")).
	Padding(1)

func NewModel(ticket Ticket, userName string) Model {
	return Model{
		ticket:   ticket,
		userName: userName,
		width:    60,
	}
}

func (m Model) SetSize(width, height int) overlay.ModalModel {
	m.width = width
	m.height = height
	return m
}

func (m Model) Size() (width int, height int) {
	content := m.View()
	return lipgloss.Width(content), lipgloss.Height(content)
}

func (m Model) OverlayTitle() string {
	return m.ticket.ID.String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q", " ":
			return m, messages.CloseModal
		case "ctrl+c":
			return m, messages.Quit
		}
	}
	return m, nil
}

func (m Model) field(label, value string) string {
	if value == "" {
		value = "-"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func (m Model) View() string {
	frameWidth, _ := ticketStyle.GetFrameSize()
	contentWidth := max(20, min(m.width, 72)-frameWidth)

	user := m.userName
	if user == "" {
		user = m.ticket.UserID
	}
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(wordwrap.String(m.ticket.Title, contentWidth-ticketStyle.GetHorizontalPadding())),
		"",
		m.field("Status", m.ticket.Status),
		m.field("User", user),
		m.field("Priority", m.ticket.Priority.Label()),
	)
	return ticketStyle.Width(contentWidth).Render(content)
}
