package confirm

import (
	"github.com/Kavantix/kanview/internal/messages"
	"github.com/Kavantix/kanview/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	yesZone = "confirm-yes"
	noZone  = "confirm-no"
)

type Model struct {
	question  string
	onConfirm tea.Cmd
}

// assert
var _ overlay.ModalModel = Model{}

func Show(question string, onConfirm tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return Model{
			question:  question,
			onConfirm: onConfirm,
		}
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			return m, tea.Batch(m.onConfirm, messages.CloseModal)
		case "n", "esc":
			return m, messages.CloseModal
		case "ctrl+c":
			return m, messages.Quit
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if zone.Get(yesZone).InBounds(msg) {
			return m, tea.Batch(m.onConfirm, messages.CloseModal)
		}
		if zone.Get(noZone).InBounds(msg) {
			return m, messages.CloseModal
		}
	}
	return m, nil
}

func (m Model) OverlayTitle() string {
	return "Confirm"
}

// Size implements overlay.ModalModel.
func (m Model) Size() (width int, height int) {
	content := m.View()
	return lipgloss.Width(content), lipgloss.Height(content)
}

var confirmStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(1, 2)

var buttonStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("62")).
	Padding(0, 2).
	MarginRight(2)

func (m Model) View() string {
	buttons := lipgloss.JoinHorizontal(
		lipgloss.Top,
		zone.Mark(yesZone, buttonStyle.Render("Yes (y)")),
		zone.Mark(noZone, buttonStyle.Background(lipgloss.Color("239")).Render("No (n)")),
	)
	return confirmStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.question, "", buttons))
}
