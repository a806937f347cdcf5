// Package selector is a modal that lets the user pick one of a few options.
package selector

import (
	"fmt"
	"strings"

	"github.com/Kavantix/kanview/internal/messages"
	"github.com/Kavantix/kanview/internal/overlay"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

type Model struct {
	title    string
	options  []string
	cursor   int
	onSelect func(index int) tea.Cmd
}

// assert
var _ overlay.ModalModel = Model{}

// Show opens a selector with the cursor on current. onSelect runs with the
// index of the picked option.
func Show(title string, options []string, current int, onSelect func(index int) tea.Cmd) tea.Cmd {
	return func() tea.Msg {
		return New(title, options, current, onSelect)
	}
}

func New(title string, options []string, current int, onSelect func(index int) tea.Cmd) Model {
	return Model{
		title:    title,
		options:  options,
		cursor:   min(max(0, current), max(0, len(options)-1)),
		onSelect: onSelect,
	}
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) pick(index int) tea.Cmd {
	if index < 0 || index >= len(m.options) {
		return messages.CloseModal
	}
	return tea.Sequence(messages.CloseModal, m.onSelect(index))
}

func optionZone(index int) string {
	return fmt.Sprintf("selector-option-%d", index)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k", "shift+tab":
			m.cursor = (m.cursor - 1 + len(m.options)) % max(1, len(m.options))
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % max(1, len(m.options))
		case "enter", " ":
			return m, m.pick(m.cursor)
		case "esc", "q":
			return m, messages.CloseModal
		case "ctrl+c":
			return m, messages.Quit
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		for i := range m.options {
			if zone.Get(optionZone(i)).InBounds(msg) {
				m.cursor = i
				return m, m.pick(i)
			}
		}
	}
	return m, nil
}

func (m Model) OverlayTitle() string {
	return m.title
}

func (m Model) Size() (width int, height int) {
	content := m.View()
	return lipgloss.Width(content), lipgloss.Height(content)
}

var (
	selectorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)
)

func (m Model) View() string {
	var b strings.Builder
	for i, option := range m.options {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := "  " + option
		if i == m.cursor {
			line = selectedStyle.Render("> " + option)
		}
		b.WriteString(zone.Mark(optionZone(i), line))
	}
	return selectorStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(m.title),
		b.String(),
	))
}
