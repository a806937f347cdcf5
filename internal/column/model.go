package column

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Kavantix/kanview/internal/theme"
	"github.com/Kavantix/kanview/internal/ticket"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// UserNamer resolves user ids for the detail card.
type UserNamer func(userID string) string

type Model struct {
	store ticket.Store
	names UserNamer
	// order is the sorting applied to the column, nil when unsorted.
	order func(a, b ticket.Ticket) int

	delegate *listDelegate

	key     string
	focused bool
	theme   theme.Theme
	list    *list.Model

	lastClick *struct {
		ticketId ticket.ID
		at       time.Time
	}
}

type item struct {
	ticket ticket.Ticket
}

func (i item) Title() string {
	return i.ticket.Title + " " + i.ticket.ID.String()
}
func (i item) Description() string {
	return fmt.Sprintf("%s · %s", i.ticket.Priority.Label(), i.ticket.Status)
}
func (i item) FilterValue() string { return i.ticket.Title + " " + i.ticket.ID.String() }

var defaultStyles = list.NewDefaultItemStyles()

type listDelegate struct {
	list.DefaultDelegate
	width int
}

func (d listDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	buffer := strings.Builder{}
	d.DefaultDelegate.Render(&buffer, m, index, listItem)
	id := listItem.(item).ticket.ID.String()
	content := buffer.String()
	content = strings.Replace(content, id, ticket.IdStyle().Render(id), 1)
	fmt.Fprint(w, zone.Mark(id, lipgloss.NewStyle().Width(d.width).Render(content)))
}

func New(key, title string, store ticket.Store, names UserNamer, th theme.Theme) Model {
	delegate := listDelegate{list.NewDefaultDelegate(), 0}
	listModel := list.New(
		[]list.Item{},
		&delegate, 0, 0,
	)
	listModel.SetShowHelp(false)
	listModel.DisableQuitKeybindings()
	listModel.Title = title
	listModel.Styles.Title = th.ColumnTitle
	listModel.Styles.NoItems = listModel.Styles.NoItems.Foreground(th.Muted)
	m := Model{
		delegate: &delegate,
		store:    store,
		names:    names,
		key:      key,
		theme:    th,
		list:     &listModel,
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Key() string {
	return m.key
}

func (m Model) SetTitle(title string) {
	m.list.Title = title
}

// SetNames replaces the resolver used for the detail card.
func (m *Model) SetNames(names UserNamer) {
	m.names = names
}

// SetOrder tells the column how its tickets are sorted. Moves between
// tickets that the order tells apart are ignored.
func (m *Model) SetOrder(order func(a, b ticket.Ticket) int) {
	m.order = order
}

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Unfocus() {
	m.focused = false
}

func (m Model) Focused() bool {
	return m.focused
}

func (m Model) IsCapturingInput() bool {
	return m.list.SettingFilter()
}

func (m Model) SetSize(width, height int) {
	styleX, styleY := m.theme.Column.GetFrameSize()
	m.list.SetSize(width-styleX, height-styleY)
	m.delegate.width = width - styleX
}

// SelectedTicket returns the ticket under the cursor.
func (m Model) SelectedTicket() (ticket.Ticket, bool) {
	item, ok := m.list.SelectedItem().(item)
	return item.ticket, ok
}

// SetTickets replaces the items while keeping the selected ticket selected.
func (m Model) SetTickets(tickets []ticket.Ticket) tea.Cmd {
	var selectedTicketId ticket.ID
	visibleItems := m.list.VisibleItems()
	selectedIndex := m.list.Index()
	if len(visibleItems) > 0 {
		if selectedIndex >= 0 && selectedIndex < len(visibleItems) {
			ticket := visibleItems[selectedIndex].(item).ticket
			selectedTicketId = ticket.ID
		}
	}

	items := make([]list.Item, 0, len(tickets))
	var newSelectedIndex = selectedIndex
	for _, ticket := range tickets {
		if ticket.ID == selectedTicketId {
			newSelectedIndex = len(items)
		}
		items = append(items, item{ticket: ticket})
	}
	cmd := m.list.SetItems(items)
	if newSelectedIndex != selectedIndex {
		m.list.Select(newSelectedIndex)
	}
	return cmd
}

func (m Model) showTicket(t ticket.Ticket) tea.Cmd {
	userName := t.UserID
	if m.names != nil {
		userName = m.names(t.UserID)
	}
	return ticket.ShowTicket(t, userName)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			newListModel := *m.list
			var cmd tea.Cmd
			switch msg.Button {
			case tea.MouseButtonWheelDown:
				newListModel, cmd = m.list.Update(tea.KeyMsg{Type: tea.KeyDown})
			case tea.MouseButtonWheelUp:
				newListModel, cmd = m.list.Update(tea.KeyMsg{Type: tea.KeyUp})
			case tea.MouseButtonLeft:
				visibleItems := newListModel.VisibleItems()
				for i, listItem := range visibleItems {
					item := listItem.(item)
					if zone.Get(item.ticket.ID.String()).InBounds(msg) {
						newListModel.Select(i)
						if m.lastClick != nil &&
							m.lastClick.ticketId == item.ticket.ID &&
							time.Since(m.lastClick.at) < 500*time.Millisecond {
							m.lastClick = nil
							m.list = &newListModel
							return m, m.showTicket(item.ticket)
						} else {
							m.lastClick = &struct {
								ticketId ticket.ID
								at       time.Time
							}{
								item.ticket.ID, time.Now(),
							}
						}
						break
					}
				}
			}
			m.list = &newListModel
			return m, cmd
		}
	case tea.KeyMsg:
		if m.IsCapturingInput() {
			break
		}
		switch msg.String() {
		case "esc":
			if m.list.IsFiltered() {
				m.list.ResetFilter()
			}
			return m, nil
		case "enter", "e", " ":
			t, ok := m.SelectedTicket()
			if !ok {
				return m, nil
			}
			return m, m.showTicket(t)
		case "J", "shift+down":
			visibleItems := m.list.VisibleItems()
			index := m.list.Index()
			return m.move(index, index+1, visibleItems)
		case "B":
			visibleItems := m.list.VisibleItems()
			return m.move(m.list.Index(), len(visibleItems)-1, visibleItems)
		case "K", "shift+up":
			visibleItems := m.list.VisibleItems()
			index := m.list.Index()
			return m.move(index, index-1, visibleItems)
		case "T":
			visibleItems := m.list.VisibleItems()
			return m.move(m.list.Index(), 0, visibleItems)
		}
	}
	newListModel, cmd := m.list.Update(msg)
	m.list = &newListModel
	return m, cmd
}

// move places the ticket at column position index onto the flat list
// position of the ticket at newIndex.
func (m Model) move(index int, newIndex int, visibleItems []list.Item) (Model, tea.Cmd) {
	if index == newIndex || index < 0 || newIndex < 0 ||
		index > len(visibleItems)-1 || newIndex > len(visibleItems)-1 {
		return m, nil
	}
	ticket := visibleItems[index].(item).ticket
	target := visibleItems[newIndex].(item).ticket
	if m.order != nil && m.order(ticket, target) != 0 {
		return m, nil
	}
	from, to := m.store.IndexOf(ticket.ID), m.store.IndexOf(target.ID)
	if from < 0 || to < 0 {
		return m, nil
	}
	return m, m.store.Move(from, to)
}

// View implements tea.Model.
func (m Model) View() string {
	style := m.theme.Column
	borderColor := style.GetBorderTopForeground()
	if m.focused {
		borderColor = m.theme.FocusedColor
		m.delegate.Styles.SelectedTitle = defaultStyles.SelectedTitle
		m.delegate.Styles.SelectedDesc = defaultStyles.SelectedDesc
		m.delegate.Styles.NormalTitle = defaultStyles.NormalTitle.Foreground(m.theme.Foreground)
	} else {
		m.delegate.Styles.SelectedTitle = defaultStyles.SelectedTitle.
			BorderForeground(lipgloss.Color("33")).
			Foreground(m.theme.Muted)

		m.delegate.Styles.SelectedDesc = defaultStyles.SelectedDesc.
			BorderForeground(lipgloss.Color("68")).
			Foreground(defaultStyles.NormalDesc.GetForeground())
		m.delegate.Styles.NormalTitle = defaultStyles.NormalTitle.Foreground(m.theme.Muted)
	}
	return style.
		Width(m.list.Width()).
		Height(m.list.Height()).
		BorderForeground(borderColor).
		Render(m.list.View())
}
