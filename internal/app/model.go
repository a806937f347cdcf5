package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/Kavantix/kanview/internal/board"
	"github.com/Kavantix/kanview/internal/column"
	"github.com/Kavantix/kanview/internal/confirm"
	"github.com/Kavantix/kanview/internal/messages"
	"github.com/Kavantix/kanview/internal/overlay"
	"github.com/Kavantix/kanview/internal/selector"
	"github.com/Kavantix/kanview/internal/theme"
	"github.com/Kavantix/kanview/internal/ticket"
	"github.com/Kavantix/kanview/internal/view"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	charmansi "github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"golang.org/x/text/language"
)

const (
	groupingZone = "control-grouping"
	sortingZone  = "control-sorting"
	themeZone    = "control-theme"
)

type Options struct {
	Store  ticket.Store
	State  view.State
	Locale language.Tag
	// Source is shown when the board is empty.
	Source string
	// StartupErr is shown on the failure screen instead of loading.
	StartupErr error
}

type Model struct {
	store  ticket.Store
	state  view.State
	locale language.Tag
	source string

	startupErr error

	spinner      spinner.Model
	help         help.Model
	loaded       bool
	windowWidth  int
	windowHeight int
	quitting     bool

	snapshot ticket.Snapshot
	columns  []column.Model
	// builtFor is the state the columns were created for.
	builtFor view.State
	modals   []overlay.ModalModel

	criticalFailure messages.CriticalFailureMsg
}

var _ tea.Model = Model{}

func New(opts Options) Model {
	locale := opts.Locale
	if locale == language.Und {
		locale = language.English
	}
	return Model{
		store:      opts.Store,
		state:      opts.State,
		locale:     locale,
		source:     opts.Source,
		startupErr: opts.StartupErr,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:       help.New(),
	}
}

func (m Model) State() view.State {
	return m.state
}

// Err returns the failure that stopped the app, if any.
func (m Model) Err() error {
	return m.criticalFailure.Err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.startupErr != nil {
		return messages.CriticalFailure("Invalid configuration", m.startupErr)
	}
	if m.store == nil {
		return messages.CriticalFailure("No ticket source configured", errors.New("store was not set"))
	}
	return tea.Batch(m.spinner.Tick, m.store.Load)
}

func (m Model) columnTitle(key string, count int) string {
	title := key
	switch m.state.Grouping {
	case board.ByUser:
		if key != board.UnknownKey {
			title = m.snapshot.UserName(key)
		}
	case board.ByPriority:
		if p, err := strconv.Atoi(key); err == nil {
			title = ticket.Priority(p).Label()
		}
	}
	return fmt.Sprintf("%s (%d)", title, count)
}

// rebuild derives the columns from the current tickets and view state.
// Columns are reused by key while grouping and theme stay the same so
// their selection survives reorders.
func (m *Model) rebuild() tea.Cmd {
	th := theme.For(m.state.Theme)
	grouped := board.Group(m.snapshot.Tickets, m.state.Grouping, m.state.Sorting, board.WithLocale(m.locale))

	reuse := m.builtFor.Grouping == m.state.Grouping && m.builtFor.Theme == m.state.Theme
	existing := map[string]column.Model{}
	focusedKey := ""
	for _, c := range m.columns {
		if c.Focused() {
			focusedKey = c.Key()
		}
		if reuse {
			existing[c.Key()] = c
		}
	}
	focusedIndex := m.focusedIndex()

	order := board.Comparator(m.state.Sorting, board.WithLocale(m.locale))
	columns := make([]column.Model, 0, grouped.Len())
	var cmds []tea.Cmd
	for _, group := range grouped.Columns() {
		c, ok := existing[group.Key]
		if !ok {
			c = column.New(group.Key, "", m.store, m.snapshot.UserName, th)
		}
		c.SetNames(m.snapshot.UserName)
		c.SetOrder(order)
		c.SetTitle(m.columnTitle(group.Key, len(group.Tickets)))
		c.Unfocus()
		cmds = append(cmds, c.SetTickets(group.Tickets))
		columns = append(columns, c)
	}
	m.columns = columns
	m.builtFor = m.state

	if len(m.columns) > 0 {
		newFocus := min(max(0, focusedIndex), len(m.columns)-1)
		for i, c := range m.columns {
			if c.Key() == focusedKey {
				newFocus = i
			}
		}
		m.columns[newFocus].Focus()
	}
	m.layout()
	return tea.Batch(cmds...)
}

func (m Model) focusedIndex() int {
	for i, c := range m.columns {
		if c.Focused() {
			return i
		}
	}
	return 0
}

func (m Model) chromeHeight() int {
	th := theme.For(m.state.Theme)
	return lipgloss.Height(m.headerView(th)) + lipgloss.Height(m.footerView(th))
}

func (m Model) layout() {
	if m.windowWidth <= 0 || len(m.columns) == 0 {
		return
	}
	width := m.windowWidth / len(m.columns)
	height := max(0, m.windowHeight-m.chromeHeight())
	for _, column := range m.columns {
		column.SetSize(width, height)
	}
}

func (m Model) showGroupingSelector() tea.Cmd {
	labels := make([]string, 0, len(board.Groupings))
	for _, g := range board.Groupings {
		labels = append(labels, g.Label())
	}
	return selector.Show("Group by", labels, int(m.state.Grouping), func(i int) tea.Cmd {
		return view.Apply(view.SetGrouping(board.Groupings[i]))
	})
}

func (m Model) showSortingSelector() tea.Cmd {
	labels := make([]string, 0, len(board.Sortings))
	for _, s := range board.Sortings {
		labels = append(labels, s.Label())
	}
	return selector.Show("Sort by", labels, int(m.state.Sorting), func(i int) tea.Cmd {
		return view.Apply(view.SetSorting(board.Sortings[i]))
	})
}

func (m Model) showThemeSelector() tea.Cmd {
	labels := make([]string, 0, len(theme.Names))
	for _, n := range theme.Names {
		labels = append(labels, n.Label())
	}
	return selector.Show("Theme", labels, int(m.state.Theme), func(i int) tea.Cmd {
		return view.Apply(view.SetTheme(theme.Names[i]))
	})
}

func (m Model) reload() tea.Cmd {
	if m.store.Reordered() {
		return confirm.Show("Discard the local order and reload the tickets?", messages.Reload)
	}
	return messages.Reload
}

func (m Model) capturingInput() bool {
	for _, c := range m.columns {
		if c.Focused() && c.IsCapturingInput() {
			return true
		}
	}
	return false
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.criticalFailure.Err != nil {
		return m, tea.Quit
	}
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case ticket.TicketsUpdatedMsg:
		m.snapshot = msg.Snapshot
		m.loaded = true
		return m, m.rebuild()
	case view.UpdateMsg:
		m.state = msg.Update(m.state)
		slog.Debug("View state changed",
			slog.String("grouping", m.state.Grouping.String()),
			slog.String("sorting", m.state.Sorting.String()),
			slog.String("theme", m.state.Theme.String()),
		)
		return m, m.rebuild()
	case messages.ReloadMsg:
		slog.Info("Reloading tickets")
		return m, m.store.Load
	case messages.CriticalFailureMsg:
		m.criticalFailure = msg
		return m, tea.ExitAltScreen
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil
	}

	if len(m.modals) > 0 {
		switch msg.(type) {
		case messages.CloseModalMsg:
			m.modals = m.modals[:len(m.modals)-1]
			return m, nil
		case messages.QuitMsg:
			slog.Info("Quitting")
			m.quitting = true
			return m, tea.Quit
		}
		i := len(m.modals) - 1
		model, cmd := m.modals[i].Update(msg)
		m.modals[i] = model.(overlay.ModalModel)
		return m, cmd
	}

	switch msg := msg.(type) {
	case overlay.ModalModel:
		m.modals = append(m.modals, msg)
		return m, nil

	case messages.QuitMsg:
		slog.Info("Quitting")
		m.quitting = true
		return m, tea.Quit
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			switch {
			case zone.Get(groupingZone).InBounds(msg):
				return m, m.showGroupingSelector()
			case zone.Get(sortingZone).InBounds(msg):
				return m, m.showSortingSelector()
			case zone.Get(themeZone).InBounds(msg):
				return m, m.showThemeSelector()
			}
		}
		for i := 0; i < len(m.columns); i++ {
			if zone.Get(fmt.Sprintf("column-%d", i)).InBounds(msg) {
				if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
					for j := 0; j < len(m.columns); j++ {
						m.columns[j].Unfocus()
					}
					m.columns[i].Focus()
				}
				m.columns[i], cmd = m.columns[i].Update(msg)
				return m, cmd
			}
		}
		return m, nil
	case tea.KeyMsg:
		if m.capturingInput() {
			break
		}
		switch {
		case key.Matches(msg, keys.Quit):
			return m, messages.Quit
		case key.Matches(msg, keys.Grouping):
			return m, m.showGroupingSelector()
		case key.Matches(msg, keys.Sorting):
			return m, m.showSortingSelector()
		case key.Matches(msg, keys.Theme):
			return m, view.Apply(view.State.ToggleTheme)
		case key.Matches(msg, keys.Reload):
			return m, m.reload()
		case key.Matches(msg, keys.Left):
			for i, column := range m.columns {
				if column.Focused() {
					prevIndex := i - 1
					if prevIndex < 0 {
						prevIndex = len(m.columns) - 1
					}
					m.columns[i].Unfocus()
					m.columns[prevIndex].Focus()
					return m, nil
				}
			}
		case key.Matches(msg, keys.Right):
			for i, column := range m.columns {
				if column.Focused() {
					nextIndex := i + 1
					if nextIndex > len(m.columns)-1 {
						nextIndex = 0
					}
					m.columns[i].Unfocus()
					m.columns[nextIndex].Focus()
					return m, nil
				}
			}
		}
	}

	for i, column := range m.columns {
		if column.Focused() {
			m.columns[i], cmd = column.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) headerView(th theme.Theme) string {
	control := func(id, label, value string) string {
		return zone.Mark(id, th.Control.Render(label+": ")+th.ControlValue.Render(value))
	}
	spacer := th.Control.Render("   ")
	controls := lipgloss.JoinHorizontal(
		lipgloss.Top,
		control(groupingZone, "Group by", m.state.Grouping.Label()),
		spacer,
		control(sortingZone, "Sort by", m.state.Sorting.Label()),
		spacer,
		control(themeZone, "Theme", m.state.Theme.Label()),
	)
	style := th.Header
	if m.windowWidth > 0 {
		style = style.Width(m.windowWidth)
	}
	return style.Render(controls)
}

func (m Model) footerView(th theme.Theme) string {
	h := m.help
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(th.Foreground)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(th.Muted)
	h.Styles.ShortSeparator = h.Styles.ShortSeparator.Foreground(th.Muted)
	return h.View(keys)
}

func (m Model) boardView(th theme.Theme) string {
	if len(m.columns) == 0 {
		text := "No tickets to show."
		if m.source != "" {
			text += "\nSource: " + m.source
		}
		return th.Empty.Render(text)
	}
	columns := []string{}
	for i, column := range m.columns {
		columns = append(columns, zone.Mark(fmt.Sprintf("column-%d", i), column.View()))
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		columns...,
	)
}

func (m Model) modalView(background string) string {
	modal := m.modals[len(m.modals)-1]
	if sizeable, ok := modal.(overlay.Sizeable); ok {
		modal = sizeable.SetSize(m.windowWidth-4, m.windowHeight-2)
	}
	content := modal.View()
	if title := modal.OverlayTitle(); title != "" {
		content = overlay.Place(2, 0, modalTitleStyle.Render(" "+title+" "), content, false)
	}
	width, height := lipgloss.Width(content), lipgloss.Height(content)
	x := max(0, (m.windowWidth-width)/2)
	y := max(0, (m.windowHeight-height)/3)

	return overlay.Place(
		x, y,
		content, lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(charmansi.Strip(background)),
		true,
	)
}

var modalTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("69")).
	Bold(true)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if m.criticalFailure.Err != nil {
		style := lipgloss.NewStyle().
			Background(lipgloss.Color("9")).
			Margin(1, 0)

		title := "Failed"
		if m.criticalFailure.FriendlyText != "" {
			title = m.criticalFailure.FriendlyText
		}
		title = style.Render(title)
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			lipgloss.NewStyle().
				Width(m.windowWidth).
				Render(m.criticalFailure.Err.Error()+"\n"),
		)
	}

	if !m.loaded {
		return m.spinner.View() + " Loading tickets"
	}

	th := theme.For(m.state.Theme)
	screen := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(th),
		m.boardView(th),
		m.footerView(th),
	)
	if m.windowWidth > 0 && m.windowHeight > 0 {
		screen = th.App.Width(m.windowWidth).Height(m.windowHeight).Render(screen)
	}

	if len(m.modals) > 0 {
		return zone.Scan(m.modalView(screen))
	}
	return zone.Scan(screen)
}
