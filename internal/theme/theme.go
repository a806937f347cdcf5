package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var ErrUnknownTheme = errors.New("unknown theme")

type Name uint8

const (
	Light Name = iota
	Dark

	NumberOfThemes = int(iota)
)

var Names = [2]Name{Light, Dark}

func (n Name) String() string {
	switch n {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("theme(%d)", uint8(n))
	}
}

func (n Name) Label() string {
	switch n {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return n.String()
	}
}

func ParseName(s string) (Name, error) {
	for _, n := range Names {
		if strings.EqualFold(s, n.String()) {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

type Theme struct {
	Name Name

	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color

	App          lipgloss.Style
	Header       lipgloss.Style
	Control      lipgloss.Style
	ControlValue lipgloss.Style
	Column       lipgloss.Style
	FocusedColor lipgloss.Color
	ColumnTitle  lipgloss.Style
	Empty        lipgloss.Style
}

func For(name Name) Theme {
	switch name {
	case Light:
		return build(name, "15", "0", "244", "252", "13", "62")
	case Dark:
		return build(name, "236", "15", "245", "239", "213", "61")
	default:
		// assert amount of themes didnt change
		var _ = [2]any{}[NumberOfThemes-1]
		panic("unreachable")
	}
}

func build(name Name, background, foreground, muted, border, focused, title lipgloss.Color) Theme {
	return Theme{
		Name:       name,
		Background: background,
		Foreground: foreground,
		Muted:      muted,

		App: lipgloss.NewStyle().
			Background(background).
			Foreground(foreground),
		Header: lipgloss.NewStyle().
			Background(background).
			Foreground(foreground).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(border).
			BorderBackground(background).
			Padding(0, 1),
		Control: lipgloss.NewStyle().
			Background(background).
			Foreground(muted),
		ControlValue: lipgloss.NewStyle().
			Background(title).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			BorderBackground(background).
			Background(background),
		FocusedColor: focused,
		ColumnTitle: lipgloss.NewStyle().
			Background(title).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1),
		Empty: lipgloss.NewStyle().
			Foreground(muted).
			Background(background).
			Padding(1, 2),
	}
}
