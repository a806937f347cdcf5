package board

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownGrouping = errors.New("unknown grouping")
	ErrUnknownSorting  = errors.New("unknown sorting")
)

type Grouping uint8

const (
	ByStatus Grouping = iota
	ByUser
	ByPriority

	NumberOfGroupings = int(iota)
)

var Groupings = [3]Grouping{
	ByStatus, ByUser, ByPriority,
}

func (g Grouping) String() string {
	switch g {
	case ByStatus:
		return "status"
	case ByUser:
		return "user"
	case ByPriority:
		return "priority"
	default:
		return fmt.Sprintf("grouping(%d)", uint8(g))
	}
}

func (g Grouping) Label() string {
	switch g {
	case ByStatus:
		return "Status"
	case ByUser:
		return "User"
	case ByPriority:
		return "Priority"
	default:
		return g.String()
	}
}

func (g Grouping) Valid() bool {
	return int(g) < NumberOfGroupings
}

func ParseGrouping(s string) (Grouping, error) {
	for _, g := range Groupings {
		if strings.EqualFold(s, g.String()) {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGrouping, s)
}

type Sorting uint8

const (
	ByPriorityDesc Sorting = iota
	ByTitle
	Unsorted

	NumberOfSortings = int(iota)
)

var Sortings = [3]Sorting{
	ByPriorityDesc, ByTitle, Unsorted,
}

func (s Sorting) String() string {
	switch s {
	case ByPriorityDesc:
		return "priority"
	case ByTitle:
		return "title"
	case Unsorted:
		return "none"
	default:
		return fmt.Sprintf("sorting(%d)", uint8(s))
	}
}

func (s Sorting) Label() string {
	switch s {
	case ByPriorityDesc:
		return "Priority"
	case ByTitle:
		return "Title"
	case Unsorted:
		return "None"
	default:
		return s.String()
	}
}

func ParseSorting(s string) (Sorting, error) {
	for _, sorting := range Sortings {
		if strings.EqualFold(s, sorting.String()) {
			return sorting, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSorting, s)
}
