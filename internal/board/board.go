// Package board partitions a flat ticket list into columns and orders the
// tickets inside each column.
package board

import (
	"cmp"
	"slices"

	"github.com/Kavantix/kanview/internal/ticket"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// UnknownKey is the column key for tickets that lack the grouped field.
const UnknownKey = "unknown"

type Column struct {
	Key     string
	Tickets []ticket.Ticket
}

// Board is an ordered mapping from column key to tickets. Keys are kept
// in the order they were first seen in the source list.
type Board struct {
	columns []Column
	index   map[string]int
}

func (b Board) Len() int {
	return len(b.columns)
}

func (b Board) Keys() []string {
	keys := make([]string, 0, len(b.columns))
	for _, c := range b.columns {
		keys = append(keys, c.Key)
	}
	return keys
}

func (b Board) Get(key string) ([]ticket.Ticket, bool) {
	i, ok := b.index[key]
	if !ok {
		return nil, false
	}
	return b.columns[i].Tickets, true
}

func (b Board) Columns() []Column {
	return slices.Clone(b.columns)
}

// Count is the total number of tickets over all columns.
func (b Board) Count() int {
	total := 0
	for _, c := range b.columns {
		total += len(c.Tickets)
	}
	return total
}

type options struct {
	locale language.Tag
}

type Option func(*options)

// WithLocale sets the language used to collate titles.
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// Key projects the field of t selected by grouping.
func Key(t ticket.Ticket, grouping Grouping) string {
	var key string
	switch grouping {
	case ByStatus:
		key = t.Status
	case ByUser:
		key = t.UserID
	case ByPriority:
		key = t.Priority.String()
	default:
		// assert amount of groupings didnt change
		var _ = [3]any{}[NumberOfGroupings-1]
		panic("unreachable")
	}
	if key == "" {
		return UnknownKey
	}
	return key
}

// Group partitions tickets by grouping and sorts every column by sorting.
// An invalid grouping produces an empty board and an invalid sorting
// leaves the columns in source order. tickets is not modified.
func Group(tickets []ticket.Ticket, grouping Grouping, sorting Sorting, opts ...Option) Board {
	if !grouping.Valid() || len(tickets) == 0 {
		return Board{}
	}

	b := Board{index: map[string]int{}}
	for _, t := range tickets {
		key := Key(t, grouping)
		i, ok := b.index[key]
		if !ok {
			i = len(b.columns)
			b.index[key] = i
			b.columns = append(b.columns, Column{Key: key})
		}
		b.columns[i].Tickets = append(b.columns[i].Tickets, t)
	}

	compare := Comparator(sorting, opts...)
	if compare != nil {
		for _, c := range b.columns {
			slices.SortStableFunc(c.Tickets, compare)
		}
	}
	return b
}

// Comparator returns the ordering Group applies for sorting, or nil when
// sorting keeps the source order.
func Comparator(sorting Sorting, opts ...Option) func(a, b ticket.Ticket) int {
	o := options{locale: language.English}
	for _, opt := range opts {
		opt(&o)
	}
	switch sorting {
	case ByPriorityDesc:
		return func(a, b ticket.Ticket) int {
			return cmp.Compare(b.Priority, a.Priority)
		}
	case ByTitle:
		collator := collate.New(o.locale)
		return func(a, b ticket.Ticket) int {
			return collator.CompareString(a.Title, b.Title)
		}
	default:
		return nil
	}
}
