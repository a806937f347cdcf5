package board_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/Kavantix/kanview/internal/board"
	"github.com/Kavantix/kanview/internal/ticket"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

func ticketGen() *rapid.Generator[ticket.Ticket] {
	return rapid.Custom(func(t *rapid.T) ticket.Ticket {
		return ticket.Ticket{
			ID:       ticket.ID(rapid.StringMatching(`CAM-[0-9]{1,3}`).Draw(t, "id")),
			Title:    rapid.StringMatching(`[A-Za-zé ]{0,12}`).Draw(t, "title"),
			Status:   rapid.SampledFrom([]string{"Todo", "In progress", "Backlog", "Done"}).Draw(t, "status"),
			UserID:   rapid.SampledFrom([]string{"usr-1", "usr-2", "usr-3"}).Draw(t, "userId"),
			Priority: ticket.Priority(rapid.IntRange(0, 4).Draw(t, "priority")),
		}
	})
}

func ids(tickets []ticket.Ticket) []ticket.ID {
	result := make([]ticket.ID, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, t.ID)
	}
	return result
}

func TestGroup_StatusByPriority(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "open", Priority: 2, Title: "b"},
		{ID: "2", Status: "open", Priority: 5, Title: "a"},
		{ID: "3", Status: "done", Priority: 1, Title: "c"},
	}

	b := board.Group(tickets, board.ByStatus, board.ByPriorityDesc)

	if got, want := b.Keys(), []string{"open", "done"}; !slices.Equal(got, want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	open, _ := b.Get("open")
	if got, want := ids(open), []ticket.ID{"2", "1"}; !slices.Equal(got, want) {
		t.Errorf("expected open column %v, got %v", want, got)
	}
	done, _ := b.Get("done")
	if got, want := ids(done), []ticket.ID{"3"}; !slices.Equal(got, want) {
		t.Errorf("expected done column %v, got %v", want, got)
	}
}

func TestGroup_Empty(t *testing.T) {
	b := board.Group(nil, board.ByStatus, board.ByPriorityDesc)
	if b.Len() != 0 || b.Count() != 0 {
		t.Errorf("expected empty board, got %d columns", b.Len())
	}
	if _, ok := b.Get("anything"); ok {
		t.Error("expected no column in empty board")
	}
}

func TestGroup_KeysPerGrouping(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "Todo", UserID: "usr-2", Priority: ticket.Low},
		{ID: "2", Status: "Done", UserID: "usr-1", Priority: ticket.Urgent},
		{ID: "3", Status: "Todo", UserID: "usr-2", Priority: ticket.Urgent},
	}
	tests := []struct {
		grouping board.Grouping
		want     []string
	}{
		{board.ByStatus, []string{"Todo", "Done"}},
		{board.ByUser, []string{"usr-2", "usr-1"}},
		{board.ByPriority, []string{"1", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.grouping.String(), func(t *testing.T) {
			b := board.Group(tickets, tt.grouping, board.Unsorted)
			if got := b.Keys(); !slices.Equal(got, tt.want) {
				t.Errorf("expected keys %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGroup_MissingFieldGoesToUnknown(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "Todo"},
		{ID: "2"},
		{ID: "3", Status: "Todo"},
	}
	b := board.Group(tickets, board.ByStatus, board.Unsorted)
	unknown, ok := b.Get(board.UnknownKey)
	if !ok {
		t.Fatalf("expected %q column, got keys %v", board.UnknownKey, b.Keys())
	}
	if got := ids(unknown); !slices.Equal(got, []ticket.ID{"2"}) {
		t.Errorf("expected unknown column [2], got %v", got)
	}
	if b.Count() != len(tickets) {
		t.Errorf("expected %d tickets, got %d", len(tickets), b.Count())
	}
}

func TestGroup_PriorityIsStable(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "a", Status: "Todo", Priority: 1},
		{ID: "b", Status: "Todo", Priority: 3},
		{ID: "c", Status: "Todo", Priority: 1},
		{ID: "d", Status: "Todo", Priority: 3},
	}
	b := board.Group(tickets, board.ByStatus, board.ByPriorityDesc)
	todo, _ := b.Get("Todo")
	if got, want := ids(todo), []ticket.ID{"b", "d", "a", "c"}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroup_TitleUsesCollation(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "Todo", Title: "fleur"},
		{ID: "2", Status: "Todo", Title: "étoile"},
		{ID: "3", Status: "Todo", Title: "banana"},
		{ID: "4", Status: "Todo", Title: "Apple"},
	}
	b := board.Group(tickets, board.ByStatus, board.ByTitle)
	todo, _ := b.Get("Todo")
	if got, want := ids(todo), []ticket.ID{"4", "3", "2", "1"}; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGroup_InvalidOptions(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "Todo", Priority: 1, Title: "z"},
		{ID: "2", Status: "Todo", Priority: 4, Title: "a"},
	}

	if b := board.Group(tickets, board.Grouping(42), board.ByTitle); b.Len() != 0 {
		t.Errorf("expected empty board for invalid grouping, got keys %v", b.Keys())
	}

	b := board.Group(tickets, board.ByStatus, board.Sorting(42))
	todo, _ := b.Get("Todo")
	if got := ids(todo); !slices.Equal(got, []ticket.ID{"1", "2"}) {
		t.Errorf("expected source order for invalid sorting, got %v", got)
	}
}

func TestGroup_DoesNotModifyInput(t *testing.T) {
	tickets := []ticket.Ticket{
		{ID: "1", Status: "Todo", Priority: 1},
		{ID: "2", Status: "Todo", Priority: 4},
	}
	original := slices.Clone(tickets)
	board.Group(tickets, board.ByStatus, board.ByPriorityDesc)
	if !slices.Equal(tickets, original) {
		t.Errorf("input was modified: %v", tickets)
	}
}

func TestParseOptions(t *testing.T) {
	if g, err := board.ParseGrouping("User"); err != nil || g != board.ByUser {
		t.Errorf("expected ByUser, got %v (%v)", g, err)
	}
	if _, err := board.ParseGrouping("label"); !errors.Is(err, board.ErrUnknownGrouping) {
		t.Errorf("expected ErrUnknownGrouping, got %v", err)
	}
	if s, err := board.ParseSorting("none"); err != nil || s != board.Unsorted {
		t.Errorf("expected Unsorted, got %v (%v)", s, err)
	}
	if _, err := board.ParseSorting("date"); !errors.Is(err, board.ErrUnknownSorting) {
		t.Errorf("expected ErrUnknownSorting, got %v", err)
	}
}

func TestGroup_PreservesTickets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tickets := rapid.SliceOf(ticketGen()).Draw(t, "tickets")
		grouping := rapid.SampledFrom(board.Groupings[:]).Draw(t, "grouping")
		sorting := rapid.SampledFrom(board.Sortings[:]).Draw(t, "sorting")

		b := board.Group(tickets, grouping, sorting)

		counts := map[ticket.Ticket]int{}
		for _, tk := range tickets {
			counts[tk]++
		}
		for _, c := range b.Columns() {
			for _, tk := range c.Tickets {
				if board.Key(tk, grouping) != c.Key {
					t.Fatalf("ticket %v in column %q", tk, c.Key)
				}
				counts[tk]--
			}
		}
		for tk, n := range counts {
			if n != 0 {
				t.Fatalf("ticket %v count off by %d", tk, n)
			}
		}
	})
}

func TestGroup_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tickets := rapid.SliceOf(ticketGen()).Draw(t, "tickets")
		grouping := rapid.SampledFrom(board.Groupings[:]).Draw(t, "grouping")
		sorting := rapid.SampledFrom(board.Sortings[:]).Draw(t, "sorting")

		first := board.Group(tickets, grouping, sorting)
		second := board.Group(tickets, grouping, sorting)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("group is not deterministic:\n%v\n%v", first, second)
		}
	})
}

func TestGroup_ColumnsAreOrdered(t *testing.T) {
	collator := collate.New(language.English)
	rapid.Check(t, func(t *rapid.T) {
		tickets := rapid.SliceOf(ticketGen()).Draw(t, "tickets")
		grouping := rapid.SampledFrom(board.Groupings[:]).Draw(t, "grouping")

		for _, c := range board.Group(tickets, grouping, board.ByPriorityDesc).Columns() {
			for i := 1; i < len(c.Tickets); i++ {
				if c.Tickets[i-1].Priority < c.Tickets[i].Priority {
					t.Fatalf("priority order broken in %q at %d", c.Key, i)
				}
			}
		}
		for _, c := range board.Group(tickets, grouping, board.ByTitle).Columns() {
			for i := 1; i < len(c.Tickets); i++ {
				if collator.CompareString(c.Tickets[i-1].Title, c.Tickets[i].Title) > 0 {
					t.Fatalf("title order broken in %q at %d", c.Key, i)
				}
			}
		}
	})
}
