package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Move returns a copy of tickets with the ticket at from removed and
// reinserted at to. The input is never modified.
func Move(tickets []Ticket, from, to int) ([]Ticket, error) {
	if from < 0 || from >= len(tickets) {
		return nil, fmt.Errorf("move from %d in list of %d: %w", from, len(tickets), ErrIndexOutOfRange)
	}
	if to < 0 || to >= len(tickets) {
		return nil, fmt.Errorf("move to %d in list of %d: %w", to, len(tickets), ErrIndexOutOfRange)
	}
	moved := tickets[from]
	result := make([]Ticket, 0, len(tickets))
	result = append(result, tickets[:from]...)
	result = append(result, tickets[from+1:]...)
	return slices.Insert(result, to, moved), nil
}

type Fetcher interface {
	Fetch(ctx context.Context) (Snapshot, error)
}

type Store interface {
	Load() tea.Msg
	Move(from, to int) tea.Cmd
	IndexOf(id ID) int
	Snapshot() Snapshot
	Reordered() bool
}

type store struct {
	fetcher Fetcher

	mu        sync.Mutex
	snapshot  Snapshot
	reordered bool
}

func NewStore(fetcher Fetcher) Store {
	return &store{fetcher: fetcher}
}

// Load fetches the tickets. A failed fetch is logged and leaves the
// current list in place.
func (s *store) Load() tea.Msg {
	snapshot, err := s.fetcher.Fetch(context.Background())
	if err != nil {
		slog.Error("Fetching tickets failed", slog.String("error", err.Error()))
		return TicketsUpdatedMsg{s.Snapshot()}
	}
	if snapshot.Tickets == nil {
		snapshot.Tickets = []Ticket{}
	}
	slog.Info("Fetched tickets", slog.Int("tickets", len(snapshot.Tickets)), slog.Int("users", len(snapshot.Users)))

	s.mu.Lock()
	s.snapshot = snapshot
	s.reordered = false
	s.mu.Unlock()
	return TicketsUpdatedMsg{s.Snapshot()}
}

func (s *store) Move(from, to int) tea.Cmd {
	return func() tea.Msg {
		s.mu.Lock()
		tickets, err := Move(s.snapshot.Tickets, from, to)
		if err != nil {
			s.mu.Unlock()
			slog.Warn("Rejected ticket move", slog.Int("from", from), slog.Int("to", to), slog.String("error", err.Error()))
			return nil
		}
		s.snapshot.Tickets = tickets
		if from != to {
			s.reordered = true
		}
		s.mu.Unlock()
		return TicketsUpdatedMsg{s.Snapshot()}
	}
}

func (s *store) IndexOf(id ID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.IndexFunc(s.snapshot.Tickets, func(t Ticket) bool {
		return t.ID == id
	})
}

// Snapshot returns a copy safe to hand to the UI.
func (s *store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tickets: slices.Clone(s.snapshot.Tickets),
		Users:   slices.Clone(s.snapshot.Users),
	}
}

func (s *store) Reordered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reordered
}
