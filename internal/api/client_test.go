package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch(t *testing.T) {
	server := serve(t, http.StatusOK, `{
		"tickets": [
			{"id": "CAM-1", "title": "a", "status": "Todo", "userId": "usr-1", "priority": 3},
			{"id": "CAM-2", "title": "b", "status": "Done", "userId": "usr-2", "priority": 1}
		],
		"users": [{"id": "usr-1", "name": "Anoop"}]
	}`)

	snapshot, err := New(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(snapshot.Tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(snapshot.Tickets))
	}
	if snapshot.Tickets[1].Status != "Done" {
		t.Errorf("expected status Done, got %q", snapshot.Tickets[1].Status)
	}
	if len(snapshot.Users) != 1 {
		t.Errorf("expected 1 user, got %d", len(snapshot.Users))
	}
}

func TestFetch_OffTypeFieldsStayLocal(t *testing.T) {
	server := serve(t, http.StatusOK, `{
		"tickets": [
			{"id": 1, "title": "a", "status": "Todo", "userId": 7, "priority": "3"},
			{"id": 2, "title": "b", "status": "Todo", "userId": "usr-1", "priority": 2}
		]
	}`)

	snapshot, err := New(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(snapshot.Tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(snapshot.Tickets))
	}
	if got := snapshot.Tickets[0]; got.UserID != "7" || got.Priority != 3 {
		t.Errorf("unexpected first ticket user=%q priority=%d", got.UserID, got.Priority)
	}
	if got := snapshot.Tickets[1]; got.UserID != "usr-1" || got.Priority != 2 {
		t.Errorf("unexpected second ticket user=%q priority=%d", got.UserID, got.Priority)
	}
}

func TestFetch_MissingTickets(t *testing.T) {
	server := serve(t, http.StatusOK, `{}`)

	snapshot, err := New(server.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if snapshot.Tickets == nil || len(snapshot.Tickets) != 0 {
		t.Errorf("expected empty ticket list, got %v", snapshot.Tickets)
	}
}

func TestFetch_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"server error", http.StatusInternalServerError, `{}`, "unexpected status"},
		{"not found", http.StatusNotFound, ``, "unexpected status"},
		{"malformed json", http.StatusOK, `{"tickets": [`, "failed to decode"},
		{"wrong shape", http.StatusOK, `{"tickets": "nope"}`, "failed to decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serve(t, tt.status, tt.body)
			_, err := New(server.URL).Fetch(context.Background())
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	_, err := New(server.URL, WithTimeout(50*time.Millisecond)).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestFetch_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	if _, err := New(url).Fetch(context.Background()); err == nil {
		t.Fatal("expected connection error")
	}
}
