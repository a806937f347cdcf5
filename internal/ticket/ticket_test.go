package ticket

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestSnapshot_Decode(t *testing.T) {
	body := `{
		"tickets": [
			{"id": "CAM-1", "title": "Update user profile", "status": "Todo", "userId": "usr-1", "priority": 4},
			{"id": 7, "title": "Fix login", "status": "Done", "user": "Yogesh", "userId": "usr-2", "priority": 0}
		],
		"users": [{"id": "usr-1", "name": "Anoop sharma", "available": false}]
	}`

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(body), &snapshot); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(snapshot.Tickets) != 2 {
		t.Fatalf("expected 2 tickets, got %d", len(snapshot.Tickets))
	}
	if snapshot.Tickets[0].ID != "CAM-1" || snapshot.Tickets[1].ID != "7" {
		t.Errorf("unexpected ids %q, %q", snapshot.Tickets[0].ID, snapshot.Tickets[1].ID)
	}
	if snapshot.Tickets[0].Priority != Urgent {
		t.Errorf("expected urgent priority, got %d", snapshot.Tickets[0].Priority)
	}
	if got := snapshot.UserName("usr-1"); got != "Anoop sharma" {
		t.Errorf("expected user name from users list, got %q", got)
	}
	if got := snapshot.UserName("usr-2"); got != "Yogesh" {
		t.Errorf("expected user name from ticket, got %q", got)
	}
	if got := snapshot.UserName("usr-9"); got != "usr-9" {
		t.Errorf("expected raw id fallback, got %q", got)
	}
}

func TestID_DecodeRejectsObjects(t *testing.T) {
	var id ID
	if err := json.Unmarshal([]byte(`{"a":1}`), &id); err == nil {
		t.Errorf("expected error, got id %q", id)
	}
}

func TestPriority_Label(t *testing.T) {
	tests := map[Priority]string{
		NoPriority: "No priority",
		Low:        "Low",
		Medium:     "Medium",
		High:       "High",
		Urgent:     "Urgent",
		9:          "9",
	}
	for p, want := range tests {
		if got := p.Label(); got != want {
			t.Errorf("Priority(%d).Label() = %q, want %q", p, got, want)
		}
	}
}

func TestSnapshot_DecodeOffTypeFields(t *testing.T) {
	body := `{
		"tickets": [
			{"id": 1, "title": "Numeric owner", "status": "Todo", "userId": 7, "priority": 2},
			{"id": 2, "title": "String priority", "status": "Todo", "userId": "usr-1", "priority": "3"},
			{"id": 3, "title": "Odd priority", "status": "Todo", "userId": {"id": 1}, "priority": "high"},
			{"id": 4, "title": "Null fields", "status": "Todo", "userId": null, "priority": null}
		]
	}`

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(body), &snapshot); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(snapshot.Tickets) != 4 {
		t.Fatalf("expected 4 tickets, got %d", len(snapshot.Tickets))
	}

	tests := []struct {
		userID   string
		priority Priority
	}{
		{"7", Medium},
		{"usr-1", High},
		{"", NoPriority},
		{"", NoPriority},
	}
	for i, tt := range tests {
		got := snapshot.Tickets[i]
		if got.UserID != tt.userID {
			t.Errorf("ticket %s: expected user %q, got %q", got.ID, tt.userID, got.UserID)
		}
		if got.Priority != tt.priority {
			t.Errorf("ticket %s: expected priority %d, got %d", got.ID, tt.priority, got.Priority)
		}
	}
}
