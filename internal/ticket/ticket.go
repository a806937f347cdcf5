package ticket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

type ID string

func (i ID) IsValid() bool {
	return i != ""
}

func (i ID) String() string {
	return string(i)
}

// UnmarshalJSON accepts both string and numeric ids.
func (i *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid ticket id %s: %w", data, err)
	}
	*i = ID(n.String())
	return nil
}

type Priority int

const (
	NoPriority Priority = iota
	Low
	Medium
	High
	Urgent
)

func (p Priority) Label() string {
	switch p {
	case NoPriority:
		return "No priority"
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Urgent:
		return "Urgent"
	default:
		return strconv.Itoa(int(p))
	}
}

func (p Priority) String() string {
	return strconv.Itoa(int(p))
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else
// decodes to NoPriority.
func (p *Priority) UnmarshalJSON(data []byte) error {
	*p = NoPriority
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Priority(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			*p = Priority(n)
		}
	}
	return nil
}

type Ticket struct {
	ID       ID       `json:"id"`
	Title    string   `json:"title"`
	Status   string   `json:"status"`
	User     string   `json:"user"`
	UserID   string   `json:"userId"`
	Priority Priority `json:"priority"`
}

// UnmarshalJSON decodes a ticket from the API. The user reference may be
// a string or a number; a user reference of any other shape is dropped so
// the ticket lands in the unknown group instead of failing the fetch.
func (t *Ticket) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       ID              `json:"id"`
		Title    string          `json:"title"`
		Status   string          `json:"status"`
		User     string          `json:"user"`
		UserID   json.RawMessage `json:"userId"`
		Priority Priority        `json:"priority"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var userID ID
	if len(raw.UserID) > 0 {
		if err := json.Unmarshal(raw.UserID, &userID); err != nil {
			userID = ""
		}
	}
	*t = Ticket{
		ID:       raw.ID,
		Title:    raw.Title,
		Status:   raw.Status,
		User:     raw.User,
		UserID:   userID.String(),
		Priority: raw.Priority,
	}
	return nil
}

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// Snapshot is the result of a single fetch.
type Snapshot struct {
	Tickets []Ticket `json:"tickets"`
	Users   []User   `json:"users"`
}

// UserName resolves a user id to its display name, falling back to the
// ticket's own user field and finally to the id itself.
func (s Snapshot) UserName(userID string) string {
	for _, u := range s.Users {
		if u.ID == userID && u.Name != "" {
			return u.Name
		}
	}
	for _, t := range s.Tickets {
		if t.UserID == userID && t.User != "" {
			return t.User
		}
	}
	return userID
}
