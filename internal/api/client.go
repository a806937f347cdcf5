// Package api fetches the ticket board from the remote HTTP endpoint.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Kavantix/kanview/internal/ticket"
	"github.com/goccy/go-json"
)

// DefaultTimeout bounds a single fetch when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// maxBodySize caps the response body.
const maxBodySize = 32 << 20

type Client struct {
	url     string
	timeout time.Duration
	http    *http.Client
}

var _ ticket.Fetcher = (*Client)(nil)

type Option func(*Client)

// WithTimeout sets the per request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http = client
	}
}

func New(url string, opts ...Option) *Client {
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) URL() string {
	return c.url
}

// Fetch performs a single GET and decodes the tickets and users from the
// body. A body without a tickets field yields an empty list.
func (c *Client) Fetch(ctx context.Context) (ticket.Snapshot, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return ticket.Snapshot{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return ticket.Snapshot{}, fmt.Errorf("failed to fetch tickets: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ticket.Snapshot{}, fmt.Errorf("failed to fetch tickets: unexpected status %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return ticket.Snapshot{}, fmt.Errorf("failed to read response: %w", err)
	}

	var snapshot ticket.Snapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return ticket.Snapshot{}, fmt.Errorf("failed to decode response: %w", err)
	}
	if snapshot.Tickets == nil {
		snapshot.Tickets = []ticket.Ticket{}
	}
	return snapshot, nil
}
