package daycare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RosterFetcher fetches the full dog roster. Implemented by *Client and
// stubbed in tests.
type RosterFetcher interface {
	FetchRoster(ctx context.Context) ([]Dog, error)
}

var _ RosterFetcher = (*Client)(nil)

// Client talks to the daycare roster endpoint.
type Client struct {
	rosterURL *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "pawboard/0.1"
	// DefaultTimeout bounds every roster fetch. Applied uniformly; on
	// expiry the error is distinguishable via IsTimeout.
	DefaultTimeout = 8 * time.Second
)

// NewClient builds a Client for the given roster URL. A zero timeout uses
// DefaultTimeout.
func NewClient(rosterURL string, timeout time.Duration) (*Client, error) {
	parsed, err := parseRosterURL(rosterURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		rosterURL: parsed,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchRoster retrieves the full roster snapshot. The returned slice keeps
// the endpoint's order; it defines prev/next adjacency downstream.
func (c *Client) FetchRoster(ctx context.Context) ([]Dog, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.rosterURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return decodeRoster(body)
}

// decodeRoster parses the payload, insisting on a JSON array shape. Any
// other top-level value is a format failure, not a transport one.
func decodeRoster(body []byte) ([]Dog, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return nil, &FormatError{Reason: "empty body"}
	}
	if trimmed[0] != '[' {
		return nil, &FormatError{Reason: "top-level value is not an array"}
	}
	var dogs []Dog
	if err := json.Unmarshal([]byte(trimmed), &dogs); err != nil {
		return nil, &FormatError{Reason: err.Error()}
	}
	return dogs, nil
}

func parseRosterURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("roster url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse roster url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("roster url %q has no host", raw)
	}
	return u, nil
}
