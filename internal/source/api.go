package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

const defaultTimeout = 15 * time.Second

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Schedule is a shared schedule as returned by /v1/schedules.
type Schedule struct {
	Username         string             `json:"username"`
	EventDateDetails []calendar.Payload `json:"eventDateDetails"`
}

type scheduleKey struct {
	Token string `json:"token"`
}

// APIClient talks to the events backend. The token is sent verbatim in the
// Authorization header.
type APIClient struct {
	baseURL string
	token   string
	http    *http.Client
}

// ClientOption configures an APIClient.
type ClientOption func(*APIClient)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(a *APIClient) {
		a.http = c
	}
}

// NewAPIClient creates a client for the API at baseURL.
func NewAPIClient(baseURL, token string, opts ...ClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Events fetches the authenticated user's events.
func (c *APIClient) Events(ctx context.Context) ([]calendar.Payload, error) {
	var out []calendar.Payload
	if err := c.do(ctx, http.MethodGet, "/v1/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Schedule fetches the schedule shared by username under key.
func (c *APIClient) Schedule(ctx context.Context, username, key string) (*Schedule, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("schedule-key", key)

	var out Schedule
	if err := c.do(ctx, http.MethodGet, "/v1/schedules", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScheduleKey returns the current share key, or "" if sharing is disabled.
func (c *APIClient) ScheduleKey(ctx context.Context) (string, error) {
	var out scheduleKey
	if err := c.do(ctx, http.MethodGet, "/v1/schedule-keys", nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// GenerateScheduleKey creates a new share key, replacing any existing one.
func (c *APIClient) GenerateScheduleKey(ctx context.Context) (string, error) {
	var out scheduleKey
	if err := c.do(ctx, http.MethodPost, "/v1/schedule-keys", nil, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// DisableScheduleKey revokes the share key.
func (c *APIClient) DisableScheduleKey(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/v1/schedule-keys", nil, nil)
}

func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// ShareURL builds the public link for a shared schedule.
func ShareURL(appURL, username, token string) string {
	return fmt.Sprintf("%s/schedules?username=%s&schedule-key=%s",
		strings.TrimRight(appURL, "/"), url.QueryEscape(username), url.QueryEscape(token))
}

// EventsSource loads the authenticated user's events.
type EventsSource struct {
	Client   *APIClient
	Location *time.Location
}

// Load implements Source.
func (s *EventsSource) Load(ctx context.Context) ([]calendar.Event, error) {
	payloads, err := s.Client.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	events, err := toEvents(payloads, s.Location)
	logLoaded("api", len(events), err)
	return events, err
}

// ScheduleSource loads a schedule someone shared.
type ScheduleSource struct {
	Client   *APIClient
	Username string
	Key      string
	Location *time.Location
}

// Load implements Source.
func (s *ScheduleSource) Load(ctx context.Context) ([]calendar.Event, error) {
	sched, err := s.Client.Schedule(ctx, s.Username, s.Key)
	if err != nil {
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	events, err := toEvents(sched.EventDateDetails, s.Location)
	logLoaded("schedule", len(events), err)
	return events, err
}
