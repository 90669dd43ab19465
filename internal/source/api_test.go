package source

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL+"/", "Bearer abc", WithHTTPClient(srv.Client()))
}

func TestAPIClient_Events(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/v1/events" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected token header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"1","name":"Standup","startDateTime":"2025-01-15T10:00:00Z","endDateTime":"2025-01-15T10:30:00Z"},
			{"id":"2","name":"Review","startDateTime":"2025-01-15T14:00:00.000Z","endDateTime":"2025-01-15T15:00:00.000Z"}
		]`))
	})

	src := &EventsSource{Client: client, Location: time.UTC}
	events, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].ID != "1" || events[0].StartHour() != 10 || events[0].EndMinute() != 30 {
		t.Errorf("unexpected first event %+v", events[0])
	}
}

func TestAPIClient_RejectsInvalidEvents(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id":"ok","name":"Valid","startDateTime":"2025-01-15T10:00:00Z","endDateTime":"2025-01-15T11:00:00Z"},
			{"id":"zero","name":"Zero","startDateTime":"2025-01-15T10:00:00Z","endDateTime":"2025-01-15T10:00:00Z"},
			{"id":"bad","name":"Bad","startDateTime":"soon","endDateTime":"2025-01-15T11:00:00Z"}
		]`))
	})

	src := &EventsSource{Client: client, Location: time.UTC}
	events, err := src.Load(context.Background())
	if !errors.Is(err, ErrInvalidEvents) {
		t.Fatalf("expected ErrInvalidEvents, got %v", err)
	}
	if len(events) != 1 || events[0].ID != "ok" {
		t.Errorf("expected only the valid event, got %+v", events)
	}
}

func TestAPIClient_StatusError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	})

	_, err := client.Events(context.Background())
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Path != "/v1/events" {
		t.Errorf("unexpected status error %+v", se)
	}
	if se.Body != "token expired" {
		t.Errorf("expected body in error, got %q", se.Body)
	}
}

func TestAPIClient_Schedule(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/schedules" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("username") != "ada@example.com" || q.Get("schedule-key") != "k1" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"username":"ada@example.com","eventDateDetails":[
			{"id":"1","name":"Talk","startDateTime":"2025-01-16T09:00:00Z","endDateTime":"2025-01-16T10:00:00Z"}
		]}`))
	})

	src := &ScheduleSource{Client: client, Username: "ada@example.com", Key: "k1", Location: time.UTC}
	events, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 || events[0].Name != "Talk" {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestAPIClient_ScheduleKeys(t *testing.T) {
	var deleted bool
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/schedule-keys" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`null`))
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"token":"new-key"}`))
		case http.MethodDelete:
			deleted = true
			w.WriteHeader(http.StatusNoContent)
		}
	})

	ctx := context.Background()
	key, err := client.ScheduleKey(ctx)
	if err != nil || key != "" {
		t.Errorf("expected no key, got %q (%v)", key, err)
	}

	key, err = client.GenerateScheduleKey(ctx)
	if err != nil || key != "new-key" {
		t.Errorf("expected new-key, got %q (%v)", key, err)
	}

	if err := client.DisableScheduleKey(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected DELETE request")
	}
}

func TestShareURL(t *testing.T) {
	got := ShareURL("https://app.example.com/", "ada@example.com", "k 1")
	want := "https://app.example.com/schedules?username=ada%40example.com&schedule-key=k+1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
