// Package calendar lays out calendar events on a weekly hour grid.
//
// The package is pure: every function is a deterministic computation over its
// arguments. Callers own the mutable navigation state (see Navigator) and the
// event list, which is loaded and validated elsewhere.
package calendar

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrEmptyID          = errors.New("event id cannot be empty")
	ErrEmptyName        = errors.New("event name cannot be empty")
	ErrEndNotAfterStart = errors.New("event end must be after start")
	ErrInvalidDateTime  = errors.New("date-time must be ISO-8601")
)

// Event is a time-ranged calendar entry.
type Event struct {
	ID    string
	Name  string
	Start time.Time
	End   time.Time
}

// Payload is the wire shape of an event as served by the events API.
type Payload struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	StartDateTime string `json:"startDateTime" yaml:"startDateTime"`
	EndDateTime   string `json:"endDateTime" yaml:"endDateTime"`
}

// dateTimeLayouts are tried in order. Layouts without a zone are read in the
// caller's location.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseDateTime parses an ISO-8601 date-time and returns it in loc.
// A nil loc means time.Local.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, s)
}

// ParseEvent converts a wire payload into a validated Event.
func ParseEvent(p Payload, loc *time.Location) (Event, error) {
	start, err := ParseDateTime(p.StartDateTime, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event %q start: %w", p.ID, err)
	}
	end, err := ParseDateTime(p.EndDateTime, loc)
	if err != nil {
		return Event{}, fmt.Errorf("event %q end: %w", p.ID, err)
	}

	e := Event{ID: p.ID, Name: p.Name, Start: start, End: end}
	if err := e.Validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// Validate checks the invariants the layout rules rely on.
func (e Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return ErrEmptyID
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("event %q: %w", e.ID, ErrEmptyName)
	}
	if e.Degenerate() {
		return fmt.Errorf("event %q (%s-%s): %w",
			e.ID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), ErrEndNotAfterStart)
	}
	return nil
}

// Degenerate reports whether the event has zero or negative duration.
// Degenerate events occupy no cells and render with zero height.
func (e Event) Degenerate() bool {
	return !e.End.After(e.Start)
}

// Payload returns the wire representation of the event.
func (e Event) Payload() Payload {
	return Payload{
		ID:            e.ID,
		Name:          e.Name,
		StartDateTime: e.Start.Format(time.RFC3339),
		EndDateTime:   e.End.Format(time.RFC3339),
	}
}

// StartHour returns the wall-clock hour of the start instant.
func (e Event) StartHour() int { return e.Start.Hour() }

// StartMinute returns the wall-clock minute of the start instant.
func (e Event) StartMinute() int { return e.Start.Minute() }

// EndHour returns the wall-clock hour of the end instant.
func (e Event) EndHour() int { return e.End.Hour() }

// EndMinute returns the wall-clock minute of the end instant.
func (e Event) EndMinute() int { return e.End.Minute() }

// Duration returns the event length.
func (e Event) Duration() time.Duration { return e.End.Sub(e.Start) }

// SortByStart sorts events in place by start instant. Ties keep input order.
func SortByStart(events []Event, descending bool) {
	slices.SortStableFunc(events, func(a, b Event) int {
		c := a.Start.Compare(b.Start)
		if descending {
			return -c
		}
		return c
	})
}
