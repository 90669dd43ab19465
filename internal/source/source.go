// Package source loads events for the calendar grid from the configured
// backend: the events API, a shared schedule, an ICS file, or a JSON/YAML
// file. Malformed events are rejected here so the layout engine only ever
// sees valid ones.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/debuglog"
)

// ErrInvalidEvents is returned alongside the valid events when some inputs
// failed validation.
var ErrInvalidEvents = errors.New("invalid events")

// Source loads the full event list.
type Source interface {
	Load(ctx context.Context) ([]calendar.Event, error)
}

// New builds the source selected by cfg.
func New(cfg config.SourceConfig) (Source, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.SourceAPI:
		return &EventsSource{Client: NewAPIClient(cfg.APIURL, cfg.Token), Location: loc}, nil
	case config.SourceSchedule:
		return &ScheduleSource{
			Client:   NewAPIClient(cfg.APIURL, cfg.Token),
			Username: cfg.Username,
			Key:      cfg.ScheduleKey,
			Location: loc,
		}, nil
	case config.SourceICS:
		return &ICSFile{Path: cfg.Path, Location: loc}, nil
	case config.SourceJSON:
		return &JSONFile{Path: cfg.Path, Location: loc}, nil
	default:
		return nil, fmt.Errorf("unknown source kind: %q", cfg.Kind)
	}
}

// toEvents parses and validates wire payloads. Valid events are always
// returned; rejected ones are reported through ErrInvalidEvents.
func toEvents(payloads []calendar.Payload, loc *time.Location) ([]calendar.Event, error) {
	events := make([]calendar.Event, 0, len(payloads))
	var errs []error
	for i, p := range payloads {
		e, err := calendar.ParseEvent(p, loc)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %d (%q): %w", i, p.ID, err))
			continue
		}
		events = append(events, e)
	}
	return events, rejected(errs)
}

// rejected logs and joins validation errors.
func rejected(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		debuglog.Error("event rejected", err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidEvents, errors.Join(errs...))
}

func logLoaded(kind string, n int, err error) {
	debuglog.Log("EVENTS_LOADED", map[string]any{
		"source":   kind,
		"count":    n,
		"rejected": errors.Is(err, ErrInvalidEvents),
	})
}
