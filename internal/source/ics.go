package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

// ICSFile loads events from an iCalendar file.
type ICSFile struct {
	Path     string
	Location *time.Location
}

// Load implements Source.
func (s *ICSFile) Load(ctx context.Context) ([]calendar.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading ics file: %w", err)
	}
	events, err := ParseICS(bytes.NewReader(body), s.Location)
	logLoaded("ics", len(events), err)
	return events, err
}

// ParseICS converts the VEVENTs of an iCalendar stream into events in loc.
// All-day events are skipped. Recurring events keep only their first
// instance.
func ParseICS(r io.Reader, loc *time.Location) ([]calendar.Event, error) {
	if loc == nil {
		loc = time.Local
	}

	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parsing ics: %w", err)
	}

	var (
		events []calendar.Event
		errs   []error
	)
	for i, ve := range cal.Events() {
		e, skip, err := parseVEvent(ve, loc)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("vevent %d (%q): %w", i, e.ID, err))
		case !skip:
			events = append(events, e)
		}
	}

	return events, rejected(errs)
}

func parseVEvent(ve *ical.VEvent, loc *time.Location) (e calendar.Event, skip bool, err error) {
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		e.ID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.Name = p.Value
	}

	// VALUE=DATE or no 'T' in the value -> all-day
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if vs, ok := p.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return e, true, nil
		}
		if !strings.Contains(p.Value, "T") {
			return e, true, nil
		}
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return e, false, errors.Join(calendar.ErrInvalidDateTime, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		return e, false, errors.Join(calendar.ErrInvalidDateTime, err)
	}
	e.Start = start.In(loc)
	e.End = end.In(loc)

	if err := e.Validate(); err != nil {
		return e, false, err
	}
	return e, false, nil
}
