package calendar

import (
	"fmt"
	"time"
)

// DiscrepancyKind classifies a disagreement between HasEventAtTime and
// EventAtTime for a single-event day.
type DiscrepancyKind string

const (
	// OccupantNotOccupied: EventAtTime finds the event, HasEventAtTime says
	// the cell is empty.
	OccupantNotOccupied DiscrepancyKind = "occupant-not-occupied"
	// OccupiedWithoutOccupant: HasEventAtTime says occupied, EventAtTime
	// finds nothing.
	OccupiedWithoutOccupant DiscrepancyKind = "occupied-without-occupant"
)

// Discrepancy is one cell where the two predicates disagree.
type Discrepancy struct {
	Window Window
	Event  Event
	Hour   int
	Kind   DiscrepancyKind
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("start=%02d %s-%s hour=%02d %s",
		d.Window.Start, d.Event.Start.Format("15:04"), d.Event.End.Format("15:04"), d.Hour, d.Kind)
}

// auditDate anchors the synthetic events; any date works.
var auditDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Audit checks every half-hour aligned single-day event against the given
// hours and reports the cells where HasEventAtTime and EventAtTime disagree.
// A nil hours slice checks every hour of the day. Nothing is corrected.
func Audit(w Window, hours []int) []Discrepancy {
	if hours == nil {
		hours = make([]int, HoursPerDay)
		for h := range hours {
			hours[h] = h
		}
	}

	var found []Discrepancy
	const step = 30 * time.Minute
	dayEnd := auditDate.Add(HoursPerDay * time.Hour)

	for start := auditDate; start.Before(dayEnd); start = start.Add(step) {
		for end := start.Add(step); end.Before(dayEnd); end = end.Add(step) {
			e := Event{
				ID:    start.Format("1504") + "-" + end.Format("1504"),
				Name:  "audit",
				Start: start,
				End:   end,
			}
			day := DayColumn{Date: auditDate, Events: []Event{e}}

			for _, h := range hours {
				occupied := w.HasEventAtTime(day, float64(h))
				_, occupant := w.EventAtTime(day, float64(h))
				switch {
				case occupant && !occupied:
					found = append(found, Discrepancy{Window: w, Event: e, Hour: h, Kind: OccupantNotOccupied})
				case occupied && !occupant:
					found = append(found, Discrepancy{Window: w, Event: e, Hour: h, Kind: OccupiedWithoutOccupant})
				}
			}
		}
	}

	return found
}

// AuditAll runs Audit for every valid window start of the given count.
func AuditAll(count int, hours []int) []Discrepancy {
	var found []Discrepancy
	w := NewWindow(0, count)
	for start := 0; start <= w.MaxStart(); start++ {
		found = append(found, Audit(Window{Start: start, Count: w.Count}, hours)...)
	}
	return found
}
