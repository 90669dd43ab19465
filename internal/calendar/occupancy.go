package calendar

// HasEventAtTime reports whether the hour row should render as occupied for
// the given day. hour may be fractional (10.5 is the 10:30 half row).
//
// The boundary rules are asymmetric on purpose: an event ending exactly on an
// hour mark does not reach into that hour's row, while one ending on the half
// hour does. Rules are evaluated per event and OR-combined.
func (w Window) HasEventAtTime(day DayColumn, hour float64) bool {
	for _, e := range day.Events {
		if w.occupies(e, hour) {
			return true
		}
	}
	return false
}

func (w Window) occupies(e Event, hour float64) bool {
	if e.Degenerate() {
		return false
	}

	minHour := w.MinHour()
	maxHour := w.MaxHour()
	startHour := e.StartHour()
	endHour := e.EndHour()
	endMinute := e.EndMinute()

	switch {
	case endHour == minHour+1 && endMinute == 0:
		// The visible tail is a zero-height sliver above the first row.
		return false
	case endHour <= minHour && endMinute == 0:
		// Ended on the hour before the window begins.
		return false
	case startHour >= maxHour:
		return false
	case endHour == minHour:
		// Spills a few minutes into the window start.
		return w.EventOccursAtHour(e, hour)
	case startHour < w.FirstLabel() && endHour > w.LastLabel():
		// Spans the whole window.
		return true
	}

	inside := func(h int) bool { return h >= w.FirstLabel() && h < maxHour }
	switch {
	case startHour >= w.FirstLabel() && endHour <= w.LastLabel():
		return w.EventOccursAtHour(e, hour)
	case inside(startHour) || inside(endHour):
		return w.EventOccursAtHour(e, hour)
	default:
		return float64(startHour) == hour
	}
}

// EventOccursAtHour is the core occupancy test: the start row, the last row
// before the end, every row strictly in between, and every row when the end
// spills exactly onto the window's first hour.
func (w Window) EventOccursAtHour(e Event, hour float64) bool {
	startHour := float64(e.StartHour())
	endHour := float64(e.EndHour())

	return hour == startHour ||
		hour == endHour-1 ||
		endHour-1 == float64(w.MinHour()) ||
		(startHour < hour && hour < endHour)
}

// EventAtTime returns the canonical occupant of the cell: the first event, in
// day order, whose rows include hour. ok is false when no event matches.
//
// The rules are encoded independently of HasEventAtTime and are not
// guaranteed to agree with it at the window edges; see Audit.
func (w Window) EventAtTime(day DayColumn, hour float64) (e Event, ok bool) {
	for _, e := range day.Events {
		if w.isOccupant(e, hour) {
			return e, true
		}
	}
	return Event{}, false
}

func (w Window) isOccupant(e Event, hour float64) bool {
	if e.Degenerate() {
		return false
	}

	startHour := float64(e.StartHour())
	endHour := float64(e.EndHour())

	return hour == startHour ||
		hour == endHour-1 ||
		(startHour < hour && hour < endHour) ||
		(e.EndHour() == w.FirstLabel() && e.EndMinute() != 0)
}
