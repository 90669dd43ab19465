package calendar

import (
	"time"
)

// testDate is Wednesday, January 15, 2025.
var testDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

// at returns testDate at hh:mm.
func at(hour, minute int) time.Time {
	return testDate.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// newEvent builds an event on testDate from hh:mm to hh:mm.
func newEvent(id string, startHour, startMinute, endHour, endMinute int) Event {
	return Event{
		ID:    id,
		Name:  "Event " + id,
		Start: at(startHour, startMinute),
		End:   at(endHour, endMinute),
	}
}

func dayOf(events ...Event) DayColumn {
	return DayColumn{Date: testDate, Events: events}
}
