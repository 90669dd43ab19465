package calendar

import (
	"time"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// DaysPerWeek is the number of columns in a week view.
const DaysPerWeek = 7

// DayColumn holds the events that start on one calendar day.
type DayColumn struct {
	Date   time.Time
	Events []Event
}

// WeekView holds the 7 day columns of the week containing Reference.
type WeekView struct {
	Reference time.Time
	Days      [DaysPerWeek]DayColumn
}

// GenerateCalendar partitions events into the 7 days of the week containing
// reference. Events that start outside the week are dropped. Within a day,
// events keep their input order.
func GenerateCalendar(events []Event, reference time.Time, weekStart time.Weekday) WeekView {
	first := dateutil.StartOfWeek(reference, weekStart)
	w := WeekView{Reference: reference}

	for i := range w.Days {
		date := first.AddDate(0, 0, i)
		var dayEvents []Event
		for _, e := range events {
			if dateutil.SameDay(e.Start, date) {
				dayEvents = append(dayEvents, e)
			}
		}
		w.Days[i] = DayColumn{Date: date, Events: dayEvents}
	}

	return w
}

// StartDate returns the first day of the week.
func (w WeekView) StartDate() time.Time {
	return w.Days[0].Date
}

// EndDate returns the last day of the week.
func (w WeekView) EndDate() time.Time {
	return w.Days[DaysPerWeek-1].Date
}

// DayByDate returns the column for the given date, false if not in this week.
func (w WeekView) DayByDate(date time.Time) (DayColumn, bool) {
	for _, day := range w.Days {
		if dateutil.SameDay(day.Date, date) {
			return day, true
		}
	}
	return DayColumn{}, false
}

// EventCount returns the number of events across all days.
func (w WeekView) EventCount() int {
	n := 0
	for _, day := range w.Days {
		n += len(day.Events)
	}
	return n
}
