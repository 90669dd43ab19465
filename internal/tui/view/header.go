package view

import (
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// HeaderLabels builds column labels for the week grid and marks today's
// column. Column 0 is the hour gutter and carries the month.
func HeaderLabels(days [calendar.DaysPerWeek]calendar.DayColumn, today time.Time) ([]string, map[int]bool) {
	labels := make([]string, 0, calendar.DaysPerWeek+1)
	todayCols := make(map[int]bool)

	first := days[0].Date
	labels = append(labels, fmt.Sprintf("%s %02d", first.Format("Jan"), first.Year()%100))

	for i, day := range days {
		label := day.Date.Format("Mon") + " " + fmt.Sprint(day.Date.Day())
		if dateutil.SameDay(day.Date, today) {
			label = "*" + label + "*"
			todayCols[i+1] = true
		}
		labels = append(labels, label)
	}

	return labels, todayCols
}

// WeekTitle formats the date range of a week, e.g. "Jan 13 - Jan 19, 2025".
func WeekTitle(week calendar.WeekView) string {
	start, end := week.StartDate(), week.EndDate()
	if start.Year() != end.Year() {
		return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
}

// HourLabel formats a grid hour label.
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
