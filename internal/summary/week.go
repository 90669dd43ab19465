// Package summary provides shared week summary utilities.
package summary

import (
	"fmt"
	"time"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

// DayStats holds statistics for a single day column.
type DayStats struct {
	Events         int
	Minutes        int
	VisibleMinutes int
}

// WeekStats holds aggregated statistics for the week.
type WeekStats struct {
	TotalEvents    int
	TotalMinutes   int
	VisibleMinutes int
	DayStats       [calendar.DaysPerWeek]DayStats
}

// VisiblePercent returns the share of scheduled time inside the hour window.
func (s WeekStats) VisiblePercent() int {
	if s.TotalMinutes == 0 {
		return 0
	}
	return (s.VisibleMinutes * 100) / s.TotalMinutes
}

// BusiestDay returns the column index with the most scheduled minutes and
// the minutes. The index is -1 for an empty week.
func (s WeekStats) BusiestDay() (day int, minutes int) {
	day = -1
	for i, ds := range s.DayStats {
		if ds.Minutes > minutes {
			minutes = ds.Minutes
			day = i
		}
	}
	return day, minutes
}

// WeekSummary holds aggregated week data.
type WeekSummary struct {
	Start  time.Time
	End    time.Time
	Window calendar.Window
	Events []calendar.Event
	Stats  WeekStats
}

// SummarizeWeek aggregates the events of week. Visible minutes are the part
// of each event between the window's first and last hour on its start day.
func SummarizeWeek(week calendar.WeekView, w calendar.Window) *WeekSummary {
	s := &WeekSummary{
		Start:  week.StartDate(),
		End:    week.EndDate(),
		Window: w,
	}

	for i, day := range week.Days {
		var ds DayStats
		from, to := windowBounds(day.Date, w)
		for _, e := range day.Events {
			if e.Degenerate() {
				continue
			}
			ds.Events++
			ds.Minutes += int(e.Duration().Minutes())
			ds.VisibleMinutes += overlapMinutes(e.Start, e.End, from, to)
			s.Events = append(s.Events, e)
		}
		s.Stats.DayStats[i] = ds
		s.Stats.TotalEvents += ds.Events
		s.Stats.TotalMinutes += ds.Minutes
		s.Stats.VisibleMinutes += ds.VisibleMinutes
	}

	calendar.SortByStart(s.Events, false)
	return s
}

func windowBounds(date time.Time, w calendar.Window) (from, to time.Time) {
	y, m, d := date.Date()
	from = time.Date(y, m, d, w.MinHour(), 0, 0, 0, date.Location())
	to = time.Date(y, m, d, w.MaxHour(), 0, 0, 0, date.Location())
	return from, to
}

func overlapMinutes(start, end, from, to time.Time) int {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

// FormatDuration renders minutes as "2h30m", "45m" or "3h".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}
