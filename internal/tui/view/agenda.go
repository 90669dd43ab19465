package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// AgendaTimeFormat is the 12-hour clock used by the agenda list.
const AgendaTimeFormat = "03:04 PM"

// AgendaStyles holds the styles of the agenda list.
type AgendaStyles struct {
	Day      lipgloss.Style
	Today    lipgloss.Style
	Time     lipgloss.Style
	Event    lipgloss.Style
	Past     lipgloss.Style
	Empty    lipgloss.Style
	NoEvents string
}

// AgendaLines lists the week day by day with events in ascending start
// order. Days without events are listed with a placeholder line.
func AgendaLines(days [calendar.DaysPerWeek]calendar.DayColumn, now time.Time, styles AgendaStyles) []string {
	var lines []string
	for _, day := range days {
		dayStyle := styles.Day
		if dateutil.SameDay(day.Date, now) {
			dayStyle = styles.Today
		}
		lines = append(lines, dayStyle.Render(day.Date.Format("Monday, Jan 2")))

		if len(day.Events) == 0 {
			lines = append(lines, styles.Empty.Render("  "+styles.NoEvents))
			continue
		}

		events := append([]calendar.Event(nil), day.Events...)
		calendar.SortByStart(events, false)
		for _, e := range events {
			eventStyle := styles.Event
			if e.End.Before(now) {
				eventStyle = styles.Past
			}
			lines = append(lines, "  "+styles.Time.Render(AgendaTimeRange(e))+" "+eventStyle.Render(e.Name))
		}
	}
	return lines
}

// AgendaTimeRange formats the start and end of e on a 12-hour clock.
func AgendaTimeRange(e calendar.Event) string {
	return fmt.Sprintf("%s - %s", e.Start.Format(AgendaTimeFormat), e.End.Format(AgendaTimeFormat))
}

// RenderAgenda renders a window of agenda lines starting at offset.
func RenderAgenda(lines []string, offset, width, height int, bg lipgloss.Color) string {
	if height <= 0 {
		return ""
	}
	offset = ClampOffset(offset, len(lines), height)
	end := min(offset+height, len(lines))
	return PlaceBox(width, height, lipgloss.Top, strings.Join(lines[offset:end], "\n"), bg)
}

// ClampOffset keeps a scroll offset within [0, total-visible].
func ClampOffset(offset, total, visible int) int {
	return max(min(offset, total-visible), 0)
}
