package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"gopkg.in/yaml.v3"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/summary"
)

// Output formats of the week command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const (
	gutterWidth = 7
	minColWidth = 6
	maxColWidth = 20
)

// Cell markers of the text grid.
const (
	markOccupied     = "░"
	markContinuation = "│"
)

// colWidthFor fits seven day columns after the hour gutter into width.
func colWidthFor(width int) int {
	return min(max((width-gutterWidth)/calendar.DaysPerWeek, minColWidth), maxColWidth)
}

// padCell truncates or pads s to width cells. Coloring happens after
// padding so escape codes don't count toward the width.
func padCell(s string, width int) string {
	s = ansi.Truncate(s, width-1, "…")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}

// WeekTitle formats the date range of a week.
func WeekTitle(week calendar.WeekView) string {
	return fmt.Sprintf("WEEK: %s - %s", week.StartDate().Format("Mon Jan 2"), week.EndDate().Format("Mon Jan 2, 2006"))
}

// PrintWeekText prints the week grid: one line per label hour, one column
// per day. The first row of each block shows the event name; rows the
// occupant spans show a bar; occupied rows without an occupant are shaded.
func PrintWeekText(w io.Writer, nav *calendar.Navigator, today time.Time, width int) {
	week := nav.Week()
	win := nav.Window()
	colW := colWidthFor(width)

	fmt.Fprintf(w, "\n  %s\n", formatHeader(WeekTitle(week)))
	fmt.Fprintln(w, strings.Repeat("─", gutterWidth+colW*calendar.DaysPerWeek))

	header := strings.Repeat(" ", gutterWidth)
	for _, day := range week.Days {
		label := padCell(day.Date.Format("Mon 2"), colW)
		if dateutil.SameDay(day.Date, today) {
			label = formatToday(label)
		} else {
			label = formatHeader(label)
		}
		header += label
	}
	fmt.Fprintln(w, header)

	painted := make([]map[string]bool, calendar.DaysPerWeek)
	for i := range painted {
		painted[i] = make(map[string]bool)
	}

	for _, h := range win.Labels() {
		line := padCell(fmt.Sprintf("%02d:00", h), gutterWidth)
		for i, day := range week.Days {
			line += weekCell(win, day, h, colW, painted[i])
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}

	fmt.Fprintln(w)
	PrintStats(w, summary.SummarizeWeek(week, win).Stats)
}

// PrintStats prints the one-line week summary.
func PrintStats(w io.Writer, stats summary.WeekStats) {
	if stats.TotalEvents == 0 {
		fmt.Fprintf(w, "  %s\n", formatMuted("No events this week"))
		return
	}
	line := fmt.Sprintf("  Events: %s | Scheduled: %s | In view: %s",
		formatStats(fmt.Sprint(stats.TotalEvents)),
		formatStats(summary.FormatDuration(stats.TotalMinutes)),
		formatStats(fmt.Sprintf("%d%%", stats.VisiblePercent())))
	fmt.Fprintln(w, line)
}

// PrintSummary prints the week totals followed by a per-day breakdown.
func PrintSummary(w io.Writer, s *summary.WeekSummary) {
	fmt.Fprintf(w, "\n  %s\n", formatHeader(fmt.Sprintf("SUMMARY: %s - %s",
		s.Start.Format("Mon Jan 2"), s.End.Format("Mon Jan 2, 2006"))))
	fmt.Fprintf(w, "  %s\n\n", formatMuted(fmt.Sprintf("Window %02d:00-%02d:00", s.Window.MinHour(), s.Window.MaxHour())))

	for i, ds := range s.Stats.DayStats {
		date := s.Start.AddDate(0, 0, i)
		label := padCell(date.Format("Mon 2"), 8)
		if ds.Events == 0 {
			fmt.Fprintf(w, "  %s%s\n", label, formatMuted("-"))
			continue
		}
		fmt.Fprintf(w, "  %s%d events  %s  (%s in view)\n", label, ds.Events,
			summary.FormatDuration(ds.Minutes), summary.FormatDuration(ds.VisibleMinutes))
	}

	fmt.Fprintln(w)
	PrintStats(w, s.Stats)
	if day, minutes := s.Stats.BusiestDay(); day >= 0 {
		fmt.Fprintf(w, "  Busiest: %s (%s)\n",
			formatStats(s.Start.AddDate(0, 0, day).Format("Monday")), summary.FormatDuration(minutes))
	}
}

func weekCell(win calendar.Window, day calendar.DayColumn, hour, colW int, painted map[string]bool) string {
	if e, ok := win.EventAtTime(day, float64(hour)); ok {
		key := e.ID + "@" + e.Start.Format(time.RFC3339)
		if painted[key] {
			return formatEvent(padCell(markContinuation, colW))
		}
		painted[key] = true
		return formatEvent(padCell(e.Name, colW))
	}
	if win.HasEventAtTime(day, float64(hour)) {
		return formatOccupied(padCell(markOccupied, colW))
	}
	return strings.Repeat(" ", colW)
}

// WriteLayout encodes the cell layout as JSON or YAML.
func WriteLayout(w io.Writer, layout calendar.Layout, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(layout)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(layout); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

// AgendaTimeFormat is the 12-hour clock used by the agenda list.
const AgendaTimeFormat = "03:04 PM"

// PrintAgenda prints the week day by day with events in ascending order.
func PrintAgenda(w io.Writer, week calendar.WeekView, now time.Time) {
	fmt.Fprintf(w, "\n  %s\n", formatHeader(WeekTitle(week)))
	for _, day := range week.Days {
		heading := day.Date.Format("Monday, Jan 2")
		if dateutil.SameDay(day.Date, now) {
			heading = formatToday(heading)
		} else {
			heading = formatHeader(heading)
		}
		fmt.Fprintf(w, "\n  %s\n", heading)

		if len(day.Events) == 0 {
			fmt.Fprintf(w, "    %s\n", formatMuted("No events"))
			continue
		}

		events := append([]calendar.Event(nil), day.Events...)
		calendar.SortByStart(events, false)
		for _, e := range events {
			times := fmt.Sprintf("%s - %s", e.Start.Format(AgendaTimeFormat), e.End.Format(AgendaTimeFormat))
			name := formatEvent(e.Name)
			if e.End.Before(now) {
				name = formatMuted(e.Name)
			}
			fmt.Fprintf(w, "    %s  %s\n", formatMuted(times), name)
		}
	}
	fmt.Fprintln(w)
}

// PrintDiscrepancies prints audit results grouped by window start.
func PrintDiscrepancies(w io.Writer, found []calendar.Discrepancy) {
	if len(found) == 0 {
		fmt.Fprintln(w, formatStats("No discrepancies: occupancy and occupant agree."))
		return
	}

	counts := make(map[calendar.DiscrepancyKind]int)
	for _, d := range found {
		counts[d.Kind]++
		fmt.Fprintln(w, d.String())
	}
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "%s  %s: %d  %s: %d\n",
		formatWarning(fmt.Sprintf("%d discrepancies", len(found))),
		calendar.OccupantNotOccupied, counts[calendar.OccupantNotOccupied],
		calendar.OccupiedWithoutOccupant, counts[calendar.OccupiedWithoutOccupant])
}
