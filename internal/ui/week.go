package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// now is replaced in tests.
var now = time.Now

// weekFlags are shared by the week and agenda commands.
type weekFlags struct {
	date      string
	hourStart int
	hourCount int
	noColor   bool
}

func (f *weekFlags) register(cmd *cobra.Command, withWindow bool) {
	cmd.Flags().StringVarP(&f.date, "date", "d", "", "Any day of the week to show: YYYY-MM-DD, today, tomorrow, next-week, monday...")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable color output")
	if withWindow {
		cmd.Flags().IntVar(&f.hourStart, "hour-start", -1, "First hour of the visible window (default from config)")
		cmd.Flags().IntVar(&f.hourCount, "hour-count", 0, "Visible hours (default from config)")
	}
}

// navigator builds a navigator over events positioned on the requested week.
func (a *App) navigator(f weekFlags, events []calendar.Event) (*calendar.Navigator, error) {
	weekStart := a.config.Grid.WeekStartDay()
	date, err := dateutil.ParseRelativeDate(f.date, now(), weekStart)
	if err != nil {
		return nil, fmt.Errorf("invalid --date %q: %w", f.date, err)
	}

	window := a.config.Grid.Window()
	if f.hourStart >= 0 {
		window.Start = f.hourStart
	}
	if f.hourCount > 0 {
		window.Count = f.hourCount
	}

	nav := calendar.NewNavigator(date,
		calendar.WithWeekStart(weekStart),
		calendar.WithWindow(window),
		calendar.WithGeometry(a.config.Grid.Geometry()),
		calendar.WithClock(now),
	)
	nav.SetEvents(events)
	return nav, nil
}

func (a *App) weekCmd() *cobra.Command {
	var flags weekFlags
	var format string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the week grid",
		Long: `Print the events of one week on the hour grid.

The text format draws one line per visible hour. The json and yaml
formats print the computed cell layout: for every day and hour label,
whether the row is occupied, which event occupies it, and the block's
height and top offset in pixels.

Example:
  weekgrid week --date next-week --hour-start 9
  weekgrid week --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.noColor {
				DisableColor()
			}

			events, err := a.loadEvents(cmd)
			if err != nil {
				return err
			}
			nav, err := a.navigator(flags, events)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == FormatText {
				PrintWeekText(out, nav, now(), termWidth())
				return nil
			}
			return WriteLayout(out, nav.Layout(), format)
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format: text, json or yaml")
	return cmd
}

func (a *App) agendaCmd() *cobra.Command {
	var flags weekFlags

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the week as a day-by-day list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.noColor {
				DisableColor()
			}

			events, err := a.loadEvents(cmd)
			if err != nil {
				return err
			}
			nav, err := a.navigator(flags, events)
			if err != nil {
				return err
			}

			PrintAgenda(cmd.OutOrStdout(), nav.Week(), now())
			return nil
		},
	}

	flags.register(cmd, false)
	return cmd
}
