package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

func (a *App) auditCmd() *cobra.Command {
	var hourStart int
	var visibleOnly bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Check occupancy against the canonical occupant",
		Long: `Enumerate every half-hour aligned event of one day and report the
grid cells where the occupancy test and the canonical occupant disagree.
Discrepancies are reported, never corrected.

Example:
  weekgrid audit                 # configured window, every hour of the day
  weekgrid audit --visible       # only the rows the grid shows
  weekgrid audit --hour-start -1 # every valid window start`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			window := a.config.Grid.Window()

			if cmd.Flags().Changed("hour-start") {
				if hourStart < 0 {
					PrintDiscrepancies(out, calendar.AuditAll(window.Count, nil))
					return nil
				}
				window = calendar.NewWindow(hourStart, window.Count)
			}

			var hours []int
			if visibleOnly {
				hours = window.Labels()
			}
			PrintDiscrepancies(out, calendar.Audit(window, hours))
			return nil
		},
	}

	cmd.Flags().IntVar(&hourStart, "hour-start", 0, "Window start to audit, -1 for every start (default from config)")
	cmd.Flags().BoolVar(&visibleOnly, "visible", false, "Only check the hour labels the grid shows")
	return cmd
}
