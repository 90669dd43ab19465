package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/summary"
)

func (a *App) summaryCmd() *cobra.Command {
	var flags weekFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show scheduled time per day for a week",
		Long: `Show how many events each day of the week holds, how much time they
take, and how much of it falls inside the visible hour window.

Example:
  weekgrid summary --date last-week`,
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

			PrintSummary(cmd.OutOrStdout(), summary.SummarizeWeek(nav.Week(), nav.Window()))
			return nil
		},
	}

	flags.register(cmd, true)
	return cmd
}
