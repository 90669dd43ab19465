package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/source"
)

func (a *App) exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the loaded events to a JSON file",
		Long: `Load events from the configured source and write the valid ones to a
JSON file usable by the json source. Useful to snapshot an ICS file or a
shared schedule.

Example:
  weekgrid --source ics --path work.ics export ~/.local/share/weekgrid/events.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := a.loadEvents(cmd)
			if err != nil {
				return err
			}
			calendar.SortByStart(events, false)

			if err := source.WriteJSON(args[0], events); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d events to %s\n", len(events), args[0])
			return nil
		},
	}
}
