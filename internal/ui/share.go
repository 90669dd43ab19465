package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/source"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

func (a *App) shareCmd() *cobra.Command {
	var regenerate bool
	var disable bool
	var copyURL bool

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print the public link to your schedule",
		Long: `Print the link others can use to view your schedule.

A share key is created when sharing is not enabled yet. --new replaces the
key, which invalidates links handed out before. --disable revokes it.

Example:
  weekgrid share --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.config.Source.Username == "" {
				return errors.New("share requires source.username to be set")
			}
			if regenerate && disable {
				return errors.New("--new and --disable are mutually exclusive")
			}

			ctx := context.Background()
			client := a.apiClient()
			out := cmd.OutOrStdout()

			if disable {
				if err := client.DisableScheduleKey(ctx); err != nil {
					return fmt.Errorf("disabling share key: %w", err)
				}
				fmt.Fprintln(out, "Sharing disabled")
				return nil
			}

			token, err := shareToken(ctx, client, regenerate)
			if err != nil {
				return err
			}

			url := source.ShareURL(a.config.Source.AppURL, a.config.Source.Username, token)
			fmt.Fprintln(out, url)

			if copyURL {
				if err := copyToClipboard(url); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.ErrOrStderr(), formatStats("Copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&regenerate, "new", false, "Generate a new share key")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable sharing")
	cmd.Flags().BoolVarP(&copyURL, "copy", "c", false, "Copy the link to the clipboard")
	return cmd
}

func shareToken(ctx context.Context, client *source.APIClient, regenerate bool) (string, error) {
	if !regenerate {
		token, err := client.ScheduleKey(ctx)
		if err != nil {
			return "", fmt.Errorf("fetching share key: %w", err)
		}
		if token != "" {
			return token, nil
		}
	}
	token, err := client.GenerateScheduleKey(ctx)
	if err != nil {
		return "", fmt.Errorf("creating share key: %w", err)
	}
	return token, nil
}
