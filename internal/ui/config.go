package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  weekgrid config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := a.configPath
			if path == "" {
				path = config.DefaultConfigPath()
			}
			return runConfigInteractive(path, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	printConfig(out, cfg)

	reader := bufio.NewReader(in)
	if !promptYesNo(reader, out, "\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.Grid.HourStart = promptInt(reader, out, "First visible hour", cfg.Grid.HourStart)
	cfg.Grid.HourCount = promptInt(reader, out, "Visible hours", cfg.Grid.HourCount)
	cfg.Grid.LinesPerHour = promptInt(reader, out, "Terminal lines per hour", cfg.Grid.LinesPerHour)
	cfg.Grid.WeekStart = promptValue(reader, out, "Week start (monday/sunday)", cfg.Grid.WeekStart)
	cfg.Source.Kind = promptValue(reader, out, "Source (api/schedule/ics/json)", cfg.Source.Kind)
	switch cfg.Source.Kind {
	case config.SourceAPI, config.SourceSchedule:
		cfg.Source.APIURL = promptValue(reader, out, "API URL", cfg.Source.APIURL)
		cfg.Source.AppURL = promptValue(reader, out, "App URL (share links)", cfg.Source.AppURL)
		cfg.Source.Token = promptValue(reader, out, "Token", cfg.Source.Token)
		cfg.Source.Username = promptValue(reader, out, "Username", cfg.Source.Username)
		if cfg.Source.Kind == config.SourceSchedule {
			cfg.Source.ScheduleKey = promptValue(reader, out, "Schedule key", cfg.Source.ScheduleKey)
		}
	default:
		cfg.Source.Path = promptValue(reader, out, "Events file", cfg.Source.Path)
	}
	cfg.Source.Timezone = promptValue(reader, out, "Timezone (empty for local)", cfg.Source.Timezone)
	cfg.Refresh.Cron = promptValue(reader, out, "Refresh cron (empty to disable)", cfg.Refresh.Cron)
	cfg.UI.Theme = promptTheme(reader, out, cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out, "──────────────────────")
	fmt.Fprintln(out, "[grid]")
	fmt.Fprintf(out, "  hour_start     = %d\n", cfg.Grid.HourStart)
	fmt.Fprintf(out, "  hour_count     = %d\n", cfg.Grid.HourCount)
	fmt.Fprintf(out, "  row_height     = %d\n", cfg.Grid.RowHeight)
	fmt.Fprintf(out, "  lines_per_hour = %d\n", cfg.Grid.LinesPerHour)
	fmt.Fprintf(out, "  week_start     = %s\n", cfg.Grid.WeekStart)
	fmt.Fprintf(out, "  compact_width  = %d\n", cfg.Grid.CompactWidth)
	fmt.Fprintln(out, "\n[source]")
	fmt.Fprintf(out, "  kind           = %s\n", cfg.Source.Kind)
	switch cfg.Source.Kind {
	case config.SourceAPI, config.SourceSchedule:
		fmt.Fprintf(out, "  api_url        = %s\n", cfg.Source.APIURL)
		fmt.Fprintf(out, "  app_url        = %s\n", cfg.Source.AppURL)
		fmt.Fprintf(out, "  token          = %s\n", maskSecret(cfg.Source.Token))
		fmt.Fprintf(out, "  username       = %s\n", cfg.Source.Username)
		if cfg.Source.Kind == config.SourceSchedule {
			fmt.Fprintf(out, "  schedule_key   = %s\n", maskSecret(cfg.Source.ScheduleKey))
		}
	default:
		fmt.Fprintf(out, "  path           = %s\n", cfg.Source.Path)
	}
	if cfg.Source.Timezone != "" {
		fmt.Fprintf(out, "  timezone       = %s\n", cfg.Source.Timezone)
	}
	fmt.Fprintln(out, "\n[refresh]")
	fmt.Fprintf(out, "  cron           = %q\n", cfg.Refresh.Cron)
	fmt.Fprintln(out, "\n[ui]")
	fmt.Fprintf(out, "  theme          = %s\n", cfg.UI.Theme)
}

// maskSecret keeps the last 4 characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

func promptYesNo(reader *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, out io.Writer, label string, current int) int {
	for {
		value := promptValue(reader, out, label, strconv.Itoa(current))
		n, err := strconv.Atoi(value)
		if err == nil {
			return n
		}
		fmt.Fprintf(out, "  Invalid number %q\n", value)
	}
}

func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for attempt := 0; attempt < 3; attempt++ {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
	}
	return current
}
