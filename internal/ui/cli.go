package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/debuglog"
	"github.com/javiermolinar/weekgrid/internal/source"
	"github.com/javiermolinar/weekgrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	// Global flags
	configPath string
	sourceKind string
	sourcePath string
	debug      bool
}

// NewApp creates a new CLI application. Configuration is loaded once flags
// are parsed.
func NewApp() *App {
	a := &App{}

	a.root = &cobra.Command{
		Use:   "weekgrid",
		Short: "A terminal week calendar",
		Long: `Weekgrid lays calendar events out on a weekly hour grid.

Events come from the events API, a shared schedule, an ICS file, or a
JSON/YAML file. Running weekgrid without a subcommand opens the
interactive week view.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			src, err := source.New(a.config.Source)
			if err != nil {
				return err
			}
			var opts []tui.ModelOption
			if a.config.Source.Kind == config.SourceAPI {
				opts = append(opts, tui.WithShareKeys(a.apiClient()))
			}
			return tui.Run(a.config, src, opts...)
		},
	}

	// Add global flags
	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default ~/.config/weekgrid/config.toml)")
	flags.StringVar(&a.sourceKind, "source", "", "Event source: api, schedule, ics or json")
	flags.StringVar(&a.sourcePath, "path", "", "Events file for the ics and json sources")
	flags.BoolVar(&a.debug, "debug", false, "Enable debug logging to "+debuglog.DefaultPath)

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.agendaCmd())
	a.root.AddCommand(a.auditCmd())
	a.root.AddCommand(a.shareCmd())
	a.root.AddCommand(a.summaryCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

// setup loads the configuration, applies flag overrides and starts the
// debug log.
func (a *App) setup() error {
	path := a.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if a.sourceKind != "" {
		cfg.Source.Kind = a.sourceKind
	}
	if a.sourcePath != "" {
		cfg.Source.Path = a.sourcePath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	a.config = cfg

	return debuglog.Init(a.debug, debuglog.DefaultPath)
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "weekgrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// apiClient returns a client for the configured events API.
func (a *App) apiClient() *source.APIClient {
	return source.NewAPIClient(a.config.Source.APIURL, a.config.Source.Token)
}

// loadEvents loads events from the configured source. Rejected events are
// reported as a warning and the valid remainder is returned.
func (a *App) loadEvents(cmd *cobra.Command) ([]calendar.Event, error) {
	src, err := source.New(a.config.Source)
	if err != nil {
		return nil, err
	}
	events, err := src.Load(context.Background())
	if errors.Is(err, source.ErrInvalidEvents) {
		fmt.Fprintln(cmd.ErrOrStderr(), formatWarning(fmt.Sprintf("warning: %v", err)))
		err = nil
	}
	if err != nil {
		return nil, err
	}
	calendar.SortByStart(events, true)
	return events, nil
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources held by the application.
func (a *App) Close() error {
	debuglog.Close()
	return nil
}
