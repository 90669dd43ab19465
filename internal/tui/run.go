package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/source"
)

// Run starts the TUI and blocks until the user quits.
func Run(cfg *config.Config, src source.Source, opts ...ModelOption) error {
	m, err := New(cfg, src, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	stop, err := StartRefresher(cfg.Refresh.Cron, p.Send)
	if err != nil {
		return err
	}
	defer stop()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
