package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"

	"github.com/javiermolinar/weekgrid/internal/debuglog"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

// StartRefresher sends a RefreshMsg on every tick of the cron spec. An
// empty spec disables refreshing. The returned stop waits for a running
// tick to finish.
func StartRefresher(spec string, send func(tea.Msg)) (stop func(), err error) {
	if spec == "" {
		return func() {}, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		debuglog.Log("REFRESH", map[string]any{"spec": spec})
		send(commands.RefreshMsg{})
	}); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	c.Start()

	return func() {
		<-c.Stop().Done()
	}, nil
}
