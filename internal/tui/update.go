package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/debuglog"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

const (
	statusTTL = 3 * time.Second
	shareTTL  = 5 * time.Second
	errorTTL  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.autoMode()
		return m, nil

	case commands.EventsLoadedMsg:
		events := msg.Events
		// The grid renders the latest-starting event first.
		calendar.SortByStart(events, true)
		m.nav.SetEvents(events)
		m.loading = false
		if msg.Rejected != nil {
			debuglog.Error("load", msg.Rejected)
			m.setStatus(fmt.Sprintf("Loaded %d events, some were rejected: %v", len(events), msg.Rejected), true, errorTTL)
			return m, commands.ClearStatusAfter(errorTTL)
		}
		m.setStatus(fmt.Sprintf("Loaded %d events", len(events)), false, statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ErrMsg:
		m.loading = false
		debuglog.Error("tui", msg.Err)
		m.setStatus(fmt.Sprintf("Error: %v", msg.Err), true, errorTTL)
		return m, commands.ClearStatusAfter(errorTTL)

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg, false, statusTTL)
		return m, commands.ClearStatusAfter(statusTTL)

	case commands.ClearStatusMsg:
		if !m.now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil

	case commands.RefreshMsg:
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, commands.LoadEvents(m.src)

	case commands.ShareURLMsg:
		if err := m.clipboard(msg.URL); err != nil {
			m.setStatus("Share link: "+msg.URL, false, shareTTL)
			return m, commands.ClearStatusAfter(shareTTL)
		}
		m.setStatus("Share link copied: "+msg.URL, false, shareTTL)
		return m, commands.ClearStatusAfter(shareTTL)
	}

	if m.prompting {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}
