package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/dateutil"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
)

// keyMap defines the key bindings of the week view.
type keyMap struct {
	PrevWeek   key.Binding
	NextWeek   key.Binding
	HourUp     key.Binding
	HourDown   key.Binding
	Today      key.Binding
	GoTo       key.Binding
	ResetHours key.Binding
	Reload     key.Binding
	ToggleMode key.Binding
	Share      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevWeek: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "prev week"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next week"),
		),
		HourUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "earlier"),
		),
		HourDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "later"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to date"),
		),
		ResetHours: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset hours"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "grid/agenda"),
		),
		Share: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy share link"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.HourUp, k.HourDown, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevWeek, k.NextWeek, k.Today, k.GoTo},
		{k.HourUp, k.HourDown, k.ResetHours},
		{k.Reload, k.ToggleMode, k.Share},
		{k.Help, k.Quit},
	}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.prompting {
		return m.handlePromptKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys outside the date prompt.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	// Week navigation
	case key.Matches(msg, m.keys.PrevWeek):
		m.nav.Navigate(-1)
		m.agendaOffset = 0
		LogNavigation("prev_week", m.nav)
	case key.Matches(msg, m.keys.NextWeek):
		m.nav.Navigate(1)
		m.agendaOffset = 0
		LogNavigation("next_week", m.nav)
	case key.Matches(msg, m.keys.Today):
		m.nav.Today()
		m.agendaOffset = 0
		LogNavigation("today", m.nav)

	// Hour navigation; the agenda scrolls instead
	case key.Matches(msg, m.keys.HourUp):
		if m.mode == ModeAgenda {
			m.agendaOffset = max(m.agendaOffset-1, 0)
			return m, nil
		}
		m.nav.NavigateHours(-1)
		LogNavigation("hour_up", m.nav)
	case key.Matches(msg, m.keys.HourDown):
		if m.mode == ModeAgenda {
			m.agendaOffset++
			return m, nil
		}
		m.nav.NavigateHours(1)
		LogNavigation("hour_down", m.nav)
	case key.Matches(msg, m.keys.ResetHours):
		m.nav.ResetWindow()
		LogNavigation("reset_hours", m.nav)

	// Actions
	case key.Matches(msg, m.keys.GoTo):
		m.prompting = true
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Reload):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.setStatus("Reloading...", false, statusTTL)
		return m, commands.LoadEvents(m.src)
	case key.Matches(msg, m.keys.ToggleMode):
		from := m.mode
		m.mode = m.mode.toggle()
		m.modeForced = true
		m.agendaOffset = 0
		LogModeChange(from, m.mode, "key")
	case key.Matches(msg, m.keys.Share):
		m.setStatus("Fetching share link...", false, statusTTL)
		return m, commands.FetchShareURL(m.share, m.cfg.Source.AppURL, m.cfg.Source.Username)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handlePromptKeys handles keys while the go-to-date prompt is open.
func (m Model) handlePromptKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt()
		return m, nil
	case "enter":
		value := m.prompt.Value()
		m.closePrompt()
		date, err := dateutil.ParseRelativeDate(value, m.now(), m.nav.WeekStart())
		if err != nil {
			return m, func() tea.Msg { return commands.ErrMsg{Err: err} }
		}
		m.nav.GoTo(date)
		m.agendaOffset = 0
		LogNavigation("goto", m.nav)
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompting = false
	m.prompt.Blur()
	m.prompt.SetValue("")
}
