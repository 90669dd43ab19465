package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/config"
)

// testNow is Wednesday, January 15, 2025 at noon.
var testNow = time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)

type fakeSource struct {
	events []calendar.Event
}

func (f fakeSource) Load(context.Context) ([]calendar.Event, error) {
	return f.events, nil
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 1, day, hour, minute, 0, 0, time.UTC)
}

func testEvent(id, name string, start, end time.Time) calendar.Event {
	return calendar.Event{ID: id, Name: name, Start: start, End: end}
}

func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Source.Username = "ada"
	opts = append([]ModelOption{WithClock(func() time.Time { return testNow })}, opts...)
	m, err := New(cfg, fakeSource{}, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func plainProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m, cmd
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}
