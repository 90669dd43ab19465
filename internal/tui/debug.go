package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/debuglog"
)

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if !debuglog.Enabled() {
		return
	}
	debuglog.Log("MODE_CHANGE", map[string]any{
		"from":   from.String(),
		"to":     to.String(),
		"reason": reason,
	})
}

// LogNavigation logs the navigator state after a move.
func LogNavigation(action string, nav *calendar.Navigator) {
	if !debuglog.Enabled() || nav == nil {
		return
	}
	w := nav.Window()
	debuglog.Log("NAVIGATE", map[string]any{
		"action":     action,
		"week_start": nav.Week().StartDate().Format("2006-01-02"),
		"hour_start": w.Start,
		"hour_count": w.Count,
		"events":     nav.Week().EventCount(),
	})
}
