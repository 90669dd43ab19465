// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/source"
)

// loadTimeout bounds a single source load.
const loadTimeout = 30 * time.Second

// EventsLoadedMsg is sent when the event list is loaded.
// Rejected is non-nil when some events failed validation; Events then holds
// the valid remainder.
type EventsLoadedMsg struct {
	Events   []calendar.Event
	Rejected error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// RefreshMsg is sent by the background scheduler to trigger a reload.
type RefreshMsg struct{}

// ShareURLMsg is sent when a share link is ready.
type ShareURLMsg struct {
	URL string
}

// ShareKeys manages the schedule share key of the authenticated user.
type ShareKeys interface {
	ScheduleKey(ctx context.Context) (string, error)
	GenerateScheduleKey(ctx context.Context) (string, error)
}

// LoadEvents loads the full event list from src.
func LoadEvents(src source.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		events, err := src.Load(ctx)
		if err != nil && !errors.Is(err, source.ErrInvalidEvents) {
			return ErrMsg{Err: err}
		}
		return EventsLoadedMsg{Events: events, Rejected: err}
	}
}

// FetchShareURL returns the share link of the current schedule, creating a
// key when sharing is not enabled yet.
func FetchShareURL(keys ShareKeys, appURL, username string) tea.Cmd {
	return func() tea.Msg {
		if keys == nil {
			return ErrMsg{Err: errors.New("sharing requires the api source")}
		}
		if username == "" {
			return ErrMsg{Err: errors.New("sharing requires a username")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		token, err := keys.ScheduleKey(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("fetching share key: %w", err)}
		}
		if token == "" {
			token, err = keys.GenerateScheduleKey(ctx)
			if err != nil {
				return ErrMsg{Err: fmt.Errorf("creating share key: %w", err)}
			}
		}
		return ShareURLMsg{URL: source.ShareURL(appURL, username, token)}
	}
}

// ClearStatusAfter clears the status line after d.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
