// Package tui provides the terminal user interface for weekgrid.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/tui/theme"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

// gutterWidth is the width of the hour label column.
const gutterWidth = 6

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color

	// Title style
	TitleStyle     lipgloss.Style
	WeekTitleStyle lipgloss.Style
	ModeStyle      lipgloss.Style

	// Header styles
	HeaderStyle         lipgloss.Style
	DayHeaderStyle      lipgloss.Style
	DayHeaderTodayStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Grid cells
	EmptyCellStyle    lipgloss.Style
	OccupiedCellStyle lipgloss.Style // occupied row with no block of its own
	EventStyle        lipgloss.Style
	EventAltStyle     lipgloss.Style // adjacent blocks alternate shades
	PastEventStyle    lipgloss.Style
	PastEventAltStyle lipgloss.Style
	EventTimeStyle    lipgloss.Style

	BorderStyle lipgloss.Style

	// Footer
	PromptStyle lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style

	Agenda view.AgendaStyles
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	s.WeekTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.ModeStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.DayHeaderTodayStyle = s.DayHeaderStyle.
		Foreground(palette.TextOnToday).
		Background(palette.Today)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg).
		Width(gutterWidth)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Background(palette.Bg)

	s.OccupiedCellStyle = lipgloss.NewStyle().
		Background(palette.BgHighlight)

	// Event blocks: darker background with readable text
	s.EventStyle = lipgloss.NewStyle().
		Background(palette.EventBg).
		Foreground(palette.TextOnEvent).
		Bold(true)

	s.EventAltStyle = s.EventStyle.
		Background(palette.EventBgAlt)

	s.PastEventStyle = lipgloss.NewStyle().
		Background(palette.PastEventBg).
		Foreground(palette.Fg)

	s.PastEventAltStyle = s.PastEventStyle.
		Background(palette.PastEventBgAlt)

	s.EventTimeStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted)

	s.BorderStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgSelection)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.Agenda = view.AgendaStyles{
		Day:      lipgloss.NewStyle().Bold(true).Foreground(palette.Accent),
		Today:    lipgloss.NewStyle().Bold(true).Foreground(palette.Today),
		Time:     lipgloss.NewStyle().Foreground(palette.FgMuted),
		Event:    lipgloss.NewStyle().Foreground(palette.Fg),
		Past:     lipgloss.NewStyle().Foreground(palette.FgMuted).Strikethrough(true),
		Empty:    lipgloss.NewStyle().Foreground(palette.FgMuted).Italic(true),
		NoEvents: "No events",
	}

	return s
}

// blockStyle picks the style of the n-th block of a day column.
func (s *Styles) blockStyle(n int, past bool) lipgloss.Style {
	alt := n%2 == 1
	switch {
	case past && alt:
		return s.PastEventAltStyle
	case past:
		return s.PastEventStyle
	case alt:
		return s.EventAltStyle
	default:
		return s.EventStyle
	}
}
