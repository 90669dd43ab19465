package view

import "github.com/charmbracelet/lipgloss"

// FooterViewState holds the content and styles of the footer section.
type FooterViewState struct {
	InnerW      int
	FooterH     int
	PromptLine  string // rendered prompt, empty when inactive
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooter renders the prompt, status and help lines.
func RenderFooter(state FooterViewState) string {
	if state.FooterH <= 0 {
		return ""
	}

	var s string
	if state.PromptLine != "" {
		s += state.PromptLine + "\n"
	}
	s += Line(state.InnerW, state.StatusStyle, state.StatusText) + "\n"
	s += state.HelpText

	return PlaceBox(state.InnerW, state.FooterH, state.VAlign, s, state.Bg)
}
