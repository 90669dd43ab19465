// Package view provides view composition helpers for the TUI.
package view

// ViewState contains the pre-rendered sections of a frame.
type ViewState struct {
	Width            int
	Height           int
	Title            string
	Body             string
	Footer           string
	EmptyPlaceholder string
}

// Render composes the final view output.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder != "" {
			return state.EmptyPlaceholder
		}
		return "Loading..."
	}

	s := state.Title + "\n" + state.Body
	if state.Footer != "" {
		s += "\n" + state.Footer
	}
	return s
}
