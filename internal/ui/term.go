package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Events: bold cyan
	colorEvent = color.New(color.FgCyan, color.Bold)

	// Occupied rows without a block of their own
	colorOccupied = color.New(color.FgCyan, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Today's column: yellow to make it pop
	colorToday = color.New(color.FgYellow, color.Bold)

	// Warnings and discrepancies
	colorWarning = color.New(color.FgRed)

	// Success: green
	colorStats = color.New(color.FgGreen)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatEvent(s string) string {
	return colorEvent.Sprint(s)
}

func formatOccupied(s string) string {
	return colorOccupied.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}

func formatWarning(s string) string {
	return colorWarning.Sprint(s)
}

func formatStats(s string) string {
	return colorStats.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
