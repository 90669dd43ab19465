package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/javiermolinar/weekgrid/internal/calendar"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 1, day, hour, minute, 0, 0, time.UTC)
}

func TestColWidthFor(t *testing.T) {
	tests := []struct{ width, want int }{
		{width: 80, want: 10},
		{width: 20, want: minColWidth},
		{width: 400, want: maxColWidth},
	}
	for _, tt := range tests {
		if got := colWidthFor(tt.width); got != tt.want {
			t.Errorf("colWidthFor(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPadCell(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "abc", width: 6, want: "abc   "},
		{in: "abcdefgh", width: 6, want: "abcd… "},
	}
	for _, tt := range tests {
		if got := padCell(tt.in, tt.width); got != tt.want {
			t.Errorf("padCell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestPrintWeekText(t *testing.T) {
	noColor(t)
	nav := calendar.NewNavigator(at(15, 0, 0))
	nav.SetEvents([]calendar.Event{
		{ID: "long", Name: "Workshop", Start: at(15, 9, 0), End: at(15, 12, 0)},
	})

	var buf bytes.Buffer
	PrintWeekText(&buf, nav, at(15, 8, 0), 80)
	lines := strings.Split(buf.String(), "\n")

	row := func(label string) string {
		for _, l := range lines {
			if strings.HasPrefix(l, label) {
				return l
			}
		}
		t.Fatalf("row %s missing:\n%s", label, buf.String())
		return ""
	}

	// Wednesday is the third column: gutter 7 + 2 columns of 10.
	cell := func(l string) string {
		if len([]rune(l)) < 37 {
			return strings.TrimSpace(string([]rune(l)[min(27, len([]rune(l))):]))
		}
		return strings.TrimSpace(string([]rune(l)[27:37]))
	}

	if got := cell(row("09:00")); got != "Workshop" {
		t.Errorf("09:00 cell = %q, want name", got)
	}
	if got := cell(row("10:00")); got != markContinuation {
		t.Errorf("10:00 cell = %q, want continuation", got)
	}
	if got := cell(row("13:00")); got != "" {
		t.Errorf("13:00 cell = %q, want empty", got)
	}
}

func TestWriteLayout(t *testing.T) {
	nav := calendar.NewNavigator(at(15, 0, 0))

	var buf bytes.Buffer
	if err := WriteLayout(&buf, nav.Layout(), FormatJSON); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"weekStart": "2025-01-13"`) {
		t.Errorf("unexpected json %s", buf.String())
	}

	if err := WriteLayout(&buf, nav.Layout(), "csv"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestPrintDiscrepancies(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	PrintDiscrepancies(&buf, nil)
	if !strings.Contains(buf.String(), "No discrepancies") {
		t.Errorf("unexpected output %q", buf.String())
	}

	buf.Reset()
	w := calendar.DefaultWindow()
	PrintDiscrepancies(&buf, calendar.Audit(w, w.Labels()))
	if !strings.Contains(buf.String(), "occupant-not-occupied: ") {
		t.Errorf("expected summary line, got %q", buf.String())
	}
}
