package calendar

import (
	"testing"
)

func TestGeometryEventHeight(t *testing.T) {
	w := DefaultWindow()
	g := DefaultGeometry()

	tests := []struct {
		name  string
		event Event
		want  int
	}{
		{name: "one hour", event: newEvent("1", 10, 0, 11, 0), want: 40},
		{name: "first half hour", event: newEvent("1", 10, 0, 10, 30), want: 15},
		{name: "second half hour", event: newEvent("1", 10, 30, 11, 0), want: 15},
		{name: "half start to hour", event: newEvent("1", 10, 30, 12, 0), want: 65},
		{name: "half to half", event: newEvent("1", 10, 30, 11, 30), want: 40},
		{name: "hour to half", event: newEvent("1", 10, 0, 11, 30), want: 65},
		{name: "overflows window end", event: newEvent("1", 12, 0, 15, 0), want: 90},
		{name: "half start overflows", event: newEvent("1", 12, 30, 15, 0), want: 65},
		{name: "starts before window", event: newEvent("1", 7, 0, 10, 0), want: 40},
		{name: "half start before window", event: newEvent("1", 7, 30, 10, 30), want: 65},
		{name: "ends on first label", event: newEvent("1", 8, 0, 9, 0), want: 15},
		{name: "ends on first label half", event: newEvent("1", 7, 0, 9, 30), want: 15},
		{name: "spans window", event: newEvent("1", 6, 0, 16, 0), want: 240},
		{name: "starts at window end", event: newEvent("1", 13, 0, 14, 0), want: 0},
		{name: "degenerate", event: newEvent("1", 10, 0, 10, 0), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.EventHeight(w, tt.event); got != tt.want {
				t.Errorf("EventHeight = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeometryEventTop(t *testing.T) {
	w := DefaultWindow()
	g := DefaultGeometry()

	tests := []struct {
		name  string
		event Event
		want  int
	}{
		{name: "on the hour", event: newEvent("1", 10, 0, 11, 0), want: 100},
		{name: "half hour start", event: newEvent("1", 10, 30, 11, 0), want: 125},
		{name: "first label", event: newEvent("1", 9, 0, 10, 0), want: 50},
		{name: "at window start pinned", event: newEvent("1", 8, 0, 9, 0), want: 50},
		{name: "before window pinned", event: newEvent("1", 7, 0, 10, 0), want: 50},
		{name: "half hour before window pinned", event: newEvent("1", 7, 30, 10, 0), want: 50},
		{name: "last row", event: newEvent("1", 12, 30, 15, 0), want: 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.EventTop(w, tt.event); got != tt.want {
				t.Errorf("EventTop = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGeometry_Scaled(t *testing.T) {
	w := DefaultWindow()
	g := Geometry{RowHeight: 100}

	if got := g.EventHeight(w, newEvent("1", 10, 0, 11, 0)); got != 80 {
		t.Errorf("height = %d, want 80", got)
	}
	if got := g.EventHeight(w, newEvent("1", 10, 0, 10, 30)); got != 30 {
		t.Errorf("height = %d, want 30", got)
	}
	if got := g.EventTop(w, newEvent("1", 10, 30, 11, 0)); got != 250 {
		t.Errorf("top = %d, want 250", got)
	}
}

func TestGeometry_CellQueries(t *testing.T) {
	w := DefaultWindow()
	g := DefaultGeometry()
	day := dayOf(newEvent("1", 10, 0, 11, 0))

	if got := g.Height(w, day, 10); got != 40 {
		t.Errorf("Height(10) = %d, want 40", got)
	}
	if got := g.Top(w, day, 10); got != 100 {
		t.Errorf("Top(10) = %d, want 100", got)
	}
	if got := g.Height(w, day, 12); got != 0 {
		t.Errorf("Height(12) = %d, want 0", got)
	}
	if got := g.Top(w, day, 12); got != 0 {
		t.Errorf("Top(12) = %d, want 0", got)
	}
}

func TestGeometry_HeightNeverNegative(t *testing.T) {
	g := DefaultGeometry()
	for _, w := range []Window{DefaultWindow(), NewWindow(0, 5), NewWindow(19, 5), NewWindow(6, 1)} {
		for sh := 0; sh < HoursPerDay; sh++ {
			for eh := sh; eh < HoursPerDay; eh++ {
				for _, sm := range []int{0, 30} {
					for _, em := range []int{0, 30} {
						e := newEvent("e", sh, sm, eh, em)
						if h := g.EventHeight(w, e); h < 0 {
							t.Errorf("window %+v event %02d:%02d-%02d:%02d height %d", w, sh, sm, eh, em, h)
						}
					}
				}
			}
		}
	}
}
