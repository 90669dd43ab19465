package calendar

import (
	"slices"
	"time"
)

// Navigator holds the mutable view state a renderer owns: the event list,
// the reference date and the visible hour window. Every change recomputes
// the week partition; layout queries stay pure functions of that state.
type Navigator struct {
	events        []Event
	current       time.Time
	weekStart     time.Weekday
	window        Window
	defaultWindow Window
	geometry      Geometry
	week          WeekView
	now           func() time.Time
}

// NavigatorOption configures a Navigator.
type NavigatorOption func(*Navigator)

// WithWeekStart sets the first day of the week.
func WithWeekStart(day time.Weekday) NavigatorOption {
	return func(n *Navigator) {
		n.weekStart = day
	}
}

// WithWindow sets the initial window, which also becomes the reset target.
func WithWindow(w Window) NavigatorOption {
	return func(n *Navigator) {
		n.window = w.Clamp()
		n.defaultWindow = n.window
	}
}

// WithGeometry sets the pixel geometry.
func WithGeometry(g Geometry) NavigatorOption {
	return func(n *Navigator) {
		n.geometry = g
	}
}

// WithClock sets the clock used by Today.
func WithClock(now func() time.Time) NavigatorOption {
	return func(n *Navigator) {
		n.now = now
	}
}

// NewNavigator creates a navigator positioned on the week containing current.
func NewNavigator(current time.Time, opts ...NavigatorOption) *Navigator {
	n := &Navigator{
		current:       current,
		weekStart:     time.Monday,
		window:        DefaultWindow(),
		defaultWindow: DefaultWindow(),
		geometry:      DefaultGeometry(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	n.generate()
	return n
}

func (n *Navigator) generate() {
	n.week = GenerateCalendar(n.events, n.current, n.weekStart)
}

// SetEvents replaces the event list and re-partitions the week.
func (n *Navigator) SetEvents(events []Event) {
	n.events = slices.Clone(events)
	n.generate()
}

// Events returns a copy of the full event list.
func (n *Navigator) Events() []Event {
	return slices.Clone(n.events)
}

// CurrentDate returns the reference date.
func (n *Navigator) CurrentDate() time.Time { return n.current }

// WeekStart returns the configured first day of the week.
func (n *Navigator) WeekStart() time.Weekday { return n.weekStart }

// Week returns the current week partition.
func (n *Navigator) Week() WeekView { return n.week }

// Days returns the seven day columns of the current week.
func (n *Navigator) Days() [DaysPerWeek]DayColumn { return n.week.Days }

// Window returns the visible hour window.
func (n *Navigator) Window() Window { return n.window }

// Geometry returns the pixel geometry.
func (n *Navigator) Geometry() Geometry { return n.geometry }

// Navigate shifts the reference date by direction weeks.
func (n *Navigator) Navigate(direction int) {
	n.current = n.current.AddDate(0, 0, 7*direction)
	n.generate()
}

// GoTo moves the reference date to date.
func (n *Navigator) GoTo(date time.Time) {
	n.current = date
	n.generate()
}

// Today moves the reference date to the current day.
func (n *Navigator) Today() {
	n.GoTo(n.now())
}

// NavigateHours shifts the visible window by direction hours, clamped.
func (n *Navigator) NavigateHours(direction int) {
	n.window = n.window.NavigateHours(direction)
}

// SetWindow replaces the visible window, clamped.
func (n *Navigator) SetWindow(w Window) {
	n.window = w.Clamp()
}

// ResetWindow restores the initial window.
func (n *Navigator) ResetWindow() {
	n.window = n.defaultWindow
}

// Layout computes the cell layout of the current week and window.
func (n *Navigator) Layout() Layout {
	return BuildLayout(n.week, n.window, n.geometry)
}
