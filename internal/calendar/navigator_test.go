package calendar

import (
	"testing"
	"time"
)

func TestNavigator_Navigate(t *testing.T) {
	n := NewNavigator(testDate)

	n.Navigate(1)
	if got := n.Week().StartDate(); !got.Equal(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected next week to start Jan 20, got %v", got)
	}

	n.Navigate(-1)
	if !n.CurrentDate().Equal(testDate) {
		t.Errorf("expected round trip to %v, got %v", testDate, n.CurrentDate())
	}

	n.Navigate(-2)
	if got := n.Week().StartDate(); !got.Equal(time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected week of Dec 30, got %v", got)
	}
}

func TestNavigator_SetEvents(t *testing.T) {
	n := NewNavigator(testDate)
	events := []Event{newEvent("1", 10, 0, 11, 0)}
	n.SetEvents(events)

	if n.Week().EventCount() != 1 {
		t.Fatalf("expected 1 event in week, got %d", n.Week().EventCount())
	}

	// The navigator keeps its own copy.
	events[0].ID = "changed"
	if n.Events()[0].ID != "1" {
		t.Error("navigator events aliased caller slice")
	}

	n.Navigate(1)
	if n.Week().EventCount() != 0 {
		t.Errorf("expected empty next week, got %d", n.Week().EventCount())
	}
}

func TestNavigator_Hours(t *testing.T) {
	n := NewNavigator(testDate, WithWindow(NewWindow(10, 4)))

	n.NavigateHours(1)
	if n.Window().Start != 11 {
		t.Errorf("expected start 11, got %d", n.Window().Start)
	}
	n.NavigateHours(-1)
	if n.Window().Start != 10 {
		t.Errorf("expected start 10, got %d", n.Window().Start)
	}

	n.NavigateHours(50)
	if n.Window().Start != 20 {
		t.Errorf("expected clamp at 20, got %d", n.Window().Start)
	}

	n.ResetWindow()
	if n.Window() != NewWindow(10, 4) {
		t.Errorf("expected reset to initial window, got %+v", n.Window())
	}
}

func TestNavigator_WeekStart(t *testing.T) {
	n := NewNavigator(testDate, WithWeekStart(time.Sunday))
	if n.WeekStart() != time.Sunday {
		t.Fatalf("expected sunday, got %v", n.WeekStart())
	}
	if got := n.Week().StartDate().Weekday(); got != time.Sunday {
		t.Errorf("expected week to start sunday, got %v", got)
	}
}

func TestNavigator_GoTo(t *testing.T) {
	n := NewNavigator(testDate)
	target := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	n.GoTo(target)

	if got := n.Week().StartDate(); !got.Equal(time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected week of Mar 3, got %v", got)
	}
}

func TestNavigator_Today(t *testing.T) {
	now := time.Date(2025, 2, 12, 15, 0, 0, 0, time.UTC)
	n := NewNavigator(testDate, WithClock(func() time.Time { return now }))

	n.Today()
	if !n.CurrentDate().Equal(now) {
		t.Errorf("expected %v, got %v", now, n.CurrentDate())
	}
	if got := n.Days()[0].Date; !got.Equal(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected first day Feb 10, got %v", got)
	}
}
