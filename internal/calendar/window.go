package calendar

// Grid defaults.
const (
	HoursPerDay      = 24
	DefaultHourStart = 8
	DefaultHourCount = 5
)

// Window is the contiguous range of hours currently rendered:
// [Start, Start+Count). Rows are labelled Start+1 through Start+Count.
type Window struct {
	Start int
	Count int
}

// DefaultWindow returns the 08:00 five-hour window.
func DefaultWindow() Window {
	return Window{Start: DefaultHourStart, Count: DefaultHourCount}
}

// NewWindow returns a window clamped to the valid range.
func NewWindow(start, count int) Window {
	return Window{Start: start, Count: count}.Clamp()
}

// Clamp forces Count into [1, 24] and Start into [0, 24-Count].
func (w Window) Clamp() Window {
	w.Count = min(max(w.Count, 1), HoursPerDay)
	w.Start = min(max(w.Start, 0), w.MaxStart())
	return w
}

// MaxStart returns the largest valid Start for this Count.
func (w Window) MaxStart() int {
	return HoursPerDay - w.Count
}

// NavigateHours shifts the window by direction hours, clamped.
func (w Window) NavigateHours(direction int) Window {
	w.Start += direction
	return w.Clamp()
}

// MinHour is the first hour of the window.
func (w Window) MinHour() int { return w.Start }

// MaxHour is the exclusive end of the window.
func (w Window) MaxHour() int { return w.Start + w.Count }

// FirstLabel is the first row label shown by the grid.
func (w Window) FirstLabel() int { return w.Start + 1 }

// LastLabel is the last row label shown by the grid.
func (w Window) LastLabel() int { return w.Start + w.Count }

// Labels returns the row labels of the grid, top to bottom.
func (w Window) Labels() []int {
	labels := make([]int, 0, w.Count)
	for h := w.FirstLabel(); h <= w.LastLabel(); h++ {
		labels = append(labels, h)
	}
	return labels
}
