package calendar

// Pixel corrections tuned for a 50px hour row. Geometry rescales them for
// other row heights.
const (
	referenceRowHeight = 50
	sliverHeight       = 15 // half row minus the gap
	halfRow            = 25
	blockGap           = 10 // keeps adjacent blocks from touching
	overflowExtension  = 40 // last label row drawn full, minus the gap
	halfStartTrim      = 35 // half row plus the gap
)

// DefaultRowHeight is the pixel height of one hour row.
const DefaultRowHeight = referenceRowHeight

// Geometry converts event times into block sizes on a fixed-height grid.
type Geometry struct {
	RowHeight int
}

// DefaultGeometry returns a 50px-per-hour geometry.
func DefaultGeometry() Geometry {
	return Geometry{RowHeight: DefaultRowHeight}
}

func (g Geometry) scale(px int) int {
	if g.RowHeight <= 0 || g.RowHeight == referenceRowHeight {
		return px
	}
	return px * g.RowHeight / referenceRowHeight
}

// Height returns the block height of the canonical occupant of the cell, or
// 0 when the cell has no occupant.
func (g Geometry) Height(w Window, day DayColumn, hour float64) int {
	e, ok := w.EventAtTime(day, hour)
	if !ok {
		return 0
	}
	return g.EventHeight(w, e)
}

// Top returns the top offset of the canonical occupant of the cell, or 0
// when the cell has no occupant.
func (g Geometry) Top(w Window, day DayColumn, hour float64) int {
	e, ok := w.EventAtTime(day, hour)
	if !ok {
		return 0
	}
	return g.EventTop(w, e)
}

// EventHeight returns the height of the part of e that falls inside the
// window. Degenerate events have zero height.
func (g Geometry) EventHeight(w Window, e Event) int {
	if e.Degenerate() {
		return 0
	}

	startHour, startMinute := e.StartHour(), e.StartMinute()
	endHour, endMinute := e.EndHour(), e.EndMinute()

	switch {
	case startHour == w.MaxHour():
		return 0
	case endHour == w.FirstLabel():
		return g.scale(sliverHeight)
	case startMinute != 0 && endMinute == 0 && startHour+1 == endHour:
		return g.scale(sliverHeight)
	}

	visibleStart := max(startHour, w.FirstLabel())
	visibleEnd := min(endHour, w.MaxHour())
	px := (visibleEnd - visibleStart) * referenceRowHeight

	// A half-hour start only shows when the start row is visible.
	halfStart := startMinute != 0 && startHour >= w.FirstLabel()

	switch {
	case endHour > w.MaxHour():
		px += overflowExtension
		if halfStart {
			px -= halfRow
		}
	case endMinute != 0 && halfStart:
		px -= blockGap
	case endMinute != 0:
		px += halfRow - blockGap
	case halfStart:
		px -= halfStartTrim
	default:
		px -= blockGap
	}

	if px < 0 {
		return 0
	}
	return g.scale(px)
}

// EventTop returns the offset of e from the top of the grid. Events that
// start at or before the window start are pinned to the first row.
func (g Geometry) EventTop(w Window, e Event) int {
	offset := (e.StartHour() - w.MinHour()) * referenceRowHeight
	if offset <= 0 {
		return g.scale(referenceRowHeight)
	}
	if e.StartMinute() != 0 {
		offset += halfRow
	}
	return g.scale(offset)
}
