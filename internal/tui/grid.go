package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

// gridCell is one terminal line of one day column.
type gridCell struct {
	text  string
	style lipgloss.Style
}

// block is an event block placed on terminal lines.
type block struct {
	event calendar.Event
	first int // first line
	lines int
}

// pxToLines converts grid pixels to terminal lines, rounding to nearest.
func pxToLines(px, rowHeight, linesPerHour int) int {
	if rowHeight <= 0 {
		return 0
	}
	return (px*linesPerHour + rowHeight/2) / rowHeight
}

// dayBlocks places the canonical occupant of every visible row. Each event
// is placed once even when it is the occupant of several rows.
func dayBlocks(day calendar.DayColumn, w calendar.Window, g calendar.Geometry, linesPerHour int) []block {
	var blocks []block
	seen := make(map[string]bool)
	for _, h := range w.Labels() {
		e, ok := w.EventAtTime(day, float64(h))
		if !ok {
			continue
		}
		key := e.ID + "@" + e.Start.Format(time.RFC3339)
		if seen[key] {
			continue
		}
		seen[key] = true

		height := g.EventHeight(w, e)
		if height <= 0 {
			continue
		}
		blocks = append(blocks, block{
			event: e,
			first: pxToLines(g.EventTop(w, e)-g.RowHeight, g.RowHeight, linesPerHour),
			lines: max(pxToLines(height, g.RowHeight, linesPerHour), 1),
		})
	}
	return blocks
}

// dayCells renders one day column as terminal lines: occupied rows are
// highlighted and event blocks are painted over them.
func (m Model) dayCells(day calendar.DayColumn, colWidth int) []gridCell {
	w := m.nav.Window()
	g := m.nav.Geometry()
	lph := m.cfg.Grid.LinesPerHour
	now := m.now()

	cells := make([]gridCell, w.Count*lph)
	for i := range cells {
		cells[i] = gridCell{style: m.styles.EmptyCellStyle}
	}

	for row, h := range w.Labels() {
		if !w.HasEventAtTime(day, float64(h)) {
			continue
		}
		for i := row * lph; i < (row+1)*lph; i++ {
			cells[i].style = m.styles.OccupiedCellStyle
		}
	}

	for n, b := range dayBlocks(day, w, g, lph) {
		style := m.styles.blockStyle(n, b.event.End.Before(now))
		for i := 0; i < b.lines; i++ {
			line := b.first + i
			if line < 0 || line >= len(cells) {
				continue
			}
			cells[line].style = style
			switch i {
			case 0:
				cells[line].text = b.event.Name
			case 1:
				cells[line].text = blockTimeRange(b.event)
			default:
				cells[line].text = ""
			}
		}
	}

	for i := range cells {
		cells[i].text = fitCell(cells[i].text, colWidth)
	}
	return cells
}

// blockTimeRange formats the start and end of e on a 24-hour clock.
func blockTimeRange(e calendar.Event) string {
	return fmt.Sprintf("%s-%s", e.Start.Format("15:04"), e.End.Format("15:04"))
}

// fitCell truncates or pads s to exactly width cells so backgrounds fill.
func fitCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// columnWidth is the width of a day column for a given inner width: the
// table border takes 2, 8 columns take 9 separators, the gutter the rest.
func columnWidth(innerW int) int {
	return max((innerW-2-(calendar.DaysPerWeek+2)-gutterWidth)/calendar.DaysPerWeek, 1)
}

// gridContent builds the rows and cell styles of the week grid.
func (m Model) gridContent(colWidth int) view.TableContent {
	w := m.nav.Window()
	lph := m.cfg.Grid.LinesPerHour
	days := m.nav.Days()

	columns := make([][]gridCell, len(days))
	for i, day := range days {
		columns[i] = m.dayCells(day, colWidth)
	}

	lines := w.Count * lph
	content := view.TableContent{
		Rows:       make([][]string, lines),
		CellStyles: make([][]lipgloss.Style, lines),
	}
	labels := w.Labels()
	for line := 0; line < lines; line++ {
		gutter := ""
		if line%lph == 0 {
			gutter = view.HourLabel(labels[line/lph])
		}
		row := []string{gutter}
		styles := []lipgloss.Style{m.styles.TimeColumnStyle}
		for _, col := range columns {
			row = append(row, col[line].text)
			styles = append(styles, col[line].style)
		}
		content.Rows[line] = row
		content.CellStyles[line] = styles
	}
	return content
}

// renderGrid renders the week grid into a box of the given size.
func (m Model) renderGrid(innerW, gridH int) string {
	colWidth := columnWidth(innerW)
	labels, todayCols := view.HeaderLabels(m.nav.Days(), m.now())

	headerStyles := make([]lipgloss.Style, len(labels))
	headerStyles[0] = m.styles.HeaderStyle
	for i := 1; i < len(labels); i++ {
		headerStyles[i] = m.styles.DayHeaderStyle
		if todayCols[i] {
			headerStyles[i] = m.styles.DayHeaderTodayStyle
		}
	}

	return view.RenderTable(view.TableViewState{
		InnerW:       innerW,
		GridH:        gridH,
		Headers:      labels,
		HeaderStyles: headerStyles,
		Content:      m.gridContent(colWidth),
		BorderStyle:  m.styles.BorderStyle,
		VAlign:       lipgloss.Top,
		Bg:           m.styles.colorBg,
	})
}
