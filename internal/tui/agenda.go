package tui

import (
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

// agendaLines lists the current week in ascending order.
func (m Model) agendaLines() []string {
	return view.AgendaLines(m.nav.Days(), m.now(), m.styles.Agenda)
}

// renderAgenda renders the agenda list into a box of the given size.
func (m Model) renderAgenda(innerW, bodyH int) string {
	return view.RenderAgenda(m.agendaLines(), m.agendaOffset, innerW, bodyH, m.styles.colorBg)
}
