package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/weekgrid/internal/summary"
	"github.com/javiermolinar/weekgrid/internal/tui/view"
)

// View renders the model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return view.Render(view.ViewState{})
	}

	footer := m.renderFooter()
	bodyH := max(m.height-1-lipgloss.Height(footer), 0)

	var body string
	if m.mode == ModeAgenda {
		body = m.renderAgenda(m.width, bodyH)
	} else {
		body = m.renderGrid(m.width, bodyH)
	}

	return view.Render(view.ViewState{
		Width:  m.width,
		Height: m.height,
		Title:  m.renderTitle(),
		Body:   body,
		Footer: footer,
	})
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render("weekgrid") + " " +
		m.styles.WeekTitleStyle.Render(view.WeekTitle(m.nav.Week()))

	w := m.nav.Window()
	info := m.mode.String()
	if m.mode == ModeWeek {
		info += " " + view.HourLabel(w.FirstLabel()) + "-" + view.HourLabel(w.LastLabel())
	}
	if stats := summary.SummarizeWeek(m.nav.Week(), w).Stats; stats.TotalEvents > 0 {
		info += " · " + summary.FormatDuration(stats.TotalMinutes)
	}
	if m.loading {
		info += " · loading"
	}
	return view.Line(m.width, m.styles.ModeStyle, title+"  "+m.styles.ModeStyle.Render(info))
}

func (m Model) renderFooter() string {
	statusStyle := m.styles.StatusStyle
	if m.statusErr {
		statusStyle = m.styles.ErrorStyle
	}

	var promptLine string
	if m.prompting {
		promptLine = view.Line(m.width, m.styles.PromptStyle, m.prompt.View())
	}

	helpText := m.help.View(m.keys)
	footerH := 1 + strings.Count(helpText, "\n") + 1
	if promptLine != "" {
		footerH++
	}

	return view.RenderFooter(view.FooterViewState{
		InnerW:      m.width,
		FooterH:     footerH,
		PromptLine:  promptLine,
		StatusText:  m.statusMsg,
		HelpText:    helpText,
		StatusStyle: statusStyle,
		HelpStyle:   m.styles.HelpStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
	})
}
