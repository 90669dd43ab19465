package calendar

// Cell is the rendered state of one (day, hour label) grid cell.
type Cell struct {
	Hour      int    `json:"hour" yaml:"hour"`
	Occupied  bool   `json:"occupied" yaml:"occupied"`
	EventID   string `json:"eventId,omitempty" yaml:"eventId,omitempty"`
	EventName string `json:"eventName,omitempty" yaml:"eventName,omitempty"`
	Height    int    `json:"height" yaml:"height"`
	Top       int    `json:"top" yaml:"top"`
}

// DayLayout holds the cells of one day column.
type DayLayout struct {
	Date  string `json:"date" yaml:"date"`
	Cells []Cell `json:"cells" yaml:"cells"`
}

// Layout is the full grid for one week and window.
type Layout struct {
	WeekStart string      `json:"weekStart" yaml:"weekStart"`
	HourStart int         `json:"hourStart" yaml:"hourStart"`
	HourCount int         `json:"hourCount" yaml:"hourCount"`
	RowHeight int         `json:"rowHeight" yaml:"rowHeight"`
	Days      []DayLayout `json:"days" yaml:"days"`
}

// BuildLayout asks the three cell questions for every visible row of every
// day: is it occupied, by which event, and with what geometry.
func BuildLayout(week WeekView, w Window, g Geometry) Layout {
	layout := Layout{
		WeekStart: week.StartDate().Format("2006-01-02"),
		HourStart: w.Start,
		HourCount: w.Count,
		RowHeight: g.RowHeight,
		Days:      make([]DayLayout, 0, DaysPerWeek),
	}

	for _, day := range week.Days {
		dl := DayLayout{Date: day.Date.Format("2006-01-02")}
		for _, h := range w.Labels() {
			hour := float64(h)
			cell := Cell{Hour: h, Occupied: w.HasEventAtTime(day, hour)}
			if e, ok := w.EventAtTime(day, hour); ok {
				cell.EventID = e.ID
				cell.EventName = e.Name
				cell.Height = g.EventHeight(w, e)
				cell.Top = g.EventTop(w, e)
			}
			dl.Cells = append(dl.Cells, cell)
		}
		layout.Days = append(layout.Days, dl)
	}

	return layout
}
