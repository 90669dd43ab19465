package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/config"
	"github.com/javiermolinar/weekgrid/internal/source"
	"github.com/javiermolinar/weekgrid/internal/tui/commands"
	"github.com/javiermolinar/weekgrid/internal/tui/theme"
)

// Mode is the layout the week is rendered in.
type Mode int

const (
	ModeWeek   Mode = iota // hour grid, one column per day
	ModeAgenda             // day-by-day list for narrow terminals
)

func (m Mode) String() string {
	if m == ModeAgenda {
		return "agenda"
	}
	return "week"
}

func (m Mode) toggle() Mode {
	if m == ModeAgenda {
		return ModeWeek
	}
	return ModeAgenda
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	cfg   *config.Config
	src   source.Source
	share commands.ShareKeys

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// View state owned by the calendar engine
	nav *calendar.Navigator

	// State
	mode         Mode
	modeForced   bool // set once the user toggles; disables width-based switching
	prompting    bool
	loading      bool
	agendaOffset int

	// Components
	keys   keyMap
	help   help.Model
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message
	statusErr  bool

	now       func() time.Time
	clipboard func(string) error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock sets the clock used for "today" and past-event shading.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.clipboard = write
	}
}

// WithShareKeys enables share links backed by keys.
func WithShareKeys(keys commands.ShareKeys) ModelOption {
	return func(m *Model) {
		m.share = keys
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, src source.Source, opts ...ModelOption) (Model, error) {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		return Model{}, err
	}

	prompt := textinput.New()
	prompt.Prompt = "go to: "
	prompt.Placeholder = "today, tomorrow, friday, 2025-01-15"
	prompt.CharLimit = 32

	m := Model{
		cfg:       cfg,
		src:       src,
		theme:     t,
		styles:    NewStyles(t),
		keys:      defaultKeyMap(),
		help:      help.New(),
		prompt:    prompt,
		loading:   true, // Init starts the first load
		now:       time.Now,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.nav = calendar.NewNavigator(m.now(),
		calendar.WithWeekStart(cfg.Grid.WeekStartDay()),
		calendar.WithWindow(cfg.Grid.Window()),
		calendar.WithGeometry(cfg.Grid.Geometry()),
		calendar.WithClock(m.now),
	)
	m.help.Styles.ShortKey = m.styles.HelpStyle.Bold(true)
	m.help.Styles.ShortDesc = m.styles.HelpStyle
	m.help.Styles.FullKey = m.styles.HelpStyle.Bold(true)
	m.help.Styles.FullDesc = m.styles.HelpStyle

	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadEvents(m.src)
}

// Navigator exposes the calendar state.
func (m Model) Navigator() *calendar.Navigator {
	return m.nav
}

// Mode returns the current layout mode.
func (m Model) Mode() Mode {
	return m.mode
}

// Status returns the current status line.
func (m Model) Status() string {
	return m.statusMsg
}

// autoMode picks the layout for the terminal width unless the user chose one.
func (m *Model) autoMode() {
	if m.modeForced {
		return
	}
	want := ModeWeek
	if m.cfg.Grid.CompactWidth > 0 && m.width < m.cfg.Grid.CompactWidth {
		want = ModeAgenda
	}
	if want != m.mode {
		LogModeChange(m.mode, want, "resize")
		m.mode = want
	}
}

func (m *Model) setStatus(msg string, isErr bool, ttl time.Duration) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = m.now().Add(ttl)
}
