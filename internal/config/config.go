// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"github.com/javiermolinar/weekgrid/internal/calendar"
	"github.com/javiermolinar/weekgrid/internal/dateutil"
)

// Source kinds.
const (
	SourceAPI      = "api"
	SourceSchedule = "schedule"
	SourceICS      = "ics"
	SourceJSON     = "json"
)

// Config holds the application configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Source  SourceConfig  `toml:"source"`
	Refresh RefreshConfig `toml:"refresh"`
	UI      UIConfig      `toml:"ui"`
}

// GridConfig holds the week grid layout settings.
type GridConfig struct {
	HourStart    int    `toml:"hour_start"`     // first hour of the visible window, 0-23
	HourCount    int    `toml:"hour_count"`     // visible hours, 1-24
	RowHeight    int    `toml:"row_height"`     // pixels per hour row
	LinesPerHour int    `toml:"lines_per_hour"` // terminal lines per hour row
	WeekStart    string `toml:"week_start"`     // "monday" or "sunday"
	CompactWidth int    `toml:"compact_width"`  // below this width the TUI uses agenda mode
}

// SourceConfig holds event source settings.
type SourceConfig struct {
	Kind        string `toml:"kind"`    // "api", "schedule", "ics", "json"
	APIURL      string `toml:"api_url"` // e.g., "https://api.example.com"
	AppURL      string `toml:"app_url"` // base of share links
	Token       string `toml:"token"`
	Username    string `toml:"username"`
	ScheduleKey string `toml:"schedule_key"`
	Path        string `toml:"path"`     // ics or json file
	Timezone    string `toml:"timezone"` // IANA name, empty for local
}

// RefreshConfig holds the periodic reload schedule.
type RefreshConfig struct {
	Cron string `toml:"cron"` // standard 5-field spec, empty disables
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte"
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			HourStart:    calendar.DefaultHourStart,
			HourCount:    calendar.DefaultHourCount,
			RowHeight:    calendar.DefaultRowHeight,
			LinesPerHour: 2,
			WeekStart:    "monday",
			CompactWidth: 80,
		},
		Source: SourceConfig{
			Kind:   SourceJSON,
			APIURL: "http://localhost:8080",
			AppURL: "http://localhost:3000",
			Path:   defaultEventsPath(),
		},
		Refresh: RefreshConfig{
			Cron: "*/5 * * * *",
		},
		UI: UIConfig{
			Theme: "frappe",
		},
	}
}

// defaultEventsPath returns the default events file path.
func defaultEventsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "events.json"
	}
	return filepath.Join(home, ".local", "share", "weekgrid", "events.json")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "weekgrid", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Source.Path = expandPath(cfg.Source.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	// Grid overrides
	ints := []struct {
		name string
		dst  *int
	}{
		{"WEEKGRID_HOUR_START", &cfg.Grid.HourStart},
		{"WEEKGRID_HOUR_COUNT", &cfg.Grid.HourCount},
		{"WEEKGRID_LINES_PER_HOUR", &cfg.Grid.LinesPerHour},
	}
	for _, o := range ints {
		v := os.Getenv(o.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", o.name, err)
		}
		*o.dst = n
	}
	if v := os.Getenv("WEEKGRID_WEEK_START"); v != "" {
		cfg.Grid.WeekStart = v
	}

	// Source overrides
	if v := os.Getenv("WEEKGRID_SOURCE"); v != "" {
		cfg.Source.Kind = v
	}
	if v := os.Getenv("WEEKGRID_API_URL"); v != "" {
		cfg.Source.APIURL = v
	}
	if v := os.Getenv("WEEKGRID_APP_URL"); v != "" {
		cfg.Source.AppURL = v
	}
	if v := os.Getenv("WEEKGRID_TOKEN"); v != "" {
		cfg.Source.Token = v
	}
	if v := os.Getenv("WEEKGRID_USERNAME"); v != "" {
		cfg.Source.Username = v
	}
	if v := os.Getenv("WEEKGRID_SCHEDULE_KEY"); v != "" {
		cfg.Source.ScheduleKey = v
	}
	if v := os.Getenv("WEEKGRID_SOURCE_PATH"); v != "" {
		cfg.Source.Path = v
	}
	if v := os.Getenv("WEEKGRID_TIMEZONE"); v != "" {
		cfg.Source.Timezone = v
	}

	// Refresh and UI overrides
	if v, ok := os.LookupEnv("WEEKGRID_REFRESH_CRON"); ok {
		cfg.Refresh.Cron = v
	}
	if v := os.Getenv("WEEKGRID_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	g := c.Grid
	if g.HourCount < 1 || g.HourCount > calendar.HoursPerDay {
		return fmt.Errorf("hour_count must be between 1 and %d, got %d", calendar.HoursPerDay, g.HourCount)
	}
	if g.HourStart < 0 || g.HourStart > calendar.HoursPerDay-g.HourCount {
		return fmt.Errorf("hour_start must be between 0 and %d, got %d", calendar.HoursPerDay-g.HourCount, g.HourStart)
	}
	if g.RowHeight <= 0 {
		return errors.New("row_height must be positive")
	}
	if g.LinesPerHour < 1 {
		return errors.New("lines_per_hour must be at least 1")
	}
	if g.CompactWidth < 0 {
		return errors.New("compact_width must not be negative")
	}
	switch strings.ToLower(g.WeekStart) {
	case "monday", "sunday":
	default:
		return fmt.Errorf("week_start must be monday or sunday, got %q", g.WeekStart)
	}

	if err := c.Source.validate(); err != nil {
		return err
	}

	if c.Refresh.Cron != "" {
		if _, err := cron.ParseStandard(c.Refresh.Cron); err != nil {
			return fmt.Errorf("invalid refresh cron %q: %w", c.Refresh.Cron, err)
		}
	}

	return nil
}

func (s SourceConfig) validate() error {
	switch s.Kind {
	case SourceAPI:
		if s.APIURL == "" {
			return errors.New("api_url must be set for the api source")
		}
	case SourceSchedule:
		if s.APIURL == "" {
			return errors.New("api_url must be set for the schedule source")
		}
		if s.Username == "" || s.ScheduleKey == "" {
			return errors.New("username and schedule_key must be set for the schedule source")
		}
	case SourceICS, SourceJSON:
		if s.Path == "" {
			return fmt.Errorf("path must be set for the %s source", s.Kind)
		}
	default:
		return fmt.Errorf("invalid source kind: %q", s.Kind)
	}

	if _, err := s.Location(); err != nil {
		return err
	}
	return nil
}

// Window returns the configured visible hour window.
func (g GridConfig) Window() calendar.Window {
	return calendar.NewWindow(g.HourStart, g.HourCount)
}

// Geometry returns the configured pixel geometry.
func (g GridConfig) Geometry() calendar.Geometry {
	return calendar.Geometry{RowHeight: g.RowHeight}
}

// WeekStartDay returns the configured first day of the week, Monday when unset.
func (g GridConfig) WeekStartDay() time.Weekday {
	day, err := dateutil.ParseWeekday(g.WeekStart)
	if err != nil {
		return time.Monday
	}
	return day
}

// Location returns the display location events are converted to.
func (s SourceConfig) Location() (*time.Location, error) {
	if s.Timezone == "" || strings.EqualFold(s.Timezone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
