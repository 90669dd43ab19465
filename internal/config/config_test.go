package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Grid.HourStart != 8 {
		t.Errorf("expected hour_start 8, got %d", cfg.Grid.HourStart)
	}
	if cfg.Grid.HourCount != 5 {
		t.Errorf("expected hour_count 5, got %d", cfg.Grid.HourCount)
	}
	if cfg.Grid.RowHeight != 50 {
		t.Errorf("expected row_height 50, got %d", cfg.Grid.RowHeight)
	}
	if cfg.Grid.WeekStart != "monday" {
		t.Errorf("expected week_start monday, got %s", cfg.Grid.WeekStart)
	}
	if cfg.Source.Kind != SourceJSON {
		t.Errorf("expected source json, got %s", cfg.Source.Kind)
	}
	if cfg.UI.Theme != "frappe" {
		t.Errorf("expected theme frappe, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Grid.HourStart != 8 {
		t.Errorf("expected default hour_start, got %d", cfg.Grid.HourStart)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
hour_start = 9
hour_count = 8
lines_per_hour = 3
week_start = "sunday"

[source]
kind = "schedule"
api_url = "https://api.example.com"
username = "ada"
schedule_key = "k-123"
timezone = "Europe/Madrid"

[refresh]
cron = "0 * * * *"

[ui]
theme = "latte"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Grid.HourStart != 9 || cfg.Grid.HourCount != 8 {
		t.Errorf("expected window 9/8, got %d/%d", cfg.Grid.HourStart, cfg.Grid.HourCount)
	}
	if cfg.Grid.LinesPerHour != 3 {
		t.Errorf("expected lines_per_hour 3, got %d", cfg.Grid.LinesPerHour)
	}
	// Unset keys keep their defaults.
	if cfg.Grid.RowHeight != 50 {
		t.Errorf("expected default row_height, got %d", cfg.Grid.RowHeight)
	}
	if cfg.Grid.WeekStartDay() != time.Sunday {
		t.Errorf("expected sunday, got %v", cfg.Grid.WeekStartDay())
	}
	if cfg.Source.Kind != SourceSchedule || cfg.Source.Username != "ada" || cfg.Source.ScheduleKey != "k-123" {
		t.Errorf("unexpected source %+v", cfg.Source)
	}
	if cfg.Refresh.Cron != "0 * * * *" {
		t.Errorf("expected cron 0 * * * *, got %q", cfg.Refresh.Cron)
	}
	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[grid\nhour_start = "), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[grid]
hour_start = 6
hour_count = 6

[source]
kind = "api"
api_url = "https://file.example.com"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("WEEKGRID_HOUR_START", "10")
	t.Setenv("WEEKGRID_API_URL", "https://env.example.com")
	t.Setenv("WEEKGRID_TOKEN", "secret")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Env should override file
	if cfg.Grid.HourStart != 10 {
		t.Errorf("expected hour_start 10 from env, got %d", cfg.Grid.HourStart)
	}
	if cfg.Source.APIURL != "https://env.example.com" {
		t.Errorf("expected api_url from env, got %s", cfg.Source.APIURL)
	}
	// File value should be kept when no env override
	if cfg.Grid.HourCount != 6 {
		t.Errorf("expected hour_count 6 from file, got %d", cfg.Grid.HourCount)
	}
	// Env should override default
	if cfg.Source.Token != "secret" {
		t.Errorf("expected token from env, got %q", cfg.Source.Token)
	}
}

func TestLoadFrom_EnvInvalidInt(t *testing.T) {
	t.Setenv("WEEKGRID_HOUR_COUNT", "five")

	if _, err := LoadFrom("/nonexistent/path/config.toml"); err == nil {
		t.Error("expected error for non-numeric WEEKGRID_HOUR_COUNT")
	}
}

func TestLoadFrom_EnvDisablesRefresh(t *testing.T) {
	t.Setenv("WEEKGRID_REFRESH_CRON", "")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Refresh.Cron != "" {
		t.Errorf("expected refresh disabled, got %q", cfg.Refresh.Cron)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "hour count zero", mutate: func(c *Config) { c.Grid.HourCount = 0 }, wantErr: true},
		{name: "hour count too large", mutate: func(c *Config) { c.Grid.HourCount = 25 }, wantErr: true},
		{name: "hour start negative", mutate: func(c *Config) { c.Grid.HourStart = -1 }, wantErr: true},
		{name: "window past midnight", mutate: func(c *Config) { c.Grid.HourStart = 20 }, wantErr: true},
		{name: "last valid start", mutate: func(c *Config) { c.Grid.HourStart = 19 }},
		{name: "row height zero", mutate: func(c *Config) { c.Grid.RowHeight = 0 }, wantErr: true},
		{name: "lines per hour zero", mutate: func(c *Config) { c.Grid.LinesPerHour = 0 }, wantErr: true},
		{name: "week start tuesday", mutate: func(c *Config) { c.Grid.WeekStart = "tuesday" }, wantErr: true},
		{name: "week start case insensitive", mutate: func(c *Config) { c.Grid.WeekStart = "Sunday" }},
		{name: "unknown source", mutate: func(c *Config) { c.Source.Kind = "carrier-pigeon" }, wantErr: true},
		{name: "api without url", mutate: func(c *Config) { c.Source.Kind = SourceAPI; c.Source.APIURL = "" }, wantErr: true},
		{name: "schedule without key", mutate: func(c *Config) { c.Source.Kind = SourceSchedule; c.Source.Username = "ada" }, wantErr: true},
		{name: "ics without path", mutate: func(c *Config) { c.Source.Kind = SourceICS; c.Source.Path = "" }, wantErr: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Source.Timezone = "Mars/Olympus" }, wantErr: true},
		{name: "bad cron", mutate: func(c *Config) { c.Refresh.Cron = "every minute" }, wantErr: true},
		{name: "refresh disabled", mutate: func(c *Config) { c.Refresh.Cron = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGridConfig_Window(t *testing.T) {
	g := Default().Grid
	g.HourStart = 10
	g.HourCount = 4

	w := g.Window()
	if w.Start != 10 || w.Count != 4 {
		t.Errorf("unexpected window %+v", w)
	}
	if g.Geometry().RowHeight != 50 {
		t.Errorf("unexpected geometry %+v", g.Geometry())
	}
}

func TestSourceConfig_Location(t *testing.T) {
	s := SourceConfig{}
	loc, err := s.Location()
	if err != nil || loc != time.Local {
		t.Errorf("expected local location, got %v (%v)", loc, err)
	}

	s.Timezone = "UTC"
	loc, err = s.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("expected UTC, got %v (%v)", loc, err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input string
		want  string
	}{
		{"~/events.json", filepath.Join(home, "events.json")},
		{"/absolute/events.ics", "/absolute/events.ics"},
		{"relative/events.json", "relative/events.json"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got := expandPath(tc.input)
			if got != tc.want {
				t.Errorf("expandPath(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := Default()
	cfg.Grid.HourStart = 7
	cfg.Grid.WeekStart = "sunday"
	cfg.Source.Kind = SourceICS
	cfg.Source.Path = "/tmp/cal.ics"

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Grid.HourStart != 7 {
		t.Errorf("expected hour_start 7, got %d", loaded.Grid.HourStart)
	}
	if loaded.Grid.WeekStart != "sunday" {
		t.Errorf("expected week_start sunday, got %s", loaded.Grid.WeekStart)
	}
	if loaded.Source.Kind != SourceICS || loaded.Source.Path != "/tmp/cal.ics" {
		t.Errorf("unexpected source %+v", loaded.Source)
	}
}
