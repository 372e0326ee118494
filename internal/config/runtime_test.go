package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultRuntimeConfig(t *testing.T) {
	cfg := DefaultRuntimeConfig()

	if cfg.APOD.URL != DefaultAPODURL {
		t.Errorf("expected APOD.URL = %s, got %s", DefaultAPODURL, cfg.APOD.URL)
	}
	if cfg.APOD.Timeout != 15*time.Second {
		t.Errorf("expected APOD.Timeout = 15s, got %v", cfg.APOD.Timeout)
	}
	if cfg.Countdown.Month != 3 || cfg.Countdown.Day != 10 {
		t.Errorf("expected countdown to March 10, got %d-%d", cfg.Countdown.Month, cfg.Countdown.Day)
	}
	if cfg.Dashboard.FocusInterval != time.Minute {
		t.Errorf("expected Dashboard.FocusInterval = 1m, got %v", cfg.Dashboard.FocusInterval)
	}
	if len(cfg.Habits) != 3 {
		t.Errorf("expected 3 default habits, got %d", len(cfg.Habits))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APOD.APIKey != "DEMO_KEY" {
		t.Errorf("expected DEMO_KEY, got %s", cfg.APOD.APIKey)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[apod]
api_key = "abc123"
timeout = "5s"

[countdown]
label = "Finals"
month = 12
day = 15

[[habits]]
id = "read"
name = "Read 20 pages"

[[habits]]
id = "walk"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APOD.APIKey != "abc123" {
		t.Errorf("expected api key abc123, got %s", cfg.APOD.APIKey)
	}
	if cfg.APOD.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.APOD.Timeout)
	}
	if cfg.APOD.URL != DefaultAPODURL {
		t.Errorf("unset values should keep defaults, got %s", cfg.APOD.URL)
	}
	if cfg.Countdown.Label != "Finals" || cfg.Countdown.Month != 12 || cfg.Countdown.Day != 15 {
		t.Errorf("unexpected countdown %+v", cfg.Countdown)
	}

	habits := cfg.HabitRecords()
	if len(habits) != 2 {
		t.Fatalf("expected 2 habits, got %d", len(habits))
	}
	if habits[1].Name != "walk" {
		t.Errorf("nameless habit should fall back to its id, got %q", habits[1].Name)
	}
}

func TestLoadFileWithoutHabitsKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[apod]\ndisabled = true\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.APOD.Disabled {
		t.Error("expected apod to be disabled")
	}
	if len(cfg.Habits) != 3 {
		t.Errorf("expected default habits, got %d", len(cfg.Habits))
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load(writeConfig(t, "this is = = not toml")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STARDECK_DATABASE", ":memory:")
	t.Setenv("STARDECK_APOD_API_KEY", "envkey")
	t.Setenv("STARDECK_HTTP_TIMEOUT", "2s")
	t.Setenv("STARDECK_COUNTDOWN", "07-04")
	t.Setenv("STARDECK_OFFLINE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.InMemory() {
		t.Error("expected in-memory storage")
	}
	if cfg.APOD.APIKey != "envkey" {
		t.Errorf("expected envkey, got %s", cfg.APOD.APIKey)
	}
	if cfg.APOD.Timeout != 2*time.Second {
		t.Errorf("expected 2s, got %v", cfg.APOD.Timeout)
	}
	if cfg.Countdown.Month != 7 || cfg.Countdown.Day != 4 {
		t.Errorf("expected July 4, got %d-%d", cfg.Countdown.Month, cfg.Countdown.Day)
	}
	if !cfg.APOD.Disabled {
		t.Error("expected offline mode")
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("STARDECK_HTTP_TIMEOUT", "soon")
	t.Setenv("STARDECK_COUNTDOWN", "march")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APOD.Timeout != 15*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.APOD.Timeout)
	}
	if cfg.Countdown.Month != 3 {
		t.Errorf("expected default month, got %d", cfg.Countdown.Month)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RuntimeConfig)
	}{
		{"bad_url", func(c *RuntimeConfig) { c.APOD.URL = "ftp://x" }},
		{"zero_timeout", func(c *RuntimeConfig) { c.APOD.Timeout = 0 }},
		{"bad_month", func(c *RuntimeConfig) { c.Countdown.Month = 13 }},
		{"bad_day", func(c *RuntimeConfig) { c.Countdown.Month, c.Countdown.Day = 4, 31 }},
		{"zero_interval", func(c *RuntimeConfig) { c.Dashboard.ClockInterval = 0 }},
		{"no_habits", func(c *RuntimeConfig) { c.Habits = nil }},
		{"empty_habit_id", func(c *RuntimeConfig) { c.Habits[0].ID = "" }},
		{"duplicate_habit", func(c *RuntimeConfig) { c.Habits[1].ID = c.Habits[0].ID }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRuntimeConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	leap := DefaultRuntimeConfig()
	leap.Countdown.Month, leap.Countdown.Day = 2, 29
	if err := leap.Validate(); err != nil {
		t.Errorf("February 29 should be accepted: %v", err)
	}
}

func TestDefaultPath(t *testing.T) {
	if filepath.Base(DefaultPath()) != "config.toml" {
		t.Errorf("unexpected default path %s", DefaultPath())
	}
}
