// Package config provides centralized configuration for Stardeck.
// Values come from built-in defaults, an optional TOML file and STARDECK_*
// environment variables, in that order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/validate"
)

// DefaultAPODURL is the NASA astronomy picture-of-the-day endpoint.
const DefaultAPODURL = "https://api.nasa.gov/planetary/apod"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	Storage   StorageConfig   `toml:"storage"`
	APOD      APODConfig      `toml:"apod"`
	Countdown CountdownConfig `toml:"countdown"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Habits    []HabitConfig   `toml:"habits"`
}

// StorageConfig holds storage-related configuration.
type StorageConfig struct {
	// Path is the database directory. Empty uses the XDG data directory;
	// ":memory:" keeps everything in memory.
	Path string `toml:"path"`
}

// APODConfig configures the picture-of-the-day fetch.
type APODConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
	// Timeout bounds the single request. Default: 15s
	Timeout time.Duration `toml:"timeout"`
	// Disabled skips the fetch and shows the offline panel.
	Disabled bool `toml:"disabled"`
}

// CountdownConfig configures the goal countdown.
type CountdownConfig struct {
	Label   string `toml:"label"`
	Month   int    `toml:"month"`
	Day     int    `toml:"day"`
	Arrived string `toml:"arrived"`
}

// DashboardConfig holds dashboard refresh intervals.
type DashboardConfig struct {
	// ClockInterval is how often the clock and countdown redraw. Default: 1s
	ClockInterval time.Duration `toml:"clock_interval"`
	// FocusInterval is how often the current schedule entry is rechecked. Default: 1m
	FocusInterval time.Duration `toml:"focus_interval"`
	// NotesDebounce is the idle time before notes are saved. Default: 1s
	NotesDebounce time.Duration `toml:"notes_debounce"`
}

// HabitConfig declares one tracked habit.
type HabitConfig struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	cfg := &RuntimeConfig{
		APOD: APODConfig{
			URL:     DefaultAPODURL,
			APIKey:  "DEMO_KEY",
			Timeout: 15 * time.Second,
		},
		Countdown: CountdownConfig{
			Label:   "Spring Break",
			Month:   3,
			Day:     10,
			Arrived: "SPRING BREAK IS HERE!",
		},
		Dashboard: DashboardConfig{
			ClockInterval: time.Second,
			FocusInterval: time.Minute,
			NotesDebounce: time.Second,
		},
	}
	for _, h := range model.DefaultHabits() {
		cfg.Habits = append(cfg.Habits, HabitConfig{ID: h.ID, Name: h.Name})
	}
	return cfg
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "stardeck", "config.toml")
}

// Load builds the configuration from defaults, the TOML file at path (if it
// exists) and the environment. An empty path uses DefaultPath.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile overlays values from a TOML file. A file that declares habits
// replaces the default habit set.
func (c *RuntimeConfig) loadFile(path string) error {
	defaults := c.Habits
	c.Habits = nil
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		c.Habits = defaults
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if !md.IsDefined("habits") {
		c.Habits = defaults
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	if v := os.Getenv("STARDECK_DATABASE"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("STARDECK_APOD_URL"); v != "" {
		c.APOD.URL = v
	}
	if v := os.Getenv("STARDECK_APOD_API_KEY"); v != "" {
		c.APOD.APIKey = v
	}
	if v := os.Getenv("STARDECK_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.APOD.Timeout = d
		}
	}
	if v := os.Getenv("STARDECK_OFFLINE"); v == "1" || strings.EqualFold(v, "true") {
		c.APOD.Disabled = true
	}
	if v := os.Getenv("STARDECK_COUNTDOWN"); v != "" {
		if t, err := time.Parse("01-02", v); err == nil {
			c.Countdown.Month = int(t.Month())
			c.Countdown.Day = t.Day()
		}
	}
	if v := os.Getenv("STARDECK_COUNTDOWN_LABEL"); v != "" {
		c.Countdown.Label = v
	}
}

// Validate checks the configuration for values the dashboard cannot use.
func (c *RuntimeConfig) Validate() error {
	if err := validate.Endpoint(c.APOD.URL); err != nil {
		return fmt.Errorf("apod.url: %w", err)
	}
	if c.APOD.Timeout <= 0 {
		return fmt.Errorf("apod.timeout must be positive")
	}
	if c.Countdown.Month < 1 || c.Countdown.Month > 12 {
		return fmt.Errorf("countdown.month must be 1-12, got %d", c.Countdown.Month)
	}
	// February 29 is allowed; years without it roll to March 1.
	probe := time.Date(2024, time.Month(c.Countdown.Month), c.Countdown.Day, 0, 0, 0, 0, time.UTC)
	if c.Countdown.Day < 1 || probe.Day() != c.Countdown.Day {
		return fmt.Errorf("countdown.day %d is not a day of month %d", c.Countdown.Day, c.Countdown.Month)
	}
	if c.Dashboard.ClockInterval <= 0 || c.Dashboard.FocusInterval <= 0 || c.Dashboard.NotesDebounce <= 0 {
		return fmt.Errorf("dashboard intervals must be positive")
	}
	if len(c.Habits) == 0 {
		return fmt.Errorf("at least one habit must be configured")
	}
	seen := make(map[string]bool, len(c.Habits))
	for _, h := range c.Habits {
		if h.ID == "" {
			return fmt.Errorf("habit %q has an empty id", h.Name)
		}
		if seen[h.ID] {
			return fmt.Errorf("duplicate habit id %q", h.ID)
		}
		seen[h.ID] = true
	}
	return nil
}

// HabitRecords converts the configured habits to fresh records.
func (c *RuntimeConfig) HabitRecords() []model.HabitRecord {
	out := make([]model.HabitRecord, 0, len(c.Habits))
	for _, h := range c.Habits {
		name := h.Name
		if name == "" {
			name = h.ID
		}
		out = append(out, model.HabitRecord{ID: h.ID, Name: name})
	}
	return out
}

// InMemory reports whether storage is configured to stay in memory.
func (c *RuntimeConfig) InMemory() bool {
	return c.Storage.Path == ":memory:"
}
