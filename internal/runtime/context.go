// Package runtime provides application runtime context for Stardeck.
package runtime

import (
	"context"
	"time"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/config"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/output"
	"github.com/manav03panchal/stardeck/internal/storage"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// Context holds the application runtime context.
type Context struct {
	Config    *config.RuntimeConfig
	DB        *storage.DB
	Formatter *output.Formatter

	// Stores
	Schedule *storage.ScheduleStore
	Tasks    *storage.TaskList
	Habits   *storage.HabitTracker
	Notes    *storage.NotesPad

	Dispatcher *action.Dispatcher
	APOD       *apod.Client

	// Debug mode
	Debug bool

	now func() time.Time
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	DBPath     string
	InMemory   bool
	Format     output.Format
	ColorMode  output.ColorMode
	Debug      bool
	// Now overrides the wall clock, for tests.
	Now func() time.Time
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		ConfigPath: config.DefaultPath(),
		Format:     output.FormatCLI,
		ColorMode:  output.ColorAuto,
	}
}

// New creates a new runtime context. The database location is taken from
// opts, then the config file and STARDECK_DATABASE, then the XDG default.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	dbOpts := storage.Options{Path: opts.DBPath, InMemory: opts.InMemory}
	if !dbOpts.InMemory && dbOpts.Path == "" {
		if cfg.InMemory() {
			dbOpts.InMemory = true
		} else if cfg.Storage.Path != "" {
			dbOpts.Path = cfg.Storage.Path
		} else {
			dbOpts.Path = storage.DefaultPath()
		}
	}

	db, err := storage.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	// One id source keeps schedule and task ids monotonic across both stores.
	ids := model.NewIDSource(now)
	stores := action.Stores{
		Schedule: storage.NewScheduleStore(db, ids),
		Tasks:    storage.NewTaskList(db, ids),
		Habits:   storage.NewHabitTracker(db, cfg.HabitRecords(), now),
		Notes:    storage.NewNotesPad(db),
	}

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	if formatter.Format == "" {
		formatter.Format = output.FormatCLI
	}
	formatter.ColorMode = opts.ColorMode
	if formatter.ColorMode == "" {
		formatter.ColorMode = output.ColorAuto
	}

	return &Context{
		Config:     cfg,
		DB:         db,
		Formatter:  formatter,
		Schedule:   stores.Schedule,
		Tasks:      stores.Tasks,
		Habits:     stores.Habits,
		Notes:      stores.Notes,
		Dispatcher: action.New(stores, now),
		APOD: apod.NewClient(apod.Options{
			URL:     cfg.APOD.URL,
			APIKey:  cfg.APOD.APIKey,
			Timeout: cfg.APOD.Timeout,
		}),
		Debug: opts.Debug,
		now:   now,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// Now returns the current time from the context clock.
func (c *Context) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// Countdown returns the configured goal countdown.
func (c *Context) Countdown() timer.Countdown {
	return timer.Countdown{
		Label:   c.Config.Countdown.Label,
		Month:   time.Month(c.Config.Countdown.Month),
		Day:     c.Config.Countdown.Day,
		Arrived: c.Config.Countdown.Arrived,
	}
}

// FetchPicture fetches the picture of the day and maps it to display
// state. Failures and a disabled fetch both yield the offline panel.
func (c *Context) FetchPicture(ctx context.Context) apod.Display {
	if c.Config.APOD.Disabled {
		return apod.Offline()
	}
	ctx, cancel := context.WithTimeout(ctx, c.Config.APOD.Timeout)
	defer cancel()
	return apod.Panel(c.APOD.Fetch(ctx))
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}

// IsCLI returns true if output format is CLI or plain.
func (c *Context) IsCLI() bool {
	return !c.IsJSON()
}

// Debugf prints debug output if debug mode is enabled.
func (c *Context) Debugf(format string, args ...interface{}) {
	if c.Debug {
		c.Formatter.Printf("[DEBUG] "+format+"\n", args...)
	}
}
