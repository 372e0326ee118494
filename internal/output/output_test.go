package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/timer"
)

func newCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewCLIFormatter(&Formatter{Writer: &buf, Format: FormatCLI, ColorMode: ColorNever}), &buf
}

func newJSON() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewJSONFormatter(&Formatter{Writer: &buf, Format: FormatJSON}), &buf
}

var goal = timer.Countdown{
	Label:   "Spring Break",
	Month:   time.March,
	Day:     10,
	Arrived: "SPRING BREAK IS HERE!",
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatPlain, ParseFormat("plain"))
	assert.Equal(t, FormatCLI, ParseFormat("cli"))
	assert.Equal(t, FormatCLI, ParseFormat("yaml"))
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("plain_overrides_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways, Format: FormatPlain}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{Writer: &buf, ColorMode: ColorAuto}
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidth(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	assert.Equal(t, DefaultWidth, f.Width())
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("hello")
	f.Println(" world")
	f.Printf("%d", 42)
	assert.Equal(t, "hello world\n42", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	require.NoError(t, f.JSON(map[string]string{"key": "value"}))
	assert.Contains(t, buf.String(), `"key": "value"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 10))
	assert.Equal(t, "hell…", Truncate("hello world", 5))
	assert.Equal(t, "…", Truncate("hello", 1))
	assert.Equal(t, "hello", Truncate("hello", 0))
	assert.Equal(t, "ñañ…", Truncate("ñañañaña", 4))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░", ProgressBar(0, 4))
	assert.Equal(t, "██░░", ProgressBar(50, 4))
	assert.Equal(t, "████", ProgressBar(150, 4))
	assert.Equal(t, "░░░░", ProgressBar(-5, 4))
}

// =============================================================================
// CLI Tests
// =============================================================================

func TestCLIPrintSchedule(t *testing.T) {
	c, buf := newCLI()
	entries := model.DefaultSchedule()

	c.PrintSchedule(entries, 1)

	out := buf.String()
	assert.Contains(t, out, "Planetary Focus")
	assert.Contains(t, out, "TIME")
	assert.Contains(t, out, "08:00 - 09:00")
	assert.Contains(t, out, "▶  09:00 - 12:00")
	assert.Equal(t, 1, strings.Count(out, "▶"))
}

func TestCLIPrintScheduleEmpty(t *testing.T) {
	c, buf := newCLI()
	c.PrintSchedule(nil, -1)
	assert.Contains(t, buf.String(), "No schedule entries")
}

func TestCLIPrintFocus(t *testing.T) {
	c, buf := newCLI()
	c.PrintFocus(model.ScheduleEntry{Start: 900, End: 1030, Description: "Deep work"}, true)
	c.PrintFocus(model.ScheduleEntry{}, false)

	assert.Contains(t, buf.String(), "Now: 09:00 - 10:30  Deep work")
	assert.Contains(t, buf.String(), "Nothing scheduled right now.")
}

func TestCLIPrintTasks(t *testing.T) {
	c, buf := newCLI()
	c.PrintTasks([]model.Task{
		{ID: 2, Text: "Email Bob"},
		{ID: 1, Text: "Write report", Completed: true},
	})

	out := buf.String()
	assert.Contains(t, out, "(1 pending)")
	assert.Contains(t, out, "[ ] Email Bob #2")
	assert.Contains(t, out, "[x] Write report #1")
}

func TestCLIPrintHabits(t *testing.T) {
	c, buf := newCLI()
	habits := model.DefaultHabits()
	habits[0].Done = true

	c.PrintHabits(habits, "2025-01-02")

	out := buf.String()
	assert.Contains(t, out, "2025-01-02")
	assert.Contains(t, out, "● Hydrate (Fuel Check)")
	assert.Contains(t, out, "○ Launch Study Module")
	assert.Contains(t, out, "1/3")
}

func TestCLIPrintNotes(t *testing.T) {
	c, buf := newCLI()
	c.PrintNotes("line one\nline two")
	assert.Contains(t, buf.String(), "  line one\n  line two\n")

	c, buf = newCLI()
	c.PrintNotes("  ")
	assert.Contains(t, buf.String(), "(empty)")
}

func TestCLIPrintPicture(t *testing.T) {
	c, buf := newCLI()
	c.PrintPicture(apod.Panel(&apod.Picture{
		Title:       "Moon",
		MediaType:   apod.MediaVideo,
		URL:         "https://youtube.example/v",
		Explanation: "A moon.",
	}, nil))

	out := buf.String()
	assert.Contains(t, out, "Moon")
	assert.Contains(t, out, apod.VideoPlaceholder)
	assert.Contains(t, out, "Video: https://youtube.example/v")

	c, buf = newCLI()
	c.PrintPicture(apod.Offline())
	assert.Contains(t, buf.String(), "⚠ Cosmic Data Unavailable")
}

func TestCLIPrintStatus(t *testing.T) {
	c, buf := newCLI()
	now := time.Date(2025, 3, 9, 9, 30, 0, 0, time.UTC)
	snap := action.Snapshot{
		Today:    "2025-03-09",
		Schedule: model.DefaultSchedule(),
		Focus:    1,
		Tasks:    []model.Task{{ID: 1, Text: "a"}},
		Habits:   model.DefaultHabits(),
	}

	c.PrintStatus(snap, goal.Start(now), now)

	out := buf.String()
	assert.Contains(t, out, "09:30:00")
	assert.Contains(t, out, "Sunday, March 9, 2025")
	assert.Contains(t, out, "Now: 09:00 - 12:00")
	assert.Contains(t, out, "Tasks: 1 pending of 1")
	assert.Contains(t, out, "Habits: 0/3 done")
	assert.Contains(t, out, "Spring Break: 0d 14h 30m 0s")
}

func TestCLIPrintCountdown(t *testing.T) {
	c, buf := newCLI()
	now := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	c.PrintCountdown(goal.Start(now), now)
	assert.Contains(t, buf.String(), "1d 0h 0m 0s")
}

// =============================================================================
// JSON Tests
// =============================================================================

func TestJSONPrintSchedule(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintSchedule(model.DefaultSchedule(), 0))

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 7, resp.Total)
	assert.True(t, resp.Entries[0].Current)
	assert.False(t, resp.Entries[1].Current)
	assert.Equal(t, "08:00 - 09:00", resp.Entries[0].Span)
}

func TestJSONPrintTasksEmpty(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintTasks(nil))
	assert.Contains(t, buf.String(), `"tasks": []`)
}

func TestJSONPrintPicture(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintPicture(apod.Offline()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "offline", raw["state"])
	assert.Equal(t, apod.OfflineTitle, raw["title"])
}

func TestJSONPrintStatus(t *testing.T) {
	j, buf := newJSON()
	now := time.Date(2025, 1, 2, 7, 0, 0, 0, time.UTC)
	snap := action.Snapshot{Today: "2025-01-02", Schedule: model.DefaultSchedule(), Focus: -1}

	require.NoError(t, j.PrintStatus(snap, goal.Start(now), now))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Nil(t, resp.Focus)
	assert.Equal(t, "07:00:00", resp.Time)
	assert.Equal(t, "Spring Break", resp.Countdown.Label)
	assert.False(t, resp.Countdown.Reached)
}

func TestJSONPrintError(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintError("error", "invalid id", "", "Use 'stardeck task' to see ids."))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "invalid id", resp.Error)
	assert.Empty(t, resp.Message)
}
