package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Schedule Tests
// =============================================================================

func TestSortScheduleStable(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: 1, Start: 1300, End: 1400},
		{ID: 2, Start: 800, End: 900},
		{ID: 3, Start: 1300, End: 1500},
		{ID: 4, Start: 900, End: 1000},
	}
	SortSchedule(entries)

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, ids)
}

func TestCurrentFocus(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: 1, Start: 800, End: 900},
		{ID: 2, Start: 900, End: 1200},
	}

	tests := []struct {
		name  string
		now   int
		index int
		found bool
	}{
		{"inside_second", 930, 1, true},
		{"before_first", 759, -1, false},
		{"start_is_inclusive", 800, 0, true},
		{"end_is_exclusive", 900, 1, true},
		{"after_last", 1200, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := CurrentFocus(entries, tt.now)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.index, idx)
		})
	}
}

func TestCurrentFocusEmpty(t *testing.T) {
	_, ok := CurrentFocus(nil, 1000)
	assert.False(t, ok)
}

func TestCurrentFocusOverlapFirstWins(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: 1, Start: 900, End: 1100},
		{ID: 2, Start: 1000, End: 1200},
	}
	idx, ok := CurrentFocus(entries, 1030)
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestValidHHMM(t *testing.T) {
	assert.True(t, ValidHHMM(0))
	assert.True(t, ValidHHMM(2359))
	assert.True(t, ValidHHMM(930))
	assert.False(t, ValidHHMM(-1))
	assert.False(t, ValidHHMM(2400))
	assert.False(t, ValidHHMM(975))
}

func TestFormatHHMM(t *testing.T) {
	assert.Equal(t, "08:00", FormatHHMM(800))
	assert.Equal(t, "00:05", FormatHHMM(5))
	assert.Equal(t, "23:59", FormatHHMM(2359))
	assert.Equal(t, "08:00 - 09:30", ScheduleEntry{Start: 800, End: 930}.Span())
}

func TestHHMMOf(t *testing.T) {
	ts := time.Date(2025, 1, 2, 9, 30, 15, 0, time.Local)
	assert.Equal(t, 930, HHMMOf(ts))
}

func TestDefaultScheduleIsSortedAndValid(t *testing.T) {
	entries := DefaultSchedule()
	require.Len(t, entries, 7)
	for i, e := range entries {
		assert.Less(t, e.Start, e.End)
		if i > 0 {
			assert.LessOrEqual(t, entries[i-1].Start, e.Start)
		}
	}
}

// =============================================================================
// Task Tests
// =============================================================================

func TestOrderTasks(t *testing.T) {
	tasks := []Task{
		{ID: 1, Text: "a", Completed: true},
		{ID: 2, Text: "b"},
		{ID: 3, Text: "c", Completed: true},
		{ID: 4, Text: "d"},
	}
	OrderTasks(tasks)

	assert.Equal(t, int64(2), tasks[0].ID)
	assert.Equal(t, int64(4), tasks[1].ID)
	assert.Equal(t, int64(1), tasks[2].ID)
	assert.Equal(t, int64(3), tasks[3].ID)
	assert.Equal(t, 2, Pending(tasks))
}

// =============================================================================
// Habit Tests
// =============================================================================

func TestDateKeyFor(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	// 23:30 local on Jan 1 is already Jan 2 in UTC; the local date is used.
	ts := time.Date(2025, 1, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, DateKey("2025-01-01"), DateKeyFor(ts))
	assert.True(t, DateKeyFor(ts).Valid())
	assert.False(t, DateKey("yesterday").Valid())
}

func TestCompletedHabits(t *testing.T) {
	habits := DefaultHabits()
	assert.Equal(t, 0, CompletedHabits(habits))
	habits[1].Done = true
	assert.Equal(t, 1, CompletedHabits(habits))

	clone := CloneHabits(habits)
	clone[1].Done = false
	assert.True(t, habits[1].Done)
}

// =============================================================================
// IDSource Tests
// =============================================================================

func TestIDSourceMonotonic(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	src := NewIDSource(func() time.Time { return fixed })

	a := src.Next(0)
	b := src.Next(0)
	c := src.Next(0)
	assert.Equal(t, fixed.UnixMilli(), a)
	assert.Greater(t, b, a)
	assert.Greater(t, c, b)
}

func TestIDSourceRespectsFloor(t *testing.T) {
	src := NewIDSource(func() time.Time { return time.UnixMilli(10) })
	assert.Equal(t, int64(101), src.Next(100))
}

func TestMaxIDs(t *testing.T) {
	assert.Equal(t, int64(7), MaxScheduleID(DefaultSchedule()))
	assert.Equal(t, int64(0), MaxTaskID(nil))
	assert.Equal(t, int64(9), MaxTaskID([]Task{{ID: 3}, {ID: 9}, {ID: 1}}))
}

// =============================================================================
// Decode Tests
// =============================================================================

func TestDecodeSchedule(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		entries, err := DecodeSchedule(`[{"id":1,"start":800,"end":900,"description":"x"}]`)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, 800, entries[0].Start)
	})

	malformed := map[string]string{
		"not_json":        `{{`,
		"null":            `null`,
		"object":          `{"id":1}`,
		"missing_field":   `[{"id":1,"start":800,"description":"x"}]`,
		"string_time":     `[{"id":1,"start":"0800","end":900,"description":"x"}]`,
		"fractional_time": `[{"id":1,"start":800.5,"end":900,"description":"x"}]`,
		"out_of_range":    `[{"id":1,"start":800,"end":2500,"description":"x"}]`,
		"inverted":        `[{"id":1,"start":900,"end":800,"description":"x"}]`,
		"no_description":  `[{"id":1,"start":800,"end":900,"description":""}]`,
		"blank":           `[{"id":1,"start":800,"end":900,"description":"  "}]`,
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeSchedule(raw)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeTasks(t *testing.T) {
	tasks, err := DecodeTasks(`[{"id":5,"text":"buy milk","completed":true}]`)
	require.NoError(t, err)
	assert.Equal(t, []Task{{ID: 5, Text: "buy milk", Completed: true}}, tasks)

	malformed := map[string]string{
		"string_completed": `[{"id":5,"text":"buy milk","completed":"yes"}]`,
		"empty_text":       `[{"id":5,"text":"","completed":false}]`,
		"blank_text":       `[{"id":5,"text":" \t ","completed":false}]`,
	}
	for name, raw := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeTasks(raw)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestDecodeHabits(t *testing.T) {
	habits, err := DecodeHabits(`[{"id":"water","name":"Hydrate","done":true}]`)
	require.NoError(t, err)
	assert.True(t, habits[0].Done)

	_, err = DecodeHabits(`[{"id":"","name":"Hydrate","done":true}]`)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestEncodeIsStable(t *testing.T) {
	first, err := Encode(DefaultSchedule())
	require.NoError(t, err)

	decoded, err := DecodeSchedule(first)
	require.NoError(t, err)

	second, err := Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
