package action

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/storage"
)

type testEnv struct {
	kv  *storage.MemStore
	now time.Time
	d   *Dispatcher
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		kv:  storage.NewMemStore(),
		now: time.Date(2025, 1, 2, 9, 30, 0, 0, time.Local),
	}
	clock := func() time.Time { return env.now }
	ids := model.NewIDSource(clock)
	env.d = New(Stores{
		Schedule: storage.NewScheduleStore(env.kv, ids),
		Tasks:    storage.NewTaskList(env.kv, ids),
		Habits:   storage.NewHabitTracker(env.kv, nil, clock),
		Notes:    storage.NewNotesPad(env.kv),
	}, clock)
	return env
}

func (e *testEnv) raw(key string) string {
	v, _, _ := e.kv.Get(key)
	return v
}

// =============================================================================
// Snapshot
// =============================================================================

func TestRefreshSeedsAndFocuses(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(Refresh, nil)
	require.NoError(t, err)

	assert.Equal(t, model.DateKey("2025-01-02"), snap.Today)
	assert.Len(t, snap.Schedule, 7)
	assert.Len(t, snap.Habits, 3)
	assert.Empty(t, snap.Tasks)
	assert.Equal(t, "", snap.Notes)

	entry, ok := snap.FocusEntry()
	require.True(t, ok)
	assert.Equal(t, 900, entry.Start)
	assert.Equal(t, 1200, entry.End)
}

func TestSnapshotNoFocus(t *testing.T) {
	env := setup(t)
	env.now = time.Date(2025, 1, 2, 7, 59, 0, 0, time.Local)

	snap, err := env.d.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, -1, snap.Focus)
	_, ok := snap.FocusEntry()
	assert.False(t, ok)
}

// =============================================================================
// Schedule actions
// =============================================================================

func TestScheduleAdd(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(ScheduleAdd, Args{ArgStart: "0700", ArgEnd: "7:45", ArgDescription: "Run"})
	require.NoError(t, err)

	require.Len(t, snap.Schedule, 8)
	assert.Equal(t, "Run", snap.Schedule[0].Description)
	assert.Equal(t, 745, snap.Schedule[0].End)
	assert.Equal(t, snap.Schedule[0].ID, snap.Added)
}

func TestScheduleAddRejected(t *testing.T) {
	tests := []struct {
		name string
		args Args
		want error
	}{
		{"missing_start", Args{ArgEnd: "1000", ArgDescription: "x"}, errors.ErrMissingArgument},
		{"garbage_end", Args{ArgStart: "0900", ArgEnd: "soonish later xyz", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"missing_description", Args{ArgStart: "0900", ArgEnd: "1000"}, errors.ErrMissingArgument},
		{"blank_description", Args{ArgStart: "0900", ArgEnd: "1000", ArgDescription: "  "}, errors.ErrEmptyDescription},
		{"start_after_end", Args{ArgStart: "1100", ArgEnd: "1000", ArgDescription: "x"}, errors.ErrInvalidTimeRange},
		{"out_of_range", Args{ArgStart: "0900", ArgEnd: "2400", ArgDescription: "x"}, errors.ErrTimeOutOfRange},
		{"decimal_start", Args{ArgStart: "9.5", ArgEnd: "1000", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"long_number_start", Args{ArgStart: "12345", ArgEnd: "1000", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"weekday_start", Args{ArgStart: "monday", ArgEnd: "1000", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"relative_day_start", Args{ArgStart: "tomorrow", ArgEnd: "1000", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"date_end", Args{ArgStart: "0900", ArgEnd: "2025-03-04", ArgDescription: "x"}, errors.ErrInvalidTime},
		{"duration_end", Args{ArgStart: "0900", ArgEnd: "1 hour", ArgDescription: "x"}, errors.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setup(t)
			_, err := env.d.Dispatch(Refresh, nil)
			require.NoError(t, err)
			before := env.raw(model.KeySchedule)

			_, err = env.d.Dispatch(ScheduleAdd, tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errors.IsUserError(err))
			assert.Equal(t, before, env.raw(model.KeySchedule))
		})
	}
}

func TestScheduleDelete(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(ScheduleDelete, Args{ArgID: "1"})
	require.NoError(t, err)
	assert.Len(t, snap.Schedule, 6)

	// unknown id is a no-op
	snap, err = env.d.Dispatch(ScheduleDelete, Args{ArgID: "999"})
	require.NoError(t, err)
	assert.Len(t, snap.Schedule, 6)

	_, err = env.d.Dispatch(ScheduleDelete, Args{ArgID: "abc"})
	assert.ErrorIs(t, err, errors.ErrInvalidID)
}

// =============================================================================
// Task actions
// =============================================================================

func TestTaskLifecycle(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(TaskAdd, Args{ArgText: "Write report"})
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 1)
	first := snap.Added

	env.now = env.now.Add(time.Second)
	snap, err = env.d.Dispatch(TaskAdd, Args{ArgText: "Email Bob"})
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 2)
	assert.Greater(t, snap.Added, first)

	snap, err = env.d.Dispatch(TaskToggle, Args{ArgID: strconv.FormatInt(first, 10)})
	require.NoError(t, err)
	assert.Equal(t, "Email Bob", snap.Tasks[0].Text)
	assert.True(t, snap.Tasks[1].Completed)

	snap, err = env.d.Dispatch(TaskClear, nil)
	require.NoError(t, err)
	require.Len(t, snap.Tasks, 1)
	assert.Equal(t, "Email Bob", snap.Tasks[0].Text)

	snap, err = env.d.Dispatch(TaskDelete, Args{ArgID: strconv.FormatInt(snap.Tasks[0].ID, 10)})
	require.NoError(t, err)
	assert.Empty(t, snap.Tasks)
}

func TestTaskAddRejected(t *testing.T) {
	env := setup(t)

	_, err := env.d.Dispatch(TaskAdd, Args{ArgText: "   "})
	assert.ErrorIs(t, err, errors.ErrEmptyTask)
	assert.Equal(t, "", env.raw(model.KeyTasks))

	_, err = env.d.Dispatch(TaskToggle, Args{})
	assert.ErrorIs(t, err, errors.ErrMissingArgument)
}

// =============================================================================
// Habit and notes actions
// =============================================================================

func TestHabitToggle(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(HabitToggle, Args{ArgID: "water"})
	require.NoError(t, err)
	assert.True(t, snap.Habits[0].Done)
	assert.Equal(t, "2025-01-02", env.raw(model.KeyHabitLastReset))

	// next day the toggle applies after the reset
	env.now = env.now.AddDate(0, 0, 1)
	snap, err = env.d.Dispatch(HabitToggle, Args{ArgID: "study"})
	require.NoError(t, err)
	assert.False(t, snap.Habits[0].Done)
	assert.True(t, snap.Habits[1].Done)

	_, err = env.d.Dispatch(HabitToggle, Args{ArgID: " "})
	assert.ErrorIs(t, err, errors.ErrMissingArgument)
}

func TestNotes(t *testing.T) {
	env := setup(t)

	snap, err := env.d.Dispatch(NotesSave, Args{ArgText: "first"})
	require.NoError(t, err)
	assert.Equal(t, "first", snap.Notes)

	snap, err = env.d.Dispatch(NotesAppend, Args{ArgText: "second"})
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond", snap.Notes)

	snap, err = env.d.Dispatch(NotesSave, Args{})
	require.NoError(t, err)
	assert.Equal(t, "", snap.Notes)
}

// =============================================================================
// Dispatch table
// =============================================================================

func TestUnknownAction(t *testing.T) {
	env := setup(t)

	_, err := env.d.Dispatch("schedule.explode", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownAction)
	keys, err := env.kv.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestActions(t *testing.T) {
	env := setup(t)
	assert.Equal(t, []string{
		HabitToggle, NotesAppend, NotesSave, Refresh,
		ScheduleAdd, ScheduleDelete,
		TaskAdd, TaskClear, TaskDelete, TaskToggle,
	}, env.d.Actions())
}
