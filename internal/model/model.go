// Package model defines the dashboard records persisted by Stardeck.
package model

import "errors"

// Storage keys. Each store owns exactly one slice of the key-value namespace.
const (
	KeyTasks          = "tasks"
	KeyNotes          = "notes"
	KeyHabits         = "habits"
	KeyHabitLastReset = "habits:last_reset"
	KeySchedule       = "schedule"
)

// AllKeys lists every key Stardeck writes.
var AllKeys = []string{KeyTasks, KeyNotes, KeyHabits, KeyHabitLastReset, KeySchedule}

// ErrMalformed is returned when a stored payload does not have the expected shape.
var ErrMalformed = errors.New("malformed stored record")
