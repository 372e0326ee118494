package model

import "time"

// HabitRecord is a daily-checkable habit with a fixed identity.
type HabitRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// DefaultHabits returns the built-in habit set used when none is configured.
func DefaultHabits() []HabitRecord {
	return []HabitRecord{
		{ID: "water", Name: "Hydrate (Fuel Check)"},
		{ID: "study", Name: "Launch Study Module"},
		{ID: "sleep", Name: "Log 8 Hrs Sleep"},
	}
}

// DateKey is a local calendar date in YYYY-MM-DD form.
type DateKey string

// DateKeyLayout is the time layout of a DateKey.
const DateKeyLayout = "2006-01-02"

// DateKeyFor returns the calendar date of t in t's own location.
func DateKeyFor(t time.Time) DateKey {
	return DateKey(t.Format(DateKeyLayout))
}

// Valid reports whether the key parses as a calendar date.
func (d DateKey) Valid() bool {
	_, err := time.Parse(DateKeyLayout, string(d))
	return err == nil
}

// String implements fmt.Stringer.
func (d DateKey) String() string {
	return string(d)
}

// CompletedHabits counts habits checked in today.
func CompletedHabits(habits []HabitRecord) int {
	n := 0
	for _, h := range habits {
		if h.Done {
			n++
		}
	}
	return n
}

// CloneHabits returns a copy of the slice.
func CloneHabits(habits []HabitRecord) []HabitRecord {
	out := make([]HabitRecord, len(habits))
	copy(out, habits)
	return out
}
