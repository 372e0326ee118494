package model

import (
	"fmt"
	"sort"
	"time"
)

// ScheduleEntry is one labeled, time-bounded block of the day.
// Start and End are times of day encoded as HHMM integers (930 is 09:30).
type ScheduleEntry struct {
	ID          int64  `json:"id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Description string `json:"description"`
}

// Contains reports whether the HHMM time falls inside [Start, End).
func (e ScheduleEntry) Contains(hhmm int) bool {
	return e.Start <= hhmm && hhmm < e.End
}

// Span returns the entry formatted as "08:00 - 09:00".
func (e ScheduleEntry) Span() string {
	return FormatHHMM(e.Start) + " - " + FormatHHMM(e.End)
}

// DefaultSchedule returns the seed used when no schedule has been stored.
func DefaultSchedule() []ScheduleEntry {
	return []ScheduleEntry{
		{ID: 1, Start: 800, End: 900, Description: "Morning Routine & Fuel Check"},
		{ID: 2, Start: 900, End: 1200, Description: "Deep Work: CS Project"},
		{ID: 3, Start: 1200, End: 1300, Description: "Refuel & Wellness Break"},
		{ID: 4, Start: 1300, End: 1600, Description: "Asynchronous Study: History"},
		{ID: 5, Start: 1600, End: 1800, Description: "Social Hour/Clubs"},
		{ID: 6, Start: 1800, End: 1900, Description: "Dinner & Review Log"},
		{ID: 7, Start: 1900, End: 2200, Description: "Final Boost/Prep for Tomorrow"},
	}
}

// SortSchedule orders entries ascending by start time. Entries sharing a
// start keep their relative order.
func SortSchedule(entries []ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Start < entries[j].Start
	})
}

// CurrentFocus returns the index of the entry covering nowHHMM.
// Overlaps are allowed, so when several entries match the first one in
// sorted order wins.
func CurrentFocus(entries []ScheduleEntry, nowHHMM int) (int, bool) {
	for i, e := range entries {
		if e.Contains(nowHHMM) {
			return i, true
		}
	}
	return -1, false
}

// ValidHHMM reports whether v is a time of day in HHMM form.
func ValidHHMM(v int) bool {
	return v >= 0 && v <= 2359 && v%100 < 60
}

// HHMMOf converts a wall clock time to its HHMM form.
func HHMMOf(t time.Time) int {
	return t.Hour()*100 + t.Minute()
}

// FormatHHMM renders 800 as "08:00".
func FormatHHMM(v int) string {
	return fmt.Sprintf("%02d:%02d", v/100, v%100)
}

// FindEntry returns the index of the entry with the given id, or -1.
func FindEntry(entries []ScheduleEntry, id int64) int {
	for i, e := range entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
