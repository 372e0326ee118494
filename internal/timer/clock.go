// Package timer provides the dashboard clock and goal countdown.
package timer

import "time"

// Layouts used by the dashboard header.
const (
	ClockLayout = "15:04:05"
	DateLayout  = "Monday, January 2, 2006"
)

// FormatClock renders a 24-hour wall clock time.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDate renders the long date shown under the clock.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
