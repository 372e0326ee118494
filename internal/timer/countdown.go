package timer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Countdown describes a yearly goal date, counted down to local midnight.
type Countdown struct {
	Label   string
	Month   time.Month
	Day     int
	Arrived string
}

// Target returns the next occurrence of the goal date at or after now.
// A goal date already passed this year rolls over to next year.
func (c Countdown) Target(now time.Time) time.Time {
	target := time.Date(now.Year(), c.Month, c.Day, 0, 0, 0, 0, now.Location())
	if now.After(target) {
		target = time.Date(now.Year()+1, c.Month, c.Day, 0, 0, 0, 0, now.Location())
	}
	return target
}

// Start fixes the target for a running countdown.
func (c Countdown) Start(now time.Time) Goal {
	target := c.Target(now)
	return Goal{
		Label:    c.Label,
		Arrived:  c.Arrived,
		Target:   target,
		Previous: time.Date(target.Year()-1, c.Month, c.Day, 0, 0, 0, 0, target.Location()),
	}
}

// Goal is a countdown with its target fixed. Once the target passes the
// goal stays reached; it does not roll over while running.
type Goal struct {
	Label    string
	Arrived  string
	Target   time.Time
	Previous time.Time
}

// Remaining returns the time left until the target, never negative.
func (g Goal) Remaining(now time.Time) time.Duration {
	d := g.Target.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Reached reports whether the target has passed.
func (g Goal) Reached(now time.Time) bool {
	return now.After(g.Target)
}

// Progress returns the fraction of the year elapsed since the previous
// occurrence, in [0, 1].
func (g Goal) Progress(now time.Time) float64 {
	total := g.Target.Sub(g.Previous)
	if total <= 0 {
		return 1
	}
	p := float64(now.Sub(g.Previous)) / float64(total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Status returns the remaining time, or the arrival message once reached.
func (g Goal) Status(now time.Time) string {
	if g.Reached(now) {
		return g.Arrived
	}
	return FormatRemaining(g.Remaining(now))
}

// FormatRemaining formats a duration as "Xd Yh Zm Ws".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	totalSeconds := int64(d / time.Second)
	days := totalSeconds / 86400
	hours := (totalSeconds % 86400) / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}

// CountdownDisplay handles the visual display of a goal countdown.
type CountdownDisplay struct {
	Writer       io.Writer
	UseColor     bool
	ShowProgress bool
}

// NewCountdownDisplay creates a new countdown display.
func NewCountdownDisplay() *CountdownDisplay {
	return &CountdownDisplay{
		Writer:       os.Stdout,
		UseColor:     true,
		ShowProgress: true,
	}
}

// Styles for countdown display.
var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#A5B4FC")) // Indigo

	remainingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	arrivedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F472B6")) // Pink

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")) // Gray

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6B7280")) // Gray
)

func (cd *CountdownDisplay) style(s lipgloss.Style, text string) string {
	if cd.UseColor {
		return s.Render(text)
	}
	return text
}

// Render renders the countdown for a point in time.
func (cd *CountdownDisplay) Render(g Goal, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(cd.style(labelStyle, strings.ToUpper(g.Label)))
	sb.WriteString("  ")
	sb.WriteString(cd.style(hintStyle, g.Target.Format("Jan 2, 2006")))
	sb.WriteString("\n\n")

	if g.Reached(now) {
		sb.WriteString(cd.style(arrivedStyle, g.Arrived))
		return sb.String()
	}

	sb.WriteString(cd.style(remainingStyle, FormatRemaining(g.Remaining(now))))

	if cd.ShowProgress {
		sb.WriteString("\n\n")
		sb.WriteString(cd.style(progressStyle, renderProgressBar(g.Progress(now), 30)))
	}

	return sb.String()
}

// renderProgressBar creates a progress bar string.
func renderProgressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %d%%", bar, int(progress*100))
}

// ClearScreen clears the terminal screen.
func (cd *CountdownDisplay) ClearScreen() {
	fmt.Fprint(cd.Writer, "\033[H\033[2J")
}

// MoveCursorHome moves cursor to home position.
func (cd *CountdownDisplay) MoveCursorHome() {
	fmt.Fprint(cd.Writer, "\033[H")
}
