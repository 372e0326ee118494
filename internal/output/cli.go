package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorAccent  = lipgloss.Color("#A5B4FC") // Indigo
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleFocus = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// PrintSchedule prints the schedule, marking the entry at index focus.
func (c *CLIFormatter) PrintSchedule(entries []model.ScheduleEntry, focus int) {
	c.Title("Planetary Focus")
	if len(entries) == 0 {
		c.Muted("  No schedule entries.")
		return
	}

	rows := make([]TableRow, 0, len(entries))
	for i, e := range entries {
		marker := " "
		if i == focus {
			marker = "▶"
		}
		rows = append(rows, TableRow{Columns: []string{
			marker,
			e.Span(),
			Truncate(e.Description, c.Width()-30),
			fmt.Sprintf("#%d", e.ID),
		}, Highlight: i == focus})
	}
	c.PrintTable([]string{"", "TIME", "DESCRIPTION", "ID"}, rows)
}

// PrintFocus prints the current schedule entry, if any.
func (c *CLIFormatter) PrintFocus(entry model.ScheduleEntry, ok bool) {
	if !ok {
		c.Muted("Nothing scheduled right now.")
		return
	}
	c.Printf("Now: %s  %s\n", c.render(styleFocus, entry.Span()), entry.Description)
}

// PrintTasks prints the to-do list.
func (c *CLIFormatter) PrintTasks(tasks []model.Task) {
	c.Title(fmt.Sprintf("Mission Log (%d pending)", model.Pending(tasks)))
	if len(tasks) == 0 {
		c.Muted("  No tasks. Add one with 'stardeck task add <text>'.")
		return
	}
	for _, t := range tasks {
		box := "[ ]"
		text := t.Text
		if t.Completed {
			box = "[x]"
			text = c.render(styleDone, text)
		}
		c.Printf("  %s %s %s\n", box, text, c.render(styleMuted, fmt.Sprintf("#%d", t.ID)))
	}
}

// PrintHabits prints today's habits.
func (c *CLIFormatter) PrintHabits(habits []model.HabitRecord, today model.DateKey) {
	done := model.CompletedHabits(habits)
	c.Title(fmt.Sprintf("Stellar Streak %s", c.render(styleMuted, today.String())))
	for _, h := range habits {
		mark := c.render(styleMuted, "○")
		if h.Done {
			mark = c.render(styleSuccess, "●")
		}
		c.Printf("  %s %-28s %s\n", mark, h.Name, c.render(styleMuted, h.ID))
	}
	pct := 0.0
	if len(habits) > 0 {
		pct = float64(done) / float64(len(habits)) * 100
	}
	c.Printf("  %s %d/%d\n", ProgressBar(pct, 20), done, len(habits))
}

// PrintNotes prints the notes pad.
func (c *CLIFormatter) PrintNotes(notes string) {
	c.Title("Cosmic Notes")
	if strings.TrimSpace(notes) == "" {
		c.Muted("  (empty)")
		return
	}
	for _, line := range strings.Split(notes, "\n") {
		c.Println("  " + line)
	}
}

// PrintPicture prints the picture-of-the-day panel.
func (c *CLIFormatter) PrintPicture(d apod.Display) {
	switch d.State {
	case apod.StateOffline:
		c.Warning(d.Title)
	default:
		c.Title(d.Title)
	}
	if d.Date != "" {
		c.Muted(d.Date)
	}
	c.Printf("  Image: %s\n", d.ImageURL)
	if d.Link != "" {
		c.Printf("  Video: %s\n", d.Link)
	}
	if d.Caption != "" {
		c.Println()
		c.Println(lipgloss.NewStyle().Width(min(c.Width(), 100)).Render(d.Caption))
	}
}

// PrintCountdown prints the goal countdown.
func (c *CLIFormatter) PrintCountdown(g timer.Goal, now time.Time) {
	cd := &timer.CountdownDisplay{
		Writer:       c.Writer,
		UseColor:     c.IsColorEnabled(),
		ShowProgress: true,
	}
	c.Println(cd.Render(g, now))
}

// PrintStatus prints the summary shown by the bare command.
func (c *CLIFormatter) PrintStatus(snap action.Snapshot, g timer.Goal, now time.Time) {
	c.Printf("%s  %s\n", c.render(styleBold, timer.FormatClock(now)), c.render(styleMuted, timer.FormatDate(now)))
	entry, ok := snap.FocusEntry()
	c.PrintFocus(entry, ok)
	c.Printf("Tasks: %d pending of %d\n", model.Pending(snap.Tasks), len(snap.Tasks))
	c.Printf("Habits: %d/%d done\n", model.CompletedHabits(snap.Habits), len(snap.Habits))
	c.Printf("%s: %s\n", g.Label, g.Status(now))
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one row of a CLI table.
type TableRow struct {
	Columns   []string
	Highlight bool
}

// PrintTable prints a simple table.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	line := func(cols []string) string {
		var sb strings.Builder
		for i, col := range cols {
			if i < len(widths) {
				sb.WriteString(col)
				sb.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(col)+2))
			}
		}
		return strings.TrimRight(sb.String(), " ")
	}

	c.Println(c.render(styleBold, line(headers)))

	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	for _, row := range rows {
		text := line(row.Columns)
		if row.Highlight {
			text = c.render(styleFocus, text)
		}
		c.Println(text)
	}
}
