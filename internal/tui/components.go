package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/output"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// HeaderComponent shows the clock, date and goal countdown.
type HeaderComponent struct {
	Now   time.Time
	Goal  timer.Goal
	Width int
}

// View renders the header.
func (hc *HeaderComponent) View() string {
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		StyleTitle.Render("STARDECK"),
		"  ",
		StyleClock.Render(timer.FormatClock(hc.Now)),
		"  ",
		StyleSubtitle.Render(timer.FormatDate(hc.Now)),
	)

	status := hc.Goal.Status(hc.Now)
	var right string
	if hc.Goal.Reached(hc.Now) {
		right = StyleOffline.Render(status)
	} else {
		right = StyleSubtitle.Render(hc.Goal.Label+": ") + StyleClock.Render(status)
	}

	gap := hc.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "\n" + right
	}
	return left + strings.Repeat(" ", gap) + right
}

// ScheduleComponent displays the day's schedule with the current entry highlighted.
type ScheduleComponent struct {
	Entries []model.ScheduleEntry
	Focus   int
	Cursor  int
	Active  bool
	Width   int
}

// View renders the schedule pane.
func (sc *ScheduleComponent) View() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Planetary Focus"))

	if len(sc.Entries) == 0 {
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render("No schedule entries"))
	}
	for i, e := range sc.Entries {
		content.WriteString("\n")
		marker := "  "
		line := fmt.Sprintf("%s  %s", e.Span(), output.Truncate(e.Description, sc.Width-20))
		if i == sc.Focus {
			marker = "▶ "
			line = StyleFocus.Render(line)
		}
		row := marker + line
		if sc.Active && i == sc.Cursor {
			row = StyleCursor.Render(row)
		}
		content.WriteString(row)
	}

	return paneBox(sc.Active, sc.Width).Render(content.String())
}

// TaskComponent displays the to-do list.
type TaskComponent struct {
	Tasks  []model.Task
	Cursor int
	Active bool
	Width  int
}

// View renders the task pane.
func (tc *TaskComponent) View() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render(fmt.Sprintf("Mission Log (%d)", model.Pending(tc.Tasks))))

	if len(tc.Tasks) == 0 {
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render("No tasks yet"))
	}
	for i, t := range tc.Tasks {
		content.WriteString("\n")
		text := output.Truncate(t.Text, tc.Width-10)
		box := "[ ] "
		if t.Completed {
			box = "[x] "
			text = StyleDone.Render(text)
		}
		row := box + text
		if tc.Active && i == tc.Cursor {
			row = StyleCursor.Render(row)
		}
		content.WriteString(row)
	}

	return paneBox(tc.Active, tc.Width).Render(content.String())
}

// HabitComponent displays today's habits.
type HabitComponent struct {
	Habits []model.HabitRecord
	Today  model.DateKey
	Cursor int
	Active bool
	Width  int
}

// View renders the habit pane.
func (hc *HabitComponent) View() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Stellar Streak"))
	content.WriteString(" ")
	content.WriteString(StyleSubtitle.Render(hc.Today.String()))

	for i, h := range hc.Habits {
		content.WriteString("\n")
		mark := StyleMuted.Render("○")
		if h.Done {
			mark = StyleSuccess.Render("●")
		}
		row := mark + " " + h.Name
		if hc.Active && i == hc.Cursor {
			row = StyleCursor.Render(row)
		}
		content.WriteString(row)
	}

	done := model.CompletedHabits(hc.Habits)
	pct := 0.0
	if len(hc.Habits) > 0 {
		pct = float64(done) / float64(len(hc.Habits)) * 100
	}
	barWidth := hc.Width - 14
	if barWidth < 10 {
		barWidth = 10
	}
	content.WriteString("\n")
	content.WriteString(ProgressBar(pct, barWidth))
	content.WriteString(StyleSubtitle.Render(fmt.Sprintf(" %d/%d", done, len(hc.Habits))))

	return paneBox(hc.Active, hc.Width).Render(content.String())
}

// NotesComponent displays the notes pad.
type NotesComponent struct {
	Text    string
	Editing bool
	Dirty   bool
	Active  bool
	Width   int
	Height  int
}

// View renders the notes pane.
func (nc *NotesComponent) View() string {
	var content strings.Builder
	content.WriteString(StyleTitle.Render("Cosmic Notes"))
	switch {
	case nc.Editing && nc.Dirty:
		content.WriteString(StyleWarning.Render(" (editing…)"))
	case nc.Editing:
		content.WriteString(StyleSubtitle.Render(" (editing)"))
	}
	content.WriteString("\n")

	text := nc.Text
	if nc.Editing {
		text += "█"
	}
	if strings.TrimSpace(nc.Text) == "" && !nc.Editing {
		text = StyleMuted.Render("Press enter to write")
	}

	lines := strings.Split(text, "\n")
	if nc.Height > 0 && len(lines) > nc.Height {
		lines = lines[len(lines)-nc.Height:]
	}
	content.WriteString(strings.Join(lines, "\n"))

	return paneBox(nc.Active, nc.Width).Render(content.String())
}

// PictureComponent displays the picture-of-the-day panel.
type PictureComponent struct {
	Display apod.Display
	Width   int
}

// View renders the picture pane.
func (pc *PictureComponent) View() string {
	d := pc.Display
	var content strings.Builder

	switch d.State {
	case apod.StateOffline:
		content.WriteString(StyleOffline.Render(d.Title))
	case apod.StateLoading:
		content.WriteString(StyleSubtitle.Render(d.Title))
	default:
		content.WriteString(StyleTitle.Render(d.Title))
	}
	content.WriteString("\n")
	content.WriteString(StyleMuted.Render(output.Truncate(d.ImageURL, pc.Width-4)))
	if d.Link != "" {
		content.WriteString("\n")
		content.WriteString(StyleMuted.Render(output.Truncate(d.Link, pc.Width-4)))
	}
	if d.Caption != "" {
		content.WriteString("\n\n")
		content.WriteString(d.Caption)
	}

	return paneBox(false, pc.Width).Render(content.String())
}

// helpKey is one entry of the help bar.
type helpKey struct {
	key  string
	desc string
}

// HelpBar renders the help bar for the current mode.
func HelpBar(keys []helpKey) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}
	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
