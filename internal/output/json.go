package output

import (
	"time"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ScheduleEntryOutput represents a schedule entry in JSON output.
type ScheduleEntryOutput struct {
	ID          int64  `json:"id"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	Span        string `json:"span"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// ScheduleResponse represents the schedule output in JSON.
type ScheduleResponse struct {
	Entries []ScheduleEntryOutput `json:"entries"`
	Total   int                   `json:"total"`
}

// NewScheduleResponse creates a ScheduleResponse, marking the entry at focus.
func NewScheduleResponse(entries []model.ScheduleEntry, focus int) *ScheduleResponse {
	resp := &ScheduleResponse{
		Entries: make([]ScheduleEntryOutput, 0, len(entries)),
		Total:   len(entries),
	}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, ScheduleEntryOutput{
			ID:          e.ID,
			Start:       e.Start,
			End:         e.End,
			Span:        e.Span(),
			Description: e.Description,
			Current:     i == focus,
		})
	}
	return resp
}

// TasksResponse represents the task list output in JSON.
type TasksResponse struct {
	Tasks   []model.Task `json:"tasks"`
	Pending int          `json:"pending"`
	Total   int          `json:"total"`
}

// HabitsResponse represents today's habits in JSON.
type HabitsResponse struct {
	Date      model.DateKey       `json:"date"`
	Habits    []model.HabitRecord `json:"habits"`
	Completed int                 `json:"completed"`
}

// NotesResponse represents the notes pad in JSON.
type NotesResponse struct {
	Notes string `json:"notes"`
}

// CountdownResponse represents the goal countdown in JSON.
type CountdownResponse struct {
	Label            string  `json:"label"`
	Target           string  `json:"target"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	Remaining        string  `json:"remaining"`
	Reached          bool    `json:"reached"`
	Progress         float64 `json:"progress"`
}

// NewCountdownResponse creates a CountdownResponse for a point in time.
func NewCountdownResponse(g timer.Goal, now time.Time) *CountdownResponse {
	return &CountdownResponse{
		Label:            g.Label,
		Target:           g.Target.Format(time.RFC3339),
		RemainingSeconds: int64(g.Remaining(now) / time.Second),
		Remaining:        g.Status(now),
		Reached:          g.Reached(now),
		Progress:         g.Progress(now),
	}
}

// StatusResponse represents the summary output in JSON.
type StatusResponse struct {
	Time      string               `json:"time"`
	Date      model.DateKey        `json:"date"`
	Focus     *ScheduleEntryOutput `json:"focus,omitempty"`
	Pending   int                  `json:"pending_tasks"`
	Habits    int                  `json:"habits_done"`
	HabitsAll int                  `json:"habits_total"`
	Countdown *CountdownResponse   `json:"countdown"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintSchedule outputs the schedule in JSON format.
func (j *JSONFormatter) PrintSchedule(entries []model.ScheduleEntry, focus int) error {
	return j.JSON(NewScheduleResponse(entries, focus))
}

// PrintTasks outputs the task list in JSON format.
func (j *JSONFormatter) PrintTasks(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return j.JSON(TasksResponse{Tasks: tasks, Pending: model.Pending(tasks), Total: len(tasks)})
}

// PrintHabits outputs today's habits in JSON format.
func (j *JSONFormatter) PrintHabits(habits []model.HabitRecord, today model.DateKey) error {
	return j.JSON(HabitsResponse{Date: today, Habits: habits, Completed: model.CompletedHabits(habits)})
}

// PrintNotes outputs the notes in JSON format.
func (j *JSONFormatter) PrintNotes(notes string) error {
	return j.JSON(NotesResponse{Notes: notes})
}

// PrintPicture outputs the picture panel in JSON format.
func (j *JSONFormatter) PrintPicture(d apod.Display) error {
	return j.JSON(d)
}

// PrintCountdown outputs the countdown in JSON format.
func (j *JSONFormatter) PrintCountdown(g timer.Goal, now time.Time) error {
	return j.JSON(NewCountdownResponse(g, now))
}

// PrintStatus outputs the summary in JSON format.
func (j *JSONFormatter) PrintStatus(snap action.Snapshot, g timer.Goal, now time.Time) error {
	resp := StatusResponse{
		Time:      timer.FormatClock(now),
		Date:      snap.Today,
		Pending:   model.Pending(snap.Tasks),
		Habits:    model.CompletedHabits(snap.Habits),
		HabitsAll: len(snap.Habits),
		Countdown: NewCountdownResponse(g, now),
	}
	if entry, ok := snap.FocusEntry(); ok {
		out := NewScheduleResponse([]model.ScheduleEntry{entry}, 0).Entries[0]
		resp.Focus = &out
	}
	return j.JSON(resp)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      errMsg,
		Message:    message,
		Suggestion: suggestion,
	})
}
