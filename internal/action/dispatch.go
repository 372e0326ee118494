// Package action maps named dashboard actions to store operations. Every
// action returns a fresh Snapshot for the caller to render.
package action

import (
	"sort"
	"strings"
	"time"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/parser"
	"github.com/manav03panchal/stardeck/internal/storage"
)

// Action names.
const (
	ScheduleAdd    = "schedule.add"
	ScheduleDelete = "schedule.delete"
	TaskAdd        = "task.add"
	TaskToggle     = "task.toggle"
	TaskDelete     = "task.delete"
	TaskClear      = "task.clear"
	HabitToggle    = "habit.toggle"
	NotesSave      = "notes.save"
	NotesAppend    = "notes.append"
	Refresh        = "refresh"
)

// Argument names.
const (
	ArgStart       = "start"
	ArgEnd         = "end"
	ArgDescription = "description"
	ArgText        = "text"
	ArgID          = "id"
)

// Args carries raw string arguments as typed by the user.
type Args map[string]string

// Snapshot is the full dashboard state after an action.
type Snapshot struct {
	Today    model.DateKey         `json:"today"`
	Schedule []model.ScheduleEntry `json:"schedule"`
	// Focus is the index of the current schedule entry, or -1.
	Focus  int                 `json:"focus"`
	Tasks  []model.Task        `json:"tasks"`
	Habits []model.HabitRecord `json:"habits"`
	Notes  string              `json:"notes"`
	// Added is the id of the record created by the action, if any.
	Added int64 `json:"added,omitempty"`
}

// FocusEntry returns the current schedule entry, if one is active.
func (s Snapshot) FocusEntry() (model.ScheduleEntry, bool) {
	if s.Focus < 0 || s.Focus >= len(s.Schedule) {
		return model.ScheduleEntry{}, false
	}
	return s.Schedule[s.Focus], true
}

// Stores groups the stores the dispatcher drives.
type Stores struct {
	Schedule *storage.ScheduleStore
	Tasks    *storage.TaskList
	Habits   *storage.HabitTracker
	Notes    *storage.NotesPad
}

type handler func(args Args) (int64, error)

// Dispatcher routes actions to store methods.
type Dispatcher struct {
	stores   Stores
	now      func() time.Time
	handlers map[string]handler
	log      *logging.ContextLogger
}

// New creates a dispatcher. A nil clock uses time.Now.
func New(stores Stores, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	d := &Dispatcher{
		stores: stores,
		now:    now,
		log:    logging.ForStore("dispatch"),
	}
	d.handlers = map[string]handler{
		ScheduleAdd:    d.scheduleAdd,
		ScheduleDelete: d.scheduleDelete,
		TaskAdd:        d.taskAdd,
		TaskToggle:     d.taskToggle,
		TaskDelete:     d.taskDelete,
		TaskClear:      d.taskClear,
		HabitToggle:    d.habitToggle,
		NotesSave:      d.notesSave,
		NotesAppend:    d.notesAppend,
		Refresh:        func(Args) (int64, error) { return 0, nil },
	}
	return d
}

// Actions returns the registered action names, sorted.
func (d *Dispatcher) Actions() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named action and returns the resulting state.
// Argument errors are returned before any store is touched.
func (d *Dispatcher) Dispatch(name string, args Args) (Snapshot, error) {
	h, ok := d.handlers[name]
	if !ok {
		d.log.Info("action rejected", logging.KeyAction, name, logging.KeyReason, errors.ErrUnknownAction.Error())
		return Snapshot{}, errors.NewUserErrorWithField(errors.ErrUnknownAction, "action", name, "")
	}

	added, err := h(args)
	if err != nil {
		if errors.IsUserError(err) {
			d.log.Info("action rejected", logging.KeyAction, name, logging.KeyReason, err.Error())
		} else {
			d.log.Error("action failed", logging.KeyAction, name, logging.KeyError, err)
		}
		return Snapshot{}, err
	}

	d.log.Debug("action applied", logging.KeyAction, name)
	snap, err := d.Snapshot()
	snap.Added = added
	return snap, err
}

// Snapshot loads the current state of every store.
func (d *Dispatcher) Snapshot() (Snapshot, error) {
	now := d.now()
	snap := Snapshot{Today: model.DateKeyFor(now), Focus: -1}

	var err error
	if snap.Schedule, err = d.stores.Schedule.Load(); err != nil {
		return Snapshot{}, err
	}
	if i, ok := d.stores.Schedule.CurrentFocus(snap.Schedule, now); ok {
		snap.Focus = i
	}
	if snap.Tasks, err = d.stores.Tasks.Load(); err != nil {
		return Snapshot{}, err
	}
	if snap.Habits, err = d.stores.Habits.Load(snap.Today); err != nil {
		return Snapshot{}, err
	}
	if snap.Notes, err = d.stores.Notes.Load(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (d *Dispatcher) scheduleAdd(args Args) (int64, error) {
	start, err := parser.ParseClockAt(ArgStart, args[ArgStart], d.now())
	if err != nil {
		return 0, err
	}
	end, err := parser.ParseClockAt(ArgEnd, args[ArgEnd], d.now())
	if err != nil {
		return 0, err
	}
	if _, ok := args[ArgDescription]; !ok {
		return 0, errors.NewUserErrorWithField(errors.ErrMissingArgument, ArgDescription, "", "")
	}
	entry, err := d.stores.Schedule.Add(start, end, args[ArgDescription])
	if err != nil {
		return 0, err
	}
	return entry.ID, nil
}

func (d *Dispatcher) scheduleDelete(args Args) (int64, error) {
	id, err := parser.ParseID(args[ArgID])
	if err != nil {
		return 0, err
	}
	_, err = d.stores.Schedule.Delete(id)
	return 0, err
}

func (d *Dispatcher) taskAdd(args Args) (int64, error) {
	task, err := d.stores.Tasks.Add(args[ArgText])
	if err != nil {
		return 0, err
	}
	return task.ID, nil
}

func (d *Dispatcher) taskToggle(args Args) (int64, error) {
	id, err := parser.ParseID(args[ArgID])
	if err != nil {
		return 0, err
	}
	_, err = d.stores.Tasks.Toggle(id)
	return 0, err
}

func (d *Dispatcher) taskDelete(args Args) (int64, error) {
	id, err := parser.ParseID(args[ArgID])
	if err != nil {
		return 0, err
	}
	_, err = d.stores.Tasks.Delete(id)
	return 0, err
}

func (d *Dispatcher) taskClear(Args) (int64, error) {
	_, err := d.stores.Tasks.ClearCompleted()
	return 0, err
}

func (d *Dispatcher) habitToggle(args Args) (int64, error) {
	id := strings.TrimSpace(args[ArgID])
	if id == "" {
		return 0, errors.NewUserErrorWithField(errors.ErrMissingArgument, ArgID, "", "")
	}
	// Load first so a toggle on a new day applies to the reset records.
	if _, err := d.stores.Habits.Load(model.DateKeyFor(d.now())); err != nil {
		return 0, err
	}
	_, err := d.stores.Habits.Toggle(id)
	return 0, err
}

func (d *Dispatcher) notesSave(args Args) (int64, error) {
	return 0, d.stores.Notes.Save(args[ArgText])
}

func (d *Dispatcher) notesAppend(args Args) (int64, error) {
	_, err := d.stores.Notes.Append(args[ArgText])
	return 0, err
}
