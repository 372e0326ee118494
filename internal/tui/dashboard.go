package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/stardeck/internal/action"
	"github.com/manav03panchal/stardeck/internal/apod"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/timer"
)

// tickMsg is sent when the clock ticks.
type tickMsg time.Time

// focusMsg is sent when the schedule highlight should be rechecked.
type focusMsg time.Time

// pictureMsg carries the picture panel once the fetch completes.
type pictureMsg apod.Display

// notesSaveMsg fires after the notes debounce delay.
type notesSaveMsg struct {
	seq int
}

// refreshMsg is sent when data needs to be reloaded.
type refreshMsg struct{}

// errMsg is sent when an error occurs.
type errMsg struct {
	err error
}

// pane identifies a dashboard pane that can take focus.
type pane int

const (
	paneSchedule pane = iota
	paneTasks
	paneHabits
	paneNotes
	paneCount
)

// mode is the input mode of the dashboard.
type mode int

const (
	modeNormal mode = iota
	modeInput
	modeNotes
)

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	// Data
	snap    action.Snapshot
	picture apod.Display
	goal    timer.Goal

	// Collaborators
	dispatcher   *action.Dispatcher
	fetchPicture func(context.Context) apod.Display
	now          func() time.Time

	// UI state
	active     pane
	cursors    [paneCount]int
	mode       mode
	prompt     string
	input      string
	inputFor   string
	notes      string
	notesDirty bool
	notesSeq   int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	clockInterval time.Duration
	focusInterval time.Duration
	notesDebounce time.Duration
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Dispatcher    *action.Dispatcher
	FetchPicture  func(context.Context) apod.Display
	Countdown     timer.Countdown
	Now           func() time.Time
	ClockInterval time.Duration
	FocusInterval time.Duration
	NotesDebounce time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.ClockInterval == 0 {
		config.ClockInterval = time.Second
	}
	if config.FocusInterval == 0 {
		config.FocusInterval = time.Minute
	}
	if config.NotesDebounce == 0 {
		config.NotesDebounce = time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.FetchPicture == nil {
		config.FetchPicture = func(context.Context) apod.Display { return apod.Offline() }
	}

	return &DashboardModel{
		dispatcher:    config.Dispatcher,
		fetchPicture:  config.FetchPicture,
		now:           config.Now,
		picture:       apod.Loading(),
		goal:          config.Countdown.Start(config.Now()),
		snap:          action.Snapshot{Focus: -1},
		clockInterval: config.ClockInterval,
		focusInterval: config.FocusInterval,
		notesDebounce: config.NotesDebounce,
	}
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return tea.Batch(
		m.refreshCmd(),
		m.tickCmd(),
		m.focusCmd(),
		m.fetchCmd(),
	)
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.handleInputKey(msg)
		case modeNotes:
			return m.handleNotesKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case focusMsg:
		m.updateFocus()
		return m, m.focusCmd()

	case pictureMsg:
		m.picture = apod.Display(msg)
		return m, nil

	case notesSaveMsg:
		if msg.seq == m.notesSeq && m.notesDirty {
			m.saveNotes()
		}
		return m, nil

	case refreshMsg:
		m.loadData()
		return m, nil

	case dayChangeMsg:
		m.saveNotes()
		m.loadData()
		m.updateFocus()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// handleKeyPress handles keyboard input in normal mode.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.active = (m.active + 1) % paneCount
		return m, nil

	case "shift+tab":
		m.active = (m.active + paneCount - 1) % paneCount
		return m, nil

	case "up", "k":
		if m.cursors[m.active] > 0 {
			m.cursors[m.active]--
		}
		return m, nil

	case "down", "j":
		if m.cursors[m.active] < m.paneLen(m.active)-1 {
			m.cursors[m.active]++
		}
		return m, nil

	case "a":
		switch m.active {
		case paneSchedule:
			m.startInput(action.ScheduleAdd, "New entry (start end description): ")
		case paneTasks:
			m.startInput(action.TaskAdd, "New task: ")
		}
		return m, nil

	case "d", "x":
		switch m.active {
		case paneSchedule:
			if e, ok := m.selectedEntry(); ok {
				m.dispatch(action.ScheduleDelete, action.Args{action.ArgID: formatID(e.ID)}, "Entry removed")
			}
		case paneTasks:
			if t, ok := m.selectedTask(); ok {
				m.dispatch(action.TaskDelete, action.Args{action.ArgID: formatID(t.ID)}, "Task removed")
			}
		}
		return m, nil

	case " ", "space", "enter":
		switch m.active {
		case paneTasks:
			if t, ok := m.selectedTask(); ok {
				m.dispatch(action.TaskToggle, action.Args{action.ArgID: formatID(t.ID)}, "")
			}
		case paneHabits:
			if h, ok := m.selectedHabit(); ok {
				m.dispatch(action.HabitToggle, action.Args{action.ArgID: h.ID}, "")
			}
		case paneNotes:
			m.mode = modeNotes
		}
		return m, nil

	case "e":
		if m.active == paneNotes {
			m.mode = modeNotes
		}
		return m, nil

	case "c":
		if m.active == paneTasks {
			m.dispatch(action.TaskClear, nil, "Completed tasks cleared")
		}
		return m, nil

	case "r":
		m.loadData()
		m.picture = apod.Loading()
		m.setMessage("Refreshed", time.Second)
		return m, m.fetchCmd()
	}

	return m, nil
}

// handleInputKey handles keyboard input while a prompt is open.
func (m *DashboardModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.endInput()
	case tea.KeyEnter:
		m.submitInput()
	case tea.KeyBackspace:
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

// handleNotesKey handles keyboard input while editing notes.
func (m *DashboardModel) handleNotesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.saveNotes()
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode = modeNormal
		m.saveNotes()
		return m, nil
	case tea.KeyCtrlS:
		m.saveNotes()
		return m, nil
	case tea.KeyEnter:
		m.notes += "\n"
	case tea.KeyBackspace:
		r := []rune(m.notes)
		if len(r) == 0 {
			return m, nil
		}
		m.notes = string(r[:len(r)-1])
	case tea.KeySpace:
		m.notes += " "
	case tea.KeyRunes:
		m.notes += string(msg.Runes)
	default:
		return m, nil
	}

	m.notesDirty = true
	m.notesSeq++
	return m, m.notesSaveCmd(m.notesSeq)
}

func (m *DashboardModel) startInput(name, prompt string) {
	m.mode = modeInput
	m.inputFor = name
	m.prompt = prompt
	m.input = ""
}

func (m *DashboardModel) endInput() {
	m.mode = modeNormal
	m.inputFor = ""
	m.prompt = ""
	m.input = ""
}

// submitInput turns the prompt contents into a dispatcher action.
func (m *DashboardModel) submitInput() {
	name, text := m.inputFor, m.input
	m.endInput()

	switch name {
	case action.ScheduleAdd:
		fields := strings.Fields(text)
		args := action.Args{}
		if len(fields) > 0 {
			args[action.ArgStart] = fields[0]
		}
		if len(fields) > 1 {
			args[action.ArgEnd] = fields[1]
		}
		args[action.ArgDescription] = ""
		if len(fields) > 2 {
			args[action.ArgDescription] = strings.Join(fields[2:], " ")
		}
		m.dispatch(name, args, "Entry added")
	case action.TaskAdd:
		m.dispatch(name, action.Args{action.ArgText: text}, "Task added")
	}
}

// dispatch runs an action and adopts the resulting snapshot.
func (m *DashboardModel) dispatch(name string, args action.Args, success string) {
	if m.dispatcher == nil {
		return
	}
	snap, err := m.dispatcher.Dispatch(name, args)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.applySnapshot(snap)
	if success != "" {
		m.setMessage(success, 2*time.Second)
	}
}

// loadData reloads everything from the stores.
func (m *DashboardModel) loadData() {
	if m.dispatcher == nil {
		return
	}
	snap, err := m.dispatcher.Snapshot()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.applySnapshot(snap)
	if !m.notesDirty {
		m.notes = snap.Notes
	}
}

func (m *DashboardModel) applySnapshot(snap action.Snapshot) {
	m.snap = snap
	for p := pane(0); p < paneCount; p++ {
		if n := m.paneLen(p); m.cursors[p] >= n {
			m.cursors[p] = max(n-1, 0)
		}
	}
}

// updateFocus recomputes the highlighted schedule entry.
func (m *DashboardModel) updateFocus() {
	m.snap.Focus = -1
	if i, ok := model.CurrentFocus(m.snap.Schedule, model.HHMMOf(m.now())); ok {
		m.snap.Focus = i
	}
}

// saveNotes persists pending note edits.
func (m *DashboardModel) saveNotes() {
	if !m.notesDirty || m.dispatcher == nil {
		return
	}
	snap, err := m.dispatcher.Dispatch(action.NotesSave, action.Args{action.ArgText: m.notes})
	if err != nil {
		m.err = err
		return
	}
	m.notesDirty = false
	m.snap = snap
}

func (m *DashboardModel) paneLen(p pane) int {
	switch p {
	case paneSchedule:
		return len(m.snap.Schedule)
	case paneTasks:
		return len(m.snap.Tasks)
	case paneHabits:
		return len(m.snap.Habits)
	}
	return 0
}

func (m *DashboardModel) selectedEntry() (model.ScheduleEntry, bool) {
	i := m.cursors[paneSchedule]
	if i < 0 || i >= len(m.snap.Schedule) {
		return model.ScheduleEntry{}, false
	}
	return m.snap.Schedule[i], true
}

func (m *DashboardModel) selectedTask() (model.Task, bool) {
	i := m.cursors[paneTasks]
	if i < 0 || i >= len(m.snap.Tasks) {
		return model.Task{}, false
	}
	return m.snap.Tasks[i], true
}

func (m *DashboardModel) selectedHabit() (model.HabitRecord, bool) {
	i := m.cursors[paneHabits]
	if i < 0 || i >= len(m.snap.Habits) {
		return model.HabitRecord{}, false
	}
	return m.snap.Habits[i], true
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	now := m.now()
	var sections []string

	header := HeaderComponent{Now: now, Goal: m.goal, Width: m.width}
	sections = append(sections, header.View())

	// Error message
	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	// Status message
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth

	schedule := ScheduleComponent{
		Entries: m.snap.Schedule,
		Focus:   m.snap.Focus,
		Cursor:  m.cursors[paneSchedule],
		Active:  m.active == paneSchedule,
		Width:   leftWidth,
	}
	tasks := TaskComponent{
		Tasks:  m.snap.Tasks,
		Cursor: m.cursors[paneTasks],
		Active: m.active == paneTasks,
		Width:  leftWidth,
	}
	habits := HabitComponent{
		Habits: m.snap.Habits,
		Today:  m.snap.Today,
		Cursor: m.cursors[paneHabits],
		Active: m.active == paneHabits,
		Width:  rightWidth,
	}
	notes := NotesComponent{
		Text:    m.notes,
		Editing: m.mode == modeNotes,
		Dirty:   m.notesDirty,
		Active:  m.active == paneNotes,
		Width:   rightWidth,
		Height:  6,
	}
	picture := PictureComponent{Display: m.picture, Width: rightWidth}

	left := lipgloss.JoinVertical(lipgloss.Left, schedule.View(), tasks.View())
	right := lipgloss.JoinVertical(lipgloss.Left, habits.View(), notes.View(), picture.View())
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, left, right))

	if m.mode == modeInput {
		sections = append(sections, StyleSubtitle.Render(m.prompt)+m.input+"█")
	}

	sections = append(sections, HelpBar(m.helpKeys()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *DashboardModel) helpKeys() []helpKey {
	switch m.mode {
	case modeInput:
		return []helpKey{{"enter", "submit"}, {"esc", "cancel"}}
	case modeNotes:
		return []helpKey{{"esc", "done"}, {"ctrl+s", "save"}}
	}

	keys := []helpKey{{"tab", "pane"}, {"↑/↓", "move"}}
	switch m.active {
	case paneSchedule:
		keys = append(keys, helpKey{"a", "add"}, helpKey{"d", "delete"})
	case paneTasks:
		keys = append(keys, helpKey{"a", "add"}, helpKey{"space", "toggle"}, helpKey{"d", "delete"}, helpKey{"c", "clear done"})
	case paneHabits:
		keys = append(keys, helpKey{"space", "toggle"})
	case paneNotes:
		keys = append(keys, helpKey{"enter", "edit"})
	}
	return append(keys, helpKey{"r", "refresh"}, helpKey{"q", "quit"})
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *DashboardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.clockInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// focusCmd schedules the next schedule highlight check.
func (m *DashboardModel) focusCmd() tea.Cmd {
	return tea.Tick(m.focusInterval, func(t time.Time) tea.Msg {
		return focusMsg(t)
	})
}

// notesSaveCmd fires a save once typing pauses.
func (m *DashboardModel) notesSaveCmd(seq int) tea.Cmd {
	return tea.Tick(m.notesDebounce, func(time.Time) tea.Msg {
		return notesSaveMsg{seq: seq}
	})
}

// fetchCmd loads the picture panel off the event loop.
func (m *DashboardModel) fetchCmd() tea.Cmd {
	fetch := m.fetchPicture
	return func() tea.Msg {
		return pictureMsg(fetch(context.Background()))
	}
}

// refreshCmd returns a command that sends a refresh message.
func (m *DashboardModel) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{}
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Run starts the dashboard TUI.
func Run(config DashboardConfig) error {
	m := NewDashboardModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen())

	sched := NewScheduler(p.Send)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	_, err := p.Run()
	return err
}
