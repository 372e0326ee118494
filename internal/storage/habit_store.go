package storage

import (
	"sync"
	"time"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/model"
)

// HabitTracker owns the habit records and the daily reset marker.
type HabitTracker struct {
	mu     sync.Mutex
	kv     KeyValueStore
	habits []model.HabitRecord
	now    func() time.Time
	log    *logging.ContextLogger
}

// NewHabitTracker creates a tracker for the configured habit set. An empty
// set uses model.DefaultHabits; a nil clock uses time.Now.
func NewHabitTracker(kv KeyValueStore, habits []model.HabitRecord, now func() time.Time) *HabitTracker {
	if len(habits) == 0 {
		habits = model.DefaultHabits()
	}
	if now == nil {
		now = time.Now
	}
	configured := model.CloneHabits(habits)
	for i := range configured {
		configured[i].Done = false
	}
	return &HabitTracker{
		kv:     kv,
		habits: configured,
		now:    now,
		log:    logging.ForStore("habits"),
	}
}

// Today returns the local calendar date.
func (h *HabitTracker) Today() model.DateKey {
	return model.DateKeyFor(h.now())
}

// Load returns the habits for today. When the stored reset marker is not
// today every habit is cleared and the marker moves to today. The result is
// always written back, so repeated loads on one day are stable.
func (h *HabitTracker) Load(today model.DateKey) ([]model.HabitRecord, error) {
	if !today.Valid() {
		return nil, errors.NewUserErrorWithField(errors.ErrInvalidDate, "date", string(today), "")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	habits, err := h.read()
	if err != nil {
		return nil, err
	}

	marker, ok, err := h.kv.Get(model.KeyHabitLastReset)
	if err != nil {
		return nil, errors.StorageError("load habit reset marker", err)
	}

	reset := !ok || model.DateKey(marker) != today
	if reset {
		for i := range habits {
			habits[i].Done = false
		}
	}

	// Records go first so a failed marker write retries the reset next time.
	if err := h.write(habits); err != nil {
		return nil, err
	}
	if reset {
		if err := h.kv.Set(model.KeyHabitLastReset, string(today)); err != nil {
			return nil, errors.StorageError("save habit reset marker", err)
		}
		h.log.Info("habits reset", logging.KeyDate, string(today), "previous", marker)
	}
	return habits, nil
}

// Toggle flips the done flag of the habit with the given id. Unknown ids
// are ignored. The reset marker is left alone.
func (h *HabitTracker) Toggle(id string) ([]model.HabitRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	habits, err := h.read()
	if err != nil {
		return nil, err
	}
	for i := range habits {
		if habits[i].ID == id {
			habits[i].Done = !habits[i].Done
			h.log.Debug("habit toggled", logging.KeyID, id, "done", habits[i].Done)
			break
		}
	}
	if err := h.write(habits); err != nil {
		return nil, err
	}
	return habits, nil
}

// LastReset returns the stored reset marker.
func (h *HabitTracker) LastReset() (model.DateKey, bool, error) {
	raw, ok, err := h.kv.Get(model.KeyHabitLastReset)
	if err != nil {
		return "", false, errors.StorageError("load habit reset marker", err)
	}
	return model.DateKey(raw), ok, nil
}

// read returns the configured habits with done flags taken from storage.
// Missing or malformed storage yields the configured set, all undone.
func (h *HabitTracker) read() ([]model.HabitRecord, error) {
	habits := model.CloneHabits(h.habits)

	raw, ok, err := h.kv.Get(model.KeyHabits)
	if err != nil {
		return nil, errors.StorageError("load habits", err)
	}
	if !ok {
		return habits, nil
	}

	stored, err := model.DecodeHabits(raw)
	if err != nil {
		h.log.Warn("discarding malformed habits", logging.KeyError, err.Error())
		return habits, nil
	}

	done := make(map[string]bool, len(stored))
	for _, s := range stored {
		done[s.ID] = s.Done
	}
	for i := range habits {
		habits[i].Done = done[habits[i].ID]
	}
	return habits, nil
}

func (h *HabitTracker) write(habits []model.HabitRecord) error {
	raw, err := model.Encode(habits)
	if err != nil {
		return errors.StorageError("encode habits", err)
	}
	if err := h.kv.Set(model.KeyHabits, raw); err != nil {
		return errors.StorageError("save habits", err)
	}
	return nil
}
