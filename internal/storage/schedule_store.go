package storage

import (
	"sync"
	"time"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/logging"
	"github.com/manav03panchal/stardeck/internal/model"
	"github.com/manav03panchal/stardeck/internal/validate"
)

// ScheduleStore owns the ordered schedule entries under model.KeySchedule.
type ScheduleStore struct {
	mu  sync.Mutex
	kv  KeyValueStore
	ids *model.IDSource
	log *logging.ContextLogger
}

// NewScheduleStore creates a schedule store. A nil id source uses the wall clock.
func NewScheduleStore(kv KeyValueStore, ids *model.IDSource) *ScheduleStore {
	if ids == nil {
		ids = model.NewIDSource(nil)
	}
	return &ScheduleStore{
		kv:  kv,
		ids: ids,
		log: logging.ForStore("schedule"),
	}
}

// Load returns the stored schedule. A missing, empty or malformed schedule
// is replaced by the default seed, which is persisted before returning.
func (s *ScheduleStore) Load() ([]model.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add validates and inserts a new entry, keeping the schedule sorted by start.
func (s *ScheduleStore) Add(start, end int, description string) (model.ScheduleEntry, error) {
	description = validate.SanitizeLine(description)
	if err := validate.ScheduleEntry(start, end, description); err != nil {
		s.log.Info("schedule entry rejected", logging.KeyReason, err.Error())
		return model.ScheduleEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return model.ScheduleEntry{}, err
	}

	entry := model.ScheduleEntry{
		ID:          s.ids.Next(model.MaxScheduleID(entries)),
		Start:       start,
		End:         end,
		Description: description,
	}
	entries = append(entries, entry)
	if err := s.save(entries); err != nil {
		return model.ScheduleEntry{}, err
	}

	s.log.Debug("schedule entry added", logging.KeyID, entry.ID, logging.KeyCount, len(entries))
	return entry, nil
}

// Delete removes the entry with the given id. Unknown ids are ignored.
func (s *ScheduleStore) Delete(id int64) ([]model.ScheduleEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}

	if idx := model.FindEntry(entries, id); idx >= 0 {
		entries = append(entries[:idx], entries[idx+1:]...)
		s.log.Debug("schedule entry deleted", logging.KeyID, id)
	}

	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save sorts and persists the full collection.
func (s *ScheduleStore) Save(entries []model.ScheduleEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := make([]model.ScheduleEntry, len(entries))
	copy(sorted, entries)
	return s.save(sorted)
}

// CurrentFocus returns the index of the entry active at now.
func (s *ScheduleStore) CurrentFocus(entries []model.ScheduleEntry, now time.Time) (int, bool) {
	return model.CurrentFocus(entries, model.HHMMOf(now))
}

func (s *ScheduleStore) load() ([]model.ScheduleEntry, error) {
	raw, ok, err := s.kv.Get(model.KeySchedule)
	if err != nil {
		return nil, errors.StorageError("load schedule", err)
	}

	if ok {
		entries, err := model.DecodeSchedule(raw)
		if err != nil {
			s.log.Warn("discarding malformed schedule", logging.KeyError, err.Error())
		} else if len(entries) > 0 {
			model.SortSchedule(entries)
			return entries, nil
		}
	}

	seed := model.DefaultSchedule()
	if err := s.save(seed); err != nil {
		return nil, err
	}
	s.log.Info("seeded default schedule", logging.KeyCount, len(seed))
	return seed, nil
}

// save sorts entries in place and writes them.
func (s *ScheduleStore) save(entries []model.ScheduleEntry) error {
	model.SortSchedule(entries)
	raw, err := model.Encode(entries)
	if err != nil {
		return errors.StorageError("encode schedule", err)
	}
	if err := s.kv.Set(model.KeySchedule, raw); err != nil {
		return errors.StorageError("save schedule", err)
	}
	return nil
}
