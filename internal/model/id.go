package model

import (
	"sync"
	"time"
)

// IDSource hands out timestamp-derived ids. Ids are strictly increasing for
// the lifetime of the source even when the clock stalls or steps backwards.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDSource creates an id source reading the given clock. A nil clock uses
// time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns a new id greater than floor and greater than any id this
// source returned before.
func (s *IDSource) Next(floor int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	if id <= floor {
		id = floor + 1
	}
	s.last = id
	return id
}

// MaxScheduleID returns the largest id in entries, or 0.
func MaxScheduleID(entries []ScheduleEntry) int64 {
	var max int64
	for _, e := range entries {
		if e.ID > max {
			max = e.ID
		}
	}
	return max
}

// MaxTaskID returns the largest id in tasks, or 0.
func MaxTaskID(tasks []Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}
