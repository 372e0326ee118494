package storage

import (
	"strings"
	"sync"

	"github.com/manav03panchal/stardeck/internal/errors"
	"github.com/manav03panchal/stardeck/internal/model"
)

// NotesPad owns the free-text notes blob. Last write wins.
type NotesPad struct {
	mu sync.Mutex
	kv KeyValueStore
}

// NewNotesPad creates a notes pad.
func NewNotesPad(kv KeyValueStore) *NotesPad {
	return &NotesPad{kv: kv}
}

// Load returns the notes, or "" when none are stored.
func (n *NotesPad) Load() (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	raw, _, err := n.kv.Get(model.KeyNotes)
	if err != nil {
		return "", errors.StorageError("load notes", err)
	}
	return raw, nil
}

// Save replaces the notes. The text is stored exactly as given.
func (n *NotesPad) Save(text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.save(text)
}

// Append adds a line to the end of the notes.
func (n *NotesPad) Append(line string) (string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	raw, _, err := n.kv.Get(model.KeyNotes)
	if err != nil {
		return "", errors.StorageError("load notes", err)
	}
	if raw != "" && !strings.HasSuffix(raw, "\n") {
		raw += "\n"
	}
	raw += line
	if err := n.save(raw); err != nil {
		return "", err
	}
	return raw, nil
}

func (n *NotesPad) save(text string) error {
	if err := n.kv.Set(model.KeyNotes, text); err != nil {
		return errors.StorageError("save notes", err)
	}
	return nil
}
