package storage

import (
	"sort"
	"sync"
)

// KeyValueStore is the persistence capability the dashboard stores are
// built on. Durability and scope belong to the implementation.
type KeyValueStore interface {
	// Get returns the value for key; ok is false when nothing is stored.
	Get(key string) (value string, ok bool, err error)
	// Set stores value under key.
	Set(key, value string) error
}

// Deleter is implemented by backends that can remove keys.
type Deleter interface {
	Delete(key string) error
}

// MemStore is an in-memory KeyValueStore.
type MemStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string]string)}
}

// Get implements KeyValueStore.
func (m *MemStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KeyValueStore.
func (m *MemStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete implements Deleter.
func (m *MemStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Keys lists stored keys with the given prefix in sorted order.
func (m *MemStore) Keys(prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var keys []string
	for k := range m.data {
		if isNamespaced(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}
