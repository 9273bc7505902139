package storage

import (
	"sort"
	"strings"
	"sync"
)

// MemStore is an in-memory Store backed by a plain map, used by tests and
// by the debugger CLI's scratch sessions where nothing needs to survive
// the process.
type MemStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]byte)}
}

// Get implements the Store interface.
func (s *MemStore) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements the Store interface.
func (s *MemStore) Put(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.data[string(key)] = v
	return nil
}

// Delete implements the Store interface.
func (s *MemStore) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, string(key))
	return nil
}

// Seek implements the Store interface.
func (s *MemStore) Seek(prefix []byte, f func(k, v []byte) bool) error {
	s.mu.RLock()
	keys := make([]string, 0, len(s.data))
	p := string(prefix)
	for k := range s.data {
		if strings.HasPrefix(k, p) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	type kv struct{ k, v []byte }
	snapshot := make([]kv, 0, len(keys))
	for _, k := range keys {
		snapshot = append(snapshot, kv{k: []byte(k)[len(prefix):], v: s.data[k]})
	}
	s.mu.RUnlock()

	for _, e := range snapshot {
		if !f(e.k, e.v) {
			break
		}
	}
	return nil
}

// Close implements the Store interface; a no-op for MemStore.
func (s *MemStore) Close() error { return nil }
