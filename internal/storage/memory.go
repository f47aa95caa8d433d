package storage

import (
	"encoding/json"
	"sync"
)

// MemoryStore keeps values for the lifetime of the process only. It is the
// tab-scoped counterpart of FileStore and backs sessions created without
// "remember me".
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string, out interface{}) bool {
	s.mu.RLock()
	data, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

func (s *MemoryStore) Set(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		return false
	}
	s.mu.Lock()
	s.values[key] = data
	s.mu.Unlock()
	return true
}

func (s *MemoryStore) Remove(key string) bool {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return true
}
