package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore persists one JSON file per key inside a data directory. It is the
// long-lived ("remember me") store of a profile.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates the data directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, out interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		zap.L().Warn("Discarding unreadable stored value",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("Failed to encode value", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := os.WriteFile(s.path(key), data, 0o660); err != nil {
		zap.L().Warn("Failed to write value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) Remove(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		zap.L().Warn("Failed to remove value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
