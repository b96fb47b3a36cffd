package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Ishan-giri-05293/private-memory-vault/pkg/logger"
	"github.com/gofrs/flock"
)

// KVStore is a file-backed key-value store of string values. It mirrors the
// browser localStorage contract the vault frontend was built against: opaque
// string values under fixed keys, overwritten whole on every write. The
// mutex makes it safe to share across request and cron goroutines.
type KVStore struct {
	mu       sync.RWMutex
	filePath string
	flk      *flock.Flock
	values   map[string]string
}

// NewKVStore opens (or creates) the data file at path and loads its contents.
// A missing or unreadable file starts the store empty rather than failing.
func NewKVStore(path string) (*KVStore, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %v", dir, err)
		}
	}

	s := &KVStore{
		filePath: path,
		flk:      flock.New(path),
		values:   make(map[string]string),
	}

	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("failed to lock data file %s: %v", path, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.WithError(err).Warn("Failed to read data file, starting empty")
		}
		return s, nil
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		logger.Log.WithError(err).Warn("Data file is not valid JSON, starting empty")
		s.values = make(map[string]string)
	}
	return s, nil
}

// Get returns the value stored under key, or false if the key is absent.
func (s *KVStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key and immediately rewrites the whole data file.
func (s *KVStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return s.persist()
}

func (s *KVStore) persist() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store values: %v", err)
	}

	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock data file %s: %v", s.filePath, err)
	}
	defer func() { _ = s.flk.Unlock() }()

	if err := os.WriteFile(s.filePath, data, 0o644); err != nil {
		logger.Log.WithError(err).Error("Failed to write data file")
		return fmt.Errorf("failed to write data file: %v", err)
	}
	return nil
}
