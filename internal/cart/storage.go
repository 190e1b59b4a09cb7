package cart

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound reports that no cart record exists under a storage key.
// Stores treat it as "empty cart", never as a failure.
var ErrNotFound = errors.New("cart record not found")

// Storage persists one serialized cart per key. Writes fully replace the
// previous record (last write wins); there is no merging and no locking
// across processes.
type Storage interface {
	// Load returns the record stored under key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the record stored under key.
	Save(ctx context.Context, key string, data []byte) error
}

// MemoryStorage is an in-process Storage used for development and tests.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{records: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStorage) Save(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.records[key] = stored
	return nil
}
