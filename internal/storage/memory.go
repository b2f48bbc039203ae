package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryKey struct {
	profile uuid.UUID
	key     string
}

// MemoryStore keeps blobs in process memory. Used by tests and by the
// "memory" storage driver.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[memoryKey]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[memoryKey]string)}
}

func (s *MemoryStore) Get(_ context.Context, profileID uuid.UUID, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.blobs[memoryKey{profileID, key}]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, profileID uuid.UUID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[memoryKey{profileID, key}] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, profileID uuid.UUID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, memoryKey{profileID, key})
	return nil
}
