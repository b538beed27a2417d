package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps the snapshot in process memory. It round-trips
// through JSON on save so callers cannot alias stored state. Used in
// tests and as a fallback when no backend is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshot  []byte
	saveCount int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(s.snapshot, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}

func (s *MemoryStore) Save(_ context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	s.mu.Lock()
	s.snapshot = raw
	s.saveCount++
	s.mu.Unlock()
	return nil
}

// SaveCount reports how many snapshots have been written.
func (s *MemoryStore) SaveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saveCount
}
