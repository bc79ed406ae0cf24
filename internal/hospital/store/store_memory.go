// Package store provides the hospital store implementations.
package store

import (
	"context"
	"sync"

	"hemobank/internal/hospital"
)

// InMemoryStore keeps hospital records in insertion order. Intended for
// tests and the memory backend.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []hospital.Hospital
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Insert(_ context.Context, record hospital.Hospital) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, record)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]hospital.Hospital, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]hospital.Hospital, len(s.records))
	copy(out, s.records)
	return out, nil
}
