// Package store provides the donor store implementations.
package store

import (
	"context"
	"sync"

	"hemobank/internal/donor"
	"hemobank/pkg/platform/sentinel"
)

// InMemoryStore keeps donor records in a map with insertion order preserved
// for List. Intended for tests and the memory backend.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]donor.Donor
	order   []string
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]donor.Donor)}
}

func (s *InMemoryStore) Insert(_ context.Context, record donor.Donor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = record
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]donor.Donor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]donor.Donor, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.records[id])
	}
	return out, nil
}

func (s *InMemoryStore) FindByID(_ context.Context, id string) (donor.Donor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if record, ok := s.records[id]; ok {
		return record, nil
	}
	return donor.Donor{}, sentinel.ErrNotFound
}

func (s *InMemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.records, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
