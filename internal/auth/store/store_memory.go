// Package store provides the user account store implementations.
package store

import (
	"context"
	"sync"

	"hemobank/internal/auth"
	"hemobank/pkg/platform/sentinel"
)

// InMemoryStore keeps accounts keyed by email. Intended for tests and the
// memory backend.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[string]auth.User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[string]auth.User)}
}

func (s *InMemoryStore) Insert(_ context.Context, user auth.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.Email]; exists {
		return sentinel.ErrConflict
	}
	s.users[user.Email] = user
	return nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (auth.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if user, ok := s.users[email]; ok {
		return user, nil
	}
	return auth.User{}, sentinel.ErrNotFound
}
