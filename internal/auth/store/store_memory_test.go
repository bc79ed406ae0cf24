package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hemobank/internal/auth"
	"hemobank/pkg/platform/sentinel"
)

func newUser(email string) auth.User {
	return auth.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: "$2a$04$notarealhash",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestInsertAndFindByEmail(t *testing.T) {
	store := NewInMemoryStore()
	user := newUser("jane@x.com")

	require.NoError(t, store.Insert(context.Background(), user))

	found, err := store.FindByEmail(context.Background(), "jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestInsertDuplicateEmailConflicts(t *testing.T) {
	store := NewInMemoryStore()

	require.NoError(t, store.Insert(context.Background(), newUser("jane@x.com")))
	err := store.Insert(context.Background(), newUser("jane@x.com"))

	assert.ErrorIs(t, err, sentinel.ErrConflict)
}

func TestFindMissingEmailReturnsNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.FindByEmail(context.Background(), "nobody@x.com")

	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}
