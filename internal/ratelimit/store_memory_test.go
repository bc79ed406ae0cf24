package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowUpToLimit(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for i := range 3 {
		result, err := store.Allow(ctx, "k", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, 3-i-1, result.Remaining)
	}

	result, err := store.Allow(ctx, "k", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
}

func TestKeysAreIndependent(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	for range 3 {
		_, err := store.Allow(ctx, "a", 3, time.Minute)
		require.NoError(t, err)
	}

	result, err := store.Allow(ctx, "b", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestWindowSlides(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewInMemoryStore(WithClock(func() time.Time { return now }))
	ctx := context.Background()

	for range 3 {
		_, err := store.Allow(ctx, "k", 3, time.Minute)
		require.NoError(t, err)
	}
	result, err := store.Allow(ctx, "k", 3, time.Minute)
	require.NoError(t, err)
	require.False(t, result.Allowed)

	// Half the window elapses: original entries still count.
	now = now.Add(30 * time.Second)
	result, err = store.Allow(ctx, "k", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, result.Allowed)

	// Past the window: entries expire and the key admits requests again.
	now = now.Add(31 * time.Second)
	result, err = store.Allow(ctx, "k", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}
