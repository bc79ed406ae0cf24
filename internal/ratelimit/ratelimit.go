// Package ratelimit applies per-client request limits to the registration
// and auth endpoints using a sliding window.
package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of one limit check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Store counts requests per key over a sliding window. Implementations
// exist for memory and Redis.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error)
}
