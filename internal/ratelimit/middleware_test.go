package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hemobank/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(context.Context, string, int, time.Duration) (*Result, error) {
	return nil, errors.New("connection refused")
}

func limitedHandler(t *testing.T, store Store, limit int) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewMiddleware(store, limit, time.Minute, logger)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mw.Limit("test")(next)
}

func doRequest(handler http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(requestcontext.WithClientIP(req.Context(), ip))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestLimitReturns429PastThreshold(t *testing.T) {
	handler := limitedHandler(t, NewInMemoryStore(), 2)

	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)

	rr := doRequest(handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too_many_requests","error_description":"too many requests, please try again later"}`, rr.Body.String())
}

func TestLimitIsPerClient(t *testing.T) {
	handler := limitedHandler(t, NewInMemoryStore(), 1)

	require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
	require.Equal(t, http.StatusTooManyRequests, doRequest(handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.2").Code)
}

func TestLimitSetsRateHeaders(t *testing.T) {
	handler := limitedHandler(t, NewInMemoryStore(), 2)

	rr := doRequest(handler, "10.0.0.1")
	assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", rr.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rr.Header().Get("X-RateLimit-Reset"))
}

func TestLimitWritesIgnoresReads(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mw := NewMiddleware(NewInMemoryStore(), 1, time.Minute, logger)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.LimitWrites("test")(next)

	for range 5 {
		require.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
	}

	post := httptest.NewRequest(http.MethodPost, "/", nil)
	post = post.WithContext(requestcontext.WithClientIP(post.Context(), "10.0.0.1"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, post)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	post2 := httptest.NewRequest(http.MethodPost, "/", nil)
	post2 = post2.WithContext(requestcontext.WithClientIP(post2.Context(), "10.0.0.1"))
	handler.ServeHTTP(rr, post2)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestLimitFailsOpenOnStoreError(t *testing.T) {
	handler := limitedHandler(t, failingStore{}, 1)

	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doRequest(handler, "10.0.0.1").Code)
}
