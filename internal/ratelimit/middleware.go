package ratelimit

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"hemobank/internal/audit"
	"hemobank/internal/platform/metrics"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/platform/httputil"
	"hemobank/pkg/requestcontext"
)

// Middleware limits requests per client IP on the routes it wraps.
type Middleware struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor audit.Recorder

	limit  int
	window time.Duration
}

// Option configures a Middleware.
type Option func(*Middleware)

func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) { mw.metrics = m }
}

func WithAuditor(a audit.Recorder) Option {
	return func(mw *Middleware) { mw.auditor = a }
}

func NewMiddleware(store Store, limit int, window time.Duration, logger *slog.Logger, opts ...Option) *Middleware {
	mw := &Middleware{
		store:   store,
		logger:  logger,
		auditor: audit.NopRecorder{},
		limit:   limit,
		window:  window,
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}

// Limit wraps a handler with a per-IP sliding window named by route. A store
// failure fails open: an unreachable limiter must not take the API down.
func (mw *Middleware) Limit(route string) func(http.Handler) http.Handler {
	return mw.limitRoute(route, false)
}

// LimitWrites is Limit restricted to mutating methods; GET and HEAD pass
// through uncounted.
func (mw *Middleware) LimitWrites(route string) func(http.Handler) http.Handler {
	return mw.limitRoute(route, true)
}

func (mw *Middleware) limitRoute(route string, writesOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if writesOnly && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := route + ":" + requestcontext.ClientIP(ctx)

			result, err := mw.store.Allow(ctx, key, mw.limit, mw.window)
			if err != nil {
				mw.logger.ErrorContext(ctx, "rate limit check failed", "route", route, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed {
				mw.metrics.IncRateLimited(route)
				mw.auditor.Record(ctx, audit.Event{
					Action:  audit.ActionRateLimited,
					Subject: requestcontext.ClientIP(ctx),
					Detail:  route,
				})
				retryAfter := int(time.Until(result.ResetAt).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				httputil.WriteError(w, dErrors.New(dErrors.CodeTooManyRequests, "too many requests, please try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
