package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hemobank/pkg/requestcontext"
)

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}

// Recorder is the write-side interface services depend on.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// Publisher hands events to a background worker over a bounded inbox so
// audit persistence never blocks the request path. A full inbox drops the
// event with a warning rather than stalling a registration.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger

	closeOnce sync.Once
}

// NewPublisher creates a Publisher with the given inbox capacity.
func NewPublisher(logger *slog.Logger, capacity int) *Publisher {
	if capacity <= 0 {
		capacity = 256
	}
	return &Publisher{
		inbox:  make(chan Event, capacity),
		logger: logger,
	}
}

// Record stamps and enqueues the event. The request id is pulled from the
// context when the caller did not set one.
func (p *Publisher) Record(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
	}
}

// Inbox exposes the receive side for the worker.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}

// Close stops accepting events. Safe to call more than once.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() { close(p.inbox) })
}

// NopRecorder discards events; used where auditing is not wired.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}
