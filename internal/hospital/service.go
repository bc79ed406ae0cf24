package hospital

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hemobank/internal/audit"
	"hemobank/internal/platform/metrics"
	dErrors "hemobank/pkg/domain-errors"
)

// Store is the persistence gateway for hospital records. Hospitals only
// support insert and list-all.
type Store interface {
	Insert(ctx context.Context, record Hospital) error
	List(ctx context.Context) ([]Hospital, error)
}

// Service owns the hospital record lifecycle.
type Service struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor audit.Recorder

	now func() time.Time
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithAuditor(a audit.Recorder) Option {
	return func(s *Service) { s.auditor = a }
}

// WithClock overrides the timestamp source for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("hospital store is required")
	}
	svc := &Service{
		store:   store,
		logger:  slog.Default(),
		auditor: audit.NopRecorder{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Register validates the submission and, only on success, assigns an id and
// timestamps and writes the record.
func (s *Service) Register(ctx context.Context, sub Submission) (*Hospital, error) {
	record, err := Validate(sub)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.store.Insert(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert hospital", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to store hospital record")
	}

	s.metrics.IncHospitalRegistered()
	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionHospitalRegistered,
		Subject: record.ID,
		Detail:  record.City,
	})

	return &record, nil
}

// List returns all hospital records, unfiltered and unpaginated.
func (s *Service) List(ctx context.Context) ([]Hospital, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list hospitals", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list hospital records")
	}
	return records, nil
}
