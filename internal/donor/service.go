package donor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"hemobank/internal/audit"
	"hemobank/internal/platform/metrics"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/platform/sentinel"
)

// Store is the persistence gateway for donor records. Implementations exist
// for memory, PostgreSQL, and MongoDB; they return sentinel errors which the
// service translates into domain errors.
type Store interface {
	Insert(ctx context.Context, record Donor) error
	List(ctx context.Context) ([]Donor, error)
	FindByID(ctx context.Context, id string) (Donor, error)
	Delete(ctx context.Context, id string) error
}

// Service owns the donor record lifecycle: it is the authoritative
// validation boundary, assigns identity and timestamps, and is the only
// component that writes donor documents.
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
		return nil, errors.New("donor store is required")
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
// timestamps and writes the record. Validation failure never writes.
func (s *Service) Register(ctx context.Context, sub Submission) (*Donor, error) {
	record, err := Validate(sub)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err := s.store.Insert(ctx, record); err != nil {
		s.logger.ErrorContext(ctx, "failed to insert donor", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to store donor record")
	}

	s.metrics.IncDonorRegistered(string(record.BloodGroup))
	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionDonorRegistered,
		Subject: record.ID,
		Detail:  string(record.BloodGroup),
	})

	return &record, nil
}

// List returns all donor records, unfiltered and unpaginated.
func (s *Service) List(ctx context.Context) ([]Donor, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list donors", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to list donor records")
	}
	return records, nil
}

// Get fetches one donor by id.
func (s *Service) Get(ctx context.Context, id string) (*Donor, error) {
	record, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "donor not found")
		}
		s.logger.ErrorContext(ctx, "failed to fetch donor", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to fetch donor record")
	}
	return &record, nil
}

// Delete removes one donor by id. A missing id reports NotFound rather than
// silently succeeding.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "donor not found")
		}
		s.logger.ErrorContext(ctx, "failed to delete donor", "error", err)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to delete donor record")
	}

	s.metrics.IncDonorDeleted()
	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionDonorDeleted,
		Subject: id,
	})
	return nil
}
