package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hemobank/internal/audit"
	"hemobank/internal/platform/metrics"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/email"
	"hemobank/pkg/platform/sentinel"
)

// Store is the persistence gateway for user accounts. Insert returns
// sentinel.ErrConflict when the email is already registered.
type Store interface {
	Insert(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
}

// Service owns the account lifecycle.
type Service struct {
	store      Store
	logger     *slog.Logger
	metrics    *metrics.Metrics
	auditor    audit.Recorder
	bcryptCost int

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

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost to
// keep the suite fast.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.bcryptCost = cost
		}
	}
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
		return nil, errors.New("auth store is required")
	}
	svc := &Service{
		store:      store,
		logger:     slog.Default(),
		auditor:    audit.NopRecorder{},
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func validateCredentials(creds Credentials) error {
	var fields []dErrors.FieldError
	if !govalidator.IsEmail(creds.Email) {
		fields = append(fields, dErrors.FieldError{Field: "email", Message: "invalid email address"})
	}
	if creds.Password == "" {
		fields = append(fields, dErrors.FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return dErrors.Validation(fields)
	}
	return nil
}

// Signup registers a new account. A duplicate email fails with a conflict
// error; the password is hashed before anything touches the store.
func (s *Service) Signup(ctx context.Context, creds Credentials) (*User, error) {
	if err := validateCredentials(creds); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.bcryptCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	user := User{
		ID:             uuid.NewString(),
		Email:          email.Normalize(creds.Email),
		HashedPassword: string(hash),
		CreatedAt:      s.now().UTC(),
	}

	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "User already exists")
		}
		s.logger.ErrorContext(ctx, "failed to insert user", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to create user")
	}

	s.metrics.IncUsersCreated()
	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionUserCreated,
		Subject: user.Email,
	})

	return &user, nil
}

// Login verifies a password against the stored hash. Both an unknown email
// and a wrong password produce the same error so callers cannot enumerate
// registered accounts.
func (s *Service) Login(ctx context.Context, creds Credentials) (*User, error) {
	addr := email.Normalize(creds.Email)

	user, err := s.store.FindByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, s.loginFailed(ctx, addr)
		}
		s.logger.ErrorContext(ctx, "failed to fetch user", "error", err)
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to verify credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(creds.Password)); err != nil {
		return nil, s.loginFailed(ctx, addr)
	}

	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionLoginSucceeded,
		Subject: user.Email,
	})
	return &user, nil
}

func (s *Service) loginFailed(ctx context.Context, addr string) error {
	s.metrics.IncLoginFailure()
	s.auditor.Record(ctx, audit.Event{
		Action:  audit.ActionLoginFailed,
		Subject: addr,
	})
	return dErrors.New(dErrors.CodeUnauthorized, "Invalid Credentials")
}
