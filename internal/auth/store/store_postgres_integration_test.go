//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hemobank/internal/auth"
	"hemobank/internal/auth/store"
	"hemobank/pkg/platform/sentinel"
	"hemobank/pkg/testutil/containers"
)

type PostgresUserStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresUserStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresUserStoreSuite))
}

func (s *PostgresUserStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresUserStoreSuite) SetupTest() {
	_, err := s.postgres.DB.Exec("TRUNCATE users")
	s.Require().NoError(err)
}

func integrationUser(email string) auth.User {
	return auth.User{
		ID:             uuid.NewString(),
		Email:          email,
		HashedPassword: "$2a$04$notarealhash",
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *PostgresUserStoreSuite) TestInsertAndFindByEmail() {
	ctx := context.Background()
	user := integrationUser("jane@x.com")

	s.Require().NoError(s.store.Insert(ctx, user))

	found, err := s.store.FindByEmail(ctx, "jane@x.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(user.HashedPassword, found.HashedPassword)
}

func (s *PostgresUserStoreSuite) TestDuplicateEmailConflicts() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, integrationUser("jane@x.com")))

	err := s.store.Insert(ctx, integrationUser("jane@x.com"))

	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *PostgresUserStoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "nobody@x.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
