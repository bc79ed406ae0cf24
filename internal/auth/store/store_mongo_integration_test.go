//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"hemobank/internal/auth/store"
	"hemobank/pkg/platform/sentinel"
	"hemobank/pkg/testutil/containers"
)

type MongoUserStoreSuite struct {
	suite.Suite
	mongo *containers.MongoContainer
	store *store.MongoStore
}

func TestMongoUserStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(MongoUserStoreSuite))
}

func (s *MongoUserStoreSuite) SetupSuite() {
	s.mongo = containers.NewMongoContainer(s.T())
	s.store = store.NewMongoStore(s.mongo.Database("hemobank_test"))
}

func (s *MongoUserStoreSuite) SetupTest() {
	ctx := context.Background()
	err := s.mongo.Database("hemobank_test").Collection(store.UsersCollection).Drop(ctx)
	s.Require().NoError(err)
	// The unique index drops with the collection.
	s.Require().NoError(s.store.EnsureIndexes(ctx))
}

func (s *MongoUserStoreSuite) TestInsertAndFindByEmail() {
	ctx := context.Background()
	user := integrationUser("jane@x.com")

	s.Require().NoError(s.store.Insert(ctx, user))

	found, err := s.store.FindByEmail(ctx, "jane@x.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
}

func (s *MongoUserStoreSuite) TestDuplicateEmailConflicts() {
	ctx := context.Background()
	s.Require().NoError(s.store.Insert(ctx, integrationUser("jane@x.com")))

	err := s.store.Insert(ctx, integrationUser("jane@x.com"))

	s.Require().ErrorIs(err, sentinel.ErrConflict)
}

func (s *MongoUserStoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.store.FindByEmail(context.Background(), "nobody@x.com")
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
