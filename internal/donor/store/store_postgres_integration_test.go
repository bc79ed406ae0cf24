//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hemobank/internal/donor"
	"hemobank/internal/donor/store"
	"hemobank/pkg/platform/sentinel"
	"hemobank/pkg/testutil/containers"
)

type PostgresDonorStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresDonorStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresDonorStoreSuite))
}

func (s *PostgresDonorStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresDonorStoreSuite) SetupTest() {
	_, err := s.postgres.DB.Exec("TRUNCATE donors")
	s.Require().NoError(err)
}

func integrationRecord() donor.Donor {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return donor.Donor{
		ID:              uuid.NewString(),
		Name:            "Jane Doe",
		Age:             30,
		Gender:          donor.GenderFemale,
		BloodGroup:      donor.ONegative,
		Phone:           "9876543210",
		Email:           "jane@x.com",
		Address:         "1 Main St",
		City:            "Metropolis",
		State:           "NY",
		AgeConfirmation: true,
		MedicalQuestions: donor.MedicalQuestions{
			Diabetes:   true,
			Medication: true,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *PostgresDonorStoreSuite) TestInsertAndFindRoundTrip() {
	ctx := context.Background()
	record := integrationRecord()

	s.Require().NoError(s.store.Insert(ctx, record))

	found, err := s.store.FindByID(ctx, record.ID)
	s.Require().NoError(err)
	s.Equal(record.ID, found.ID)
	s.Equal(record.BloodGroup, found.BloodGroup)
	s.Equal(record.MedicalQuestions, found.MedicalQuestions)
	s.True(record.CreatedAt.Equal(found.CreatedAt))
}

func (s *PostgresDonorStoreSuite) TestListOrdersByCreation() {
	ctx := context.Background()
	first := integrationRecord()
	second := integrationRecord()
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	s.Require().NoError(s.store.Insert(ctx, second))
	s.Require().NoError(s.store.Insert(ctx, first))

	records, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(first.ID, records[0].ID)
	s.Equal(second.ID, records[1].ID)
}

func (s *PostgresDonorStoreSuite) TestDeleteMissingReturnsNotFound() {
	err := s.store.Delete(context.Background(), uuid.NewString())
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresDonorStoreSuite) TestDeleteRemovesRecord() {
	ctx := context.Background()
	record := integrationRecord()
	s.Require().NoError(s.store.Insert(ctx, record))

	s.Require().NoError(s.store.Delete(ctx, record.ID))

	_, err := s.store.FindByID(ctx, record.ID)
	s.Require().ErrorIs(err, sentinel.ErrNotFound)
}
