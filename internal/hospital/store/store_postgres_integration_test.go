//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"hemobank/internal/hospital"
	"hemobank/internal/hospital/store"
	"hemobank/pkg/testutil/containers"
)

type PostgresHospitalStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresHospitalStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresHospitalStoreSuite))
}

func (s *PostgresHospitalStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.EnsureSchema(context.Background()))
}

func (s *PostgresHospitalStoreSuite) SetupTest() {
	_, err := s.postgres.DB.Exec("TRUNCATE hospitals")
	s.Require().NoError(err)
}

func integrationHospital(name string) hospital.Hospital {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return hospital.Hospital{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         "admin@citygeneral.org",
		Phone:         "5551234567",
		Address:       "42 Health Ave",
		City:          "Metropolis",
		State:         "NY",
		BloodGroup:    "O+",
		Unit:          "3",
		ContactPerson: "Dr. Smith",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (s *PostgresHospitalStoreSuite) TestInsertAndListRoundTrip() {
	ctx := context.Background()
	record := integrationHospital("City General Hospital")

	s.Require().NoError(s.store.Insert(ctx, record))

	records, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(record.ID, records[0].ID)
	s.Equal(record.BloodGroup, records[0].BloodGroup)
	s.Equal(record.ContactPerson, records[0].ContactPerson)
}

func (s *PostgresHospitalStoreSuite) TestListOrdersByCreation() {
	ctx := context.Background()
	first := integrationHospital("First Hospital")
	second := integrationHospital("Second Hospital")
	second.CreatedAt = first.CreatedAt.Add(time.Second)

	s.Require().NoError(s.store.Insert(ctx, second))
	s.Require().NoError(s.store.Insert(ctx, first))

	records, err := s.store.List(ctx)
	s.Require().NoError(err)
	s.Require().Len(records, 2)
	s.Equal(first.ID, records[0].ID)
	s.Equal(second.ID, records[1].ID)
}
