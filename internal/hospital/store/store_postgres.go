package store

import (
	"context"
	"database/sql"
	"fmt"

	"hemobank/internal/hospital"
)

// PostgresStore persists hospital records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the hospitals table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS hospitals (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			blood_group TEXT NOT NULL DEFAULT '',
			unit TEXT NOT NULL DEFAULT '',
			contact_person TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure hospitals schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, record hospital.Hospital) error {
	query := `
		INSERT INTO hospitals (
			id, name, email, phone, address, city, state,
			blood_group, unit, contact_person, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Email, record.Phone, record.Address,
		record.City, record.State, record.BloodGroup, record.Unit,
		record.ContactPerson, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert hospital: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]hospital.Hospital, error) {
	query := `
		SELECT id, name, email, phone, address, city, state,
		       blood_group, unit, contact_person, created_at, updated_at
		FROM hospitals
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	defer rows.Close()

	var records []hospital.Hospital
	for rows.Next() {
		var record hospital.Hospital
		err := rows.Scan(
			&record.ID, &record.Name, &record.Email, &record.Phone, &record.Address,
			&record.City, &record.State, &record.BloodGroup, &record.Unit,
			&record.ContactPerson, &record.CreatedAt, &record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan hospital: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list hospitals: %w", err)
	}
	return records, nil
}
