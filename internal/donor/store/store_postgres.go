package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hemobank/internal/donor"
	"hemobank/pkg/platform/sentinel"
)

// PostgresStore persists donor records in PostgreSQL. The screening flags
// are kept as a JSONB document so the row mirrors the stored record shape.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the donors table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS donors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			age INT NOT NULL,
			gender TEXT NOT NULL,
			blood_group TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			address TEXT NOT NULL,
			city TEXT NOT NULL,
			state TEXT NOT NULL,
			age_confirmation BOOLEAN NOT NULL,
			medical_questions JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("ensure donors schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, record donor.Donor) error {
	questions, err := json.Marshal(record.MedicalQuestions)
	if err != nil {
		return fmt.Errorf("marshal medical questions: %w", err)
	}

	query := `
		INSERT INTO donors (
			id, name, age, gender, blood_group, phone, email,
			address, city, state, age_confirmation, medical_questions,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = s.db.ExecContext(ctx, query,
		record.ID, record.Name, record.Age, record.Gender, record.BloodGroup,
		record.Phone, record.Email, record.Address, record.City, record.State,
		record.AgeConfirmation, questions, record.CreatedAt, record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert donor: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]donor.Donor, error) {
	rows, err := s.db.QueryContext(ctx, selectDonor+` ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	defer rows.Close()

	var records []donor.Donor
	for rows.Next() {
		record, err := scanDonor(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donors: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (donor.Donor, error) {
	row := s.db.QueryRowContext(ctx, selectDonor+` WHERE id = $1`, id)
	record, err := scanDonor(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return donor.Donor{}, sentinel.ErrNotFound
		}
		return donor.Donor{}, err
	}
	return record, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM donors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete donor: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete donor: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

const selectDonor = `
	SELECT id, name, age, gender, blood_group, phone, email,
	       address, city, state, age_confirmation, medical_questions,
	       created_at, updated_at
	FROM donors`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDonor(row rowScanner) (donor.Donor, error) {
	var record donor.Donor
	var questions []byte
	err := row.Scan(
		&record.ID, &record.Name, &record.Age, &record.Gender, &record.BloodGroup,
		&record.Phone, &record.Email, &record.Address, &record.City, &record.State,
		&record.AgeConfirmation, &questions, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return donor.Donor{}, err
		}
		return donor.Donor{}, fmt.Errorf("scan donor: %w", err)
	}
	if err := json.Unmarshal(questions, &record.MedicalQuestions); err != nil {
		return donor.Donor{}, fmt.Errorf("unmarshal medical questions: %w", err)
	}
	return record, nil
}
