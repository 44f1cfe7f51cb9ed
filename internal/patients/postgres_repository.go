package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// DB is the subset of pgxpool.Pool used by the repository. Satisfied by
// pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores patients in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("patients: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, p *Patient) (*Patient, error) {
	query := `
		INSERT INTO patients (name, email, password, city, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query, p.Name, p.Email, p.Password, p.City, p.Age).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("patients: insert failed: %w", err)
	}

	stored := *p
	stored.ID = id
	return &stored, nil
}

// GetByID fetches a patient by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Patient, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password, city, age FROM patients WHERE id = $1`, id)
	return scanPatient(row)
}

// GetByEmail fetches a patient by unique email.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*Patient, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password, city, age FROM patients WHERE email = $1`, email)
	return scanPatient(row)
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &p.Password, &p.City, &p.Age); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("patients: select failed: %w", err)
	}
	return &p, nil
}
