package doctors

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

// PostgresRepository stores doctors in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("doctors: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row and returns it with the assigned id.
func (r *PostgresRepository) Create(ctx context.Context, doc *Doctor) (*Doctor, error) {
	query := `
		INSERT INTO doctors (name, specialty, hospital_name, address, city, rating, google_maps_link, username, password)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRow(ctx, query,
		doc.Name,
		doc.Specialty,
		doc.HospitalName,
		doc.Address,
		doc.City,
		doc.Rating,
		doc.GoogleMapsLink,
		doc.Username,
		doc.Password,
	).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("doctors: insert failed: %w", err)
	}

	stored := *doc
	stored.ID = id
	return &stored, nil
}

// GetByID fetches a doctor by primary key.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	row := r.db.QueryRow(ctx, selectColumns+` WHERE id = $1`, id)
	return scanDoctor(row)
}

// GetByUsername fetches a doctor by unique username.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*Doctor, error) {
	row := r.db.QueryRow(ctx, selectColumns+` WHERE username = $1`, username)
	return scanDoctor(row)
}

// FindByNameAndHospital fetches the exact (name, hospital_name) pair.
func (r *PostgresRepository) FindByNameAndHospital(ctx context.Context, name, hospitalName string) (*Doctor, error) {
	row := r.db.QueryRow(ctx, selectColumns+` WHERE name = $1 AND hospital_name = $2`, name, hospitalName)
	return scanDoctor(row)
}

// SearchByCityAndSpecialty returns doctors in the city whose specialty
// contains the given substring.
func (r *PostgresRepository) SearchByCityAndSpecialty(ctx context.Context, city, specialty string) ([]*Doctor, error) {
	query := selectColumns + ` WHERE city = $1 AND specialty LIKE '%' || $2 || '%' ORDER BY id`
	rows, err := r.db.Query(ctx, query, city, specialty)
	if err != nil {
		return nil, fmt.Errorf("doctors: search failed: %w", err)
	}
	defer rows.Close()

	var out []*Doctor
	for rows.Next() {
		var doc Doctor
		if err := rows.Scan(
			&doc.ID,
			&doc.Name,
			&doc.Specialty,
			&doc.HospitalName,
			&doc.Address,
			&doc.City,
			&doc.Rating,
			&doc.GoogleMapsLink,
			&doc.Username,
			&doc.Password,
		); err != nil {
			return nil, fmt.Errorf("doctors: scan failed: %w", err)
		}
		out = append(out, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("doctors: rows failed: %w", err)
	}
	return out, nil
}

const selectColumns = `
	SELECT id, name, specialty, hospital_name, address, city, rating, google_maps_link, username, password
	FROM doctors`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var doc Doctor
	if err := row.Scan(
		&doc.ID,
		&doc.Name,
		&doc.Specialty,
		&doc.HospitalName,
		&doc.Address,
		&doc.City,
		&doc.Rating,
		&doc.GoogleMapsLink,
		&doc.Username,
		&doc.Password,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDoctorNotFound
		}
		return nil, fmt.Errorf("doctors: select failed: %w", err)
	}
	return &doc, nil
}
