package patients

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func samplePatient(email string) *Patient {
	return &Patient{
		Name:     "Ravi Kumar",
		Email:    email,
		Password: "secret",
		City:     "Pune",
		Age:      34,
	}
}

func TestInMemoryRepository_Create(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, samplePatient("ravi@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected assigned id")
	}
}

func TestInMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, samplePatient("ravi@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := samplePatient("ravi@example.com")
	other.Name = "Someone Else"
	other.Age = 60
	if _, err := repo.Create(ctx, other); err != ErrEmailTaken {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestInMemoryRepository_GetByEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, samplePatient("ravi@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.GetByEmail(ctx, "ravi@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}

	if _, err := repo.GetByEmail(ctx, "missing@example.com"); err != ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPostgresRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	p := samplePatient("ravi@example.com")

	mock.ExpectQuery("INSERT INTO patients").
		WithArgs(p.Name, p.Email, p.Password, p.City, p.Age).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	created, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected id 3, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_CreateDuplicate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	p := samplePatient("ravi@example.com")

	mock.ExpectQuery("INSERT INTO patients").
		WithArgs(p.Name, p.Email, p.Password, p.City, p.Age).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "patients_email_key"})

	if _, err := repo.Create(context.Background(), p); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestPostgresRepository_GetByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)

	mock.ExpectQuery("SELECT id, name, email").
		WithArgs("missing@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	if _, err := repo.GetByEmail(context.Background(), "missing@example.com"); !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}
