package doctors

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *PostgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock, NewPostgresRepository(mock)
}

func TestPostgresRepository_Create(t *testing.T) {
	mock, repo := newMockRepo(t)

	doc := sampleDoctor("dr_asha_101")
	mock.ExpectQuery("INSERT INTO doctors").
		WithArgs(doc.Name, doc.Specialty, doc.HospitalName, doc.Address, doc.City, doc.Rating, doc.GoogleMapsLink, doc.Username, doc.Password).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	created, err := repo.Create(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 7 {
		t.Errorf("expected id 7, got %d", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresRepository_CreateUniqueViolation(t *testing.T) {
	mock, repo := newMockRepo(t)

	doc := sampleDoctor("dr_asha_101")
	mock.ExpectQuery("INSERT INTO doctors").
		WithArgs(doc.Name, doc.Specialty, doc.HospitalName, doc.Address, doc.City, doc.Rating, doc.GoogleMapsLink, doc.Username, doc.Password).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "doctors_username_key"})

	_, err := repo.Create(context.Background(), doc)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestPostgresRepository_FindByNameAndHospital_NotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery("SELECT id, name, specialty").
		WithArgs("Dr. Asha Verma", "City Heart Institute").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := repo.FindByNameAndHospital(context.Background(), "Dr. Asha Verma", "City Heart Institute")
	if !errors.Is(err, ErrDoctorNotFound) {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestPostgresRepository_SearchByCityAndSpecialty(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows([]string{
		"id", "name", "specialty", "hospital_name", "address", "city",
		"rating", "google_maps_link", "username", "password",
	}).AddRow(
		int64(1), "Dr. Asha Verma", "Cardiologist", "City Heart Institute",
		"12 MG Road", "Pune", 4.5, "https://maps.example", "dr_asha_101", "123",
	)

	mock.ExpectQuery("SELECT id, name, specialty").
		WithArgs("Pune", "Cardio").
		WillReturnRows(rows)

	found, err := repo.SearchByCityAndSpecialty(context.Background(), "Pune", "Cardio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Username != "dr_asha_101" {
		t.Errorf("unexpected result: %+v", found)
	}
}
