package doctors

import (
	"context"
	"testing"
)

func sampleDoctor(username string) *Doctor {
	return &Doctor{
		Name:           "Dr. Asha Verma",
		Specialty:      "Cardiologist",
		HospitalName:   "City Heart Institute",
		Address:        "12 MG Road",
		City:           "Pune",
		Rating:         4.5,
		GoogleMapsLink: "https://www.google.com/maps/search/?api=1&query=City+Heart+Institute",
		Username:       username,
		Password:       "123",
	}
}

func TestInMemoryRepository_CreateAssignsIDs(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, sampleDoctor("dr_asha_101"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.Create(ctx, sampleDoctor("dr_asha_102"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Fatal("expected assigned ids")
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both %d", first.ID)
	}
}

func TestInMemoryRepository_CreateDuplicateUsername(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleDoctor("dr_asha_101")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Create(ctx, sampleDoctor("dr_asha_101")); err != ErrUsernameTaken {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestInMemoryRepository_FindByNameAndHospital(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleDoctor("dr_asha_101"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByNameAndHospital(ctx, "Dr. Asha Verma", "City Heart Institute")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected id %d, got %d", created.ID, found.ID)
	}

	if _, err := repo.FindByNameAndHospital(ctx, "Dr. Asha Verma", "Other Clinic"); err != ErrDoctorNotFound {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestInMemoryRepository_SearchByCityAndSpecialty(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	cardio := sampleDoctor("dr_asha_101")
	if _, err := repo.Create(ctx, cardio); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	derm := sampleDoctor("dr_meera_202")
	derm.Name = "Dr. Meera Shah"
	derm.Specialty = "Dermatologist"
	if _, err := repo.Create(ctx, derm); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outOfTown := sampleDoctor("dr_ravi_303")
	outOfTown.Name = "Dr. Ravi Nair"
	outOfTown.City = "Mumbai"
	if _, err := repo.Create(ctx, outOfTown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.SearchByCityAndSpecialty(ctx, "Pune", "Cardio")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 1 || found[0].Specialty != "Cardiologist" {
		t.Errorf("expected one Pune cardiologist, got %v", found)
	}
}

func TestInMemoryRepository_GetByUsername(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleDoctor("dr_asha_101")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := repo.GetByUsername(ctx, "dr_asha_101")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Dr. Asha Verma" {
		t.Errorf("unexpected doctor: %+v", doc)
	}

	if _, err := repo.GetByUsername(ctx, "dr_unknown_000"); err != ErrDoctorNotFound {
		t.Errorf("expected ErrDoctorNotFound, got %v", err)
	}
}
