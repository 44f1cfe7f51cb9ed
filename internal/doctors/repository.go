package doctors

import (
	"context"
	"strings"
	"sync"
)

// Repository defines the interface for doctor storage
type Repository interface {
	Create(ctx context.Context, doc *Doctor) (*Doctor, error)
	GetByID(ctx context.Context, id int64) (*Doctor, error)
	GetByUsername(ctx context.Context, username string) (*Doctor, error)
	FindByNameAndHospital(ctx context.Context, name, hospitalName string) (*Doctor, error)
	SearchByCityAndSpecialty(ctx context.Context, city, specialty string) ([]*Doctor, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory storage
type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	doctors map[int64]*Doctor
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:  1,
		doctors: make(map[int64]*Doctor),
	}
}

// Create stores a new doctor, enforcing username uniqueness.
func (r *InMemoryRepository) Create(ctx context.Context, doc *Doctor) (*Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range r.doctors {
		if d.Username == doc.Username {
			return nil, ErrUsernameTaken
		}
	}

	stored := *doc
	stored.ID = r.nextID
	r.nextID++
	r.doctors[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID retrieves a doctor by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.doctors[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	out := *doc
	return &out, nil
}

// GetByUsername retrieves a doctor by unique username.
func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.doctors {
		if d.Username == username {
			out := *d
			return &out, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// FindByNameAndHospital looks up the exact (name, hospital_name) pair used by
// the booking find-or-create step.
func (r *InMemoryRepository) FindByNameAndHospital(ctx context.Context, name, hospitalName string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.doctors {
		if d.Name == name && d.HospitalName == hospitalName {
			out := *d
			return &out, nil
		}
	}
	return nil, ErrDoctorNotFound
}

// SearchByCityAndSpecialty returns doctors in the city whose specialty
// contains the given substring.
func (r *InMemoryRepository) SearchByCityAndSpecialty(ctx context.Context, city, specialty string) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Doctor
	for _, d := range r.doctors {
		if d.City == city && strings.Contains(d.Specialty, specialty) {
			copied := *d
			out = append(out, &copied)
		}
	}
	return out, nil
}
