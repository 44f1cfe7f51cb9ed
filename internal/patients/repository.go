package patients

import (
	"context"
	"sync"
)

// Repository defines the interface for patient storage
type Repository interface {
	Create(ctx context.Context, p *Patient) (*Patient, error)
	GetByID(ctx context.Context, id int64) (*Patient, error)
	GetByEmail(ctx context.Context, email string) (*Patient, error)
}

// InMemoryRepository is a stub implementation of Repository using in-memory storage
type InMemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	patients map[int64]*Patient
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:   1,
		patients: make(map[int64]*Patient),
	}
}

// Create stores a new patient, enforcing email uniqueness.
func (r *InMemoryRepository) Create(ctx context.Context, p *Patient) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.patients {
		if existing.Email == p.Email {
			return nil, ErrEmailTaken
		}
	}

	stored := *p
	stored.ID = r.nextID
	r.nextID++
	r.patients[stored.ID] = &stored

	out := stored
	return &out, nil
}

// GetByID retrieves a patient by ID
func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	out := *p
	return &out, nil
}

// GetByEmail retrieves a patient by unique email.
func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patients {
		if p.Email == email {
			out := *p
			return &out, nil
		}
	}
	return nil, ErrPatientNotFound
}
