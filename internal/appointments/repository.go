package appointments

import (
	"context"
	"sort"
	"sync"

	"github.com/aryanmangrule402/docassist/internal/patients"
)

// Repository defines the interface for appointment storage
type Repository interface {
	Create(ctx context.Context, appt *Appointment) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error)
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// InMemoryRepository is a stub implementation of Repository using in-memory
// storage. The patients repo is consulted for the doctor-schedule join.
type InMemoryRepository struct {
	mu           sync.RWMutex
	nextID       int64
	appointments map[int64]*Appointment
	patients     patients.Repository
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository(patientsRepo patients.Repository) *InMemoryRepository {
	return &InMemoryRepository{
		nextID:       1,
		appointments: make(map[int64]*Appointment),
		patients:     patientsRepo,
	}
}

// Create stores a new appointment.
func (r *InMemoryRepository) Create(ctx context.Context, appt *Appointment) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *appt
	stored.ID = r.nextID
	r.nextID++
	r.appointments[stored.ID] = &stored

	out := stored
	return &out, nil
}

// ListByPatient returns the patient's appointments, newest first.
func (r *InMemoryRepository) ListByPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*PatientAppointment, 0)
	for _, a := range r.appointments {
		if a.PatientID != patientID {
			continue
		}
		out = append(out, &PatientAppointment{
			ID:              a.ID,
			DoctorName:      a.DoctorName,
			ClinicAddress:   a.ClinicAddress,
			Urgency:         a.Urgency,
			AppointmentTime: a.AppointmentTime,
			Status:          a.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentTime.After(out[j].AppointmentTime)
	})
	return out, nil
}

// ListByDoctor returns the doctor's appointments in chronological order with
// the patient name joined in.
func (r *InMemoryRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*DoctorAppointment, 0)
	for _, a := range r.appointments {
		if a.DoctorID != doctorID {
			continue
		}
		patientName := ""
		if r.patients != nil {
			if p, err := r.patients.GetByID(ctx, a.PatientID); err == nil {
				patientName = p.Name
			}
		}
		out = append(out, &DoctorAppointment{
			ID:                 a.ID,
			PatientName:        patientName,
			SymptomDescription: a.SymptomDescription,
			AISummary:          a.AISummary,
			Urgency:            a.Urgency,
			AppointmentTime:    a.AppointmentTime,
			Status:             a.Status,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentTime.Before(out[j].AppointmentTime)
	})
	return out, nil
}

// Approve marks the appointment Confirmed. Approving an already confirmed
// appointment succeeds again.
func (r *InMemoryRepository) Approve(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return ErrAppointmentNotFound
	}
	a.Status = StatusConfirmed
	return nil
}

// Delete removes the appointment row.
func (r *InMemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}
