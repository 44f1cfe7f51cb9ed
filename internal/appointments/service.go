package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aryanmangrule402/docassist/internal/doctors"
	"github.com/aryanmangrule402/docassist/internal/notify"
	"github.com/aryanmangrule402/docassist/internal/observability/metrics"
	"github.com/aryanmangrule402/docassist/internal/patients"
	"github.com/aryanmangrule402/docassist/internal/triage"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// bookingSlotOffset is the placeholder appointment slot: there is no
// availability logic, every booking lands two hours out.
const bookingSlotOffset = 2 * time.Hour

// autoCreatedRating is the rating given to doctors created during booking.
const autoCreatedRating = 4.5

// Service implements the booking workflow.
type Service struct {
	appointments Repository
	doctors      doctors.Repository
	patients     patients.Repository
	email        notify.EmailSender
	logger       *logging.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

// NewService creates a booking service. email may be nil; confirmation mail
// is then skipped.
func NewService(
	appts Repository,
	docs doctors.Repository,
	pats patients.Repository,
	email notify.EmailSender,
	logger *logging.Logger,
	m *metrics.Metrics,
) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{
		appointments: appts,
		doctors:      docs,
		patients:     pats,
		email:        email,
		logger:       logger,
		metrics:      m,
		now:          time.Now,
	}
}

// Book finds or creates the doctor, assigns the initial status from urgency,
// books the placeholder slot, and persists the appointment.
//
// The find-then-create step is not atomic: two concurrent bookings for the
// same unseen doctor can both miss the lookup and insert duplicate rows with
// different generated credentials. Known race, left as is.
func (s *Service) Book(ctx context.Context, req *BookingRequest) (*BookingResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.FindByNameAndHospital(ctx, req.DoctorName, req.HospitalName)
	if errors.Is(err, doctors.ErrDoctorNotFound) {
		username, password := doctors.GenerateCredentials(req.DoctorName)
		doctor, err = s.doctors.Create(ctx, &doctors.Doctor{
			Name:           req.DoctorName,
			Specialty:      req.Specialty,
			HospitalName:   req.HospitalName,
			Address:        req.Address,
			City:           req.City,
			Rating:         autoCreatedRating,
			GoogleMapsLink: req.GoogleMapsLink,
			Username:       username,
			Password:       password,
		})
		if err != nil {
			return nil, fmt.Errorf("appointments: create doctor: %w", err)
		}
		s.logger.Info("doctor auto-created during booking",
			"doctor_id", doctor.ID,
			"name", doctor.Name,
			"hospital", doctor.HospitalName,
		)
	} else if err != nil {
		return nil, fmt.Errorf("appointments: find doctor: %w", err)
	}

	status := StatusPending
	if req.Urgency == triage.UrgencyHigh {
		status = StatusConfirmed
	}
	slot := s.now().Add(bookingSlotOffset)

	appt, err := s.appointments.Create(ctx, &Appointment{
		SymptomDescription: req.SymptomDescription,
		AISummary:          req.AISummary,
		Urgency:            req.Urgency,
		DoctorID:           doctor.ID,
		PatientID:          req.PatientID,
		DoctorName:         doctor.Name,
		ClinicAddress:      doctor.Address,
		AppointmentTime:    slot,
		Status:             status,
	})
	if err != nil {
		return nil, fmt.Errorf("appointments: create appointment: %w", err)
	}

	s.metrics.ObserveBooking(status)
	s.sendConfirmation(ctx, req.PatientID, appt)

	return &BookingResult{
		Message:  "Success",
		Status:   status,
		Time:     slot,
		DoctorID: doctor.ID,
		ID:       appt.ID,
		DemoCredentials: DemoCredentials{
			Username: doctor.Username,
			Password: doctor.Password,
		},
	}, nil
}

// sendConfirmation mails the patient a booking summary. Best effort: lookup
// or delivery failures are logged and swallowed.
func (s *Service) sendConfirmation(ctx context.Context, patientID int64, appt *Appointment) {
	if s.email == nil || s.patients == nil {
		return
	}
	patient, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		s.logger.Warn("confirmation mail skipped", "error", err, "patient_id", patientID)
		return
	}
	msg := notify.EmailMessage{
		To:      patient.Email,
		Subject: "Your appointment with " + appt.DoctorName,
		Body: fmt.Sprintf("Hi %s,\n\nYour appointment with %s is %s for %s.\n",
			patient.Name, appt.DoctorName, appt.Status, appt.AppointmentTime.Format(time.RFC1123)),
	}
	if err := s.email.Send(ctx, msg); err != nil {
		s.logger.Warn("confirmation mail failed", "error", err, "patient_id", patientID)
	}
}
