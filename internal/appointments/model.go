package appointments

import (
	"strings"
	"time"

	"github.com/aryanmangrule402/docassist/internal/triage"
)

// Appointment statuses. Status is free-form in storage; these are the two
// values the booking workflow assigns.
const (
	StatusConfirmed = "Confirmed"
	StatusPending   = "Pending"
)

// Appointment is a booked consultation. Doctor name and clinic address are
// denormalized onto the row so history endpoints render without a join.
type Appointment struct {
	ID                 int64          `json:"id"`
	SymptomDescription string         `json:"symptom_description"`
	AISummary          string         `json:"ai_summary"`
	Urgency            triage.Urgency `json:"urgency"`
	DoctorID           int64          `json:"doctor_id"`
	PatientID          int64          `json:"patient_id"`
	DoctorName         string         `json:"doctor_name"`
	ClinicAddress      string         `json:"clinic_address"`
	AppointmentTime    time.Time      `json:"appointment_time"`
	Status             string         `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
}

// BookingRequest is the request body for POST /api/book. The doctor may not
// exist locally yet; the full descriptor allows find-or-create.
type BookingRequest struct {
	DoctorName         string         `json:"doctor_name"`
	HospitalName       string         `json:"hospital_name"`
	Specialty          string         `json:"specialty"`
	Address            string         `json:"address"`
	City               string         `json:"city"`
	GoogleMapsLink     string         `json:"google_maps_link"`
	PatientID          int64          `json:"patient_id"`
	SymptomDescription string         `json:"symptom_description"`
	AISummary          string         `json:"ai_summary"`
	Urgency            triage.Urgency `json:"urgency"`
}

// Validate checks the fields the workflow depends on.
func (r *BookingRequest) Validate() error {
	if r.PatientID == 0 {
		return ErrMissingPatientID
	}
	if strings.TrimSpace(r.DoctorName) == "" {
		return ErrMissingDoctorName
	}
	if !r.Urgency.Valid() {
		return ErrInvalidUrgency
	}
	return nil
}

// DemoCredentials is the plaintext doctor login returned to the booking
// caller. Exposing it is a deliberate product decision.
type DemoCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BookingResult is the response body for POST /api/book.
type BookingResult struct {
	Message         string          `json:"message"`
	Status          string          `json:"status"`
	Time            time.Time       `json:"time"`
	DoctorID        int64           `json:"doctor_id"`
	ID              int64           `json:"id"`
	DemoCredentials DemoCredentials `json:"demo_credentials"`
}

// PatientAppointment is one row of a patient's history, newest first.
type PatientAppointment struct {
	ID              int64          `json:"id"`
	DoctorName      string         `json:"doctor_name"`
	ClinicAddress   string         `json:"clinic_address"`
	Urgency         triage.Urgency `json:"urgency"`
	AppointmentTime time.Time      `json:"appointment_time"`
	Status          string         `json:"status"`
}

// DoctorAppointment is one row of a doctor's schedule, chronological, with
// the patient name joined in.
type DoctorAppointment struct {
	ID                 int64          `json:"id"`
	PatientName        string         `json:"patient_name"`
	SymptomDescription string         `json:"symptom_description"`
	AISummary          string         `json:"ai_summary"`
	Urgency            triage.Urgency `json:"urgency"`
	AppointmentTime    time.Time      `json:"appointment_time"`
	Status             string         `json:"status"`
}
