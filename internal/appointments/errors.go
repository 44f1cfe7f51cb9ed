package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrMissingPatientID is returned when a booking omits the patient id.
	ErrMissingPatientID = errors.New("patient_id is required")

	// ErrMissingDoctorName is returned when a booking omits the doctor name.
	ErrMissingDoctorName = errors.New("doctor_name is required")

	// ErrInvalidUrgency is returned when the urgency is not High, Medium, or Low.
	ErrInvalidUrgency = errors.New("urgency must be High, Medium, or Low")
)
