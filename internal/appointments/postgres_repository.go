package appointments

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool used by the repository. Satisfied by
// pgxmock pools in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores appointments in the relational database.
type PostgresRepository struct {
	db DB
}

// NewPostgresRepository initializes a repo backed by pgx.
func NewPostgresRepository(db DB) *PostgresRepository {
	if db == nil {
		panic("appointments: pgx pool required")
	}
	return &PostgresRepository{db: db}
}

// Create inserts a new row and returns it with the assigned id and created_at.
func (r *PostgresRepository) Create(ctx context.Context, appt *Appointment) (*Appointment, error) {
	query := `
		INSERT INTO appointments (symptom_description, ai_summary, urgency, doctor_id, patient_id,
			doctor_name, clinic_address, appointment_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	stored := *appt
	if err := r.db.QueryRow(ctx, query,
		appt.SymptomDescription,
		appt.AISummary,
		appt.Urgency,
		appt.DoctorID,
		appt.PatientID,
		appt.DoctorName,
		appt.ClinicAddress,
		appt.AppointmentTime,
		appt.Status,
	).Scan(&stored.ID, &stored.CreatedAt); err != nil {
		return nil, fmt.Errorf("appointments: insert failed: %w", err)
	}
	return &stored, nil
}

// ListByPatient returns the patient's appointments, newest first.
func (r *PostgresRepository) ListByPatient(ctx context.Context, patientID int64) ([]*PatientAppointment, error) {
	query := `
		SELECT id, doctor_name, clinic_address, urgency, appointment_time, status
		FROM appointments
		WHERE patient_id = $1
		ORDER BY appointment_time DESC
	`
	rows, err := r.db.Query(ctx, query, patientID)
	if err != nil {
		return nil, fmt.Errorf("appointments: list by patient failed: %w", err)
	}
	defer rows.Close()

	out := make([]*PatientAppointment, 0)
	for rows.Next() {
		var a PatientAppointment
		if err := rows.Scan(&a.ID, &a.DoctorName, &a.ClinicAddress, &a.Urgency, &a.AppointmentTime, &a.Status); err != nil {
			return nil, fmt.Errorf("appointments: scan failed: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: rows failed: %w", err)
	}
	return out, nil
}

// ListByDoctor returns the doctor's appointments in chronological order with
// the patient name joined in.
func (r *PostgresRepository) ListByDoctor(ctx context.Context, doctorID int64) ([]*DoctorAppointment, error) {
	query := `
		SELECT a.id, p.name, a.symptom_description, a.ai_summary, a.urgency, a.appointment_time, a.status
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		WHERE a.doctor_id = $1
		ORDER BY a.appointment_time
	`
	rows, err := r.db.Query(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("appointments: list by doctor failed: %w", err)
	}
	defer rows.Close()

	out := make([]*DoctorAppointment, 0)
	for rows.Next() {
		var a DoctorAppointment
		if err := rows.Scan(&a.ID, &a.PatientName, &a.SymptomDescription, &a.AISummary, &a.Urgency, &a.AppointmentTime, &a.Status); err != nil {
			return nil, fmt.Errorf("appointments: scan failed: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: rows failed: %w", err)
	}
	return out, nil
}

// Approve marks the appointment Confirmed. The update is idempotent.
func (r *PostgresRepository) Approve(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, StatusConfirmed, id)
	if err != nil {
		return fmt.Errorf("appointments: approve failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// Delete removes the appointment row.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("appointments: delete failed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}
