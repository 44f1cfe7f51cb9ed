package appointments

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// Handler handles HTTP requests for booking and appointment lifecycle actions
type Handler struct {
	service *Service
	repo    Repository
	logger  *logging.Logger
}

// NewHandler creates a new appointments handler
func NewHandler(service *Service, repo Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, repo: repo, logger: logger}
}

// Book handles POST /api/book requests.
func (h *Handler) Book(w http.ResponseWriter, r *http.Request) {
	var req BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode booking request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Book(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrMissingPatientID) || errors.Is(err, ErrMissingDoctorName) || errors.Is(err, ErrInvalidUrgency) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("booking failed", "error", err)
		http.Error(w, "failed to book appointment", http.StatusInternalServerError)
		return
	}

	h.logger.Info("appointment booked",
		"id", result.ID,
		"doctor_id", result.DoctorID,
		"patient_id", req.PatientID,
		"status", result.Status,
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// PatientAppointments handles GET /api/patient/{id}/appointments requests.
func (h *Handler) PatientAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	history, err := h.repo.ListByPatient(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list patient appointments", "error", err, "patient_id", id)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

// DoctorAppointments handles GET /api/doctor/{id}/appointments requests.
func (h *Handler) DoctorAppointments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	schedule, err := h.repo.ListByDoctor(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to list doctor appointments", "error", err, "doctor_id", id)
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(schedule)
}

// Approve handles PUT /api/appointment/{id}/approve requests. Approving twice
// is fine; the status stays Confirmed.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Approve(r.Context(), id); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			http.Error(w, "Appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to approve appointment", "error", err, "id", id)
		http.Error(w, "failed to approve appointment", http.StatusInternalServerError)
		return
	}

	writeMessage(w, "Appointment Approved")
}

// Cancel handles DELETE /api/appointment/{id} requests.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrAppointmentNotFound) {
			http.Error(w, "Appointment not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to cancel appointment", "error", err, "id", id)
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}

	writeMessage(w, "Appointment Cancelled Successfully")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeMessage(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}
