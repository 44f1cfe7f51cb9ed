// Package auth implements plaintext registration and login for the two
// principal namespaces: patients (by email) and doctors (by username).
// No hashing and no sessions: a successful login returns the stored record
// and callers self-manage identity afterwards. This mirrors the product's
// demo security model and is not an oversight.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aryanmangrule402/docassist/internal/doctors"
	"github.com/aryanmangrule402/docassist/internal/patients"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// Handler handles HTTP requests for registration and login
type Handler struct {
	patients patients.Repository
	doctors  doctors.Repository
	logger   *logging.Logger
}

// NewHandler creates a new auth handler
func NewHandler(patientsRepo patients.Repository, doctorsRepo doctors.Repository, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{patients: patientsRepo, doctors: doctorsRepo, logger: logger}
}

// PatientLoginRequest is the request body for patient login.
type PatientLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DoctorLoginRequest is the request body for doctor login.
type DoctorLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterPatient handles POST /api/auth/patient/register requests.
func (h *Handler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req patients.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.patients.Create(r.Context(), &patients.Patient{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		City:     req.City,
		Age:      req.Age,
	})
	if err != nil {
		if errors.Is(err, patients.ErrEmailTaken) {
			http.Error(w, "Email already registered", http.StatusConflict)
			return
		}
		h.logger.Error("patient registration failed", "error", err)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}

	h.logger.Info("patient registered", "id", created.ID, "email", created.Email)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// LoginPatient handles POST /api/auth/patient/login requests. Exact
// case-sensitive match on email and plaintext password.
func (h *Handler) LoginPatient(w http.ResponseWriter, r *http.Request) {
	var req PatientLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	patient, err := h.patients.GetByEmail(r.Context(), req.Email)
	if err != nil || patient.Password != req.Password {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(patient)
}

// RegisterDoctor handles POST /api/auth/doctor/register requests.
func (h *Handler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req doctors.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.doctors.Create(r.Context(), &doctors.Doctor{
		Name:           req.Name,
		Specialty:      req.Specialty,
		HospitalName:   req.HospitalName,
		Address:        req.Address,
		City:           req.City,
		GoogleMapsLink: req.GoogleMapsLink,
		Username:       req.Username,
		Password:       req.Password,
	})
	if err != nil {
		if errors.Is(err, doctors.ErrUsernameTaken) {
			http.Error(w, "Username already registered", http.StatusConflict)
			return
		}
		h.logger.Error("doctor registration failed", "error", err)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}

	h.logger.Info("doctor registered", "id", created.ID, "username", created.Username)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// LoginDoctor handles POST /api/auth/doctor/login requests.
func (h *Handler) LoginDoctor(w http.ResponseWriter, r *http.Request) {
	var req DoctorLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	doctor, err := h.doctors.GetByUsername(r.Context(), req.Username)
	if err != nil || doctor.Password != req.Password {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doctor)
}
