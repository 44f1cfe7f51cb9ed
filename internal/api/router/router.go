// Package router wires handlers and middleware into the API's chi router.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/aryanmangrule402/docassist/internal/appointments"
	"github.com/aryanmangrule402/docassist/internal/auth"
	"github.com/aryanmangrule402/docassist/internal/directory"
	httpmiddleware "github.com/aryanmangrule402/docassist/internal/http/middleware"
	"github.com/aryanmangrule402/docassist/internal/triage"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	TriageHandler       *triage.Handler
	DirectoryHandler    *directory.Handler
	AppointmentsHandler *appointments.Handler
	AuthHandler         *auth.Handler
	MetricsHandler      http.Handler
	CORSAllowedOrigins  []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.TriageHandler != nil {
			api.Post("/analyze", cfg.TriageHandler.Analyze)
		}
		if cfg.DirectoryHandler != nil {
			api.Get("/doctors/search", cfg.DirectoryHandler.SearchDoctors)
		}
		if cfg.AppointmentsHandler != nil {
			api.Post("/book", cfg.AppointmentsHandler.Book)
			api.Get("/patient/{id}/appointments", cfg.AppointmentsHandler.PatientAppointments)
			api.Get("/doctor/{id}/appointments", cfg.AppointmentsHandler.DoctorAppointments)
			api.Put("/appointment/{id}/approve", cfg.AppointmentsHandler.Approve)
			api.Delete("/appointment/{id}", cfg.AppointmentsHandler.Cancel)
		}
		if cfg.AuthHandler != nil {
			api.Route("/auth", func(r chi.Router) {
				r.Post("/patient/register", cfg.AuthHandler.RegisterPatient)
				r.Post("/patient/login", cfg.AuthHandler.LoginPatient)
				r.Post("/doctor/register", cfg.AuthHandler.RegisterDoctor)
				r.Post("/doctor/login", cfg.AuthHandler.LoginDoctor)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
