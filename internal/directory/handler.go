package directory

import (
	"encoding/json"
	"net/http"

	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// Handler handles HTTP requests for doctor discovery
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a new discovery handler
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

// SearchDoctors handles GET /api/doctors/search?specialty=&city=&query= requests.
func (h *Handler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	city := r.URL.Query().Get("city")
	query := r.URL.Query().Get("query")

	if specialty == "" || city == "" {
		http.Error(w, "specialty and city are required", http.StatusBadRequest)
		return
	}

	results, err := h.service.Search(r.Context(), specialty, city, query)
	if err != nil {
		h.logger.Error("doctor search failed", "error", err, "specialty", specialty, "city", city)
		http.Error(w, "failed to search doctors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
}
