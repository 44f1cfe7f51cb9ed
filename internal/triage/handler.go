package triage

import (
	"encoding/json"
	"net/http"

	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// AnalyzeRequest is the request body for POST /api/analyze. City is accepted
// for forward compatibility but not fed into the prompt.
type AnalyzeRequest struct {
	Description string `json:"description"`
	City        string `json:"city"`
}

// Handler handles HTTP requests for symptom analysis
type Handler struct {
	analyzer *Analyzer
	logger   *logging.Logger
}

// NewHandler creates a new triage handler
func NewHandler(analyzer *Analyzer, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{analyzer: analyzer, logger: logger}
}

// Analyze handles POST /api/analyze requests. The response is always a
// well-formed classification, possibly the canned fallback.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode analyze request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.Description)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
