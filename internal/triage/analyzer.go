package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/aryanmangrule402/docassist/internal/observability/metrics"
	"github.com/aryanmangrule402/docassist/pkg/logging"
)

// Urgency is the ordinal triage level assigned by the classifier.
type Urgency string

const (
	UrgencyHigh   Urgency = "High"
	UrgencyMedium Urgency = "Medium"
	UrgencyLow    Urgency = "Low"
)

// Valid reports whether the urgency is one of the three known levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

// Analysis is the structured classification returned to callers.
type Analysis struct {
	Summary               string  `json:"summary"`
	Urgency               Urgency `json:"urgency"`
	RecommendedSpecialist string  `json:"recommended_specialist"`
	Reasoning             string  `json:"reasoning"`
	CareAdvice            string  `json:"care_advice"`
}

// fallbackAnalysis is returned whenever the upstream model call fails or the
// response cannot be parsed. Callers always receive a well-formed result.
var fallbackAnalysis = Analysis{
	Summary:               "Consultation required.",
	Urgency:               UrgencyMedium,
	RecommendedSpecialist: "General Physician",
	Reasoning:             "Error",
	CareAdvice:            "Visit a doctor.",
}

// The prompt asks for disease_keywords too; the consumed schema dropped the
// field and only the five below are parsed.
const analysisPrompt = `
Analyze symptoms: "%s".
Map to one clear medical specialty.

Output RAW JSON:
{
  "summary": "Brief clinical summary",
  "urgency": "High/Medium/Low",
  "recommended_specialist": "...",
  "reasoning": "Why you chose this",
  "care_advice": "Home care steps",
  "disease_keywords": ["keyword1", "keyword2"]
}
`

var fenceMarkers = regexp.MustCompile("```(?:json)?\\s*")

// Analyzer maps free-text symptom descriptions to a specialty via the LLM.
type Analyzer struct {
	client  LLMClient
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewAnalyzer creates an analyzer backed by the given LLM client.
func NewAnalyzer(client LLMClient, logger *logging.Logger, m *metrics.Metrics) *Analyzer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Analyzer{client: client, logger: logger, metrics: m}
}

// Analyze classifies the description. It never returns an error: any upstream
// or parse failure yields the fixed fallback result. One attempt, no retry.
func (a *Analyzer) Analyze(ctx context.Context, description string) Analysis {
	prompt := fmt.Sprintf(analysisPrompt, description)

	raw, err := a.client.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("symptom analysis failed", "error", err)
		a.metrics.ObserveTriage("fallback")
		return fallbackAnalysis
	}

	result, err := parseAnalysis(raw)
	if err != nil {
		a.logger.Error("symptom analysis unparseable", "error", err)
		a.metrics.ObserveTriage("fallback")
		return fallbackAnalysis
	}

	a.metrics.ObserveTriage("ok")
	return result
}

// parseAnalysis strips Markdown code fences and decodes the JSON payload,
// requiring every consumed field to be present and the urgency to be a known
// level.
func parseAnalysis(raw string) (Analysis, error) {
	cleaned := strings.TrimSpace(fenceMarkers.ReplaceAllString(raw, ""))

	var wire struct {
		Summary               *string  `json:"summary"`
		Urgency               *Urgency `json:"urgency"`
		RecommendedSpecialist *string  `json:"recommended_specialist"`
		Reasoning             *string  `json:"reasoning"`
		CareAdvice            *string  `json:"care_advice"`
	}
	if err := json.Unmarshal([]byte(cleaned), &wire); err != nil {
		return Analysis{}, fmt.Errorf("triage: decode analysis: %w", err)
	}
	if wire.Summary == nil || wire.Urgency == nil || wire.RecommendedSpecialist == nil ||
		wire.Reasoning == nil || wire.CareAdvice == nil {
		return Analysis{}, fmt.Errorf("triage: analysis missing required fields")
	}
	if !wire.Urgency.Valid() {
		return Analysis{}, fmt.Errorf("triage: unknown urgency %q", *wire.Urgency)
	}

	return Analysis{
		Summary:               *wire.Summary,
		Urgency:               *wire.Urgency,
		RecommendedSpecialist: *wire.RecommendedSpecialist,
		Reasoning:             *wire.Reasoning,
		CareAdvice:            *wire.CareAdvice,
	}, nil
}
