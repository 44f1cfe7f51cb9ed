package triage

import "context"

// LLMClient is the text-completion dependency behind symptom analysis.
// Implementations return the raw model text, which may include Markdown
// code fences around the JSON payload.
type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
