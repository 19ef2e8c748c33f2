package llm

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when no provider credential was supplied at startup.
	ErrNotConfigured = errors.New("llm provider not configured")
	// ErrEmptyPrompt is returned before any network call.
	ErrEmptyPrompt = errors.New("prompt is required")
	// ErrEmptyCompletion is returned when the provider answers without choices.
	ErrEmptyCompletion = errors.New("provider returned no completion")
)

// TextGenerator sends a single user prompt to a chat-completion provider and
// returns the text of the first choice.
type TextGenerator interface {
	// GenerateText performs one synchronous call. It never retries.
	GenerateText(ctx context.Context, model, prompt string) (string, error)

	// ProviderID identifies the backing service in logs and metrics.
	ProviderID() string
}
