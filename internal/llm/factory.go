package llm

import (
	"designers/internal/config"
	"fmt"
)

// NewTextGenerator instantiates the driver selected in the config. It returns
// nil without an error when the credential is missing, which leaves text
// generation disabled while the rest of the service keeps running.
func NewTextGenerator(cfg config.Config) (TextGenerator, error) {
	apiKey := cfg.ProviderAPIKey()
	if apiKey == "" {
		return nil, nil
	}

	switch cfg.Driver() {
	case config.LLMDriverGroq:
		return NewGroq(apiKey, cfg.LLMBaseURL, cfg.LLMTimeout()), nil
	case config.LLMDriverVolcengine:
		return NewVolcengine(apiKey, cfg.LLMBaseURL, cfg.LLMTimeout()), nil
	default:
		return nil, fmt.Errorf("unsupported llm driver: %s", cfg.LLMDriver)
	}
}
