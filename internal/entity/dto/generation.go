package dto

import "time"

// GenerateTextRequest is the request payload for text generation.
type GenerateTextRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateTextResponse carries the provider's completion.
type GenerateTextResponse struct {
	GeneratedText string `json:"generated_text"`
}

// InteractionLogItem is the response representation of an LLM call log row.
// NULL columns serialise as null.
type InteractionLogItem struct {
	ID          uint      `json:"id"`
	UserPrompt  *string   `json:"user_prompt"`
	LLMResponse *string   `json:"llm_response"`
	ModelUsed   *string   `json:"model_used"`
	Timestamp   time.Time `json:"timestamp"`
	IPAddress   *string   `json:"ip_address"`
}
