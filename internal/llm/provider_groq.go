package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	providerGroq = "groq"
	// DefaultGroqBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultGroqBaseURL = "https://api.groq.com/openai/v1"
)

// Groq talks to any OpenAI-compatible chat completion endpoint, Groq by default.
type Groq struct {
	client *openai.Client
}

func NewGroq(apiKey, baseURL string, timeout time.Duration) *Groq {
	clientConfig := openai.DefaultConfig(apiKey)

	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultGroqBaseURL
	}
	clientConfig.BaseURL = baseURL

	// 不设置超时则沿用 http.Client 默认行为
	if timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: timeout}
	}

	return &Groq{client: openai.NewClientWithConfig(clientConfig)}
}

func (g *Groq) ProviderID() string {
	return providerGroq
}

func (g *Groq) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	logger := providerLogger(ctx, providerGroq, model)
	logger.WithFields(logrus.Fields{
		"prompt_preview": LogSnippet(prompt),
		"prompt_length":  len(prompt),
	}).Info("llm_generate_text_start")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		logger.WithError(err).Error("llm_generate_text_failed")
		return "", fmt.Errorf("groq chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	logger.WithField("finish_reason", resp.Choices[0].FinishReason).Info("llm_generate_text_done")
	return resp.Choices[0].Message.Content, nil
}

var _ TextGenerator = (*Groq)(nil)
