package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/volcengine/volcengine-go-sdk/service/arkruntime"
	volcModel "github.com/volcengine/volcengine-go-sdk/service/arkruntime/model"
	"github.com/volcengine/volcengine-go-sdk/volcengine"
)

//文档:https://www.volcengine.com/docs/82379/1494384

const providerVolcengine = "volcengine"

// Volcengine calls the Ark runtime chat completion API.
type Volcengine struct {
	client *arkruntime.Client
}

func NewVolcengine(apiKey, baseURL string, timeout time.Duration) *Volcengine {
	opts := []arkruntime.ConfigOption{arkruntime.WithRetryTimes(0)}
	if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
		opts = append(opts, arkruntime.WithBaseUrl(strings.TrimRight(trimmed, "/")))
	}
	if timeout > 0 {
		opts = append(opts, arkruntime.WithTimeout(timeout))
	}
	return &Volcengine{client: arkruntime.NewClientWithApiKey(apiKey, opts...)}
}

func (v *Volcengine) ProviderID() string {
	return providerVolcengine
}

func (v *Volcengine) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	logger := providerLogger(ctx, providerVolcengine, model)
	logger.WithField("prompt_preview", LogSnippet(prompt)).Info("llm_generate_text_start")

	req := volcModel.CreateChatCompletionRequest{
		Model: model,
		Messages: []*volcModel.ChatCompletionMessage{
			{
				Role: volcModel.ChatMessageRoleUser,
				Content: &volcModel.ChatCompletionMessageContent{
					StringValue: volcengine.String(prompt),
				},
			},
		},
	}

	resp, err := v.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.WithError(err).Error("llm_generate_text_failed")
		return "", fmt.Errorf("volcengine chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0] == nil {
		return "", ErrEmptyCompletion
	}
	content := resp.Choices[0].Message.Content
	if content == nil || content.StringValue == nil {
		return "", ErrEmptyCompletion
	}
	return *content.StringValue, nil
}

var _ TextGenerator = (*Volcengine)(nil)
