package service

import (
	"context"
	"designers/internal/llm"
	"designers/internal/metrics"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// InteractionRecorder persists one successful generation.
type InteractionRecorder interface {
	Record(ctx context.Context, prompt, response, model, clientIP string)
}

// GenerationService 同步调用文本生成服务，成功后记录交互日志
type GenerationService struct {
	generator llm.TextGenerator
	model     string
	recorder  InteractionRecorder
}

// NewGenerationService builds the gateway. A nil generator means no
// provider credential was configured and every call fails fast.
func NewGenerationService(generator llm.TextGenerator, model string, recorder InteractionRecorder) *GenerationService {
	return &GenerationService{
		generator: generator,
		model:     strings.TrimSpace(model),
		recorder:  recorder,
	}
}

// Configured reports whether a provider is available.
func (s *GenerationService) Configured() bool {
	return s != nil && s.generator != nil
}

// Generate sends the prompt unchanged to the provider exactly once.
// 失败时不写日志，也不重试
func (s *GenerationService) Generate(ctx context.Context, prompt, clientIP string) (string, error) {
	if !s.Configured() {
		metrics.Generations.WithLabelValues("none", metrics.ResultNotConfigured).Inc()
		return "", llm.ErrNotConfigured
	}
	if strings.TrimSpace(prompt) == "" {
		return "", llm.ErrEmptyPrompt
	}

	providerID := s.generator.ProviderID()
	logger := logrus.WithFields(logrus.Fields{
		"provider":  providerID,
		"model":     s.model,
		"client_ip": clientIP,
	})

	start := time.Now()
	text, err := s.generator.GenerateText(ctx, s.model, prompt)
	metrics.GenerationLatency.WithLabelValues(providerID).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Generations.WithLabelValues(providerID, metrics.ResultFailure).Inc()
		logger.WithError(err).Error("text generation failed")
		return "", fmt.Errorf("generate text: %w", err)
	}
	metrics.Generations.WithLabelValues(providerID, metrics.ResultSuccess).Inc()

	if s.recorder != nil {
		s.recorder.Record(ctx, prompt, text, s.model, clientIP)
	}
	return text, nil
}
