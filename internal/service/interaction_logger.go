package service

import (
	"context"
	"designers/internal/entity/db"
	"designers/internal/llm"
	"designers/internal/metrics"
	"net"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	defaultRecordTimeout = 5 * time.Second
	unknownClientIP      = "N/A"
)

// InteractionStore is the part of the repository the logger writes to.
type InteractionStore interface {
	CreateInteraction(ctx context.Context, entry *db.InteractionLog) error
}

// InteractionLogger appends LLM calls to the interaction log. Failures are
// logged and counted but never reach the caller.
type InteractionLogger struct {
	store   InteractionStore
	timeout time.Duration
}

func NewInteractionLogger(store InteractionStore) *InteractionLogger {
	return &InteractionLogger{store: store, timeout: defaultRecordTimeout}
}

// Record writes one row. The write outlives a cancelled request context.
func (l *InteractionLogger) Record(ctx context.Context, prompt, response, model, clientIP string) {
	if l == nil || l.store == nil {
		metrics.InteractionLogFailures.Inc()
		logrus.Warn("interaction store not configured, skipping llm log")
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.TrimSpace(clientIP) == "" {
		clientIP = unknownClientIP
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	entry := &db.InteractionLog{
		UserPrompt:  &prompt,
		LLMResponse: &response,
		ModelUsed:   &model,
		IPAddress:   &clientIP,
	}
	if err := l.store.CreateInteraction(writeCtx, entry); err != nil {
		metrics.InteractionLogFailures.Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"model":     model,
			"client_ip": clientIP,
		}).Error("failed to record llm interaction")
		return
	}

	logrus.WithFields(logrus.Fields{
		"id":             entry.ID,
		"prompt_preview": llm.LogSnippet(prompt),
	}).Info("Interacción LLM registrada")
}

// ClientIP picks the connection's remote host, then the first
// X-Forwarded-For entry, then "N/A". 仅用于诊断，不做鉴权
func ClientIP(remoteAddr, forwardedFor string) string {
	if addr := strings.TrimSpace(remoteAddr); addr != "" {
		if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
			return host
		}
		return addr
	}
	if first, _, _ := strings.Cut(forwardedFor, ","); strings.TrimSpace(first) != "" {
		return strings.TrimSpace(first)
	}
	return unknownClientIP
}
