package config

import (
	"os"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_TYPE", "DATABASE_URL", "LLM_DRIVER", "LLM_MODEL", "GROQ_API_KEY", "LLM_TIMEOUT_SECONDS"} {
		// t.Setenv 负责还原，随后清除
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "5000" {
		t.Errorf("expected default port 5000, got %q", cfg.HTTPPort)
	}
	if cfg.DBType != "postgres" {
		t.Errorf("expected postgres by default, got %q", cfg.DBType)
	}
	if cfg.LLMModel != "llama3-8b-8192" {
		t.Errorf("expected default model, got %q", cfg.LLMModel)
	}
	if cfg.HasDSN() {
		t.Error("expected no DSN")
	}
	if cfg.ProviderAPIKey() != "" {
		t.Error("expected no provider key")
	}
}

func TestParseConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/designers")
	t.Setenv("LLM_DRIVER", "Volcengine")
	t.Setenv("VOLCENGINE_API_KEY", " ark-key ")
	t.Setenv("LLM_TIMEOUT_SECONDS", "30")
	t.Setenv("DB_POOLED", "true")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.HasDSN() || !cfg.DBPooled {
		t.Errorf("unexpected store settings %+v", cfg)
	}
	if cfg.Driver() != LLMDriverVolcengine {
		t.Errorf("expected volcengine driver, got %q", cfg.Driver())
	}
	if cfg.ProviderAPIKey() != "ark-key" || cfg.ProviderKeyName() != "VOLCENGINE_API_KEY" {
		t.Errorf("unexpected provider key %q (%s)", cfg.ProviderAPIKey(), cfg.ProviderKeyName())
	}
	if cfg.LLMTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.LLMTimeout())
	}
}

func TestParseConfigInvalidValue(t *testing.T) {
	t.Setenv("DB_POOLED", "maybe")
	if _, err := ParseConfig(); err == nil {
		t.Fatal("expected parse error for invalid bool")
	}
}

func TestDriverDefaults(t *testing.T) {
	cfg := Config{GroqAPIKey: "gsk"}
	if cfg.Driver() != LLMDriverGroq || cfg.ProviderKeyName() != "GROQ_API_KEY" || cfg.ProviderAPIKey() != "gsk" {
		t.Errorf("unexpected groq defaults: %s %s", cfg.Driver(), cfg.ProviderKeyName())
	}
	if cfg.LLMTimeout() != 0 {
		t.Errorf("expected client default timeout, got %v", cfg.LLMTimeout())
	}
}
