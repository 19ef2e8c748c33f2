package service

import (
	"context"
	"designers/internal/entity/db"
	"designers/internal/llm"
	"designers/internal/metrics"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

type fakeGenerator struct {
	text   string
	err    error
	calls  int
	model  string
	prompt string
}

func (f *fakeGenerator) GenerateText(_ context.Context, model, prompt string) (string, error) {
	f.calls++
	f.model = model
	f.prompt = prompt
	return f.text, f.err
}

func (f *fakeGenerator) ProviderID() string {
	return "fake"
}

type recordedCall struct {
	prompt, response, model, clientIP string
}

type fakeRecorder struct {
	calls []recordedCall
}

func (f *fakeRecorder) Record(_ context.Context, prompt, response, model, clientIP string) {
	f.calls = append(f.calls, recordedCall{prompt, response, model, clientIP})
}

type fakeStore struct {
	err     error
	entries []*db.InteractionLog
	ctxErr  error
}

func (f *fakeStore) CreateInteraction(ctx context.Context, entry *db.InteractionLog) error {
	f.ctxErr = ctx.Err()
	if f.err != nil {
		return f.err
	}
	entry.ID = uint(len(f.entries) + 1)
	f.entries = append(f.entries, entry)
	return nil
}

func TestGenerateNotConfigured(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewGenerationService(nil, "llama3-8b-8192", recorder)

	for _, prompt := range []string{"Tell me about Chanel", ""} {
		if _, err := svc.Generate(context.Background(), prompt, "127.0.0.1"); !errors.Is(err, llm.ErrNotConfigured) {
			t.Errorf("prompt %q: expected ErrNotConfigured, got %v", prompt, err)
		}
	}
	if svc.Configured() {
		t.Error("expected service to be unconfigured")
	}
	if len(recorder.calls) != 0 {
		t.Errorf("expected no log rows, got %d", len(recorder.calls))
	}
}

func TestGenerateEmptyPrompt(t *testing.T) {
	generator := &fakeGenerator{text: "unused"}
	recorder := &fakeRecorder{}
	svc := NewGenerationService(generator, "llama3-8b-8192", recorder)

	for _, prompt := range []string{"", "   \n"} {
		if _, err := svc.Generate(context.Background(), prompt, "127.0.0.1"); !errors.Is(err, llm.ErrEmptyPrompt) {
			t.Errorf("prompt %q: expected ErrEmptyPrompt, got %v", prompt, err)
		}
	}
	if generator.calls != 0 {
		t.Errorf("expected no provider call, got %d", generator.calls)
	}
	if len(recorder.calls) != 0 {
		t.Errorf("expected no log rows, got %d", len(recorder.calls))
	}
}

func TestGenerateSuccessRecordsInteraction(t *testing.T) {
	generator := &fakeGenerator{text: "Chanel popularised the little black dress."}
	recorder := &fakeRecorder{}
	svc := NewGenerationService(generator, " llama3-8b-8192 ", recorder)

	before := testutil.ToFloat64(metrics.Generations.WithLabelValues("fake", metrics.ResultSuccess))
	text, err := svc.Generate(context.Background(), "Tell me about Chanel", "10.0.0.7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != generator.text {
		t.Errorf("expected %q, got %q", generator.text, text)
	}
	if generator.calls != 1 || generator.model != "llama3-8b-8192" || generator.prompt != "Tell me about Chanel" {
		t.Errorf("unexpected provider call: %+v", generator)
	}
	want := recordedCall{"Tell me about Chanel", generator.text, "llama3-8b-8192", "10.0.0.7"}
	if len(recorder.calls) != 1 || recorder.calls[0] != want {
		t.Errorf("expected %+v recorded, got %+v", want, recorder.calls)
	}
	if after := testutil.ToFloat64(metrics.Generations.WithLabelValues("fake", metrics.ResultSuccess)); after != before+1 {
		t.Errorf("expected success counter to grow by one, got %v -> %v", before, after)
	}
}

func TestGenerateProviderFailure(t *testing.T) {
	providerErr := errors.New("Invalid API Key")
	generator := &fakeGenerator{err: providerErr}
	recorder := &fakeRecorder{}
	svc := NewGenerationService(generator, "llama3-8b-8192", recorder)

	_, err := svc.Generate(context.Background(), "hello", "127.0.0.1")
	if !errors.Is(err, providerErr) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if generator.calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", generator.calls)
	}
	if len(recorder.calls) != 0 {
		t.Errorf("expected no log rows on failure, got %d", len(recorder.calls))
	}
}

func TestInteractionLoggerRecord(t *testing.T) {
	store := &fakeStore{}
	logger := NewInteractionLogger(store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	logger.Record(ctx, "prompt", "response", "llama3-8b-8192", "")

	if len(store.entries) != 1 {
		t.Fatalf("expected one row, got %d", len(store.entries))
	}
	if store.ctxErr != nil {
		t.Errorf("expected write to survive request cancellation, got %v", store.ctxErr)
	}
	entry := store.entries[0]
	if *entry.UserPrompt != "prompt" || *entry.LLMResponse != "response" || *entry.ModelUsed != "llama3-8b-8192" {
		t.Errorf("unexpected entry %+v", entry)
	}
	if *entry.IPAddress != "N/A" {
		t.Errorf("expected N/A for missing ip, got %q", *entry.IPAddress)
	}
}

func TestInteractionLoggerSwallowsFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("relation \"llm_interactions_log\" does not exist")}
	logger := NewInteractionLogger(store)

	before := testutil.ToFloat64(metrics.InteractionLogFailures)
	logger.Record(context.Background(), "prompt", "response", "m", "127.0.0.1")
	if after := testutil.ToFloat64(metrics.InteractionLogFailures); after != before+1 {
		t.Errorf("expected failure counter to grow by one, got %v -> %v", before, after)
	}

	var nilLogger *InteractionLogger
	nilLogger.Record(context.Background(), "prompt", "response", "m", "127.0.0.1")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name         string
		remoteAddr   string
		forwardedFor string
		expected     string
	}{
		{name: "remote with port", remoteAddr: "192.168.1.5:53211", expected: "192.168.1.5"},
		{name: "remote without port", remoteAddr: "192.168.1.5", expected: "192.168.1.5"},
		{name: "ipv6 remote", remoteAddr: "[::1]:8080", expected: "::1"},
		{name: "remote wins over header", remoteAddr: "10.0.0.1:1", forwardedFor: "1.2.3.4", expected: "10.0.0.1"},
		{name: "first forwarded entry", forwardedFor: " 1.2.3.4 , 5.6.7.8", expected: "1.2.3.4"},
		{name: "nothing known", expected: "N/A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClientIP(tt.remoteAddr, tt.forwardedFor); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
