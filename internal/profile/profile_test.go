package profile

import (
	"testing"
	"time"
)

func TestValidate_Defaults(t *testing.T) {
	p := &Profile{Mode: "dev", Port: 5000}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if p.AIBaseURL == "" {
		t.Error("expected default AI base URL")
	}
	if p.AIModel == "" {
		t.Error("expected default AI model")
	}
	if p.AITimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", p.AITimeout)
	}
	if p.MaxHistoryExchanges != 10 {
		t.Errorf("expected default max history exchanges 10, got %d", p.MaxHistoryExchanges)
	}
	if p.MaxTokens != 500 {
		t.Errorf("expected default max tokens 500, got %d", p.MaxTokens)
	}
}

func TestValidate_UnknownModeFallsBackToDemo(t *testing.T) {
	p := &Profile{Mode: "staging", Port: 5000}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if p.Mode != "demo" {
		t.Errorf("expected mode demo, got %s", p.Mode)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	p := &Profile{Mode: "dev", Port: 0}
	if err := p.Validate(); err == nil {
		t.Error("expected error for port 0")
	}

	p = &Profile{Mode: "dev", Port: 70000}
	if err := p.Validate(); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestIsAIEnabled(t *testing.T) {
	p := &Profile{}
	if p.IsAIEnabled() {
		t.Error("expected AI disabled without API key")
	}

	p.AIAPIKey = "sk-test"
	if !p.IsAIEnabled() {
		t.Error("expected AI enabled with API key")
	}
}
