package profile

import (
	"time"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for server
	Addr string
	// Port is the binding port for server
	Port int
	// Version is the current version of server
	Version string

	// AI Configuration
	// AIBaseURL is the base URL of the OpenAI-compatible generation service (CAVERNE_AI_BASE_URL)
	AIBaseURL string
	// AIAPIKey authenticates against the generation service (CAVERNE_AI_API_KEY)
	AIAPIKey string
	// AIModel is the chat model used for generation and moderation (CAVERNE_AI_MODEL)
	AIModel string
	// AITimeout bounds every outbound generation call
	AITimeout time.Duration
	// MaxTokens caps tokens per chat completion request
	MaxTokens int

	// MaxHistoryExchanges bounds the per-user conversation history to
	// 2*MaxHistoryExchanges turns including the priming turn.
	MaxHistoryExchanges int
	// MaxDrawingBytes caps the size of a saved drawing payload.
	MaxDrawingBytes int
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsAIEnabled returns true if the generation service is configured.
// Without it every generation degrades to the deterministic fallbacks.
func (p *Profile) IsAIEnabled() bool {
	return p.AIAPIKey != ""
}

// Validate normalizes the profile and rejects unusable values.
func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}

	if p.Port <= 0 || p.Port > 65535 {
		return errors.Errorf("invalid port %d", p.Port)
	}

	if p.AIBaseURL == "" {
		p.AIBaseURL = "https://api.deepseek.com/v1"
	}
	if p.AIModel == "" {
		p.AIModel = "deepseek-chat"
	}
	if p.AITimeout <= 0 {
		p.AITimeout = 30 * time.Second
	}
	if p.MaxTokens <= 0 {
		p.MaxTokens = 500
	}
	if p.MaxHistoryExchanges <= 0 {
		p.MaxHistoryExchanges = 10
	}
	if p.MaxDrawingBytes <= 0 {
		p.MaxDrawingBytes = 5 << 20
	}

	return nil
}
