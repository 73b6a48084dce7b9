// Package ai implements the moderated generation gateway: every AI
// interaction (chat turns, story, quiz and drawing-story generation)
// goes through the moderation gate and the generation proxy defined here.
// The gateway degrades to deterministic local fallbacks whenever the
// upstream service is unreachable or returns unparseable data.
package ai

import (
	"context"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	apierr "github.com/nahilou/caverne/server/internal/errors"
)

// Message is a chat message sent to the generation service.
type Message struct {
	Role    string
	Content string
}

// Message roles, matching the OpenAI-compatible wire protocol.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// CompletionOptions tune a single completion call.
type CompletionOptions struct {
	MaxTokens   int
	Temperature float32
}

// ChatCompleter is the outbound dependency of the gateway. The concrete
// Provider talks to an OpenAI-compatible service; tests substitute a fake.
type ChatCompleter interface {
	Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error)
}

// Config holds the generation service configuration.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	// Timeout bounds each outbound call. There is deliberately no retry:
	// callers fall back to deterministic local content instead.
	Timeout time.Duration
	// MaxConcurrent bounds in-flight upstream calls.
	MaxConcurrent int64
	// RequestsPerSecond paces outbound calls to the service.
	RequestsPerSecond float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:           "https://api.deepseek.com/v1",
		Model:             "deepseek-chat",
		Timeout:           30 * time.Second,
		MaxConcurrent:     8,
		RequestsPerSecond: 10,
	}
}

// Provider performs chat completions against an OpenAI-compatible service.
type Provider struct {
	client  *openai.Client
	config  *Config
	limiter *rate.Limiter
	sem     *semaphore.Weighted
}

// NewProvider creates a new generation service client.
func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 8
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Model == "" {
		cfg.Model = "deepseek-chat"
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &Provider{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  cfg,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)*2),
		sem:     semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Complete performs a single chat completion call. No retry, no backoff:
// on any failure the caller is expected to degrade to local fallbacks.
func (p *Provider) Complete(ctx context.Context, messages []Message, opts CompletionOptions) (string, error) {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return "", apierr.UpstreamUnavailable("generation service saturated", err)
	}
	defer p.sem.Release(1)

	if err := p.limiter.Wait(ctx); err != nil {
		return "", apierr.UpstreamUnavailable("generation service pacing interrupted", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	llmMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		llmMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    llmMessages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	})
	if err != nil {
		return "", apierr.UpstreamUnavailable("chat completion failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apierr.UpstreamUnavailable("empty chat response", nil)
	}

	return resp.Choices[0].Message.Content, nil
}

var _ ChatCompleter = (*Provider)(nil)
