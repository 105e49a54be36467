// Package openai provides an oracle adapter using the OpenAI chat
// completions API.
package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"github.com/LishigaT/adgm-corporate-agent/internal/adapters/driven/oracle/prompt"
	"github.com/LishigaT/adgm-corporate-agent/internal/core/ports/driven"
)

// Ensure Oracle implements the interface.
var _ driven.Oracle = (*Oracle)(nil)

// Default configuration values.
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultTimeout = 120 * time.Second
)

// Config holds configuration for the OpenAI oracle.
type Config struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL overrides the API base URL for compatible endpoints.
	BaseURL string

	// Model is the model to use (default: gpt-4o-mini).
	Model string
}

// Oracle calls the OpenAI chat completions endpoint.
type Oracle struct {
	client *goopenai.Client
	model  string
}

// New creates an OpenAI oracle.
func New(cfg Config) (*Oracle, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Oracle{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}, nil
}

// Analyze sends the compliance prompt and returns the raw model reply.
func (o *Oracle) Analyze(ctx context.Context, req driven.AnalysisRequest) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: o.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt.Build(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// Name returns the provider name.
func (o *Oracle) Name() string {
	return "openai/" + o.model
}

// Ping validates the API key by listing models without running inference.
func (o *Oracle) Ping(ctx context.Context) error {
	if _, err := o.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai: ping failed: %w", err)
	}
	return nil
}

// Close releases resources.
func (o *Oracle) Close() error {
	return nil
}
