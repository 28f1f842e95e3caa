// Package provider contains the Anthropic backend
package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Anthropic calls the Anthropic Messages API.
type Anthropic struct {
	client *anthropic.Client
	cfg    config.AnthropicConfig
}

// NewAnthropic creates an Anthropic provider. The API key is read from
// the environment variable named in cfg.APIKeyEnv.
func NewAnthropic(cfg config.AnthropicConfig) (*Anthropic, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, errors.ProviderError(fmt.Sprintf("anthropic API key required: set %s", cfg.APIKeyEnv), nil)
	}

	client := anthropic.NewClient(anthropicopt.WithAPIKey(key))
	return &Anthropic{
		client: &client,
		cfg:    cfg,
	}, nil
}

// Generate performs a single-turn completion and concatenates the text
// blocks of the response.
func (a *Anthropic) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.cfg.Model),
		MaxTokens: int64(a.cfg.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", errors.ProviderError("anthropic generate failed", err)
	}

	var b strings.Builder
	for _, cb := range msg.Content {
		if tb, ok := cb.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(tb.Text)
		}
	}
	return b.String(), nil
}

// Name returns "anthropic".
func (a *Anthropic) Name() string { return "anthropic" }
