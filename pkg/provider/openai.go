// Package provider contains the OpenAI backend
package provider

import (
	"context"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// OpenAI calls the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
	cfg    config.OpenAIConfig
}

// NewOpenAI creates an OpenAI provider. The API key is read from the
// environment variable named in cfg.APIKeyEnv.
func NewOpenAI(cfg config.OpenAIConfig) (*OpenAI, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, errors.ProviderError(fmt.Sprintf("openai API key required: set %s", cfg.APIKeyEnv), nil)
	}
	return &OpenAI{
		client: openai.NewClient(key),
		cfg:    cfg,
	}, nil
}

// Generate sends the prompt as a single user message.
func (o *OpenAI) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.cfg.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		}},
	})
	if err != nil {
		return "", errors.ProviderError("openai generate failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.ProviderError("openai returned no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns "openai".
func (o *OpenAI) Name() string { return "openai" }
