// Package provider contains the Google Gemini backend
package provider

import (
	"context"
	"fmt"
	"os"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Gemini calls the Google Gemini API.
type Gemini struct {
	client *genai.Client
	cfg    config.GeminiConfig
}

// NewGemini creates a Gemini provider. The API key is read from the
// environment variable named in cfg.APIKeyEnv.
func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*Gemini, error) {
	key := os.Getenv(cfg.APIKeyEnv)
	if key == "" {
		return nil, errors.ProviderError(fmt.Sprintf("gemini API key required: set %s", cfg.APIKeyEnv), nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, errors.ProviderError("gemini init failed", err)
	}

	return &Gemini{client: client, cfg: cfg}, nil
}

// Generate sends the prompt to Gemini and concatenates the text parts of
// the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	model := g.client.GenerativeModel(g.cfg.Model)
	model.SetTemperature(g.cfg.Temperature)
	model.SetMaxOutputTokens(g.cfg.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.ProviderError("gemini generate failed", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.ProviderError("gemini returned an empty response", nil)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return b.String(), nil
}

// Name returns "gemini".
func (g *Gemini) Name() string { return "gemini" }

// Close releases the underlying client.
func (g *Gemini) Close() error {
	return g.client.Close()
}
