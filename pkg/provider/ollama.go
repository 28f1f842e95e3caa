// Package provider contains the local Ollama backend
package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Ollama calls a local Ollama instance. No API key is needed.
type Ollama struct {
	client *ollama.Client
	cfg    config.OllamaConfig
}

// NewOllama creates an Ollama provider for the configured host.
func NewOllama(cfg config.OllamaConfig) (*Ollama, error) {
	u, err := url.Parse(cfg.Host)
	if err != nil {
		return nil, errors.ProviderError(fmt.Sprintf("invalid ollama host %q", cfg.Host), err)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	return &Ollama{
		client: ollama.NewClient(u, httpClient),
		cfg:    cfg,
	}, nil
}

// Generate sends the prompt to Ollama and accumulates the streamed
// response into one string.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	var text strings.Builder

	req := &ollama.GenerateRequest{
		Model:  o.cfg.Model,
		Prompt: prompt,
	}

	err := o.client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		if gr.Response != "" {
			text.WriteString(gr.Response)
		}
		return nil
	})
	if err != nil {
		return "", errors.ProviderError(fmt.Sprintf("cannot generate with ollama at %s; is ollama running?", o.cfg.Host), err)
	}

	return text.String(), nil
}

// Name returns "ollama".
func (o *Ollama) Name() string { return "ollama" }

// CheckModel reports whether the configured model is downloaded.
func (o *Ollama) CheckModel(ctx context.Context) bool {
	resp, err := o.client.List(ctx)
	if err != nil {
		return false
	}
	for _, m := range resp.Models {
		if strings.HasPrefix(m.Name, o.cfg.Model) {
			return true
		}
	}
	return false
}
