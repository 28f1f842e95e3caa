// Package provider provides factory functions for creating backends
package provider

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/config"
	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
)

// Info describes a provider for listings.
type Info struct {
	ID          string
	Name        string
	Cost        string
	KeyRequired bool
	EnvVar      string
	URL         string
	Configured  bool
}

// Create creates a Provider based on the configuration. An empty
// provider name auto-detects the first configured backend. When
// cfg.CacheSize is positive the provider is wrapped in an LRU cache.
func Create(ctx context.Context, cfg *config.ProviderConfig) (Provider, error) {
	if cfg == nil {
		return nil, errors.ProviderError("provider config cannot be nil", nil)
	}

	name := strings.ToLower(cfg.Name)
	if name == "" {
		name = Detect(ctx, cfg)
		if name == "" {
			return nil, errors.ProviderError("no configured provider found (set an API key or start ollama)", nil)
		}
	}

	var (
		p   Provider
		err error
	)
	switch name {
	case "gemini":
		p, err = NewGemini(ctx, cfg.Gemini)
	case "ollama":
		p, err = createOllama(ctx, cfg.Ollama)
	case "openai":
		p, err = NewOpenAI(cfg.OpenAI)
	case "anthropic":
		p, err = NewAnthropic(cfg.Anthropic)
	default:
		return nil, errors.ProviderError(fmt.Sprintf("unknown provider: %s (available: gemini, ollama, openai, anthropic)", cfg.Name), nil)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheSize > 0 {
		return NewCached(p, cfg.CacheSize)
	}
	return p, nil
}

// createOllama builds the Ollama provider and verifies the model exists.
func createOllama(ctx context.Context, cfg config.OllamaConfig) (Provider, error) {
	o, err := NewOllama(cfg)
	if err != nil {
		return nil, err
	}
	if !o.CheckModel(ctx) {
		return nil, errors.ProviderError(fmt.Sprintf("ollama model %q not found; make sure ollama is running", cfg.Model), nil)
	}
	return o, nil
}

// Detect returns the id of the first configured provider: gemini first,
// then the paid APIs, then local ollama.
func Detect(ctx context.Context, cfg *config.ProviderConfig) string {
	for _, info := range List(ctx, cfg) {
		if info.Configured {
			return info.ID
		}
	}
	return ""
}

// List returns every known provider and whether it is configured:
// key-based providers check their environment variable, ollama checks
// that the local server answers.
func List(ctx context.Context, cfg *config.ProviderConfig) []Info {
	return []Info{
		{
			ID:          "gemini",
			Name:        "Google Gemini",
			Cost:        "FREE",
			KeyRequired: true,
			EnvVar:      cfg.Gemini.APIKeyEnv,
			URL:         "https://makersuite.google.com/app/apikey",
			Configured:  os.Getenv(cfg.Gemini.APIKeyEnv) != "",
		},
		{
			ID:          "openai",
			Name:        "OpenAI",
			Cost:        "Paid",
			KeyRequired: true,
			EnvVar:      cfg.OpenAI.APIKeyEnv,
			URL:         "https://platform.openai.com/api-keys",
			Configured:  os.Getenv(cfg.OpenAI.APIKeyEnv) != "",
		},
		{
			ID:          "anthropic",
			Name:        "Anthropic Claude",
			Cost:        "Paid",
			KeyRequired: true,
			EnvVar:      cfg.Anthropic.APIKeyEnv,
			URL:         "https://console.anthropic.com/",
			Configured:  os.Getenv(cfg.Anthropic.APIKeyEnv) != "",
		},
		{
			ID:          "ollama",
			Name:        "Ollama (Local)",
			Cost:        "FREE",
			KeyRequired: false,
			URL:         "https://ollama.ai",
			Configured:  ollamaReachable(ctx, cfg.Ollama.Host),
		},
	}
}

// ollamaReachable pings the local Ollama tags endpoint.
func ollamaReachable(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(host, "/")+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}
