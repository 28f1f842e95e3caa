// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"strings"
)

// knownProviders are the provider ids accepted in provider.name.
var knownProviders = map[string]bool{
	"":          true, // auto-detect
	"gemini":    true,
	"ollama":    true,
	"openai":    true,
	"anthropic": true,
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if err := c.Provider.Validate(); err != nil {
		return fmt.Errorf("provider config: %w", err)
	}

	if err := c.Repo.Validate(); err != nil {
		return fmt.Errorf("repo config: %w", err)
	}

	if err := c.Chunking.Validate(); err != nil {
		return fmt.Errorf("chunking config: %w", err)
	}

	if err := c.Global.Validate(); err != nil {
		return fmt.Errorf("global config: %w", err)
	}

	return nil
}

// Validate validates the provider selection.
func (p *ProviderConfig) Validate() error {
	name := strings.ToLower(p.Name)
	if !knownProviders[name] {
		return fmt.Errorf("unknown provider %q (available: gemini, ollama, openai, anthropic)", p.Name)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0, got %d", p.CacheSize)
	}
	if p.Ollama.Timeout < 0 {
		return fmt.Errorf("ollama timeout must be >= 0")
	}
	return nil
}

// Validate validates the repository configuration.
func (r *RepoConfig) Validate() error {
	if r.Path == "" {
		return fmt.Errorf("repo path is required")
	}
	return nil
}

// Validate validates the chunking budgets.
func (c *ChunkingConfig) Validate() error {
	if c.AnalysisTokens <= 0 {
		return fmt.Errorf("analysis_tokens must be positive, got %d", c.AnalysisTokens)
	}
	if c.ControllerTokens <= 0 {
		return fmt.Errorf("controller_tokens must be positive, got %d", c.ControllerTokens)
	}
	if c.ConvertTokens <= 0 {
		return fmt.Errorf("convert_tokens must be positive, got %d", c.ConvertTokens)
	}
	return nil
}

// Validate validates the global settings.
func (g *GlobalConfig) Validate() error {
	switch strings.ToLower(g.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log_level %q", g.LogLevel)
	}
	if g.RequestDelay < 0 {
		return fmt.Errorf("request_delay must be >= 0")
	}
	return nil
}
