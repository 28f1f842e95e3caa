// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package config

import (
	"time"
)

// DefaultConfig returns the default configuration.
// These values are used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Provider: DefaultProviderConfig(),
		Repo: RepoConfig{
			URL:              "https://github.com/janjakovacevic/SakilaProject.git",
			Path:             "./SakilaProject",
			DependencyFilter: "sakilaproject",
		},
		Chunking: DefaultChunkingConfig(),
		Output: OutputConfig{
			KnowledgePath: "codebase_analysis.json",
			ConvertedDir:  "converted",
		},
		Global: GlobalConfig{
			LogLevel:     "info",
			RequestDelay: 2 * time.Second,
		},
	}
}

// DefaultProviderConfig returns default provider configuration.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Gemini: GeminiConfig{
			Model:           "gemini-2.0-flash",
			APIKeyEnv:       "GEMINI_API_KEY",
			Temperature:     0.1,
			MaxOutputTokens: 2048,
		},
		Ollama: OllamaConfig{
			Model:   "llama3",
			Host:    "http://localhost:11434",
			Timeout: 120 * time.Second,
		},
		OpenAI: OpenAIConfig{
			Model:     "gpt-4o-mini",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Anthropic: AnthropicConfig{
			Model:     "claude-3-5-sonnet-latest",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 2048,
		},
	}
}

// DefaultChunkingConfig returns the default token budgets: 3000 for
// analysis, 2000 for Controller conversion and 2500 for everything else.
func DefaultChunkingConfig() ChunkingConfig {
	return ChunkingConfig{
		AnalysisTokens:   3000,
		ControllerTokens: 2000,
		ConvertTokens:    2500,
	}
}

// applyDefaults fills zero values with defaults after a file load.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Provider.Gemini.Model == "" {
		cfg.Provider.Gemini.Model = def.Provider.Gemini.Model
	}
	if cfg.Provider.Gemini.APIKeyEnv == "" {
		cfg.Provider.Gemini.APIKeyEnv = def.Provider.Gemini.APIKeyEnv
	}
	if cfg.Provider.Gemini.MaxOutputTokens == 0 {
		cfg.Provider.Gemini.MaxOutputTokens = def.Provider.Gemini.MaxOutputTokens
	}
	if cfg.Provider.Ollama.Model == "" {
		cfg.Provider.Ollama.Model = def.Provider.Ollama.Model
	}
	if cfg.Provider.Ollama.Host == "" {
		cfg.Provider.Ollama.Host = def.Provider.Ollama.Host
	}
	if cfg.Provider.Ollama.Timeout == 0 {
		cfg.Provider.Ollama.Timeout = def.Provider.Ollama.Timeout
	}
	if cfg.Provider.OpenAI.Model == "" {
		cfg.Provider.OpenAI.Model = def.Provider.OpenAI.Model
	}
	if cfg.Provider.OpenAI.APIKeyEnv == "" {
		cfg.Provider.OpenAI.APIKeyEnv = def.Provider.OpenAI.APIKeyEnv
	}
	if cfg.Provider.Anthropic.Model == "" {
		cfg.Provider.Anthropic.Model = def.Provider.Anthropic.Model
	}
	if cfg.Provider.Anthropic.APIKeyEnv == "" {
		cfg.Provider.Anthropic.APIKeyEnv = def.Provider.Anthropic.APIKeyEnv
	}
	if cfg.Provider.Anthropic.MaxTokens == 0 {
		cfg.Provider.Anthropic.MaxTokens = def.Provider.Anthropic.MaxTokens
	}

	if cfg.Repo.Path == "" {
		cfg.Repo.Path = def.Repo.Path
	}

	if cfg.Chunking.AnalysisTokens == 0 {
		cfg.Chunking.AnalysisTokens = def.Chunking.AnalysisTokens
	}
	if cfg.Chunking.ControllerTokens == 0 {
		cfg.Chunking.ControllerTokens = def.Chunking.ControllerTokens
	}
	if cfg.Chunking.ConvertTokens == 0 {
		cfg.Chunking.ConvertTokens = def.Chunking.ConvertTokens
	}

	if cfg.Output.KnowledgePath == "" {
		cfg.Output.KnowledgePath = def.Output.KnowledgePath
	}
	if cfg.Output.ConvertedDir == "" {
		cfg.Output.ConvertedDir = def.Output.ConvertedDir
	}

	if cfg.Global.LogLevel == "" {
		cfg.Global.LogLevel = def.Global.LogLevel
	}
	if cfg.Global.RequestDelay == 0 {
		cfg.Global.RequestDelay = def.Global.RequestDelay
	}
}
