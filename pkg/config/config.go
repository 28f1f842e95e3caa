// Copyright 2026 CodePort AI Toolkit. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

// Package config provides configuration management for codeport-runner.
//
// Configuration Loading Order (later overrides earlier):
// 1. Defaults (hardcoded)
// 2. Config file: ./.codeport.yaml (or parents, or ~/.config/codeport/config.yaml)
// 3. Environment variables: CODEPORT_*
//
// API keys are never stored in config files; only the name of the
// environment variable holding them (api_key_env) is.
package config

import (
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Repo     RepoConfig     `yaml:"repo"`
	Chunking ChunkingConfig `yaml:"chunking"`
	Output   OutputConfig   `yaml:"output"`
	Global   GlobalConfig   `yaml:"global"`
}

// ProviderConfig selects and configures the LLM backend.
type ProviderConfig struct {
	// Name is the provider id: gemini, ollama, openai, anthropic.
	// Empty means auto-detect from the environment.
	Name string `yaml:"name"`

	// CacheSize enables an in-memory LRU over Generate calls when > 0.
	CacheSize int `yaml:"cache_size"`

	Gemini    GeminiConfig    `yaml:"gemini"`
	Ollama    OllamaConfig    `yaml:"ollama"`
	OpenAI    OpenAIConfig    `yaml:"openai"`
	Anthropic AnthropicConfig `yaml:"anthropic"`
}

// GeminiConfig contains Google Gemini settings.
type GeminiConfig struct {
	Model           string  `yaml:"model"`
	APIKeyEnv       string  `yaml:"api_key_env"` // e.g., "GEMINI_API_KEY"
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// OllamaConfig contains local Ollama settings.
type OllamaConfig struct {
	Model   string        `yaml:"model"`
	Host    string        `yaml:"host"`
	Timeout time.Duration `yaml:"timeout"`
}

// OpenAIConfig contains OpenAI settings.
type OpenAIConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"` // e.g., "OPENAI_API_KEY"
}

// AnthropicConfig contains Anthropic settings.
type AnthropicConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"` // e.g., "ANTHROPIC_API_KEY"
	MaxTokens int    `yaml:"max_tokens"`
}

// RepoConfig describes the codebase under analysis.
type RepoConfig struct {
	// URL is the git remote to clone when Path does not exist.
	URL string `yaml:"url"`

	// Path is the local checkout directory.
	Path string `yaml:"path"`

	// IncludeTests keeps files whose path contains "test".
	IncludeTests bool `yaml:"include_tests"`

	// DependencyFilter keeps only imports containing this substring
	// (case-insensitive). Empty keeps every import.
	DependencyFilter string `yaml:"dependency_filter"`
}

// ChunkingConfig holds the token budgets for splitting source files.
// Budgets are in model tokens; bytes are derived at 4 bytes per token.
type ChunkingConfig struct {
	AnalysisTokens   int `yaml:"analysis_tokens"`
	ControllerTokens int `yaml:"controller_tokens"`
	ConvertTokens    int `yaml:"convert_tokens"`
}

// OutputConfig controls where results are written.
type OutputConfig struct {
	KnowledgePath string `yaml:"knowledge_path"`
	ConvertedDir  string `yaml:"converted_dir"`
}

// GlobalConfig contains global application settings.
type GlobalConfig struct {
	LogLevel     string        `yaml:"log_level"`     // debug, info, warn, error
	RequestDelay time.Duration `yaml:"request_delay"` // pause between LLM calls
}
