// Package config handles configuration loading and validation
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/codeport-ai-toolkit/codeport-runner/pkg/errors"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default config file names to search for
var defaultConfigFiles = []string{
	".codeport.yaml",
	".codeport.yml",
	"codeport.yaml",
	"codeport.yml",
}

// Load loads configuration from a specific file path
func Load(path string) (*Config, error) {
	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to read config file: %s", path), err)
	}

	// Parse YAML
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse config file: %s", path), err)
	}

	// Apply defaults before validating so partial files stay usable
	applyDefaults(&cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.ConfigError("config validation failed", err)
	}

	return &cfg, nil
}

// LoadDefault searches for and loads configuration from default locations
// Search order:
// 1. Current directory
// 2. Parent directories (up to root)
// 3. User config directory (.config/codeport/)
func LoadDefault() (*Config, error) {
	// Check current directory and parents
	if cfg, err := findInParents("."); err == nil {
		return cfg, nil
	}

	// Check user config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(homeDir, ".config", "codeport", "config.yaml")
		if cfg, err := Load(userConfigPath); err == nil {
			return cfg, nil
		}
	}

	// No config found - return the default config
	return DefaultConfig(), nil
}

// LoadFromEnv loads config honoring environment overrides.
// A .env file in the working directory is loaded best-effort first, and
// CODEPORT_CONFIG can override the config file path.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()

	var cfg *Config
	var err error
	if path := os.Getenv("CODEPORT_CONFIG"); path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies CODEPORT_* environment variables on top of the
// loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CODEPORT_PROVIDER"); v != "" {
		cfg.Provider.Name = v
	}
	if v := os.Getenv("CODEPORT_REPO_URL"); v != "" {
		cfg.Repo.URL = v
	}
	if v := os.Getenv("CODEPORT_REPO_PATH"); v != "" {
		cfg.Repo.Path = v
	}
	if v := os.Getenv("CODEPORT_LOG_LEVEL"); v != "" {
		cfg.Global.LogLevel = v
	}
	if v := os.Getenv("OLLAMA_MODEL"); v != "" {
		cfg.Provider.Ollama.Model = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.Provider.Ollama.Host = v
	}
}

// findInParents searches for config file in current directory and parent directories
func findInParents(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		for _, filename := range defaultConfigFiles {
			configPath := filepath.Join(dir, filename)
			if _, err := os.Stat(configPath); err == nil {
				return Load(configPath)
			}
		}

		// Move to parent directory
		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root
			break
		}
		dir = parentDir
	}

	return nil, errors.ConfigError("no config file found", nil)
}
