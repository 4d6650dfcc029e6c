// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ochat.
//
// Supports both TOML and JSON configuration formats, with sensible defaults
// and environment variable overrides.
//
// Configuration file locations (in order of precedence):
//   - ~/.ochat/config.toml
//   - ~/.ochat/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/ochat/internal/ollama"
)

// =============================================================================
// CONFIG STRUCTURE
// =============================================================================

// Config represents the complete ochat configuration. It is resolved once at
// startup and threaded explicitly into the chat session; core logic never
// reads the environment or config files on its own.
type Config struct {
	// Model is the model to chat with (e.g., "deepseek-r1").
	Model string `toml:"model" json:"model"`

	// Host is the Ollama server host. It may be a bare host name, a
	// host:port pair, or a full URL; it is normalized by
	// ollama.ResolveHost at session construction.
	Host string `toml:"host" json:"host"`

	// LogDir is the directory for conversation logs
	// (default: ~/.ochat/conversations).
	LogDir string `toml:"log_dir" json:"log_dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Model: "deepseek-r1",
		Host:  "http://localhost:11434",
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the ochat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ochat"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s). Tries TOML first, then
// JSON, and falls back to defaults. Environment overrides are applied last.
func Load() (*Config, error) {
	cfg := Default()

	dir, err := ConfigDir()
	if err == nil {
		tomlPath := filepath.Join(dir, "config.toml")
		jsonPath := filepath.Join(dir, "config.json")

		if _, statErr := os.Stat(tomlPath); statErr == nil {
			if err := LoadTOML(cfg, tomlPath); err != nil {
				return nil, fmt.Errorf("failed to load TOML config: %w", err)
			}
		} else if _, statErr := os.Stat(jsonPath); statErr == nil {
			if err := LoadJSON(cfg, jsonPath); err != nil {
				return nil, fmt.Errorf("failed to load JSON config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadJSON loads configuration from a JSON file.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return nil
}

// fillDefaults fills in any missing values with defaults.
func (c *Config) fillDefaults() {
	defaults := Default()
	if c.Model == "" {
		c.Model = defaults.Model
	}
	if c.Host == "" {
		c.Host = defaults.Host
	}
	// LogDir stays empty here; the storage layer derives its home default.
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - OLLAMA_HOST: overrides host (the conventional Ollama variable)
//   - OCHAT_MODEL: overrides model
//   - OCHAT_LOG_DIR: overrides log_dir
func (c *Config) ApplyEnvOverrides() {
	if host := os.Getenv("OLLAMA_HOST"); host != "" {
		c.Host = host
	}
	if model := os.Getenv("OCHAT_MODEL"); model != "" {
		c.Model = model
	}
	if dir := os.Getenv("OCHAT_LOG_DIR"); dir != "" {
		c.LogDir = dir
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for values the session cannot work with.
// Host validation reuses the resolver so a config rejected here is exactly a
// config the session would reject at construction.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model: must not be empty")
	}
	if _, err := ollama.ResolveHost(c.Host); err != nil {
		return fmt.Errorf("host: %w", err)
	}
	return nil
}
