// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "deepseek-r1", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Host)
	assert.Empty(t, cfg.LogDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
model = "llama3.2"
host = "http://remote:8080"
log_dir = "/var/log/ochat"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))

	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, "http://remote:8080", cfg.Host)
	assert.Equal(t, "/var/log/ochat", cfg.LogDir)
}

func TestLoadTOML_PartialKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`model = "mistral"`), 0644))

	cfg := Default()
	require.NoError(t, LoadTOML(cfg, path))
	cfg.fillDefaults()

	assert.Equal(t, "mistral", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Host)
}

func TestLoadTOML_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	require.NoError(t, os.WriteFile(path, []byte(`model = [broken`), 0644))

	cfg := Default()
	assert.Error(t, LoadTOML(cfg, path))
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{"model": "qwen2.5", "host": "remote:11434"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Default()
	require.NoError(t, LoadJSON(cfg, path))

	assert.Equal(t, "qwen2.5", cfg.Model)
	assert.Equal(t, "remote:11434", cfg.Host)
}

func TestLoadJSON_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	cfg := Default()
	assert.Error(t, LoadJSON(cfg, path))
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "http://envhost:9999")
	t.Setenv("OCHAT_MODEL", "envmodel")
	t.Setenv("OCHAT_LOG_DIR", "/tmp/envlogs")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "http://envhost:9999", cfg.Host)
	assert.Equal(t, "envmodel", cfg.Model)
	assert.Equal(t, "/tmp/envlogs", cfg.LogDir)
}

func TestApplyEnvOverrides_EmptyIgnored(t *testing.T) {
	t.Setenv("OLLAMA_HOST", "")
	t.Setenv("OCHAT_MODEL", "")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "deepseek-r1", cfg.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Host)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bare host valid", func(c *Config) { c.Host = "myhost" }, false},
		{"empty model", func(c *Config) { c.Model = "" }, true},
		{"empty host", func(c *Config) { c.Host = "" }, true},
		{"whitespace host", func(c *Config) { c.Host = "   " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
