package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, 5, cfg.BatchSize)
	assert.Equal(t, 0.8, cfg.DedupThreshold)
	assert.Equal(t, 3, cfg.TermThreshold)
	assert.Equal(t, 3, cfg.ThemeThreshold)
	assert.Equal(t, 5, cfg.ThemeHighThreshold)
	assert.Equal(t, "env-key", cfg.APIKey, "missing api_key should fall back to env")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "provider: openai\napi_key: file-key\nmodel: gpt-4o-mini\nbatch_size: 3\ndedup_threshold: 0.9\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 3, cfg.BatchSize)
	assert.Equal(t, 0.9, cfg.DedupThreshold)
	// Unspecified fields keep their defaults.
	assert.Equal(t, 3, cfg.TermThreshold)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch_size: [not a number"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"unknown provider", func(c *Config) { c.Provider = "cohere" }, "unknown provider"},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, "batch_size"},
		{"threshold above one", func(c *Config) { c.DedupThreshold = 1.5 }, "dedup_threshold"},
		{"high below base", func(c *Config) { c.ThemeHighThreshold = 2 }, "theme_high_threshold"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := Default()
	cfg.APIKey = "saved-key"
	cfg.Model = "claude-haiku"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
