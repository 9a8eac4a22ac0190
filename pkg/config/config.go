// Package config loads memsift's runtime configuration from a YAML file
// with defaulted fields and environment fallbacks for credentials. The
// thresholds mirror the extraction pipeline's built-in constants; they
// are exposed as tunables but their defaults are load-bearing and must
// not drift.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in the provider field.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds every tunable of a memsift run.
type Config struct {
	// Provider selects the LLM backend for API mode: "anthropic"
	// (default) or "openai".
	Provider string `yaml:"provider"`

	// APIKey authenticates against the selected provider. Falls back to
	// ANTHROPIC_API_KEY or OPENAI_API_KEY when empty.
	APIKey string `yaml:"api_key"`

	// BaseURL overrides the provider's API endpoint. Empty uses the
	// provider default.
	BaseURL string `yaml:"base_url"`

	// Model overrides the provider's default model. Empty uses the
	// provider default.
	Model string `yaml:"model"`

	// BatchSize is the conversations-per-request batch size in API mode.
	BatchSize int `yaml:"batch_size"`

	// TranscriptTokenCap bounds each conversation transcript in the
	// extraction prompt. Zero disables truncation.
	TranscriptTokenCap int `yaml:"transcript_token_cap"`

	// DedupThreshold is the LCS similarity at which candidates merge.
	DedupThreshold float64 `yaml:"dedup_threshold"`

	// TermThreshold is the distinct-conversation count promoting a
	// technology term.
	TermThreshold int `yaml:"term_threshold"`

	// ThemeThreshold is the distinct-conversation count promoting an
	// n-gram.
	ThemeThreshold int `yaml:"theme_threshold"`

	// ThemeHighThreshold is the count at which themes get high
	// confidence.
	ThemeHighThreshold int `yaml:"theme_high_threshold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider:           ProviderAnthropic,
		BatchSize:          5,
		TranscriptTokenCap: 2000,
		DedupThreshold:     0.8,
		TermThreshold:      3,
		ThemeThreshold:     3,
		ThemeHighThreshold: 5,
	}
}

// DefaultPath returns the standard config location, ~/.memsift/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".memsift", "config.yaml"), nil
}

// Load reads the config file at path, layering it over the defaults. A
// missing file is not an error — defaults apply. After loading, an empty
// API key falls back to the provider's environment variable.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.APIKey != "" {
		return
	}
	switch c.Provider {
	case ProviderOpenAI:
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	default:
		c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	}
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Provider != ProviderAnthropic && c.Provider != ProviderOpenAI {
		return fmt.Errorf("config: unknown provider %q", c.Provider)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("config: batch_size must be positive, got %d", c.BatchSize)
	}
	if c.DedupThreshold <= 0 || c.DedupThreshold > 1 {
		return fmt.Errorf("config: dedup_threshold must be in (0, 1], got %g", c.DedupThreshold)
	}
	if c.TermThreshold <= 0 {
		return fmt.Errorf("config: term_threshold must be positive, got %d", c.TermThreshold)
	}
	if c.ThemeThreshold <= 0 {
		return fmt.Errorf("config: theme_threshold must be positive, got %d", c.ThemeThreshold)
	}
	if c.ThemeHighThreshold < c.ThemeThreshold {
		return fmt.Errorf("config: theme_high_threshold (%d) must be >= theme_threshold (%d)", c.ThemeHighThreshold, c.ThemeThreshold)
	}
	return nil
}

// Save writes the config back to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
