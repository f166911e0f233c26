package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/abhisek/sprout/internal/store"
)

// Config selects and configures the report provider. DefaultConfig is
// overridden from the environment.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "openrouter", "mock".
	Provider string `yaml:"provider"`

	Anthropic  ProviderConfig `yaml:"anthropic"`
	OpenAI     ProviderConfig `yaml:"openai"`
	Gemini     ProviderConfig `yaml:"gemini"`
	OpenRouter ProviderConfig `yaml:"openrouter"`
	Retry      RetryConfig    `yaml:"retry"`

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration `yaml:"timeout"`
}

// ProviderConfig holds the credentials and model for one provider.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	InitialWait time.Duration `yaml:"initial_wait"`
	MaxWait     time.Duration `yaml:"max_wait"`
	Multiplier  float64       `yaml:"multiplier"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envOverrides lists the SPROUT_* variables and the field each one sets.
func (c *Config) envOverrides() map[string]*string {
	return map[string]*string{
		"SPROUT_LLM_PROVIDER":        &c.Provider,
		"SPROUT_ANTHROPIC_API_KEY":   &c.Anthropic.APIKey,
		"SPROUT_ANTHROPIC_MODEL":     &c.Anthropic.Model,
		"SPROUT_OPENAI_API_KEY":      &c.OpenAI.APIKey,
		"SPROUT_OPENAI_MODEL":        &c.OpenAI.Model,
		"SPROUT_OPENAI_BASE_URL":     &c.OpenAI.BaseURL,
		"SPROUT_GEMINI_API_KEY":      &c.Gemini.APIKey,
		"SPROUT_GEMINI_MODEL":        &c.Gemini.Model,
		"SPROUT_OPENROUTER_API_KEY":  &c.OpenRouter.APIKey,
		"SPROUT_OPENROUTER_MODEL":    &c.OpenRouter.Model,
		"SPROUT_OPENROUTER_BASE_URL": &c.OpenRouter.BaseURL,
	}
}

// ApplyEnv overrides c with any SPROUT_* variables that are set.
func (c Config) ApplyEnv() Config {
	for name, field := range c.envOverrides() {
		if v := os.Getenv(name); v != "" {
			*field = v
		}
	}
	return c
}

// Discover fills in a provider from the vendors' standard API key
// variables, in priority order Gemini, OpenAI, Anthropic, OpenRouter.
// It reports false when c already has a usable provider or no key is set.
func (c Config) Discover() (Config, bool) {
	if c.Validate() == nil {
		return c, false
	}

	candidates := []struct {
		env      string
		provider string
		cfg      *ProviderConfig
	}{
		{"GEMINI_API_KEY", ProviderGemini, &c.Gemini},
		{"OPENAI_API_KEY", ProviderOpenAI, &c.OpenAI},
		{"ANTHROPIC_API_KEY", ProviderAnthropic, &c.Anthropic},
		{"OPENROUTER_API_KEY", ProviderOpenRouter, &c.OpenRouter},
	}
	for _, cand := range candidates {
		if k := os.Getenv(cand.env); k != "" {
			c.Provider = cand.provider
			cand.cfg.APIKey = k
			return c, true
		}
	}
	return c, false
}

// selected returns the settings of the chosen provider.
func (c Config) selected() (ProviderConfig, bool) {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic, true
	case ProviderOpenAI:
		return c.OpenAI, true
	case ProviderGemini:
		return c.Gemini, true
	case ProviderOpenRouter:
		return c.OpenRouter, true
	}
	return ProviderConfig{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	pc, ok := c.selected()
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider (set SPROUT_%s_API_KEY)",
			c.Provider, envName(c.Provider))
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "OPENAI"
	case ProviderGemini:
		return "GEMINI"
	case ProviderOpenRouter:
		return "OPENROUTER"
	default:
		return "ANTHROPIC"
	}
}

// NewProvider builds the configured provider wrapped as
// caller -> retry -> recording -> provider. events may be nil.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	pc, _ := cfg.selected()
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(pc)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(pc)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, pc)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(pc)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	recorded := WithRecording(base, cfg.Provider, events, log)
	return WithRetry(recorded, cfg.Retry), nil
}
