package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"SPROUT_LLM_PROVIDER", "SPROUT_ANTHROPIC_API_KEY", "SPROUT_OPENAI_API_KEY",
		"SPROUT_GEMINI_API_KEY", "SPROUT_OPENROUTER_API_KEY", "SPROUT_OPENAI_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: ProviderConfig{APIKey: "k"}}, false},
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: ProviderConfig{APIKey: "k"}}, false},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock", Config{Provider: "mock"}, false},
		{"unknown", Config{Provider: "carrier-pigeon"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	clearKeys(t)
	t.Setenv("SPROUT_LLM_PROVIDER", "openai")
	t.Setenv("SPROUT_OPENAI_API_KEY", "sk-test")
	t.Setenv("SPROUT_OPENAI_MODEL", "gpt-4o")

	cfg := DefaultConfig().ApplyEnv()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model, "untouched fields keep defaults")
	assert.NoError(t, cfg.Validate())
}

func TestDiscover(t *testing.T) {
	clearKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, ok := DefaultConfig().Discover()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider, "OpenAI outranks Anthropic")
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)

	// An already usable config is left alone.
	explicit := Config{Provider: "anthropic", Anthropic: ProviderConfig{APIKey: "mine"}}
	cfg, ok = explicit.Discover()
	assert.False(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
}

func TestDiscover_NothingFound(t *testing.T) {
	clearKeys(t)
	_, ok := DefaultConfig().Discover()
	assert.False(t, ok)
}

func TestNewProvider(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	_, err = NewProvider(context.Background(), Config{Provider: "anthropic"}, nil, nil)
	assert.Error(t, err)

	p, err = NewProvider(context.Background(), Config{
		Provider:   "openrouter",
		OpenRouter: ProviderConfig{APIKey: "k", Model: "meta-llama/llama-3-8b"},
		Retry:      retryConfig(),
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "meta-llama/llama-3-8b", p.ModelID())
}
