package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Endpoint)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TABLESIDE_LLM_PROVIDER", "ollama")
	t.Setenv("TABLESIDE_OLLAMA_ENDPOINT", "http://10.0.0.5:11434")
	t.Setenv("TABLESIDE_OLLAMA_MODEL", "mistral")
	t.Setenv("TABLESIDE_LLM_LOG", "1")

	cfg := LoadConfig()

	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "http://10.0.0.5:11434", cfg.Ollama.Endpoint)
	assert.Equal(t, "mistral", cfg.Ollama.Model)
	assert.True(t, cfg.LogCalls)
}

func TestDiscoverConfig_PrefersOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
}

func TestDiscoverConfig_FallsBackToAnthropic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "ak-test")

	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", cfg.Provider)
}

func TestDiscoverConfig_NoKeys(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, ok := DiscoverConfig()
	assert.False(t, ok)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"openai with key", func(c *Config) { c.OpenAI.APIKey = "sk" }, false},
		{"openai without key", func(c *Config) {}, true},
		{"anthropic without key", func(c *Config) { c.Provider = "anthropic" }, true},
		{"ollama needs no key", func(c *Config) { c.Provider = "ollama" }, false},
		{"mock needs no key", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveModel(t *testing.T) {
	aliases := map[string]string{"claude-haiku": "claude-haiku-4-5"}

	assert.Equal(t, "claude-haiku-4-5", resolveModel("claude-haiku", aliases))
	assert.Equal(t, "gpt-4o-mini", resolveModel("gpt-4o-mini", aliases))
}
