package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all model provider configuration.
type Config struct {
	// Provider selects a backend: "openai", "anthropic", "ollama", "mock".
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Ollama    OllamaConfig
	Retry     RetryConfig

	// Timeout bounds a single request including retries.
	Timeout time.Duration

	// LogCalls enables per-call logging via the observer.
	LogCalls bool
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // default "gpt-4o-mini"
	BaseURL string // optional override for OpenAI-compatible APIs
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // default "claude-haiku"
}

// OllamaConfig holds configuration for a local Ollama instance.
type OllamaConfig struct {
	Endpoint string // default "http://localhost:11434"
	Model    string // default "llama3.2"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Ollama: OllamaConfig{
			Endpoint: "http://localhost:11434",
			Model:    "llama3.2",
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// LoadConfig builds a Config from TABLESIDE_* environment variables,
// falling back to defaults for unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TABLESIDE_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if k := os.Getenv("TABLESIDE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if m := os.Getenv("TABLESIDE_OPENAI_MODEL"); m != "" {
		cfg.OpenAI.Model = m
	}
	if u := os.Getenv("TABLESIDE_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}
	if k := os.Getenv("TABLESIDE_ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("TABLESIDE_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}
	if e := os.Getenv("TABLESIDE_OLLAMA_ENDPOINT"); e != "" {
		cfg.Ollama.Endpoint = e
	}
	if m := os.Getenv("TABLESIDE_OLLAMA_MODEL"); m != "" {
		cfg.Ollama.Model = m
	}
	if os.Getenv("TABLESIDE_LLM_LOG") == "1" {
		cfg.LogCalls = true
	}

	return cfg
}

// DiscoverConfig probes standard API key env vars (OpenAI then Anthropic)
// and returns a Config for the first provider whose key is found.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider = "openai"
		cfg.OpenAI.APIKey = k
		return cfg, true
	}
	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider = "anthropic"
		cfg.Anthropic.APIKey = k
		return cfg, true
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("TABLESIDE_OPENAI_API_KEY is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("TABLESIDE_ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "ollama", "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// resolveModel maps a friendly model name through the alias table, passing
// unknown names straight through.
func resolveModel(name string, aliases map[string]string) string {
	if resolved, ok := aliases[name]; ok {
		return resolved
	}
	return name
}
