package llm

import (
	"context"
	"fmt"
	"io"
	"time"
)

// NewProvider creates a Provider from configuration, wrapped with retry
// and observation decorators. logW receives call log lines when
// cfg.LogCalls is set; a nil writer disables logging.
func NewProvider(cfg Config, logW io.Writer) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "ollama":
		base = NewOllamaProvider(cfg.Ollama)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Decorator order: caller -> timeout -> retry -> observer -> base, so
	// the observer sees every individual attempt and the timeout bounds
	// the whole call including retries.
	var obs Observer = NoopObserver{}
	if cfg.LogCalls && logW != nil {
		obs = NewLogObserver(logW)
	}
	observed := WithObserver(base, obs)
	return WithTimeout(WithRetry(observed, cfg.Retry), cfg.Timeout), nil
}

// WithTimeout caps every Generate call at d. Zero or negative d returns the
// provider unchanged.
func WithTimeout(inner Provider, d time.Duration) Provider {
	if d <= 0 {
		return inner
	}
	return &timeoutProvider{inner: inner, timeout: d}
}

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.inner.Generate(ctx, req)
}

func (p *timeoutProvider) ModelID() string {
	return p.inner.ModelID()
}
