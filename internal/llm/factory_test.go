package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stallingProvider blocks until its context is done.
type stallingProvider struct{}

func (stallingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (stallingProvider) ModelID() string { return "stalling" }

func TestWithTimeout_BoundsSlowCalls(t *testing.T) {
	p := WithTimeout(stallingProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), time.Second)
}

func TestWithTimeout_ZeroDisables(t *testing.T) {
	inner := NewMockProvider()
	assert.Equal(t, Provider(inner), WithTimeout(inner, 0))
}

func TestNewProvider_UnknownName(t *testing.T) {
	_, err := NewProvider(Config{Provider: "psychic"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown LLM provider")
}

func TestNewProvider_MockBypassesDecorators(t *testing.T) {
	p, err := NewProvider(Config{Provider: "mock", Timeout: time.Second}, nil)
	require.NoError(t, err)
	_, ok := p.(*MockProvider)
	assert.True(t, ok)
}
