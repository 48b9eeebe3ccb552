package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Model        string
	LatencyMs    int64
	Success      bool
	ErrorCode    string
	InputTokens  int
	OutputTokens int
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call model=%s latency_ms=%d tokens_in=%d tokens_out=%d status=%s\n",
		ts, event.Model, event.LatencyMs, event.InputTokens, event.OutputTokens, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// observedProvider is a decorator that reports every call to an Observer.
type observedProvider struct {
	inner Provider
	obs   Observer
}

// WithObserver wraps a Provider so each Generate call emits a CallEvent.
func WithObserver(p Provider, obs Observer) Provider {
	if obs == nil {
		obs = NoopObserver{}
	}
	return &observedProvider{inner: p, obs: obs}
}

func (o *observedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := o.inner.Generate(ctx, req)

	event := CallEvent{
		Model:     o.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		event.ErrorCode = errorCode(err)
	} else {
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
	}
	o.obs.OnCallComplete(event)

	return resp, err
}

func (o *observedProvider) ModelID() string {
	return o.inner.ModelID()
}

// errorCode maps an error to a short stable identifier for log lines.
func errorCode(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	}

	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return "rate_limit"
	}
	var inv *ErrInvalidResponse
	if errors.As(err, &inv) {
		return "invalid_response"
	}
	var unavail *ErrProviderUnavailable
	if errors.As(err, &unavail) {
		return "unavailable"
	}
	return "unknown"
}
