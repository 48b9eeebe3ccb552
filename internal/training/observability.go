package training

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// EngineEvent captures lightweight execution telemetry for one engine
// operation.
type EngineEvent struct {
	Op        string
	SessionID string
	LearnerID string
	Category  string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// EngineObserver receives engine operation events.
type EngineObserver interface {
	ObserveOp(ctx context.Context, event EngineEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveOp(context.Context, EngineEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes engine events to the provided writer.
func NewLogObserver(w io.Writer) EngineObserver {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveOp(ctx context.Context, event EngineEvent) {
	attrs := make([]any, 0, 10+len(event.Fields)*2)
	attrs = append(attrs,
		"op", event.Op,
		"session_id", event.SessionID,
		"learner_id", event.LearnerID,
		"category", event.Category,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "training_op", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "training_op", attrs...)
}
