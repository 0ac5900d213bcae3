package analytics

import (
	"context"
	"log/slog"

	"github.com/draftkit/draftkit/pkg/logger"
)

// Sink appends usage events to an analytics backend.
type Sink interface {
	Record(ctx context.Context, event Event) error
}

// NoopSink discards every event. Used in tests and when analytics is disabled.
type NoopSink struct{}

func (NoopSink) Record(ctx context.Context, event Event) error { return nil }

// Emit records an event best-effort: any failure is logged and swallowed.
// Analytics is strictly auxiliary - a failure here must never change the
// outcome of the operation that triggered it, so every caller in this module
// goes through Emit rather than calling Record directly.
func Emit(ctx context.Context, sink Sink, log *slog.Logger, event Event) {
	if sink == nil {
		return
	}
	if log == nil {
		log = slog.Default()
	}
	if err := sink.Record(ctx, event); err != nil {
		log.LogAttrs(ctx, slog.LevelWarn, "usage event dropped",
			logger.Action(string(event.Action)),
			logger.UserID(event.UserID),
			logger.Error(err),
		)
	}
}
