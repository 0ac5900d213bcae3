package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/draftkit/draftkit/pkg/logger"
)

// AsyncOptions configures the buffering behavior of an AsyncSink.
type AsyncOptions struct {
	BufferSize    int           // Max events queued in memory before new events are dropped
	RecordTimeout time.Duration // Per-event timeout against the underlying sink
}

// AsyncSink decouples event recording from the caller. Record enqueues and
// returns immediately; a background worker drains the buffer against the
// underlying sink. A full buffer drops the event with a warning - usage
// analytics tolerates loss, and the caller must never block on it.
type AsyncSink struct {
	next    Sink
	events  chan Event
	done    chan struct{}
	wg      sync.WaitGroup
	options AsyncOptions
	log     *slog.Logger
}

// AsyncSinkOption configures an AsyncSink.
type AsyncSinkOption func(*AsyncSink)

// WithAsyncLogger sets the logger for the AsyncSink.
func WithAsyncLogger(log *slog.Logger) AsyncSinkOption {
	return func(s *AsyncSink) {
		if log != nil {
			s.log = log
		}
	}
}

// WithAsyncOptions overrides the buffering defaults.
func WithAsyncOptions(opts AsyncOptions) AsyncSinkOption {
	return func(s *AsyncSink) { s.options = opts }
}

// NewAsyncSink wraps next with a buffered background worker.
// The returned close function drains remaining events and must be called on
// shutdown.
func NewAsyncSink(next Sink, opts ...AsyncSinkOption) (*AsyncSink, func(context.Context) error) {
	if next == nil {
		panic("analytics: underlying sink cannot be nil")
	}

	s := &AsyncSink{
		next: next,
		done: make(chan struct{}),
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.options.BufferSize <= 0 {
		s.options.BufferSize = 256
	}
	if s.options.RecordTimeout <= 0 {
		s.options.RecordTimeout = 5 * time.Second
	}
	s.events = make(chan Event, s.options.BufferSize)

	s.wg.Add(1)
	go s.worker()

	return s, s.Close
}

// Record enqueues the event without blocking. It returns ErrSinkClosed after
// Close and ErrInvalidEvent for malformed events; a full buffer is not an
// error for the caller - the event is dropped and logged.
func (s *AsyncSink) Record(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	select {
	case <-s.done:
		return ErrSinkClosed
	default:
	}

	select {
	case s.events <- event:
		return nil
	default:
		s.log.LogAttrs(ctx, slog.LevelWarn, "usage event buffer full, dropping event",
			logger.Action(string(event.Action)),
			logger.UserID(event.UserID),
		)
		return nil
	}
}

// Close stops accepting events and drains the buffer, bounded by ctx.
func (s *AsyncSink) Close(ctx context.Context) error {
	select {
	case <-s.done:
		return nil
	default:
		close(s.done)
	}
	close(s.events)

	finished := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *AsyncSink) worker() {
	defer s.wg.Done()
	for event := range s.events {
		ctx, cancel := context.WithTimeout(context.Background(), s.options.RecordTimeout)
		if err := s.next.Record(ctx, event); err != nil {
			s.log.LogAttrs(ctx, slog.LevelWarn, "usage event delivery failed",
				logger.Action(string(event.Action)),
				logger.UserID(event.UserID),
				logger.Error(err),
			)
		}
		cancel()
	}
}
