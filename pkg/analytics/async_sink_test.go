package analytics_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/analytics"
)

type captureSink struct {
	mu     sync.Mutex
	events []analytics.Event
	err    error
}

func (c *captureSink) Record(ctx context.Context, event analytics.Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, event)
	return nil
}

func (c *captureSink) recorded() []analytics.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]analytics.Event, len(c.events))
	copy(out, c.events)
	return out
}

func validEvent() analytics.Event {
	return analytics.Event{Action: analytics.ActionDraftGenerated, UserID: "u1"}
}

func TestAsyncSink_DeliversEvents(t *testing.T) {
	t.Parallel()

	capture := &captureSink{}
	sink, closeSink := analytics.NewAsyncSink(capture)

	require.NoError(t, sink.Record(context.Background(), validEvent()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, closeSink(ctx))

	events := capture.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, analytics.ActionDraftGenerated, events[0].Action)
}

func TestAsyncSink_RejectsInvalidEvent(t *testing.T) {
	t.Parallel()

	sink, closeSink := analytics.NewAsyncSink(&captureSink{})
	defer closeSink(context.Background())

	err := sink.Record(context.Background(), analytics.Event{Action: "bogus"})
	assert.ErrorIs(t, err, analytics.ErrInvalidEvent)
}

func TestAsyncSink_ClosedSink(t *testing.T) {
	t.Parallel()

	sink, closeSink := analytics.NewAsyncSink(&captureSink{})
	require.NoError(t, closeSink(context.Background()))

	err := sink.Record(context.Background(), validEvent())
	assert.ErrorIs(t, err, analytics.ErrSinkClosed)
}

func TestAsyncSink_DeliveryFailureSwallowed(t *testing.T) {
	t.Parallel()

	capture := &captureSink{err: errors.New("network down")}
	sink, closeSink := analytics.NewAsyncSink(capture)

	// Delivery failure must never reach the producer.
	assert.NoError(t, sink.Record(context.Background(), validEvent()))
	require.NoError(t, closeSink(context.Background()))
}

func TestEmit_SwallowsFailure(t *testing.T) {
	t.Parallel()

	// Emit must not panic or propagate anything regardless of sink behavior.
	analytics.Emit(context.Background(), &captureSink{err: errors.New("boom")}, nil, validEvent())
	analytics.Emit(context.Background(), nil, nil, validEvent())
}
