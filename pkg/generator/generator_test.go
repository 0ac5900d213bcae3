package generator_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/analytics"
	"github.com/draftkit/draftkit/pkg/credentials"
	"github.com/draftkit/draftkit/pkg/generator"
)

type stubBackend struct {
	text  string
	err   error
	calls int
}

func (b *stubBackend) Complete(ctx context.Context, prompt string) (string, error) {
	b.calls++
	if b.err != nil {
		return "", b.err
	}
	return b.text, nil
}

type recordingSink struct {
	mu     sync.Mutex
	events []analytics.Event
}

func (r *recordingSink) Record(ctx context.Context, event analytics.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func factoryFor(b generator.Backend, err error) generator.BackendFactory {
	return func(ctx context.Context, credential string) (generator.Backend, error) {
		return b, err
	}
}

func resolverWith(credential string) *credentials.Resolver {
	if credential == "" {
		return credentials.NewResolver()
	}
	return credentials.NewResolver(credentials.WithBuildDefault(credential))
}

func TestGenerate_NoCredentialSkipsNetwork(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{text: "should not be used"}
	g := generator.New(resolverWith(""), generator.WithBackendFactory(factoryFor(backend, nil)))

	got := g.Generate(context.Background(), generator.Request{
		Prompt: "ask for a deadline extension",
		Tone:   generator.ToneDirect,
	})

	assert.Zero(t, backend.calls, "no network attempt without a credential")
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Subject: ask for a deadline extension")
	assert.Contains(t, got, "I need to ask for a deadline extension.")
	assert.Contains(t, got, "Please confirm receipt and next steps.")
}

func TestGenerate_RemoteSuccess(t *testing.T) {
	t.Parallel()

	backend := &stubBackend{text: "  Subject: Hello\n\nDear team,\n\nBody.\n\nBest,  "}
	g := generator.New(resolverWith("key"), generator.WithBackendFactory(factoryFor(backend, nil)))

	got := g.Generate(context.Background(), generator.Request{Prompt: "say hello", Tone: generator.ToneProfessional})

	assert.Equal(t, 1, backend.calls)
	assert.Equal(t, "Subject: Hello\n\nDear team,\n\nBody.\n\nBest,", got, "trimmed, otherwise verbatim")
}

func TestGenerate_RemoteFailureFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		backend *stubBackend
	}{
		{name: "network error", backend: &stubBackend{err: errors.New("connection refused")}},
		{name: "empty response", backend: &stubBackend{err: generator.ErrEmptyResponse}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := generator.New(resolverWith("valid-key"),
				generator.WithBackendFactory(factoryFor(tt.backend, nil)))

			got := g.Generate(context.Background(), generator.Request{Prompt: "reschedule", Tone: generator.ToneWarm})

			require.NotEmpty(t, got)
			assert.Contains(t, got, "Subject: reschedule")
			assert.Contains(t, got, "Warmest regards,")
		})
	}
}

func TestGenerate_FactoryFailureFallsBack(t *testing.T) {
	t.Parallel()

	g := generator.New(resolverWith("key"),
		generator.WithBackendFactory(factoryFor(nil, errors.New("bad transport"))))

	got := g.Generate(context.Background(), generator.Request{Prompt: "check in", Tone: generator.ToneFriendly})
	require.NotEmpty(t, got)
	assert.Contains(t, got, "Subject: check in")
}

func TestGenerate_TimeoutFallsBack(t *testing.T) {
	t.Parallel()

	slow := generator.BackendFactory(func(ctx context.Context, credential string) (generator.Backend, error) {
		return backendFunc(func(ctx context.Context, prompt string) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(time.Second):
				return "too late", nil
			}
		}), nil
	})

	g := generator.New(resolverWith("key"),
		generator.WithBackendFactory(slow),
		generator.WithTimeout(10*time.Millisecond))

	got := g.Generate(context.Background(), generator.Request{Prompt: "slow thing", Tone: generator.ToneDirect})
	assert.Contains(t, got, "Subject: slow thing")
}

type backendFunc func(ctx context.Context, prompt string) (string, error)

func (f backendFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func TestGenerate_EmitsEventWithUser(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	g := generator.New(resolverWith(""), generator.WithEventSink(sink))

	g.Generate(context.Background(), generator.Request{
		Prompt: "hello",
		Tone:   generator.ToneWarm,
		UserID: "u1",
	})

	require.Len(t, sink.events, 1)
	event := sink.events[0]
	assert.Equal(t, analytics.ActionDraftGenerated, event.Action)
	assert.Equal(t, "u1", event.UserID)
	assert.Equal(t, "ai", event.Mode)
	assert.Equal(t, "warm", event.Tone)
}

func TestGenerate_NoEventWithoutUser(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	g := generator.New(resolverWith(""), generator.WithEventSink(sink))

	g.Generate(context.Background(), generator.Request{Prompt: "hello", Tone: generator.ToneWarm})
	assert.Empty(t, sink.events)
}

func TestGenerate_InvalidToneDefaultsToProfessional(t *testing.T) {
	t.Parallel()

	g := generator.New(resolverWith(""))

	got := g.Generate(context.Background(), generator.Request{Prompt: "renew contract", Tone: "sarcastic"})
	assert.Contains(t, got, "Dear [Recipient Name],")
	assert.True(t, strings.HasPrefix(got, "Subject: renew contract"))
}
