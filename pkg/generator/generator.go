package generator

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/draftkit/draftkit/pkg/analytics"
	"github.com/draftkit/draftkit/pkg/credentials"
	"github.com/draftkit/draftkit/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// BackendFactory builds a Backend from a resolved credential. The backend is
// constructed per call because the credential can change mid-session when the
// user supplies a new one.
type BackendFactory func(ctx context.Context, credential string) (Backend, error)

// Request describes one generation call. UserID is optional; when present, a
// draft_generated usage event is emitted on success.
type Request struct {
	Prompt string
	Tone   Tone
	UserID string
}

// Generator turns a prompt and tone into finished draft text. Its defining
// contract: Generate always succeeds. Remote generation is attempted at most
// once per call when a credential resolves; every failure mode - no
// credential, network error, empty response, timeout - lands on the
// deterministic local fallback.
type Generator struct {
	resolver *credentials.Resolver
	factory  BackendFactory
	sink     analytics.Sink
	log      *slog.Logger
	timeout  time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithBackendFactory overrides how backends are built from credentials.
func WithBackendFactory(factory BackendFactory) GeneratorOption {
	return func(g *Generator) {
		if factory != nil {
			g.factory = factory
		}
	}
}

// WithEventSink attaches an analytics sink for draft_generated events.
func WithEventSink(sink analytics.Sink) GeneratorOption {
	return func(g *Generator) { g.sink = sink }
}

// WithTimeout bounds the remote generation call. Generation must never hang
// indefinitely; on expiry the call is treated as a failure and routed to the
// fallback.
func WithTimeout(timeout time.Duration) GeneratorOption {
	return func(g *Generator) {
		if timeout > 0 {
			g.timeout = timeout
		}
	}
}

// WithGeneratorLogger sets the logger for the Generator.
func WithGeneratorLogger(log *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if log != nil {
			g.log = log
		}
	}
}

// New creates a Generator over a credential resolver.
func New(resolver *credentials.Resolver, opts ...GeneratorOption) *Generator {
	if resolver == nil {
		panic("generator: credential resolver cannot be nil")
	}

	g := &Generator{
		resolver: resolver,
		log:      slog.Default(),
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.factory == nil {
		g.factory = func(ctx context.Context, credential string) (Backend, error) {
			return NewGeminiBackend(ctx, credential)
		}
	}
	return g
}

// Generate produces draft text for the request. It never returns an error
// and never returns empty text. Unknown tones render as professional.
func (g *Generator) Generate(ctx context.Context, req Request) string {
	tone := req.Tone
	if !tone.Valid() {
		tone = ToneProfessional
	}

	text, remote := g.generate(ctx, req.Prompt, tone)

	if req.UserID != "" {
		analytics.Emit(ctx, g.sink, g.log, analytics.Event{
			Action:   analytics.ActionDraftGenerated,
			UserID:   req.UserID,
			Mode:     "ai",
			Tone:     string(tone),
			Metadata: map[string]any{"remote": remote},
		})
	}
	return text
}

// generate runs the per-call state machine and reports whether the text came
// from the remote backend.
func (g *Generator) generate(ctx context.Context, prompt string, tone Tone) (string, bool) {
	credential, ok := g.resolver.Resolve(ctx)
	if !ok {
		g.log.LogAttrs(ctx, slog.LevelDebug, "no credential resolved, using offline generation",
			logger.Tone(string(tone)),
		)
		return FallbackDraft(prompt, tone), false
	}

	backend, err := g.factory(ctx, credential)
	if err != nil {
		g.log.LogAttrs(ctx, slog.LevelWarn, "generation backend unavailable, falling back",
			logger.Tone(string(tone)),
			logger.Error(err),
		)
		return FallbackDraft(prompt, tone), false
	}

	if closer, ok := backend.(io.Closer); ok {
		defer closer.Close()
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := backend.Complete(callCtx, composePrompt(prompt, tone))
	if err != nil {
		g.log.LogAttrs(ctx, slog.LevelWarn, "remote generation failed, falling back",
			logger.Tone(string(tone)),
			logger.Error(err),
		)
		return FallbackDraft(prompt, tone), false
	}
	// The backend is trusted to follow the instruction; no reformatting.
	return strings.TrimSpace(text), true
}
