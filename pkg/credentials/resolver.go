package credentials

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/draftkit/draftkit/pkg/logger"
)

// Resolver determines which credential the generation backend should use.
//
// Sources are consulted in strict priority order: the in-memory session value
// set via Supply, then the persisted Storage slot, then the build-time
// default. The first present value wins; sources are never merged. The
// resolver never validates the credential - a bad key is only discovered when
// a remote generation call fails.
type Resolver struct {
	mu           sync.RWMutex
	session      string
	storage      Storage
	buildDefault string
	log          *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithStorage attaches a persistent credential slot.
func WithStorage(s Storage) ResolverOption {
	return func(r *Resolver) { r.storage = s }
}

// WithBuildDefault sets the build-time-injected default credential,
// typically wired through -ldflags.
func WithBuildDefault(value string) ResolverOption {
	return func(r *Resolver) { r.buildDefault = value }
}

// WithResolverLogger sets the logger for the Resolver.
func WithResolverLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// NewResolver creates a Resolver. All sources are optional; a resolver with
// no sources simply never resolves, which routes generation to the offline
// fallback.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the highest-priority credential present, or false when no
// source has one. A storage read failure degrades to the next source; it is
// logged but never surfaced, since the caller has a guaranteed fallback path.
func (r *Resolver) Resolve(ctx context.Context) (string, bool) {
	r.mu.RLock()
	session := r.session
	r.mu.RUnlock()

	if session != "" {
		return session, true
	}

	if r.storage != nil {
		value, err := r.storage.Get(ctx)
		switch {
		case err == nil && value != "":
			return value, true
		case err != nil && !errors.Is(err, ErrNotFound):
			r.log.LogAttrs(ctx, slog.LevelWarn, "credential storage read failed",
				logger.Error(err),
			)
		}
	}

	if r.buildDefault != "" {
		return r.buildDefault, true
	}
	return "", false
}

// Supply records a user-provided credential in both the session slot and the
// persistent storage, so later calls in this session and in future sessions
// resolve without re-prompting. The session slot is updated even when the
// persistent write fails; the write error is returned so the caller can warn
// that the credential will not outlive the process.
func (r *Resolver) Supply(ctx context.Context, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrEmptyCredential
	}

	r.mu.Lock()
	r.session = value
	r.mu.Unlock()

	if r.storage == nil {
		return nil
	}
	if err := r.storage.Set(ctx, value); err != nil {
		r.log.LogAttrs(ctx, slog.LevelWarn, "credential storage write failed",
			logger.Error(err),
		)
		return err
	}
	return nil
}

// Clear drops the in-memory session credential. The persisted slot is left
// untouched.
func (r *Resolver) Clear() {
	r.mu.Lock()
	r.session = ""
	r.mu.Unlock()
}
