package main

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/supabase-community/supabase-go"

	"github.com/draftkit/draftkit/pkg/analytics"
	"github.com/draftkit/draftkit/pkg/config"
	"github.com/draftkit/draftkit/pkg/credentials"
	"github.com/draftkit/draftkit/pkg/drafts"
	"github.com/draftkit/draftkit/pkg/generator"
	"github.com/draftkit/draftkit/pkg/identity"
	"github.com/draftkit/draftkit/pkg/logger"
	"github.com/draftkit/draftkit/pkg/redis"
)

// defaultAPIKey is an optional build-time generation credential, injected via
// -ldflags "-X main.defaultAPIKey=...". Empty in normal builds.
var defaultAPIKey = ""

type appConfig struct {
	LogLevel  string `env:"DRAFTKIT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"DRAFTKIT_LOG_FORMAT" envDefault:"text"`
	StateDir  string `env:"DRAFTKIT_STATE_DIR"`
	Secret    string `env:"DRAFTKIT_SECRET"`
	Model     string `env:"DRAFTKIT_MODEL"`
}

type supabaseConfig struct {
	URL string `env:"SUPABASE_URL"`
	Key string `env:"SUPABASE_ANON_KEY"`
}

// app wires every collaborator for one CLI invocation. Commands that need
// remote services check the relevant field for nil and fail with a hint
// instead of panicking.
type app struct {
	log      *slog.Logger
	stateDir string

	resolver *credentials.Resolver
	gen      *generator.Generator
	store    *drafts.Store
	sessions *sessionStore
	sink     analytics.Sink

	// auth is nil without Supabase configuration; sign-in commands require it.
	auth *identity.SupabaseProvider

	closeSink func(context.Context) error
}

func newApp() (*app, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithFormat(parseFormat(cfg.LogFormat)),
		logger.WithOutput(os.Stderr),
		logger.WithService("draftkit"),
	)
	logger.SetAsDefault(log)

	stateDir := cfg.StateDir
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state dir: %w", err)
		}
		stateDir = filepath.Join(base, "draftkit")
	}
	if err := os.MkdirAll(stateDir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	a := &app{
		log:      log,
		stateDir: stateDir,
		sessions: newSessionStore(filepath.Join(stateDir, "session.json")),
	}

	var sink analytics.Sink
	var repo drafts.Repository = drafts.NewMemoryRepository()

	var supa supabaseConfig
	if err := config.Load(&supa); err != nil {
		return nil, err
	}
	if supa.URL != "" && supa.Key != "" {
		client, err := supabase.NewClient(supa.URL, supa.Key, nil)
		if err != nil {
			return nil, fmt.Errorf("create supabase client: %w", err)
		}

		async, closeSink := analytics.NewAsyncSink(
			analytics.NewSupabaseSink(client),
			analytics.WithAsyncLogger(log),
		)
		sink = async
		a.sink = async
		a.closeSink = closeSink

		repo = drafts.NewSupabaseRepository(client)
		a.auth = identity.NewSupabaseProvider(client,
			identity.WithEventSink(async),
			identity.WithProviderLogger(log),
		)
	}

	// The signed-in user is re-established from the session file on every
	// invocation; the auth provider is only consulted by the auth commands.
	user, _ := a.sessions.Load()
	provider := identity.NewStaticProvider(user)

	storage, err := a.credentialStorage(cfg)
	if err != nil {
		return nil, err
	}
	resolverOpts := []credentials.ResolverOption{
		credentials.WithBuildDefault(defaultAPIKey),
		credentials.WithResolverLogger(log),
	}
	if storage != nil {
		resolverOpts = append(resolverOpts, credentials.WithStorage(storage))
	}
	a.resolver = credentials.NewResolver(resolverOpts...)

	genOpts := []generator.GeneratorOption{
		generator.WithEventSink(sink),
		generator.WithGeneratorLogger(log),
	}
	if cfg.Model != "" {
		model := cfg.Model
		genOpts = append(genOpts, generator.WithBackendFactory(
			func(ctx context.Context, credential string) (generator.Backend, error) {
				return generator.NewGeminiBackend(ctx, credential, generator.WithModel(model))
			}))
	}
	a.gen = generator.New(a.resolver, genOpts...)

	a.store = drafts.NewStore(repo, provider,
		drafts.WithEventSink(sink),
		drafts.WithStoreLogger(log),
	)
	return a, nil
}

// credentialStorage picks the persistent credential slot: Redis when
// configured, otherwise an encrypted file when a secret is available, and
// none at all when neither is - the resolver then runs session-only.
func (a *app) credentialStorage(cfg appConfig) (credentials.Storage, error) {
	var rc redis.Config
	if err := config.Load(&rc); err != nil {
		return nil, err
	}
	if rc.Configured() {
		client, err := redis.Connect(context.Background(), rc)
		if err != nil {
			return nil, err
		}
		return credentials.NewRedisStorage(client), nil
	}

	if cfg.Secret == "" {
		return nil, nil
	}
	key := sha256.Sum256([]byte(cfg.Secret))
	return credentials.NewFileStorage(filepath.Join(a.stateDir, "credential.enc"), key[:])
}

func (a *app) shutdown(ctx context.Context) {
	if a.closeSink != nil {
		if err := a.closeSink(ctx); err != nil {
			a.log.LogAttrs(ctx, slog.LevelWarn, "usage event sink did not drain",
				logger.Error(err),
			)
		}
	}
}

// requireUser returns the persisted session user or an actionable error.
func (a *app) requireUser() (*identity.User, error) {
	user, err := a.sessions.Load()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("not signed in - run 'draftkit login' first")
	}
	return user, nil
}

func (a *app) requireAuth() (*identity.SupabaseProvider, error) {
	if a.auth == nil {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_ANON_KEY must be set for account commands")
	}
	return a.auth, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func parseFormat(s string) logger.Format {
	if s == "json" {
		return logger.FormatJSON
	}
	return logger.FormatText
}
