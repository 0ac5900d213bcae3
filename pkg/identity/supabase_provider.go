package identity

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"

	"github.com/draftkit/draftkit/pkg/analytics"
)

// SupabaseProvider implements Provider over Supabase's GoTrue auth service.
// It keeps the signed-in user and access token in memory; CurrentUser never
// performs I/O. Login and signup emit usage events best-effort.
type SupabaseProvider struct {
	mu          sync.RWMutex
	client      *supabase.Client
	current     *User
	accessToken string
	sink        analytics.Sink
	log         *slog.Logger
}

// SupabaseProviderOption configures a SupabaseProvider.
type SupabaseProviderOption func(*SupabaseProvider)

// WithEventSink attaches an analytics sink for login/signup events.
func WithEventSink(sink analytics.Sink) SupabaseProviderOption {
	return func(p *SupabaseProvider) { p.sink = sink }
}

// WithProviderLogger sets the logger for the provider.
func WithProviderLogger(log *slog.Logger) SupabaseProviderOption {
	return func(p *SupabaseProvider) {
		if log != nil {
			p.log = log
		}
	}
}

// NewSupabaseProvider creates a provider over an initialized Supabase client.
func NewSupabaseProvider(client *supabase.Client, opts ...SupabaseProviderOption) *SupabaseProvider {
	if client == nil {
		panic("identity: supabase client cannot be nil")
	}

	p := &SupabaseProvider{
		client: client,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *SupabaseProvider) CurrentUser() (*User, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil, false
	}
	u := *p.current
	return &u, true
}

func (p *SupabaseProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	session, err := p.client.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Join(ErrSignInFailed, err)
	}

	user := userFromSession(&session.Session)

	p.mu.Lock()
	p.current = user
	p.accessToken = session.AccessToken
	p.mu.Unlock()

	analytics.Emit(ctx, p.sink, p.log, analytics.Event{
		Action: analytics.ActionLogin,
		UserID: user.ID,
	})

	out := *user
	return &out, nil
}

func (p *SupabaseProvider) SignUp(ctx context.Context, email, password, fullName string) (*User, error) {
	req := types.SignupRequest{
		Email:    email,
		Password: password,
	}
	if fullName != "" {
		req.Data = map[string]interface{}{"full_name": fullName}
	}

	if _, err := p.client.Auth.Signup(req); err != nil {
		return nil, errors.Join(ErrSignUpFailed, err)
	}

	// Sign in right away so the new account becomes the current user. When
	// email confirmation is required the sign-in is rejected; the account
	// still exists, so report success with what we know.
	user, err := p.SignIn(ctx, email, password)
	if err != nil {
		user = &User{Email: email, FullName: fullName}
	}

	if user.ID != "" {
		analytics.Emit(ctx, p.sink, p.log, analytics.Event{
			Action: analytics.ActionSignup,
			UserID: user.ID,
		})
	}
	return user, nil
}

func (p *SupabaseProvider) SignOut(ctx context.Context) error {
	p.mu.Lock()
	token := p.accessToken
	p.current = nil
	p.accessToken = ""
	p.mu.Unlock()

	if token == "" {
		return nil
	}
	if err := p.client.Auth.WithToken(token).Logout(); err != nil {
		// Local state is already cleared; the server session expires on its
		// own, so report but don't resurrect.
		return errors.Join(ErrSignOutFailed, err)
	}
	return nil
}

func (p *SupabaseProvider) ResetPassword(ctx context.Context, email string) error {
	if err := p.client.Auth.Recover(types.RecoverRequest{Email: email}); err != nil {
		return errors.Join(ErrResetFailed, err)
	}
	return nil
}

func userFromSession(session *types.Session) *User {
	user := &User{
		ID:    session.User.ID.String(),
		Email: session.User.Email,
	}
	if name, ok := session.User.UserMetadata["full_name"].(string); ok {
		user.FullName = name
	}
	return user
}
