package identity

import "context"

// StaticProvider always reports the same user as signed in. It serves tests
// and single-user CLI mode, where identity is established out of band.
type StaticProvider struct {
	user *User
}

// NewStaticProvider creates a provider fixed to user. A nil user means
// "nobody signed in".
func NewStaticProvider(user *User) *StaticProvider {
	return &StaticProvider{user: user}
}

func (p *StaticProvider) CurrentUser() (*User, bool) {
	if p.user == nil {
		return nil, false
	}
	u := *p.user
	return &u, true
}

func (p *StaticProvider) SignIn(ctx context.Context, email, password string) (*User, error) {
	if p.user == nil {
		return nil, ErrSignInFailed
	}
	u := *p.user
	return &u, nil
}

func (p *StaticProvider) SignUp(ctx context.Context, email, password, fullName string) (*User, error) {
	return nil, ErrSignUpFailed
}

func (p *StaticProvider) SignOut(ctx context.Context) error { return nil }

func (p *StaticProvider) ResetPassword(ctx context.Context, email string) error {
	return ErrResetFailed
}
