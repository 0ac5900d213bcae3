package identity

import "context"

// User is the signed-in principal as the core sees it: a stable identifier
// plus display fields. The core never inspects tokens or sessions.
type User struct {
	ID       string
	Email    string
	FullName string
}

// Provider is the identity collaborator. CurrentUser answers "is a user
// present" without I/O; the remaining operations talk to the identity
// backend and return a descriptive failure on rejection.
type Provider interface {
	CurrentUser() (*User, bool)
	SignIn(ctx context.Context, email, password string) (*User, error)
	SignUp(ctx context.Context, email, password, fullName string) (*User, error)
	SignOut(ctx context.Context) error
	ResetPassword(ctx context.Context, email string) error
}
