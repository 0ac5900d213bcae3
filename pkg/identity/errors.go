package identity

import "errors"

var (
	// ErrSignInFailed indicates the identity backend rejected the credentials
	ErrSignInFailed = errors.New("sign in failed")

	// ErrSignUpFailed indicates the identity backend rejected the registration
	ErrSignUpFailed = errors.New("sign up failed")

	// ErrSignOutFailed indicates the backend session could not be revoked
	ErrSignOutFailed = errors.New("sign out failed")

	// ErrResetFailed indicates the password reset request was rejected
	ErrResetFailed = errors.New("password reset failed")

	// ErrNoUser indicates an operation that requires a signed-in user
	ErrNoUser = errors.New("no signed-in user")
)
