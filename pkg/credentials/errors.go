package credentials

import "errors"

var (
	// ErrNotFound indicates no credential is present in a storage backend
	ErrNotFound = errors.New("credential not found")

	// ErrEmptyCredential is returned when supplying a blank credential
	ErrEmptyCredential = errors.New("credential must not be empty")

	// ErrInvalidKey indicates the encryption key is not 32 bytes
	ErrInvalidKey = errors.New("invalid encryption key: must be 32 bytes")

	// ErrEncryptionFailed wraps failures while sealing a credential at rest
	ErrEncryptionFailed = errors.New("credential encryption failed")

	// ErrDecryptionFailed wraps failures while opening a stored credential
	ErrDecryptionFailed = errors.New("credential decryption failed")
)
