package credentials

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileStorage keeps the credential in a single file, encrypted at rest with
// AES-256-GCM under a key derived from a caller-provided 32-byte secret.
// The secret typically comes from an environment variable or a machine-local
// keyfile; losing it makes the stored credential unreadable, which simply
// forces the user to supply the credential again.
type FileStorage struct {
	path   string
	secret []byte
}

// NewFileStorage creates a file-backed credential slot at path.
func NewFileStorage(path string, secret []byte) (*FileStorage, error) {
	if len(secret) != 32 {
		return nil, ErrInvalidKey
	}
	if path == "" {
		return nil, errors.New("credentials: path is required")
	}
	return &FileStorage{path: path, secret: secret}, nil
}

func (f *FileStorage) Get(ctx context.Context) (string, error) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}

	plaintext, err := open(f.secret, blob)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

func (f *FileStorage) Set(ctx context.Context, value string) error {
	blob, err := seal(f.secret, []byte(value))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}
	// 0600: the credential is a secret even encrypted.
	return os.WriteFile(f.path, blob, 0o600)
}
