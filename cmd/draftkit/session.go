package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/draftkit/draftkit/pkg/identity"
)

// sessionStore persists the signed-in user between CLI invocations. Only the
// user record is stored; the auth token is not kept, so account operations
// re-authenticate and data operations scope by user id.
type sessionStore struct {
	path string
}

func newSessionStore(path string) *sessionStore {
	return &sessionStore{path: path}
}

type sessionFile struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Load returns the persisted user, or nil when nobody is signed in.
func (s *sessionStore) Load() (*identity.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session: %w", err)
	}

	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	if f.UserID == "" {
		return nil, nil
	}
	return &identity.User{ID: f.UserID, Email: f.Email, FullName: f.FullName}, nil
}

func (s *sessionStore) Save(user *identity.User) error {
	data, err := json.MarshalIndent(sessionFile{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
	}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *sessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
