package drafts

import "errors"

var (
	// ErrInvalidDraft indicates the draft violates the provenance invariant
	ErrInvalidDraft = errors.New("invalid draft")

	// ErrNotFound indicates no draft matches the id for the current user
	ErrNotFound = errors.New("draft not found")

	// ErrNoUser indicates a mutating operation without a signed-in user
	ErrNoUser = errors.New("no signed-in user")

	// ErrEmptyPatch indicates an update that changes nothing
	ErrEmptyPatch = errors.New("empty patch")

	// ErrRemote wraps persistence service failures
	ErrRemote = errors.New("draft persistence call failed")
)
