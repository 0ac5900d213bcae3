package drafts

import "context"

// Repository is the remote persistence collaborator for drafts. Every
// operation is scoped by the owning user's id in addition to any draft id -
// a user must never be able to touch another user's draft even with a
// guessed id. Each call is one request; there are no cross-operation
// transactions.
type Repository interface {
	// List returns all drafts owned by userID, newest first by creation time.
	List(ctx context.Context, userID string) ([]Draft, error)

	// Insert persists a new draft for userID and returns the canonical row
	// with id and timestamps assigned.
	Insert(ctx context.Context, userID string, draft NewDraft) (Draft, error)

	// Update applies the patch to the draft matching id AND userID and
	// returns the canonical updated row.
	Update(ctx context.Context, id, userID string, patch Patch) (Draft, error)

	// Delete removes the draft matching id AND userID.
	Delete(ctx context.Context, id, userID string) error
}
