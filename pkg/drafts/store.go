package drafts

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/draftkit/draftkit/pkg/analytics"
	"github.com/draftkit/draftkit/pkg/identity"
	"github.com/draftkit/draftkit/pkg/logger"
)

// State is the store's synchronization state.
type State string

const (
	// StateUninitialized: no signed-in user, empty cache.
	StateUninitialized State = "uninitialized"
	// StateLoading: a full fetch is in flight for the bound user.
	StateLoading State = "loading"
	// StateReady: the cache reflects the last completed sync.
	StateReady State = "ready"
)

// Store is the authoritative client-side cache of the signed-in user's
// drafts, kept in sync with the persistence collaborator.
//
// Mutations follow a confirm-then-apply policy: the local list changes only
// after the remote store acknowledges, and updates reconcile against the
// canonical returned row. Deletes are never applied optimistically - an
// optimistic delete that failed remotely would silently resurrect on the
// next Load.
//
// The store never holds drafts across users: signing out (Reset) clears the
// cache, and Load for a different user replaces rather than merges.
type Store struct {
	mu       sync.RWMutex
	repo     Repository
	provider identity.Provider
	sink     analytics.Sink
	log      *slog.Logger

	state  State
	userID string
	list   []Draft
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithEventSink attaches an analytics sink for draft_saved events.
func WithEventSink(sink analytics.Sink) StoreOption {
	return func(s *Store) { s.sink = sink }
}

// WithStoreLogger sets the logger for the Store.
func WithStoreLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// NewStore creates a Store over a repository and an identity provider.
func NewStore(repo Repository, provider identity.Provider, opts ...StoreOption) *Store {
	if repo == nil {
		panic("drafts: repository cannot be nil")
	}
	if provider == nil {
		panic("drafts: identity provider cannot be nil")
	}

	s := &Store{
		repo:     repo,
		provider: provider,
		log:      slog.Default(),
		state:    StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current synchronization state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Drafts returns a copy of the local list, newest first.
func (s *Store) Drafts() []Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Draft, len(s.list))
	copy(out, s.list)
	return out
}

// Get returns the locally cached draft with the given id.
func (s *Store) Get(id string) (Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.list {
		if d.ID == id {
			return d, true
		}
	}
	return Draft{}, false
}

// Load fetches all drafts owned by the current user and replaces the local
// list. Without a signed-in user it clears the cache and reports ErrNoUser.
// A fetch failure leaves the local list as it was (empty on a first or
// cross-user load) and surfaces the error; it is never fatal.
func (s *Store) Load(ctx context.Context) error {
	user, ok := s.provider.CurrentUser()
	if !ok {
		s.Reset()
		return ErrNoUser
	}

	s.mu.Lock()
	if s.userID != user.ID {
		// Never merge stale state across users.
		s.list = nil
	}
	s.userID = user.ID
	s.state = StateLoading
	s.mu.Unlock()

	fetched, err := s.repo.List(ctx, user.ID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.userID != user.ID {
		// The store was reset or rebound while the fetch was in flight;
		// a completed response must not resurrect old state.
		return nil
	}
	s.state = StateReady
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "failed to load drafts",
			logger.UserID(user.ID),
			logger.Error(err),
		)
		return errors.Join(ErrRemote, err)
	}
	s.list = fetched
	return nil
}

// bindLocked ties an unbound store to the mutating user, so local state
// applies from the first mutation even before any Load. A store already bound
// to a different user keeps its binding; the caller's user check then skips
// the local apply. Callers must hold s.mu.
func (s *Store) bindLocked(userID string) {
	if s.userID == "" {
		s.userID = userID
	}
}

// Reset clears the cache and returns to the uninitialized state. Called on
// sign-out so no drafts leak across users.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateUninitialized
	s.userID = ""
	s.list = nil
}

// Save persists a new draft for the signed-in user. The second return value
// is the explicit "saved" signal: false without a signed-in user (a
// precondition failure - no network call is made), for an invalid draft, and
// on a remote failure; in every false case the local list is unchanged. On
// success the canonical row is prepended, keeping newest-first order, a
// draft_saved event is emitted, and the row is returned.
func (s *Store) Save(ctx context.Context, draft NewDraft) (Draft, bool) {
	user, ok := s.provider.CurrentUser()
	if !ok {
		s.log.LogAttrs(ctx, slog.LevelWarn, "save rejected: no signed-in user")
		return Draft{}, false
	}

	if err := draft.Validate(); err != nil {
		s.log.LogAttrs(ctx, slog.LevelWarn, "save rejected: invalid draft",
			logger.UserID(user.ID),
			logger.Error(err),
		)
		return Draft{}, false
	}

	saved, err := s.repo.Insert(ctx, user.ID, draft)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "failed to save draft",
			logger.UserID(user.ID),
			logger.Error(err),
		)
		return Draft{}, false
	}

	s.mu.Lock()
	s.bindLocked(user.ID)
	if s.userID == user.ID {
		s.list = append([]Draft{saved}, s.list...)
	}
	s.mu.Unlock()

	analytics.Emit(ctx, s.sink, s.log, analytics.Event{
		Action:     analytics.ActionDraftSaved,
		UserID:     user.ID,
		Mode:       string(draft.Mode),
		Tone:       draft.Tone,
		TemplateID: draft.TemplateID,
	})
	return saved, true
}

// Update applies a partial change to the draft with the given id, scoped to
// the signed-in user. On success the canonical returned row replaces the
// matching local entry; all other entries are untouched. On failure the
// local list is unchanged and the error is surfaced.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (Draft, error) {
	user, ok := s.provider.CurrentUser()
	if !ok {
		return Draft{}, ErrNoUser
	}

	updated, err := s.repo.Update(ctx, id, user.ID, patch)
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "failed to update draft",
			logger.UserID(user.ID),
			logger.DraftID(id),
			logger.Error(err),
		)
		return Draft{}, err
	}

	s.mu.Lock()
	s.bindLocked(user.ID)
	if s.userID == user.ID {
		for i := range s.list {
			if s.list[i].ID == id {
				s.list[i] = updated
				break
			}
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the draft remotely, then locally - strictly in that order.
func (s *Store) Delete(ctx context.Context, id string) error {
	user, ok := s.provider.CurrentUser()
	if !ok {
		return ErrNoUser
	}

	if err := s.repo.Delete(ctx, id, user.ID); err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "failed to delete draft",
			logger.UserID(user.ID),
			logger.DraftID(id),
			logger.Error(err),
		)
		return err
	}

	s.mu.Lock()
	s.bindLocked(user.ID)
	if s.userID == user.ID {
		for i := range s.list {
			if s.list[i].ID == id {
				s.list = append(s.list[:i], s.list[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()
	return nil
}

// ToggleFavorite flips the favorite flag of a locally cached draft. The
// current value is read from the local cache at call time; concurrent
// toggles are last-write-wins against the remote store. An id not present
// locally is an inert no-op - no call is issued and no error returned.
func (s *Store) ToggleFavorite(ctx context.Context, id string) error {
	current, ok := s.Get(id)
	if !ok {
		return nil
	}

	flipped := !current.IsFavorite
	_, err := s.Update(ctx, id, Patch{IsFavorite: &flipped})
	return err
}
