package drafts

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository implements Repository in process memory. It backs tests
// and offline single-user usage; semantics mirror the remote store, including
// user scoping and newest-first listing.
type MemoryRepository struct {
	mu     sync.RWMutex
	rows   map[string]Draft // keyed by draft id
	now    func() time.Time
	nextID func() string
}

// MemoryRepositoryOption configures a MemoryRepository.
type MemoryRepositoryOption func(*MemoryRepository)

// WithClock overrides the timestamp source, for deterministic tests.
func WithClock(now func() time.Time) MemoryRepositoryOption {
	return func(r *MemoryRepository) {
		if now != nil {
			r.now = now
		}
	}
}

func NewMemoryRepository(opts ...MemoryRepositoryOption) *MemoryRepository {
	r := &MemoryRepository{
		rows:   make(map[string]Draft),
		now:    func() time.Time { return time.Now().UTC() },
		nextID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRepository) List(ctx context.Context, userID string) ([]Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Draft
	for _, row := range r.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, userID string, draft NewDraft) (Draft, error) {
	if err := draft.Validate(); err != nil {
		return Draft{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	row := Draft{
		ID:         r.nextID(),
		UserID:     userID,
		Title:      draft.Title,
		Content:    draft.Content,
		Mode:       draft.Mode,
		Tone:       draft.Tone,
		Prompt:     draft.Prompt,
		TemplateID: draft.TemplateID,
		IsFavorite: draft.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	r.rows[row.ID] = row
	return row, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id, userID string, patch Patch) (Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok || row.UserID != userID {
		return Draft{}, ErrNotFound
	}

	if patch.Title != nil {
		row.Title = *patch.Title
	}
	if patch.Content != nil {
		row.Content = *patch.Content
	}
	if patch.IsFavorite != nil {
		row.IsFavorite = *patch.IsFavorite
	}
	row.UpdatedAt = r.now()

	r.rows[id] = row
	return row, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok || row.UserID != userID {
		return ErrNotFound
	}
	delete(r.rows, id)
	return nil
}
