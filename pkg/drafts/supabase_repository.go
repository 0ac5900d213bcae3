package drafts

import (
	"context"
	"errors"
	"time"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
)

const draftsTable = "drafts"

// SupabaseRepository implements Repository against the drafts table via
// PostgREST. Every filter carries both the draft id and the owning user id,
// so a guessed id never crosses user boundaries even with a privileged
// server key.
type SupabaseRepository struct {
	client *supabase.Client
}

// NewSupabaseRepository creates a repository over an initialized Supabase
// client.
func NewSupabaseRepository(client *supabase.Client) *SupabaseRepository {
	if client == nil {
		panic("drafts: supabase client cannot be nil")
	}
	return &SupabaseRepository{client: client}
}

// draftRow is the wire shape of the drafts table. Optional columns are
// pointers so absent values round-trip as SQL NULL.
type draftRow struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Mode       string    `json:"mode"`
	Tone       *string   `json:"tone,omitempty"`
	Prompt     *string   `json:"prompt,omitempty"`
	TemplateID *string   `json:"template_id,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitempty"`
}

// The postgrest client manages its own HTTP timeouts; ctx is accepted for
// interface symmetry with other repositories.

func (r *SupabaseRepository) List(ctx context.Context, userID string) ([]Draft, error) {
	var rows []draftRow
	_, err := r.client.From(draftsTable).
		Select("*", "", false).
		Eq("user_id", userID).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, errors.Join(ErrRemote, err)
	}

	out := make([]Draft, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDraft())
	}
	return out, nil
}

func (r *SupabaseRepository) Insert(ctx context.Context, userID string, draft NewDraft) (Draft, error) {
	if err := draft.Validate(); err != nil {
		return Draft{}, err
	}

	row := draftRow{
		UserID:     userID,
		Title:      draft.Title,
		Content:    draft.Content,
		Mode:       string(draft.Mode),
		Tone:       nullable(draft.Tone),
		Prompt:     nullable(draft.Prompt),
		TemplateID: nullable(draft.TemplateID),
		IsFavorite: draft.IsFavorite,
	}

	var inserted []draftRow
	_, err := r.client.From(draftsTable).
		Insert(row, false, "", "representation", "").
		ExecuteTo(&inserted)
	if err != nil {
		return Draft{}, errors.Join(ErrRemote, err)
	}
	if len(inserted) == 0 {
		return Draft{}, errors.Join(ErrRemote, errors.New("insert returned no row"))
	}
	return inserted[0].toDraft(), nil
}

func (r *SupabaseRepository) Update(ctx context.Context, id, userID string, patch Patch) (Draft, error) {
	if patch.IsZero() {
		return Draft{}, ErrEmptyPatch
	}

	changes := map[string]any{}
	if patch.Title != nil {
		changes["title"] = *patch.Title
	}
	if patch.Content != nil {
		changes["content"] = *patch.Content
	}
	if patch.IsFavorite != nil {
		changes["is_favorite"] = *patch.IsFavorite
	}

	var updated []draftRow
	_, err := r.client.From(draftsTable).
		Update(changes, "representation", "").
		Eq("id", id).
		Eq("user_id", userID).
		ExecuteTo(&updated)
	if err != nil {
		return Draft{}, errors.Join(ErrRemote, err)
	}
	if len(updated) == 0 {
		return Draft{}, ErrNotFound
	}
	return updated[0].toDraft(), nil
}

func (r *SupabaseRepository) Delete(ctx context.Context, id, userID string) error {
	_, _, err := r.client.From(draftsTable).
		Delete("", "").
		Eq("id", id).
		Eq("user_id", userID).
		Execute()
	if err != nil {
		return errors.Join(ErrRemote, err)
	}
	return nil
}

func (row draftRow) toDraft() Draft {
	return Draft{
		ID:         row.ID,
		UserID:     row.UserID,
		Title:      row.Title,
		Content:    row.Content,
		Mode:       Mode(row.Mode),
		Tone:       deref(row.Tone),
		Prompt:     deref(row.Prompt),
		TemplateID: deref(row.TemplateID),
		IsFavorite: row.IsFavorite,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
