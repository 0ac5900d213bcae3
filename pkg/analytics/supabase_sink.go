package analytics

import (
	"context"
	"errors"

	"github.com/supabase-community/supabase-go"
)

const analyticsTable = "usage_analytics"

// SupabaseSink appends usage events to the usage_analytics table.
type SupabaseSink struct {
	client *supabase.Client
}

// NewSupabaseSink creates a sink over an initialized Supabase client.
func NewSupabaseSink(client *supabase.Client) *SupabaseSink {
	if client == nil {
		panic("analytics: supabase client cannot be nil")
	}
	return &SupabaseSink{client: client}
}

type eventRow struct {
	ActionType string         `json:"action_type"`
	UserID     string         `json:"user_id"`
	Mode       *string        `json:"mode,omitempty"`
	Tone       *string        `json:"tone,omitempty"`
	TemplateID *string        `json:"template_id,omitempty"`
	Metadata   map[string]any `json:"metadata"`
}

// Record validates and inserts one event. The postgrest client carries its
// own HTTP timeouts; ctx is accepted for interface symmetry.
func (s *SupabaseSink) Record(ctx context.Context, event Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	row := eventRow{
		ActionType: string(event.Action),
		UserID:     event.UserID,
		Mode:       optional(event.Mode),
		Tone:       optional(event.Tone),
		TemplateID: optional(event.TemplateID),
		Metadata:   event.Metadata,
	}
	if row.Metadata == nil {
		row.Metadata = map[string]any{}
	}

	_, _, err := s.client.From(analyticsTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return errors.Join(ErrRecordFailed, err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
