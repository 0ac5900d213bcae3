package drafts

import (
	"fmt"
	"time"
)

// Mode records a draft's provenance: AI-generated or template-assembled.
// Immutable once the draft is created.
type Mode string

const (
	ModeAI     Mode = "ai"
	ModeManual Mode = "manual"
)

// Valid reports whether the mode is one of the known variants.
func (m Mode) Valid() bool {
	return m == ModeAI || m == ModeManual
}

// Draft is a persisted unit of generated content. ID and the timestamps are
// assigned by the persistence service on creation and never change locally.
// Optional fields are empty strings when absent: Tone is set only when
// generation used a tone, Prompt only for ModeAI, TemplateID only for
// ModeManual.
type Draft struct {
	ID         string
	UserID     string
	Title      string
	Content    string
	Mode       Mode
	Tone       string
	Prompt     string
	TemplateID string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewDraft is the client-built draft before persistence assigns id,
// ownership and timestamps.
type NewDraft struct {
	Title      string
	Content    string
	Mode       Mode
	Tone       string
	Prompt     string
	TemplateID string
	IsFavorite bool
}

// Validate enforces the provenance invariant: exactly one of Prompt and
// TemplateID is present, correlated with Mode.
func (d NewDraft) Validate() error {
	if !d.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidDraft, d.Mode)
	}
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidDraft)
	}
	if d.Content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidDraft)
	}

	switch d.Mode {
	case ModeAI:
		if d.Prompt == "" {
			return fmt.Errorf("%w: ai draft requires a prompt", ErrInvalidDraft)
		}
		if d.TemplateID != "" {
			return fmt.Errorf("%w: ai draft cannot reference a template", ErrInvalidDraft)
		}
	case ModeManual:
		if d.TemplateID == "" {
			return fmt.Errorf("%w: manual draft requires a template id", ErrInvalidDraft)
		}
		if d.Prompt != "" {
			return fmt.Errorf("%w: manual draft cannot carry a prompt", ErrInvalidDraft)
		}
	}
	return nil
}

// Patch carries partial mutable fields for an update. Nil means "leave
// unchanged".
type Patch struct {
	Title      *string
	Content    *string
	IsFavorite *bool
}

// IsZero reports whether the patch changes nothing.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Content == nil && p.IsFavorite == nil
}
