package analytics

import "fmt"

// ActionType identifies the user action a usage event records.
type ActionType string

const (
	ActionDraftGenerated ActionType = "draft_generated"
	ActionDraftSaved     ActionType = "draft_saved"
	ActionDraftCopied    ActionType = "draft_copied"
	ActionDraftEmailed   ActionType = "draft_emailed"
	ActionLogin          ActionType = "login"
	ActionSignup         ActionType = "signup"
)

// Valid reports whether the action is one of the known types.
func (a ActionType) Valid() bool {
	switch a {
	case ActionDraftGenerated, ActionDraftSaved, ActionDraftCopied,
		ActionDraftEmailed, ActionLogin, ActionSignup:
		return true
	}
	return false
}

// Event is one append-only usage record. Events are write-once and never read
// back by the core; they feed the analytics sink only.
type Event struct {
	Action     ActionType     `json:"action_type"`
	UserID     string         `json:"user_id"`
	Mode       string         `json:"mode,omitempty"`
	Tone       string         `json:"tone,omitempty"`
	TemplateID string         `json:"template_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Validate checks the event has the required fields.
func (e Event) Validate() error {
	if !e.Action.Valid() {
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidEvent, e.Action)
	}
	if e.UserID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidEvent)
	}
	return nil
}
