package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/draftkit/draftkit/pkg/analytics"
)

func TestActionType_Valid(t *testing.T) {
	t.Parallel()

	valid := []analytics.ActionType{
		analytics.ActionDraftGenerated,
		analytics.ActionDraftSaved,
		analytics.ActionDraftCopied,
		analytics.ActionDraftEmailed,
		analytics.ActionLogin,
		analytics.ActionSignup,
	}
	for _, action := range valid {
		assert.True(t, action.Valid(), string(action))
	}
	assert.False(t, analytics.ActionType("draft_printed").Valid())
	assert.False(t, analytics.ActionType("").Valid())
}

func TestEvent_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		event   analytics.Event
		wantErr bool
	}{
		{
			name:  "valid minimal",
			event: analytics.Event{Action: analytics.ActionLogin, UserID: "u1"},
		},
		{
			name:  "valid with context fields",
			event: analytics.Event{Action: analytics.ActionDraftSaved, UserID: "u1", Mode: "ai", Tone: "warm"},
		},
		{
			name:    "missing user",
			event:   analytics.Event{Action: analytics.ActionLogin},
			wantErr: true,
		},
		{
			name:    "unknown action",
			event:   analytics.Event{Action: "nope", UserID: "u1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.event.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, analytics.ErrInvalidEvent)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
