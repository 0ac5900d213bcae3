package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/template"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tpl := template.Template{
		ID: "test",
		Fields: []template.Field{
			{Name: "recipient", Placeholder: "Recipient name"},
			{Name: "topic", Placeholder: "Topic"},
		},
		Body: "Hi {recipient},\n\nAbout {topic}: {topic} matters.\n\nBest,",
	}

	tests := []struct {
		name   string
		values map[string]string
		want   string
	}{
		{
			name:   "all fields filled",
			values: map[string]string{"recipient": "Sam", "topic": "the launch"},
			want:   "Hi Sam,\n\nAbout the launch: the launch matters.\n\nBest,",
		},
		{
			name:   "missing field falls back to bracketed placeholder",
			values: map[string]string{"recipient": "Sam"},
			want:   "Hi Sam,\n\nAbout [Topic]: [Topic] matters.\n\nBest,",
		},
		{
			name:   "empty value treated as missing",
			values: map[string]string{"recipient": "", "topic": "x"},
			want:   "Hi [Recipient name],\n\nAbout x: x matters.\n\nBest,",
		},
		{
			name:   "nil map",
			values: nil,
			want:   "Hi [Recipient name],\n\nAbout [Topic]: [Topic] matters.\n\nBest,",
		},
		{
			name:   "user input preserved verbatim",
			values: map[string]string{"recipient": "  Sam  ", "topic": "x"},
			want:   "Hi   Sam  ,\n\nAbout x: x matters.\n\nBest,",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, template.Render(tpl, tt.values))
		})
	}
}

func TestRender_NoDeclaredTokenSurvives(t *testing.T) {
	t.Parallel()

	for _, tpl := range template.Catalog() {
		got := template.Render(tpl, nil)
		for _, field := range tpl.Fields {
			assert.NotContains(t, got, "{"+field.Name+"}", "template %s", tpl.ID)
			assert.Contains(t, got, "["+field.Placeholder+"]", "template %s", tpl.ID)
		}
	}
}

func TestRender_UndeclaredTokenLeftVerbatim(t *testing.T) {
	t.Parallel()

	tpl := template.Template{
		Fields: []template.Field{{Name: "known", Placeholder: "Known"}},
		Body:   "{known} and {unknown}",
	}

	got := template.Render(tpl, map[string]string{"known": "a", "unknown": "b"})
	assert.Equal(t, "a and {unknown}", got)
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	tpl, ok := template.Lookup("team-update")
	require.True(t, ok)

	values := map[string]string{"project": "Atlas"}
	first := template.Render(tpl, values)
	second := template.Render(tpl, values)
	assert.Equal(t, first, second)
}

func TestRender_MeetingReschedulePartialFill(t *testing.T) {
	t.Parallel()

	tpl, ok := template.Lookup("meeting-reschedule")
	require.True(t, ok)

	got := template.Render(tpl, map[string]string{"recipient": "Sam"})

	assert.True(t, strings.HasPrefix(got, "Hi Sam,"), "got %q", got)
	assert.Contains(t, got, "[Meeting topic]")
	assert.Contains(t, got, "[Original date]")
	assert.Contains(t, got, "[New proposed date]")
}
