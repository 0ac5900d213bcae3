package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftkit/draftkit/pkg/export"
)

func TestSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "colon prefix stripped",
			title: "Subject: Meeting Reschedule",
			want:  "Meeting Reschedule",
		},
		{
			name:  "no colon used verbatim",
			title: "Quick update",
			want:  "Quick update",
		},
		{
			name:  "middle segment only",
			title: "Re: Project X: status",
			want:  "Project X",
		},
		{
			name:  "trailing colon yields empty segment",
			title: "AI Draft:",
			want:  "",
		},
		{
			name:  "empty title",
			title: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, export.Subject(tt.title))
		})
	}
}

func TestMailtoURL(t *testing.T) {
	t.Parallel()

	got := export.MailtoURL("Subject: Quick hello", "Hi Sam,\n\nJust checking in & saying hi.")
	assert.Equal(t,
		"mailto:?subject=Quick%20hello&body=Hi%20Sam%2C%0A%0AJust%20checking%20in%20%26%20saying%20hi.",
		got)

	// No recipient: the user picks one in their mail client.
	assert.Contains(t, got, "mailto:?")
	assert.NotContains(t, got, "+", "spaces must encode as %20, not +")
}

func TestFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "spaces and punctuation",
			title: "Subject: Meeting Reschedule!",
			want:  "subject__meeting_reschedule_.txt",
		},
		{
			name:  "already safe",
			title: "update42",
			want:  "update42.txt",
		},
		{
			name:  "uppercase lowered",
			title: "TeamUpdate",
			want:  "teamupdate.txt",
		},
		{
			name:  "empty falls back",
			title: "",
			want:  "draft.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, export.FileName(tt.title))
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := export.WriteFile(dir, "Subject: Hello", "Hi there,\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "subject__hello.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hi there,\n", string(data))
}

func TestWriteFile_BadDir(t *testing.T) {
	t.Parallel()

	_, err := export.WriteFile(filepath.Join(t.TempDir(), "missing"), "t", "c")
	assert.ErrorIs(t, err, export.ErrWriteFailed)
}
