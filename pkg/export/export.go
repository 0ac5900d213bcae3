package export

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Subject derives the email subject from a draft title. Generated titles
// carry a "Subject: ..." style prefix; the segment between the first and
// second colon is the subject proper. Titles without a colon are used as-is.
func Subject(title string) string {
	if parts := strings.Split(title, ":"); len(parts) > 1 {
		return strings.TrimSpace(parts[1])
	}
	return title
}

// MailtoURL builds a recipient-less mailto link that opens the user's mail
// client with the subject and body prefilled.
func MailtoURL(title, content string) string {
	return fmt.Sprintf("mailto:?subject=%s&body=%s", escape(Subject(title)), escape(content))
}

// FileName derives a filesystem-safe .txt name from a draft title: each
// character outside [a-zA-Z0-9] becomes an underscore and the result is
// lowercased.
func FileName(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	name := b.String()
	if name == "" {
		name = "draft"
	}
	return name + ".txt"
}

// WriteFile saves the draft content as a plain-text file under dir, named
// after the title. It returns the full path written.
func WriteFile(dir, title, content string) (string, error) {
	path := filepath.Join(dir, FileName(title))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	return path, nil
}

// escape percent-encodes a mailto component. Query escaping is close but
// encodes spaces as '+', which mail clients render literally; mailto needs
// %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
