package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563eb"))
	heartStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#dc2626"))

	draftFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6b7280")).
			Padding(0, 1)
)

// renderDraft prints generated or rendered content inside a frame with its
// title on top.
func renderDraft(title, content string) string {
	var b strings.Builder
	b.WriteString(boldStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(draftFrame.Render(content))
	b.WriteString("\n")
	return b.String()
}

// favoriteMark returns the list marker for a draft's favorite state.
func favoriteMark(isFavorite bool) string {
	if isFavorite {
		return heartStyle.Render("♥")
	}
	return mutedStyle.Render("·")
}

// timeAgo formats a timestamp as a short relative age for list output.
func timeAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}

// truncate shortens s to maxLen runes, adding an ellipsis when cut.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-1]) + "…"
}
