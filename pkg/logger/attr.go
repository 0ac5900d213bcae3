package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// UserID records the user identifier under the key "user_id".
// If id is nil, it returns an empty Attr.
func UserID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("user_id", id)
}

// DraftID records the draft identifier under the key "draft_id".
// If id is nil, it returns an empty Attr.
func DraftID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("draft_id", id)
}

// Tone records the generation tone under the key "tone".
func Tone(tone string) slog.Attr {
	return slog.String("tone", tone)
}

// TemplateID records the template identifier under the key "template_id".
func TemplateID(id string) slog.Attr {
	return slog.String("template_id", id)
}

// Action records the usage event action under the key "action".
func Action(action string) slog.Attr {
	return slog.String("action", action)
}
