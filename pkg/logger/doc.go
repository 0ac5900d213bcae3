// Package logger builds configured slog.Logger instances for DraftKit
// components.
//
// The factory applies production-safe defaults (JSON handler, INFO level) and
// accepts functional options for level, format, output destination, and static
// attributes. Attribute helpers (Error, UserID, DraftID, ...) keep log keys
// consistent across packages.
//
//	log := logger.New(
//	    logger.WithService("draftkit"),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	)
package logger
