// Package log provides the draftsaver logger, built on top of the
// standard slog package.
//
// This package extends slog to provide:
//   - Condensed previews of long or multi-line string values
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Previews
//
// Drafts routinely hold multi-paragraph post bodies and long image prompts.
// Logged as-is they split one record over many lines and bury the message.
// The PreviewHandler rewrites such values to a single line of at most
// MaxPreviewRunes characters before they reach the underlying handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	logger.Debug("loaded post",
//	    "content", post.Content, // Shown as "first line ⏎ second line…"
//	)
//
//	slog.SetDefault(logger)
package log
