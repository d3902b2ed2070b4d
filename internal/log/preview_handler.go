package log

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// MaxPreviewRunes is the longest string value, in runes, that is logged
// unchanged.
const MaxPreviewRunes = 80

// lineBreakMarker replaces line breaks in previews.
const lineBreakMarker = " ⏎ "

// previewEllipsis marks a preview that was cut short.
const previewEllipsis = "…"

// PreviewHandler wraps an slog.Handler to condense long string values.
// It intercepts log records and rewrites string attributes that contain
// line breaks or exceed MaxPreviewRunes before passing them to the
// underlying handler.
type PreviewHandler struct {
	// handler is the underlying slog handler that receives condensed records.
	handler slog.Handler
}

// NewPreviewHandler creates a new PreviewHandler wrapping the given handler.
// If handler is nil, the returned PreviewHandler uses slog.Default().Handler().
func NewPreviewHandler(handler slog.Handler) *PreviewHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &PreviewHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PreviewHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle condenses the record's attributes and passes it to the underlying handler.
func (h *PreviewHandler) Handle(ctx context.Context, r slog.Record) error {
	condensed := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		condensed.AddAttrs(h.condenseAttr(a))
		return true
	})

	return h.handler.Handle(ctx, condensed)
}

// WithAttrs returns a new handler with the given attributes added.
// Attributes are condensed before being added.
func (h *PreviewHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	condensed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		condensed[i] = h.condenseAttr(a)
	}
	return &PreviewHandler{handler: h.handler.WithAttrs(condensed)}
}

// WithGroup returns a new handler with the given group name.
func (h *PreviewHandler) WithGroup(name string) slog.Handler {
	return &PreviewHandler{handler: h.handler.WithGroup(name)}
}

// condenseAttr condenses a single attribute, recursively handling groups.
func (h *PreviewHandler) condenseAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		condensed := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			condensed[i] = h.condenseAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(condensed...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, Preview(a.Value.String()))
	}

	return a
}

// Preview returns s on a single line, cut to MaxPreviewRunes runes.
// Line breaks become " ⏎ " and a cut value ends with "…".
func Preview(s string) string {
	if strings.ContainsAny(s, "\r\n") {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
		s = strings.ReplaceAll(s, "\n", lineBreakMarker)
	}

	runes := []rune(s)
	if len(runes) <= MaxPreviewRunes {
		return s
	}
	return string(runes[:MaxPreviewRunes]) + previewEllipsis
}

// NewLogger creates a new slog.Logger that condenses long values.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	textHandler := slog.NewTextHandler(w, handlerOptions(verbose))
	return slog.New(NewPreviewHandler(textHandler))
}

// NewJSONLogger creates a new slog.Logger that condenses long values and
// outputs JSON format. Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	jsonHandler := slog.NewJSONHandler(w, handlerOptions(verbose))
	return slog.New(NewPreviewHandler(jsonHandler))
}

// handlerOptions returns the level settings shared by both loggers.
func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{
		Level: level,
	}
}
