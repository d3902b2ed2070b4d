package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/draftsaver/internal/model"
)

// JSONWriter outputs drafts as an input document, the format read back by
// the loader. It is used to export the built-in sample as a starting point
// for new input files.
//
// Design decision: We use standard encoding/json rather than a third-party
// JSON library because:
// 1. It's part of the standard library (no extra dependencies)
// 2. It's sufficient for our needs
// 3. The loader accepts exactly what it produces
type JSONWriter struct {
	baseWriter

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string. Empty means compact output.
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// NewJSONWriterFactory returns a WriterFactory for JSONWriter.
func NewJSONWriterFactory(opts ...JSONWriterOption) WriterFactory {
	return func(output io.Writer) Writer {
		return NewJSONWriter(output, opts...)
	}
}

// inputDocument is the on-disk shape of a RecordSet.
// A nil pointer omits the group; a pointer to an empty slice keeps it.
type inputDocument struct {
	XPosts       *[]model.PostRecord        `json:"x_posts,omitempty"`
	ThreadsPosts *[]model.PostRecord        `json:"threads_posts,omitempty"`
	SatireImages *[]model.SatireImageRecord `json:"satire_images,omitempty"`
}

// newInputDocument converts records, keeping absent groups absent.
func newInputDocument(records *model.RecordSet) inputDocument {
	var doc inputDocument
	if posts, ok := records.Posts(model.PlatformX); ok {
		doc.XPosts = present(posts)
	}
	if posts, ok := records.Posts(model.PlatformThreads); ok {
		doc.ThreadsPosts = present(posts)
	}
	if images, ok := records.SatireImages(); ok {
		doc.SatireImages = present(images)
	}
	return doc
}

// present returns a pointer to s, replacing nil with an empty slice so an
// empty group encodes as [] rather than null.
func present[T any](s []T) *[]T {
	if s == nil {
		s = []T{}
	}
	return &s
}

// Write outputs the drafts as a JSON input document.
func (w *JSONWriter) Write(records *model.RecordSet) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(w.indentPrefix, w.indentString)

	// Encode adds the trailing newline.
	if err := enc.Encode(newInputDocument(records)); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}
