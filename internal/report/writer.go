package report

import (
	"io"
	"time"

	"github.com/nao1215/draftsaver/internal/label"
	"github.com/nao1215/draftsaver/internal/model"
)

// Writer defines the interface for draft output.
// Implementations render a RecordSet in one format.
type Writer interface {
	// Write renders the drafts to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(records *model.RecordSet) (int, error)
}

// WriterFactory creates a Writer bound to an output destination.
type WriterFactory func(output io.Writer) Writer

// Option configures a Writer.
type Option func(*baseWriter)

// WithLabels sets the label set used for headings and field names.
// The default is label.Default().
func WithLabels(labels *label.Set) Option {
	return func(w *baseWriter) {
		if labels != nil {
			w.labels = labels
		}
	}
}

// WithClock sets the function used to read the current time.
// The Markdown document stamps its generation time with it.
func WithClock(now func() time.Time) Option {
	return func(w *baseWriter) {
		if now != nil {
			w.now = now
		}
	}
}

// baseWriter provides common functionality for draft writers.
type baseWriter struct {
	output io.Writer
	labels *label.Set
	now    func() time.Time
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer, opts ...Option) baseWriter {
	w := baseWriter{
		output: output,
		labels: label.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}
