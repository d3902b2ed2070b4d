package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/draftsaver/internal/model"
)

// PromptPreviewLength is the number of prompt characters kept in the
// satire-image rows of the table.
const PromptPreviewLength = 100

// promptEllipsis is appended to prompts cut at PromptPreviewLength.
const promptEllipsis = "..."

// TSVWriter outputs drafts as a tab-separated table.
//
// Fields are written verbatim. A tab or newline inside a draft therefore
// shifts the columns or rows of that record; the table is meant for quick
// pasting into a spreadsheet and the Markdown document remains the
// faithful copy.
//
// Design decision: encoding/csv is not used because it quotes fields that
// contain quotes or line breaks, and spreadsheet imports of the table rely
// on the unquoted layout.
type TSVWriter struct {
	baseWriter
}

// NewTSVWriter creates a TSVWriter that outputs to the given writer.
func NewTSVWriter(output io.Writer, opts ...Option) *TSVWriter {
	return &TSVWriter{
		baseWriter: newBaseWriter(output, opts...),
	}
}

// NewTSVWriterFactory returns a WriterFactory for TSVWriters sharing the
// given options.
func NewTSVWriterFactory(opts ...Option) WriterFactory {
	return func(output io.Writer) Writer {
		return NewTSVWriter(output, opts...)
	}
}

// Write outputs the drafts in TSV format.
func (w *TSVWriter) Write(records *model.RecordSet) (int, error) {
	var sb strings.Builder
	l := w.labels

	writeRow(&sb, l.PostColumns...)

	// Each platform numbers its rows from 1.
	for _, platform := range model.Platforms() {
		posts, ok := records.Posts(platform)
		if !ok {
			continue
		}
		name := l.PlatformName(platform)
		for i, post := range posts {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%d\t%s\t%s\n",
				i+1, name, post.Content, post.CharCount, post.BuzzRule, post.EmotionTrigger)
		}
	}

	if images, ok := records.SatireImages(); ok {
		sb.WriteString("\n")
		fmt.Fprintf(&sb, "# %s\n", l.SatireTableHeading)
		writeRow(&sb, l.SatireColumns...)
		for i, image := range images {
			fmt.Fprintf(&sb, "%d\t%s\t%s\t%s\n",
				i+1, l.SatireType, image.Title, PromptPreview(image.Prompt))
		}
	}

	return io.WriteString(w.output, sb.String())
}

// writeRow writes tab-joined fields followed by a newline.
func writeRow(sb *strings.Builder, fields ...string) {
	sb.WriteString(strings.Join(fields, "\t"))
	sb.WriteString("\n")
}

// PromptPreview returns the prompt unchanged when it has at most
// PromptPreviewLength characters, otherwise its first PromptPreviewLength
// characters followed by "...". Characters are counted as runes so that
// multi-byte text is never split.
func PromptPreview(prompt string) string {
	runes := []rune(prompt)
	if len(runes) <= PromptPreviewLength {
		return prompt
	}
	return string(runes[:PromptPreviewLength]) + promptEllipsis
}
