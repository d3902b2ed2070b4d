package report

import (
	"fmt"
	"io"

	"github.com/nao1215/draftsaver/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs drafts as a Markdown document.
//
// Layout:
//
//	# Title
//	**Generated at:** timestamp
//	## X section        (only when x_posts is present)
//	### Draft 1 ...
//	## Threads section  (only when threads_posts is present)
//	## Satire section   (only when satire_images is present)
//
// Post bodies and prompts go into fenced code blocks so that line breaks
// and Markdown characters in drafts are shown as written.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...Option) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output, opts...),
	}
}

// NewMarkdownWriterFactory returns a WriterFactory for MarkdownWriters
// sharing the given options.
func NewMarkdownWriterFactory(opts ...Option) WriterFactory {
	return func(output io.Writer) Writer {
		return NewMarkdownWriter(output, opts...)
	}
}

// Write outputs the drafts in Markdown format.
func (w *MarkdownWriter) Write(records *model.RecordSet) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md)

	for _, platform := range model.Platforms() {
		if posts, ok := records.Posts(platform); ok {
			w.writePosts(md, platform, posts)
		}
	}

	if images, ok := records.SatireImages(); ok {
		w.writeSatireImages(md, images)
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the generation timestamp.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown) {
	md.H1(w.labels.Title)
	md.PlainText("")
	md.PlainTextf("%s %s", markdown.Bold(w.labels.GeneratedAt), w.now().Format(w.labels.TimestampLayout))
	md.PlainText("")
}

// writePosts writes one platform section. Numbering starts at 1 per section.
func (w *MarkdownWriter) writePosts(md *markdown.Markdown, platform model.Platform, posts []model.PostRecord) {
	l := w.labels

	md.H2(l.PlatformSection(platform))
	md.PlainText("")

	for i, post := range posts {
		md.H3(fmt.Sprintf("%s %d", l.PostHeading, i+1))
		md.PlainText("")
		md.PlainText(markdown.Bold(l.Content))
		md.CodeBlocks(markdown.SyntaxHighlightNone, post.Content)
		md.PlainText("")
		md.PlainTextf("%s %d%s", markdown.Bold(l.CharCount), post.CharCount, l.CharCountUnit)
		md.PlainTextf("%s %s", markdown.Bold(l.BuzzRule), post.BuzzRule)
		md.PlainTextf("%s %s", markdown.Bold(l.EmotionTrigger), post.EmotionTrigger)
		md.PlainText("")
		md.HorizontalRule()
		md.PlainText("")
	}
}

// writeSatireImages writes the satire-image section.
func (w *MarkdownWriter) writeSatireImages(md *markdown.Markdown, images []model.SatireImageRecord) {
	l := w.labels

	md.H2(l.SatireSection)
	md.PlainText("")

	for i, image := range images {
		md.H3(fmt.Sprintf("%s %d", l.SatireHeading, i+1))
		md.PlainText("")
		md.PlainTextf("%s %s", markdown.Bold(l.SatireTitle), image.Title)
		md.PlainText("")
		md.PlainText(markdown.Bold(l.SatirePrompt))
		md.CodeBlocks(markdown.SyntaxHighlightNone, image.Prompt)
		md.PlainText("")
		md.PlainText(markdown.Bold(l.Composition))
		md.PlainText(image.Composition)
		md.PlainText("")
		md.HorizontalRule()
		md.PlainText("")
	}
}
