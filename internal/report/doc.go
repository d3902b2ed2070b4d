// Package report renders drafts into their output formats.
//
// This package contains writers for the two output files:
//   - MarkdownWriter: A human-readable document for review and sharing
//   - TSVWriter: A tab-separated table for spreadsheets
//
// Design decision: Writers only produce text on an io.Writer. Creating and
// naming files is handled by FileNames and WriteFile, so rendering can be
// tested against a bytes.Buffer without touching the filesystem.
//
// Writers implement the Writer interface, allowing them to be used
// interchangeably by the save pipeline.
package report
