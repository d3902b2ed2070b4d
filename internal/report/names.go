package report

import "time"

// DateLayout is the date prefix format of output filenames.
const DateLayout = "20060102"

// Output file extensions.
const (
	DocumentExt = ".md"
	TableExt    = ".tsv"
)

// FileNames returns the document and table filenames for a content label:
// "YYYYMMDD_<label>.md" and "YYYYMMDD_<label>.tsv". The date is taken from
// now in its own location, so callers pass local time.
//
// The label is used verbatim; it must already be a valid path segment.
func FileNames(label string, now time.Time) (document, table string) {
	base := now.Format(DateLayout) + "_" + label
	return base + DocumentExt, base + TableExt
}
