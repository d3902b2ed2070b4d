package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/nao1215/draftsaver/internal/model"
)

// FileMode is the permission used for output files.
const FileMode os.FileMode = 0644

// WriteFile renders records with a Writer from newWriter and saves the
// result to path, replacing any existing file.
//
// Rendering happens in memory first, so a rendering error never leaves a
// truncated file behind. Returns the number of bytes written.
func WriteFile(path string, records *model.RecordSet, newWriter WriterFactory) (int, error) {
	var buf bytes.Buffer
	if _, err := newWriter(&buf).Write(records); err != nil {
		return 0, fmt.Errorf("failed to render %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), FileMode); err != nil { //nolint:gosec // Drafts are meant to be shared
		return 0, err
	}
	return buf.Len(), nil
}
