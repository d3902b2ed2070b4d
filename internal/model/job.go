package model

import "time"

// SaveJob carries the state of one save run through the pipeline.
// Steps read the inputs (Records, Label, OutputDir, Now) and fill in the
// output paths as they complete.
type SaveJob struct {
	// Records is the drafts to save. It is never modified.
	Records *RecordSet

	// Label is the content label embedded in both output filenames.
	Label string

	// OutputDir is the directory both files are written to.
	OutputDir string

	// Now is the clock reading taken when the job was created.
	// Filenames use its date so that both files share one date even if the
	// run crosses midnight.
	Now time.Time

	// DocumentPath is the Markdown output path, set by the file-names step.
	DocumentPath string

	// TablePath is the TSV output path, set by the file-names step.
	TablePath string

	// CompletedSteps lists the names of the steps that finished successfully.
	CompletedSteps []string
}

// NewSaveJob creates a SaveJob for the given drafts.
func NewSaveJob(records *RecordSet, label, outputDir string, now time.Time) *SaveJob {
	if records == nil {
		records = NewRecordSet()
	}
	return &SaveJob{
		Records:        records,
		Label:          label,
		OutputDir:      outputDir,
		Now:            now,
		CompletedSteps: make([]string, 0),
	}
}

// DocumentWritten reports whether the Markdown file was written.
// A failed run may still have produced the document.
func (j *SaveJob) DocumentWritten() bool {
	for _, name := range j.CompletedSteps {
		if name == StepWriteDocument {
			return true
		}
	}
	return false
}

// Step names recorded in SaveJob.CompletedSteps.
const (
	StepEnsureOutputDir = "ensure-output-dir"
	StepFileNames       = "file-names"
	StepWriteDocument   = "write-document"
	StepWriteTable      = "write-table"
)
