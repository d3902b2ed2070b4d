package loader

import "errors"

// Loader errors.
// Every error returned by Load wraps exactly one of these sentinels.
var (
	// ErrNotFound is returned when the input path does not exist.
	// No output should be produced when this error occurs.
	ErrNotFound = errors.New("input file not found")

	// ErrMalformed is returned when the input exists but cannot be read as a
	// RecordSet: invalid syntax, wrong value shapes, or missing fields.
	ErrMalformed = errors.New("malformed input")

	// ErrNoSource is returned when the caller neither supplies a path nor
	// asks for sample data.
	ErrNoSource = errors.New("no input source: provide a file path or request sample data")
)
