package pipeline

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrWriteFailure is returned when the output directory or an output file
// cannot be written. The error carries a stack trace; callers can extract it
// with errors.As into a *goerrors.Error.
var ErrWriteFailure = errors.New("write failure")

// writeFailure wraps err as an ErrWriteFailure for the given step and path
// and records the caller's stack.
func writeFailure(step, path string, err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %s %s: %w", ErrWriteFailure, step, path, err), 1)
}

// StackTrace returns the stack recorded for err, or an empty string if err
// carries none.
func StackTrace(err error) string {
	var traced *goerrors.Error
	if errors.As(err, &traced) {
		return traced.ErrorStack()
	}
	return ""
}
