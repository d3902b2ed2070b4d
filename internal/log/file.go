package log

import (
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for log files.
const (
	// MaxLogFileMB is the size in megabytes at which a log file is rotated.
	MaxLogFileMB = 10

	// MaxLogBackups is the number of rotated files kept.
	MaxLogBackups = 3

	// MaxLogAgeDays is the age after which rotated files are removed.
	MaxLogAgeDays = 30
)

// NewRotatingFile returns a writer that appends to the log file at path and
// rotates it by size. The file and its directory are created on the first
// write. Callers must Close it when done.
func NewRotatingFile(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxLogFileMB,
		MaxBackups: MaxLogBackups,
		MaxAge:     MaxLogAgeDays,
		Compress:   true,
	}
}
