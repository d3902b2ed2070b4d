package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewRotatingFile tests logging to a file.
func TestNewRotatingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "draftsaver.log")
	w := NewRotatingFile(path)

	logger := NewLogger(w, true)
	logger.Debug("loaded post", "content", "first line\nsecond line")

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "loaded post") {
		t.Errorf("expected message in log file, got %q", out)
	}
	if !strings.Contains(out, "first line ⏎ second line") {
		t.Errorf("expected condensed content, got %q", out)
	}
}
