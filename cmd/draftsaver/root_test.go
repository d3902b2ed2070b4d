package main

import (
	"errors"
	"testing"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "draftsaver [input-file]" {
			t.Errorf("expected use 'draftsaver [input-file]', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
		if cmd.Long == "" {
			t.Error("expected non-empty long description")
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has verbose flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.PersistentFlags().Lookup("verbose")
		if flag == nil {
			t.Fatal("expected verbose flag")
		}
		if flag.Shorthand != "v" {
			t.Errorf("expected shorthand 'v', got %q", flag.Shorthand)
		}
		if flag.DefValue != "false" {
			t.Errorf("expected default 'false', got %q", flag.DefValue)
		}
	})

	t.Run("has save flags", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name      string
			shorthand string
			defValue  string
		}{
			{"output-dir", "o", "03_OUTPUT"},
			{"lang", "l", "ja"},
			{"config", "c", ""},
		}
		for _, tt := range tests {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected %s flag", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.defValue {
				t.Errorf("%s: expected default %q, got %q", tt.name, tt.defValue, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		found := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			found[sub.Use] = true
		}
		for _, want := range []string{"init", "sample", "version"} {
			if !found[want] {
				t.Errorf("expected %s subcommand", want)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

// TestRootCmdArgs tests positional argument validation.
func TestRootCmdArgs(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	if err := cmd.Args(cmd, []string{"a.json", "b.json"}); err == nil {
		t.Error("expected error for two input files")
	}
	if err := cmd.Args(cmd, []string{"a.json"}); err != nil {
		t.Errorf("unexpected error for one input file: %v", err)
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Errorf("unexpected error for no input file: %v", err)
	}
}

// TestReportedError tests the already-reported error wrapper.
func TestReportedError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := error(&reportedError{err: cause})

	if err.Error() != "cause" {
		t.Errorf("expected message 'cause', got %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}
