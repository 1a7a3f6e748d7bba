package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		attr  slog.Attr
	}{
		{"Command", KeyCommand, "build", Command("build")},
		{"Tool", KeyTool, "wails", Tool("wails")},
		{"Dir", KeyDir, "/tmp/project", Dir("/tmp/project")},
		{"Path", KeyPath, "coverage.out", Path("coverage.out")},
		{"Module", KeyModule, "example.com/demo", Module("example.com/demo")},
		{"RunID", KeyRunID, "run-1", RunID("run-1")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.key {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.key, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.value {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.value, got)
		}
	}
}

// TestNumericAndSliceHelpers verifies keys for the non-string helpers.
func TestNumericAndSliceHelpers(t *testing.T) {
	if a := Args([]string{"build", "-clean"}); a.Key != KeyArgs {
		t.Fatalf("Args key mismatch: %s", a.Key)
	}
	a := ExitCode(2)
	if a.Key != KeyExitCode {
		t.Fatalf("ExitCode key mismatch: %s", a.Key)
	}
	if a.Value.Int64() != 2 {
		t.Fatalf("ExitCode value mismatch: %d", a.Value.Int64())
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	attr = Error(errors.New("boom"))
	if attr.Value.String() != "boom" {
		t.Fatalf("Expected 'boom', got %s", attr.Value.String())
	}
}
