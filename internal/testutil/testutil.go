// Package testutil provides shared test helpers used across internal packages.
package testutil

import (
	"bytes"
	"os"
	"testing"

	"github.com/jmagar/claude-runner/internal/ui"
)

// WithTempHome sets HOME to a temporary directory for the duration of the test.
func WithTempHome(t *testing.T) string {
	t.Helper()
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	return tempHome
}

// CaptureOutput redirects the ui diagnostic stream during fn() and returns what was written.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()
	orig := ui.Output
	var buf bytes.Buffer
	ui.Output = &buf
	defer func() {
		ui.Output = orig
	}()

	fn()

	return buf.String()
}

// ChdirTemp changes to a temp directory and restores cwd on cleanup.
func ChdirTemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("failed to chdir temp: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(orig)
	})
	return tmp
}

// WriteScript writes an executable shell script with the given body to path.
func WriteScript(t *testing.T, path, body string) {
	t.Helper()
	content := []byte("#!/bin/sh\n" + body + "\n")
	if err := os.WriteFile(path, content, 0755); err != nil {
		t.Fatalf("failed to write script %s: %v", path, err)
	}
}
