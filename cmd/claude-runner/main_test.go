package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmagar/claude-runner/internal/helpers"
	"github.com/jmagar/claude-runner/internal/model"
	"github.com/jmagar/claude-runner/internal/runtime"
	"github.com/jmagar/claude-runner/internal/testutil"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	testutil.WithTempHome(t)
	testutil.ChdirTemp(t)
	stateDir := t.TempDir()
	t.Setenv(model.StateDirEnvVar, stateDir)
	t.Setenv("CLAUDE_RUNNER_MODEL", "")
	t.Setenv("CLAUDE_RUNNER_BIN", "")
	return stateDir
}

func TestRun_UsageErrors(t *testing.T) {
	setupEnv(t)

	tests := []struct {
		name string
		argv []string
		want string
	}{
		{name: "no args", argv: nil, want: "--prompt is required"},
		{name: "missing output", argv: []string{"-p", "hi"}, want: "--output is required"},
		{name: "dangling flag", argv: []string{"-o", "out.log", "-p"}, want: "prompt"},
		{name: "bad cancel pid", argv: []string{"--cancel", "nope"}, want: "cancel"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var code int
			out := testutil.CaptureOutput(t, func() {
				code = run(tc.argv)
			})
			if code != exitUsage {
				t.Fatalf("expected exit %d, got %d (output %q)", exitUsage, code, out)
			}
			if !strings.Contains(out, tc.want) {
				t.Fatalf("expected output to mention %q, got %q", tc.want, out)
			}
			if !strings.Contains(out, "Usage:") {
				t.Fatalf("expected usage line, got %q", out)
			}
		})
	}
}

func TestRun_DryRunPrintsCommand(t *testing.T) {
	setupEnv(t)

	var code int
	out := testutil.CaptureOutput(t, func() {
		code = run([]string{"-p", "hello", "-o", "out.log", "-m", "opus", "-w", "/nonexistent", "--dry-run", "--whatever"})
	})
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	for _, want := range []string{"Dry run", `"--dangerously-skip-permissions" "-m" "opus" "-p" "hello"`, "Output:", "Config:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dry-run output to contain %q, got:\n%s", want, out)
		}
	}
	if exists, _ := helpers.FileExists("out.log"); exists {
		t.Fatalf("dry run must not create the output file")
	}
}

func TestRun_DryRunReportsLoadedConfig(t *testing.T) {
	setupEnv(t)
	if err := os.WriteFile("claude-runner.toml", []byte("model = \"haiku\"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var code int
	out := testutil.CaptureOutput(t, func() {
		code = run([]string{"-p", "hello", "-o", "out.log", "--dry-run"})
	})
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	for _, want := range []string{`"-m" "haiku"`, "claude-runner.toml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dry-run output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_ExtraIsWarnedNotForwarded(t *testing.T) {
	setupEnv(t)

	out := testutil.CaptureOutput(t, func() {
		run([]string{"-p", "hello", "-o", "out.log", "--extra", "--verbose", "--dry-run"})
	})
	if !strings.Contains(out, "not forwarded") {
		t.Fatalf("expected warning about --extra, got %q", out)
	}
	if strings.Contains(out, `"--verbose"`) {
		t.Fatalf("expected --extra value to stay out of the command, got %q", out)
	}
}

func TestRun_StatusWithNoRuns(t *testing.T) {
	setupEnv(t)

	var code int
	out := testutil.CaptureOutput(t, func() {
		code = run([]string{"--status"})
	})
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "No background runs recorded") {
		t.Fatalf("unexpected status output %q", out)
	}
}

func TestRun_CancelUnknownPID(t *testing.T) {
	setupEnv(t)

	var code int
	out := testutil.CaptureOutput(t, func() {
		code = run([]string{"--cancel", "424242"})
	})
	if code != exitFailure {
		t.Fatalf("expected exit %d, got %d", exitFailure, code)
	}
	if !strings.Contains(out, "run not found") {
		t.Fatalf("expected not-found error, got %q", out)
	}
}

func TestRun_PruneDropsExitedRuns(t *testing.T) {
	stateDir := setupEnv(t)
	rec := runtime.NewRunRecord(2147483000, "claude", nil, "", filepath.Join(stateDir, "gone.log"))
	if _, err := runtime.WriteRunRecord(stateDir, rec); err != nil {
		t.Fatalf("WriteRunRecord: %v", err)
	}

	var code int
	out := testutil.CaptureOutput(t, func() {
		code = run([]string{"--prune"})
	})
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d (output %q)", code, out)
	}
	if !strings.Contains(out, "Pruned 1") {
		t.Fatalf("expected one pruned run, got %q", out)
	}
}
