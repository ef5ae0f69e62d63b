package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/alexflint/go-arg"
)

func TestFilterKnownArgs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "short flags",
			in:   []string{"-p", "hello", "-o", "out.log"},
			want: []string{"--prompt=hello", "--output=out.log"},
		},
		{
			name: "long flags with equals",
			in:   []string{"--prompt=hello", "--workdir=/tmp"},
			want: []string{"--prompt=hello", "--workdir=/tmp"},
		},
		{
			name: "attached short value",
			in:   []string{"-mopus", "-p", "x"},
			want: []string{"--model=opus", "--prompt=x"},
		},
		{
			name: "value starting with dash",
			in:   []string{"-p", "--not-a-flag", "-o", "o"},
			want: []string{"--prompt=--not-a-flag", "--output=o"},
		},
		{
			name: "unknown flags and positionals dropped",
			in:   []string{"stray", "-p", "x", "--verbose", "-x", "--foo=bar", "-o", "o", "trailing"},
			want: []string{"--prompt=x", "--output=o"},
		},
		{
			name: "bool flags kept",
			in:   []string{"--dangerously-skip-permissions", "--dry-run", "--status", "--prune"},
			want: []string{"--dangerously-skip-permissions", "--dry-run", "--status", "--prune"},
		},
		{
			name: "unambiguous prefixes expanded",
			in:   []string{"--prom", "hello", "--out=o.log", "--dang", "--dry"},
			want: []string{"--prompt=hello", "--output=o.log", "--dangerously-skip-permissions", "--dry-run"},
		},
		{
			name: "ambiguous prefixes dropped",
			in:   []string{"--pr", "x", "--c", "1", "-p", "y", "-o", "o"},
			want: []string{"--prompt=y", "--output=o"},
		},
		{
			name: "dangling value flag left for parser",
			in:   []string{"-o", "out.log", "-p"},
			want: []string{"--output=out.log", "--prompt"},
		},
		{
			name: "double dash ends parsing",
			in:   []string{"-p", "x", "--", "-o", "ignored"},
			want: []string{"--prompt=x"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterKnownArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("FilterKnownArgs(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	t.Setenv("CLAUDE_RUNNER_MODEL", "")
	t.Setenv("CLAUDE_RUNNER_BIN", "")

	args, _, err := ParseArgs([]string{
		"-p", "fix the tests",
		"-w", "/src",
		"-m", "opus",
		"-o", "/tmp/out.log",
		"--extra", "--verbose",
		"--dangerously-skip-permissions",
		"--unknown", "leftover",
	})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Prompt != "fix the tests" || args.Workdir != "/src" || args.Model != "opus" || args.Output != "/tmp/out.log" {
		t.Fatalf("unexpected args: %+v", args)
	}
	if args.Extra != "--verbose" {
		t.Fatalf("expected extra to be kept verbatim, got %q", args.Extra)
	}
	if !args.SkipPermissions {
		t.Fatalf("expected skip-permissions flag to be set")
	}
	if !args.IsLaunch() {
		t.Fatalf("expected a launch request")
	}
}

func TestParseArgs_EnvDefaults(t *testing.T) {
	t.Setenv("CLAUDE_RUNNER_MODEL", "haiku")
	t.Setenv("CLAUDE_RUNNER_BIN", "/opt/claude")

	args, _, err := ParseArgs([]string{"-p", "x", "-o", "o"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Model != "haiku" || args.Binary != "/opt/claude" {
		t.Fatalf("expected env defaults, got model=%q binary=%q", args.Model, args.Binary)
	}

	args, _, err = ParseArgs([]string{"-p", "x", "-o", "o", "-m", "opus"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Model != "opus" {
		t.Fatalf("expected flag to beat env, got %q", args.Model)
	}
}

func TestParseArgs_RegistryCommands(t *testing.T) {
	args, _, err := ParseArgs([]string{"--cancel", "1234"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if args.Cancel != 1234 || args.IsLaunch() {
		t.Fatalf("expected cancel command, got %+v", args)
	}

	args, _, err = ParseArgs([]string{"--status"})
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !args.Status || args.IsLaunch() {
		t.Fatalf("expected status command, got %+v", args)
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, p, err := ParseArgs([]string{"--help"})
	if !errors.Is(err, arg.ErrHelp) {
		t.Fatalf("expected arg.ErrHelp, got %v", err)
	}
	if p == nil {
		t.Fatalf("expected parser for printing help")
	}
}

func TestParseArgs_InvalidCancel(t *testing.T) {
	if _, _, err := ParseArgs([]string{"--cancel", "abc"}); err == nil {
		t.Fatalf("expected error for non-numeric pid")
	}
}
