package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func withOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Output
	var buf bytes.Buffer
	Output = &buf
	t.Cleanup(func() {
		Output = orig
	})
	return &buf
}

func TestDetectProfile_NonTerminalIsAscii(t *testing.T) {
	if got := DetectProfile(&bytes.Buffer{}); got != termenv.Ascii {
		t.Fatalf("expected Ascii profile for a buffer, got %v", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "fits", in: "hello", maxLen: 10, want: "hello"},
		{name: "truncated", in: "hello world", maxLen: 8, want: "hello..."},
		{name: "tiny", in: "hello", maxLen: 2, want: "he"},
		{name: "ansi stripped when cut", in: "\033[1mhello world\033[0m", maxLen: 8, want: "hello..."},
		{name: "runes", in: "漢漢漢漢漢漢", maxLen: 5, want: "漢漢..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateWithEllipsis(tc.in, tc.maxLen); got != tc.want {
				t.Fatalf("TruncateWithEllipsis(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.want)
			}
		})
	}
}

func TestPadRightUsesVisibleLength(t *testing.T) {
	got := PadRight("\033[92mok\033[0m", 4)
	if VisibleLength(got) != 4 {
		t.Fatalf("expected visible length 4, got %d (%q)", VisibleLength(got), got)
	}
}

func TestPrintersWriteToOutput(t *testing.T) {
	buf := withOutput(t)

	PrintSuccess("done")
	PrintWarning("careful")
	PrintError("broken")
	PrintLaunch("Task started in background")

	out := buf.String()
	for _, want := range []string{"done", "careful", "broken", "Task started in background"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got %q", want, out)
		}
	}
}

func TestTablePrint(t *testing.T) {
	buf := withOutput(t)

	table := NewTable([]TableColumn{
		{Header: "PID", Width: 6, Align: "right"},
		{Header: "State", Width: 8},
	})
	table.AddRow("42", "running")
	table.AddRow("7")
	table.Print()

	lines := strings.Split(strings.TrimSpace(StripAnsiCodes(buf.String())), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 table lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[3], "    42") || !strings.Contains(lines[3], "running") {
		t.Fatalf("unexpected row rendering: %q", lines[3])
	}
}
