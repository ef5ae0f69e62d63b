package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Output is the diagnostic stream all printers write to.
var Output io.Writer = os.Stderr

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	fmt.Fprintf(Output, "%s%s%s %s%s\n", ColorGreen, SymbolCheck, ColorReset, msg, ColorReset)
}

// PrintError prints an error message.
func PrintError(msg string) {
	fmt.Fprintf(Output, "%s%s%s %s%s\n", ColorRed, SymbolCross, ColorReset, msg, ColorReset)
}

// PrintInfo prints an info message.
func PrintInfo(msg string) {
	fmt.Fprintf(Output, "%s%s%s %s%s\n", ColorBlue, SymbolInfo, ColorReset, msg, ColorReset)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	fmt.Fprintf(Output, "%s%s%s %s%s\n", ColorYellow, SymbolWarning, ColorReset, msg, ColorReset)
}

// PrintLaunch prints a launch confirmation message.
func PrintLaunch(msg string) {
	fmt.Fprintf(Output, "%s%s%s %s%s\n", ColorPurple, SymbolRocket, ColorReset, msg, ColorReset)
}
