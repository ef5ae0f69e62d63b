package ui

import (
	"io"
	"os"
	"strings"

	"github.com/jmagar/claude-runner/internal/model"
	"github.com/muesli/termenv"
)

// ANSI color codes - exported for use across packages.
var (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[91m"
	ColorGreen  = "\033[92m"
	ColorYellow = "\033[93m"
	ColorBlue   = "\033[94m"
	ColorPurple = "\033[95m"
	ColorCyan   = "\033[96m"
	ColorBold   = "\033[1m"
	ActiveTheme = "nordonedark"
)

// Unicode symbols
var (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolArrow   = "→"
	SymbolInfo    = "ℹ"
	SymbolWarning = "⚠"
	SymbolRocket  = "🚀"
)

func init() {
	InitColorPalette(Output)
}

// InitColorPalette selects colors for w based on its detected color profile
// and the CLAUDE_RUNNER_THEME env var. Non-terminals and NO_COLOR get no color.
func InitColorPalette(w io.Writer) {
	theme := strings.ToLower(strings.TrimSpace(os.Getenv(model.ThemeEnvVar)))
	if theme != "" {
		ActiveTheme = theme
	}

	profile := DetectProfile(w)
	if profile == termenv.Ascii {
		disableColors()
		return
	}
	if ActiveTheme == "vivid" {
		initVividPalette(profile)
		return
	}
	initNordOneDarkPalette(profile)
}

// DetectProfile returns the color profile supported by w.
func DetectProfile(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func disableColors() {
	ColorReset = ""
	ColorRed = ""
	ColorGreen = ""
	ColorYellow = ""
	ColorBlue = ""
	ColorPurple = ""
	ColorCyan = ""
	ColorBold = ""
}

func initVividPalette(profile termenv.Profile) {
	switch profile {
	case termenv.TrueColor:
		ColorRed = "\033[1;38;2;255;76;102m"
		ColorGreen = "\033[1;38;2;80;250;123m"
		ColorYellow = "\033[1;38;2;255;221;87m"
		ColorBlue = "\033[1;38;2;110;196;255m"
		ColorPurple = "\033[1;38;2;215;130;255m"
		ColorCyan = "\033[1;38;2;0;245;255m"
	case termenv.ANSI256:
		ColorRed = "\033[1;38;5;203m"
		ColorGreen = "\033[1;38;5;84m"
		ColorYellow = "\033[1;38;5;227m"
		ColorBlue = "\033[1;38;5;81m"
		ColorPurple = "\033[1;38;5;177m"
		ColorCyan = "\033[1;38;5;51m"
	default:
		// Basic ANSI fallback
		ColorRed = "\033[1;91m"
		ColorGreen = "\033[1;92m"
		ColorYellow = "\033[1;93m"
		ColorBlue = "\033[1;94m"
		ColorPurple = "\033[1;95m"
		ColorCyan = "\033[1;96m"
	}
}

func initNordOneDarkPalette(profile termenv.Profile) {
	switch profile {
	case termenv.TrueColor:
		ColorRed = "\033[1;38;2;224;108;117m"
		ColorGreen = "\033[1;38;2;152;195;121m"
		ColorYellow = "\033[1;38;2;229;192;123m"
		ColorBlue = "\033[1;38;2;143;188;255m"
		ColorPurple = "\033[1;38;2;180;142;255m"
		ColorCyan = "\033[1;38;2;136;220;255m"
	case termenv.ANSI256:
		ColorRed = "\033[1;38;5;210m"
		ColorGreen = "\033[1;38;5;114m"
		ColorYellow = "\033[1;38;5;222m"
		ColorBlue = "\033[1;38;5;111m"
		ColorPurple = "\033[1;38;5;183m"
		ColorCyan = "\033[1;38;5;159m"
	}
}
