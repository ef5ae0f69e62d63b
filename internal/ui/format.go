package ui

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Box drawing characters
const (
	BoxTopLeft     = "┌"
	BoxTopRight    = "┐"
	BoxBottomLeft  = "└"
	BoxBottomRight = "┘"
	BoxVertical    = "│"
	BoxHorizontal  = "─"
	BoxTeeLeft     = "├"
	BoxTeeRight    = "┤"
	BoxTeeTop      = "┬"
	BoxTeeBottom   = "┴"
	BoxCross       = "┼"

	BoxDoubleHorizontal  = "═"
	BoxDoubleTopLeft     = "╔"
	BoxDoubleTopRight    = "╗"
	BoxDoubleBottomLeft  = "╚"
	BoxDoubleBottomRight = "╝"
)

// AnsiRegex is compiled once for performance.
var AnsiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// GetTermWidth returns the width of the diagnostic terminal, defaulting to 80.
func GetTermWidth() int {
	f, ok := Output.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width == 0 {
		return 80
	}
	return width
}

// StripAnsiCodes removes ANSI escape sequences from a string.
func StripAnsiCodes(s string) string {
	return AnsiRegex.ReplaceAllString(s, "")
}

// VisibleLength returns the visible length of a string (excluding ANSI codes).
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripAnsiCodes(s))
}

// TruncateWithEllipsis truncates a string to maxLen with ellipsis if needed.
func TruncateWithEllipsis(s string, maxLen int) string {
	if VisibleLength(s) <= maxLen {
		return s
	}
	stripped := []rune(StripAnsiCodes(s))
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return string(stripped[:maxLen])
	}
	return string(stripped[:maxLen-3]) + "..."
}

// PadRight pads a string to the specified width using visible length.
func PadRight(s string, width int) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visLen)
}

// PadCenter centers a string in the specified width using visible length.
func PadCenter(s string, width int) string {
	visLen := VisibleLength(s)
	if visLen >= width {
		return s
	}
	padding := width - visLen
	leftPad := padding / 2
	return strings.Repeat(" ", leftPad) + s + strings.Repeat(" ", padding-leftPad)
}

// PrintHeader prints a styled header with box drawing.
func PrintHeader(title string) {
	width := GetTermWidth()
	if VisibleLength(title)+4 > width-4 {
		title = TruncateWithEllipsis(title, width-10)
	}
	lineLen := width - 2

	fmt.Fprintf(Output, "\n%s%s%s%s%s\n",
		ColorCyan, BoxDoubleTopLeft,
		strings.Repeat(BoxDoubleHorizontal, lineLen),
		BoxDoubleTopRight, ColorReset)
	fmt.Fprintf(Output, "%s%s%s %s %s%s%s\n",
		ColorCyan, BoxVertical, ColorReset,
		ColorBold+PadCenter(title, lineLen-2)+ColorReset,
		ColorCyan, BoxVertical, ColorReset)
	fmt.Fprintf(Output, "%s%s%s%s%s\n\n",
		ColorCyan, BoxDoubleBottomLeft,
		strings.Repeat(BoxDoubleHorizontal, lineLen),
		BoxDoubleBottomRight, ColorReset)
}

// PrintKeyValue prints a key-value pair with styling.
func PrintKeyValue(key, value, valueColor string) {
	maxValueWidth := GetTermWidth() - len(key) - 10
	if len(value) > maxValueWidth {
		value = TruncateWithEllipsis(value, maxValueWidth)
	}
	fmt.Fprintf(Output, "  %s%-20s%s %s%s%s\n",
		ColorCyan, key+":", ColorReset,
		valueColor, value, ColorReset)
}

// TableColumn represents a column in a table.
type TableColumn struct {
	Header string
	Width  int
	Align  string // "left", "right", "center"
}

// Table represents a formatted table.
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table.
func NewTable(columns []TableColumn) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table. Missing cells are left blank.
func (t *Table) AddRow(cells ...string) {
	row := make([]string, len(t.Columns))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

// Print renders the table to Output.
func (t *Table) Print() {
	if len(t.Columns) == 0 {
		return
	}

	available := GetTermWidth() - (len(t.Columns) + 1) - len(t.Columns)*2
	requested := 0
	for _, col := range t.Columns {
		requested += col.Width
	}
	cols := make([]TableColumn, len(t.Columns))
	copy(cols, t.Columns)
	if requested > available && available > 0 {
		for i := range cols {
			cols[i].Width = cols[i].Width * available / requested
		}
	}

	t.printBorder(cols, BoxTopLeft, BoxTeeTop, BoxTopRight)

	fmt.Fprint(Output, ColorCyan+BoxVertical+ColorReset)
	for _, col := range cols {
		header := TruncateWithEllipsis(col.Header, col.Width)
		fmt.Fprintf(Output, " %s%s%s ", ColorBold, PadCenter(header, col.Width), ColorReset)
		fmt.Fprint(Output, ColorCyan+BoxVertical+ColorReset)
	}
	fmt.Fprintln(Output)

	t.printBorder(cols, BoxTeeLeft, BoxCross, BoxTeeRight)

	for _, row := range t.Rows {
		fmt.Fprint(Output, ColorCyan+BoxVertical+ColorReset)
		for i, cell := range row {
			col := cols[i]
			truncated := TruncateWithEllipsis(cell, col.Width)
			var formatted string
			switch col.Align {
			case "right":
				formatted = strings.Repeat(" ", max(col.Width-VisibleLength(truncated), 0)) + truncated
			case "center":
				formatted = PadCenter(truncated, col.Width)
			default:
				formatted = PadRight(truncated, col.Width)
			}
			fmt.Fprintf(Output, " %s ", formatted)
			fmt.Fprint(Output, ColorCyan+BoxVertical+ColorReset)
		}
		fmt.Fprintln(Output)
	}

	t.printBorder(cols, BoxBottomLeft, BoxTeeBottom, BoxBottomRight)
}

func (t *Table) printBorder(cols []TableColumn, left, mid, right string) {
	fmt.Fprint(Output, ColorCyan+left)
	for i, col := range cols {
		fmt.Fprint(Output, strings.Repeat(BoxHorizontal, col.Width+2))
		if i < len(cols)-1 {
			fmt.Fprint(Output, mid)
		}
	}
	fmt.Fprintln(Output, right+ColorReset)
}
