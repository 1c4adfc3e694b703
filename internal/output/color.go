package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme provides color functions for different output elements
type ColorScheme struct {
	// Title colors section titles of nested sequences
	Title func(format string, a ...interface{}) string

	// Header colors table headers
	Header func(format string, a ...interface{}) string

	// Key colors the key column of record tables
	Key func(format string, a ...interface{}) string

	// Marker colors highlighted cells such as the current context
	Marker func(format string, a ...interface{}) string

	// Error colors problem reports
	Error func(format string, a ...interface{}) string

	// Disabled indicates if colors are disabled
	Disabled bool
}

// NewColorScheme creates a new color scheme.
// Colors are disabled for non-TTY writers or when noColor is true.
func NewColorScheme(w io.Writer, noColor bool) *ColorScheme {
	if noColor || !isTTY(w) {
		plain := color.New()
		plain.DisableColor()
		return &ColorScheme{
			Title:    plain.Sprintf,
			Header:   plain.Sprintf,
			Key:      plain.Sprintf,
			Marker:   plain.Sprintf,
			Error:    plain.Sprintf,
			Disabled: true,
		}
	}

	return &ColorScheme{
		Title:    color.New(color.FgCyan, color.Bold).Sprintf,
		Header:   color.New(color.FgWhite, color.Bold).Sprintf,
		Key:      color.New(color.FgBlue).Sprintf,
		Marker:   color.New(color.FgGreen, color.Bold).Sprintf,
		Error:    color.New(color.FgRed, color.Bold).Sprintf,
		Disabled: false,
	}
}

// isTTY checks if the writer is a TTY
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// CellColor returns the color function for a cell in the named column
func (cs *ColorScheme) CellColor(column string) func(format string, a ...interface{}) string {
	switch column {
	case "current":
		return cs.Marker
	case "error":
		return cs.Error
	default:
		return nil
	}
}
