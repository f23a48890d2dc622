package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Position is a 1-based location in a source text. The zero Position means the
// error is not tied to a location.
type Position struct {
	Line   int
	Column int
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    Position     // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

func (e CompilerError) Error() string {
	if e.Position.IsValid() {
		return fmt.Sprintf("%d:%d: %s[%s]: %s", e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
}

// Suggestion is a proposed fix shown under the diagnostic.
type Suggestion struct {
	Message string
}

var levelStyles = map[ErrorLevel]*color.Color{
	Error:   color.New(color.FgRed, color.Bold),
	Warning: color.New(color.FgYellow, color.Bold),
	Note:    color.New(color.FgBlue, color.Bold),
	Help:    color.New(color.FgGreen, color.Bold),
}

var (
	dimStyle        = color.New(color.Faint)
	boldStyle       = color.New(color.Bold)
	suggestionStyle = color.New(color.FgCyan)
	noteStyle       = color.New(color.FgBlue)
	helpStyle       = color.New(color.FgGreen)
)

func levelStyle(level ErrorLevel) *color.Color {
	if c, ok := levelStyles[level]; ok {
		return c
	}
	return levelStyles[Error]
}

// ErrorReporter renders diagnostics against the text they were found in.
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err Rust style: a header, the offending line between
// its neighbours with a caret marker, then suggestions, notes and help.
// Errors without a position get the header and trailer only.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder

	level := levelStyle(err.Level).Sprint(string(err.Level))
	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", level, err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", level, err.Message)
	}

	width := max(3, len(strconv.Itoa(err.Position.Line)))
	indent := strings.Repeat(" ", width)
	bar := dimStyle.Sprint("│")

	if err.Position.IsValid() {
		line := err.Position.Line
		fmt.Fprintf(&b, "%s %s %s:%d:%d\n", indent, dimStyle.Sprint("-->"), er.filename, line, err.Position.Column)
		fmt.Fprintf(&b, "%s %s\n", indent, bar)

		er.writeContext(&b, line-1, width, bar)
		if text, ok := er.line(line); ok {
			fmt.Fprintf(&b, "%s %s %s\n", boldStyle.Sprintf("%*d", width, line), bar, text)
			fmt.Fprintf(&b, "%s %s %s\n", indent, bar, er.createMarker(err.Position.Column, err.Length, err.Level))
		}
		er.writeContext(&b, line+1, width, bar)
	}

	er.writeTrailer(&b, err, indent, bar)
	return b.String()
}

// line returns the 1-based line n of the source.
func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

func (er *ErrorReporter) writeContext(b *strings.Builder, n, width int, bar string) {
	if text, ok := er.line(n); ok {
		fmt.Fprintf(b, "%s %s %s\n", dimStyle.Sprintf("%*d", width, n), bar, text)
	}
}

// writeTrailer appends suggestions, notes and help text
func (er *ErrorReporter) writeTrailer(b *strings.Builder, err CompilerError, indent, bar string) {
	if len(err.Suggestions) > 0 {
		fmt.Fprintf(b, "%s %s\n", indent, bar)
	}
	for i, suggestion := range err.Suggestions {
		if i == 0 {
			fmt.Fprintf(b, "%s %s: %s\n", indent, suggestionStyle.Sprint("help try"), suggestion.Message)
		} else {
			fmt.Fprintf(b, "%s %s %s\n", indent, suggestionStyle.Sprint("        "), suggestion.Message)
		}
	}

	for _, note := range err.Notes {
		fmt.Fprintf(b, "%s %s %s %s\n", indent, bar, noteStyle.Sprint("note:"), note)
	}

	if err.HelpText != "" {
		fmt.Fprintf(b, "%s %s %s %s\n", indent, bar, helpStyle.Sprint("help:"), err.HelpText)
	}

	b.WriteString("\n")
}

// createMarker returns the caret underline for a span starting at column.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	return strings.Repeat(" ", max(0, column-1)) + levelStyle(level).Sprint(strings.Repeat("^", max(1, length)))
}
