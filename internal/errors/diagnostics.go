package errors

import (
	"fmt"
	"strings"
)

// ErrorBuilder provides a fluent interface for creating errors with suggestions
type ErrorBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos Position) *ErrorBuilder {
	return &ErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos Position) *ErrorBuilder {
	b := NewError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *ErrorBuilder) WithLength(length int) *ErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *ErrorBuilder) WithSuggestion(message string) *ErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithNote adds a note to the error
func (b *ErrorBuilder) WithNote(note string) *ErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *ErrorBuilder) WithHelp(help string) *ErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *ErrorBuilder) Build() CompilerError {
	return b.err
}

// SyntaxError reports text the IR reader could not accept at pos.
func SyntaxError(message string, pos Position, token string) CompilerError {
	builder := NewError(ErrorSyntax, message, pos).WithLength(max(1, len(token)))

	switch token {
	case ")", "]", "}":
		builder = builder.WithSuggestion("remove the extra closing delimiter or open a matching form before it")
	case "":
	default:
		builder = builder.WithNote(fmt.Sprintf("unexpected %q", token))
	}

	return builder.Build()
}

// UnexpectedEOF reports input that ended with forms still open.
func UnexpectedEOF(pos Position) CompilerError {
	return NewError(ErrorUnexpectedEOF, "unexpected end of input", pos).
		WithSuggestion("close every open '(', '[', '{' and '#('").
		Build()
}

// LabelCollision reports identifiers that share one mangled label. It is an
// error when strict and a warning otherwise.
func LabelCollision(label string, names []string, strict bool) CompilerError {
	build := NewWarning
	if strict {
		build = NewError
	}
	return build(ErrorLabelCollision,
		fmt.Sprintf("identifiers %s all mangle to label '%s'", quoteAll(names), label), Position{}).
		WithNote("mangling maps '-' to '_', '?' to 'q' and '!' to 'l'").
		WithHelp("rename one of the identifiers before emission").
		Build()
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
