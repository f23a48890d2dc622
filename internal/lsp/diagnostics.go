package lsp

import (
	"fortio.org/safecast"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scmc/grammar"
	"scmc/internal/errors"
)

const diagnosticSource = "scmc"

// Diagnostics parses text as IR and reports every syntax problem found.
// Well-formed text yields an empty, non-nil slice so clients clear stale
// markers.
func Diagnostics(uri string, text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if _, err := grammar.Parse(uri, text); err != nil {
		diagnostics = append(diagnostics, ConvertCompilerError(grammar.Diagnose(err)))
	}

	return diagnostics
}

// ConvertCompilerError maps a compiler diagnostic onto the LSP wire shape.
// Compiler positions are 1-based, LSP positions 0-based.
func ConvertCompilerError(ce errors.CompilerError) protocol.Diagnostic {
	line := toWire(ce.Position.Line - 1)
	start := toWire(ce.Position.Column - 1)
	length := toWire(max(ce.Length, 1))

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: start + length},
		},
		Severity: ptrSeverity(severityFor(ce.Level)),
		Code:     &protocol.IntegerOrString{Value: ce.Code},
		Source:   ptrString(diagnosticSource),
		Message:  ce.Message,
	}
}

func severityFor(level errors.ErrorLevel) protocol.DiagnosticSeverity {
	switch level {
	case errors.Warning:
		return protocol.DiagnosticSeverityWarning
	case errors.Note:
		return protocol.DiagnosticSeverityInformation
	case errors.Help:
		return protocol.DiagnosticSeverityHint
	default:
		return protocol.DiagnosticSeverityError
	}
}

// toWire clamps negative offsets (unknown positions) to zero.
func toWire(n int) uint32 {
	if n < 0 {
		return 0
	}
	return safecast.MustConv[uint32](n)
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
