package grammar

import (
	goerrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	"scmc/internal/errors"
)

var irParser = participle.MustBuild[Program](
	participle.Lexer(IRLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Parse reads IR text. filename is only used in positions.
func Parse(filename, source string) (*Program, error) {
	return irParser.ParseString(filename, source)
}

// ParseFile reads and parses the IR text stored at path. The source is
// returned alongside parse errors so callers can render diagnostics; read
// failures wrap the *fs.PathError from os.ReadFile and return no source.
func ParseFile(path string) (*Program, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}
	source := string(data)
	program, err := Parse(path, source)
	return program, source, err
}

// Diagnose converts a Parse error into a diagnostic pointing at the offending
// token.
func Diagnose(err error) errors.CompilerError {
	var ute *participle.UnexpectedTokenError
	if goerrors.As(err, &ute) {
		pos := errors.Position{Line: ute.Unexpected.Pos.Line, Column: ute.Unexpected.Pos.Column}
		if ute.Unexpected.EOF() {
			return errors.UnexpectedEOF(pos)
		}
		return errors.SyntaxError(ute.Message(), pos, ute.Unexpected.Value)
	}

	var pe participle.Error
	if goerrors.As(err, &pe) {
		pos := pe.Position()
		return errors.SyntaxError(pe.Message(), errors.Position{Line: pos.Line, Column: pos.Column}, "")
	}

	return errors.NewError(errors.ErrorSyntax, err.Error(), errors.Position{}).Build()
}
