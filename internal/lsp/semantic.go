package lsp

import (
	"slices"
	"strings"

	"fortio.org/safecast"

	"scmc/grammar"
)

// SemanticTokenTypes is the legend advertised to clients. Token entries
// index into it.
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"operator",
	"comment",
}

// SemanticTokenModifiers is empty; IR text carries no declaration markers.
var SemanticTokenModifiers = []string{}

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

var irSymbols = grammar.IRLexer.Symbols()

// CollectSemanticTokens lexes text and classifies every atom, literal and
// comment. Lexing stops quietly at the first invalid character so a
// half-typed buffer still highlights up to that point.
func CollectSemanticTokens(text string) []SemanticToken {
	lex, err := grammar.IRLexer.LexString("", text)
	if err != nil {
		return nil
	}

	var (
		tokens []SemanticToken
		// the previous significant token opened a list, so an atom here is
		// the form head
		atHead bool
	)

	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			break
		}
		kind := ""
		switch tok.Type {
		case irSymbols["Whitespace"]:
			continue
		case irSymbols["Comment"]:
			kind = "comment"
		case irSymbols["Bool"], irSymbols["Int"]:
			kind = "number"
		case irSymbols["Atom"]:
			kind = classifyAtom(tok.Value, atHead)
		case irSymbols["Punct"]:
			atHead = tok.Value == "("
			continue
		}
		atHead = false
		if kind == "" {
			continue
		}
		tokens = append(tokens, SemanticToken{
			Line:      toWire(tok.Pos.Line - 1),
			StartChar: toWire(tok.Pos.Column - 1),
			Length:    toWire(len(tok.Value)),
			TokenType: slices.Index(SemanticTokenTypes, kind),
		})
	}

	return tokens
}

func classifyAtom(atom string, head bool) string {
	switch {
	case isOperator(atom):
		return "operator"
	case head && grammar.IsFormHead(atom):
		return "keyword"
	case head:
		return "function"
	default:
		return "variable"
	}
}

// isOperator reports whether atom is spelled entirely from arithmetic and
// comparison characters, such as "+" or "<=".
func isOperator(atom string) bool {
	return strings.Trim(atom, "+-*/<>=") == ""
}

// EncodeSemanticTokens packs tokens into the LSP wire format using
// delta-line, delta-start compression.
func EncodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length,
			safecast.MustConv[uint32](token.TokenType), safecast.MustConv[uint32](token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}

	return data
}
