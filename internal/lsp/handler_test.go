package lsp_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"scmc/internal/lsp"
)

const sampleURI = "file:///tmp/sample.ir"

const sampleIR = `; trace
(letrec ([f (lambda () (+ y 1))])
  (f 5))
`

func openSample(t *testing.T, h *lsp.Handler, text string) []protocol.Diagnostic {
	t.Helper()

	var published []protocol.Diagnostic
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			p, ok := params.(*protocol.PublishDiagnosticsParams)
			require.True(t, ok)
			published = p.Diagnostics
		},
	}

	err := h.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: sampleURI, Text: text},
	})
	require.NoError(t, err)
	return published
}

func TestTextDocumentDidOpenPublishesDiagnostics(t *testing.T) {
	h := lsp.NewHandler()

	assert.Empty(t, openSample(t, h, sampleIR))

	diags := openSample(t, h, "(begin (nop)))")
	require.Len(t, diags, 1)
	assert.Equal(t, "E0100", diags[0].Code.Value)
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
	assert.Equal(t, uint32(13), diags[0].Range.Start.Character)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}

func TestDiagnosticsUnexpectedEOF(t *testing.T) {
	diags := lsp.Diagnostics(sampleURI, "(begin\n  (nop)")
	require.Len(t, diags, 1)
	assert.Equal(t, "E0101", diags[0].Code.Value)
	assert.Equal(t, "scmc", *diags[0].Source)
}

func TestDiagnosticsCleanTextIsEmptyNotNil(t *testing.T) {
	diags := lsp.Diagnostics(sampleURI, sampleIR)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestTextDocumentDidChangeReplacesText(t *testing.T) {
	h := lsp.NewHandler()
	openSample(t, h, sampleIR)

	err := h.TextDocumentDidChange(&glsp.Context{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: sampleURI},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEventWhole{Text: "(nop)"}},
	})
	require.NoError(t, err)

	text, ok := h.Text(sampleURI)
	require.True(t, ok)
	assert.Equal(t, "(nop)", text)
}

func TestTextDocumentDidChangeRejectsRangeEdits(t *testing.T) {
	h := lsp.NewHandler()
	openSample(t, h, sampleIR)

	err := h.TextDocumentDidChange(&glsp.Context{}, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: sampleURI},
		},
		ContentChanges: []any{protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{},
			Text:  "x",
		}},
	})
	assert.Error(t, err)
}

func TestTextDocumentDidClose(t *testing.T) {
	h := lsp.NewHandler()
	openSample(t, h, sampleIR)

	err := h.TextDocumentDidClose(&glsp.Context{}, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: sampleURI},
	})
	require.NoError(t, err)

	_, ok := h.Text(sampleURI)
	assert.False(t, ok)

	_, err = h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: sampleURI},
	})
	assert.Error(t, err)
}

func TestTextDocumentSemanticTokensFull(t *testing.T) {
	h := lsp.NewHandler()
	openSample(t, h, sampleIR)

	tokens, err := h.TextDocumentSemanticTokensFull(&glsp.Context{}, &protocol.SemanticTokensParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: sampleURI},
	})
	require.NoError(t, err, "TextDocumentSemanticTokensFull returned error")
	require.NotNil(t, tokens, "Returned tokens should not be nil")

	decoded, err := decodeSemanticTokens(tokens.Data)
	require.NoError(t, err, "Failed to decode semantic tokens")
	require.Len(t, decoded, 9)

	assertToken(t, &decoded[0], 1, 1, 7, "comment")
	assertToken(t, &decoded[1], 2, 2, 6, "keyword")
	assertToken(t, &decoded[2], 2, 11, 1, "variable")
	assertToken(t, &decoded[3], 2, 14, 6, "keyword")
	assertToken(t, &decoded[4], 2, 25, 1, "operator")
	assertToken(t, &decoded[5], 2, 27, 1, "variable")
	assertToken(t, &decoded[6], 2, 29, 1, "number")
	assertToken(t, &decoded[7], 3, 4, 1, "function")
	assertToken(t, &decoded[8], 3, 6, 1, "number")
}

func TestCollectSemanticTokensStopsAtLexError(t *testing.T) {
	tokens := lsp.CollectSemanticTokens("(nop) #z (nop)")
	require.Len(t, tokens, 1)
	assert.Equal(t, uint32(1), tokens[0].StartChar)
	assert.Equal(t, "keyword", lsp.SemanticTokenTypes[tokens[0].TokenType])
}

type DecodedToken struct {
	Line   uint32
	Char   uint32
	Length uint32
	Type   string
}

func decodeSemanticTokens(raw []uint32) ([]DecodedToken, error) {
	if len(raw)%5 != 0 {
		return nil, fmt.Errorf("raw token data length %d is not a multiple of 5", len(raw))
	}

	var (
		decoded []DecodedToken
		line    uint32
		char    uint32
	)

	for i := 0; i < len(raw); i += 5 {
		deltaLine := raw[i]
		deltaStart := raw[i+1]

		if deltaLine == 0 {
			char += deltaStart
		} else {
			line += deltaLine
			char = deltaStart
		}

		decoded = append(decoded, DecodedToken{
			Line:   line + 1, // LSP uses 0-based indexing
			Char:   char + 1, // LSP uses 0-based indexing
			Length: raw[i+2],
			Type:   lsp.SemanticTokenTypes[raw[i+3]],
		})
	}

	return decoded, nil
}

func assertToken(t *testing.T, token *DecodedToken, expectedLine, expectedChar, expectedLength uint32, expectedType string) {
	require.Equal(t, expectedLine, token.Line, "line mismatch (expected line %d)", expectedLine)
	require.Equal(t, expectedChar, token.Char, "char mismatch (expected char %d)", expectedChar)
	require.Equal(t, expectedLength, token.Length, "length mismatch")
	require.Equal(t, expectedType, token.Type, "type mismatch")
}
