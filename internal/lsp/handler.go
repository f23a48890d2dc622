package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var log = commonlog.GetLogger("scmc.lsp")

// Handler implements the LSP server handlers for rendered IR text. Open
// documents are kept in memory; the file on disk is never read.
type Handler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
}

// NewHandler creates and returns a new Handler instance
func NewHandler() *Handler {
	return &Handler{
		content: make(map[protocol.DocumentUri]string),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *Handler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Info("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities
func (h *Handler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *Handler) Shutdown(ctx *glsp.Context) error {
	log.Info("LSP Shutdown")
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// SetTrace records the trace level requested by the client.
func (h *Handler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the opened text and publishes its diagnostics.
func (h *Handler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("opened file: %s", uri)

	h.store(uri, params.TextDocument.Text)
	publish(ctx, uri, Diagnostics(uri, params.TextDocument.Text))
	return nil
}

// TextDocumentDidChange replaces the stored text. Only full-document sync is
// advertised, so the last whole-text change wins.
func (h *Handler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Debugf("changed file: %s", uri)

	text, ok := "", false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text, ok = c.Text, true
		case protocol.TextDocumentContentChangeEvent:
			if c.Range == nil {
				text, ok = c.Text, true
			}
		}
	}
	if !ok {
		return fmt.Errorf("no full-text change for %s", uri)
	}

	h.store(uri, text)
	publish(ctx, uri, Diagnostics(uri, text))
	return nil
}

// TextDocumentDidClose forgets the document.
func (h *Handler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Infof("closed file: %s", params.TextDocument.URI)

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, params.TextDocument.URI)
	return nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *Handler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	text, ok := h.Text(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document not open: %s", params.TextDocument.URI)
	}

	return &protocol.SemanticTokens{
		Data: EncodeSemanticTokens(CollectSemanticTokens(text)),
	}, nil
}

// Text returns the stored contents of an open document.
func (h *Handler) Text(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[uri]
	return text, ok
}

func (h *Handler) store(uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.content[uri] = text
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("publishing %d diagnostics for %s", len(diagnostics), uri)
	if ctx == nil || ctx.Notify == nil {
		return
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
