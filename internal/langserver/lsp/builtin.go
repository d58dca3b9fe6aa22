package lsp

import (
	"context"

	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
)

// builtinInitialize answers the initialize request when no custom handler
// is registered: capabilities are advertised from the registered handlers
// and the configured provider options.
func (m *Methods) builtinInitialize(ctx context.Context, req *defines.InitializeParams) (*defines.InitializeResult, error) {
	resp := &defines.InitializeResult{}
	resp.Capabilities.TextDocumentSync = defines.TextDocumentSyncKindFull
	if m.Opt.TextDocumentSync != defines.TextDocumentSyncKindNone {
		resp.Capabilities.TextDocumentSync = m.Opt.TextDocumentSync
	}

	if m.Opt.CompletionProvider != nil {
		resp.Capabilities.CompletionProvider = m.Opt.CompletionProvider
	} else if m.onCompletion != nil {
		resp.Capabilities.CompletionProvider = &defines.CompletionOptions{
			TriggerCharacters: &[]string{"."},
		}
	}
	if m.Opt.HoverProvider != nil {
		resp.Capabilities.HoverProvider = m.Opt.HoverProvider
	} else if m.onHover != nil {
		resp.Capabilities.HoverProvider = true
	}
	if m.Opt.DefinitionProvider != nil {
		resp.Capabilities.DefinitionProvider = m.Opt.DefinitionProvider
	} else if m.onDefinition != nil {
		resp.Capabilities.DefinitionProvider = true
	}
	if m.onDocumentSymbol != nil {
		resp.Capabilities.DocumentSymbolProvider = true
	}

	if m.Opt.ServerName != "" {
		version := m.Opt.ServerVersion
		resp.ServerInfo = &struct {
			Name    string  `json:"name,omitempty"`
			Version *string `json:"version,omitempty"`
		}{
			Name:    m.Opt.ServerName,
			Version: &version,
		}
	}

	return resp, nil
}
