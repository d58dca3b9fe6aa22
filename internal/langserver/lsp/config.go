package lsp

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
)

type Config struct {
	// StdioInput and StdioOutput default to the process's stdin and stdout.
	StdioInput  io.Reader
	StdioOutput io.Writer

	// If set the server listens for websocket connections instead of using stdio.
	Websocket *WebsocketConfig

	// MessageReaderWriter is mostly used in tests, sessions are created from
	// it directly.
	MessageReaderWriter jsonrpc.MessageReaderWriter

	Logger zerolog.Logger

	OnSession jsonrpc.SessionCreationCallbackFn

	ServerName    string
	ServerVersion string

	TextDocumentSync   defines.TextDocumentSyncKind
	CompletionProvider *defines.CompletionOptions
	HoverProvider      *defines.HoverOptions
	DefinitionProvider *defines.DefinitionOptions
}

type WebsocketConfig struct {
	// Addr examples: localhost:8305, :8305
	Addr string
}
