package langserver

import (
	"context"
	"io"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/config"
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
)

const (
	LSP_LOG_SRC = "lsp"

	SERVER_NAME = "ucls"
)

type ServerConfiguration struct {
	// InternalStdio and Websocket are mutually exclusive; if both are nil
	// the process's stdin/stdout are used.
	InternalStdio *InternalStdio
	Websocket     *WebsocketServerConfiguration

	// MessageReaderWriter is mostly used in tests.
	MessageReaderWriter jsonrpc.MessageReaderWriter

	// Registry supplies the builtin and module signatures the engine
	// analyzes against.
	Registry analysis.Registry

	Logger zerolog.Logger

	OnSession jsonrpc.SessionCreationCallbackFn
}

// IndividualServerConfig is the user-facing JSON configuration accepted by
// the lsp subcommand, inline or as a file.
type IndividualServerConfig struct {
	// Port of the websocket endpoint; when zero the stdio transport is used.
	Port int `json:"port,omitempty"`

	BindToAllInterfaces bool `json:"bindToAllInterfaces,omitempty"`

	// LogFile receives the session logs in stdio mode, stdout carries the
	// protocol and stderr is kept for fatal errors.
	LogFile string `json:"logFile,omitempty"`
}

type InternalStdio struct {
	StdioInput  io.Reader
	StdioOutput io.Writer
}

type WebsocketServerConfiguration struct {
	// Addr examples: localhost:9257, :9257
	Addr string
}

// StartServer configures and runs the LSP server, it blocks until the
// transport is closed.
func StartServer(serverConfig ServerConfiguration) (finalErr error) {
	logger := serverConfig.Logger.With().Str(config.SOURCE_LOG_FIELD_NAME, LSP_LOG_SRC).Logger()

	defer func() {
		if e := recover(); e != nil {
			if err, ok := e.(error); ok {
				finalErr = err
			}
			logger.Error().Msgf("%v at %s", e, debug.Stack())
		}
	}()

	options := &lsp.Config{
		Logger:        logger,
		OnSession:     serverConfig.OnSession,
		ServerName:    SERVER_NAME,
		ServerVersion: config.VERSION,
	}

	if serverConfig.InternalStdio != nil {
		options.StdioInput = serverConfig.InternalStdio.StdioInput
		options.StdioOutput = serverConfig.InternalStdio.StdioOutput
	}
	if serverConfig.Websocket != nil {
		options.Websocket = &lsp.WebsocketConfig{Addr: serverConfig.Websocket.Addr}
	}
	if serverConfig.MessageReaderWriter != nil {
		options.MessageReaderWriter = serverConfig.MessageReaderWriter
	}

	registry := serverConfig.Registry

	server := lsp.NewServer(options)
	registerMethodHandlers(server, registry)

	return server.Run()
}

func registerMethodHandlers(server *lsp.Server, registry analysis.Registry) {

	//Session initialization and shutdown

	server.OnInitialized(func(ctx context.Context, req *defines.InitializeParams) error {
		return nil
	})

	server.OnShutdown(func(ctx context.Context, req *defines.NoParams) error {
		return nil
	})

	server.OnExit(func(ctx context.Context, req *defines.NoParams) error {
		session := jsonrpc.GetSession(ctx)
		removeSessionData(session)
		return nil
	})

	//Document synchronization

	server.OnDidOpenTextDocument(func(ctx context.Context, req *defines.DidOpenTextDocumentParams) error {
		return handleDidOpenDocument(ctx, req, registry)
	})

	server.OnDidChangeTextDocument(func(ctx context.Context, req *defines.DidChangeTextDocumentParams) error {
		return handleDidChangeDocument(ctx, req, registry)
	})

	server.OnDidCloseTextDocument(handleDidCloseDocument)

	//Intellisense

	server.OnHover(handleHover)

	server.OnCompletion(handleCompletion)

	server.OnDefinition(handleDefinition)

	server.OnDocumentSymbol(handleDocumentSymbol)
}
