package lsp

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
)

// Methods holds the registered protocol handlers. Handlers are registered
// with the OnXxx methods before the server starts; a method with no handler
// is not advertised to the client and requests to it fail with MethodNotFound.
type Methods struct {
	Opt Config

	onInitialize            func(ctx context.Context, req *defines.InitializeParams) (*defines.InitializeResult, *defines.InitializeError)
	onInitialized           func(ctx context.Context, req *defines.InitializeParams) error
	onShutdown              func(ctx context.Context, req *defines.NoParams) error
	onExit                  func(ctx context.Context, req *defines.NoParams) error
	onDidOpenTextDocument   func(ctx context.Context, req *defines.DidOpenTextDocumentParams) error
	onDidChangeTextDocument func(ctx context.Context, req *defines.DidChangeTextDocumentParams) error
	onDidCloseTextDocument  func(ctx context.Context, req *defines.DidCloseTextDocumentParams) error
	onHover                 func(ctx context.Context, req *defines.HoverParams) (*defines.Hover, error)
	onCompletion            func(ctx context.Context, req *defines.CompletionParams) (*[]defines.CompletionItem, error)
	onDefinition            func(ctx context.Context, req *defines.DefinitionParams) (*[]defines.LocationLink, error)
	onDocumentSymbol        func(ctx context.Context, req *defines.DocumentSymbolParams) (*[]defines.DocumentSymbol, error)
}

func (m *Methods) OnInitialize(f func(ctx context.Context, req *defines.InitializeParams) (result *defines.InitializeResult, err *defines.InitializeError)) {
	m.onInitialize = f
}

func (m *Methods) initialize(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.InitializeParams)
	if m.onInitialize != nil {
		res, err := m.onInitialize(ctx, params)
		return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	res, err := m.builtinInitialize(ctx, params)
	return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
}

func (m *Methods) initializeMethodInfo() *jsonrpc.MethodInfo {
	return &jsonrpc.MethodInfo{
		Name: "initialize",
		NewRequest: func() interface{} {
			return &defines.InitializeParams{}
		},
		Handler: m.initialize,
	}
}

func (m *Methods) OnInitialized(f func(ctx context.Context, req *defines.InitializeParams) (err error)) {
	m.onInitialized = f
}

func (m *Methods) initialized(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.InitializeParams)
	if m.onInitialized != nil {
		err := m.onInitialized(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) initializedMethodInfo() *jsonrpc.MethodInfo {
	return &jsonrpc.MethodInfo{
		Name: "initialized",
		NewRequest: func() interface{} {
			return &defines.InitializeParams{}
		},
		Handler: m.initialized,
	}
}

func (m *Methods) OnShutdown(f func(ctx context.Context, req *defines.NoParams) (err error)) {
	m.onShutdown = f
}

func (m *Methods) shutdown(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.NoParams)
	if m.onShutdown != nil {
		err := m.onShutdown(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) shutdownMethodInfo() *jsonrpc.MethodInfo {
	return &jsonrpc.MethodInfo{
		Name: "shutdown",
		NewRequest: func() interface{} {
			return &defines.NoParams{}
		},
		Handler: m.shutdown,
	}
}

func (m *Methods) OnExit(f func(ctx context.Context, req *defines.NoParams) (err error)) {
	m.onExit = f
}

func (m *Methods) exit(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.NoParams)
	if m.onExit != nil {
		err := m.onExit(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) exitMethodInfo() *jsonrpc.MethodInfo {
	return &jsonrpc.MethodInfo{
		Name: "exit",
		NewRequest: func() interface{} {
			return &defines.NoParams{}
		},
		Handler: m.exit,
	}
}

func (m *Methods) OnDidOpenTextDocument(f func(ctx context.Context, req *defines.DidOpenTextDocumentParams) (err error)) {
	m.onDidOpenTextDocument = f
}

func (m *Methods) didOpenTextDocument(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.DidOpenTextDocumentParams)
	if m.onDidOpenTextDocument != nil {
		err := m.onDidOpenTextDocument(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) didOpenTextDocumentMethodInfo() *jsonrpc.MethodInfo {
	if m.onDidOpenTextDocument == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/didOpen",
		NewRequest: func() interface{} {
			return &defines.DidOpenTextDocumentParams{}
		},
		Handler: m.didOpenTextDocument,
	}
}

func (m *Methods) OnDidChangeTextDocument(f func(ctx context.Context, req *defines.DidChangeTextDocumentParams) (err error)) {
	m.onDidChangeTextDocument = f
}

func (m *Methods) didChangeTextDocument(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.DidChangeTextDocumentParams)
	if m.onDidChangeTextDocument != nil {
		err := m.onDidChangeTextDocument(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) didChangeTextDocumentMethodInfo() *jsonrpc.MethodInfo {
	if m.onDidChangeTextDocument == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/didChange",
		NewRequest: func() interface{} {
			return &defines.DidChangeTextDocumentParams{}
		},
		Handler: m.didChangeTextDocument,
	}
}

func (m *Methods) OnDidCloseTextDocument(f func(ctx context.Context, req *defines.DidCloseTextDocumentParams) (err error)) {
	m.onDidCloseTextDocument = f
}

func (m *Methods) didCloseTextDocument(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.DidCloseTextDocumentParams)
	if m.onDidCloseTextDocument != nil {
		err := m.onDidCloseTextDocument(ctx, params)
		return nil, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) didCloseTextDocumentMethodInfo() *jsonrpc.MethodInfo {
	if m.onDidCloseTextDocument == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/didClose",
		NewRequest: func() interface{} {
			return &defines.DidCloseTextDocumentParams{}
		},
		Handler: m.didCloseTextDocument,
	}
}

func (m *Methods) OnHover(f func(ctx context.Context, req *defines.HoverParams) (result *defines.Hover, err error)) {
	m.onHover = f
}

func (m *Methods) hover(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.HoverParams)
	if m.onHover != nil {
		res, err := m.onHover(ctx, params)
		return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) hoverMethodInfo() *jsonrpc.MethodInfo {
	if m.onHover == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/hover",
		NewRequest: func() interface{} {
			return &defines.HoverParams{}
		},
		Handler: m.hover,
	}
}

func (m *Methods) OnCompletion(f func(ctx context.Context, req *defines.CompletionParams) (result *[]defines.CompletionItem, err error)) {
	m.onCompletion = f
}

func (m *Methods) completion(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.CompletionParams)
	if m.onCompletion != nil {
		res, err := m.onCompletion(ctx, params)
		return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) completionMethodInfo() *jsonrpc.MethodInfo {
	if m.onCompletion == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/completion",
		NewRequest: func() interface{} {
			return &defines.CompletionParams{}
		},
		Handler: m.completion,
	}
}

func (m *Methods) OnDefinition(f func(ctx context.Context, req *defines.DefinitionParams) (result *[]defines.LocationLink, err error)) {
	m.onDefinition = f
}

func (m *Methods) definition(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.DefinitionParams)
	if m.onDefinition != nil {
		res, err := m.onDefinition(ctx, params)
		return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) definitionMethodInfo() *jsonrpc.MethodInfo {
	if m.onDefinition == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/definition",
		NewRequest: func() interface{} {
			return &defines.DefinitionParams{}
		},
		Handler: m.definition,
	}
}

func (m *Methods) OnDocumentSymbol(f func(ctx context.Context, req *defines.DocumentSymbolParams) (result *[]defines.DocumentSymbol, err error)) {
	m.onDocumentSymbol = f
}

func (m *Methods) documentSymbol(ctx context.Context, req interface{}) (interface{}, error) {
	params := req.(*defines.DocumentSymbolParams)
	if m.onDocumentSymbol != nil {
		res, err := m.onDocumentSymbol(ctx, params)
		return res, wrapErrorToRespError(err, jsonrpc.InternalErrorCode)
	}
	return nil, nil
}

func (m *Methods) documentSymbolMethodInfo() *jsonrpc.MethodInfo {
	if m.onDocumentSymbol == nil {
		return nil
	}
	return &jsonrpc.MethodInfo{
		Name: "textDocument/documentSymbol",
		NewRequest: func() interface{} {
			return &defines.DocumentSymbolParams{}
		},
		Handler: m.documentSymbol,
	}
}

func (m *Methods) GetMethods() []*jsonrpc.MethodInfo {
	return []*jsonrpc.MethodInfo{
		m.initializeMethodInfo(),
		m.initializedMethodInfo(),
		m.shutdownMethodInfo(),
		m.exitMethodInfo(),
		m.didOpenTextDocumentMethodInfo(),
		m.didChangeTextDocumentMethodInfo(),
		m.didCloseTextDocumentMethodInfo(),
		m.hoverMethodInfo(),
		m.completionMethodInfo(),
		m.definitionMethodInfo(),
		m.documentSymbolMethodInfo(),
	}
}

func wrapErrorToRespError(err interface{}, code int) error {
	if isNil(err) {
		return nil
	}
	if e, ok := err.(error); ok {
		return e
	}
	return jsonrpc.ResponseError{
		Code:    code,
		Message: fmt.Sprintf("%v", err),
		Data:    err,
	}
}

func isNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
