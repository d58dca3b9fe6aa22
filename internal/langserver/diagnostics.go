package langserver

import (
	"context"
	"encoding/json"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/config"
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/sourcecode"
	"github.com/ucodelang/ucls/internal/utils"
)

func handleDidOpenDocument(ctx context.Context, req *defines.DidOpenTextDocumentParams, registry analysis.Registry) error {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	uri := req.TextDocument.Uri

	sessionData.lock.Lock()
	sessionData.documents[uri] = &document{
		text:    req.TextDocument.Text,
		version: req.TextDocument.Version,
	}
	sessionData.lock.Unlock()

	//analyze and publish immediately on open
	analyzeAndPublish(session, sessionData, uri, registry)
	return nil
}

func handleDidChangeDocument(ctx context.Context, req *defines.DidChangeTextDocumentParams, registry analysis.Registry) error {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	uri := req.TextDocument.Uri
	if len(req.ContentChanges) == 0 {
		return nil
	}
	//full synchronization: the last change carries the whole document
	text := req.ContentChanges[len(req.ContentChanges)-1].Text

	sessionData.lock.Lock()
	doc := sessionData.documents[uri]
	if doc == nil {
		doc = &document{}
		sessionData.documents[uri] = doc
	}
	doc.text = text
	doc.version = req.TextDocument.Version
	debounced := sessionData.postEditDiagnosticDebounce
	sessionData.lock.Unlock()

	//debounce re-analysis so a burst of keystrokes publishes once
	debounced(func() {
		analyzeAndPublish(session, sessionData, uri, registry)
	})
	return nil
}

func handleDidCloseDocument(ctx context.Context, req *defines.DidCloseTextDocumentParams) error {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	uri := req.TextDocument.Uri

	sessionData.lock.Lock()
	delete(sessionData.documents, uri)
	sessionData.lock.Unlock()

	//clear the document's diagnostics
	return sendDiagnostics(session, uri, nil, []defines.Diagnostic{})
}

// analyzeAndPublish runs the engine over the document's current content and
// publishes the resulting diagnostics. Results of a stale run are dropped:
// if the document changed while the analysis ran nothing is stored or
// published, the newer edit's own run supersedes this one.
func analyzeAndPublish(session *jsonrpc.Session, sessionData *additionalSessionData, uri defines.DocumentUri, registry analysis.Registry) {
	sessionData.lock.RLock()
	doc := sessionData.documents[uri]
	if doc == nil {
		sessionData.lock.RUnlock()
		return
	}
	text := doc.text
	version := doc.version
	sessionData.lock.RUnlock()

	if len(text) > config.MAX_DOCUMENT_SIZE {
		return
	}

	result := analysis.Analyze(sourcecode.NewFile(documentPath(uri), text), analysis.Options{
		Registry: registry,
	})

	sessionData.lock.Lock()
	doc = sessionData.documents[uri]
	if doc == nil || doc.version != version {
		sessionData.lock.Unlock()
		return
	}
	doc.analysis = result
	sessionData.lock.Unlock()

	diagnostics := utils.MapSlice(result.Diagnostics, makeLspDiagnostic)
	if err := sendDiagnostics(session, uri, &version, diagnostics); err != nil {
		logger := session.Logger()
		logger.Err(err).Msg("failed to publish diagnostics")
	}
}

func makeLspDiagnostic(diagnostic analysis.Diagnostic) defines.Diagnostic {
	severity := defines.DiagnosticSeverityError
	if diagnostic.Severity == analysis.WarningSeverity {
		severity = defines.DiagnosticSeverityWarning
	}
	source := diagnostic.Source

	return defines.Diagnostic{
		Range:    rangeToLspRange(diagnostic.Position),
		Severity: &severity,
		Code:     diagnostic.Code,
		Source:   &source,
		Message:  diagnostic.Message,
	}
}

func sendDiagnostics(session *jsonrpc.Session, docURI defines.DocumentUri, version *int, diagnostics []defines.Diagnostic) error {
	return session.Notify(jsonrpc.NotificationMessage{
		Method: "textDocument/publishDiagnostics",
		Params: utils.Must(json.Marshal(defines.PublishDiagnosticsParams{
			Uri:         docURI,
			Version:     version,
			Diagnostics: diagnostics,
		})),
	})
}
