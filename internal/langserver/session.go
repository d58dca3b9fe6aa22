package langserver

import (
	"sync"

	"github.com/bep/debounce"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/config"
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
)

var (
	sessionToAdditionalData     = make(map[*jsonrpc.Session]*additionalSessionData)
	sessionToAdditionalDataLock sync.Mutex
)

// document is the per-URI state of an open text document: the last received
// full content and the analysis of that content. Analysis results are
// replaced wholesale, never mutated.
type document struct {
	text     string
	version  int
	analysis *analysis.Result
}

type additionalSessionData struct {
	lock sync.RWMutex

	documents map[defines.DocumentUri]*document

	//Used to debounce the computation of diagnostics after the user stops
	//making edits.
	postEditDiagnosticDebounce func(f func())
}

func getSessionData(session *jsonrpc.Session) *additionalSessionData {
	sessionToAdditionalDataLock.Lock()
	defer sessionToAdditionalDataLock.Unlock()

	sessionData := sessionToAdditionalData[session]
	if sessionData == nil {
		sessionData = &additionalSessionData{
			documents:                  make(map[defines.DocumentUri]*document),
			postEditDiagnosticDebounce: debounce.New(config.DIAGNOSTICS_DEBOUNCE_DURATION),
		}
		sessionToAdditionalData[session] = sessionData
	}
	return sessionData
}

func removeSessionData(session *jsonrpc.Session) {
	if session == nil {
		return
	}
	sessionToAdditionalDataLock.Lock()
	defer sessionToAdditionalDataLock.Unlock()
	delete(sessionToAdditionalData, session)
}

// analysisOf returns the last analysis of the document, nil if the document
// is not open or not analyzed yet.
func (d *additionalSessionData) analysisOf(uri defines.DocumentUri) *analysis.Result {
	d.lock.RLock()
	defer d.lock.RUnlock()

	doc := d.documents[uri]
	if doc == nil {
		return nil
	}
	return doc.analysis
}
