package langserver

import (
	"context"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/parse"
)

func handleDefinition(ctx context.Context, req *defines.DefinitionParams) (*[]defines.LocationLink, error) {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	result := sessionData.analysisOf(req.TextDocument.Uri)
	if result == nil {
		return nil, nil
	}

	offset := lspPositionToOffset(result.Source, req.Position)
	node, _ := parse.FindNodeAtOffset(result.Chunk, offset)
	ident, ok := node.(*parse.Identifier)
	if !ok {
		return nil, nil
	}

	sym, ok := result.Table.DefinitionOf(ident)
	if !ok {
		return nil, nil
	}

	originRange := rangeToLspRange(result.Source.SpanPosition(ident.Span))
	declRange := rangeToLspRange(result.Source.SpanPosition(sym.DeclSpan))

	links := []defines.LocationLink{
		{
			OriginSelectionRange: &originRange,
			TargetUri:            req.TextDocument.Uri,
			TargetRange:          declRange,
			TargetSelectionRange: declRange,
		},
	}
	return &links, nil
}
