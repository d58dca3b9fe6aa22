package langserver

import (
	"context"

	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

func handleDocumentSymbol(ctx context.Context, req *defines.DocumentSymbolParams) (*[]defines.DocumentSymbol, error) {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	result := sessionData.analysisOf(req.TextDocument.Uri)
	if result == nil {
		return nil, nil
	}

	symbols := []defines.DocumentSymbol{}

	for _, stmt := range result.Chunk.Statements {
		symbols = append(symbols, statementSymbols(result.Source, stmt)...)
	}

	return &symbols, nil
}

// statementSymbols returns the symbols a top-level statement declares:
// function declarations and variable bindings, looking through export
// statements.
func statementSymbols(src *sourcecode.File, stmt parse.Node) []defines.DocumentSymbol {
	switch n := stmt.(type) {
	case *parse.FunctionDeclaration:
		if n.Name == nil {
			return nil
		}
		return []defines.DocumentSymbol{{
			Name:           n.Name.Name,
			Kind:           defines.SymbolKindFunction,
			Range:          rangeToLspRange(src.SpanPosition(n.Span)),
			SelectionRange: rangeToLspRange(src.SpanPosition(n.Name.Span)),
		}}
	case *parse.VariableDeclaration:
		kind := defines.SymbolKindVariable
		if n.DeclKeyword == parse.CONST_KEYWORD {
			kind = defines.SymbolKindConstant
		}
		var symbols []defines.DocumentSymbol
		for _, declarator := range n.Declarations {
			if declarator.Name == nil {
				continue
			}
			symbols = append(symbols, defines.DocumentSymbol{
				Name:           declarator.Name.Name,
				Kind:           kind,
				Range:          rangeToLspRange(src.SpanPosition(declarator.Span)),
				SelectionRange: rangeToLspRange(src.SpanPosition(declarator.Name.Span)),
			})
		}
		return symbols
	case *parse.ExportStatement:
		if n.Declaration != nil {
			return statementSymbols(src, n.Declaration)
		}
	}
	return nil
}
