package langserver

import (
	"context"

	"github.com/ucodelang/ucls/internal/codecompletion"
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/utils"
)

func handleCompletion(ctx context.Context, req *defines.CompletionParams) (*[]defines.CompletionItem, error) {
	session := jsonrpc.GetSession(ctx)
	sessionData := getSessionData(session)

	result := sessionData.analysisOf(req.TextDocument.Uri)
	if result == nil {
		items := []defines.CompletionItem{}
		return &items, nil
	}

	completions := codecompletion.FindCompletions(codecompletion.SearchArgs{
		Result:      result,
		CursorIndex: lspPositionToOffset(result.Source, req.Position),
	})

	items := utils.MapSlice(completions, func(completion codecompletion.Completion) defines.CompletionItem {
		kind := completion.Kind
		item := defines.CompletionItem{
			Label:      completion.ShownString,
			Kind:       &kind,
			InsertText: &completion.Value,
		}
		if completion.LabelDetail != "" {
			detail := completion.LabelDetail
			item.Detail = &detail
		}
		if completion.Documentation != "" {
			item.Documentation = defines.MarkupContent{
				Kind:  defines.MarkupKindMarkdown,
				Value: completion.Documentation,
			}
		}
		return item
	})

	return &items, nil
}
