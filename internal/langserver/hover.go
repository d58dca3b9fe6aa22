package langserver

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/langserver/jsonrpc"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/parse"
)

func handleHover(ctx context.Context, req *defines.HoverParams) (*defines.Hover, error) {
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

	var markdown string
	if sym, ok := result.Table.DefinitionOf(ident); ok {
		markdown = symbolHoverMarkdown(result, sym)
	} else if sig, ok := result.Registry().Signature(ident.Name); ok {
		markdown = signatureHoverMarkdown(sig)
	}
	if markdown == "" {
		return nil, nil
	}

	identRange := rangeToLspRange(result.Source.SpanPosition(ident.Span))
	return &defines.Hover{
		Contents: defines.MarkupContent{
			Kind:  defines.MarkupKindMarkdown,
			Value: markdown,
		},
		Range: &identRange,
	}, nil
}

// symbolHoverMarkdown renders a symbol for hover: its declaration kind and
// name, the inferred type, the return type for functions and the recorded
// property types for objects.
func symbolHoverMarkdown(result *analysis.Result, sym *analysis.Symbol) string {
	var b strings.Builder

	b.WriteString("```ucode\n")
	b.WriteString(sym.Kind.String())
	b.WriteString(" ")
	b.WriteString(sym.Name)
	if !sym.Type.IsUnknown() {
		b.WriteString(": ")
		b.WriteString(sym.Type.String())
	}
	b.WriteString("\n```")

	if sym.Kind == analysis.FunctionSymbol || sym.Type.Contains(analysis.FunctionType) {
		ret := result.ReturnTypeOf(sym)
		if !ret.IsUnknown() {
			fmt.Fprintf(&b, "\n\nreturns `%s`", ret.String())
		}
	}

	if len(sym.Properties) > 0 {
		names := make([]string, 0, len(sym.Properties))
		for name := range sym.Properties {
			names = append(names, name)
		}
		sort.Strings(names)

		b.WriteString("\n\nproperties:")
		for _, name := range names {
			fmt.Fprintf(&b, "\n- `%s`: `%s`", name, sym.Properties[name].String())
		}
	}

	return b.String()
}

// signatureHoverMarkdown renders a builtin's signature for hover.
func signatureHoverMarkdown(sig analysis.Signature) string {
	var b strings.Builder

	b.WriteString("```ucode\n")
	b.WriteString(sig.Name)
	b.WriteString("(")
	for i, param := range sig.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(param))
	}
	if sig.MaxArgs == -1 {
		if len(sig.Params) > 0 {
			b.WriteString(", ")
		}
		b.WriteString("...")
	}
	b.WriteString(")")
	if !sig.Return.IsUnknown() {
		b.WriteString(" -> ")
		b.WriteString(sig.Return.String())
	}
	b.WriteString("\n```")

	if sig.Doc != "" {
		b.WriteString("\n\n")
		b.WriteString(sig.Doc)
	}
	return b.String()
}
