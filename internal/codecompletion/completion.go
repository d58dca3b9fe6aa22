package codecompletion

import (
	"sort"
	"strings"

	"github.com/ucodelang/ucls/internal/analysis"
	"github.com/ucodelang/ucls/internal/langserver/lsp/defines"
	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

// A Completion represents a single completion item.
type Completion struct {
	ShownString   string                    `json:"shownString"`
	Value         string                    `json:"value"`
	ReplacedRange sourcecode.PositionRange  `json:"replacedRange"`
	Kind          defines.CompletionItemKind
	LabelDetail   string
	Documentation string
}

type SearchArgs struct {
	Result      *analysis.Result
	CursorIndex int32
}

// FindCompletions returns the completions usable at the cursor position:
// member completions after a dot (filtered by the object's tag allowlist,
// module functions or recorded property types) and scope-visible symbols,
// builtins and keywords everywhere else.
func FindCompletions(args SearchArgs) []Completion {
	result := args.Result
	cursorIndex := args.CursorIndex

	if result == nil || result.Chunk == nil {
		return nil
	}

	//no completions inside comments
	for _, token := range result.Chunk.Tokens {
		if token.Type == parse.COMMENT && token.Span.Contains(cursorIndex) {
			return nil
		}
	}

	node, ancestors := parse.FindNodeAtOffset(result.Chunk, cursorIndex)
	if node == nil {
		return completeIdentifier(result, cursorIndex, "", sourcecode.NodeSpan{Start: cursorIndex, End: cursorIndex})
	}

	switch n := node.(type) {
	case *parse.Identifier:
		prefixEnd := cursorIndex - n.Span.Start
		if prefixEnd < 0 {
			prefixEnd = 0
		}
		if prefixEnd > int32(len(n.Name)) {
			prefixEnd = int32(len(n.Name))
		}
		prefix := n.Name[:prefixEnd]

		if member, ok := parentMemberExpression(n, ancestors); ok {
			return completeMember(result, member, prefix, n.Span)
		}
		return completeIdentifier(result, cursorIndex, prefix, n.Span)
	case *parse.MemberExpression:
		//cursor right after the dot, no property name typed yet
		if n.PropertyName == nil {
			span := sourcecode.NodeSpan{Start: cursorIndex, End: cursorIndex}
			return completeMember(result, n, "", span)
		}
	}

	return completeIdentifier(result, cursorIndex, "", sourcecode.NodeSpan{Start: cursorIndex, End: cursorIndex})
}

// parentMemberExpression returns the member expression the identifier is
// the property name of, if any.
func parentMemberExpression(ident *parse.Identifier, ancestors []parse.Node) (*parse.MemberExpression, bool) {
	if len(ancestors) == 0 {
		return nil, false
	}
	member, ok := ancestors[len(ancestors)-1].(*parse.MemberExpression)
	if !ok || member.PropertyName != ident {
		return nil, false
	}
	return member, true
}

func completeMember(result *analysis.Result, member *parse.MemberExpression, prefix string, replaced sourcecode.NodeSpan) []Completion {
	registry := result.Registry()
	var completions []Completion

	obj, ok := member.Object.(*parse.Identifier)
	if !ok {
		return nil
	}
	sym, ok := result.Table.DefinitionOf(obj)
	if !ok {
		return nil
	}

	seen := make(map[string]bool)

	//tagged object types and module namespaces have a closed member set
	if tag, ok := sym.Type.Tag(); ok {
		if mod, isModule := registry.Module(string(tag)); isModule {
			for name, sig := range mod.Functions {
				if !strings.HasPrefix(name, prefix) || seen[name] {
					continue
				}
				seen[name] = true
				completions = append(completions, Completion{
					ShownString:   name,
					Value:         name,
					ReplacedRange: result.Source.SpanPosition(replaced),
					Kind:          defines.CompletionItemKindFunction,
					LabelDetail:   signatureDetail(sig),
					Documentation: sig.Doc,
				})
			}
		} else {
			for _, name := range registry.AllowedMembers(tag) {
				if !strings.HasPrefix(name, prefix) || seen[name] {
					continue
				}
				seen[name] = true
				completion := Completion{
					ShownString:   name,
					Value:         name,
					ReplacedRange: result.Source.SpanPosition(replaced),
					Kind:          defines.CompletionItemKindMethod,
				}
				if sig, ok := registry.MemberSignature(tag, name); ok {
					completion.LabelDetail = signatureDetail(sig)
					completion.Documentation = sig.Doc
				}
				completions = append(completions, completion)
			}
		}
	}

	//recorded property types
	propNames := make([]string, 0, len(sym.Properties))
	for name := range sym.Properties {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)
	for _, name := range propNames {
		if !strings.HasPrefix(name, prefix) || seen[name] {
			continue
		}
		seen[name] = true
		completions = append(completions, Completion{
			ShownString:   name,
			Value:         name,
			ReplacedRange: result.Source.SpanPosition(replaced),
			Kind:          defines.CompletionItemKindProperty,
			LabelDetail:   sym.Properties[name].String(),
		})
	}

	return completions
}

func completeIdentifier(result *analysis.Result, cursorIndex int32, prefix string, replaced sourcecode.NodeSpan) []Completion {
	registry := result.Registry()
	replacedRange := result.Source.SpanPosition(replaced)
	var completions []Completion
	seen := make(map[string]bool)

	//symbols visible at the cursor, innermost first
	for _, sym := range result.Table.VisibleAt(cursorIndex) {
		if !strings.HasPrefix(sym.Name, prefix) || seen[sym.Name] {
			continue
		}
		seen[sym.Name] = true

		completion := Completion{
			ShownString:   sym.Name,
			Value:         sym.Name,
			ReplacedRange: replacedRange,
			Kind:          symbolCompletionKind(sym),
		}
		if !sym.Type.IsUnknown() {
			completion.LabelDetail = sym.Type.String()
		}
		completions = append(completions, completion)
	}

	//builtin functions
	for _, name := range registry.BuiltinNames() {
		if !strings.HasPrefix(name, prefix) || seen[name] {
			continue
		}
		seen[name] = true

		completion := Completion{
			ShownString:   name,
			Value:         name,
			ReplacedRange: replacedRange,
			Kind:          defines.CompletionItemKindFunction,
		}
		if sig, ok := registry.Signature(name); ok {
			completion.LabelDetail = signatureDetail(sig)
			completion.Documentation = sig.Doc
		}
		completions = append(completions, completion)
	}

	//statement keywords
	for _, keyword := range statementKeywords {
		if !strings.HasPrefix(keyword, prefix) || seen[keyword] {
			continue
		}
		seen[keyword] = true
		completions = append(completions, Completion{
			ShownString:   keyword,
			Value:         keyword,
			ReplacedRange: replacedRange,
			Kind:          defines.CompletionItemKindKeyword,
		})
	}

	return completions
}

var statementKeywords = []string{
	"break", "case", "catch", "const", "continue", "default", "delete",
	"do", "elif", "else", "endfor", "endfunction", "endif", "endwhile",
	"export", "false", "for", "function", "if", "import", "in", "let",
	"null", "return", "switch", "this", "true", "try", "while",
}

func symbolCompletionKind(sym *analysis.Symbol) defines.CompletionItemKind {
	switch sym.Kind {
	case analysis.FunctionSymbol:
		return defines.CompletionItemKindFunction
	case analysis.ConstSymbol:
		return defines.CompletionItemKindConstant
	case analysis.ImportSymbol:
		return defines.CompletionItemKindModule
	default:
		return defines.CompletionItemKindVariable
	}
}

func signatureDetail(sig analysis.Signature) string {
	var b strings.Builder
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
	return b.String()
}
