package analysis

import (
	"sort"
	"strings"

	"github.com/ucodelang/ucls/internal/parse"
	"github.com/ucodelang/ucls/internal/sourcecode"
)

// Options configures an analysis run. The registry is injected so callers
// can analyze against custom signature sets; a nil registry disables all
// builtin, module and member checks.
type Options struct {
	Registry Registry
}

// Result is the outcome of one analysis run over one document version. It
// is immutable once returned and is discarded wholesale when a newer
// version of the document is analyzed.
type Result struct {
	Chunk       *parse.Chunk
	Source      *sourcecode.File
	Table       *SymbolTable
	Diagnostics []Diagnostic

	registry Registry
}

// Analyze runs the whole pipeline synchronously: lex, parse, resolve,
// type-check. It is total: any input produces a result with a non-nil
// diagnostics slice, and analyzing the same input twice produces the same
// diagnostics.
func Analyze(src *sourcecode.File, opts Options) *Result {
	registry := opts.Registry
	if registry == nil {
		registry = emptyRegistry{}
	}

	chunk, _ := parse.ParseChunk(src.Code, src.Name)
	sink := &diagnosticSink{src: src, items: []Diagnostic{}}

	for _, lexErr := range chunk.LexicalErrors {
		sink.addError(lexErr.Span, lexErr.Kind, lexErr.Message)
	}
	parse.Walk(chunk, func(node, _, _ parse.Node, _ []parse.Node, _ bool) (parse.TraversalAction, error) {
		if err := node.Base().Err; err != nil {
			sink.addError(node.Base().Span, err.Kind, err.Message)
		}
		return parse.ContinueTraversal, nil
	}, nil)

	table := resolve(chunk, registry, sink)
	check(chunk, table, registry, sink)

	downgradeDisabledLines(chunk, sink)

	sort.SliceStable(sink.items, func(i, j int) bool {
		return sink.items[i].Span.Start < sink.items[j].Span.Start
	})

	return &Result{
		Chunk:       chunk,
		Source:      src,
		Table:       table,
		Diagnostics: sink.items,
		registry:    registry,
	}
}

// Registry returns the registry the analysis ran against.
func (r *Result) Registry() Registry {
	return r.registry
}

// ReturnTypeOf computes and memoizes the return type of a function-valued
// symbol, on demand; hover and completion use it for symbols whose calls
// were never type-checked.
func (r *Result) ReturnTypeOf(sym *Symbol) Type {
	if sym.sig != nil {
		return sym.sig.Return
	}
	c := &typeChecker{registry: r.registry, table: r.Table}
	return c.returnTypeOf(sym)
}

// AnalyzeString is a convenience wrapper over Analyze for callers that do
// not already hold a source file.
func AnalyzeString(name, code string, opts Options) *Result {
	return Analyze(sourcecode.NewFile(name, code), opts)
}

// downgradeDisabledLines applies the line disable directive: every error
// starting on a line that carries the marker comment becomes a warning,
// whatever phase produced it.
func downgradeDisabledLines(chunk *parse.Chunk, sink *diagnosticSink) {
	var disabled map[int32]bool
	for _, tok := range chunk.Tokens {
		if tok.Type != parse.COMMENT || !strings.Contains(tok.Raw, DisableLineDirective) {
			continue
		}
		if disabled == nil {
			disabled = make(map[int32]bool)
		}
		disabled[tok.Line] = true
	}
	if disabled == nil {
		return
	}
	for i := range sink.items {
		if sink.items[i].Severity == ErrorSeverity && disabled[sink.items[i].Position.StartLine] {
			sink.items[i].Severity = WarningSeverity
		}
	}
}
